package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"callsheet/internal/db"
	"callsheet/internal/domain"
)

// crewColumns is the canonical SELECT column list for crew_members.
const crewColumns = `id, project_id, name, role, department, daily_rate, created_at, updated_at`

// SQLiteCrewRepo implements CrewRepo using a SQLite database.
type SQLiteCrewRepo struct {
	db db.DBTX
}

// NewSQLiteCrewRepo creates a new SQLiteCrewRepo.
func NewSQLiteCrewRepo(conn db.DBTX) *SQLiteCrewRepo {
	return &SQLiteCrewRepo{db: conn}
}

func (r *SQLiteCrewRepo) Create(ctx context.Context, c *domain.CrewMember) error {
	query := `INSERT INTO crew_members (id, project_id, name, role, department, daily_rate, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.ProjectID,
		c.Name,
		c.Role,
		c.Department,
		nullableFloatToValue(c.DailyRate),
		c.CreatedAt.Format(time.RFC3339),
		c.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting crew member: %w", err)
	}
	return nil
}

func (r *SQLiteCrewRepo) GetByID(ctx context.Context, id string) (*domain.CrewMember, error) {
	query := `SELECT ` + crewColumns + ` FROM crew_members WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var c domain.CrewMember
	var dailyRate sql.NullFloat64
	var createdAtStr, updatedAtStr string
	err := row.Scan(&c.ID, &c.ProjectID, &c.Name, &c.Role, &c.Department, &dailyRate, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("crew member: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning crew member: %w", err)
	}
	return populateCrewMember(&c, dailyRate, createdAtStr, updatedAtStr)
}

func (r *SQLiteCrewRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.CrewMember, error) {
	query := `SELECT ` + crewColumns + ` FROM crew_members WHERE project_id = ? ORDER BY department, name`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing crew members: %w", err)
	}
	defer rows.Close()

	var members []*domain.CrewMember
	for rows.Next() {
		var c domain.CrewMember
		var dailyRate sql.NullFloat64
		var createdAtStr, updatedAtStr string
		if err := rows.Scan(&c.ID, &c.ProjectID, &c.Name, &c.Role, &c.Department, &dailyRate, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning crew member row: %w", err)
		}
		member, err := populateCrewMember(&c, dailyRate, createdAtStr, updatedAtStr)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating crew members: %w", err)
	}
	return members, nil
}

func (r *SQLiteCrewRepo) Update(ctx context.Context, c *domain.CrewMember) error {
	query := `UPDATE crew_members SET name = ?, role = ?, department = ?, daily_rate = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		c.Name,
		c.Role,
		c.Department,
		nullableFloatToValue(c.DailyRate),
		c.UpdatedAt.Format(time.RFC3339),
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("updating crew member: %w", err)
	}
	return nil
}

func (r *SQLiteCrewRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM crew_members WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting crew member: %w", err)
	}
	return nil
}

func populateCrewMember(c *domain.CrewMember, dailyRate sql.NullFloat64, createdAtStr, updatedAtStr string) (*domain.CrewMember, error) {
	c.DailyRate = parseNullableFloat(dailyRate)

	var parseErr error
	c.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	c.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return c, nil
}
