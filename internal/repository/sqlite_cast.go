package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"callsheet/internal/db"
	"callsheet/internal/domain"
)

// castColumns is the canonical SELECT column list for cast_members.
const castColumns = `id, project_id, actor_name, character_name, daily_rate, created_at, updated_at`

// SQLiteCastRepo implements CastRepo using a SQLite database.
type SQLiteCastRepo struct {
	db db.DBTX
}

// NewSQLiteCastRepo creates a new SQLiteCastRepo.
func NewSQLiteCastRepo(conn db.DBTX) *SQLiteCastRepo {
	return &SQLiteCastRepo{db: conn}
}

func (r *SQLiteCastRepo) Create(ctx context.Context, c *domain.CastMember) error {
	query := `INSERT INTO cast_members (id, project_id, actor_name, character_name, daily_rate, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.ProjectID,
		c.ActorName,
		c.CharacterName,
		nullableFloatToValue(c.DailyRate),
		c.CreatedAt.Format(time.RFC3339),
		c.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting cast member: %w", err)
	}
	return nil
}

func (r *SQLiteCastRepo) GetByID(ctx context.Context, id string) (*domain.CastMember, error) {
	query := `SELECT ` + castColumns + ` FROM cast_members WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var c domain.CastMember
	var dailyRate sql.NullFloat64
	var createdAtStr, updatedAtStr string
	err := row.Scan(&c.ID, &c.ProjectID, &c.ActorName, &c.CharacterName, &dailyRate, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("cast member: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning cast member: %w", err)
	}
	return populateCastMember(&c, dailyRate, createdAtStr, updatedAtStr)
}

func (r *SQLiteCastRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.CastMember, error) {
	query := `SELECT ` + castColumns + ` FROM cast_members WHERE project_id = ? ORDER BY actor_name`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing cast members: %w", err)
	}
	defer rows.Close()

	var members []*domain.CastMember
	for rows.Next() {
		var c domain.CastMember
		var dailyRate sql.NullFloat64
		var createdAtStr, updatedAtStr string
		if err := rows.Scan(&c.ID, &c.ProjectID, &c.ActorName, &c.CharacterName, &dailyRate, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning cast member row: %w", err)
		}
		member, err := populateCastMember(&c, dailyRate, createdAtStr, updatedAtStr)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cast members: %w", err)
	}
	return members, nil
}

func (r *SQLiteCastRepo) Update(ctx context.Context, c *domain.CastMember) error {
	query := `UPDATE cast_members SET actor_name = ?, character_name = ?, daily_rate = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		c.ActorName,
		c.CharacterName,
		nullableFloatToValue(c.DailyRate),
		c.UpdatedAt.Format(time.RFC3339),
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("updating cast member: %w", err)
	}
	return nil
}

func (r *SQLiteCastRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM cast_members WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting cast member: %w", err)
	}
	return nil
}

func populateCastMember(c *domain.CastMember, dailyRate sql.NullFloat64, createdAtStr, updatedAtStr string) (*domain.CastMember, error) {
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
