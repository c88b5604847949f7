package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"callsheet/internal/db"
	"callsheet/internal/domain"
)

// equipmentColumns is the canonical SELECT column list for equipment.
const equipmentColumns = `id, project_id, name, category, daily_rate, weekly_rate, flat_rate, created_at, updated_at`

// SQLiteEquipmentRepo implements EquipmentRepo using a SQLite database.
type SQLiteEquipmentRepo struct {
	db db.DBTX
}

// NewSQLiteEquipmentRepo creates a new SQLiteEquipmentRepo.
func NewSQLiteEquipmentRepo(conn db.DBTX) *SQLiteEquipmentRepo {
	return &SQLiteEquipmentRepo{db: conn}
}

func (r *SQLiteEquipmentRepo) Create(ctx context.Context, e *domain.Equipment) error {
	query := `INSERT INTO equipment (id, project_id, name, category, daily_rate, weekly_rate, flat_rate, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.ProjectID,
		e.Name,
		e.Category,
		nullableFloatToValue(e.DailyRate),
		nullableFloatToValue(e.WeeklyRate),
		nullableFloatToValue(e.FlatRate),
		e.CreatedAt.Format(time.RFC3339),
		e.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting equipment: %w", err)
	}
	return nil
}

func (r *SQLiteEquipmentRepo) GetByID(ctx context.Context, id string) (*domain.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var e domain.Equipment
	var daily, weekly, flat sql.NullFloat64
	var createdAtStr, updatedAtStr string
	err := row.Scan(&e.ID, &e.ProjectID, &e.Name, &e.Category, &daily, &weekly, &flat, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("equipment: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning equipment: %w", err)
	}
	return populateEquipment(&e, daily, weekly, flat, createdAtStr, updatedAtStr)
}

func (r *SQLiteEquipmentRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE project_id = ? ORDER BY category, name`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing equipment: %w", err)
	}
	defer rows.Close()

	var items []*domain.Equipment
	for rows.Next() {
		var e domain.Equipment
		var daily, weekly, flat sql.NullFloat64
		var createdAtStr, updatedAtStr string
		if err := rows.Scan(&e.ID, &e.ProjectID, &e.Name, &e.Category, &daily, &weekly, &flat, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning equipment row: %w", err)
		}
		item, err := populateEquipment(&e, daily, weekly, flat, createdAtStr, updatedAtStr)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating equipment: %w", err)
	}
	return items, nil
}

func (r *SQLiteEquipmentRepo) Update(ctx context.Context, e *domain.Equipment) error {
	query := `UPDATE equipment SET name = ?, category = ?, daily_rate = ?, weekly_rate = ?, flat_rate = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		e.Name,
		e.Category,
		nullableFloatToValue(e.DailyRate),
		nullableFloatToValue(e.WeeklyRate),
		nullableFloatToValue(e.FlatRate),
		e.UpdatedAt.Format(time.RFC3339),
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating equipment: %w", err)
	}
	return nil
}

func (r *SQLiteEquipmentRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM equipment WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting equipment: %w", err)
	}
	return nil
}

func populateEquipment(e *domain.Equipment, daily, weekly, flat sql.NullFloat64, createdAtStr, updatedAtStr string) (*domain.Equipment, error) {
	e.DailyRate = parseNullableFloat(daily)
	e.WeeklyRate = parseNullableFloat(weekly)
	e.FlatRate = parseNullableFloat(flat)

	var parseErr error
	e.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	e.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return e, nil
}
