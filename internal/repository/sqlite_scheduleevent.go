package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"callsheet/internal/db"
	"callsheet/internal/domain"
)

// scheduleEventColumns is the canonical SELECT column list for schedule_events.
const scheduleEventColumns = `id, project_id, shooting_day_id, scene_id, type, description, scene_number,
		location_id, location_name, cast_ids, crew_ids, equipment_ids,
		duration_min, notes, order_index, created_at, updated_at`

// SQLiteScheduleEventRepo implements ScheduleEventRepo using a SQLite database.
type SQLiteScheduleEventRepo struct {
	db db.DBTX
}

// NewSQLiteScheduleEventRepo creates a new SQLiteScheduleEventRepo.
func NewSQLiteScheduleEventRepo(conn db.DBTX) *SQLiteScheduleEventRepo {
	return &SQLiteScheduleEventRepo{db: conn}
}

func (r *SQLiteScheduleEventRepo) Create(ctx context.Context, e *domain.ScheduleEvent) error {
	castIDs, err := idsToJSON(e.CastIDs)
	if err != nil {
		return err
	}
	crewIDs, err := idsToJSON(e.CrewIDs)
	if err != nil {
		return err
	}
	equipmentIDs, err := idsToJSON(e.EquipmentIDs)
	if err != nil {
		return err
	}

	query := `INSERT INTO schedule_events (id, project_id, shooting_day_id, scene_id, type, description, scene_number,
		location_id, location_name, cast_ids, crew_ids, equipment_ids,
		duration_min, notes, order_index, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		e.ID,
		e.ProjectID,
		e.ShootingDayID,
		nullableStringToValue(e.SceneID),
		string(e.Type),
		e.Description,
		e.SceneNumber,
		nullableStringToValue(e.LocationID),
		e.LocationName,
		castIDs,
		crewIDs,
		equipmentIDs,
		e.DurationMin,
		e.Notes,
		e.OrderIndex,
		e.CreatedAt.Format(time.RFC3339),
		e.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting schedule event: %w", err)
	}
	return nil
}

func (r *SQLiteScheduleEventRepo) GetByID(ctx context.Context, id string) (*domain.ScheduleEvent, error) {
	query := `SELECT ` + scheduleEventColumns + ` FROM schedule_events WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	e, err := scanScheduleEventRow(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("schedule event: %w", ErrNotFound)
		}
		return nil, err
	}
	return e, nil
}

func (r *SQLiteScheduleEventRepo) ListByShootingDay(ctx context.Context, projectID, shootingDayID string) ([]*domain.ScheduleEvent, error) {
	query := `SELECT ` + scheduleEventColumns + ` FROM schedule_events
		WHERE project_id = ? AND shooting_day_id = ?
		ORDER BY order_index`
	rows, err := r.db.QueryContext(ctx, query, projectID, shootingDayID)
	if err != nil {
		return nil, fmt.Errorf("listing schedule events by day: %w", err)
	}
	defer rows.Close()
	return collectScheduleEvents(rows)
}

func (r *SQLiteScheduleEventRepo) ListByScene(ctx context.Context, sceneID string) ([]*domain.ScheduleEvent, error) {
	query := `SELECT ` + scheduleEventColumns + ` FROM schedule_events WHERE scene_id = ? ORDER BY order_index`
	rows, err := r.db.QueryContext(ctx, query, sceneID)
	if err != nil {
		return nil, fmt.Errorf("listing schedule events by scene: %w", err)
	}
	defer rows.Close()
	return collectScheduleEvents(rows)
}

func (r *SQLiteScheduleEventRepo) MaxOrderForDay(ctx context.Context, shootingDayID string) (int, error) {
	query := `SELECT COALESCE(MAX(order_index), 0) FROM schedule_events WHERE shooting_day_id = ?`
	var maxOrder int
	if err := r.db.QueryRowContext(ctx, query, shootingDayID).Scan(&maxOrder); err != nil {
		return 0, fmt.Errorf("querying max event order: %w", err)
	}
	return maxOrder, nil
}

func (r *SQLiteScheduleEventRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM schedule_events WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting schedule event: %w", err)
	}
	return nil
}

// scanScheduleEventRow scans one event through the given scan function, which
// lets *sql.Row and *sql.Rows share the same column handling.
func scanScheduleEventRow(scan func(dest ...any) error) (*domain.ScheduleEvent, error) {
	var e domain.ScheduleEvent
	var sceneID, locationID sql.NullString
	var typeStr, castIDs, crewIDs, equipmentIDs string
	var createdAtStr, updatedAtStr string

	err := scan(
		&e.ID, &e.ProjectID, &e.ShootingDayID, &sceneID, &typeStr, &e.Description, &e.SceneNumber,
		&locationID, &e.LocationName, &castIDs, &crewIDs, &equipmentIDs,
		&e.DurationMin, &e.Notes, &e.OrderIndex, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		return nil, err
	}

	e.SceneID = parseNullableString(sceneID)
	e.LocationID = parseNullableString(locationID)
	e.Type = domain.EventType(typeStr)

	if e.CastIDs, err = idsFromJSON(castIDs); err != nil {
		return nil, fmt.Errorf("parsing cast_ids: %w", err)
	}
	if e.CrewIDs, err = idsFromJSON(crewIDs); err != nil {
		return nil, fmt.Errorf("parsing crew_ids: %w", err)
	}
	if e.EquipmentIDs, err = idsFromJSON(equipmentIDs); err != nil {
		return nil, fmt.Errorf("parsing equipment_ids: %w", err)
	}

	if e.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if e.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &e, nil
}

func collectScheduleEvents(rows *sql.Rows) ([]*domain.ScheduleEvent, error) {
	var events []*domain.ScheduleEvent
	for rows.Next() {
		e, err := scanScheduleEventRow(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning schedule event row: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating schedule events: %w", err)
	}
	return events, nil
}
