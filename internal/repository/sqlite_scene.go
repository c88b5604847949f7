package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"callsheet/internal/db"
	"callsheet/internal/domain"
)

// sceneColumns is the canonical SELECT column list for scenes.
const sceneColumns = `id, project_id, scene_number, description, location_id, location_name,
		cast_ids, crew_ids, equipment_ids, duration_min, special_requirements,
		created_at, updated_at`

// SQLiteSceneRepo implements SceneRepo using a SQLite database.
type SQLiteSceneRepo struct {
	db db.DBTX
}

// NewSQLiteSceneRepo creates a new SQLiteSceneRepo.
func NewSQLiteSceneRepo(conn db.DBTX) *SQLiteSceneRepo {
	return &SQLiteSceneRepo{db: conn}
}

func (r *SQLiteSceneRepo) Create(ctx context.Context, s *domain.Scene) error {
	castIDs, err := idsToJSON(s.CastIDs)
	if err != nil {
		return err
	}
	crewIDs, err := idsToJSON(s.CrewIDs)
	if err != nil {
		return err
	}
	equipmentIDs, err := idsToJSON(s.EquipmentIDs)
	if err != nil {
		return err
	}

	query := `INSERT INTO scenes (id, project_id, scene_number, description, location_id, location_name,
		cast_ids, crew_ids, equipment_ids, duration_min, special_requirements, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		s.ID,
		s.ProjectID,
		s.SceneNumber,
		s.Description,
		nullableStringToValue(s.LocationID),
		s.LocationName,
		castIDs,
		crewIDs,
		equipmentIDs,
		s.DurationMin,
		s.SpecialRequirements,
		s.CreatedAt.Format(time.RFC3339),
		s.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting scene: %w", err)
	}
	return nil
}

func (r *SQLiteSceneRepo) GetByID(ctx context.Context, id string) (*domain.Scene, error) {
	query := `SELECT ` + sceneColumns + ` FROM scenes WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var s domain.Scene
	var locationID sql.NullString
	var castIDs, crewIDs, equipmentIDs string
	var createdAtStr, updatedAtStr string
	err := row.Scan(
		&s.ID, &s.ProjectID, &s.SceneNumber, &s.Description, &locationID, &s.LocationName,
		&castIDs, &crewIDs, &equipmentIDs, &s.DurationMin, &s.SpecialRequirements,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("scene: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning scene: %w", err)
	}
	return populateScene(&s, locationID, castIDs, crewIDs, equipmentIDs, createdAtStr, updatedAtStr)
}

func (r *SQLiteSceneRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.Scene, error) {
	query := `SELECT ` + sceneColumns + ` FROM scenes WHERE project_id = ? ORDER BY scene_number, created_at`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing scenes: %w", err)
	}
	defer rows.Close()

	var scenes []*domain.Scene
	for rows.Next() {
		var s domain.Scene
		var locationID sql.NullString
		var castIDs, crewIDs, equipmentIDs string
		var createdAtStr, updatedAtStr string
		err := rows.Scan(
			&s.ID, &s.ProjectID, &s.SceneNumber, &s.Description, &locationID, &s.LocationName,
			&castIDs, &crewIDs, &equipmentIDs, &s.DurationMin, &s.SpecialRequirements,
			&createdAtStr, &updatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning scene row: %w", err)
		}
		scene, err := populateScene(&s, locationID, castIDs, crewIDs, equipmentIDs, createdAtStr, updatedAtStr)
		if err != nil {
			return nil, err
		}
		scenes = append(scenes, scene)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating scenes: %w", err)
	}
	return scenes, nil
}

func (r *SQLiteSceneRepo) Update(ctx context.Context, s *domain.Scene) error {
	castIDs, err := idsToJSON(s.CastIDs)
	if err != nil {
		return err
	}
	crewIDs, err := idsToJSON(s.CrewIDs)
	if err != nil {
		return err
	}
	equipmentIDs, err := idsToJSON(s.EquipmentIDs)
	if err != nil {
		return err
	}

	query := `UPDATE scenes SET scene_number = ?, description = ?, location_id = ?, location_name = ?,
		cast_ids = ?, crew_ids = ?, equipment_ids = ?, duration_min = ?, special_requirements = ?, updated_at = ?
		WHERE id = ?`
	_, err = r.db.ExecContext(ctx, query,
		s.SceneNumber,
		s.Description,
		nullableStringToValue(s.LocationID),
		s.LocationName,
		castIDs,
		crewIDs,
		equipmentIDs,
		s.DurationMin,
		s.SpecialRequirements,
		s.UpdatedAt.Format(time.RFC3339),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating scene: %w", err)
	}
	return nil
}

func (r *SQLiteSceneRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM scenes WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting scene: %w", err)
	}
	return nil
}

func (r *SQLiteSceneRepo) ListShootingDayIDs(ctx context.Context, sceneID string) ([]string, error) {
	query := `SELECT shooting_day_id FROM scene_shooting_days WHERE scene_id = ?`
	rows, err := r.db.QueryContext(ctx, query, sceneID)
	if err != nil {
		return nil, fmt.Errorf("listing scene shooting days: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning shooting day id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating scene shooting days: %w", err)
	}
	return ids, nil
}

func (r *SQLiteSceneRepo) LinkShootingDay(ctx context.Context, sceneID, shootingDayID string) error {
	query := `INSERT OR IGNORE INTO scene_shooting_days (scene_id, shooting_day_id) VALUES (?, ?)`
	if _, err := r.db.ExecContext(ctx, query, sceneID, shootingDayID); err != nil {
		return fmt.Errorf("linking scene to shooting day: %w", err)
	}
	return nil
}

func (r *SQLiteSceneRepo) UnlinkShootingDay(ctx context.Context, sceneID, shootingDayID string) error {
	query := `DELETE FROM scene_shooting_days WHERE scene_id = ? AND shooting_day_id = ?`
	if _, err := r.db.ExecContext(ctx, query, sceneID, shootingDayID); err != nil {
		return fmt.Errorf("unlinking scene from shooting day: %w", err)
	}
	return nil
}

func populateScene(s *domain.Scene, locationID sql.NullString, castIDs, crewIDs, equipmentIDs, createdAtStr, updatedAtStr string) (*domain.Scene, error) {
	s.LocationID = parseNullableString(locationID)

	var err error
	if s.CastIDs, err = idsFromJSON(castIDs); err != nil {
		return nil, fmt.Errorf("parsing cast_ids: %w", err)
	}
	if s.CrewIDs, err = idsFromJSON(crewIDs); err != nil {
		return nil, fmt.Errorf("parsing crew_ids: %w", err)
	}
	if s.EquipmentIDs, err = idsFromJSON(equipmentIDs); err != nil {
		return nil, fmt.Errorf("parsing equipment_ids: %w", err)
	}

	if s.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if s.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return s, nil
}
