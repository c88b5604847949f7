package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"callsheet/internal/db"
	"callsheet/internal/domain"
)

// shootingDayColumns is the canonical SELECT column list for shooting_days.
const shootingDayColumns = `id, project_id, date, basecamp_location_id, parking_location_id,
		holding_location_id, contacts, created_at, updated_at`

// SQLiteShootingDayRepo implements ShootingDayRepo using a SQLite database.
type SQLiteShootingDayRepo struct {
	db db.DBTX
}

// NewSQLiteShootingDayRepo creates a new SQLiteShootingDayRepo.
func NewSQLiteShootingDayRepo(conn db.DBTX) *SQLiteShootingDayRepo {
	return &SQLiteShootingDayRepo{db: conn}
}

func (r *SQLiteShootingDayRepo) Create(ctx context.Context, d *domain.ShootingDay) error {
	contacts, err := contactsToJSON(d.Contacts)
	if err != nil {
		return err
	}

	query := `INSERT INTO shooting_days (id, project_id, date, basecamp_location_id, parking_location_id,
		holding_location_id, contacts, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		d.ID,
		d.ProjectID,
		d.Date.Format(dateLayout),
		nullableStringToValue(d.BasecampLocationID),
		nullableStringToValue(d.ParkingLocationID),
		nullableStringToValue(d.HoldingLocationID),
		contacts,
		d.CreatedAt.Format(time.RFC3339),
		d.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting shooting day: %w", err)
	}
	return nil
}

func (r *SQLiteShootingDayRepo) GetByID(ctx context.Context, id string) (*domain.ShootingDay, error) {
	query := `SELECT ` + shootingDayColumns + ` FROM shooting_days WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var d domain.ShootingDay
	var basecamp, parking, holding sql.NullString
	var dateStr, contacts, createdAtStr, updatedAtStr string
	err := row.Scan(&d.ID, &d.ProjectID, &dateStr, &basecamp, &parking, &holding, &contacts, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("shooting day: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning shooting day: %w", err)
	}
	return populateShootingDay(&d, dateStr, basecamp, parking, holding, contacts, createdAtStr, updatedAtStr)
}

func (r *SQLiteShootingDayRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.ShootingDay, error) {
	query := `SELECT ` + shootingDayColumns + ` FROM shooting_days WHERE project_id = ? ORDER BY date`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing shooting days: %w", err)
	}
	defer rows.Close()

	var days []*domain.ShootingDay
	for rows.Next() {
		var d domain.ShootingDay
		var basecamp, parking, holding sql.NullString
		var dateStr, contacts, createdAtStr, updatedAtStr string
		if err := rows.Scan(&d.ID, &d.ProjectID, &dateStr, &basecamp, &parking, &holding, &contacts, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning shooting day row: %w", err)
		}
		day, err := populateShootingDay(&d, dateStr, basecamp, parking, holding, contacts, createdAtStr, updatedAtStr)
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating shooting days: %w", err)
	}
	return days, nil
}

func (r *SQLiteShootingDayRepo) Update(ctx context.Context, d *domain.ShootingDay) error {
	contacts, err := contactsToJSON(d.Contacts)
	if err != nil {
		return err
	}

	query := `UPDATE shooting_days SET date = ?, basecamp_location_id = ?, parking_location_id = ?,
		holding_location_id = ?, contacts = ?, updated_at = ?
		WHERE id = ?`
	_, err = r.db.ExecContext(ctx, query,
		d.Date.Format(dateLayout),
		nullableStringToValue(d.BasecampLocationID),
		nullableStringToValue(d.ParkingLocationID),
		nullableStringToValue(d.HoldingLocationID),
		contacts,
		d.UpdatedAt.Format(time.RFC3339),
		d.ID,
	)
	if err != nil {
		return fmt.Errorf("updating shooting day: %w", err)
	}
	return nil
}

func (r *SQLiteShootingDayRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM shooting_days WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting shooting day: %w", err)
	}
	return nil
}

func contactsToJSON(contacts []domain.DayContact) (string, error) {
	if contacts == nil {
		contacts = []domain.DayContact{}
	}
	raw, err := json.Marshal(contacts)
	if err != nil {
		return "", fmt.Errorf("encoding day contacts: %w", err)
	}
	return string(raw), nil
}

func populateShootingDay(d *domain.ShootingDay, dateStr string, basecamp, parking, holding sql.NullString, contacts, createdAtStr, updatedAtStr string) (*domain.ShootingDay, error) {
	d.BasecampLocationID = parseNullableString(basecamp)
	d.ParkingLocationID = parseNullableString(parking)
	d.HoldingLocationID = parseNullableString(holding)

	var err error
	if d.Date, err = time.Parse(dateLayout, dateStr); err != nil {
		return nil, fmt.Errorf("parsing date: %w", err)
	}

	if contacts != "" {
		if err := json.Unmarshal([]byte(contacts), &d.Contacts); err != nil {
			return nil, fmt.Errorf("decoding day contacts: %w", err)
		}
	}
	if len(d.Contacts) == 0 {
		d.Contacts = nil
	}

	if d.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if d.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return d, nil
}
