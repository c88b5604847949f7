package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"callsheet/internal/db"
	"callsheet/internal/domain"
)

// budgetItemColumns is the canonical SELECT column list for budget_items.
const budgetItemColumns = `id, category_id, project_id, description, unit, unit_rate, quantity,
		estimated_amount, actual_amount,
		linked_crew_member_id, linked_cast_member_id, linked_equipment_id,
		created_at, updated_at`

// SQLiteBudgetItemRepo implements BudgetItemRepo using a SQLite database.
type SQLiteBudgetItemRepo struct {
	db db.DBTX
}

// NewSQLiteBudgetItemRepo creates a new SQLiteBudgetItemRepo.
func NewSQLiteBudgetItemRepo(conn db.DBTX) *SQLiteBudgetItemRepo {
	return &SQLiteBudgetItemRepo{db: conn}
}

// linkColumnForKind maps a resource kind to its link column on budget_items.
func linkColumnForKind(kind domain.ResourceKind) (string, error) {
	switch kind {
	case domain.KindCrew:
		return "linked_crew_member_id", nil
	case domain.KindCast:
		return "linked_cast_member_id", nil
	case domain.KindEquipment:
		return "linked_equipment_id", nil
	}
	return "", fmt.Errorf("unknown resource kind %q", kind)
}

func (r *SQLiteBudgetItemRepo) Create(ctx context.Context, b *domain.BudgetItem) error {
	query := `INSERT INTO budget_items (id, category_id, project_id, description, unit, unit_rate, quantity,
		estimated_amount, actual_amount,
		linked_crew_member_id, linked_cast_member_id, linked_equipment_id,
		created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		b.ID,
		b.CategoryID,
		b.ProjectID,
		b.Description,
		b.Unit,
		nullableFloatToValue(b.UnitRate),
		nullableFloatToValue(b.Quantity),
		nullableFloatToValue(b.EstimatedAmount),
		nullableFloatToValue(b.ActualAmount),
		nullableStringToValue(b.LinkedCrewMemberID),
		nullableStringToValue(b.LinkedCastMemberID),
		nullableStringToValue(b.LinkedEquipmentID),
		b.CreatedAt.Format(time.RFC3339),
		b.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting budget item: %w", err)
	}
	return nil
}

func (r *SQLiteBudgetItemRepo) GetByID(ctx context.Context, id string) (*domain.BudgetItem, error) {
	query := `SELECT ` + budgetItemColumns + ` FROM budget_items WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanBudgetItem(row)
}

func (r *SQLiteBudgetItemRepo) ListByCategory(ctx context.Context, categoryID string) ([]*domain.BudgetItem, error) {
	query := `SELECT ` + budgetItemColumns + ` FROM budget_items WHERE category_id = ? ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("listing budget items by category: %w", err)
	}
	defer rows.Close()
	return r.scanBudgetItems(rows)
}

func (r *SQLiteBudgetItemRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.BudgetItem, error) {
	query := `SELECT ` + budgetItemColumns + ` FROM budget_items WHERE project_id = ? ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing budget items by project: %w", err)
	}
	defer rows.Close()
	return r.scanBudgetItems(rows)
}

func (r *SQLiteBudgetItemRepo) ListByLinkedResource(ctx context.Context, kind domain.ResourceKind, resourceID string) ([]*domain.BudgetItem, error) {
	column, err := linkColumnForKind(kind)
	if err != nil {
		return nil, err
	}
	query := `SELECT ` + budgetItemColumns + ` FROM budget_items WHERE ` + column + ` = ? ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, resourceID)
	if err != nil {
		return nil, fmt.Errorf("listing budget items by linked %s: %w", kind, err)
	}
	defer rows.Close()
	return r.scanBudgetItems(rows)
}

func (r *SQLiteBudgetItemRepo) Update(ctx context.Context, b *domain.BudgetItem) error {
	query := `UPDATE budget_items SET category_id = ?, description = ?, unit = ?, unit_rate = ?, quantity = ?,
		estimated_amount = ?, actual_amount = ?,
		linked_crew_member_id = ?, linked_cast_member_id = ?, linked_equipment_id = ?,
		updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		b.CategoryID,
		b.Description,
		b.Unit,
		nullableFloatToValue(b.UnitRate),
		nullableFloatToValue(b.Quantity),
		nullableFloatToValue(b.EstimatedAmount),
		nullableFloatToValue(b.ActualAmount),
		nullableStringToValue(b.LinkedCrewMemberID),
		nullableStringToValue(b.LinkedCastMemberID),
		nullableStringToValue(b.LinkedEquipmentID),
		b.UpdatedAt.Format(time.RFC3339),
		b.ID,
	)
	if err != nil {
		return fmt.Errorf("updating budget item: %w", err)
	}
	return nil
}

func (r *SQLiteBudgetItemRepo) UpdateDerived(ctx context.Context, b *domain.BudgetItem) error {
	query := `UPDATE budget_items SET description = ?, unit_rate = ?, estimated_amount = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		b.Description,
		nullableFloatToValue(b.UnitRate),
		nullableFloatToValue(b.EstimatedAmount),
		b.UpdatedAt.Format(time.RFC3339),
		b.ID,
	)
	if err != nil {
		return fmt.Errorf("updating budget item derived fields: %w", err)
	}
	return nil
}

func (r *SQLiteBudgetItemRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM budget_items WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting budget item: %w", err)
	}
	return nil
}

// scanBudgetItem scans a single budget item from a *sql.Row.
func (r *SQLiteBudgetItemRepo) scanBudgetItem(row *sql.Row) (*domain.BudgetItem, error) {
	var b domain.BudgetItem
	var unitRate, quantity, estimated, actual sql.NullFloat64
	var crewID, castID, equipmentID sql.NullString
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&b.ID, &b.CategoryID, &b.ProjectID, &b.Description, &b.Unit, &unitRate, &quantity,
		&estimated, &actual,
		&crewID, &castID, &equipmentID,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("budget item: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning budget item: %w", err)
	}
	return r.populateBudgetItem(&b, unitRate, quantity, estimated, actual, crewID, castID, equipmentID, createdAtStr, updatedAtStr)
}

// scanBudgetItems scans multiple budget items from *sql.Rows.
func (r *SQLiteBudgetItemRepo) scanBudgetItems(rows *sql.Rows) ([]*domain.BudgetItem, error) {
	var items []*domain.BudgetItem
	for rows.Next() {
		var b domain.BudgetItem
		var unitRate, quantity, estimated, actual sql.NullFloat64
		var crewID, castID, equipmentID sql.NullString
		var createdAtStr, updatedAtStr string

		err := rows.Scan(
			&b.ID, &b.CategoryID, &b.ProjectID, &b.Description, &b.Unit, &unitRate, &quantity,
			&estimated, &actual,
			&crewID, &castID, &equipmentID,
			&createdAtStr, &updatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning budget item row: %w", err)
		}

		item, err := r.populateBudgetItem(&b, unitRate, quantity, estimated, actual, crewID, castID, equipmentID, createdAtStr, updatedAtStr)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating budget items: %w", err)
	}
	return items, nil
}

// populateBudgetItem fills in parsed fields on a BudgetItem after scanning raw values.
func (r *SQLiteBudgetItemRepo) populateBudgetItem(
	b *domain.BudgetItem,
	unitRate, quantity, estimated, actual sql.NullFloat64,
	crewID, castID, equipmentID sql.NullString,
	createdAtStr, updatedAtStr string,
) (*domain.BudgetItem, error) {
	b.UnitRate = parseNullableFloat(unitRate)
	b.Quantity = parseNullableFloat(quantity)
	b.EstimatedAmount = parseNullableFloat(estimated)
	b.ActualAmount = parseNullableFloat(actual)
	b.LinkedCrewMemberID = parseNullableString(crewID)
	b.LinkedCastMemberID = parseNullableString(castID)
	b.LinkedEquipmentID = parseNullableString(equipmentID)

	var parseErr error
	b.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	b.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return b, nil
}
