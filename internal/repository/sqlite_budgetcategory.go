package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"callsheet/internal/db"
	"callsheet/internal/domain"
)

// budgetCategoryColumns is the canonical SELECT column list for budget_categories.
const budgetCategoryColumns = `id, project_id, name, order_index, created_at, updated_at`

// SQLiteBudgetCategoryRepo implements BudgetCategoryRepo using a SQLite database.
type SQLiteBudgetCategoryRepo struct {
	db db.DBTX
}

// NewSQLiteBudgetCategoryRepo creates a new SQLiteBudgetCategoryRepo.
func NewSQLiteBudgetCategoryRepo(conn db.DBTX) *SQLiteBudgetCategoryRepo {
	return &SQLiteBudgetCategoryRepo{db: conn}
}

func (r *SQLiteBudgetCategoryRepo) Create(ctx context.Context, c *domain.BudgetCategory) error {
	query := `INSERT INTO budget_categories (id, project_id, name, order_index, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.ProjectID,
		c.Name,
		c.OrderIndex,
		c.CreatedAt.Format(time.RFC3339),
		c.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting budget category: %w", err)
	}
	return nil
}

func (r *SQLiteBudgetCategoryRepo) GetByID(ctx context.Context, id string) (*domain.BudgetCategory, error) {
	query := `SELECT ` + budgetCategoryColumns + ` FROM budget_categories WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var c domain.BudgetCategory
	var createdAtStr, updatedAtStr string
	err := row.Scan(&c.ID, &c.ProjectID, &c.Name, &c.OrderIndex, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("budget category: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning budget category: %w", err)
	}
	return populateBudgetCategory(&c, createdAtStr, updatedAtStr)
}

func (r *SQLiteBudgetCategoryRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.BudgetCategory, error) {
	query := `SELECT ` + budgetCategoryColumns + ` FROM budget_categories WHERE project_id = ? ORDER BY order_index, name`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing budget categories: %w", err)
	}
	defer rows.Close()

	var categories []*domain.BudgetCategory
	for rows.Next() {
		var c domain.BudgetCategory
		var createdAtStr, updatedAtStr string
		if err := rows.Scan(&c.ID, &c.ProjectID, &c.Name, &c.OrderIndex, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning budget category row: %w", err)
		}
		category, err := populateBudgetCategory(&c, createdAtStr, updatedAtStr)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating budget categories: %w", err)
	}
	return categories, nil
}

func (r *SQLiteBudgetCategoryRepo) Update(ctx context.Context, c *domain.BudgetCategory) error {
	query := `UPDATE budget_categories SET name = ?, order_index = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		c.Name,
		c.OrderIndex,
		c.UpdatedAt.Format(time.RFC3339),
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("updating budget category: %w", err)
	}
	return nil
}

func (r *SQLiteBudgetCategoryRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM budget_categories WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting budget category: %w", err)
	}
	return nil
}

func populateBudgetCategory(c *domain.BudgetCategory, createdAtStr, updatedAtStr string) (*domain.BudgetCategory, error) {
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
