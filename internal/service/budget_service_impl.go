package service

import (
	"context"
	"fmt"
	"time"

	"callsheet/internal/domain"
	"callsheet/internal/engine"
	"callsheet/internal/repository"
	"github.com/google/uuid"
)

type budgetService struct {
	categories repository.BudgetCategoryRepo
	items      repository.BudgetItemRepo
	crew       repository.CrewRepo
	cast       repository.CastRepo
	equipment  repository.EquipmentRepo
}

func NewBudgetService(
	categories repository.BudgetCategoryRepo,
	items repository.BudgetItemRepo,
	crew repository.CrewRepo,
	cast repository.CastRepo,
	equipment repository.EquipmentRepo,
) BudgetService {
	return &budgetService{
		categories: categories,
		items:      items,
		crew:       crew,
		cast:       cast,
		equipment:  equipment,
	}
}

func (s *budgetService) CreateCategory(ctx context.Context, c *domain.BudgetCategory) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	return s.categories.Create(ctx, c)
}

func (s *budgetService) ListCategories(ctx context.Context, projectID string) ([]*domain.BudgetCategory, error) {
	return s.categories.ListByProject(ctx, projectID)
}

func (s *budgetService) DeleteCategory(ctx context.Context, id string) error {
	return s.categories.Delete(ctx, id)
}

func (s *budgetService) CreateItem(ctx context.Context, b *domain.BudgetItem) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	if b.ProjectID == "" {
		cat, err := s.categories.GetByID(ctx, b.CategoryID)
		if err != nil {
			return fmt.Errorf("resolving category %s: %w", b.CategoryID, err)
		}
		b.ProjectID = cat.ProjectID
	}
	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now
	if b.UnitRate != nil && b.Quantity != nil {
		est := *b.UnitRate * *b.Quantity
		b.EstimatedAmount = &est
	}
	return s.items.Create(ctx, b)
}

func (s *budgetService) GetItem(ctx context.Context, id string) (*domain.BudgetItem, error) {
	return s.items.GetByID(ctx, id)
}

func (s *budgetService) ListItems(ctx context.Context, categoryID string) ([]*domain.BudgetItem, error) {
	return s.items.ListByCategory(ctx, categoryID)
}

func (s *budgetService) ListProjectItems(ctx context.Context, projectID string) ([]*domain.BudgetItem, error) {
	return s.items.ListByProject(ctx, projectID)
}

func (s *budgetService) UpdateItem(ctx context.Context, b *domain.BudgetItem) error {
	b.UpdatedAt = time.Now().UTC()
	if b.UnitRate != nil && b.Quantity != nil {
		est := *b.UnitRate * *b.Quantity
		b.EstimatedAmount = &est
	}
	return s.items.Update(ctx, b)
}

func (s *budgetService) DeleteItem(ctx context.Context, id string) error {
	return s.items.Delete(ctx, id)
}

// LinkItem points the item at a resource and republishes the derived fields
// from it. Cross-project links are rejected here, at write time; the engine
// assumes the invariant already holds.
func (s *budgetService) LinkItem(ctx context.Context, itemID string, kind domain.ResourceKind, resourceID string) error {
	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return err
	}

	snap, resourceProjectID, err := s.resourceSnapshot(ctx, kind, resourceID)
	if err != nil {
		return err
	}
	if resourceProjectID != item.ProjectID {
		return fmt.Errorf("cannot link budget item to %s %s: resource belongs to a different project", kind, resourceID)
	}

	item.SetLink(kind, resourceID)
	item.Description = engine.ComposeDescription(kind, snap)
	if item.UnitRate != nil {
		if rate := engine.RateForUnit(kind, snap, item.Unit); rate != nil {
			r := *rate
			item.UnitRate = &r
			if item.Quantity != nil {
				est := r * *item.Quantity
				item.EstimatedAmount = &est
			}
		}
	}
	item.UpdatedAt = time.Now().UTC()
	return s.items.Update(ctx, item)
}

func (s *budgetService) UnlinkItem(ctx context.Context, itemID string) error {
	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	item.ClearLink()
	item.UpdatedAt = time.Now().UTC()
	return s.items.Update(ctx, item)
}

func (s *budgetService) resourceSnapshot(ctx context.Context, kind domain.ResourceKind, resourceID string) (engine.Snapshot, string, error) {
	switch kind {
	case domain.KindCrew:
		c, err := s.crew.GetByID(ctx, resourceID)
		if err != nil {
			return engine.Snapshot{}, "", err
		}
		return engine.SnapshotFromCrew(c), c.ProjectID, nil
	case domain.KindCast:
		c, err := s.cast.GetByID(ctx, resourceID)
		if err != nil {
			return engine.Snapshot{}, "", err
		}
		return engine.SnapshotFromCast(c), c.ProjectID, nil
	case domain.KindEquipment:
		e, err := s.equipment.GetByID(ctx, resourceID)
		if err != nil {
			return engine.Snapshot{}, "", err
		}
		return engine.SnapshotFromEquipment(e), e.ProjectID, nil
	}
	return engine.Snapshot{}, "", fmt.Errorf("unknown resource kind %q", kind)
}
