package service

import (
	"context"

	"callsheet/internal/domain"
	"callsheet/internal/engine"
)

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}

// CrewService owns crew CRUD. Updates diff the stored record against the new
// one and trigger a best-effort budget propagation; a propagation failure never
// fails the edit.
type CrewService interface {
	Create(ctx context.Context, c *domain.CrewMember) error
	GetByID(ctx context.Context, id string) (*domain.CrewMember, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.CrewMember, error)
	Update(ctx context.Context, c *domain.CrewMember) (engine.PropagationResult, error)
	Delete(ctx context.Context, id string) error
}

type CastService interface {
	Create(ctx context.Context, c *domain.CastMember) error
	GetByID(ctx context.Context, id string) (*domain.CastMember, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.CastMember, error)
	Update(ctx context.Context, c *domain.CastMember) (engine.PropagationResult, error)
	Delete(ctx context.Context, id string) error
}

type EquipmentService interface {
	Create(ctx context.Context, e *domain.Equipment) error
	GetByID(ctx context.Context, id string) (*domain.Equipment, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Equipment, error)
	Update(ctx context.Context, e *domain.Equipment) (engine.PropagationResult, error)
	Delete(ctx context.Context, id string) error
}

type BudgetService interface {
	CreateCategory(ctx context.Context, c *domain.BudgetCategory) error
	ListCategories(ctx context.Context, projectID string) ([]*domain.BudgetCategory, error)
	DeleteCategory(ctx context.Context, id string) error

	CreateItem(ctx context.Context, b *domain.BudgetItem) error
	GetItem(ctx context.Context, id string) (*domain.BudgetItem, error)
	ListItems(ctx context.Context, categoryID string) ([]*domain.BudgetItem, error)
	ListProjectItems(ctx context.Context, projectID string) ([]*domain.BudgetItem, error)
	UpdateItem(ctx context.Context, b *domain.BudgetItem) error
	DeleteItem(ctx context.Context, id string) error

	// LinkItem points an item at a resource of the given kind and republishes
	// the item's derived fields from that resource.
	LinkItem(ctx context.Context, itemID string, kind domain.ResourceKind, resourceID string) error
	UnlinkItem(ctx context.Context, itemID string) error
}

type SceneService interface {
	Create(ctx context.Context, s *domain.Scene) error
	GetByID(ctx context.Context, id string) (*domain.Scene, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Scene, error)
	Update(ctx context.Context, s *domain.Scene) error
	Delete(ctx context.Context, id string) error

	// AssignShootingDays links the scene to the given days and materializes a
	// schedule event per newly covered day. Fail-closed: any error aborts the
	// whole call.
	AssignShootingDays(ctx context.Context, sceneID string, shootingDayIDs []string) (engine.MaterializeResult, error)
	ListShootingDayIDs(ctx context.Context, sceneID string) ([]string, error)
}

type ScheduleService interface {
	CreateDay(ctx context.Context, d *domain.ShootingDay) error
	GetDay(ctx context.Context, id string) (*domain.ShootingDay, error)
	ListDays(ctx context.Context, projectID string) ([]*domain.ShootingDay, error)
	UpdateDay(ctx context.Context, d *domain.ShootingDay) error
	DeleteDay(ctx context.Context, id string) error

	ListDayEvents(ctx context.Context, projectID, shootingDayID string) ([]*domain.ScheduleEvent, error)

	// CheckConflicts is fail-open: a read failure yields an empty report, not
	// an error. An empty report is therefore not a hard guarantee of no
	// conflicts.
	CheckConflicts(ctx context.Context, req engine.ConflictRequest) engine.ConflictReport
}
