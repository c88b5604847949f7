package repository

import (
	"context"

	"callsheet/internal/domain"
)

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}

type CrewRepo interface {
	Create(ctx context.Context, c *domain.CrewMember) error
	GetByID(ctx context.Context, id string) (*domain.CrewMember, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.CrewMember, error)
	Update(ctx context.Context, c *domain.CrewMember) error
	Delete(ctx context.Context, id string) error
}

type CastRepo interface {
	Create(ctx context.Context, c *domain.CastMember) error
	GetByID(ctx context.Context, id string) (*domain.CastMember, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.CastMember, error)
	Update(ctx context.Context, c *domain.CastMember) error
	Delete(ctx context.Context, id string) error
}

type EquipmentRepo interface {
	Create(ctx context.Context, e *domain.Equipment) error
	GetByID(ctx context.Context, id string) (*domain.Equipment, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Equipment, error)
	Update(ctx context.Context, e *domain.Equipment) error
	Delete(ctx context.Context, id string) error
}

type BudgetCategoryRepo interface {
	Create(ctx context.Context, c *domain.BudgetCategory) error
	GetByID(ctx context.Context, id string) (*domain.BudgetCategory, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.BudgetCategory, error)
	Update(ctx context.Context, c *domain.BudgetCategory) error
	Delete(ctx context.Context, id string) error
}

type BudgetItemRepo interface {
	Create(ctx context.Context, b *domain.BudgetItem) error
	GetByID(ctx context.Context, id string) (*domain.BudgetItem, error)
	ListByCategory(ctx context.Context, categoryID string) ([]*domain.BudgetItem, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.BudgetItem, error)
	// ListByLinkedResource returns every item whose link column for the given
	// kind equals resourceID.
	ListByLinkedResource(ctx context.Context, kind domain.ResourceKind, resourceID string) ([]*domain.BudgetItem, error)
	Update(ctx context.Context, b *domain.BudgetItem) error
	// UpdateDerived writes only the propagation-owned fields (description,
	// unit_rate, estimated_amount, updated_at), leaving the rest to the CRUD layer.
	UpdateDerived(ctx context.Context, b *domain.BudgetItem) error
	Delete(ctx context.Context, id string) error
}

type SceneRepo interface {
	Create(ctx context.Context, s *domain.Scene) error
	GetByID(ctx context.Context, id string) (*domain.Scene, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Scene, error)
	Update(ctx context.Context, s *domain.Scene) error
	Delete(ctx context.Context, id string) error

	// Scene to shooting-day links.
	ListShootingDayIDs(ctx context.Context, sceneID string) ([]string, error)
	LinkShootingDay(ctx context.Context, sceneID, shootingDayID string) error
	UnlinkShootingDay(ctx context.Context, sceneID, shootingDayID string) error
}

type ShootingDayRepo interface {
	Create(ctx context.Context, d *domain.ShootingDay) error
	GetByID(ctx context.Context, id string) (*domain.ShootingDay, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.ShootingDay, error)
	Update(ctx context.Context, d *domain.ShootingDay) error
	Delete(ctx context.Context, id string) error
}

type ScheduleEventRepo interface {
	Create(ctx context.Context, e *domain.ScheduleEvent) error
	GetByID(ctx context.Context, id string) (*domain.ScheduleEvent, error)
	// ListByShootingDay returns the day's events ordered by order_index.
	ListByShootingDay(ctx context.Context, projectID, shootingDayID string) ([]*domain.ScheduleEvent, error)
	ListByScene(ctx context.Context, sceneID string) ([]*domain.ScheduleEvent, error)
	// MaxOrderForDay returns the highest order_index on the day, or 0 if the
	// day has no events.
	MaxOrderForDay(ctx context.Context, shootingDayID string) (int, error)
	Delete(ctx context.Context, id string) error
}
