package service

import (
	"context"
	"time"

	"callsheet/internal/domain"
	"callsheet/internal/engine"
	"callsheet/internal/repository"
	"github.com/google/uuid"
)

type crewService struct {
	crew       repository.CrewRepo
	propagator *engine.Propagator
	observer   UseCaseObserver
}

func NewCrewService(crew repository.CrewRepo, propagator *engine.Propagator, observers ...UseCaseObserver) CrewService {
	return &crewService{
		crew:       crew,
		propagator: propagator,
		observer:   useCaseObserverOrNoop(observers),
	}
}

func (s *crewService) Create(ctx context.Context, c *domain.CrewMember) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	return s.crew.Create(ctx, c)
}

func (s *crewService) GetByID(ctx context.Context, id string) (*domain.CrewMember, error) {
	return s.crew.GetByID(ctx, id)
}

func (s *crewService) ListByProject(ctx context.Context, projectID string) ([]*domain.CrewMember, error) {
	return s.crew.ListByProject(ctx, projectID)
}

// Update persists the edit, then propagates derived budget fields best-effort.
// The returned PropagationResult is informational; only the edit itself can
// fail the call.
func (s *crewService) Update(ctx context.Context, c *domain.CrewMember) (engine.PropagationResult, error) {
	prev, err := s.crew.GetByID(ctx, c.ID)
	if err != nil {
		return engine.PropagationResult{}, err
	}

	c.UpdatedAt = time.Now().UTC()
	if err := s.crew.Update(ctx, c); err != nil {
		return engine.PropagationResult{}, err
	}

	change := engine.Change{
		Kind:           domain.KindCrew,
		ResourceID:     c.ID,
		DisplayChanged: prev.Name != c.Name || prev.Role != c.Role,
		RateChanged:    floatChanged(prev.DailyRate, c.DailyRate),
		Snapshot:       engine.SnapshotFromCrew(c),
	}

	started := time.Now()
	result := s.propagator.Propagate(ctx, change)
	observePropagation(ctx, s.observer, domain.KindCrew, c.ID, started, result)
	return result, nil
}

func (s *crewService) Delete(ctx context.Context, id string) error {
	return s.crew.Delete(ctx, id)
}
