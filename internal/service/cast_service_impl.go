package service

import (
	"context"
	"time"

	"callsheet/internal/domain"
	"callsheet/internal/engine"
	"callsheet/internal/repository"
	"github.com/google/uuid"
)

type castService struct {
	cast       repository.CastRepo
	propagator *engine.Propagator
	observer   UseCaseObserver
}

func NewCastService(cast repository.CastRepo, propagator *engine.Propagator, observers ...UseCaseObserver) CastService {
	return &castService{
		cast:       cast,
		propagator: propagator,
		observer:   useCaseObserverOrNoop(observers),
	}
}

func (s *castService) Create(ctx context.Context, c *domain.CastMember) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	return s.cast.Create(ctx, c)
}

func (s *castService) GetByID(ctx context.Context, id string) (*domain.CastMember, error) {
	return s.cast.GetByID(ctx, id)
}

func (s *castService) ListByProject(ctx context.Context, projectID string) ([]*domain.CastMember, error) {
	return s.cast.ListByProject(ctx, projectID)
}

func (s *castService) Update(ctx context.Context, c *domain.CastMember) (engine.PropagationResult, error) {
	prev, err := s.cast.GetByID(ctx, c.ID)
	if err != nil {
		return engine.PropagationResult{}, err
	}

	c.UpdatedAt = time.Now().UTC()
	if err := s.cast.Update(ctx, c); err != nil {
		return engine.PropagationResult{}, err
	}

	change := engine.Change{
		Kind:           domain.KindCast,
		ResourceID:     c.ID,
		DisplayChanged: prev.ActorName != c.ActorName || prev.CharacterName != c.CharacterName,
		RateChanged:    floatChanged(prev.DailyRate, c.DailyRate),
		Snapshot:       engine.SnapshotFromCast(c),
	}

	started := time.Now()
	result := s.propagator.Propagate(ctx, change)
	observePropagation(ctx, s.observer, domain.KindCast, c.ID, started, result)
	return result, nil
}

func (s *castService) Delete(ctx context.Context, id string) error {
	return s.cast.Delete(ctx, id)
}
