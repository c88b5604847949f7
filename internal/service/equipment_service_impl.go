package service

import (
	"context"
	"time"

	"callsheet/internal/domain"
	"callsheet/internal/engine"
	"callsheet/internal/repository"
	"github.com/google/uuid"
)

type equipmentService struct {
	equipment  repository.EquipmentRepo
	propagator *engine.Propagator
	observer   UseCaseObserver
}

func NewEquipmentService(equipment repository.EquipmentRepo, propagator *engine.Propagator, observers ...UseCaseObserver) EquipmentService {
	return &equipmentService{
		equipment:  equipment,
		propagator: propagator,
		observer:   useCaseObserverOrNoop(observers),
	}
}

func (s *equipmentService) Create(ctx context.Context, e *domain.Equipment) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now
	return s.equipment.Create(ctx, e)
}

func (s *equipmentService) GetByID(ctx context.Context, id string) (*domain.Equipment, error) {
	return s.equipment.GetByID(ctx, id)
}

func (s *equipmentService) ListByProject(ctx context.Context, projectID string) ([]*domain.Equipment, error) {
	return s.equipment.ListByProject(ctx, projectID)
}

func (s *equipmentService) Update(ctx context.Context, e *domain.Equipment) (engine.PropagationResult, error) {
	prev, err := s.equipment.GetByID(ctx, e.ID)
	if err != nil {
		return engine.PropagationResult{}, err
	}

	e.UpdatedAt = time.Now().UTC()
	if err := s.equipment.Update(ctx, e); err != nil {
		return engine.PropagationResult{}, err
	}

	change := engine.Change{
		Kind:           domain.KindEquipment,
		ResourceID:     e.ID,
		DisplayChanged: prev.Name != e.Name,
		RateChanged: floatChanged(prev.DailyRate, e.DailyRate) ||
			floatChanged(prev.WeeklyRate, e.WeeklyRate) ||
			floatChanged(prev.FlatRate, e.FlatRate),
		Snapshot: engine.SnapshotFromEquipment(e),
	}

	started := time.Now()
	result := s.propagator.Propagate(ctx, change)
	observePropagation(ctx, s.observer, domain.KindEquipment, e.ID, started, result)
	return result, nil
}

func (s *equipmentService) Delete(ctx context.Context, id string) error {
	return s.equipment.Delete(ctx, id)
}
