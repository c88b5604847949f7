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

type sceneService struct {
	scenes       repository.SceneRepo
	days         repository.ShootingDayRepo
	materializer *engine.Materializer
}

func NewSceneService(scenes repository.SceneRepo, days repository.ShootingDayRepo, materializer *engine.Materializer) SceneService {
	return &sceneService{scenes: scenes, days: days, materializer: materializer}
}

func (s *sceneService) Create(ctx context.Context, scene *domain.Scene) error {
	if scene.ID == "" {
		scene.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	scene.CreatedAt = now
	scene.UpdatedAt = now
	return s.scenes.Create(ctx, scene)
}

func (s *sceneService) GetByID(ctx context.Context, id string) (*domain.Scene, error) {
	return s.scenes.GetByID(ctx, id)
}

func (s *sceneService) ListByProject(ctx context.Context, projectID string) ([]*domain.Scene, error) {
	return s.scenes.ListByProject(ctx, projectID)
}

func (s *sceneService) Update(ctx context.Context, scene *domain.Scene) error {
	scene.UpdatedAt = time.Now().UTC()
	return s.scenes.Update(ctx, scene)
}

func (s *sceneService) Delete(ctx context.Context, id string) error {
	return s.scenes.Delete(ctx, id)
}

// AssignShootingDays records the scene-to-day links and materializes the
// schedule events. Unlike budget propagation this is not fire-and-forget:
// any failure is returned and the caller must retry or surface it.
func (s *sceneService) AssignShootingDays(ctx context.Context, sceneID string, shootingDayIDs []string) (engine.MaterializeResult, error) {
	scene, err := s.scenes.GetByID(ctx, sceneID)
	if err != nil {
		return engine.MaterializeResult{}, err
	}

	for _, dayID := range shootingDayIDs {
		day, err := s.days.GetByID(ctx, dayID)
		if err != nil {
			return engine.MaterializeResult{}, fmt.Errorf("resolving shooting day %s: %w", dayID, err)
		}
		if day.ProjectID != scene.ProjectID {
			return engine.MaterializeResult{}, fmt.Errorf("shooting day %s belongs to a different project", dayID)
		}
		if err := s.scenes.LinkShootingDay(ctx, sceneID, dayID); err != nil {
			return engine.MaterializeResult{}, err
		}
	}

	return s.materializer.Materialize(ctx, sceneID, shootingDayIDs)
}

func (s *sceneService) ListShootingDayIDs(ctx context.Context, sceneID string) ([]string, error) {
	return s.scenes.ListShootingDayIDs(ctx, sceneID)
}
