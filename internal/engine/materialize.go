package engine

import (
	"context"
	"fmt"
	"time"

	"callsheet/internal/db"
	"callsheet/internal/domain"
	"callsheet/internal/repository"
	"github.com/google/uuid"
)

// Materializer turns a scene's shooting-day assignments into schedule events,
// one per day. Unlike the propagator this path is fail-closed: downstream
// schedule views depend on the events existing, so any error aborts the whole
// batch and is returned to the caller.
type Materializer struct {
	uow db.UnitOfWork
	now func() time.Time
}

// NewMaterializer creates a Materializer over the given unit of work.
func NewMaterializer(uow db.UnitOfWork) *Materializer {
	return &Materializer{uow: uow, now: func() time.Time { return time.Now().UTC() }}
}

// Materialize creates a "scene" event on each listed shooting day that does
// not already have one for this scene. It is idempotent per (scene, day) pair:
// a second call with the same inputs creates nothing. New events append at
// max(order)+1 on their day; existing events are never reordered.
func (m *Materializer) Materialize(ctx context.Context, sceneID string, shootingDayIDs []string) (MaterializeResult, error) {
	var result MaterializeResult

	err := m.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txScenes := repository.NewSQLiteSceneRepo(tx)
		txEvents := repository.NewSQLiteScheduleEventRepo(tx)

		scene, err := txScenes.GetByID(ctx, sceneID)
		if err != nil {
			return fmt.Errorf("loading scene: %w", err)
		}

		existing, err := txEvents.ListByScene(ctx, sceneID)
		if err != nil {
			return fmt.Errorf("listing existing scene events: %w", err)
		}
		covered := make(map[string]bool, len(existing))
		for _, ev := range existing {
			covered[ev.ShootingDayID] = true
		}

		now := m.now()
		for _, dayID := range shootingDayIDs {
			if covered[dayID] {
				result.SkippedDayIDs = append(result.SkippedDayIDs, dayID)
				continue
			}
			// Guards against the same day appearing twice in the input.
			covered[dayID] = true

			maxOrder, err := txEvents.MaxOrderForDay(ctx, dayID)
			if err != nil {
				return fmt.Errorf("computing next event order: %w", err)
			}

			event := eventFromScene(scene, dayID, maxOrder+1, now)
			if err := txEvents.Create(ctx, event); err != nil {
				return fmt.Errorf("creating schedule event: %w", err)
			}
			result.CreatedEventIDs = append(result.CreatedEventIDs, event.ID)
		}
		return nil
	})
	if err != nil {
		return MaterializeResult{}, err
	}
	return result, nil
}

// eventFromScene copies a scene's display and resource fields into a new
// schedule event. The copies are deliberate: events keep the values the scene
// had at materialization time.
func eventFromScene(scene *domain.Scene, shootingDayID string, orderIndex int, now time.Time) *domain.ScheduleEvent {
	sceneID := scene.ID
	return &domain.ScheduleEvent{
		ID:            uuid.New().String(),
		ProjectID:     scene.ProjectID,
		ShootingDayID: shootingDayID,
		SceneID:       &sceneID,
		Type:          domain.EventScene,
		Description:   scene.Description,
		SceneNumber:   scene.SceneNumber,
		LocationID:    scene.LocationID,
		LocationName:  scene.LocationName,
		CastIDs:       append([]string(nil), scene.CastIDs...),
		CrewIDs:       append([]string(nil), scene.CrewIDs...),
		EquipmentIDs:  append([]string(nil), scene.EquipmentIDs...),
		DurationMin:   scene.DurationMin,
		Notes:         scene.SpecialRequirements,
		OrderIndex:    orderIndex,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
