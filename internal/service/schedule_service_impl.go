package service

import (
	"context"
	"time"

	"callsheet/internal/domain"
	"callsheet/internal/engine"
	"callsheet/internal/repository"
	"github.com/google/uuid"
)

type scheduleService struct {
	days     repository.ShootingDayRepo
	events   repository.ScheduleEventRepo
	detector *engine.Detector
	observer UseCaseObserver
}

func NewScheduleService(days repository.ShootingDayRepo, events repository.ScheduleEventRepo, detector *engine.Detector, observers ...UseCaseObserver) ScheduleService {
	return &scheduleService{
		days:     days,
		events:   events,
		detector: detector,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *scheduleService) CreateDay(ctx context.Context, d *domain.ShootingDay) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	d.CreatedAt = now
	d.UpdatedAt = now
	return s.days.Create(ctx, d)
}

func (s *scheduleService) GetDay(ctx context.Context, id string) (*domain.ShootingDay, error) {
	return s.days.GetByID(ctx, id)
}

func (s *scheduleService) ListDays(ctx context.Context, projectID string) ([]*domain.ShootingDay, error) {
	return s.days.ListByProject(ctx, projectID)
}

func (s *scheduleService) UpdateDay(ctx context.Context, d *domain.ShootingDay) error {
	d.UpdatedAt = time.Now().UTC()
	return s.days.Update(ctx, d)
}

func (s *scheduleService) DeleteDay(ctx context.Context, id string) error {
	return s.days.Delete(ctx, id)
}

func (s *scheduleService) ListDayEvents(ctx context.Context, projectID, shootingDayID string) ([]*domain.ScheduleEvent, error) {
	return s.events.ListByShootingDay(ctx, projectID, shootingDayID)
}

// CheckConflicts runs the detector with the fail-open policy: a read failure
// is logged through the observer and reported as an empty result. An empty
// report is therefore advisory, not a hard guarantee.
func (s *scheduleService) CheckConflicts(ctx context.Context, req engine.ConflictRequest) engine.ConflictReport {
	started := time.Now()
	report, err := s.detector.Detect(ctx, req)
	if err != nil {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "conflict_check",
			Duration:  time.Since(started),
			Success:   false,
			Err:       err,
			StartedAt: started,
			Fields: map[string]any{
				"scene_id":        req.SceneID,
				"shooting_day_id": req.ShootingDayID,
			},
		})
		return engine.ConflictReport{}
	}
	return report
}
