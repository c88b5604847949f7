package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"callsheet/internal/domain"
	"callsheet/internal/engine"
	"callsheet/internal/repository"
	"callsheet/internal/testutil"
	"github.com/stretchr/testify/require"
)

// captureObserver records every use-case event for assertions.
type captureObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *captureObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, event)
}

func (o *captureObserver) all() []UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]UseCaseEvent(nil), o.events...)
}

// serviceEnv wires the full service stack over one in-memory database.
type serviceEnv struct {
	db      *sql.DB
	project *domain.Project

	itemRepo  *repository.SQLiteBudgetItemRepo
	eventRepo *repository.SQLiteScheduleEventRepo

	crew      CrewService
	cast      CastService
	equipment EquipmentService
	budget    BudgetService
	scenes    SceneService
	schedule  ScheduleService

	observed *captureObserver
}

func newServiceEnv(t *testing.T) *serviceEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	project := testutil.NewTestProject("Night Shoot")
	require.NoError(t, repository.NewSQLiteProjectRepo(database).Create(ctx, project))

	crewRepo := repository.NewSQLiteCrewRepo(database)
	castRepo := repository.NewSQLiteCastRepo(database)
	equipmentRepo := repository.NewSQLiteEquipmentRepo(database)
	categoryRepo := repository.NewSQLiteBudgetCategoryRepo(database)
	itemRepo := repository.NewSQLiteBudgetItemRepo(database)
	sceneRepo := repository.NewSQLiteSceneRepo(database)
	dayRepo := repository.NewSQLiteShootingDayRepo(database)
	eventRepo := repository.NewSQLiteScheduleEventRepo(database)

	uow := testutil.NewTestUoW(database)
	propagator := engine.NewPropagator(itemRepo, uow)
	observer := &captureObserver{}

	return &serviceEnv{
		db:        database,
		project:   project,
		itemRepo:  itemRepo,
		eventRepo: eventRepo,
		crew:      NewCrewService(crewRepo, propagator, observer),
		cast:      NewCastService(castRepo, propagator, observer),
		equipment: NewEquipmentService(equipmentRepo, propagator, observer),
		budget:    NewBudgetService(categoryRepo, itemRepo, crewRepo, castRepo, equipmentRepo),
		scenes:    NewSceneService(sceneRepo, dayRepo, engine.NewMaterializer(uow)),
		schedule:  NewScheduleService(dayRepo, eventRepo, engine.NewDetector(eventRepo), observer),
		observed:  observer,
	}
}
