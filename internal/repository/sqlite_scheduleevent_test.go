package repository

import (
	"context"
	"testing"
	"time"

	"callsheet/internal/domain"
	"callsheet/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEvent(projectID, dayID string, orderIndex int) *domain.ScheduleEvent {
	now := time.Now().UTC()
	return &domain.ScheduleEvent{
		ID:            uuid.New().String(),
		ProjectID:     projectID,
		ShootingDayID: dayID,
		Type:          domain.EventCustom,
		Description:   "Setup",
		OrderIndex:    orderIndex,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestScheduleEventRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	projectID := seedProject(t, NewSQLiteProjectRepo(db))
	day := testutil.NewTestShootingDay(projectID, time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC))
	require.NoError(t, NewSQLiteShootingDayRepo(db).Create(ctx, day))

	scene := testutil.NewTestScene(projectID, "12A")
	require.NoError(t, NewSQLiteSceneRepo(db).Create(ctx, scene))

	repo := NewSQLiteScheduleEventRepo(db)
	ev := newTestEvent(projectID, day.ID, 1)
	ev.Type = domain.EventScene
	ev.SceneID = &scene.ID
	ev.SceneNumber = "12A"
	ev.CastIDs = []string{"a1"}
	ev.CrewIDs = []string{"c1", "c2"}
	ev.DurationMin = 45
	ev.Notes = "stunt rig"
	require.NoError(t, repo.Create(ctx, ev))

	fetched, err := repo.GetByID(ctx, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.EventScene, fetched.Type)
	require.NotNil(t, fetched.SceneID)
	assert.Equal(t, scene.ID, *fetched.SceneID)
	assert.Equal(t, "12A", fetched.SceneNumber)
	assert.Equal(t, []string{"a1"}, fetched.CastIDs)
	assert.Equal(t, []string{"c1", "c2"}, fetched.CrewIDs)
	assert.Equal(t, 45, fetched.DurationMin)
	assert.Equal(t, "stunt rig", fetched.Notes)
	assert.Equal(t, 1, fetched.OrderIndex)
}

func TestScheduleEventRepo_ListByShootingDayOrdered(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	projectID := seedProject(t, NewSQLiteProjectRepo(db))
	day := testutil.NewTestShootingDay(projectID, time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC))
	require.NoError(t, NewSQLiteShootingDayRepo(db).Create(ctx, day))

	repo := NewSQLiteScheduleEventRepo(db)
	// Insert out of order; the list comes back by order_index.
	require.NoError(t, repo.Create(ctx, newTestEvent(projectID, day.ID, 3)))
	require.NoError(t, repo.Create(ctx, newTestEvent(projectID, day.ID, 1)))
	require.NoError(t, repo.Create(ctx, newTestEvent(projectID, day.ID, 2)))

	events, err := repo.ListByShootingDay(ctx, projectID, day.ID)
	require.NoError(t, err)
	require.Len(t, events, 3)
	for i, ev := range events {
		assert.Equal(t, i+1, ev.OrderIndex)
	}
}

func TestScheduleEventRepo_MaxOrderForDay(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	projectID := seedProject(t, NewSQLiteProjectRepo(db))
	day := testutil.NewTestShootingDay(projectID, time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC))
	require.NoError(t, NewSQLiteShootingDayRepo(db).Create(ctx, day))

	repo := NewSQLiteScheduleEventRepo(db)

	maxOrder, err := repo.MaxOrderForDay(ctx, day.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, maxOrder)

	require.NoError(t, repo.Create(ctx, newTestEvent(projectID, day.ID, 1)))
	require.NoError(t, repo.Create(ctx, newTestEvent(projectID, day.ID, 2)))

	maxOrder, err = repo.MaxOrderForDay(ctx, day.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, maxOrder)
}

func TestScheduleEventRepo_DuplicateOrderRejected(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	projectID := seedProject(t, NewSQLiteProjectRepo(db))
	day := testutil.NewTestShootingDay(projectID, time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC))
	require.NoError(t, NewSQLiteShootingDayRepo(db).Create(ctx, day))

	repo := NewSQLiteScheduleEventRepo(db)
	require.NoError(t, repo.Create(ctx, newTestEvent(projectID, day.ID, 1)))
	assert.Error(t, repo.Create(ctx, newTestEvent(projectID, day.ID, 1)))
}

func TestScheduleEventRepo_ListByScene(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	projectID := seedProject(t, NewSQLiteProjectRepo(db))
	dayRepo := NewSQLiteShootingDayRepo(db)
	day1 := testutil.NewTestShootingDay(projectID, time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC))
	day2 := testutil.NewTestShootingDay(projectID, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, dayRepo.Create(ctx, day1))
	require.NoError(t, dayRepo.Create(ctx, day2))

	scene := testutil.NewTestScene(projectID, "12")
	require.NoError(t, NewSQLiteSceneRepo(db).Create(ctx, scene))

	repo := NewSQLiteScheduleEventRepo(db)
	ev1 := newTestEvent(projectID, day1.ID, 1)
	ev1.SceneID = &scene.ID
	ev2 := newTestEvent(projectID, day2.ID, 1)
	ev2.SceneID = &scene.ID
	unrelated := newTestEvent(projectID, day1.ID, 2)
	require.NoError(t, repo.Create(ctx, ev1))
	require.NoError(t, repo.Create(ctx, ev2))
	require.NoError(t, repo.Create(ctx, unrelated))

	events, err := repo.ListByScene(ctx, scene.ID)
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestScheduleEventRepo_SceneDeleteKeepsEvent(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	projectID := seedProject(t, NewSQLiteProjectRepo(db))
	day := testutil.NewTestShootingDay(projectID, time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC))
	require.NoError(t, NewSQLiteShootingDayRepo(db).Create(ctx, day))

	sceneRepo := NewSQLiteSceneRepo(db)
	scene := testutil.NewTestScene(projectID, "12")
	require.NoError(t, sceneRepo.Create(ctx, scene))

	repo := NewSQLiteScheduleEventRepo(db)
	ev := newTestEvent(projectID, day.ID, 1)
	ev.SceneID = &scene.ID
	require.NoError(t, repo.Create(ctx, ev))

	// ON DELETE SET NULL: the strip stays on the board without its scene.
	require.NoError(t, sceneRepo.Delete(ctx, scene.ID))

	fetched, err := repo.GetByID(ctx, ev.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched.SceneID)
}
