package service

import (
	"context"
	"testing"
	"time"

	"callsheet/internal/domain"
	"callsheet/internal/repository"
	"callsheet/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (e *serviceEnv) newDay(t *testing.T, date time.Time) *domain.ShootingDay {
	t.Helper()
	d := &domain.ShootingDay{ProjectID: e.project.ID, Date: date}
	require.NoError(t, e.schedule.CreateDay(context.Background(), d))
	return d
}

func TestSceneService_AssignShootingDaysLinksAndMaterializes(t *testing.T) {
	env := newServiceEnv(t)
	ctx := context.Background()

	scene := &domain.Scene{
		ProjectID:   env.project.ID,
		SceneNumber: "12A",
		Description: "Rooftop chase",
		CastIDs:     []string{"a1"},
	}
	require.NoError(t, env.scenes.Create(ctx, scene))
	day1 := env.newDay(t, time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC))
	day2 := env.newDay(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC))

	result, err := env.scenes.AssignShootingDays(ctx, scene.ID, []string{day1.ID, day2.ID})
	require.NoError(t, err)
	assert.Len(t, result.CreatedEventIDs, 2)

	ids, err := env.scenes.ListShootingDayIDs(ctx, scene.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{day1.ID, day2.ID}, ids)

	events, err := env.schedule.ListDayEvents(ctx, env.project.ID, day1.ID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "12A", events[0].SceneNumber)
}

func TestSceneService_AssignShootingDaysIsIdempotent(t *testing.T) {
	env := newServiceEnv(t)
	ctx := context.Background()

	scene := &domain.Scene{ProjectID: env.project.ID, SceneNumber: "12A"}
	require.NoError(t, env.scenes.Create(ctx, scene))
	day := env.newDay(t, time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC))

	_, err := env.scenes.AssignShootingDays(ctx, scene.ID, []string{day.ID})
	require.NoError(t, err)

	second, err := env.scenes.AssignShootingDays(ctx, scene.ID, []string{day.ID})
	require.NoError(t, err)
	assert.Empty(t, second.CreatedEventIDs)
	assert.Equal(t, []string{day.ID}, second.SkippedDayIDs)
}

func TestSceneService_AssignShootingDaysRejectsForeignDay(t *testing.T) {
	env := newServiceEnv(t)
	ctx := context.Background()

	other := testutil.NewTestProject("Other Film")
	require.NoError(t, repository.NewSQLiteProjectRepo(env.db).Create(ctx, other))
	foreignDay := &domain.ShootingDay{ProjectID: other.ID, Date: time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, env.schedule.CreateDay(ctx, foreignDay))

	scene := &domain.Scene{ProjectID: env.project.ID, SceneNumber: "12A"}
	require.NoError(t, env.scenes.Create(ctx, scene))

	_, err := env.scenes.AssignShootingDays(ctx, scene.ID, []string{foreignDay.ID})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "different project")
}

func TestSceneService_AssignShootingDaysUnknownDayFails(t *testing.T) {
	env := newServiceEnv(t)
	ctx := context.Background()

	scene := &domain.Scene{ProjectID: env.project.ID, SceneNumber: "12A"}
	require.NoError(t, env.scenes.Create(ctx, scene))

	_, err := env.scenes.AssignShootingDays(ctx, scene.ID, []string{"nonexistent"})
	assert.Error(t, err)
}
