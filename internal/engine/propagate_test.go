package engine

import (
	"context"
	"errors"
	"testing"

	"callsheet/internal/domain"
	"callsheet/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropagate_EquipmentRateChange(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	camera := env.addEquipment(t, "ARRI Alexa 35", testutil.WithEquipmentRates(600, 2400))
	cat := env.addCategory(t)
	item := env.addItem(t, cat.ID, "ARRI Alexa 35",
		testutil.WithLink(domain.KindEquipment, camera.ID),
		testutil.WithUnit("days"),
		testutil.WithUnitRate(500),
		testutil.WithQuantity(3),
		testutil.WithEstimatedAmount(1500),
	)

	p := NewPropagator(env.items, testutil.NewTestUoW(env.db))
	result := p.Propagate(ctx, Change{
		Kind:        domain.KindEquipment,
		ResourceID:  camera.ID,
		RateChanged: true,
		Snapshot:    SnapshotFromEquipment(camera),
	})

	assert.Equal(t, StatusPropagated, result.Status)
	assert.Equal(t, 1, result.Updated)

	fetched, err := env.items.GetByID(ctx, item.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched.UnitRate)
	assert.Equal(t, 600.0, *fetched.UnitRate)
	require.NotNil(t, fetched.EstimatedAmount)
	assert.Equal(t, 1800.0, *fetched.EstimatedAmount)
}

func TestPropagate_WeeklyUnitPicksWeeklyRate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	light := env.addEquipment(t, "18K HMI", testutil.WithEquipmentRates(400, 1600))
	cat := env.addCategory(t)
	item := env.addItem(t, cat.ID, "18K HMI",
		testutil.WithLink(domain.KindEquipment, light.ID),
		testutil.WithUnit("weeks"),
		testutil.WithUnitRate(1500),
		testutil.WithQuantity(2),
	)

	p := NewPropagator(env.items, testutil.NewTestUoW(env.db))
	result := p.Propagate(ctx, Change{
		Kind:        domain.KindEquipment,
		ResourceID:  light.ID,
		RateChanged: true,
		Snapshot:    SnapshotFromEquipment(light),
	})
	assert.Equal(t, StatusPropagated, result.Status)

	fetched, err := env.items.GetByID(ctx, item.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched.UnitRate)
	assert.Equal(t, 1600.0, *fetched.UnitRate)
	require.NotNil(t, fetched.EstimatedAmount)
	assert.Equal(t, 3200.0, *fetched.EstimatedAmount)
}

func TestPropagate_DisplayChangeRewritesDescription(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	gaffer := env.addCrew(t, "Ana Reyes", testutil.WithCrewRole("Gaffer"), testutil.WithCrewDailyRate(650))
	cat := env.addCategory(t)
	item := env.addItem(t, cat.ID, "Ana Reyes - Gaffer",
		testutil.WithLink(domain.KindCrew, gaffer.ID),
		testutil.WithUnit("days"),
	)

	gaffer.Name = "Ana Reyes-Okafor"
	p := NewPropagator(env.items, testutil.NewTestUoW(env.db))
	result := p.Propagate(ctx, Change{
		Kind:           domain.KindCrew,
		ResourceID:     gaffer.ID,
		DisplayChanged: true,
		Snapshot:       SnapshotFromCrew(gaffer),
	})
	assert.Equal(t, StatusPropagated, result.Status)

	fetched, err := env.items.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana Reyes-Okafor - Gaffer", fetched.Description)
	// Rate did not change, so the item's (absent) rate stays absent.
	assert.Nil(t, fetched.UnitRate)
}

func TestPropagate_SkipsWithoutRelevantChange(t *testing.T) {
	env := newTestEnv(t)

	p := NewPropagator(env.items, testutil.NewTestUoW(env.db))
	result := p.Propagate(context.Background(), Change{
		Kind:       domain.KindCrew,
		ResourceID: "anything",
	})
	assert.Equal(t, StatusSkipped, result.Status)
	assert.Zero(t, result.Updated)
}

func TestPropagate_SkipsWhenNothingLinked(t *testing.T) {
	env := newTestEnv(t)

	grip := env.addCrew(t, "Ben Okafor", testutil.WithCrewDailyRate(500))
	cat := env.addCategory(t)
	// An unlinked item with a matching description must not be touched.
	env.addItem(t, cat.ID, "Ben Okafor", testutil.WithUnitRate(100))

	p := NewPropagator(env.items, testutil.NewTestUoW(env.db))
	result := p.Propagate(context.Background(), Change{
		Kind:        domain.KindCrew,
		ResourceID:  grip.ID,
		RateChanged: true,
		Snapshot:    SnapshotFromCrew(grip),
	})
	assert.Equal(t, StatusSkipped, result.Status)
}

func TestPropagate_RateSyncSkipsItemsWithoutRate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	grip := env.addCrew(t, "Ben Okafor", testutil.WithCrewDailyRate(550))
	cat := env.addCategory(t)
	item := env.addItem(t, cat.ID, "Ben Okafor",
		testutil.WithLink(domain.KindCrew, grip.ID),
		testutil.WithUnit("days"),
	)

	p := NewPropagator(env.items, testutil.NewTestUoW(env.db))
	result := p.Propagate(ctx, Change{
		Kind:        domain.KindCrew,
		ResourceID:  grip.ID,
		RateChanged: true,
		Snapshot:    SnapshotFromCrew(grip),
	})
	// The item is linked so the batch still runs, but its rate stays unset.
	assert.Equal(t, StatusPropagated, result.Status)

	fetched, err := env.items.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched.UnitRate)
	assert.Nil(t, fetched.EstimatedAmount)
}

func TestPropagate_OnlyLinkedItemsTouched(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	a := env.addCrew(t, "Ana Reyes", testutil.WithCrewDailyRate(650))
	b := env.addCrew(t, "Ben Okafor", testutil.WithCrewDailyRate(500))
	cat := env.addCategory(t)
	itemA := env.addItem(t, cat.ID, "Ana Reyes",
		testutil.WithLink(domain.KindCrew, a.ID), testutil.WithUnitRate(600))
	itemB := env.addItem(t, cat.ID, "Ben Okafor",
		testutil.WithLink(domain.KindCrew, b.ID), testutil.WithUnitRate(450))

	p := NewPropagator(env.items, testutil.NewTestUoW(env.db))
	result := p.Propagate(ctx, Change{
		Kind:        domain.KindCrew,
		ResourceID:  a.ID,
		RateChanged: true,
		Snapshot:    SnapshotFromCrew(a),
	})
	assert.Equal(t, StatusPropagated, result.Status)
	assert.Equal(t, 1, result.Updated)

	fetchedA, err := env.items.GetByID(ctx, itemA.ID)
	require.NoError(t, err)
	assert.Equal(t, 650.0, *fetchedA.UnitRate)

	fetchedB, err := env.items.GetByID(ctx, itemB.ID)
	require.NoError(t, err)
	assert.Equal(t, 450.0, *fetchedB.UnitRate)
}

func TestPropagate_BatchFailureRollsBackEverything(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	crew := env.addCrew(t, "Ana Reyes", testutil.WithCrewDailyRate(700))
	cat := env.addCategory(t)
	item1 := env.addItem(t, cat.ID, "Ana Reyes",
		testutil.WithLink(domain.KindCrew, crew.ID), testutil.WithUnitRate(650))
	item2 := env.addItem(t, cat.ID, "Ana Reyes (2nd unit)",
		testutil.WithLink(domain.KindCrew, crew.ID), testutil.WithUnitRate(650))

	boom := errors.New("disk full")
	uow := &testutil.FailOnNthExecUoW{DB: env.db, FailOn: 2, Err: boom}

	p := NewPropagator(env.items, uow)
	result := p.Propagate(ctx, Change{
		Kind:        domain.KindCrew,
		ResourceID:  crew.ID,
		RateChanged: true,
		Snapshot:    SnapshotFromCrew(crew),
	})

	assert.Equal(t, StatusFailed, result.Status)
	require.Error(t, result.Err)
	assert.ErrorIs(t, result.Err, boom)

	// Neither item moved: the first write rolled back with the second.
	for _, id := range []string{item1.ID, item2.ID} {
		fetched, err := env.items.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 650.0, *fetched.UnitRate)
	}
}
