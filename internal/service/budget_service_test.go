package service

import (
	"context"
	"testing"

	"callsheet/internal/domain"
	"callsheet/internal/repository"
	"callsheet/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBudgetService_CreateItemComputesEstimate(t *testing.T) {
	env := newServiceEnv(t)
	ctx := context.Background()

	cat := &domain.BudgetCategory{ProjectID: env.project.ID, Name: "Camera"}
	require.NoError(t, env.budget.CreateCategory(ctx, cat))

	rate, qty := 500.0, 3.0
	item := &domain.BudgetItem{
		CategoryID:  cat.ID,
		Description: "ARRI Alexa 35",
		Unit:        "days",
		UnitRate:    &rate,
		Quantity:    &qty,
	}
	require.NoError(t, env.budget.CreateItem(ctx, item))

	// Project is inherited from the category.
	assert.Equal(t, env.project.ID, item.ProjectID)
	require.NotNil(t, item.EstimatedAmount)
	assert.Equal(t, 1500.0, *item.EstimatedAmount)
}

func TestBudgetService_LinkItemRepublishesFromResource(t *testing.T) {
	env := newServiceEnv(t)
	ctx := context.Background()

	camera := &domain.Equipment{ProjectID: env.project.ID, Name: "ARRI Alexa 35"}
	daily, weekly := 600.0, 2400.0
	camera.DailyRate = &daily
	camera.WeeklyRate = &weekly
	require.NoError(t, env.equipment.Create(ctx, camera))

	cat := &domain.BudgetCategory{ProjectID: env.project.ID, Name: "Camera"}
	require.NoError(t, env.budget.CreateCategory(ctx, cat))

	rate, qty := 500.0, 3.0
	item := &domain.BudgetItem{
		CategoryID:  cat.ID,
		Description: "Camera rental",
		Unit:        "days",
		UnitRate:    &rate,
		Quantity:    &qty,
	}
	require.NoError(t, env.budget.CreateItem(ctx, item))

	require.NoError(t, env.budget.LinkItem(ctx, item.ID, domain.KindEquipment, camera.ID))

	fetched, err := env.budget.GetItem(ctx, item.ID)
	require.NoError(t, err)
	kind, id, ok := fetched.LinkedResource()
	require.True(t, ok)
	assert.Equal(t, domain.KindEquipment, kind)
	assert.Equal(t, camera.ID, id)
	assert.Equal(t, "ARRI Alexa 35", fetched.Description)
	assert.Equal(t, 600.0, *fetched.UnitRate)
	assert.Equal(t, 1800.0, *fetched.EstimatedAmount)
}

func TestBudgetService_LinkItemWithoutRateOnlySetsDescription(t *testing.T) {
	env := newServiceEnv(t)
	ctx := context.Background()

	crew := &domain.CrewMember{ProjectID: env.project.ID, Name: "Ana Reyes", Role: "Gaffer"}
	rate := 650.0
	crew.DailyRate = &rate
	require.NoError(t, env.crew.Create(ctx, crew))

	cat := &domain.BudgetCategory{ProjectID: env.project.ID, Name: "Crew"}
	require.NoError(t, env.budget.CreateCategory(ctx, cat))
	item := &domain.BudgetItem{CategoryID: cat.ID, Description: "Gaffer", Unit: "days"}
	require.NoError(t, env.budget.CreateItem(ctx, item))

	require.NoError(t, env.budget.LinkItem(ctx, item.ID, domain.KindCrew, crew.ID))

	fetched, err := env.budget.GetItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana Reyes - Gaffer", fetched.Description)
	// The item never had a rate, so linking does not invent one.
	assert.Nil(t, fetched.UnitRate)
}

func TestBudgetService_LinkItemRejectsCrossProjectResource(t *testing.T) {
	env := newServiceEnv(t)
	ctx := context.Background()

	other := testutil.NewTestProject("Other Film")
	require.NoError(t, repository.NewSQLiteProjectRepo(env.db).Create(ctx, other))
	foreign := &domain.CrewMember{ProjectID: other.ID, Name: "Outsider"}
	require.NoError(t, env.crew.Create(ctx, foreign))

	cat := &domain.BudgetCategory{ProjectID: env.project.ID, Name: "Crew"}
	require.NoError(t, env.budget.CreateCategory(ctx, cat))
	item := &domain.BudgetItem{CategoryID: cat.ID, Description: "Gaffer"}
	require.NoError(t, env.budget.CreateItem(ctx, item))

	err := env.budget.LinkItem(ctx, item.ID, domain.KindCrew, foreign.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "different project")

	fetched, getErr := env.budget.GetItem(ctx, item.ID)
	require.NoError(t, getErr)
	_, _, linked := fetched.LinkedResource()
	assert.False(t, linked)
}

func TestBudgetService_LinkItemReplacesExistingLink(t *testing.T) {
	env := newServiceEnv(t)
	ctx := context.Background()

	a := &domain.CrewMember{ProjectID: env.project.ID, Name: "Ana Reyes"}
	b := &domain.CrewMember{ProjectID: env.project.ID, Name: "Ben Okafor"}
	require.NoError(t, env.crew.Create(ctx, a))
	require.NoError(t, env.crew.Create(ctx, b))

	cat := &domain.BudgetCategory{ProjectID: env.project.ID, Name: "Crew"}
	require.NoError(t, env.budget.CreateCategory(ctx, cat))
	item := &domain.BudgetItem{CategoryID: cat.ID, Description: "Day player"}
	require.NoError(t, env.budget.CreateItem(ctx, item))

	require.NoError(t, env.budget.LinkItem(ctx, item.ID, domain.KindCrew, a.ID))
	require.NoError(t, env.budget.LinkItem(ctx, item.ID, domain.KindCrew, b.ID))

	fetched, err := env.budget.GetItem(ctx, item.ID)
	require.NoError(t, err)
	_, id, ok := fetched.LinkedResource()
	require.True(t, ok)
	assert.Equal(t, b.ID, id)
	assert.Equal(t, "Ben Okafor", fetched.Description)
}

func TestBudgetService_UnlinkItemKeepsDerivedValues(t *testing.T) {
	env := newServiceEnv(t)
	ctx := context.Background()

	crew := &domain.CrewMember{ProjectID: env.project.ID, Name: "Ana Reyes", Role: "Gaffer"}
	require.NoError(t, env.crew.Create(ctx, crew))

	cat := &domain.BudgetCategory{ProjectID: env.project.ID, Name: "Crew"}
	require.NoError(t, env.budget.CreateCategory(ctx, cat))
	item := &domain.BudgetItem{CategoryID: cat.ID, Description: "Gaffer"}
	require.NoError(t, env.budget.CreateItem(ctx, item))
	require.NoError(t, env.budget.LinkItem(ctx, item.ID, domain.KindCrew, crew.ID))

	require.NoError(t, env.budget.UnlinkItem(ctx, item.ID))

	fetched, err := env.budget.GetItem(ctx, item.ID)
	require.NoError(t, err)
	_, _, linked := fetched.LinkedResource()
	assert.False(t, linked)
	// The last published description stays; it just stops tracking.
	assert.Equal(t, "Ana Reyes - Gaffer", fetched.Description)
}

func TestBudgetService_UnlinkedItemIgnoresResourceEdits(t *testing.T) {
	env := newServiceEnv(t)
	ctx := context.Background()

	crew := &domain.CrewMember{ProjectID: env.project.ID, Name: "Ana Reyes", Role: "Gaffer"}
	require.NoError(t, env.crew.Create(ctx, crew))

	cat := &domain.BudgetCategory{ProjectID: env.project.ID, Name: "Crew"}
	require.NoError(t, env.budget.CreateCategory(ctx, cat))
	item := &domain.BudgetItem{CategoryID: cat.ID, Description: "Gaffer"}
	require.NoError(t, env.budget.CreateItem(ctx, item))
	require.NoError(t, env.budget.LinkItem(ctx, item.ID, domain.KindCrew, crew.ID))
	require.NoError(t, env.budget.UnlinkItem(ctx, item.ID))

	crew.Name = "Someone Else"
	_, err := env.crew.Update(ctx, crew)
	require.NoError(t, err)

	fetched, err := env.budget.GetItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana Reyes - Gaffer", fetched.Description)
}
