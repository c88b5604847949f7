package engine

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"callsheet/internal/domain"
	"callsheet/internal/repository"
	"callsheet/internal/testutil"
	"github.com/stretchr/testify/require"
)

// testEnv bundles a seeded in-memory database with the repos the engine
// touches. Every test gets its own project.
type testEnv struct {
	db      *sql.DB
	project *domain.Project

	items  *repository.SQLiteBudgetItemRepo
	scenes *repository.SQLiteSceneRepo
	events *repository.SQLiteScheduleEventRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)

	project := testutil.NewTestProject("Night Shoot")
	require.NoError(t, repository.NewSQLiteProjectRepo(database).Create(context.Background(), project))

	return &testEnv{
		db:      database,
		project: project,
		items:   repository.NewSQLiteBudgetItemRepo(database),
		scenes:  repository.NewSQLiteSceneRepo(database),
		events:  repository.NewSQLiteScheduleEventRepo(database),
	}
}

func (e *testEnv) addCategory(t *testing.T) *domain.BudgetCategory {
	t.Helper()
	c := testutil.NewTestBudgetCategory(e.project.ID, "Crew")
	require.NoError(t, repository.NewSQLiteBudgetCategoryRepo(e.db).Create(context.Background(), c))
	return c
}

func (e *testEnv) addCrew(t *testing.T, name string, opts ...testutil.CrewOption) *domain.CrewMember {
	t.Helper()
	c := testutil.NewTestCrewMember(e.project.ID, name, opts...)
	require.NoError(t, repository.NewSQLiteCrewRepo(e.db).Create(context.Background(), c))
	return c
}

func (e *testEnv) addEquipment(t *testing.T, name string, opts ...testutil.EquipmentOption) *domain.Equipment {
	t.Helper()
	eq := testutil.NewTestEquipment(e.project.ID, name, opts...)
	require.NoError(t, repository.NewSQLiteEquipmentRepo(e.db).Create(context.Background(), eq))
	return eq
}

func (e *testEnv) addItem(t *testing.T, categoryID, description string, opts ...testutil.BudgetItemOption) *domain.BudgetItem {
	t.Helper()
	b := testutil.NewTestBudgetItem(e.project.ID, categoryID, description, opts...)
	require.NoError(t, e.items.Create(context.Background(), b))
	return b
}

func (e *testEnv) addScene(t *testing.T, number string, opts ...testutil.SceneOption) *domain.Scene {
	t.Helper()
	s := testutil.NewTestScene(e.project.ID, number, opts...)
	require.NoError(t, e.scenes.Create(context.Background(), s))
	return s
}

func (e *testEnv) addDay(t *testing.T, date string) *domain.ShootingDay {
	t.Helper()
	d := testutil.NewTestShootingDay(e.project.ID, mustDate(t, date))
	require.NoError(t, repository.NewSQLiteShootingDayRepo(e.db).Create(context.Background(), d))
	return d
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}
