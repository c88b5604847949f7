package cli

import (
	"context"
	"testing"

	"callsheet/internal/domain"
	"callsheet/internal/repository"
	"callsheet/internal/service"
	"callsheet/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*App, []*domain.Project) {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteProjectRepo(database)
	ctx := context.Background()

	p1 := testutil.NewTestProject("Night Shoot")
	p1.ID = "aaaa1111-0000-4000-8000-000000000001"
	p2 := testutil.NewTestProject("Day Shoot")
	p2.ID = "aaab2222-0000-4000-8000-000000000002"
	require.NoError(t, repo.Create(ctx, p1))
	require.NoError(t, repo.Create(ctx, p2))

	return &App{Projects: service.NewProjectService(repo)}, []*domain.Project{p1, p2}
}

func TestResolveProjectID_ExactID(t *testing.T) {
	app, projects := newTestApp(t)

	id, err := resolveProjectID(context.Background(), app, projects[0].ID)
	require.NoError(t, err)
	assert.Equal(t, projects[0].ID, id)
}

func TestResolveProjectID_NameCaseInsensitive(t *testing.T) {
	app, projects := newTestApp(t)

	id, err := resolveProjectID(context.Background(), app, "night shoot")
	require.NoError(t, err)
	assert.Equal(t, projects[0].ID, id)
}

func TestResolveProjectID_UniquePrefix(t *testing.T) {
	app, projects := newTestApp(t)

	id, err := resolveProjectID(context.Background(), app, "aaaa1")
	require.NoError(t, err)
	assert.Equal(t, projects[0].ID, id)
}

func TestResolveProjectID_AmbiguousPrefix(t *testing.T) {
	app, _ := newTestApp(t)

	_, err := resolveProjectID(context.Background(), app, "aaa")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ambiguous")
}

func TestResolveProjectID_NotFound(t *testing.T) {
	app, _ := newTestApp(t)

	_, err := resolveProjectID(context.Background(), app, "zzzz")
	assert.Error(t, err)
}

func TestResolveProjectID_EmptyInput(t *testing.T) {
	app, _ := newTestApp(t)

	_, err := resolveProjectID(context.Background(), app, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--project")
}
