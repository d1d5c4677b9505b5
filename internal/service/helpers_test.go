package service

import (
	"context"
	"testing"
	"time"

	"github.com/dmarchuk/tasksphere/internal/store"
	"github.com/dmarchuk/tasksphere/internal/testutil"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

type testStores struct {
	tasks    *store.TaskStore
	projects *store.ProjectStore
	team     *store.TeamStore
}

func newTestStores(t *testing.T) (*testStores, context.Context) {
	t.Helper()
	kvs := testutil.NewTestKV(t)
	s := &testStores{
		tasks:    store.NewTaskStore(kvs),
		projects: store.NewProjectStore(kvs),
		team:     store.NewTeamStore(kvs),
	}
	ctx := context.Background()
	require.NoError(t, s.tasks.Load(ctx))
	require.NoError(t, s.projects.Load(ctx))
	require.NoError(t, s.team.Load(ctx))
	return s, ctx
}
