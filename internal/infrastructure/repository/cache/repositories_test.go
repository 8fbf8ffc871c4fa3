package cache

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/league-admin/internal/domain/gamemap"
	"github.com/riskibarqy/league-admin/internal/domain/team"
	"github.com/riskibarqy/league-admin/internal/infrastructure/repository/memory"
	basecache "github.com/riskibarqy/league-admin/internal/platform/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingTeams struct {
	team.Repository
	lists int
}

func (c *countingTeams) List(ctx context.Context) ([]team.Team, error) {
	c.lists++
	return c.Repository.List(ctx)
}

func TestTeamRepository_ListIsCachedUntilWrite(t *testing.T) {
	ctx := context.Background()
	next := &countingTeams{Repository: memory.NewStore().Teams()}
	repo := NewTeamRepository(next, basecache.New(basecache.NewStore(time.Minute), nil))

	_, err := repo.Create(ctx, team.Team{Name: "Red"})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		list, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
	}
	assert.Equal(t, 1, next.lists)

	_, err = repo.Create(ctx, team.Team{Name: "Blue"})
	require.NoError(t, err)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, 2, next.lists)
}

func TestTeamRepository_GetByIDInvalidatedOnUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewTeamRepository(memory.NewStore().Teams(), basecache.New(basecache.NewStore(time.Minute), nil))

	created, err := repo.Create(ctx, team.Team{Name: "Red"})
	require.NoError(t, err)

	got, ok, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Red", got.Name)

	created.Name = "Crimson"
	require.NoError(t, repo.Update(ctx, created))

	got, ok, err = repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Crimson", got.Name)

	_, ok, err = repo.GetByID(ctx, created.ID+100)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMapRepository_DeleteInvalidates(t *testing.T) {
	ctx := context.Background()
	repo := NewMapRepository(memory.NewStore().Maps(), basecache.New(basecache.NewStore(time.Minute), nil))

	arabia, err := repo.Create(ctx, gamemap.Map{Name: "Arabia"})
	require.NoError(t, err)
	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	deleted, err := repo.Delete(ctx, arabia.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	list, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
