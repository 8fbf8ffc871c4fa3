package sqlstore

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/league-admin/internal/domain/civilization"
	"github.com/riskibarqy/league-admin/internal/domain/game"
	"github.com/riskibarqy/league-admin/internal/domain/gamemap"
	"github.com/riskibarqy/league-admin/internal/domain/player"
	"github.com/riskibarqy/league-admin/internal/platform/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type gameFixture struct {
	repo    *GameRepository
	red     int64
	blue    int64
	alice   int64
	bob     int64
	franks  int64
	mongols int64
	arabia  int64
}

func newGameFixture(t *testing.T) gameFixture {
	t.Helper()
	ctx := context.Background()
	session := newTestSession(t)

	teams := NewTeamRepository(session)
	red := seedTeam(t, teams, "Red", baseTime)
	blue := seedTeam(t, teams, "Blue", baseTime)

	players := NewPlayerRepository(session)
	alice, err := players.Create(ctx, player.Player{Name: "Alice", TeamID: red.ID, CreatedAt: baseTime, UpdatedAt: baseTime})
	require.NoError(t, err)
	bob, err := players.Create(ctx, player.Player{Name: "Bob", TeamID: blue.ID, CreatedAt: baseTime, UpdatedAt: baseTime})
	require.NoError(t, err)

	civs := NewCivilizationRepository(session)
	franks, err := civs.Create(ctx, civilization.Civilization{Name: "Franks", CreatedAt: baseTime, UpdatedAt: baseTime})
	require.NoError(t, err)
	mongols, err := civs.Create(ctx, civilization.Civilization{Name: "Mongols", CreatedAt: baseTime, UpdatedAt: baseTime})
	require.NoError(t, err)

	arabia, err := NewMapRepository(session).Create(ctx, gamemap.Map{Name: "Arabia", CreatedAt: baseTime, UpdatedAt: baseTime})
	require.NoError(t, err)

	return gameFixture{
		repo:    NewGameRepository(session),
		red:     red.ID,
		blue:    blue.ID,
		alice:   alice.ID,
		bob:     bob.ID,
		franks:  franks.ID,
		mongols: mongols.ID,
		arabia:  arabia.ID,
	}
}

func (f gameFixture) game(date time.Time) game.Game {
	return game.Game{
		FirstPickID:  f.red,
		SecondPickID: f.blue,
		WinnerID:     f.red,
		GameDate:     date,
		CreatedAt:    baseTime,
		UpdatedAt:    baseTime,
	}
}

func (f gameFixture) participants() []game.Participant {
	return []game.Participant{
		{PlayerID: f.alice, CivID: f.franks, TeamID: f.red, CreatedAt: baseTime, UpdatedAt: baseTime},
		{PlayerID: f.bob, CivID: f.mongols, TeamID: f.blue, CreatedAt: baseTime, UpdatedAt: baseTime},
	}
}

func TestGameRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	f := newGameFixture(t)

	item := f.game(baseTime)
	item.MapID = &f.arabia
	link := "https://draft.example/abc"
	item.DraftLink = &link

	created, err := f.repo.Create(ctx, item, f.participants())
	require.NoError(t, err)
	require.Positive(t, created.ID)

	got, ok, err := f.repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Red", got.FirstPick.Name)
	assert.Equal(t, "Blue", got.SecondPick.Name)
	assert.Equal(t, "Red", got.Winner.Name)
	require.NotNil(t, got.Map)
	assert.Equal(t, "Arabia", got.Map.Name)
	require.NotNil(t, got.DraftLink)
	assert.Equal(t, link, *got.DraftLink)
	assert.True(t, got.GameDate.Equal(baseTime))

	require.Len(t, got.Players, 2)
	assert.Equal(t, created.ID, got.Players[0].GameID)
	assert.Equal(t, "Alice", got.Players[0].Player.Name)
	assert.Equal(t, "Franks", got.Players[0].Civ.Name)
	assert.Equal(t, "Red", got.Players[0].Team.Name)
	assert.Equal(t, "Bob", got.Players[1].Player.Name)
}

func TestGameRepository_ListOrderedByDateWithoutParticipants(t *testing.T) {
	ctx := context.Background()
	f := newGameFixture(t)

	_, err := f.repo.Create(ctx, f.game(baseTime), f.participants())
	require.NoError(t, err)
	later, err := f.repo.Create(ctx, f.game(baseTime.Add(48*time.Hour)), nil)
	require.NoError(t, err)

	list, err := f.repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, later.ID, list[0].ID)
	assert.Nil(t, list[0].Map)
	for _, g := range list {
		assert.Empty(t, g.Players)
		assert.Equal(t, "Red", g.FirstPick.Name)
	}
}

func TestGameRepository_CreateRollsBackOnParticipantFailure(t *testing.T) {
	ctx := context.Background()
	f := newGameFixture(t)

	dup := f.participants()
	dup[1].PlayerID = f.alice

	_, err := f.repo.Create(ctx, f.game(baseTime), dup)
	require.Error(t, err)
	assert.True(t, database.IsUniqueViolation(err), "got %v", err)

	list, err := f.repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list, "game row must be rolled back with its participants")

	bad := f.participants()
	bad[0].CivID = 999
	_, err = f.repo.Create(ctx, f.game(baseTime), bad)
	require.Error(t, err)
	assert.True(t, database.IsReferenceViolation(err), "got %v", err)

	list, err = f.repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestGameRepository_UpdateReplacesOrKeepsParticipants(t *testing.T) {
	ctx := context.Background()
	f := newGameFixture(t)

	created, err := f.repo.Create(ctx, f.game(baseTime), f.participants())
	require.NoError(t, err)

	created.WinnerID = f.blue
	created.UpdatedAt = baseTime.Add(time.Hour)
	require.NoError(t, f.repo.Update(ctx, created, nil, false))

	got, _, err := f.repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Blue", got.Winner.Name)
	assert.Len(t, got.Players, 2, "participants untouched when not replacing")

	replacement := []game.Participant{{PlayerID: f.bob, CivID: f.franks, TeamID: f.red, CreatedAt: baseTime, UpdatedAt: baseTime}}
	require.NoError(t, f.repo.Update(ctx, created, replacement, true))

	got, _, err = f.repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, got.Players, 1)
	assert.Equal(t, "Bob", got.Players[0].Player.Name)

	require.NoError(t, f.repo.Update(ctx, created, nil, true))
	got, _, err = f.repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Players)
}

func TestGameRepository_UpdateFailureKeepsPreviousState(t *testing.T) {
	ctx := context.Background()
	f := newGameFixture(t)

	created, err := f.repo.Create(ctx, f.game(baseTime), f.participants())
	require.NoError(t, err)

	bad := []game.Participant{{PlayerID: 999, CivID: f.franks, TeamID: f.red, CreatedAt: baseTime, UpdatedAt: baseTime}}
	created.WinnerID = f.blue
	err = f.repo.Update(ctx, created, bad, true)
	require.Error(t, err)

	got, _, err := f.repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, f.red, got.WinnerID)
	assert.Len(t, got.Players, 2)
}

func TestGameRepository_Delete(t *testing.T) {
	ctx := context.Background()
	f := newGameFixture(t)

	created, err := f.repo.Create(ctx, f.game(baseTime), f.participants())
	require.NoError(t, err)

	deleted, err := f.repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	participants, err := f.repo.listParticipants(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, participants)

	deleted, err = f.repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
