package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/league-admin/internal/domain/game"
	"github.com/riskibarqy/league-admin/internal/infrastructure/repository/memory"
	gamemock "github.com/riskibarqy/league-admin/internal/mocks/domain/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type leagueFixture struct {
	store   *memory.Store
	teams   *TeamService
	players *PlayerService
	civs    *CivilizationService
	maps    *MapService
	games   *GameService

	lions, tigers int64
	alice, bob    int64
	rome, greece  int64
	arabia        int64
}

func newLeagueFixture(t *testing.T) *leagueFixture {
	t.Helper()

	ctx := context.Background()
	store := memory.NewStore()
	f := &leagueFixture{
		store:   store,
		teams:   NewTeamService(store.Teams()),
		players: NewPlayerService(store.Players()),
		civs:    NewCivilizationService(store.Civilizations()),
		maps:    NewMapService(store.Maps()),
		games:   NewGameService(store.Games()),
	}

	lions, err := f.teams.Create(ctx, TeamInput{Name: "Lions"})
	require.NoError(t, err)
	tigers, err := f.teams.Create(ctx, TeamInput{Name: "Tigers"})
	require.NoError(t, err)
	alice, err := f.players.Create(ctx, PlayerInput{Name: "Alice", TeamID: lions.ID})
	require.NoError(t, err)
	bob, err := f.players.Create(ctx, PlayerInput{Name: "Bob", TeamID: tigers.ID})
	require.NoError(t, err)
	rome, err := f.civs.Create(ctx, CivilizationInput{Name: "Rome"})
	require.NoError(t, err)
	greece, err := f.civs.Create(ctx, CivilizationInput{Name: "Greece"})
	require.NoError(t, err)
	arabia, err := f.maps.Create(ctx, MapInput{Name: "Arabia"})
	require.NoError(t, err)

	f.lions, f.tigers = lions.ID, tigers.ID
	f.alice, f.bob = alice.ID, bob.ID
	f.rome, f.greece = rome.ID, greece.ID
	f.arabia = arabia.ID
	return f
}

func (f *leagueFixture) input(players ...game.Descriptor) GameInput {
	return GameInput{
		FirstPickID:  f.lions,
		SecondPickID: f.tigers,
		WinnerID:     f.lions,
		MapID:        &f.arabia,
		GameDate:     "2025-03-01",
		Players:      players,
	}
}

func TestGameService_Create_ResolvesEveryParticipant(t *testing.T) {
	t.Parallel()

	f := newLeagueFixture(t)
	ctx := context.Background()

	created, err := f.games.Create(ctx, f.input(
		game.Descriptor{PlayerID: f.alice, CivID: f.rome, TeamID: f.lions},
		game.Descriptor{PlayerID: f.bob, CivID: f.greece, TeamID: f.tigers},
	))
	require.NoError(t, err)

	assert.Equal(t, "Lions", created.FirstPick.Name)
	assert.Equal(t, "Tigers", created.SecondPick.Name)
	assert.Equal(t, "Lions", created.Winner.Name)
	require.NotNil(t, created.Map)
	assert.Equal(t, "Arabia", created.Map.Name)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), created.GameDate)

	require.Len(t, created.Players, 2)
	assert.Equal(t, "Alice", created.Players[0].Player.Name)
	assert.Equal(t, "Rome", created.Players[0].Civ.Name)
	assert.Equal(t, "Lions", created.Players[0].Team.Name)
	assert.Equal(t, created.ID, created.Players[1].GameID)

	got, err := f.games.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, got.Players, 2)
}

func TestGameService_Create_RoundTripSingleParticipant(t *testing.T) {
	t.Parallel()

	f := newLeagueFixture(t)
	created, err := f.games.Create(context.Background(), f.input(
		game.Descriptor{PlayerID: f.alice, CivID: f.rome, TeamID: f.tigers},
	))
	require.NoError(t, err)

	require.Len(t, created.Players, 1)
	p := created.Players[0]
	assert.Equal(t, f.alice, p.PlayerID)
	assert.Equal(t, f.rome, p.CivID)
	assert.Equal(t, f.tigers, p.TeamID)
}

func TestGameService_Create_DropsIncompleteDescriptors(t *testing.T) {
	t.Parallel()

	f := newLeagueFixture(t)
	created, err := f.games.Create(context.Background(), f.input(
		game.Descriptor{PlayerID: f.alice, CivID: f.rome, TeamID: f.lions},
		game.Descriptor{PlayerID: f.bob, TeamID: f.tigers},
		game.Descriptor{},
	))
	require.NoError(t, err)
	require.Len(t, created.Players, 1)
	assert.Equal(t, f.alice, created.Players[0].PlayerID)
}

func TestGameService_Create_Validation(t *testing.T) {
	t.Parallel()

	f := newLeagueFixture(t)
	cases := map[string]func(in *GameInput){
		"missing first pick":  func(in *GameInput) { in.FirstPickID = 0 },
		"missing second pick": func(in *GameInput) { in.SecondPickID = 0 },
		"missing winner":      func(in *GameInput) { in.WinnerID = 0 },
		"missing date":        func(in *GameInput) { in.GameDate = "" },
		"malformed date":      func(in *GameInput) { in.GameDate = "March first" },
	}

	for name, mutate := range cases {
		in := f.input()
		mutate(&in)
		if _, err := f.games.Create(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", name, err)
		}
	}

	items, err := f.games.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestGameService_Create_UnknownReferenceRollsBack(t *testing.T) {
	t.Parallel()

	f := newLeagueFixture(t)
	_, err := f.games.Create(context.Background(), f.input(
		game.Descriptor{PlayerID: f.alice, CivID: f.rome, TeamID: f.lions},
		game.Descriptor{PlayerID: 9999, CivID: f.rome, TeamID: f.lions},
	))
	require.ErrorIs(t, err, ErrInvalidInput)

	items, err := f.games.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestGameService_Create_DuplicateParticipantIsConflict(t *testing.T) {
	t.Parallel()

	f := newLeagueFixture(t)
	_, err := f.games.Create(context.Background(), f.input(
		game.Descriptor{PlayerID: f.alice, CivID: f.rome, TeamID: f.lions},
		game.Descriptor{PlayerID: f.alice, CivID: f.greece, TeamID: f.lions},
	))
	require.ErrorIs(t, err, ErrConflict)
}

func TestGameService_Update_ReplacesParticipants(t *testing.T) {
	t.Parallel()

	f := newLeagueFixture(t)
	ctx := context.Background()
	created, err := f.games.Create(ctx, f.input(
		game.Descriptor{PlayerID: f.alice, CivID: f.rome, TeamID: f.lions},
		game.Descriptor{PlayerID: f.bob, CivID: f.greece, TeamID: f.tigers},
	))
	require.NoError(t, err)

	in := f.input(game.Descriptor{PlayerID: f.bob, CivID: f.rome, TeamID: f.lions})
	in.WinnerID = f.tigers
	in.ReplacePlayers = true
	updated, err := f.games.Update(ctx, created.ID, in)
	require.NoError(t, err)

	assert.Equal(t, "Tigers", updated.Winner.Name)
	require.Len(t, updated.Players, 1)
	assert.Equal(t, f.bob, updated.Players[0].PlayerID)
	assert.Equal(t, f.rome, updated.Players[0].CivID)
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))
}

func TestGameService_Update_EmptyReplacementClearsParticipants(t *testing.T) {
	t.Parallel()

	f := newLeagueFixture(t)
	ctx := context.Background()
	created, err := f.games.Create(ctx, f.input(game.Descriptor{PlayerID: f.alice, CivID: f.rome, TeamID: f.lions}))
	require.NoError(t, err)

	in := f.input()
	in.ReplacePlayers = true
	updated, err := f.games.Update(ctx, created.ID, in)
	require.NoError(t, err)
	assert.Empty(t, updated.Players)
}

func TestGameService_Update_WithoutPlayersKeepsParticipants(t *testing.T) {
	t.Parallel()

	f := newLeagueFixture(t)
	ctx := context.Background()
	created, err := f.games.Create(ctx, f.input(game.Descriptor{PlayerID: f.alice, CivID: f.rome, TeamID: f.lions}))
	require.NoError(t, err)

	in := f.input()
	in.MapID, in.SetMap = nil, true
	link := " https://draft.example/abc "
	in.DraftLink, in.SetDraftLink = &link, true
	updated, err := f.games.Update(ctx, created.ID, in)
	require.NoError(t, err)

	assert.Nil(t, updated.Map)
	require.NotNil(t, updated.DraftLink)
	assert.Equal(t, "https://draft.example/abc", *updated.DraftLink)
	require.Len(t, updated.Players, 1)
	assert.Equal(t, f.alice, updated.Players[0].PlayerID)
}

func TestGameService_Update_KeepsMapAndDraftLinkUnlessSet(t *testing.T) {
	t.Parallel()

	f := newLeagueFixture(t)
	ctx := context.Background()
	in := f.input()
	link := "https://draft.example/keep"
	in.DraftLink = &link
	created, err := f.games.Create(ctx, in)
	require.NoError(t, err)

	edit := GameInput{
		FirstPickID:  f.tigers,
		SecondPickID: f.lions,
		WinnerID:     f.tigers,
		GameDate:     "2025-03-02",
	}
	updated, err := f.games.Update(ctx, created.ID, edit)
	require.NoError(t, err)

	assert.Equal(t, f.tigers, updated.WinnerID)
	require.NotNil(t, updated.MapID)
	assert.Equal(t, f.arabia, *updated.MapID)
	require.NotNil(t, updated.Map)
	require.NotNil(t, updated.DraftLink)
	assert.Equal(t, link, *updated.DraftLink)

	edit.SetMap, edit.SetDraftLink = true, true
	cleared, err := f.games.Update(ctx, created.ID, edit)
	require.NoError(t, err)
	assert.Nil(t, cleared.MapID)
	assert.Nil(t, cleared.DraftLink)
}

func TestGameService_Update_NotFound(t *testing.T) {
	t.Parallel()

	f := newLeagueFixture(t)
	_, err := f.games.Update(context.Background(), 4242, f.input())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGameService_Delete_RemovesParticipants(t *testing.T) {
	t.Parallel()

	f := newLeagueFixture(t)
	ctx := context.Background()
	created, err := f.games.Create(ctx, f.input(
		game.Descriptor{PlayerID: f.alice, CivID: f.rome, TeamID: f.lions},
		game.Descriptor{PlayerID: f.bob, CivID: f.greece, TeamID: f.tigers},
	))
	require.NoError(t, err)

	require.NoError(t, f.games.Delete(ctx, created.ID))

	// No participant row pins the players any more.
	removed, err := f.store.Players().Delete(ctx, f.alice)
	require.NoError(t, err)
	assert.True(t, removed)

	_, err = f.games.Get(ctx, created.ID)
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, f.games.Delete(ctx, created.ID), ErrNotFound)

	// Participants no longer pin the player, so it can go too.
	require.NoError(t, f.players.Delete(ctx, f.alice))
}

func TestGameService_List_NewestGameDateFirst(t *testing.T) {
	t.Parallel()

	f := newLeagueFixture(t)
	ctx := context.Background()
	for _, date := range []string{"2025-01-01", "2025-03-01", "2025-02-01"} {
		in := f.input()
		in.GameDate = date
		_, err := f.games.Create(ctx, in)
		require.NoError(t, err)
	}

	items, err := f.games.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, 3, int(items[0].GameDate.Month()))
	assert.Equal(t, 2, int(items[1].GameDate.Month()))
	assert.Equal(t, 1, int(items[2].GameDate.Month()))
	assert.Nil(t, items[0].Players)
}

func TestGameService_Create_StoreFailureIsNotClientError(t *testing.T) {
	t.Parallel()

	gameRepo := gamemock.NewRepository(t)
	service := NewGameService(gameRepo)
	storeErr := errors.New("tx begin: database is locked")

	gameRepo.On("Create", mock.Anything, mock.AnythingOfType("game.Game"), mock.Anything).
		Return(game.Game{}, storeErr).
		Once()

	_, err := service.Create(context.Background(), GameInput{
		FirstPickID: 1, SecondPickID: 2, WinnerID: 1, GameDate: "2025-03-01",
	})
	require.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, ErrInvalidInput)
	assert.NotErrorIs(t, err, ErrConflict)
}
