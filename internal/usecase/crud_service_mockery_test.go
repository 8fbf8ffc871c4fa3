package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/league-admin/internal/domain/civilization"
	"github.com/riskibarqy/league-admin/internal/domain/gamemap"
	"github.com/riskibarqy/league-admin/internal/domain/player"
	"github.com/riskibarqy/league-admin/internal/domain/team"
	civilizationmock "github.com/riskibarqy/league-admin/internal/mocks/domain/civilization"
	gamemapmock "github.com/riskibarqy/league-admin/internal/mocks/domain/gamemap"
	playermock "github.com/riskibarqy/league-admin/internal/mocks/domain/player"
	teammock "github.com/riskibarqy/league-admin/internal/mocks/domain/team"
	"github.com/riskibarqy/league-admin/internal/platform/database"
	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestTeamService_Create_TrimsNameUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	teamRepo := teammock.NewRepository(t)
	service := NewTeamService(teamRepo)
	service.now = func() time.Time { return fixedNow }

	teamRepo.
		On("Create", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), mock.MatchedBy(func(item team.Team) bool {
			return item.Name == "Lions" && item.CreatedAt.Equal(fixedNow) && item.UpdatedAt.Equal(fixedNow)
		})).
		Return(team.Team{ID: 7, Name: "Lions", CreatedAt: fixedNow, UpdatedAt: fixedNow}, nil).
		Once()

	got, err := service.Create(ctx, TeamInput{Name: "  Lions "})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}
	if got.ID != 7 || got.Name != "Lions" {
		t.Fatalf("unexpected team: %+v", got)
	}
}

func TestTeamService_Create_BlankNameNeverReachesRepository(t *testing.T) {
	t.Parallel()

	teamRepo := teammock.NewRepository(t)
	service := NewTeamService(teamRepo)

	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := service.Create(context.Background(), TeamInput{Name: name})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %q, got %v", name, err)
		}
	}
	teamRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTeamService_Update_NotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	teamRepo := teammock.NewRepository(t)
	service := NewTeamService(teamRepo)

	teamRepo.On("GetByID", mock.Anything, int64(99)).Return(team.Team{}, false, nil).Once()

	_, err := service.Update(context.Background(), 99, TeamInput{Name: "Lions"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTeamService_Update_OverwritesNameAndBumpsUpdatedAt(t *testing.T) {
	t.Parallel()

	created := fixedNow.Add(-time.Hour)
	teamRepo := teammock.NewRepository(t)
	service := NewTeamService(teamRepo)
	service.now = func() time.Time { return fixedNow }

	teamRepo.On("GetByID", mock.Anything, int64(3)).
		Return(team.Team{ID: 3, Name: "Old", CreatedAt: created, UpdatedAt: created}, true, nil).
		Once()
	teamRepo.On("Update", mock.Anything, team.Team{ID: 3, Name: "New", CreatedAt: created, UpdatedAt: fixedNow}).
		Return(nil).
		Once()

	got, err := service.Update(context.Background(), 3, TeamInput{Name: "New"})
	if err != nil {
		t.Fatalf("update team: %v", err)
	}
	if got.Name != "New" || !got.UpdatedAt.Equal(fixedNow) || !got.CreatedAt.Equal(created) {
		t.Fatalf("unexpected team: %+v", got)
	}
}

func TestTeamService_Delete_ErrorMapping(t *testing.T) {
	t.Parallel()

	referenced := crerr.Mark(errors.New("fk"), database.ErrReferenceViolation)
	cases := []struct {
		name    string
		deleted bool
		repoErr error
		want    error
	}{
		{name: "missing", deleted: false, want: ErrNotFound},
		{name: "still referenced", repoErr: fmt.Errorf("delete teams id=5: %w", referenced), want: ErrConflict},
		{name: "deleted", deleted: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			teamRepo := teammock.NewRepository(t)
			service := NewTeamService(teamRepo)
			teamRepo.On("Delete", mock.Anything, int64(5)).Return(tc.deleted, tc.repoErr).Once()

			err := service.Delete(context.Background(), 5)
			if tc.want == nil {
				if err != nil {
					t.Fatalf("delete team: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestTeamService_List_PropagatesStoreFailure(t *testing.T) {
	t.Parallel()

	teamRepo := teammock.NewRepository(t)
	service := NewTeamService(teamRepo)
	storeErr := errors.New("connection refused")
	teamRepo.On("List", mock.Anything).Return(nil, storeErr).Once()

	_, err := service.List(context.Background())
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
	if errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrNotFound) || errors.Is(err, ErrConflict) {
		t.Fatalf("store failure must not map to a client error: %v", err)
	}
}

func TestPlayerService_Create_RequiresTeam(t *testing.T) {
	t.Parallel()

	playerRepo := playermock.NewRepository(t)
	service := NewPlayerService(playerRepo)

	_, err := service.Create(context.Background(), PlayerInput{Name: "Alice"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPlayerService_Create_UnknownTeamIsInvalidInput(t *testing.T) {
	t.Parallel()

	playerRepo := playermock.NewRepository(t)
	service := NewPlayerService(playerRepo)

	playerRepo.On("Create", mock.Anything, mock.AnythingOfType("player.Player")).
		Return(player.Player{}, crerr.Mark(errors.New("insert player: fk"), database.ErrReferenceViolation)).
		Once()

	_, err := service.Create(context.Background(), PlayerInput{Name: "Alice", TeamID: 404})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPlayerService_Create_ReadsBackTeamName(t *testing.T) {
	t.Parallel()

	playerRepo := playermock.NewRepository(t)
	service := NewPlayerService(playerRepo)

	playerRepo.On("Create", mock.Anything, mock.AnythingOfType("player.Player")).
		Return(player.Player{ID: 11, Name: "Alice", TeamID: 2}, nil).
		Once()
	playerRepo.On("GetByID", mock.Anything, int64(11)).
		Return(player.Player{ID: 11, Name: "Alice", TeamID: 2, Team: team.Ref{ID: 2, Name: "Lions"}}, true, nil).
		Once()

	got, err := service.Create(context.Background(), PlayerInput{Name: "Alice", TeamID: 2})
	if err != nil {
		t.Fatalf("create player: %v", err)
	}
	if got.Team.Name != "Lions" {
		t.Fatalf("expected resolved team name, got %+v", got.Team)
	}
}

func TestCivilizationService_Create_BlankDescriptionIsDropped(t *testing.T) {
	t.Parallel()

	civRepo := civilizationmock.NewRepository(t)
	service := NewCivilizationService(civRepo)
	blank := "   "

	civRepo.On("Create", mock.Anything, mock.MatchedBy(func(item civilization.Civilization) bool {
		return item.Name == "Rome" && item.Description == nil
	})).Return(civilization.Civilization{ID: 1, Name: "Rome"}, nil).Once()

	if _, err := service.Create(context.Background(), CivilizationInput{Name: "Rome", Description: &blank}); err != nil {
		t.Fatalf("create civilization: %v", err)
	}
}

func TestCivilizationService_Update_DuplicateIsConflict(t *testing.T) {
	t.Parallel()

	civRepo := civilizationmock.NewRepository(t)
	service := NewCivilizationService(civRepo)

	civRepo.On("GetByID", mock.Anything, int64(1)).Return(civilization.Civilization{ID: 1, Name: "Rome"}, true, nil).Once()
	civRepo.On("Update", mock.Anything, mock.AnythingOfType("civilization.Civilization")).
		Return(crerr.Mark(errors.New("unique"), database.ErrUniqueViolation)).
		Once()

	_, err := service.Update(context.Background(), 1, CivilizationInput{Name: "Greece"})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestMapService_Update_BlankNameKeepsStoredRow(t *testing.T) {
	t.Parallel()

	mapRepo := gamemapmock.NewRepository(t)
	service := NewMapService(mapRepo)

	mapRepo.On("GetByID", mock.Anything, int64(4)).Return(gamemap.Map{ID: 4, Name: "Arabia"}, true, nil).Once()

	_, err := service.Update(context.Background(), 4, MapInput{Name: " "})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	mapRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestMapService_Delete_NotFound(t *testing.T) {
	t.Parallel()

	mapRepo := gamemapmock.NewRepository(t)
	service := NewMapService(mapRepo)
	mapRepo.On("Delete", mock.Anything, int64(8)).Return(false, nil).Once()

	if err := service.Delete(context.Background(), 8); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
