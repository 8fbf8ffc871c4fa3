package main

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/league-admin/internal/app"
	"github.com/riskibarqy/league-admin/internal/domain/game"
	"github.com/riskibarqy/league-admin/internal/domain/player"
	"github.com/riskibarqy/league-admin/internal/interfaces/httpapi"
	"github.com/riskibarqy/league-admin/internal/platform/logging"
	"github.com/riskibarqy/league-admin/internal/usecase"
)

type options struct {
	Teams          int
	PlayersPerTeam int
	Games          int
	PlayersPerSide int
	Workers        int
	Seed           int64
}

func (o options) validate() error {
	if o.Teams < 2 {
		return fmt.Errorf("teams must be >= 2")
	}
	if o.PlayersPerTeam < 1 {
		return fmt.Errorf("players per team must be >= 1")
	}
	if o.PlayersPerSide < 1 || o.PlayersPerSide > o.PlayersPerTeam {
		return fmt.Errorf("players per side must be between 1 and players per team")
	}
	if o.Games < 0 {
		return fmt.Errorf("games must be >= 0")
	}
	if o.Workers < 1 {
		return fmt.Errorf("workers must be >= 1")
	}
	return nil
}

type report struct {
	Teams         int
	Players       int
	GamesCreated  int
	GamesFailed   int
	Civilizations int
	Maps          int
}

type seeder struct {
	services httpapi.Services
	faker    *gofakeit.Faker
	logger   *logging.Logger
}

func newSeeder(services httpapi.Services, seed int64, logger *logging.Logger) *seeder {
	if logger == nil {
		logger = logging.Default()
	}
	return &seeder{services: services, faker: gofakeit.New(seed), logger: logger}
}

func (s *seeder) run(ctx context.Context, opts options) (report, error) {
	if err := opts.validate(); err != nil {
		return report{}, err
	}

	if err := app.SeedReferenceData(ctx, s.services.Civilizations, s.services.Maps); err != nil {
		return report{}, fmt.Errorf("seed reference data: %w", err)
	}
	civs, err := s.services.Civilizations.List(ctx)
	if err != nil {
		return report{}, fmt.Errorf("list civilizations: %w", err)
	}
	maps, err := s.services.Maps.List(ctx)
	if err != nil {
		return report{}, fmt.Errorf("list maps: %w", err)
	}

	rosters := make(map[int64][]player.Player, opts.Teams)
	teamIDs := make([]int64, 0, opts.Teams)
	playerCount := 0
	for i := 0; i < opts.Teams; i++ {
		item, err := s.services.Teams.Create(ctx, usecase.TeamInput{
			Name: fmt.Sprintf("%s %s", s.faker.Color(), s.faker.Animal()),
		})
		if err != nil {
			return report{}, fmt.Errorf("create team: %w", err)
		}
		teamIDs = append(teamIDs, item.ID)

		for j := 0; j < opts.PlayersPerTeam; j++ {
			p, err := s.services.Players.Create(ctx, usecase.PlayerInput{
				Name:   s.faker.Username(),
				TeamID: item.ID,
			})
			if err != nil {
				return report{}, fmt.Errorf("create player: %w", err)
			}
			rosters[item.ID] = append(rosters[item.ID], p)
			playerCount++
		}
	}

	civIDs := make([]int64, 0, len(civs))
	for _, c := range civs {
		civIDs = append(civIDs, c.ID)
	}
	mapIDs := make([]int64, 0, len(maps))
	for _, m := range maps {
		mapIDs = append(mapIDs, m.ID)
	}

	inputs := make([]usecase.GameInput, 0, opts.Games)
	for i := 0; i < opts.Games; i++ {
		inputs = append(inputs, s.gameInput(teamIDs, rosters, civIDs, mapIDs, opts.PlayersPerSide))
	}

	created, failed, err := s.createGames(ctx, inputs, opts.Workers)
	if err != nil {
		return report{}, err
	}

	return report{
		Teams:         len(teamIDs),
		Players:       playerCount,
		GamesCreated:  created,
		GamesFailed:   failed,
		Civilizations: len(civs),
		Maps:          len(maps),
	}, nil
}

// gameInput draws the random parts on the calling goroutine; the faker is
// not safe for concurrent use.
func (s *seeder) gameInput(teamIDs []int64, rosters map[int64][]player.Player, civIDs, mapIDs []int64, perSide int) usecase.GameInput {
	first := teamIDs[s.faker.IntRange(0, len(teamIDs)-1)]
	second := first
	for second == first {
		second = teamIDs[s.faker.IntRange(0, len(teamIDs)-1)]
	}
	winner := first
	if s.faker.Bool() {
		winner = second
	}

	input := usecase.GameInput{
		FirstPickID:  first,
		SecondPickID: second,
		WinnerID:     winner,
		GameDate:     s.faker.DateRange(time.Now().AddDate(0, -6, 0), time.Now()).UTC().Format(time.RFC3339),
	}
	if len(mapIDs) > 0 {
		mapID := mapIDs[s.faker.IntRange(0, len(mapIDs)-1)]
		input.MapID = &mapID
	}
	if s.faker.Bool() {
		link := s.faker.URL()
		input.DraftLink = &link
	}

	for _, teamID := range []int64{first, second} {
		roster := rosters[teamID]
		picked := s.faker.IntRange(0, len(roster)-perSide)
		for _, p := range roster[picked : picked+perSide] {
			input.Players = append(input.Players, game.Descriptor{
				PlayerID: p.ID,
				CivID:    civIDs[s.faker.IntRange(0, len(civIDs)-1)],
				TeamID:   teamID,
			})
		}
	}

	return input
}

func (s *seeder) createGames(ctx context.Context, inputs []usecase.GameInput, workers int) (int, int, error) {
	pool, err := ants.NewPool(workers)
	if err != nil {
		return 0, 0, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var created, failed atomic.Int32
	var wg sync.WaitGroup
	for _, input := range inputs {
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			if _, err := s.services.Games.Create(ctx, input); err != nil {
				failed.Add(1)
				s.logger.WarnContext(ctx, "create game failed", "error", err)
				return
			}
			created.Add(1)
		}); err != nil {
			wg.Done()
			return 0, 0, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}
	wg.Wait()

	return int(created.Load()), int(failed.Load()), nil
}
