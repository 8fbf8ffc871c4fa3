package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/league-admin/internal/domain/game"
)

// GameInput carries the writable fields of a game. GameDate is either
// YYYY-MM-DD or RFC3339. Create always takes every field. Update keeps the
// stored map, draft link and participants unless the matching Set/Replace
// flag is on; an empty Players slice then clears them.
type GameInput struct {
	FirstPickID    int64
	SecondPickID   int64
	WinnerID       int64
	MapID          *int64
	SetMap         bool
	DraftLink      *string
	SetDraftLink   bool
	GameDate       string
	Players        []game.Descriptor
	ReplacePlayers bool
}

type GameService struct {
	gameRepo game.Repository
	now      func() time.Time
}

func NewGameService(gameRepo game.Repository) *GameService {
	return &GameService{
		gameRepo: gameRepo,
		now:      time.Now,
	}
}

func (s *GameService) List(ctx context.Context) ([]game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.List")
	defer span.End()

	items, err := s.gameRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}

	return items, nil
}

func (s *GameService) Get(ctx context.Context, id int64) (game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.Get", idAttr("game.id", id))
	defer span.End()

	if id <= 0 {
		return game.Game{}, fmt.Errorf("%w: game id must be positive", ErrInvalidInput)
	}

	item, exists, err := s.gameRepo.GetByID(ctx, id)
	if err != nil {
		return game.Game{}, fmt.Errorf("get game by id: %w", err)
	}
	if !exists {
		return game.Game{}, fmt.Errorf("%w: game=%d", ErrNotFound, id)
	}

	return item, nil
}

// Create writes the game and its complete participant descriptors in one
// repository call, then returns the stored game with every name resolved.
func (s *GameService) Create(ctx context.Context, input GameInput) (game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.Create")
	defer span.End()

	now := s.now().UTC()
	item, err := input.apply(game.Game{CreatedAt: now}, true)
	if err != nil {
		return game.Game{}, err
	}
	item.UpdatedAt = now

	created, err := s.gameRepo.Create(ctx, item, participantsFrom(input.Players, now))
	if err != nil {
		return game.Game{}, gameWriteError("create game", err)
	}

	return s.Get(ctx, created.ID)
}

func (s *GameService) Update(ctx context.Context, id int64, input GameInput) (game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.Update", idAttr("game.id", id))
	defer span.End()

	current, err := s.Get(ctx, id)
	if err != nil {
		return game.Game{}, err
	}

	item, err := input.apply(current, false)
	if err != nil {
		return game.Game{}, err
	}
	now := s.now().UTC()
	item.UpdatedAt = now

	var participants []game.Participant
	if input.ReplacePlayers {
		participants = participantsFrom(input.Players, now)
	}
	if err := s.gameRepo.Update(ctx, item, participants, input.ReplacePlayers); err != nil {
		return game.Game{}, gameWriteError("update game", err)
	}

	return s.Get(ctx, id)
}

func (s *GameService) Delete(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.Delete", idAttr("game.id", id))
	defer span.End()

	deleted, err := s.gameRepo.Delete(ctx, id)
	if err != nil {
		return deleteError("delete game", err)
	}
	if !deleted {
		return fmt.Errorf("%w: game=%d", ErrNotFound, id)
	}

	return nil
}

func (in GameInput) apply(item game.Game, create bool) (game.Game, error) {
	gameDate, err := game.ParseDate(in.GameDate)
	if err != nil {
		return game.Game{}, invalidInput(err)
	}

	item.FirstPickID = in.FirstPickID
	item.SecondPickID = in.SecondPickID
	item.WinnerID = in.WinnerID
	if create || in.SetMap {
		item.MapID = in.MapID
	}
	if create || in.SetDraftLink {
		item.DraftLink = optionalText(in.DraftLink)
	}
	item.GameDate = gameDate
	item.Players = nil
	if err := item.Validate(); err != nil {
		return game.Game{}, invalidInput(err)
	}

	return item, nil
}

// participantsFrom drops descriptors missing any of the three references.
func participantsFrom(items []game.Descriptor, now time.Time) []game.Participant {
	complete := game.CompleteDescriptors(items)
	out := make([]game.Participant, 0, len(complete))
	for _, d := range complete {
		out = append(out, game.Participant{
			PlayerID:  d.PlayerID,
			CivID:     d.CivID,
			TeamID:    d.TeamID,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return out
}

// gameWriteError names the only unique rule a game write can break.
func gameWriteError(op string, err error) error {
	return classifyWrite(op, err, "player listed twice in one game")
}
