package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/league-admin/internal/domain/player"
)

type PlayerInput struct {
	Name   string
	TeamID int64
}

type PlayerService struct {
	playerRepo player.Repository
	now        func() time.Time
}

func NewPlayerService(playerRepo player.Repository) *PlayerService {
	return &PlayerService{
		playerRepo: playerRepo,
		now:        time.Now,
	}
}

func (s *PlayerService) List(ctx context.Context) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.List")
	defer span.End()

	items, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	return items, nil
}

// Create persists the player and reads it back so the team name is resolved.
func (s *PlayerService) Create(ctx context.Context, input PlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Create")
	defer span.End()

	now := s.now().UTC()
	item := player.Player{
		Name:      strings.TrimSpace(input.Name),
		TeamID:    input.TeamID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := item.Validate(); err != nil {
		return player.Player{}, invalidInput(err)
	}

	created, err := s.playerRepo.Create(ctx, item)
	if err != nil {
		return player.Player{}, writeError("create player", err)
	}

	return s.get(ctx, created.ID)
}

func (s *PlayerService) Update(ctx context.Context, id int64, input PlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Update", idAttr("player.id", id))
	defer span.End()

	current, err := s.get(ctx, id)
	if err != nil {
		return player.Player{}, err
	}

	current.Name = strings.TrimSpace(input.Name)
	current.TeamID = input.TeamID
	if err := current.Validate(); err != nil {
		return player.Player{}, invalidInput(err)
	}
	current.UpdatedAt = s.now().UTC()

	if err := s.playerRepo.Update(ctx, current); err != nil {
		return player.Player{}, writeError("update player", err)
	}

	return s.get(ctx, id)
}

func (s *PlayerService) Delete(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Delete", idAttr("player.id", id))
	defer span.End()

	deleted, err := s.playerRepo.Delete(ctx, id)
	if err != nil {
		return deleteError("delete player", err)
	}
	if !deleted {
		return fmt.Errorf("%w: player=%d", ErrNotFound, id)
	}

	return nil
}

func (s *PlayerService) get(ctx context.Context, id int64) (player.Player, error) {
	if id <= 0 {
		return player.Player{}, fmt.Errorf("%w: player id must be positive", ErrInvalidInput)
	}

	item, exists, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player by id: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%d", ErrNotFound, id)
	}

	return item, nil
}
