package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/league-admin/internal/domain/team"
)

type TeamInput struct {
	Name string
}

type TeamService struct {
	teamRepo team.Repository
	now      func() time.Time
}

func NewTeamService(teamRepo team.Repository) *TeamService {
	return &TeamService{
		teamRepo: teamRepo,
		now:      time.Now,
	}
}

func (s *TeamService) List(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.List")
	defer span.End()

	items, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	return items, nil
}

func (s *TeamService) Create(ctx context.Context, input TeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Create")
	defer span.End()

	now := s.now().UTC()
	item := team.Team{
		Name:      strings.TrimSpace(input.Name),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := item.Validate(); err != nil {
		return team.Team{}, invalidInput(err)
	}

	created, err := s.teamRepo.Create(ctx, item)
	if err != nil {
		return team.Team{}, writeError("create team", err)
	}

	return created, nil
}

func (s *TeamService) Update(ctx context.Context, id int64, input TeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Update", idAttr("team.id", id))
	defer span.End()

	current, err := s.get(ctx, id)
	if err != nil {
		return team.Team{}, err
	}

	current.Name = strings.TrimSpace(input.Name)
	if err := current.Validate(); err != nil {
		return team.Team{}, invalidInput(err)
	}
	current.UpdatedAt = s.now().UTC()

	if err := s.teamRepo.Update(ctx, current); err != nil {
		return team.Team{}, writeError("update team", err)
	}

	return current, nil
}

func (s *TeamService) Delete(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Delete", idAttr("team.id", id))
	defer span.End()

	deleted, err := s.teamRepo.Delete(ctx, id)
	if err != nil {
		return deleteError("delete team", err)
	}
	if !deleted {
		return fmt.Errorf("%w: team=%d", ErrNotFound, id)
	}

	return nil
}

func (s *TeamService) get(ctx context.Context, id int64) (team.Team, error) {
	if id <= 0 {
		return team.Team{}, fmt.Errorf("%w: team id must be positive", ErrInvalidInput)
	}

	item, exists, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team by id: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%d", ErrNotFound, id)
	}

	return item, nil
}
