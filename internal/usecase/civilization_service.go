package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/league-admin/internal/domain/civilization"
)

type CivilizationInput struct {
	Name        string
	Description *string
}

type CivilizationService struct {
	civRepo civilization.Repository
	now     func() time.Time
}

func NewCivilizationService(civRepo civilization.Repository) *CivilizationService {
	return &CivilizationService{
		civRepo: civRepo,
		now:     time.Now,
	}
}

func (s *CivilizationService) List(ctx context.Context) ([]civilization.Civilization, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CivilizationService.List")
	defer span.End()

	items, err := s.civRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list civilizations: %w", err)
	}

	return items, nil
}

func (s *CivilizationService) Create(ctx context.Context, input CivilizationInput) (civilization.Civilization, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CivilizationService.Create")
	defer span.End()

	now := s.now().UTC()
	item := civilization.Civilization{
		Name:        strings.TrimSpace(input.Name),
		Description: optionalText(input.Description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := item.Validate(); err != nil {
		return civilization.Civilization{}, invalidInput(err)
	}

	created, err := s.civRepo.Create(ctx, item)
	if err != nil {
		return civilization.Civilization{}, writeError("create civilization", err)
	}

	return created, nil
}

// Update overwrites name and description; a missing description clears it.
func (s *CivilizationService) Update(ctx context.Context, id int64, input CivilizationInput) (civilization.Civilization, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CivilizationService.Update", idAttr("civ.id", id))
	defer span.End()

	if id <= 0 {
		return civilization.Civilization{}, fmt.Errorf("%w: civilization id must be positive", ErrInvalidInput)
	}
	current, exists, err := s.civRepo.GetByID(ctx, id)
	if err != nil {
		return civilization.Civilization{}, fmt.Errorf("get civilization by id: %w", err)
	}
	if !exists {
		return civilization.Civilization{}, fmt.Errorf("%w: civilization=%d", ErrNotFound, id)
	}

	current.Name = strings.TrimSpace(input.Name)
	current.Description = optionalText(input.Description)
	if err := current.Validate(); err != nil {
		return civilization.Civilization{}, invalidInput(err)
	}
	current.UpdatedAt = s.now().UTC()

	if err := s.civRepo.Update(ctx, current); err != nil {
		return civilization.Civilization{}, writeError("update civilization", err)
	}

	return current, nil
}

func (s *CivilizationService) Delete(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.CivilizationService.Delete", idAttr("civ.id", id))
	defer span.End()

	deleted, err := s.civRepo.Delete(ctx, id)
	if err != nil {
		return deleteError("delete civilization", err)
	}
	if !deleted {
		return fmt.Errorf("%w: civilization=%d", ErrNotFound, id)
	}

	return nil
}

// optionalText trims v and maps blank to nil.
func optionalText(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
