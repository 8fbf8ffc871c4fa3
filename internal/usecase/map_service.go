package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/league-admin/internal/domain/gamemap"
)

type MapInput struct {
	Name string
}

type MapService struct {
	mapRepo gamemap.Repository
	now     func() time.Time
}

func NewMapService(mapRepo gamemap.Repository) *MapService {
	return &MapService{
		mapRepo: mapRepo,
		now:     time.Now,
	}
}

func (s *MapService) List(ctx context.Context) ([]gamemap.Map, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MapService.List")
	defer span.End()

	items, err := s.mapRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list maps: %w", err)
	}

	return items, nil
}

func (s *MapService) Create(ctx context.Context, input MapInput) (gamemap.Map, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MapService.Create")
	defer span.End()

	now := s.now().UTC()
	item := gamemap.Map{
		Name:      strings.TrimSpace(input.Name),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := item.Validate(); err != nil {
		return gamemap.Map{}, invalidInput(err)
	}

	created, err := s.mapRepo.Create(ctx, item)
	if err != nil {
		return gamemap.Map{}, writeError("create map", err)
	}

	return created, nil
}

func (s *MapService) Update(ctx context.Context, id int64, input MapInput) (gamemap.Map, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MapService.Update", idAttr("map.id", id))
	defer span.End()

	if id <= 0 {
		return gamemap.Map{}, fmt.Errorf("%w: map id must be positive", ErrInvalidInput)
	}
	current, exists, err := s.mapRepo.GetByID(ctx, id)
	if err != nil {
		return gamemap.Map{}, fmt.Errorf("get map by id: %w", err)
	}
	if !exists {
		return gamemap.Map{}, fmt.Errorf("%w: map=%d", ErrNotFound, id)
	}

	current.Name = strings.TrimSpace(input.Name)
	if err := current.Validate(); err != nil {
		return gamemap.Map{}, invalidInput(err)
	}
	current.UpdatedAt = s.now().UTC()

	if err := s.mapRepo.Update(ctx, current); err != nil {
		return gamemap.Map{}, writeError("update map", err)
	}

	return current, nil
}

func (s *MapService) Delete(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MapService.Delete", idAttr("map.id", id))
	defer span.End()

	deleted, err := s.mapRepo.Delete(ctx, id)
	if err != nil {
		return deleteError("delete map", err)
	}
	if !deleted {
		return fmt.Errorf("%w: map=%d", ErrNotFound, id)
	}

	return nil
}
