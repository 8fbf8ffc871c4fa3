package app

import (
	"context"
	"fmt"

	"github.com/riskibarqy/league-admin/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/league-admin/internal/usecase"
)

// SeedReferenceData loads the reference civilizations and maps through the
// services. Names that already exist are skipped.
func SeedReferenceData(ctx context.Context, civs *usecase.CivilizationService, maps *usecase.MapService) error {
	existingCivs, err := civs.List(ctx)
	if err != nil {
		return err
	}
	known := make(map[string]struct{}, len(existingCivs))
	for _, item := range existingCivs {
		known[item.Name] = struct{}{}
	}
	for _, item := range memory.SeedCivilizations() {
		if _, ok := known[item.Name]; ok {
			continue
		}
		if _, err := civs.Create(ctx, usecase.CivilizationInput{Name: item.Name, Description: item.Description}); err != nil {
			return fmt.Errorf("seed civilization %q: %w", item.Name, err)
		}
	}

	existingMaps, err := maps.List(ctx)
	if err != nil {
		return err
	}
	known = make(map[string]struct{}, len(existingMaps))
	for _, item := range existingMaps {
		known[item.Name] = struct{}{}
	}
	for _, item := range memory.SeedMaps() {
		if _, ok := known[item.Name]; ok {
			continue
		}
		if _, err := maps.Create(ctx, usecase.MapInput{Name: item.Name}); err != nil {
			return fmt.Errorf("seed map %q: %w", item.Name, err)
		}
	}

	return nil
}
