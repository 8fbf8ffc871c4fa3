package memory

import (
	"context"
	"sort"

	"github.com/riskibarqy/league-admin/internal/domain/civilization"
)

type CivilizationRepository struct {
	store *Store
}

func (r *CivilizationRepository) List(_ context.Context) ([]civilization.Civilization, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]civilization.Civilization, 0, len(r.store.civs))
	for _, item := range r.store.civs {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *CivilizationRepository) GetByID(_ context.Context, id int64) (civilization.Civilization, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.civs[id]
	return item, ok, nil
}

func (r *CivilizationRepository) Create(_ context.Context, item civilization.Civilization) (civilization.Civilization, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	item.ID = r.store.nextID(civsTable)
	r.store.civs[item.ID] = item
	return item, nil
}

func (r *CivilizationRepository) Update(_ context.Context, item civilization.Civilization) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	current, ok := r.store.civs[item.ID]
	if !ok {
		return nil
	}
	item.CreatedAt = current.CreatedAt
	r.store.civs[item.ID] = item
	return nil
}

func (r *CivilizationRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.civs[id]; !ok {
		return false, nil
	}
	for _, gp := range r.store.participants {
		if gp.CivID == id {
			return false, referenceViolation("civilization %d is referenced by game player %d", id, gp.ID)
		}
	}

	delete(r.store.civs, id)
	return true, nil
}
