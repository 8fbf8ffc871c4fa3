package memory

import (
	"context"
	"sort"

	"github.com/riskibarqy/league-admin/internal/domain/gamemap"
)

type MapRepository struct {
	store *Store
}

func (r *MapRepository) List(_ context.Context) ([]gamemap.Map, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]gamemap.Map, 0, len(r.store.maps))
	for _, item := range r.store.maps {
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

func (r *MapRepository) GetByID(_ context.Context, id int64) (gamemap.Map, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.maps[id]
	return item, ok, nil
}

func (r *MapRepository) Create(_ context.Context, item gamemap.Map) (gamemap.Map, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	item.ID = r.store.nextID(mapsTable)
	r.store.maps[item.ID] = item
	return item, nil
}

func (r *MapRepository) Update(_ context.Context, item gamemap.Map) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	current, ok := r.store.maps[item.ID]
	if !ok {
		return nil
	}
	item.CreatedAt = current.CreatedAt
	r.store.maps[item.ID] = item
	return nil
}

func (r *MapRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.maps[id]; !ok {
		return false, nil
	}
	for _, g := range r.store.games {
		if g.MapID != nil && *g.MapID == id {
			return false, referenceViolation("map %d is referenced by game %d", id, g.ID)
		}
	}

	delete(r.store.maps, id)
	return true, nil
}
