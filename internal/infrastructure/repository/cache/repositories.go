package cache

import (
	"context"
	"strconv"

	"github.com/riskibarqy/league-admin/internal/domain/civilization"
	"github.com/riskibarqy/league-admin/internal/domain/gamemap"
	"github.com/riskibarqy/league-admin/internal/domain/team"
	basecache "github.com/riskibarqy/league-admin/internal/platform/cache"
)

const (
	teamPrefix         = "team:"
	civilizationPrefix = "civ:"
	mapPrefix          = "map:"
)

// cachedByID keeps misses cacheable. Fields are exported for the codec.
type cachedByID[T any] struct {
	Value  T    `json:"value"`
	Exists bool `json:"exists"`
}

func listKey(prefix string) string {
	return prefix + "list"
}

func idKey(prefix string, id int64) string {
	return prefix + "id:" + strconv.FormatInt(id, 10)
}

func getByID[T any](ctx context.Context, c *basecache.Cache, key string, load func(context.Context) (T, bool, error)) (T, bool, error) {
	cached, err := basecache.GetOrLoad(ctx, c, key, func(ctx context.Context) (cachedByID[T], error) {
		item, exists, err := load(ctx)
		if err != nil {
			return cachedByID[T]{}, err
		}
		return cachedByID[T]{Value: item, Exists: exists}, nil
	})
	if err != nil {
		var zero T
		return zero, false, err
	}
	return cached.Value, cached.Exists, nil
}

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Cache
}

func NewTeamRepository(next team.Repository, cache *basecache.Cache) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	return basecache.GetOrLoad(ctx, r.cache, listKey(teamPrefix), r.next.List)
}

func (r *TeamRepository) GetByID(ctx context.Context, id int64) (team.Team, bool, error) {
	return getByID(ctx, r.cache, idKey(teamPrefix, id), func(ctx context.Context) (team.Team, bool, error) {
		return r.next.GetByID(ctx, id)
	})
}

func (r *TeamRepository) Create(ctx context.Context, item team.Team) (team.Team, error) {
	created, err := r.next.Create(ctx, item)
	if err != nil {
		return team.Team{}, err
	}
	r.cache.Invalidate(ctx, teamPrefix)
	return created, nil
}

func (r *TeamRepository) Update(ctx context.Context, item team.Team) error {
	if err := r.next.Update(ctx, item); err != nil {
		return err
	}
	r.cache.Invalidate(ctx, teamPrefix)
	return nil
}

func (r *TeamRepository) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := r.next.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		r.cache.Invalidate(ctx, teamPrefix)
	}
	return deleted, nil
}

type CivilizationRepository struct {
	next  civilization.Repository
	cache *basecache.Cache
}

func NewCivilizationRepository(next civilization.Repository, cache *basecache.Cache) *CivilizationRepository {
	return &CivilizationRepository{next: next, cache: cache}
}

func (r *CivilizationRepository) List(ctx context.Context) ([]civilization.Civilization, error) {
	return basecache.GetOrLoad(ctx, r.cache, listKey(civilizationPrefix), r.next.List)
}

func (r *CivilizationRepository) GetByID(ctx context.Context, id int64) (civilization.Civilization, bool, error) {
	return getByID(ctx, r.cache, idKey(civilizationPrefix, id), func(ctx context.Context) (civilization.Civilization, bool, error) {
		return r.next.GetByID(ctx, id)
	})
}

func (r *CivilizationRepository) Create(ctx context.Context, item civilization.Civilization) (civilization.Civilization, error) {
	created, err := r.next.Create(ctx, item)
	if err != nil {
		return civilization.Civilization{}, err
	}
	r.cache.Invalidate(ctx, civilizationPrefix)
	return created, nil
}

func (r *CivilizationRepository) Update(ctx context.Context, item civilization.Civilization) error {
	if err := r.next.Update(ctx, item); err != nil {
		return err
	}
	r.cache.Invalidate(ctx, civilizationPrefix)
	return nil
}

func (r *CivilizationRepository) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := r.next.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		r.cache.Invalidate(ctx, civilizationPrefix)
	}
	return deleted, nil
}

type MapRepository struct {
	next  gamemap.Repository
	cache *basecache.Cache
}

func NewMapRepository(next gamemap.Repository, cache *basecache.Cache) *MapRepository {
	return &MapRepository{next: next, cache: cache}
}

func (r *MapRepository) List(ctx context.Context) ([]gamemap.Map, error) {
	return basecache.GetOrLoad(ctx, r.cache, listKey(mapPrefix), r.next.List)
}

func (r *MapRepository) GetByID(ctx context.Context, id int64) (gamemap.Map, bool, error) {
	return getByID(ctx, r.cache, idKey(mapPrefix, id), func(ctx context.Context) (gamemap.Map, bool, error) {
		return r.next.GetByID(ctx, id)
	})
}

func (r *MapRepository) Create(ctx context.Context, item gamemap.Map) (gamemap.Map, error) {
	created, err := r.next.Create(ctx, item)
	if err != nil {
		return gamemap.Map{}, err
	}
	r.cache.Invalidate(ctx, mapPrefix)
	return created, nil
}

func (r *MapRepository) Update(ctx context.Context, item gamemap.Map) error {
	if err := r.next.Update(ctx, item); err != nil {
		return err
	}
	r.cache.Invalidate(ctx, mapPrefix)
	return nil
}

func (r *MapRepository) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := r.next.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		r.cache.Invalidate(ctx, mapPrefix)
	}
	return deleted, nil
}
