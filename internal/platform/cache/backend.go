package cache

import (
	"context"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/riskibarqy/league-admin/internal/platform/logging"
	"github.com/riskibarqy/league-admin/internal/platform/resilience"
)

// Backend stores encoded values by key. A miss is reported as ok=false with
// a nil error.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	DeletePrefix(ctx context.Context, prefix string) error
}

// Cache adds load-through semantics on top of a Backend. Backend failures are
// logged and degrade to a direct load.
type Cache struct {
	backend Backend
	flight  resilience.SingleFlight
	logger  *logging.Logger
}

func New(backend Backend, logger *logging.Logger) *Cache {
	if logger == nil {
		logger = logging.Default()
	}
	return &Cache{backend: backend, logger: logger}
}

// GetOrLoad returns the cached value for key or runs loader once across
// concurrent callers and stores its result.
func GetOrLoad[T any](ctx context.Context, c *Cache, key string, loader func(context.Context) (T, error)) (T, error) {
	var zero T
	if loader == nil {
		return zero, fmt.Errorf("loader is required")
	}
	if c == nil || c.backend == nil || key == "" {
		return loader(ctx)
	}

	if value, ok := c.lookup(ctx, key, new(T)); ok {
		return *value.(*T), nil
	}

	// The load is shared with every waiting caller and ignores cancellation.
	shared := context.WithoutCancel(ctx)
	value, err, _ := c.flight.Do(key, func() (any, error) {
		if cached, ok := c.lookup(shared, key, new(T)); ok {
			return *cached.(*T), nil
		}

		loaded, loadErr := loader(shared)
		if loadErr != nil {
			return nil, loadErr
		}
		c.store(shared, key, loaded)
		return loaded, nil
	})
	if err != nil {
		return zero, err
	}

	out, ok := value.(T)
	if !ok {
		return zero, fmt.Errorf("cache value for %q has unexpected type %T", key, value)
	}
	return out, nil
}

func (c *Cache) Invalidate(ctx context.Context, prefix string) {
	if c == nil || c.backend == nil {
		return
	}
	if err := c.backend.DeletePrefix(ctx, prefix); err != nil {
		c.logger.WarnContext(ctx, "cache invalidate failed", "prefix", prefix, "error", err)
	}
}

func (c *Cache) lookup(ctx context.Context, key string, dst any) (any, bool) {
	raw, ok, err := c.backend.Get(ctx, key)
	if err != nil {
		c.logger.WarnContext(ctx, "cache get failed", "key", key, "error", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}
	if err := sonic.Unmarshal(raw, dst); err != nil {
		c.logger.WarnContext(ctx, "cache decode failed", "key", key, "error", err)
		return nil, false
	}
	return dst, true
}

func (c *Cache) store(ctx context.Context, key string, value any) {
	raw, err := sonic.Marshal(value)
	if err != nil {
		c.logger.WarnContext(ctx, "cache encode failed", "key", key, "error", err)
		return
	}
	if err := c.backend.Set(ctx, key, raw); err != nil {
		c.logger.WarnContext(ctx, "cache set failed", "key", key, "error", err)
	}
}
