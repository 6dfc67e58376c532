package usecase

import (
	"context"
	"time"
)

// ContentCache is the slice of the Redis cache the usecases need. A nil
// ContentCache disables caching entirely.
type ContentCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	InvalidateResource(ctx context.Context, resource string) error
}

func listCacheKey(resource string) string {
	return "portfolio:" + resource + ":list"
}

func cacheList(ctx context.Context, c ContentCache, resource string, out any) bool {
	if c == nil {
		return false
	}
	ok, err := c.GetJSON(ctx, listCacheKey(resource), out)
	return err == nil && ok
}

func storeList(ctx context.Context, c ContentCache, resource string, value any) {
	if c == nil {
		return
	}
	_ = c.SetJSON(ctx, listCacheKey(resource), value, 0)
}

func invalidate(ctx context.Context, c ContentCache, resource string) {
	if c == nil {
		return
	}
	_ = c.InvalidateResource(ctx, resource)
}
