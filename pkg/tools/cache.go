package tools

import (
	"time"

	"github.com/veloplan/tripmcp/pkg/cache"
	"github.com/veloplan/tripmcp/pkg/dataset"
	"github.com/veloplan/tripmcp/pkg/match"
)

const (
	routeCacheTTL      = 5 * time.Minute
	routeCacheMaxItems = 128
)

// cachedRoute records the outcome of a route resolution, including
// misses, so repeated unknown-route queries skip the fuzzy scan too.
type cachedRoute struct {
	route *dataset.Route
	ok    bool
}

// routeCache memoizes fuzzy route resolution keyed by normalized
// endpoints. Datasets are immutable, so a hit is always valid.
type routeCache struct {
	c *cache.TTLCache
}

func newRouteCache() *routeCache {
	return &routeCache{c: cache.NewTTLCache(routeCacheTTL, routeCacheMaxItems)}
}

func (rc *routeCache) lookup(routes []dataset.Route, start, end string) (*dataset.Route, bool) {
	key := match.Normalize(start) + "|" + match.Normalize(end)

	if v, found := rc.c.Get(key); found {
		if cached, valid := v.(cachedRoute); valid {
			return cached.route, cached.ok
		}
	}

	route, ok := match.FindRoute(routes, start, end)
	rc.c.Set(key, cachedRoute{route: route, ok: ok})
	return route, ok
}
