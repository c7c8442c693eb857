package profilecache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"

	"prayershare/model"
)

// Fetcher is the backing profile lookup, satisfied by the user
// repository.
type Fetcher interface {
	Get(ctx context.Context, uid string) (model.User, error)
}

// Cache resolves author ids to display profiles through a bounded TTL
// LRU. Resolve never fails: misses and lookup errors both produce the
// fixed fallback profile. Negative results are not cached so a profile
// created moments later shows up on the next page.
type Cache struct {
	lru   *expirable.LRU[string, model.Profile]
	users Fetcher
	log   *zap.Logger
}

func New(users Fetcher, size int, ttl time.Duration, log *zap.Logger) *Cache {
	return &Cache{
		lru:   expirable.NewLRU[string, model.Profile](size, nil, ttl),
		users: users,
		log:   log,
	}
}

// Resolve returns the profile for uid, or the fallback. Safe for
// concurrent use; duplicate concurrent fetches for one uid are accepted.
func (c *Cache) Resolve(ctx context.Context, uid string) model.Profile {
	if uid == "" {
		return model.FallbackProfile()
	}
	if p, ok := c.lru.Get(uid); ok {
		return p
	}

	u, err := c.users.Get(ctx, uid)
	if err != nil {
		c.log.Debug("profile lookup fell back", zap.String("uid", uid), zap.Error(err))
		return model.FallbackProfile()
	}

	p := u.Profile()
	c.lru.Add(uid, p)
	return p
}

// Invalidate drops a cached entry after the owner edits their profile.
func (c *Cache) Invalidate(uid string) {
	c.lru.Remove(uid)
}
