package memory

import (
	"time"

	"project-collab-be/internal/entity"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

// ContactCache keeps recently resolved user profiles in memory so the chat
// contact list does not hit the database on every lookup.
type ContactCache struct {
	cache *gocache.Cache
}

func NewContactCache(ttl, cleanupInterval time.Duration) *ContactCache {
	return &ContactCache{
		cache: gocache.New(ttl, cleanupInterval),
	}
}

func (c *ContactCache) Get(id uuid.UUID) (*entity.User, bool) {
	v, ok := c.cache.Get(id.String())
	if !ok {
		return nil, false
	}
	user, ok := v.(*entity.User)
	return user, ok
}

func (c *ContactCache) Set(user *entity.User) {
	if user == nil {
		return
	}
	c.cache.SetDefault(user.Id.String(), user)
}

func (c *ContactCache) Invalidate(id uuid.UUID) {
	c.cache.Delete(id.String())
}
