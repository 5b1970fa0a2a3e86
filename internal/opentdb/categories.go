package opentdb

import (
	"context"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Category is one entry of the trivia_categories listing.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type categoriesResponse struct {
	TriviaCategories []Category `json:"trivia_categories"`
}

func (c *Client) FetchCategories(ctx context.Context) ([]Category, error) {
	var payload categoriesResponse
	if err := c.getJSON(ctx, "/api_category.php", nil, &payload); err != nil {
		return nil, err
	}

	categories := payload.TriviaCategories
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].ID < categories[j].ID
	})
	return categories, nil
}

// CategoryCache caches the category listing with a TTL so repeated CLI
// invocations within one process do not hammer the API. Concurrent
// refreshes are collapsed through singleflight.
type CategoryCache struct {
	client *Client
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group

	mu        sync.RWMutex
	cached    []Category
	expiresAt time.Time
}

func NewCategoryCache(client *Client, ttl time.Duration) *CategoryCache {
	return &CategoryCache{
		client: client,
		ttl:    ttl,
		clock:  time.Now,
	}
}

func (c *CategoryCache) Categories(ctx context.Context) ([]Category, error) {
	now := c.clock()

	c.mu.RLock()
	if c.cached != nil && c.expiresAt.After(now) {
		cached := c.cached
		c.mu.RUnlock()
		return cached, nil
	}
	c.mu.RUnlock()

	result, err, _ := c.sf.Do("categories", func() (any, error) {
		categories, err := c.client.FetchCategories(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.cached = categories
		c.expiresAt = c.clock().Add(c.ttl)
		c.mu.Unlock()

		return categories, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]Category), nil
}
