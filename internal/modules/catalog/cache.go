package catalog

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/sarmstore/storefront-backend/internal/bus"
)

// Cache is an in-memory mirror of the product set. It is a disposable,
// read-only shadow of what the database holds: Refresh replaces the whole
// snapshot, and a failed Refresh leaves the previous snapshot intact.
type Cache struct {
	repo Repository

	mu    sync.RWMutex
	items []Product
	byID  map[uuid.UUID]int

	subMu   sync.Mutex
	subs    map[int]func([]Product)
	nextSub int
}

func NewCache(repo Repository) *Cache {
	return &Cache{
		repo: repo,
		byID: make(map[uuid.UUID]int),
		subs: make(map[int]func([]Product)),
	}
}

// Refresh fetches the full current product set. On error the caller gets the
// error back and the previously loaded snapshot stays in place.
func (c *Cache) Refresh(ctx context.Context) error {
	products, err := c.repo.List(ctx, "")
	if err != nil {
		return err
	}

	byID := make(map[uuid.UUID]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}

	c.mu.Lock()
	c.items = products
	c.byID = byID
	c.mu.Unlock()
	return nil
}

// Snapshot returns a copy of the cached product set.
func (c *Cache) Snapshot() []Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Product, len(c.items))
	copy(out, c.items)
	return out
}

// Get looks up a single product in the snapshot.
func (c *Cache) Get(id uuid.UUID) (Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, ok := c.byID[id]
	if !ok {
		return Product{}, false
	}
	return c.items[i], true
}

// Subscribe registers fn to receive the full refreshed product set on every
// catalog change. The returned cancel func removes the subscription so a
// torn-down view does not leak its listener.
func (c *Cache) Subscribe(fn func([]Product)) (cancel func()) {
	c.subMu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	c.subMu.Unlock()

	return func() {
		c.subMu.Lock()
		delete(c.subs, id)
		c.subMu.Unlock()
	}
}

// Run consumes catalog change events from the bus until ctx is cancelled,
// refreshing the snapshot and fanning it out to subscribers.
func (c *Cache) Run(ctx context.Context, b *bus.Bus) error {
	msgs, err := b.Subscribe(ctx, TopicChanged)
	if err != nil {
		return err
	}
	go func() {
		for msg := range msgs {
			if err := c.Refresh(ctx); err != nil {
				slog.Error("catalog cache refresh failed", "err", err)
			} else {
				c.fanout()
			}
			msg.Ack()
		}
	}()
	return nil
}

func (c *Cache) fanout() {
	snapshot := c.Snapshot()
	c.subMu.Lock()
	defer c.subMu.Unlock()
	for _, fn := range c.subs {
		fn(snapshot)
	}
}
