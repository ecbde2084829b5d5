package store

import (
	"context"
	"sync"

	"poultry360/internal/api"
	"poultry360/internal/domain"
	"poultry360/internal/logging"
)

// Fetcher loads one page of records from the server.
type Fetcher[T any] func(ctx context.Context) (*domain.Page[T], error)

// Collection is the shared core of every resource store: a cached list,
// a loading flag, and a display error. Loads replace the cache on success
// and keep the stale cache on failure; the failure is surfaced through
// ErrorMessage, never returned. Mutations record their error and also
// return it so a form can react, and they never touch the cache; callers
// refresh to observe the result.
//
// Each load is stamped with a monotonically increasing sequence number.
// A response whose stamp no longer matches the latest one is discarded,
// so overlapping refreshes cannot clobber newer data with older data.
type Collection[T any] struct {
	mu        sync.Mutex
	name      string
	fetch     Fetcher[T]
	items     []T
	page      domain.Pagination
	loading   bool
	errMsg    string
	seq       uint64
	listeners []func()
}

func NewCollection[T any](name string, fetch Fetcher[T]) *Collection[T] {
	return &Collection[T]{name: name, fetch: fetch}
}

// OnChange registers a listener invoked after every state change.
func (c *Collection[T]) OnChange(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

func (c *Collection[T]) notify() {
	c.mu.Lock()
	listeners := make([]func(), len(c.listeners))
	copy(listeners, c.listeners)
	c.mu.Unlock()
	for _, fn := range listeners {
		fn()
	}
}

// Refresh loads the list. Errors are recorded, not returned; the previous
// cache survives a failed load.
func (c *Collection[T]) Refresh(ctx context.Context) {
	c.mu.Lock()
	c.seq++
	stamp := c.seq
	c.loading = true
	c.errMsg = ""
	c.mu.Unlock()
	c.notify()

	page, err := c.fetch(ctx)

	c.mu.Lock()
	if stamp != c.seq {
		c.mu.Unlock()
		logging.StoreDebug("%s: discarding superseded load (stamp %d)", c.name, stamp)
		return
	}
	c.loading = false
	if err != nil {
		c.errMsg = api.ServerMessage(err, "Failed to fetch "+c.name)
		logging.Store("%s: load failed: %v", c.name, err)
	} else {
		c.items = page.Data
		c.page = page.Pagination
	}
	c.mu.Unlock()
	c.notify()
}

// mutate wraps a create, update, or delete call: loading is raised for its
// duration, a failure is recorded as a display message and returned, and
// the cached list is left alone either way.
func (c *Collection[T]) mutate(fallback string, op func() error) error {
	c.mu.Lock()
	c.loading = true
	c.errMsg = ""
	c.mu.Unlock()
	c.notify()

	err := op()

	c.mu.Lock()
	c.loading = false
	if err != nil {
		c.errMsg = api.ServerMessage(err, fallback)
	}
	c.mu.Unlock()
	c.notify()
	return err
}

// setLoading flips the loading flag outside Refresh and mutate, for
// single-record lookups.
func (c *Collection[T]) setLoading(v bool) {
	c.mu.Lock()
	c.loading = v
	if v {
		c.errMsg = ""
	}
	c.mu.Unlock()
	c.notify()
}

// recordError stores a display error and drops the loading flag.
func (c *Collection[T]) recordError(fallback string, err error) {
	c.mu.Lock()
	c.loading = false
	c.errMsg = api.ServerMessage(err, fallback)
	c.mu.Unlock()
	c.notify()
}

// Items returns a copy of the cached list.
func (c *Collection[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Loading reports whether a load or mutation is in flight.
func (c *Collection[T]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// ErrorMessage returns the display message from the last failed call, or
// "" when the last call succeeded.
func (c *Collection[T]) ErrorMessage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errMsg
}

// ClearError resets the display error, typically when a form is dismissed.
func (c *Collection[T]) ClearError() {
	c.mu.Lock()
	c.errMsg = ""
	c.mu.Unlock()
	c.notify()
}

// Pagination returns the envelope from the most recent successful load.
func (c *Collection[T]) Pagination() domain.Pagination {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}
