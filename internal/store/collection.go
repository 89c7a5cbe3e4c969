package store

import (
	"slices"
	"sync"
)

// Record is implemented by every type held in a Collection.
type Record[R any] interface {
	RecordID() int64
	WithID(id int64) R
}

// Mutation operations reported to observers.
const (
	OpAdd     = "add"
	OpReplace = "replace"
	OpRemove  = "remove"
)

// Observer is notified after every successful mutation.
type Observer func(collection, op string)

// Collection is an ordered in-memory set of records keyed by ID.
type Collection[R Record[R]] struct {
	mu       sync.RWMutex
	name     string
	records  []R
	nextID   int64
	observer Observer
}

// NewCollection creates a collection holding seed in the given order. IDs
// handed out by Add start above the highest seeded ID.
func NewCollection[R Record[R]](name string, seed []R) *Collection[R] {
	c := &Collection[R]{name: name, records: slices.Clone(seed)}
	for _, r := range seed {
		if id := r.RecordID(); id > c.nextID {
			c.nextID = id
		}
	}
	return c
}

// Name returns the collection name.
func (c *Collection[R]) Name() string { return c.name }

// Observe registers fn to be called after each mutation.
func (c *Collection[R]) Observe(fn Observer) {
	c.mu.Lock()
	c.observer = fn
	c.mu.Unlock()
}

// List returns a snapshot of all records in insertion order.
func (c *Collection[R]) List() []R {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]R, len(c.records))
	copy(out, c.records)
	return out
}

// Len returns the number of records.
func (c *Collection[R]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}

// Get returns the record with the given ID.
func (c *Collection[R]) Get(id int64) (R, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i := c.index(id); i >= 0 {
		return c.records[i], true
	}
	var zero R
	return zero, false
}

// Add appends r under a freshly assigned ID and returns the stored record.
// IDs are never reused, even after removal.
func (c *Collection[R]) Add(r R) R {
	c.mu.Lock()
	c.nextID++
	r = r.WithID(c.nextID)
	c.records = append(c.records, r)
	obs := c.observer
	c.mu.Unlock()

	c.notify(obs, OpAdd)
	return r
}

// Replace swaps the record with the given ID for r, keeping its position.
// It reports false and does nothing when id is unknown.
func (c *Collection[R]) Replace(id int64, r R) bool {
	c.mu.Lock()
	i := c.index(id)
	if i < 0 {
		c.mu.Unlock()
		return false
	}
	c.records[i] = r.WithID(id)
	obs := c.observer
	c.mu.Unlock()

	c.notify(obs, OpReplace)
	return true
}

// Update applies fn to the record with the given ID in place. It reports the
// updated record, or false when id is unknown.
func (c *Collection[R]) Update(id int64, fn func(R) R) (R, bool) {
	c.mu.Lock()
	i := c.index(id)
	if i < 0 {
		c.mu.Unlock()
		var zero R
		return zero, false
	}
	updated := fn(c.records[i]).WithID(id)
	c.records[i] = updated
	obs := c.observer
	c.mu.Unlock()

	c.notify(obs, OpReplace)
	return updated, true
}

// Remove deletes the record with the given ID. It reports false and does
// nothing when id is unknown.
func (c *Collection[R]) Remove(id int64) bool {
	c.mu.Lock()
	i := c.index(id)
	if i < 0 {
		c.mu.Unlock()
		return false
	}
	c.records = slices.Delete(c.records, i, i+1)
	obs := c.observer
	c.mu.Unlock()

	c.notify(obs, OpRemove)
	return true
}

func (c *Collection[R]) index(id int64) int {
	return slices.IndexFunc(c.records, func(r R) bool { return r.RecordID() == id })
}

func (c *Collection[R]) notify(obs Observer, op string) {
	if obs != nil {
		obs(c.name, op)
	}
}
