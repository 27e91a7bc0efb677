package inmemory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/wichananm65/social-backend/internal/domain/repository"
)

// Collection is an in-memory implementation of repository.Collection. Reads
// share the lock; create, change and delete hold it exclusively. Records are
// copied on the way in and out so callers never alias stored state.
type Collection[T repository.Record[T]] struct {
	name string

	mu    sync.RWMutex
	order []string
	store map[string]T
}

func NewCollection[T repository.Record[T]](name string) *Collection[T] {
	return &Collection[T]{
		name:  name,
		store: make(map[string]T),
	}
}

func (c *Collection[T]) Name() string { return c.name }

func (c *Collection[T]) Create(ctx context.Context, candidate T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := candidate.EntityID()
	if id == "" {
		id = uuid.NewString()
	} else if _, ok := c.store[id]; ok {
		var zero T
		return zero, &repository.ConflictError{Entity: c.name, ID: id}
	}

	record := candidate.WithID(id).Clone().Normalize()
	c.store[id] = record
	c.order = append(c.order, id)
	return record.Clone(), nil
}

func (c *Collection[T]) Get(ctx context.Context, id string) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	record, ok := c.store[id]
	if !ok {
		var zero T
		return zero, &repository.NotFoundError{Entity: c.name, ID: id}
	}
	return record.Clone(), nil
}

func (c *Collection[T]) FindOne(ctx context.Context, p repository.Predicate) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, id := range c.order {
		record := c.store[id]
		if p.Match(record.Field) {
			return record.Clone(), true
		}
	}
	var zero T
	return zero, false
}

func (c *Collection[T]) FindMany(ctx context.Context, p repository.Predicate) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]T, 0)
	for _, id := range c.order {
		record := c.store[id]
		if p.Match(record.Field) {
			result = append(result, record.Clone())
		}
	}
	return result
}

// Change applies patch to the record with id while holding the write lock, so
// read-modify-write patches are atomic with respect to other callers.
func (c *Collection[T]) Change(ctx context.Context, id string, patch repository.Patch[T]) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	current, ok := c.store[id]
	if !ok {
		var zero T
		return zero, &repository.NotFoundError{Entity: c.name, ID: id}
	}

	updated := patch.Apply(current.Clone()).WithID(id).Normalize()
	c.store[id] = updated.Clone()
	return updated, nil
}

func (c *Collection[T]) Delete(ctx context.Context, id string) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	record, ok := c.store[id]
	if !ok {
		var zero T
		return zero, &repository.NotFoundError{Entity: c.name, ID: id}
	}
	delete(c.store, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return record, nil
}

// Len reports how many records the collection holds.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}
