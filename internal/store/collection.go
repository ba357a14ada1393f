package store

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"
)

// Collection is a named map of records persisted as a single document.
// Load returns the current snapshot (empty if none exists yet); Save
// overwrites the whole document. A per-collection mutex serializes
// read-modify-write sequences within this process; there is no
// coordination across processes.
type Collection[T any] struct {
	backend Backend
	name    string
	mu      sync.Mutex
}

func NewCollection[T any](backend Backend, name string) *Collection[T] {
	return &Collection[T]{backend: backend, name: name}
}

func (c *Collection[T]) Name() string {
	return c.name
}

func (c *Collection[T]) Load() (map[string]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()
}

func (c *Collection[T]) Save(records map[string]T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.save(records)
}

// Update runs fn over the current snapshot and persists the result, all
// under the collection lock. fn returning an error abandons the write.
func (c *Collection[T]) Update(fn func(records map[string]T) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.load()
	if err != nil {
		return err
	}
	if err := fn(records); err != nil {
		return err
	}
	return c.save(records)
}

func (c *Collection[T]) load() (map[string]T, error) {
	data, err := c.backend.Read(c.name)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return make(map[string]T), nil
	}

	var records map[string]T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode collection %s: %w", c.name, err)
	}
	if records == nil {
		records = make(map[string]T)
	}
	return records, nil
}

func (c *Collection[T]) save(records map[string]T) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", c.name, err)
	}
	return c.backend.Write(c.name, data)
}

// SortedIDs returns the record IDs in ascending order. Every "first match"
// scan in the system iterates in this order, which equals insertion order
// for sequentially generated IDs.
func SortedIDs[T any](records map[string]T) []string {
	ids := make([]string, 0, len(records))
	for id := range records {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
