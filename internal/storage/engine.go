package storage

import (
	"maps"
	"slices"
)

// Engine is an in-memory key-value store.
// It is owned by a single session and is not safe for concurrent use.
type Engine struct {
	data map[string]string
}

var _ Storage = (*Engine)(nil)

// NewEngine creates a new Engine
func NewEngine() *Engine {
	return &Engine{
		data: make(map[string]string),
	}
}

// Set sets a key-value pair in the engine
func (e *Engine) Set(key, value string) {
	e.data[key] = value
}

// Get gets a value from the engine
func (e *Engine) Get(key string) (string, bool) {
	value, exists := e.data[key]
	return value, exists
}

// Remove deletes a key from the engine. Missing keys are ignored.
func (e *Engine) Remove(key string) {
	delete(e.data, key)
}

// Keys returns all keys, sorted
func (e *Engine) Keys() []string {
	return slices.Sorted(maps.Keys(e.data))
}

// Values returns all values in the order of Keys
func (e *Engine) Values() []string {
	keys := e.Keys()
	values := make([]string, 0, len(keys))
	for _, k := range keys {
		values = append(values, e.data[k])
	}

	return values
}

// Iterate returns all pairs in the order of Keys
func (e *Engine) Iterate() []Entry {
	keys := e.Keys()
	entries := make([]Entry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, Entry{Key: k, Value: e.data[k]})
	}

	return entries
}

// Len returns the number of keys
func (e *Engine) Len() int {
	return len(e.data)
}

// IsEmpty reports whether the engine holds no keys
func (e *Engine) IsEmpty() bool {
	return e.Len() == 0
}

// Clear removes all keys from the engine
func (e *Engine) Clear() {
	clear(e.data)
}
