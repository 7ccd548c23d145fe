package storage

// Storage is an interface that defines the storage operations
type Storage interface {
	// Set sets a key-value pair in the storage
	Set(key, value string)
	// Get gets a value from the storage
	Get(key string) (string, bool)
	// Remove removes a key from the storage
	Remove(key string)
	// Keys returns a snapshot of all keys
	Keys() []string
	// Values returns a snapshot of all values
	Values() []string
	// Iterate returns a snapshot of all key-value pairs
	Iterate() []Entry
	// Len returns the number of stored keys
	Len() int
	// IsEmpty reports whether the storage holds no keys
	IsEmpty() bool
	// Clear removes all keys from the storage
	Clear()
}

// Entry is a single key-value pair
type Entry struct {
	Key   string
	Value string
}
