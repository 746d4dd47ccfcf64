// Package cache provides the in-process memoization store: one named Bucket
// per cached operation, collected in a Registry owned by the service process.
package cache

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type entry struct {
	value     any
	expiresAt time.Time
}

// Bucket is an isolated, independently expiring cache region for one
// operation. Entries expire ttl after insertion and are checked lazily on
// read; when the bucket is full, the oldest-inserted entry is evicted first,
// regardless of how recently it was read.
type Bucket struct {
	name     string
	capacity int
	ttl      time.Duration

	mu      sync.Mutex
	entries map[string]entry
	order   []string

	sf  singleflight.Group
	now func() time.Time
}

func newBucket(name string, capacity int, ttl time.Duration) *Bucket {
	return &Bucket{
		name:     name,
		capacity: capacity,
		ttl:      ttl,
		entries:  make(map[string]entry),
		now:      time.Now,
	}
}

// Name returns the bucket's registry name.
func (b *Bucket) Name() string {
	return b.name
}

// GetOrCompute returns the cached value for key if it is still fresh,
// otherwise runs compute and caches its result. A failed compute caches
// nothing and its error propagates to the caller. Concurrent misses on the
// same key share one compute call; other keys and cache hits are unaffected.
func (b *Bucket) GetOrCompute(key string, compute func() (any, error)) (any, error) {
	if v, ok := b.lookup(key); ok {
		return v, nil
	}

	v, err, _ := b.sf.Do(key, func() (any, error) {
		// A concurrent caller may have stored the value while we waited.
		if v, ok := b.lookup(key); ok {
			return v, nil
		}
		v, err := compute()
		if err != nil {
			return nil, err
		}
		b.put(key, v)
		return v, nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// GetOrCompute is the typed wrapper callers use; the stored value is asserted
// back to T on a hit.
func GetOrCompute[T any](b *Bucket, key string, compute func() (T, error)) (T, error) {
	v, err := b.GetOrCompute(key, func() (any, error) {
		return compute()
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

// lookup returns the value for key if present and unexpired. Expired entries
// are removed on the way out.
func (b *Bucket) lookup(key string) (any, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ent, ok := b.entries[key]
	if !ok {
		return nil, false
	}
	if !b.now().Before(ent.expiresAt) {
		b.removeLocked(key)
		return nil, false
	}
	return ent.value, true
}

func (b *Bucket) put(key string, value any) {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Re-inserting an existing key counts as a fresh insertion for the
	// eviction order.
	if _, ok := b.entries[key]; ok {
		b.removeLocked(key)
	}

	if b.capacity > 0 && len(b.entries) >= b.capacity {
		b.removeLocked(b.order[0])
	}

	b.entries[key] = entry{value: value, expiresAt: b.now().Add(b.ttl)}
	b.order = append(b.order, key)
}

func (b *Bucket) removeLocked(key string) {
	delete(b.entries, key)
	for i, k := range b.order {
		if k == key {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

// Clear drops every entry in the bucket.
func (b *Bucket) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries = make(map[string]entry)
	b.order = nil
}

// Len reports the number of resident entries, expired or not.
func (b *Bucket) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

// Registry is the process-wide collection of named buckets. It is constructed
// once at startup and handed to the components that cache through it; there
// is no cross-bucket locking, so a miss on one bucket never blocks another.
type Registry struct {
	mu      sync.Mutex
	buckets map[string]*Bucket
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{buckets: make(map[string]*Bucket)}
}

// Bucket returns the named bucket, creating it with the given capacity and
// ttl on first use. Later calls with the same name return the existing bucket
// unchanged.
func (r *Registry) Bucket(name string, capacity int, ttl time.Duration) *Bucket {
	r.mu.Lock()
	defer r.mu.Unlock()

	if b, ok := r.buckets[name]; ok {
		return b
	}
	b := newBucket(name, capacity, ttl)
	r.buckets[name] = b
	return b
}

// Clear empties the named bucket. Unknown names are a no-op.
func (r *Registry) Clear(name string) {
	r.mu.Lock()
	b := r.buckets[name]
	r.mu.Unlock()

	if b != nil {
		b.Clear()
	}
}

// ClearAll empties every bucket.
func (r *Registry) ClearAll() {
	r.mu.Lock()
	buckets := make([]*Bucket, 0, len(r.buckets))
	for _, b := range r.buckets {
		buckets = append(buckets, b)
	}
	r.mu.Unlock()

	for _, b := range buckets {
		b.Clear()
	}
}
