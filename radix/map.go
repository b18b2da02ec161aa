// file: radixmap/radix/map.go
package radix

import (
	"bytes"
	"time"
	"unsafe"
)

// Map is a fixed key set, O(depth) lookup associative container. The
// key set and the dispatch tree are built once by New and never change
// afterwards; Swap and Clear are the only operations that replace the
// whole container's contents at once. Values may still be mutated in
// place through AtMut.
type Map[K Keyer, V any] struct {
	entries       []Entry[K, V]
	buf           []uint32
	rootOffset    uint32
	assumeExists  bool
	buildDuration time.Duration
}

// Option configures a Map at construction time.
type Option func(*mapConfig)

type mapConfig struct {
	assumeExists bool
}

// WithAssumeExistingKeys enables the query_only_existing_keys fast
// path: Get and Contains skip the leaf's final byte-for-byte
// verification and the range check on every branch, trusting that the
// caller only ever queries keys known to be in the map. Misuse on an
// absent key returns an unspecified index or false rather than
// panicking under normal circumstances, but never reads or writes
// outside the map's own buffer.
func WithAssumeExistingKeys() Option {
	return func(c *mapConfig) { c.assumeExists = true }
}

// New builds a Map over entries. entries must have unique keys under
// representational equality (same length, identical bytes); New
// returns ErrInvalidInput if it detects a duplicate (or near-duplicate
// that the discriminator search cannot separate) and ErrOverflow if
// len(entries) exceeds the 31-bit leaf index space. entries is copied;
// the caller's slice is not retained.
func New[K Keyer, V any](entries []Entry[K, V], opts ...Option) (*Map[K, V], error) {
	if len(entries) > maxEntries {
		return nil, ErrOverflow
	}

	var cfg mapConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	start := time.Now()

	owned := make([]Entry[K, V], len(entries))
	copy(owned, entries)

	root, err := buildTree(owned)
	if err != nil {
		return nil, err
	}
	buf, rootOffset := flattenTree(root)

	return &Map[K, V]{
		entries:       owned,
		buf:           buf,
		rootOffset:    rootOffset,
		assumeExists:  cfg.assumeExists,
		buildDuration: time.Since(start),
	}, nil
}

// verify reports whether entries[idx]'s key equals key byte-for-byte.
func (m *Map[K, V]) verify(idx int32, key []byte) bool {
	return bytes.Equal(m.entries[idx].Key.KeyBytes(), key)
}

// find resolves key to an entry index, or -1 if absent (or, under
// WithAssumeExistingKeys, if the tree happens to route it to a slot
// that was never populated).
func (m *Map[K, V]) find(key []byte) int32 {
	if len(m.entries) == 0 {
		return -1
	}
	if m.assumeExists {
		return lookupUnchecked(m.buf, m.rootOffset, key)
	}
	idx, ok := lookupChecked(m.buf, m.rootOffset, key, func(idx int32) bool {
		return m.verify(idx, key)
	})
	if !ok {
		return -1
	}
	return idx
}

// Get returns the value stored for key and whether key was present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	idx := m.find(key.KeyBytes())
	if idx < 0 {
		var zero V
		return zero, false
	}
	return m.entries[idx].Value, true
}

// At returns a pointer to the stored value for key, or ErrAbsentKey if
// key is not present.
func (m *Map[K, V]) At(key K) (*V, error) {
	idx := m.find(key.KeyBytes())
	if idx < 0 {
		return nil, ErrAbsentKey
	}
	return &m.entries[idx].Value, nil
}

// AtMut is an alias of At kept for callers that want to make the
// mutating intent explicit at the call site; both return the same
// addressable pointer into the backing entry slice.
func (m *Map[K, V]) AtMut(key K) (*V, error) {
	return m.At(key)
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	return m.find(key.KeyBytes()) >= 0
}

// Count returns 1 if key is present and 0 otherwise — a set-like
// analogue kept for parity with the map APIs this container imitates.
func (m *Map[K, V]) Count(key K) int {
	if m.Contains(key) {
		return 1
	}
	return 0
}

// Find returns the index of key within the entry sequence fixed at
// construction, or -1 if absent. The index is stable for the Map's
// lifetime and can be passed to EntryAt for positional access.
func (m *Map[K, V]) Find(key K) int {
	return int(m.find(key.KeyBytes()))
}

// EqualRange returns the half-open index range of entries matching
// key: (idx, idx+1) if present, (0, 0) if not — parity with
// multimap-shaped APIs even though this container never stores
// duplicate keys.
func (m *Map[K, V]) EqualRange(key K) (lo, hi int) {
	idx := m.find(key.KeyBytes())
	if idx < 0 {
		return 0, 0
	}
	return int(idx), int(idx) + 1
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return len(m.entries) }

// IsEmpty reports whether the map holds no entries.
func (m *Map[K, V]) IsEmpty() bool { return len(m.entries) == 0 }

// MaxLen returns the largest entry count New can accept.
func (m *Map[K, V]) MaxLen() int { return maxEntries }

// EntryAt returns the entry at index i in construction order, for
// callers that already resolved an index via Find and want to skip a
// second lookup.
func (m *Map[K, V]) EntryAt(i int) Entry[K, V] { return m.entries[i] }

// Iter ranges over entries in construction order.
func (m *Map[K, V]) Iter() func(func(int, Entry[K, V]) bool) {
	return func(yield func(int, Entry[K, V]) bool) {
		for i := range m.entries {
			if !yield(i, m.entries[i]) {
				return
			}
		}
	}
}

// IterReversed ranges over entries in reverse construction order.
func (m *Map[K, V]) IterReversed() func(func(int, Entry[K, V]) bool) {
	return func(yield func(int, Entry[K, V]) bool) {
		for i := len(m.entries) - 1; i >= 0; i-- {
			if !yield(i, m.entries[i]) {
				return
			}
		}
	}
}

// Swap exchanges the full contents of m and other in constant time.
// Never fails.
func (m *Map[K, V]) Swap(other *Map[K, V]) {
	m.entries, other.entries = other.entries, m.entries
	m.buf, other.buf = other.buf, m.buf
	m.rootOffset, other.rootOffset = other.rootOffset, m.rootOffset
	m.assumeExists, other.assumeExists = other.assumeExists, m.assumeExists
	m.buildDuration, other.buildDuration = other.buildDuration, m.buildDuration
}

// Clear empties the map in place. The map remains usable afterwards
// (Len becomes 0); it does not need to be rebuilt with New.
func (m *Map[K, V]) Clear() {
	m.entries = nil
	m.buf = nil
	m.rootOffset = 0
	m.buildDuration = 0
}

// Clone returns an independent copy of m: mutating one's values
// through AtMut never affects the other.
func (m *Map[K, V]) Clone() *Map[K, V] {
	out := &Map[K, V]{
		entries:       make([]Entry[K, V], len(m.entries)),
		buf:           make([]uint32, len(m.buf)),
		rootOffset:    m.rootOffset,
		assumeExists:  m.assumeExists,
		buildDuration: m.buildDuration,
	}
	copy(out.entries, m.entries)
	copy(out.buf, m.buf)
	return out
}

// Equal reports whether m and other hold the same entries in the same
// construction order, comparing values with eq.
func (m *Map[K, V]) Equal(other *Map[K, V], eq func(a, b V) bool) bool {
	if len(m.entries) != len(other.entries) {
		return false
	}
	for i := range m.entries {
		a, b := m.entries[i], other.entries[i]
		if !bytes.Equal(a.Key.KeyBytes(), b.Key.KeyBytes()) {
			return false
		}
		if !eq(a.Value, b.Value) {
			return false
		}
	}
	return true
}

// MemoryUsed estimates the heap bytes retained by m: the entry slice's
// capacity plus the dispatch buffer's capacity, each at element size,
// plus the fixed struct overhead. It is an estimate, not an exact
// accounting of Go runtime allocator bucketing.
func (m *Map[K, V]) MemoryUsed() uintptr {
	var e Entry[K, V]
	entrySize := unsafe.Sizeof(e)
	const wordSize = 4
	const structOverhead = 64

	return uintptr(cap(m.entries))*entrySize + uintptr(cap(m.buf))*wordSize + structOverhead
}
