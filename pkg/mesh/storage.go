package mesh

import "sort"

// storageKey constrains the key types a Storage can be indexed by. Keys must
// be comparable for map indexing and ordered so key listings are
// deterministic.
type storageKey[K any] interface {
	comparable
	Less(K) bool
}

// Storage is a keyed container for one kind of topological payload. Vertex
// and face storages mint fresh keys on insertion; arc and edge storages use
// keys derived from vertex pairs and only support keyed insertion.
//
// Storage never panics: lookups and removals of absent keys report ok=false.
type Storage[K storageKey[K], P any] struct {
	items map[K]*P
	next  uint64
	mint  func(uint64) K
}

// NewStorage creates a storage for derived-key payloads (arcs and edges).
func NewStorage[K storageKey[K], P any]() *Storage[K, P] {
	return &Storage[K, P]{items: make(map[K]*P)}
}

// NewMintingStorage creates a storage that mints fresh keys through the
// given function. The counter passed to mint is monotonic and starts at 1,
// so the zero key is never minted and keys are never reused.
func NewMintingStorage[K storageKey[K], P any](mint func(uint64) K) *Storage[K, P] {
	return &Storage[K, P]{items: make(map[K]*P), mint: mint}
}

// Insert stores the payload under a freshly minted key and returns the key.
// It reports ok=false if the storage does not mint keys.
func (s *Storage[K, P]) Insert(payload P) (K, bool) {
	var zero K
	if s.mint == nil {
		return zero, false
	}
	s.next++
	key := s.mint(s.next)
	s.items[key] = &payload
	return key, true
}

// InsertWithKey stores the payload under the given key. It reports ok=false
// if the key is already present, in which case the storage is unchanged.
func (s *Storage[K, P]) InsertWithKey(key K, payload P) bool {
	if _, exists := s.items[key]; exists {
		return false
	}
	s.items[key] = &payload
	return true
}

// Get returns a pointer to the payload stored under the key and true, or nil
// and false if the key is absent. The pointer refers to the stored payload,
// so mutations through it are visible to the storage.
func (s *Storage[K, P]) Get(key K) (*P, bool) {
	payload, ok := s.items[key]
	return payload, ok
}

// Contains reports whether the key is present.
func (s *Storage[K, P]) Contains(key K) bool {
	_, ok := s.items[key]
	return ok
}

// Remove deletes the payload stored under the key and returns it. It reports
// ok=false if the key is absent.
func (s *Storage[K, P]) Remove(key K) (P, bool) {
	payload, ok := s.items[key]
	if !ok {
		var zero P
		return zero, false
	}
	delete(s.items, key)
	return *payload, true
}

// Len returns the number of stored payloads.
func (s *Storage[K, P]) Len() int { return len(s.items) }

// Keys returns all keys in deterministic sorted order.
func (s *Storage[K, P]) Keys() []K {
	keys := make([]K, 0, len(s.items))
	for key := range s.items {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
	return keys
}
