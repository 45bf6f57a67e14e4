// Package world holds the live chunk store and the schedulers that derive
// which columns are active (within view distance) and which are currently
// rendered (within the camera frustum approximation).
package world

import (
	"sync"

	"github.com/ry-diffusion/gyra-go/pkg/chunk"
)

func chunkKey(pos chunk.Vec2) int64 {
	return int64(pos.X)<<32 | int64(uint32(pos.Z))
}

// Store maps chunk.Vec2 to the latest decoded Column received for it.
// Insertion is idempotent: a later Put for the same key replaces the prior
// column outright.
type Store struct {
	mu     sync.RWMutex
	chunks map[int64]*chunk.Column
}

func NewStore() *Store {
	return &Store{chunks: make(map[int64]*chunk.Column)}
}

// Put inserts or replaces the column at its own position.
func (s *Store) Put(col *chunk.Column) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chunks[chunkKey(col.Pos)] = col
}

// Get returns the column at pos, or nil if absent.
func (s *Store) Get(pos chunk.Vec2) *chunk.Column {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.chunks[chunkKey(pos)]
}

// Delete removes the column at pos, if any.
func (s *Store) Delete(pos chunk.Vec2) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.chunks, chunkKey(pos))
}

// Len returns the number of columns currently stored.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.chunks)
}

// Snapshot returns a shallow copy of every stored position. The returned
// columns themselves are not copied; callers must not mutate them.
func (s *Store) Snapshot() map[chunk.Vec2]*chunk.Column {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[chunk.Vec2]*chunk.Column, len(s.chunks))
	for _, col := range s.chunks {
		out[col.Pos] = col
	}
	return out
}
