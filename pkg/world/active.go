package world

import "github.com/ry-diffusion/gyra-go/pkg/chunk"

// DefaultViewDistance is intentionally small: the store is memory-bounded,
// not rendered-distance-bounded.
const DefaultViewDistance = 2

// ActiveSetScheduler recomputes which stored columns fall within view
// distance of the player's current chunk. It only recomputes when the
// player's chunk position changes or the caller explicitly asks it to
// (e.g. after a store mutation), since both are the only events that can
// change the answer.
type ActiveSetScheduler struct {
	ViewDistance int32

	store        *Store
	playerChunk  chunk.Vec2
	hasPlayer    bool
	active       map[chunk.Vec2]struct{}
}

func NewActiveSetScheduler(store *Store) *ActiveSetScheduler {
	return &ActiveSetScheduler{
		ViewDistance: DefaultViewDistance,
		store:        store,
		active:       make(map[chunk.Vec2]struct{}),
	}
}

// SetPlayerPosition updates the tracked player chunk. It returns true if
// the chunk changed (and thus the active set needs recomputation).
func (s *ActiveSetScheduler) SetPlayerPosition(worldX, worldZ int32) bool {
	pos := chunk.Local(worldX, worldZ)
	if s.hasPlayer && pos == s.playerChunk {
		return false
	}
	s.playerChunk = pos
	s.hasPlayer = true
	return true
}

// Recompute rebuilds the active set from the current store contents and
// tracked player chunk, returning it. Call after SetPlayerPosition reports
// a change, or after any Store mutation.
func (s *ActiveSetScheduler) Recompute() map[chunk.Vec2]struct{} {
	active := make(map[chunk.Vec2]struct{})
	if !s.hasPlayer {
		s.active = active
		return active
	}

	for pos := range s.store.Snapshot() {
		dx := pos.X - s.playerChunk.X
		dz := pos.Z - s.playerChunk.Z
		if abs32(dx) <= s.ViewDistance && abs32(dz) <= s.ViewDistance {
			active[pos] = struct{}{}
		}
	}
	s.active = active
	return active
}

// Active returns the most recently computed active set.
func (s *ActiveSetScheduler) Active() map[chunk.Vec2]struct{} {
	return s.active
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
