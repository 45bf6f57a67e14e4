package world

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ry-diffusion/gyra-go/pkg/chunk"
)

func putEmptyColumn(t *testing.T, s *Store, x, z int32) {
	t.Helper()
	s.Put(&chunk.Column{Pos: chunk.Vec2{X: x, Z: z}})
}

func TestStorePutReplacesIdempotently(t *testing.T) {
	s := NewStore()
	putEmptyColumn(t, s, 1, 1)
	require.Equal(t, 1, s.Len())

	col := &chunk.Column{Pos: chunk.Vec2{X: 1, Z: 1}, FullColumn: true}
	s.Put(col)
	require.Equal(t, 1, s.Len())
	assert.True(t, s.Get(chunk.Vec2{X: 1, Z: 1}).FullColumn)
}

func TestActiveSetBounded(t *testing.T) {
	s := NewStore()
	for x := int32(-5); x <= 5; x++ {
		for z := int32(-5); z <= 5; z++ {
			putEmptyColumn(t, s, x, z)
		}
	}

	sched := NewActiveSetScheduler(s)
	sched.ViewDistance = 2
	changed := sched.SetPlayerPosition(0, 0)
	require.True(t, changed)

	active := sched.Recompute()
	maxSize := (2*int(sched.ViewDistance) + 1) * (2*int(sched.ViewDistance) + 1)
	assert.LessOrEqual(t, len(active), maxSize)
	assert.Contains(t, active, chunk.Vec2{X: 0, Z: 0})
	assert.Contains(t, active, chunk.Vec2{X: 2, Z: 2})
	assert.NotContains(t, active, chunk.Vec2{X: 3, Z: 0})
}

func TestActiveSetRecomputeRequiresChunkChange(t *testing.T) {
	s := NewStore()
	sched := NewActiveSetScheduler(s)
	assert.True(t, sched.SetPlayerPosition(0, 0))
	assert.False(t, sched.SetPlayerPosition(5, 5)) // same chunk (0,0)
	assert.True(t, sched.SetPlayerPosition(16, 0)) // crosses into chunk (1,0)
}

func TestRenderedSetScheduler(t *testing.T) {
	s := NewStore()
	putEmptyColumn(t, s, 0, 1)  // straight ahead
	putEmptyColumn(t, s, 0, -1) // straight behind

	sched := NewRenderedSetScheduler(s)
	candidates := map[chunk.Vec2]struct{}{
		{X: 0, Z: 1}:  {},
		{X: 0, Z: -1}: {},
	}
	cam := Camera{
		Position:   Vec3{X: 8, Y: 64, Z: 8},
		Forward:    Vec3{X: 0, Y: 0, Z: 1},
		FovRadians: math.Pi / 2,
	}

	events := sched.Update(cam, candidates)
	assert.Contains(t, events.Render, chunk.Vec2{X: 0, Z: 1})
	assert.NotContains(t, events.Render, chunk.Vec2{X: 0, Z: -1})
	assert.True(t, sched.Rendered(chunk.Vec2{X: 0, Z: 1}))

	events2 := sched.Update(cam, map[chunk.Vec2]struct{}{})
	assert.Contains(t, events2.Unrender, chunk.Vec2{X: 0, Z: 1})
}
