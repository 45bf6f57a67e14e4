package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ry-diffusion/gyra-go/pkg/chunk"
)

type recorder struct {
	spawned   []SpawnMesh
	despawned []DespawnChunk
}

func (r *recorder) SpawnMesh(m SpawnMesh)       { r.spawned = append(r.spawned, m) }
func (r *recorder) DespawnChunk(d DespawnChunk) { r.despawned = append(r.despawned, d) }

type fakeStore struct {
	cols map[chunk.Vec2]*chunk.Column
}

func (s *fakeStore) Get(pos chunk.Vec2) *chunk.Column {
	return s.cols[pos]
}

func solidColumn() *chunk.Column {
	col := &chunk.Column{}
	sec := &chunk.Section{Blocks: make([]chunk.NetworkBlock, chunk.SectionBlockCount)}
	for i := range sec.Blocks {
		sec.Blocks[i] = chunk.NetworkBlock(1 << 4)
	}
	col.Sections[0] = sec
	return col
}

func TestApplyRenderedSetEventsSpawnsAndDespawns(t *testing.T) {
	pos := chunk.Vec2{X: 0, Z: 0}
	store := &fakeStore{cols: map[chunk.Vec2]*chunk.Column{pos: solidColumn()}}

	rec := &recorder{}
	s := NewFrameScheduler(rec, nil)

	s.ApplyRenderedSetEvents(store, []chunk.Vec2{pos}, nil)
	s.WaitIdle()
	s.DrainMeshResults()
	require.NotEmpty(t, rec.spawned)
	for _, m := range rec.spawned {
		assert.Equal(t, pos, m.ParentChunk)
	}

	s.ApplyRenderedSetEvents(store, nil, []chunk.Vec2{pos})
	require.Len(t, rec.despawned, 1)
	assert.Equal(t, pos, rec.despawned[0].ParentChunk)
}

func TestApplyRenderedSetEventsSkipsMissingColumn(t *testing.T) {
	store := &fakeStore{cols: map[chunk.Vec2]*chunk.Column{}}
	rec := &recorder{}
	s := NewFrameScheduler(rec, nil)

	s.ApplyRenderedSetEvents(store, []chunk.Vec2{{X: 5, Z: 5}}, nil)
	s.WaitIdle()
	s.DrainMeshResults()
	assert.Empty(t, rec.spawned)
}

func TestMeshPoolClonesInsteadOfSharingStorePointers(t *testing.T) {
	pos := chunk.Vec2{X: 0, Z: 0}
	col := solidColumn()
	store := &fakeStore{cols: map[chunk.Vec2]*chunk.Column{pos: col}}

	rec := &recorder{}
	s := NewFrameScheduler(rec, nil)
	s.ApplyRenderedSetEvents(store, []chunk.Vec2{pos}, nil)

	// Mutating the store's column immediately after submitting must not
	// race with (or change the outcome of) the in-flight mesh job, since
	// the job only ever holds a clone.
	store.cols[pos] = solidColumn()

	s.WaitIdle()
	s.DrainMeshResults()
	require.NotEmpty(t, rec.spawned)
}
