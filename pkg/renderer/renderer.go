// Package renderer defines the external collaborator contract between the
// mesh/scheduling core and whatever draws or visualizes it. The client
// never imports a graphics library itself; it only emits events that a
// Renderer implementation consumes.
package renderer

import (
	"github.com/sirupsen/logrus"

	"github.com/ry-diffusion/gyra-go/pkg/chunk"
	"github.com/ry-diffusion/gyra-go/pkg/mesh"
)

// SpawnMesh is emitted once per mesh Bundle a FrameScheduler decides to
// hand off, typically when a chunk column enters the rendered set or one
// of its sections is remeshed.
type SpawnMesh struct {
	ParentChunk chunk.Vec2
	Bundle      mesh.Bundle
}

// DespawnChunk is emitted when a chunk column leaves the rendered set;
// the Renderer is expected to discard every mesh previously spawned for
// ParentChunk.
type DespawnChunk struct {
	ParentChunk chunk.Vec2
}

// Renderer is implemented by whatever actually draws meshes: a real
// graphics backend, a headless recorder for tests, or pkg/debugbridge.
type Renderer interface {
	SpawnMesh(SpawnMesh)
	DespawnChunk(DespawnChunk)
}

// FrameScheduler drains the effects of a rendered-set update and a mesh
// construction pass into a sequence of Renderer calls for one frame. Mesh
// construction itself runs on a background compute pool (see pool.go);
// ApplyRenderedSetEvents only ever submits cloned column snapshots to it,
// and DrainMeshResults is what actually calls back into target.
type FrameScheduler struct {
	target Renderer
	pool   *meshPool
}

// NewFrameScheduler builds a scheduler backed by a meshing pool of
// defaultMeshWorkers goroutines. log may be nil in tests.
func NewFrameScheduler(target Renderer, log *logrus.Entry) *FrameScheduler {
	return &FrameScheduler{target: target, pool: newMeshPool(log, defaultMeshWorkers)}
}

// SpawnColumn meshes col against neighbors synchronously and forwards
// every resulting bundle to the renderer as a SpawnMesh event. Used
// directly only where the caller already owns col exclusively (tests,
// one-off tooling) — the tick loop goes through ApplyRenderedSetEvents
// instead so meshing never blocks it.
func (s *FrameScheduler) SpawnColumn(pos chunk.Vec2, col *chunk.Column, neighbors map[mesh.NeighborOffset]*chunk.Column) {
	for _, bundle := range mesh.Construct(col, neighbors) {
		s.target.SpawnMesh(SpawnMesh{ParentChunk: pos, Bundle: bundle})
	}
}

// DespawnColumn forwards a single DespawnChunk event for pos.
func (s *FrameScheduler) DespawnColumn(pos chunk.Vec2) {
	s.target.DespawnChunk(DespawnChunk{ParentChunk: pos})
}

// ApplyRenderedSetEvents drives Render/Unrender transitions produced by a
// world.RenderedSetScheduler update. Each newly rendered column is cloned
// — along with whatever neighbors are already present in store — and
// handed to the mesh pool; nothing here ever hands a worker a pointer the
// store can still mutate. Results surface later through DrainMeshResults.
func (s *FrameScheduler) ApplyRenderedSetEvents(store ColumnSource, render []chunk.Vec2, unrender []chunk.Vec2) {
	for _, pos := range render {
		col := store.Get(pos)
		if col == nil {
			continue
		}
		neighbors := map[mesh.NeighborOffset]*chunk.Column{
			mesh.NeighborNorth: store.Get(chunk.Vec2{X: pos.X, Z: pos.Z - 1}),
			mesh.NeighborSouth: store.Get(chunk.Vec2{X: pos.X, Z: pos.Z + 1}),
			mesh.NeighborWest:  store.Get(chunk.Vec2{X: pos.X - 1, Z: pos.Z}),
			mesh.NeighborEast:  store.Get(chunk.Vec2{X: pos.X + 1, Z: pos.Z}),
		}
		s.pool.submit(meshJob{pos: pos, col: col.Clone(), neighbors: cloneNeighbors(neighbors)})
	}
	for _, pos := range unrender {
		s.DespawnColumn(pos)
	}
}

// DrainMeshResults forwards every mesh job the pool has finished since
// the last call as SpawnMesh events. It never blocks: a frame with no
// completed jobs yet just emits nothing, and the results surface on a
// later call once the pool catches up.
func (s *FrameScheduler) DrainMeshResults() {
	for {
		select {
		case res := <-s.pool.results:
			for _, bundle := range res.bundles {
				s.target.SpawnMesh(SpawnMesh{ParentChunk: res.pos, Bundle: bundle})
			}
		default:
			return
		}
	}
}

// WaitIdle blocks until every mesh job submitted so far has produced a
// result. Only meant for callers (tests, graceful shutdown) that need a
// deterministic point to call DrainMeshResults from; the tick loop never
// calls it.
func (s *FrameScheduler) WaitIdle() { s.pool.wait() }

func cloneNeighbors(neighbors map[mesh.NeighborOffset]*chunk.Column) map[mesh.NeighborOffset]*chunk.Column {
	cloned := make(map[mesh.NeighborOffset]*chunk.Column, len(neighbors))
	for off, col := range neighbors {
		if col == nil {
			continue
		}
		cloned[off] = col.Clone()
	}
	return cloned
}

// ColumnSource is the subset of world.Store the scheduler needs; defined
// here to avoid an import cycle between pkg/renderer and pkg/world.
type ColumnSource interface {
	Get(pos chunk.Vec2) *chunk.Column
}
