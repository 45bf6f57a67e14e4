package debugbridge

import "github.com/ry-diffusion/gyra-go/pkg/renderer"

// RendererAdapter implements renderer.Renderer by broadcasting every
// event over the bridge's websocket, letting a debug viewer watch the
// mesh scheduler's output live. It never blocks the caller: Broadcast
// drops the message for any client whose send buffer is full rather
// than waiting on it.
type RendererAdapter struct {
	bridge *Bridge
}

func NewRendererAdapter(bridge *Bridge) *RendererAdapter {
	return &RendererAdapter{bridge: bridge}
}

func (a *RendererAdapter) SpawnMesh(m renderer.SpawnMesh) {
	a.bridge.Broadcast(SpawnMeshMessage{
		Type:        "spawn_mesh",
		ParentChunk: [2]int32{m.ParentChunk.X, m.ParentChunk.Z},
		Vertices:    m.Bundle.Recipe.Vertices,
		Normals:     m.Bundle.Recipe.Normals,
		UVs:         m.Bundle.Recipe.UVs,
		Indices:     m.Bundle.Recipe.Indices,
		MaterialID:  m.Bundle.Recipe.MaterialID,
		Transform: [3]float64{
			m.Bundle.Recipe.Transform.X,
			m.Bundle.Recipe.Transform.Y,
			m.Bundle.Recipe.Transform.Z,
		},
	})
}

func (a *RendererAdapter) DespawnChunk(d renderer.DespawnChunk) {
	a.bridge.Broadcast(DespawnChunkMessage{
		Type:        "despawn_chunk",
		ParentChunk: [2]int32{d.ParentChunk.X, d.ParentChunk.Z},
	})
}
