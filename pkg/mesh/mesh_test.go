package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ry-diffusion/gyra-go/pkg/chunk"
)

func solidSection() *chunk.Section {
	blocks := make([]chunk.NetworkBlock, chunk.SectionBlockCount)
	for i := range blocks {
		blocks[i] = chunk.NewNetworkBlock(1, 0)
	}
	return &chunk.Section{Blocks: blocks, NonAirCount: chunk.SectionBlockCount}
}

func TestConstructSolidSectionNoNeighborsSixQuads(t *testing.T) {
	col := &chunk.Column{Pos: chunk.Vec2{X: 0, Z: 0}}
	col.Sections[0] = solidSection()

	bundles := Construct(col, nil)
	require.Len(t, bundles, 6)

	seen := make(map[Face]bool)
	totalIndices := 0
	for _, b := range bundles {
		seen[b.Face] = true
		assert.Len(t, b.Recipe.Vertices, 12) // one quad: 4 verts * 3 floats
		assert.Len(t, b.Recipe.Indices, 6)
		totalIndices += len(b.Recipe.Indices)
	}
	assert.Equal(t, 36, totalIndices)
	for _, f := range allFaces {
		assert.True(t, seen[f], "missing face %s", f)
	}
}

func TestConstructEmptySectionProducesNoBundles(t *testing.T) {
	col := &chunk.Column{Pos: chunk.Vec2{X: 0, Z: 0}}
	bundles := Construct(col, nil)
	assert.Empty(t, bundles)
}

func TestGreedyMergeSingleRow(t *testing.T) {
	var board bitboard
	for x := 0; x < 5; x++ {
		board.set(x, 0)
	}
	quads := greedyMerge(board)
	require.Len(t, quads, 1)
	assert.Equal(t, Quad{X: 0, Y: 0, Width: 5, Height: 1}, quads[0])
}

func TestGreedyMergeFullBoard(t *testing.T) {
	var board bitboard
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			board.set(x, y)
		}
	}
	quads := greedyMerge(board)
	require.Len(t, quads, 1)
	assert.Equal(t, Quad{X: 0, Y: 0, Width: 16, Height: 16}, quads[0])
}

func TestCrossChunkFaceCulledWhenNeighborSolid(t *testing.T) {
	col := &chunk.Column{Pos: chunk.Vec2{X: 0, Z: 0}}
	col.Sections[0] = solidSection()

	neighborEast := &chunk.Column{Pos: chunk.Vec2{X: 1, Z: 0}}
	neighborEast.Sections[0] = solidSection()

	bundles := Construct(col, map[NeighborOffset]*chunk.Column{NeighborEast: neighborEast})
	require.Len(t, bundles, 5) // east face culled by solid neighbor

	for _, b := range bundles {
		assert.NotEqual(t, FaceEast, b.Face)
	}
}
