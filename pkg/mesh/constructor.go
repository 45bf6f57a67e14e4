package mesh

import "github.com/ry-diffusion/gyra-go/pkg/chunk"

// NeighborOffset identifies one of the four cardinal neighbor columns by
// chunk-unit delta.
type NeighborOffset struct{ DX, DZ int32 }

var (
	NeighborNorth = NeighborOffset{DX: 0, DZ: -1}
	NeighborSouth = NeighborOffset{DX: 0, DZ: 1}
	NeighborWest  = NeighborOffset{DX: -1, DZ: 0}
	NeighborEast  = NeighborOffset{DX: 1, DZ: 0}
)

// Construct builds the mesh bundles for a column given its four cardinal
// neighbors. Neighbors absent from the map are treated as not-yet-loaded:
// faces facing them are conservatively emitted as exposed.
func Construct(col *chunk.Column, neighbors map[NeighborOffset]*chunk.Column) []Bundle {
	var bundles []Bundle

	for sy, sec := range col.Sections {
		if sec == nil {
			continue
		}
		originY := sy * 16

		// One 16x16 bitboard per face per slab position (the block
		// coordinate along that face's own axis): 16 possible top/bottom
		// layers (by local y), 16 north/south layers (by local z), 16
		// west/east layers (by local x).
		var boards [6][16]bitboard

		for by := 0; by < 16; by++ {
			for bz := 0; bz < 16; bz++ {
				for bx := 0; bx < 16; bx++ {
					worldY := originY + by
					block := sec.BlockAt(bx, by, bz)
					if block.IsAir() {
						continue
					}
					if !isRenderEdge(col, neighbors, bx, worldY, bz) {
						continue
					}
					for _, face := range allFaces {
						dx, dy, dz := face.delta()
						neighborBlock, known := lookupBlock(col, neighbors, bx+dx, worldY+dy, bz+dz)
						if !known || neighborBlock.IsAir() {
							slab := faceSlabLocal(face, bx, by, bz)
							setFaceBit(&boards[face][slab], face, bx, by, bz)
						}
					}
				}
			}
		}

		for _, face := range allFaces {
			for slab := 0; slab < 16; slab++ {
				bundles = append(bundles, meshFace(face, boards[face][slab], slab, originY)...)
			}
		}
	}

	return bundles
}

// isRenderEdge reports whether the block at (x,y,z) has at least one
// visible (solid) neighbor and at least one non-visible (or
// out-of-column, neighbor-resolved) neighbor.
func isRenderEdge(col *chunk.Column, neighbors map[NeighborOffset]*chunk.Column, x, y, z int) bool {
	var sawVisible, sawNonVisible bool
	for _, face := range allFaces {
		dx, dy, dz := face.delta()
		block, known := lookupBlock(col, neighbors, x+dx, y+dy, z+dz)
		if known && !block.IsAir() {
			sawVisible = true
		} else {
			sawNonVisible = true
		}
		if sawVisible && sawNonVisible {
			return true
		}
	}
	return sawVisible && sawNonVisible
}

// lookupBlock resolves a block at column-local coordinates that may cross
// into a neighbor column along X or Z. known is false only when the
// lookup crosses into a neighbor column that is not present in the map.
func lookupBlock(col *chunk.Column, neighbors map[NeighborOffset]*chunk.Column, x, y, z int) (chunk.NetworkBlock, bool) {
	if y < 0 || y > 255 {
		return chunk.Air, true
	}

	offset := NeighborOffset{}
	lx, lz := x, z
	switch {
	case x < 0:
		offset.DX = -1
		lx = x + 16
	case x > 15:
		offset.DX = 1
		lx = x - 16
	}
	switch {
	case z < 0:
		offset.DZ = -1
		lz = z + 16
	case z > 15:
		offset.DZ = 1
		lz = z - 16
	}

	if offset == (NeighborOffset{}) {
		return col.BlockAt(x, y, z), true
	}

	neighbor, ok := neighbors[offset]
	if !ok {
		return chunk.Air, false
	}
	return neighbor.BlockAt(lx, y, lz), true
}

// faceSlabLocal returns the section-local coordinate along a face's own
// axis: the value that is constant across one 16x16 slab for that face.
func faceSlabLocal(face Face, x, y, z int) int {
	switch face {
	case FaceTop, FaceBottom:
		return y
	case FaceNorth, FaceSouth:
		return z
	default: // FaceWest, FaceEast
		return x
	}
}

// setFaceBit marks one cell exposed in a face's 16x16 slab grid. The two
// in-plane axes for each face are the block's two coordinates orthogonal
// to the face's own axis.
func setFaceBit(board *bitboard, face Face, x, y, z int) {
	switch face {
	case FaceTop, FaceBottom:
		board.set(x, z)
	case FaceNorth, FaceSouth:
		board.set(x, y)
	case FaceWest, FaceEast:
		board.set(z, y)
	}
}

// meshFace greedy-merges one face's exposed-cell bitboard for a single
// slab position into quads and wraps each in a Bundle.
func meshFace(face Face, board bitboard, slab, originY int) []Bundle {
	quads := greedyMerge(board)
	if len(quads) == 0 {
		return nil
	}

	globalSlab := slab
	if face == FaceTop || face == FaceBottom {
		globalSlab = slab // Y handled relative to section origin in appendQuad
	}

	bundles := make([]Bundle, 0, len(quads))
	for _, q := range quads {
		var r Recipe
		appendQuad(&r, face, globalSlab, q, originY)
		bundles = append(bundles, Bundle{Recipe: r, SectionY: originY / 16, Face: face})
	}
	return bundles
}
