package mesh

// Transform is a world-space placement: translation only, since chunk
// meshes never rotate or scale.
type Transform struct {
	X, Y, Z float64
}

// Recipe is the renderer-facing payload for one quad batch: flat vertex,
// normal, and UV buffers plus triangle indices, ready to upload as-is.
type Recipe struct {
	Vertices   []float32
	Normals    []float32
	UVs        []float32
	Indices    []uint32
	Transform  Transform
	MaterialID uint16
}

// Bundle pairs a Recipe with the section it came from, for callers that
// need to know which slab within a column a mesh belongs to.
type Bundle struct {
	Recipe      Recipe
	SectionY    int
	Face        Face
}

var quadUV = [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

// appendQuad emits one axis-aligned quad's four vertices, normals, UVs, and
// two triangle indices (0,1,2, 2,3,0) into the recipe's buffers.
// sectionOriginY is the section's block-space Y origin; slab is the fixed coordinate
// along the face's own axis.
func appendQuad(r *Recipe, face Face, slab int, q Quad, sectionOriginY int) {
	base := uint32(len(r.Vertices) / 3)
	normal := face.normal()

	corners := quadCorners(face, slab, q, sectionOriginY)
	for i, c := range corners {
		r.Vertices = append(r.Vertices, c[0], c[1], c[2])
		r.Normals = append(r.Normals, normal[0], normal[1], normal[2])
		uv := quadUV[i]
		r.UVs = append(r.UVs, uv[0]*float32(q.Width), uv[1]*float32(q.Height))
	}

	r.Indices = append(r.Indices,
		base+0, base+1, base+2,
		base+2, base+3, base+0,
	)
}

// quadCorners returns the four world-local corners of a quad in
// counter-clockwise order as seen from outside the block (outward-facing
// winding), for the given face and its 2D slab placement.
func quadCorners(face Face, slab int, q Quad, sectionOriginY int) [4][3]float32 {
	x0, x1 := float32(q.X), float32(q.X+q.Width)
	y0, y1 := float32(q.Y), float32(q.Y+q.Height)
	s := float32(slab)
	oy := float32(sectionOriginY)

	switch face {
	case FaceTop:
		return [4][3]float32{{x0, s + 1 + oy, y1}, {x1, s + 1 + oy, y1}, {x1, s + 1 + oy, y0}, {x0, s + 1 + oy, y0}}
	case FaceBottom:
		return [4][3]float32{{x0, s + oy, y0}, {x1, s + oy, y0}, {x1, s + oy, y1}, {x0, s + oy, y1}}
	case FaceNorth:
		return [4][3]float32{{x1, y0 + oy, s}, {x0, y0 + oy, s}, {x0, y1 + oy, s}, {x1, y1 + oy, s}}
	case FaceSouth:
		return [4][3]float32{{x0, y0 + oy, s + 1}, {x1, y0 + oy, s + 1}, {x1, y1 + oy, s + 1}, {x0, y1 + oy, s + 1}}
	case FaceWest:
		return [4][3]float32{{s, y0 + oy, x0}, {s, y0 + oy, x1}, {s, y1 + oy, x1}, {s, y1 + oy, x0}}
	case FaceEast:
		return [4][3]float32{{s + 1, y0 + oy, x1}, {s + 1, y0 + oy, x0}, {s + 1, y1 + oy, x0}, {s + 1, y1 + oy, x1}}
	default:
		return [4][3]float32{}
	}
}
