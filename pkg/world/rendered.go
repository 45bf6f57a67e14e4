package world

import (
	"math"

	"github.com/ry-diffusion/gyra-go/pkg/chunk"
)

// Vec3 is a plain 3D vector used for camera-space math.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

func (v Vec3) Normalize() Vec3 {
	l := math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
	if l == 0 {
		return v
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Camera is the minimal per-frame state the rendered-set scheduler needs:
// eye position, forward direction, and the field of view used to derive
// the frustum-approximation threshold.
type Camera struct {
	Position Vec3
	Forward  Vec3
	FovRadians float64
}

// cosThreshold returns cos(fov); a column is "in front" iff the dot product
// of camera-forward with the normalized camera-to-column vector exceeds it.
func (c Camera) cosThreshold() float64 { return math.Cos(c.FovRadians) }

// RenderedSetEvents is the delta between the currently rendered set and the
// newly computed in-front set for one frame.
type RenderedSetEvents struct {
	Render   []chunk.Vec2
	Unrender []chunk.Vec2
}

// RenderedSetScheduler tracks which columns are currently rendered and
// derives Render/Unrender events from each frame's camera state.
type RenderedSetScheduler struct {
	store    *Store
	rendered map[chunk.Vec2]struct{}
}

func NewRenderedSetScheduler(store *Store) *RenderedSetScheduler {
	return &RenderedSetScheduler{store: store, rendered: make(map[chunk.Vec2]struct{})}
}

// Update computes the in-front set for the given camera restricted to
// candidates (normally the active set), and returns the Render/Unrender
// delta against the previously rendered set.
func (s *RenderedSetScheduler) Update(cam Camera, candidates map[chunk.Vec2]struct{}) RenderedSetEvents {
	threshold := cam.cosThreshold()
	inFront := make(map[chunk.Vec2]struct{}, len(candidates))

	for pos := range candidates {
		col := s.store.Get(pos)
		if col == nil {
			continue
		}
		gx, gz := col.Pos.Global()
		center := Vec3{X: float64(gx) + 8, Y: cam.Position.Y, Z: float64(gz) + 8}
		toColumn := center.Sub(cam.Position).Normalize()
		if cam.Forward.Dot(toColumn) > threshold {
			inFront[pos] = struct{}{}
		}
	}

	var events RenderedSetEvents
	for pos := range inFront {
		if _, ok := s.rendered[pos]; !ok {
			events.Render = append(events.Render, pos)
		}
	}
	for pos := range s.rendered {
		if _, ok := inFront[pos]; !ok {
			events.Unrender = append(events.Unrender, pos)
		}
	}

	s.rendered = inFront
	return events
}

// Rendered reports whether pos is currently in the rendered set.
func (s *RenderedSetScheduler) Rendered(pos chunk.Vec2) bool {
	_, ok := s.rendered[pos]
	return ok
}
