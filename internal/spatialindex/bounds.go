// Package spatialindex adapts the teacher's wall_composition/spatial
// quadtree (core/wall_composition/spatial/spatial_index.go) to the
// editor's snap service: instead of indexing ArxObject point clouds, it
// indexes the anchor points of room vertices, wall/door/link endpoints,
// and artwork corners, keyed by the owning element's uuid.UUID so the
// snap service can resolve a hit back to its element and kind (spec
// §4.3).
package spatialindex

import "github.com/arx-os/museum-editor/internal/geom"

// Bounds is a 2D bounding box in sub-grid integer units, mirroring the
// teacher's BoundingBox but over geom.Point's Grid() units rather than
// nanometres.
type Bounds struct {
	MinX, MinY int64
	MaxX, MaxY int64
}

// FromPoint returns the degenerate bounds of a single point.
func FromPoint(p geom.Point) Bounds {
	x, y := p.Grid()
	return Bounds{MinX: x, MinY: y, MaxX: x, MaxY: y}
}

// Contains reports whether (x, y) lies within bb, inclusive.
func (bb Bounds) Contains(x, y int64) bool {
	return x >= bb.MinX && x <= bb.MaxX && y >= bb.MinY && y <= bb.MaxY
}

// Intersects reports whether bb and other overlap or touch.
func (bb Bounds) Intersects(other Bounds) bool {
	return !(bb.MaxX < other.MinX || bb.MinX > other.MaxX ||
		bb.MaxY < other.MinY || bb.MinY > other.MaxY)
}

// Expand grows bb in place to include (x, y).
func (bb *Bounds) Expand(x, y int64) {
	if x < bb.MinX {
		bb.MinX = x
	}
	if x > bb.MaxX {
		bb.MaxX = x
	}
	if y < bb.MinY {
		bb.MinY = y
	}
	if y > bb.MaxY {
		bb.MaxY = y
	}
}

// Pad returns bb expanded by r grid units on every side.
func (bb Bounds) Pad(r int64) Bounds {
	return Bounds{MinX: bb.MinX - r, MinY: bb.MinY - r, MaxX: bb.MaxX + r, MaxY: bb.MaxY + r}
}
