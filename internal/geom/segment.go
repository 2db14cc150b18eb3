package geom

import "math"

// Segment is a closed line segment between two points.
type Segment struct {
	A, B Point
}

// Length returns the segment's length in grid units.
func (s Segment) Length() float64 {
	return s.A.DistanceTo(s.B)
}

// Vector returns the displacement from A to B.
func (s Segment) Vector() Vector {
	return s.B.Sub(s.A)
}

// PointAt returns the point at parameter t in [0,1] along the segment,
// where 0 is A and 1 is B.
func (s Segment) PointAt(t float64) Point {
	ax, ay := s.A.Grid()
	bx, by := s.B.Grid()
	return NewPoint(ax+(bx-ax)*t, ay+(by-ay)*t)
}

// cross returns the 2D cross product (o->a) x (o->b).
func cross(o, a, b Point) float64 {
	ax, ay := float64(a.X-o.X), float64(a.Y-o.Y)
	bx, by := float64(b.X-o.X), float64(b.Y-o.Y)
	return ax*by - ay*bx
}

// ProjectOnSegment returns the closest point on the closed segment [a,b]
// to p, along with the normalised parameter t in [0,1] of that point.
func ProjectOnSegment(p, a, b Point) (closest Point, t float64) {
	ax, ay := a.Grid()
	bx, by := b.Grid()
	px, py := p.Grid()

	dx, dy := bx-ax, by-ay
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return a, 0
	}

	t = ((px-ax)*dx + (py-ay)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return NewPoint(ax+t*dx, ay+t*dy), t
}

// DistanceToSegment returns the shortest distance from p to the closed
// segment [a,b], in grid units.
func DistanceToSegment(p, a, b Point) float64 {
	closest, _ := ProjectOnSegment(p, a, b)
	return p.DistanceTo(closest)
}

// onSegment reports whether point q, known to be colinear with p-r, lies
// within the closed bounding box of segment p-r.
func onSegment(p, q, r Point) bool {
	return q.X <= maxI(p.X, r.X) && q.X >= minI(p.X, r.X) &&
		q.Y <= maxI(p.Y, r.Y) && q.Y >= minI(p.Y, r.Y)
}

func maxI(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

func minI(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// SegmentsIntersect reports whether the open segments (a1,a2) and (b1,b2)
// have a proper intersection: they cross at a single point that is not an
// endpoint of either segment. Colinear overlap is reported separately by
// SegmentsOverlap, never by this function.
func SegmentsIntersect(a1, a2, b1, b2 Point) bool {
	d1 := sign(cross(b1, b2, a1))
	d2 := sign(cross(b1, b2, a2))
	d3 := sign(cross(a1, a2, b1))
	d4 := sign(cross(a1, a2, b2))

	if d1 != d2 && d3 != d4 && d1 != 0 && d2 != 0 && d3 != 0 && d4 != 0 {
		return true
	}
	return false
}

// SegmentsOverlap reports whether both segments lie on the same infinite
// line and their 1-D projections share a positive-length interval.
func SegmentsOverlap(a1, a2, b1, b2 Point) bool {
	if !colinear(a1, a2, b1) || !colinear(a1, a2, b2) {
		return false
	}

	// Project onto the dominant axis of the shared line.
	dx := math.Abs(float64(a2.X - a1.X))
	dy := math.Abs(float64(a2.Y - a1.Y))

	var aLo, aHi, bLo, bHi int64
	if dx >= dy {
		aLo, aHi = minI(a1.X, a2.X), maxI(a1.X, a2.X)
		bLo, bHi = minI(b1.X, b2.X), maxI(b1.X, b2.X)
	} else {
		aLo, aHi = minI(a1.Y, a2.Y), maxI(a1.Y, a2.Y)
		bLo, bHi = minI(b1.Y, b2.Y), maxI(b1.Y, b2.Y)
	}

	lo := maxI(aLo, bLo)
	hi := minI(aHi, bHi)
	return hi-lo > epsilonUnits
}

// colinear reports whether three points lie on the same line, within
// Epsilon.
func colinear(a, b, c Point) bool {
	// |cross| / |b-a| gives the perpendicular distance of c from line a-b.
	abLen := a.DistanceTo(b)
	if abLen == 0 {
		return a.DistanceTo(c) <= Epsilon
	}
	areaTimes2 := math.Abs(cross(a, b, c)) / SubgridScale / SubgridScale
	dist := areaTimes2 / abLen
	return dist <= Epsilon
}

// Colinear reports whether point c lies on the infinite line through a-b,
// within Epsilon.
func Colinear(a, b, c Point) bool {
	return colinear(a, b, c)
}

// SegmentContains reports whether point p lies on the closed segment
// [a,b], within Epsilon, including colinearity and range.
func SegmentContains(a, b, p Point) bool {
	if !colinear(a, b, p) {
		return false
	}
	closest, _ := ProjectOnSegment(p, a, b)
	return closest.DistanceTo(p) <= Epsilon
}
