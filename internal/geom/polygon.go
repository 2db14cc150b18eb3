package geom

import "math"

// Polygon is an ordered, closed sequence of vertices. The last vertex is
// implicitly connected back to the first; callers never repeat the first
// vertex at the end of the slice.
type Polygon []Point

// PolygonArea returns the unsigned area of poly in square grid units,
// computed via the shoelace formula.
func PolygonArea(poly Polygon) float64 {
	n := len(poly)
	if n < 3 {
		return 0
	}
	var sum int64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += poly[i].X*poly[j].Y - poly[j].X*poly[i].Y
	}
	area := math.Abs(float64(sum)) / 2
	return area / (SubgridScale * SubgridScale)
}

// PolygonSignedArea returns the signed shoelace area; positive for
// counter-clockwise vertex order, negative for clockwise.
func PolygonSignedArea(poly Polygon) float64 {
	n := len(poly)
	if n < 3 {
		return 0
	}
	var sum int64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += poly[i].X*poly[j].Y - poly[j].X*poly[i].Y
	}
	return float64(sum) / 2 / (SubgridScale * SubgridScale)
}

// PolygonCentroid returns the area-weighted centroid of poly.
func PolygonCentroid(poly Polygon) Point {
	n := len(poly)
	if n == 0 {
		return Point{}
	}
	if n < 3 {
		return poly[0]
	}
	var cx, cy, signedArea float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		xi, yi := poly[i].Grid()
		xj, yj := poly[j].Grid()
		cross := xi*yj - xj*yi
		signedArea += cross
		cx += (xi + xj) * cross
		cy += (yi + yj) * cross
	}
	if signedArea == 0 {
		return poly[0]
	}
	signedArea /= 2
	cx /= 6 * signedArea
	cy /= 6 * signedArea
	return NewPoint(cx, cy)
}

// PointInPolygon reports whether p lies inside poly, using an even-odd
// ray-casting rule with the upper endpoint of each horizontal-crossing
// edge treated as inclusive, so boundary handling is consistent for
// touching rooms sharing an edge.
func PointInPolygon(p Point, poly Polygon) bool {
	n := len(poly)
	if n < 3 {
		return false
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi, vj := poly[i], poly[j]
		if SegmentContains(vi, vj, p) {
			return true
		}
		// Ray casting: test edge (vi, vj) against a horizontal ray from p.
		crosses := (vi.Y > p.Y) != (vj.Y > p.Y)
		if crosses {
			// x coordinate where the edge crosses p.Y
			xAt := float64(vi.X) + float64(vj.X-vi.X)*float64(p.Y-vi.Y)/float64(vj.Y-vi.Y)
			if xAt > float64(p.X) {
				inside = !inside
			}
		}
	}
	return inside
}

// PolygonIsSimple reports whether poly is free of self-intersection:
// false iff any non-adjacent edge pair intersects in their open interiors.
func PolygonIsSimple(poly Polygon) bool {
	n := len(poly)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		a1, a2 := poly[i], poly[(i+1)%n]
		for j := i + 1; j < n; j++ {
			// Skip edges adjacent to edge i (share a vertex).
			if j == i || (j+1)%n == i || j == (i+1)%n {
				continue
			}
			b1, b2 := poly[j], poly[(j+1)%n]
			if SegmentsIntersect(a1, a2, b1, b2) {
				return false
			}
			if SegmentsOverlap(a1, a2, b1, b2) {
				return false
			}
		}
	}
	return true
}

// HasDuplicateVertices reports whether any two vertices of poly coincide
// within Epsilon.
func HasDuplicateVertices(poly Polygon) bool {
	for i := 0; i < len(poly); i++ {
		for j := i + 1; j < len(poly); j++ {
			if poly[i].NearlyEqual(poly[j]) {
				return true
			}
		}
	}
	return false
}

// PolygonsOverlap reports whether the interiors of p and q intersect.
// Rooms that merely touch along a shared edge or vertex do not overlap.
func PolygonsOverlap(p, q Polygon) bool {
	if len(p) < 3 || len(q) < 3 {
		return false
	}

	// Any proper edge crossing implies overlapping interiors.
	for i := 0; i < len(p); i++ {
		a1, a2 := p[i], p[(i+1)%len(p)]
		for j := 0; j < len(q); j++ {
			b1, b2 := q[j], q[(j+1)%len(q)]
			if SegmentsIntersect(a1, a2, b1, b2) {
				return true
			}
		}
	}

	// No crossing edges: one polygon may still be nested inside the
	// other, or they may be disjoint/touching. Test a vertex of each for
	// strict interior containment in the other, excluding points that lie
	// exactly on the boundary (touching is not overlap).
	if vertexStrictlyInside(p[0], q) || vertexStrictlyInside(q[0], p) {
		return true
	}
	return false
}

func vertexStrictlyInside(v Point, poly Polygon) bool {
	for _, pv := range poly {
		if v.NearlyEqual(pv) {
			return false
		}
	}
	for i := 0; i < len(poly); i++ {
		a, b := poly[i], poly[(i+1)%len(poly)]
		if SegmentContains(a, b, v) {
			return false
		}
	}
	return PointInPolygon(v, poly)
}

// CirclePolygon approximates a circle of the given radius centred at
// center with an n-sided regular polygon (default 32 in the caller).
func CirclePolygon(center Point, radius float64, n int) Polygon {
	if n < 3 {
		n = 32
	}
	cx, cy := center.Grid()
	poly := make(Polygon, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		poly[i] = NewPoint(cx+radius*math.Cos(theta), cy+radius*math.Sin(theta))
	}
	return poly
}

// TrianglePolygon returns an upright equilateral-ish triangle inscribed in
// the axis-aligned bounding box from anchor to opposite, apex pointing up.
func TrianglePolygon(anchor, opposite Point) Polygon {
	ax, ay := anchor.Grid()
	ox, oy := opposite.Grid()
	minX, maxX := math.Min(ax, ox), math.Max(ax, ox)
	minY, maxY := math.Min(ay, oy), math.Max(ay, oy)
	midX := (minX + maxX) / 2
	return Polygon{
		NewPoint(midX, minY),
		NewPoint(maxX, maxY),
		NewPoint(minX, maxY),
	}
}

// ArcPolygon approximates a filled circular sector from center through
// radiusPoint (defining the radius and the starting angle) sweeping a
// quarter turn counter-clockwise, with n segments along the arc (default
// 24 in the caller).
func ArcPolygon(center, radiusPoint Point, n int) Polygon {
	if n < 2 {
		n = 24
	}
	cx, cy := center.Grid()
	rx, ry := radiusPoint.Grid()
	radius := math.Hypot(rx-cx, ry-cy)
	startAngle := math.Atan2(ry-cy, rx-cx)
	sweep := math.Pi / 2

	poly := make(Polygon, 0, n+1)
	poly = append(poly, center)
	for i := 0; i <= n; i++ {
		theta := startAngle + sweep*float64(i)/float64(n)
		poly = append(poly, NewPoint(cx+radius*math.Cos(theta), cy+radius*math.Sin(theta)))
	}
	return poly
}

// RectanglePolygon returns the axis-aligned rectangle spanned by two
// opposite corners, in counter-clockwise order starting at the
// minimum corner.
func RectanglePolygon(a, b Point) Polygon {
	ax, ay := a.Grid()
	bx, by := b.Grid()
	minX, maxX := math.Min(ax, bx), math.Max(ax, bx)
	minY, maxY := math.Min(ay, by), math.Max(ay, by)
	return Polygon{
		NewPoint(minX, minY),
		NewPoint(maxX, minY),
		NewPoint(maxX, maxY),
		NewPoint(minX, maxY),
	}
}
