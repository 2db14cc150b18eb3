package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rect(x0, y0, x1, y1 float64) Polygon {
	return Polygon{
		NewPoint(x0, y0),
		NewPoint(x1, y0),
		NewPoint(x1, y1),
		NewPoint(x0, y1),
	}
}

func TestPolygonArea_Rectangle(t *testing.T) {
	poly := rect(0, 0, 10, 6)
	require.InDelta(t, 60.0, PolygonArea(poly), 1e-6)
}

func TestPointInPolygon_InsideAndOutside(t *testing.T) {
	poly := rect(0, 0, 10, 6)
	assert.True(t, PointInPolygon(NewPoint(5, 3), poly))
	assert.False(t, PointInPolygon(NewPoint(15, 3), poly))
}

func TestPointInPolygon_OnBoundaryIsInside(t *testing.T) {
	poly := rect(0, 0, 10, 6)
	assert.True(t, PointInPolygon(NewPoint(0, 3), poly))
	assert.True(t, PointInPolygon(NewPoint(10, 6), poly))
}

func TestPolygonIsSimple(t *testing.T) {
	assert.True(t, PolygonIsSimple(rect(0, 0, 10, 6)))

	bowtie := Polygon{
		NewPoint(0, 0),
		NewPoint(10, 10),
		NewPoint(10, 0),
		NewPoint(0, 10),
	}
	assert.False(t, PolygonIsSimple(bowtie))
}

func TestPolygonsOverlap_DisjointTouchingAndOverlapping(t *testing.T) {
	a := rect(0, 0, 10, 6)
	b := rect(10, 0, 20, 6) // shares edge x=10, touching only
	assert.False(t, PolygonsOverlap(a, b), "touching rooms must not count as overlapping")

	c := rect(5, 3, 15, 9) // overlaps a's interior
	assert.True(t, PolygonsOverlap(a, c))

	d := rect(100, 100, 110, 106)
	assert.False(t, PolygonsOverlap(a, d))
}

func TestPolygonsOverlap_Nested(t *testing.T) {
	outer := rect(0, 0, 10, 10)
	inner := rect(2, 2, 4, 4)
	assert.True(t, PolygonsOverlap(outer, inner))
}

func TestHasDuplicateVertices(t *testing.T) {
	poly := Polygon{NewPoint(0, 0), NewPoint(5, 0), NewPoint(5, 0.001), NewPoint(0, 5)}
	assert.True(t, HasDuplicateVertices(poly))

	poly2 := rect(0, 0, 10, 6)
	assert.False(t, HasDuplicateVertices(poly2))
}

func TestCirclePolygon_Area(t *testing.T) {
	poly := CirclePolygon(NewPoint(5, 5), 3, 32)
	require.Len(t, poly, 32)
	area := PolygonArea(poly)
	// A 32-gon inscribed in radius 3 approximates pi*r^2 ~ 28.27 closely.
	assert.InDelta(t, 28.27, area, 0.5)
}

func TestSegmentsOverlap(t *testing.T) {
	assert.True(t, SegmentsOverlap(NewPoint(0, 0), NewPoint(10, 0), NewPoint(5, 0), NewPoint(15, 0)))
	assert.False(t, SegmentsOverlap(NewPoint(0, 0), NewPoint(10, 0), NewPoint(10, 0), NewPoint(20, 0)))
	assert.False(t, SegmentsOverlap(NewPoint(0, 0), NewPoint(10, 0), NewPoint(0, 5), NewPoint(10, 5)))
}

func TestSegmentsIntersect_Proper(t *testing.T) {
	assert.True(t, SegmentsIntersect(NewPoint(0, 0), NewPoint(10, 10), NewPoint(0, 10), NewPoint(10, 0)))
	assert.False(t, SegmentsIntersect(NewPoint(0, 0), NewPoint(10, 0), NewPoint(0, 5), NewPoint(10, 5)))
}

func TestProjectOnSegment(t *testing.T) {
	closest, tt := ProjectOnSegment(NewPoint(5, 3), NewPoint(0, 0), NewPoint(10, 0))
	assert.Equal(t, NewPoint(5, 0), closest)
	assert.InDelta(t, 0.5, tt, 1e-6)
}

func TestSnapToGrid(t *testing.T) {
	p := NewPoint(4.3, 7.8)
	snapped := SnapToGrid(p, 1)
	x, y := snapped.Grid()
	assert.Equal(t, 4.0, x)
	assert.Equal(t, 8.0, y)
}
