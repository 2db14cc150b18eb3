package snap

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arx-os/museum-editor/internal/arena"
	"github.com/arx-os/museum-editor/internal/geom"
)

func testFloor() *arena.Floor {
	return &arena.Floor{
		ID: uuid.New(),
		Rooms: []arena.Room{{
			ID:       uuid.New(),
			Vertices: geom.RectanglePolygon(geom.NewPoint(0, 0), geom.NewPoint(10, 6)),
		}},
	}
}

func defaultRadii() Radii { return Radii{Vertex: 0.5, Wall: 0.35, Grid: 0.25} }

func TestFindCandidates_PrefersVertexOverEdge(t *testing.T) {
	floor := testFloor()
	idx := BuildIndex(floor)
	candidates := FindCandidates(idx, floor, geom.NewPoint(0.1, 0.1), defaultRadii(), FilterAny, 1)
	best, found := Best(candidates)
	require.True(t, found)
	assert.Equal(t, KindRoomVertex, best.Kind)
}

func TestFindCandidates_WallEdgeWhenFarFromVertex(t *testing.T) {
	floor := testFloor()
	idx := BuildIndex(floor)
	candidates := FindCandidates(idx, floor, geom.NewPoint(5, 0.1), defaultRadii(), FilterAny, 1)
	best, found := Best(candidates)
	require.True(t, found)
	assert.Equal(t, KindWallEdge, best.Kind)
}

func TestFindCandidates_WallHostOnlyFilterExcludesVertex(t *testing.T) {
	floor := testFloor()
	idx := BuildIndex(floor)
	candidates := FindCandidates(idx, floor, geom.NewPoint(0.1, 0.1), defaultRadii(), FilterWallHostOnly, 1)
	for _, c := range candidates {
		assert.NotEqual(t, KindRoomVertex, c.Kind)
	}
}

func TestFindCandidates_FallsBackToGrid(t *testing.T) {
	floor := &arena.Floor{ID: uuid.New()}
	idx := BuildIndex(floor)
	candidates := FindCandidates(idx, floor, geom.NewPoint(3.05, 3.05), defaultRadii(), FilterAny, 1)
	best, found := Best(candidates)
	require.True(t, found)
	assert.Equal(t, KindGrid, best.Kind)
	assert.Equal(t, geom.NewPoint(3, 3), best.Point)
}

func TestProjectOnWallSegment_CentresWithClearance(t *testing.T) {
	host := geom.Segment{A: geom.NewPoint(0, 0), B: geom.NewPoint(10, 0)}
	center, ok := ProjectOnWallSegment(geom.NewPoint(9, 0), host, 2, 0.5)
	require.True(t, ok)
	assert.InDelta(t, 8.5, func() float64 { x, _ := center.Grid(); return x }(), 1e-6)
}

func TestProjectOnWallSegment_RejectsTooShortHost(t *testing.T) {
	host := geom.Segment{A: geom.NewPoint(0, 0), B: geom.NewPoint(1, 0)}
	_, ok := ProjectOnWallSegment(geom.NewPoint(0.5, 0), host, 2, 0.5)
	assert.False(t, ok)
}

func TestBest_BreaksTiesByDistance(t *testing.T) {
	a := Candidate{Kind: KindWallEdge, Distance: 0.3}
	b := Candidate{Kind: KindFreeWall, Distance: 0.1}
	best, found := Best([]Candidate{a, b})
	require.True(t, found)
	assert.Equal(t, 0.1, best.Distance)
}
