// Package snap implements the editor's snap and projection service
// (spec §4.3): ranking candidate snap points near the pointer by
// priority and distance, and centring an element along a host wall
// segment. Candidate search uses the spatial index
// (internal/spatialindex), grounded on the teacher's quadtree nearby-
// object query, and the room polygon edges themselves for wall-edge
// projection, grounded on the planar-graph edge model in
// core/topology/room_detection.go.
package snap

import (
	"github.com/google/uuid"

	"github.com/arx-os/museum-editor/internal/arena"
	"github.com/arx-os/museum-editor/internal/geom"
	"github.com/arx-os/museum-editor/internal/spatialindex"
)

// Kind identifies the category of a snap candidate.
type Kind string

const (
	KindRoomVertex   Kind = "room_vertex"
	KindWallEndpoint Kind = "wall_endpoint"
	KindWallEdge     Kind = "wall_edge"
	KindFreeWall     Kind = "free_wall"
	KindGrid         Kind = "grid"
)

// Priority returns the candidate's ranking priority, per spec §4.3
// (higher wins).
func (k Kind) Priority() int {
	switch k {
	case KindRoomVertex:
		return 10
	case KindWallEndpoint:
		return 9
	case KindWallEdge, KindFreeWall:
		return 5
	case KindGrid:
		return 1
	default:
		return 0
	}
}

// Carrier identifies what a candidate snapped onto: a room edge or an
// interior wall.
type Carrier struct {
	RoomID  *uuid.UUID
	EdgeIdx int
	WallID  *uuid.UUID
}

// Candidate is one ranked snap result.
type Candidate struct {
	Kind     Kind
	Point    geom.Point
	Distance float64
	Carrier  Carrier
}

// Radii holds the per-kind search radii (spec §6 "snap.radii.*").
type Radii struct {
	Vertex float64
	Wall   float64
	Grid   float64
}

// ToolFilter narrows which candidate kinds a tool accepts (spec §4.3:
// "for door/link tools, only wall-edge / wall candidates are
// returned... for wall tool, vertex and wall candidates are
// preferred").
type ToolFilter int

const (
	FilterAny ToolFilter = iota
	FilterWallHostOnly
	FilterVertexAndWall
)

func (f ToolFilter) accepts(k Kind) bool {
	switch f {
	case FilterWallHostOnly:
		return k == KindWallEdge || k == KindFreeWall || k == KindWallEndpoint
	case FilterVertexAndWall:
		return k == KindRoomVertex || k == KindWallEndpoint || k == KindWallEdge || k == KindFreeWall
	default:
		return true
	}
}

// BuildIndex populates a spatial index with every vertex/endpoint anchor
// on floor, for use by FindCandidates.
func BuildIndex(floor *arena.Floor) *spatialindex.Index {
	idx := spatialindex.New()
	var items []spatialindex.Item
	for _, room := range floor.Rooms {
		for i, v := range room.Vertices {
			items = append(items, spatialindex.Item{ElementID: room.ID, Kind: spatialindex.KindRoomVertex, Point: v, EdgeIndex: i})
		}
	}
	for _, w := range floor.Walls {
		items = append(items, spatialindex.Item{ElementID: w.ID, Kind: spatialindex.KindWallEndpoint, Point: w.Segment.A, EdgeIndex: 0})
		items = append(items, spatialindex.Item{ElementID: w.ID, Kind: spatialindex.KindWallEndpoint, Point: w.Segment.B, EdgeIndex: 1})
	}
	idx.Build(items)
	return idx
}

// FindCandidates returns every in-radius snap candidate near point on
// floor, using idx (built by BuildIndex) for vertex/endpoint search and
// direct iteration over room edges and walls for edge/segment
// projection, filtered by the active tool and gridStep for the grid
// candidate.
func FindCandidates(idx *spatialindex.Index, floor *arena.Floor, point geom.Point, radii Radii, filter ToolFilter, gridStep float64) []Candidate {
	var out []Candidate

	for _, it := range idx.QueryNearby(point, radii.Vertex) {
		if it.Kind != spatialindex.KindRoomVertex || !filter.accepts(KindRoomVertex) {
			continue
		}
		roomID := it.ElementID
		out = append(out, Candidate{
			Kind:     KindRoomVertex,
			Point:    it.Point,
			Distance: point.DistanceTo(it.Point),
			Carrier:  Carrier{RoomID: &roomID, EdgeIdx: it.EdgeIndex},
		})
	}

	for _, it := range idx.QueryNearby(point, radii.Wall) {
		if it.Kind != spatialindex.KindWallEndpoint || !filter.accepts(KindWallEndpoint) {
			continue
		}
		wallID := it.ElementID
		out = append(out, Candidate{
			Kind:     KindWallEndpoint,
			Point:    it.Point,
			Distance: point.DistanceTo(it.Point),
			Carrier:  Carrier{WallID: &wallID},
		})
	}

	if filter.accepts(KindWallEdge) {
		for ri := range floor.Rooms {
			room := &floor.Rooms[ri]
			n := len(room.Vertices)
			for i := 0; i < n; i++ {
				a, b := room.Vertices[i], room.Vertices[(i+1)%n]
				proj, _ := geom.ProjectOnSegment(point, a, b)
				d := point.DistanceTo(proj)
				if d <= radii.Wall {
					roomID := room.ID
					out = append(out, Candidate{
						Kind:     KindWallEdge,
						Point:    proj,
						Distance: d,
						Carrier:  Carrier{RoomID: &roomID, EdgeIdx: i},
					})
				}
			}
		}
	}

	if filter.accepts(KindFreeWall) {
		for wi := range floor.Walls {
			wall := &floor.Walls[wi]
			proj, _ := geom.ProjectOnSegment(point, wall.Segment.A, wall.Segment.B)
			d := point.DistanceTo(proj)
			if d <= radii.Wall {
				wallID := wall.ID
				out = append(out, Candidate{
					Kind:     KindFreeWall,
					Point:    proj,
					Distance: d,
					Carrier:  Carrier{WallID: &wallID},
				})
			}
		}
	}

	if filter.accepts(KindGrid) && gridStep > 0 {
		gp := geom.SnapToGrid(point, gridStep)
		d := point.DistanceTo(gp)
		if d <= radii.Grid {
			out = append(out, Candidate{Kind: KindGrid, Point: gp, Distance: d})
		}
	}

	return out
}

// Best selects the highest-priority candidate whose distance is within
// its radius, breaking ties by distance (spec §4.3).
func Best(candidates []Candidate) (Candidate, bool) {
	var best Candidate
	found := false
	for _, c := range candidates {
		if !found {
			best, found = c, true
			continue
		}
		if c.Kind.Priority() > best.Kind.Priority() {
			best = c
		} else if c.Kind.Priority() == best.Kind.Priority() && c.Distance < best.Distance {
			best = c
		}
	}
	return best, found
}
