// Package cascade implements the editor's cascade propagation rules
// (spec §4.4): a mutation on a carrier (room polygon or wall) either
// deterministically updates every dependent element or the whole
// mutation is refused. Every function here is a pure plan: it computes
// a new Floor (or rejection) without touching history or validation
// gating, the way the teacher's wall_structure.go recalculates derived
// wall properties before any commit is accepted
// (core/wall_composition/types/wall_structure.go).
package cascade

import (
	"github.com/google/uuid"

	"github.com/arx-os/museum-editor/internal/arena"
	"github.com/arx-os/museum-editor/internal/config"
	"github.com/arx-os/museum-editor/internal/geom"
	"github.com/arx-os/museum-editor/internal/validation"
)

// Diagnostic is a human-readable note about an induced change, surfaced
// to the caller before it decides to apply or abort (spec §4.4: "the
// caller may display warnings... and then apply or abort").
type Diagnostic struct {
	Message string
}

// Result is the outcome of a cascade computation: either a new floor
// plus diagnostics, or a rejection reason.
type Result struct {
	Floor       arena.Floor
	Diagnostics []Diagnostic
	Rejected    bool
	Reason      string
}

func rejected(reason string) Result { return Result{Rejected: true, Reason: reason} }

// RoomVertexMoved implements spec §4.4's first rule: moving vertex[i] of
// room to newPos re-expresses every door/link hosted on either adjacent
// edge by preserving its parameter t along that edge, then re-validates
// the edited room and every re-expressed element.
func RoomVertexMoved(cfg config.EditorConfig, floor arena.Floor, roomID uuid.UUID, vertexIndex int, newPos geom.Point) Result {
	idx, found := floor.RoomIndex(roomID)
	if !found {
		return rejected("room not found")
	}
	next := floor.Clone()
	room := &next.Rooms[idx]
	n := len(room.Vertices)
	if vertexIndex < 0 || vertexIndex >= n {
		return rejected("vertex index out of range")
	}

	oldEdges := [2]geom.Segment{
		{A: room.Vertices[(vertexIndex-1+n)%n], B: room.Vertices[vertexIndex]},
		{A: room.Vertices[vertexIndex], B: room.Vertices[(vertexIndex+1)%n]},
	}
	room.Vertices[vertexIndex] = newPos
	newEdges := [2]geom.Segment{
		{A: room.Vertices[(vertexIndex-1+n)%n], B: room.Vertices[vertexIndex]},
		{A: room.Vertices[vertexIndex], B: room.Vertices[(vertexIndex+1)%n]},
	}

	var diagnostics []Diagnostic
	for di := range next.Doors {
		if ok := reexpressOnEdges(&next.Doors[di].Segment, oldEdges, newEdges); ok {
			if next.Doors[di].Segment.Length() < cfg.Constraints.MinDoorWidth {
				return rejected("door would shrink below minimum width")
			}
		}
	}
	for li := range next.Links {
		if ok := reexpressOnEdges(&next.Links[li].Segment, oldEdges, newEdges); ok {
			if next.Links[li].Segment.Length() < cfg.Constraints.MinLinkWidth {
				return rejected("vertical link would shrink below minimum width")
			}
		}
	}

	res := validation.ValidateRoom(cfg.Constraints, &next, *room)
	if res.Blocks(validation.Strict) {
		return rejected("moved vertex: " + res.Message)
	}
	if res.Severity == validation.SeverityWarning {
		diagnostics = append(diagnostics, Diagnostic{Message: res.Message})
	}

	return Result{Floor: next, Diagnostics: diagnostics}
}

// reexpressOnEdges re-expresses seg's endpoints that lie on one of
// oldEdges by preserving the endpoint's parameter t and applying it to
// the corresponding newEdges entry. Returns true if seg was touched.
func reexpressOnEdges(seg *geom.Segment, oldEdges, newEdges [2]geom.Segment) bool {
	touched := false
	for i := range oldEdges {
		if geom.SegmentContains(oldEdges[i].A, oldEdges[i].B, seg.A) {
			_, t := geom.ProjectOnSegment(seg.A, oldEdges[i].A, oldEdges[i].B)
			seg.A = newEdges[i].PointAt(t)
			touched = true
		}
		if geom.SegmentContains(oldEdges[i].A, oldEdges[i].B, seg.B) {
			_, t := geom.ProjectOnSegment(seg.B, oldEdges[i].A, oldEdges[i].B)
			seg.B = newEdges[i].PointAt(t)
			touched = true
		}
	}
	return touched
}

// RoomTranslated implements spec §4.4's second rule: translating room by
// delta moves every door/link hosted on any of its edges, every artwork
// fully contained in its old polygon, and every interior wall whose
// RoomID matches, all by the same vector. Collisions with other rooms
// reject the move.
func RoomTranslated(cfg config.EditorConfig, floor arena.Floor, roomID uuid.UUID, delta geom.Vector) Result {
	idx, found := floor.RoomIndex(roomID)
	if !found {
		return rejected("room not found")
	}
	next := floor.Clone()
	room := &next.Rooms[idx]
	oldPolygon := append(geom.Polygon(nil), room.Vertices...)

	for i := range room.Vertices {
		room.Vertices[i] = room.Vertices[i].Add(delta)
	}

	for di := range next.Doors {
		if edgeIdx, onRoom := hostedOnPolygon(next.Doors[di].Segment, oldPolygon); onRoom {
			_ = edgeIdx
			next.Doors[di].Segment.A = next.Doors[di].Segment.A.Add(delta)
			next.Doors[di].Segment.B = next.Doors[di].Segment.B.Add(delta)
		}
	}
	for li := range next.Links {
		if _, onRoom := hostedOnPolygon(next.Links[li].Segment, oldPolygon); onRoom {
			next.Links[li].Segment.A = next.Links[li].Segment.A.Add(delta)
			next.Links[li].Segment.B = next.Links[li].Segment.B.Add(delta)
		}
	}
	for ai := range next.Artworks {
		if containedInPolygon(next.Artworks[ai].Rect(), oldPolygon) {
			next.Artworks[ai].Anchor = next.Artworks[ai].Anchor.Add(delta)
		}
	}
	for wi := range next.Walls {
		if next.Walls[wi].RoomID != nil && *next.Walls[wi].RoomID == roomID {
			next.Walls[wi].Segment.A = next.Walls[wi].Segment.A.Add(delta)
			next.Walls[wi].Segment.B = next.Walls[wi].Segment.B.Add(delta)
		}
	}

	for _, other := range next.Rooms {
		if other.ID == roomID {
			continue
		}
		if geom.PolygonsOverlap(room.Vertices, other.Vertices) {
			return rejected("translated room would overlap another room")
		}
	}

	return Result{Floor: next}
}

func hostedOnPolygon(seg geom.Segment, polygon geom.Polygon) (int, bool) {
	n := len(polygon)
	for i := 0; i < n; i++ {
		a, b := polygon[i], polygon[(i+1)%n]
		if geom.SegmentContains(a, b, seg.A) && geom.SegmentContains(a, b, seg.B) {
			return i, true
		}
	}
	return 0, false
}

func containedInPolygon(rect geom.Polygon, polygon geom.Polygon) bool {
	for _, corner := range rect {
		if !geom.PointInPolygon(corner, polygon) {
			return false
		}
	}
	return true
}

// WallEndpointMoved implements spec §4.4's third rule: moving a wall
// endpoint translates doors/links attached to that wall by preserving
// their parameter on the wall segment; if the resulting wall is too
// short to carry them, the move is rejected.
func WallEndpointMoved(cfg config.EditorConfig, floor arena.Floor, wallID uuid.UUID, end int, newPos geom.Point) Result {
	idx, found := floor.WallIndex(wallID)
	if !found {
		return rejected("wall not found")
	}
	next := floor.Clone()
	wall := &next.Walls[idx]
	oldSeg := wall.Segment

	switch end {
	case 0:
		wall.Segment.A = newPos
	case 1:
		wall.Segment.B = newPos
	default:
		return rejected("invalid wall endpoint index")
	}

	if wall.Segment.Length() < cfg.Constraints.MinWallLength {
		return rejected("wall would shrink below minimum length")
	}

	for di := range next.Doors {
		if next.Doors[di].HostWall != nil && *next.Doors[di].HostWall == wallID {
			if !reexpressOnWall(&next.Doors[di].Segment, oldSeg, wall.Segment) {
				return rejected("door is no longer hosted on the moved wall")
			}
			if next.Doors[di].Segment.Length() < cfg.Constraints.MinDoorWidth {
				return rejected("door would shrink below minimum width")
			}
		}
	}
	for li := range next.Links {
		if next.Links[li].HostWall != nil && *next.Links[li].HostWall == wallID {
			if !reexpressOnWall(&next.Links[li].Segment, oldSeg, wall.Segment) {
				return rejected("vertical link is no longer hosted on the moved wall")
			}
			if next.Links[li].Segment.Length() < cfg.Constraints.MinLinkWidth {
				return rejected("vertical link would shrink below minimum width")
			}
		}
	}

	return Result{Floor: next}
}

func reexpressOnWall(seg *geom.Segment, oldWall, newWall geom.Segment) bool {
	if !geom.SegmentContains(oldWall.A, oldWall.B, seg.A) || !geom.SegmentContains(oldWall.A, oldWall.B, seg.B) {
		return false
	}
	_, ta := geom.ProjectOnSegment(seg.A, oldWall.A, oldWall.B)
	_, tb := geom.ProjectOnSegment(seg.B, oldWall.A, oldWall.B)
	seg.A = newWall.PointAt(ta)
	seg.B = newWall.PointAt(tb)
	return true
}

// RoomDeleted implements the room case of spec §4.4's fourth rule:
// deleting a room also deletes every door/link hosted on it, every
// artwork fully inside it, and every interior wall whose RoomID
// matches.
func RoomDeleted(floor arena.Floor, roomID uuid.UUID) Result {
	idx, found := floor.RoomIndex(roomID)
	if !found {
		return rejected("room not found")
	}
	next := floor.Clone()
	polygon := next.Rooms[idx].Vertices
	next.Rooms = append(next.Rooms[:idx], next.Rooms[idx+1:]...)

	next.Doors = filterDoors(next.Doors, func(d arena.Door) bool {
		_, onRoom := hostedOnPolygon(d.Segment, polygon)
		return !onRoom
	})
	next.Links = filterLinks(next.Links, func(l arena.VerticalLink) bool {
		_, onRoom := hostedOnPolygon(l.Segment, polygon)
		return !onRoom
	})
	next.Artworks = filterArtworks(next.Artworks, func(a arena.Artwork) bool {
		return !containedInPolygon(a.Rect(), polygon)
	})
	next.Walls = filterWalls(next.Walls, func(w arena.Wall) bool {
		return w.RoomID == nil || *w.RoomID != roomID
	})

	return Result{Floor: next}
}

func filterDoors(in []arena.Door, keep func(arena.Door) bool) []arena.Door {
	out := in[:0]
	for _, d := range in {
		if keep(d) {
			out = append(out, d)
		}
	}
	return out
}

func filterLinks(in []arena.VerticalLink, keep func(arena.VerticalLink) bool) []arena.VerticalLink {
	out := in[:0]
	for _, l := range in {
		if keep(l) {
			out = append(out, l)
		}
	}
	return out
}

func filterArtworks(in []arena.Artwork, keep func(arena.Artwork) bool) []arena.Artwork {
	out := in[:0]
	for _, a := range in {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}

func filterWalls(in []arena.Wall, keep func(arena.Wall) bool) []arena.Wall {
	out := in[:0]
	for _, w := range in {
		if keep(w) {
			out = append(out, w)
		}
	}
	return out
}
