package interaction

import (
	"github.com/google/uuid"

	"github.com/arx-os/museum-editor/internal/arena"
	"github.com/arx-os/museum-editor/internal/geom"
)

// hit is one candidate result of hitTest, carrying enough to build the
// right dragging state for whatever was under the cursor.
type hit struct {
	kind        ElementKind
	id          uuid.UUID
	vertexIndex int // room vertex hit
	endIndex    int // wall endpoint hit
	handle      ArtworkHandle
	isVertex    bool
	isEndpoint  bool
	isHandle    bool
	origin      geom.Point // ResizingArtwork's fixed opposite corner
}

// hitTest finds the topmost element under point, by the priority order
// spec §4.5's Select tool defines: vertex/endpoint > artwork handle >
// artwork body > door > link > wall > room.
func hitTest(floor *arena.Floor, point geom.Point, vertexRadius float64) (hit, bool) {
	for ri := range floor.Rooms {
		room := &floor.Rooms[ri]
		for vi, v := range room.Vertices {
			if point.DistanceTo(v) <= vertexRadius {
				return hit{kind: ElementRoom, id: room.ID, vertexIndex: vi, isVertex: true}, true
			}
		}
	}
	for wi := range floor.Walls {
		wall := &floor.Walls[wi]
		if point.DistanceTo(wall.Segment.A) <= vertexRadius {
			return hit{kind: ElementWall, id: wall.ID, endIndex: 0, isEndpoint: true}, true
		}
		if point.DistanceTo(wall.Segment.B) <= vertexRadius {
			return hit{kind: ElementWall, id: wall.ID, endIndex: 1, isEndpoint: true}, true
		}
	}

	for ai := range floor.Artworks {
		art := &floor.Artworks[ai]
		if h, ok := artworkHandleHit(art, point, vertexRadius); ok {
			return h, true
		}
	}

	for ai := range floor.Artworks {
		art := &floor.Artworks[ai]
		if geom.PointInPolygon(point, art.Rect()) {
			return hit{kind: ElementArtwork, id: art.ID}, true
		}
	}

	for di := range floor.Doors {
		door := &floor.Doors[di]
		if geom.DistanceToSegment(point, door.Segment.A, door.Segment.B) <= vertexRadius {
			return hit{kind: ElementDoor, id: door.ID}, true
		}
	}
	for li := range floor.Links {
		link := &floor.Links[li]
		if geom.DistanceToSegment(point, link.Segment.A, link.Segment.B) <= vertexRadius {
			return hit{kind: ElementLink, id: link.ID}, true
		}
	}
	for wi := range floor.Walls {
		wall := &floor.Walls[wi]
		if geom.DistanceToSegment(point, wall.Segment.A, wall.Segment.B) <= vertexRadius {
			return hit{kind: ElementWall, id: wall.ID}, true
		}
	}
	for ri := range floor.Rooms {
		room := &floor.Rooms[ri]
		if geom.PointInPolygon(point, room.Vertices) {
			return hit{kind: ElementRoom, id: room.ID}, true
		}
	}
	return hit{}, false
}

// artworkHandleHit reports whether point lands on one of art's four
// corner handles, returning the fixed opposite corner as origin for the
// ResizingArtwork transition.
func artworkHandleHit(art *arena.Artwork, point geom.Point, radius float64) (hit, bool) {
	ax, ay := art.Anchor.Grid()
	corners := []struct {
		p      geom.Point
		handle ArtworkHandle
		opp    geom.Point
	}{
		{geom.NewPoint(ax, ay), HandleBottomLeft, geom.NewPoint(ax+art.W, ay+art.H)},
		{geom.NewPoint(ax+art.W, ay), HandleBottomRight, geom.NewPoint(ax, ay+art.H)},
		{geom.NewPoint(ax, ay+art.H), HandleTopLeft, geom.NewPoint(ax+art.W, ay)},
		{geom.NewPoint(ax+art.W, ay+art.H), HandleTopRight, geom.NewPoint(ax, ay)},
	}
	for _, c := range corners {
		if point.DistanceTo(c.p) <= radius {
			return hit{kind: ElementArtwork, id: art.ID, isHandle: true, handle: c.handle, origin: c.opp}, true
		}
	}
	return hit{}, false
}

// marqueeBox is the axis-aligned box between two pointer points.
type marqueeBox struct {
	minX, minY, maxX, maxY float64
}

func boxFrom(a, b geom.Point) marqueeBox {
	ax, ay := a.Grid()
	bx, by := b.Grid()
	return marqueeBox{minX: minF2(ax, bx), minY: minF2(ay, by), maxX: maxF2(ax, bx), maxY: maxF2(ay, by)}
}

func (box marqueeBox) contains(p geom.Point) bool {
	x, y := p.Grid()
	return x >= box.minX && x <= box.maxX && y >= box.minY && y <= box.maxY
}

func minF2(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF2(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// selectionInBox computes the marquee commit selection (spec §4.5): every
// element whose characteristic point lies in the box, with a room selected
// whole when every one of its vertices is inside and as a vertex subset
// otherwise. Every category is scanned in full; matches accumulate rather
// than short-circuiting on the first hit, so a box spanning several rooms,
// walls, doors, links or artworks picks all of them in one Selection.
func selectionInBox(floor *arena.Floor, box marqueeBox) Selection {
	var elements []SelectedElement
	var vertexSelections []RoomVertices

	for ri := range floor.Rooms {
		room := &floor.Rooms[ri]
		allIn := true
		anyIn := false
		var indices []int
		for vi, v := range room.Vertices {
			if box.contains(v) {
				anyIn = true
				indices = append(indices, vi)
			} else {
				allIn = false
			}
		}
		switch {
		case allIn && len(room.Vertices) > 0:
			elements = append(elements, SelectedElement{ID: room.ID, Kind: ElementRoom})
		case anyIn:
			vertexSelections = append(vertexSelections, RoomVertices{RoomID: room.ID, Indices: indices})
		}
	}
	for wi := range floor.Walls {
		wall := &floor.Walls[wi]
		mid := wall.Segment.PointAt(0.5)
		if box.contains(mid) {
			elements = append(elements, SelectedElement{ID: wall.ID, Kind: ElementWall})
		}
	}
	for di := range floor.Doors {
		door := &floor.Doors[di]
		mid := door.Segment.PointAt(0.5)
		if box.contains(mid) {
			elements = append(elements, SelectedElement{ID: door.ID, Kind: ElementDoor})
		}
	}
	for li := range floor.Links {
		link := &floor.Links[li]
		mid := link.Segment.PointAt(0.5)
		if box.contains(mid) {
			elements = append(elements, SelectedElement{ID: link.ID, Kind: ElementLink})
		}
	}
	for ai := range floor.Artworks {
		art := &floor.Artworks[ai]
		if box.contains(art.Anchor) {
			elements = append(elements, SelectedElement{ID: art.ID, Kind: ElementArtwork})
		}
	}

	switch {
	case len(elements) > 0:
		return Selection{Kind: SelectionElement, Elements: elements, VertexSelections: vertexSelections}
	case len(vertexSelections) > 0:
		return Selection{Kind: SelectionVertices, VertexSelections: vertexSelections}
	default:
		return Selection{Kind: SelectionNone}
	}
}
