// Package arena holds the editor's core data model: floors, rooms,
// walls, doors, vertical links, and artworks, addressed by stable
// uuid.UUID handles. Mutating a Plan never touches the caller's copy —
// every write path goes through Clone, giving the copy-on-write semantics
// spec §9 asks for ("mutation must clone every container on the path from
// the plan root to the modified element"). History snapshots are
// therefore safe to retain without aliasing a currently mutable
// container.
package arena

import (
	"time"

	"github.com/google/uuid"

	"github.com/arx-os/museum-editor/internal/geom"
)

// WallKind categorises a wall's structural role.
type WallKind string

const (
	WallInterior     WallKind = "interior"
	WallExterior     WallKind = "exterior"
	WallLoadBearing  WallKind = "load_bearing"
)

// LinkKind distinguishes vertical link types.
type LinkKind string

const (
	LinkStairs   LinkKind = "stairs"
	LinkElevator LinkKind = "elevator"
)

// LinkDirection constrains travel direction of a vertical link.
type LinkDirection string

const (
	LinkUp   LinkDirection = "up"
	LinkDown LinkDirection = "down"
	LinkBoth LinkDirection = "both"
)

// Room is a closed simple polygon, ≥3 vertices (spec §3).
type Room struct {
	ID       uuid.UUID
	Vertices geom.Polygon
}

// Clone returns a deep copy of the room.
func (r Room) Clone() Room {
	verts := make(geom.Polygon, len(r.Vertices))
	copy(verts, r.Vertices)
	return Room{ID: r.ID, Vertices: verts}
}

// Wall is an interior wall segment, optionally owned by a room.
type Wall struct {
	ID        uuid.UUID
	Segment   geom.Segment
	Thickness WallKind
	RoomID    *uuid.UUID // owning room, nil if free-standing
}

func (w Wall) Clone() Wall {
	clone := w
	if w.RoomID != nil {
		id := *w.RoomID
		clone.RoomID = &id
	}
	return clone
}

// Door is an opening on a wall edge or interior wall segment.
type Door struct {
	ID       uuid.UUID
	Segment  geom.Segment
	RoomA    *uuid.UUID
	RoomB    *uuid.UUID
	HostWall *uuid.UUID // nil if hosted on a room's own boundary edge
	HostRoom *uuid.UUID // room whose boundary edge hosts this door, if any
	HostEdge int        // index of the edge within HostRoom.Vertices, if HostRoom != nil
}

// Width returns the door's width, derived from its segment length.
func (d Door) Width() float64 { return d.Segment.Length() }

func (d Door) Clone() Door {
	clone := d
	if d.RoomA != nil {
		id := *d.RoomA
		clone.RoomA = &id
	}
	if d.RoomB != nil {
		id := *d.RoomB
		clone.RoomB = &id
	}
	if d.HostWall != nil {
		id := *d.HostWall
		clone.HostWall = &id
	}
	if d.HostRoom != nil {
		id := *d.HostRoom
		clone.HostRoom = &id
	}
	return clone
}

// VerticalLink is a stairs/elevator connecting two floors (spec §3, §4.6).
type VerticalLink struct {
	ID         uuid.UUID
	Kind       LinkKind
	Segment    geom.Segment
	Direction  LinkDirection
	DestFloor  uuid.UUID
	HostWall   *uuid.UUID
	HostRoom   *uuid.UUID
	HostEdge   int
	// PairID resolves spec §9's Open Question: the reciprocal link on the
	// destination floor is tracked by explicit id, not recomputed by
	// endpoint coincidence.
	PairID *uuid.UUID
}

func (l VerticalLink) Width() float64 { return l.Segment.Length() }

func (l VerticalLink) Clone() VerticalLink {
	clone := l
	if l.HostWall != nil {
		id := *l.HostWall
		clone.HostWall = &id
	}
	if l.HostRoom != nil {
		id := *l.HostRoom
		clone.HostRoom = &id
	}
	if l.PairID != nil {
		id := *l.PairID
		clone.PairID = &id
	}
	return clone
}

// Artwork is an axis-aligned rectangle placed inside a room.
type Artwork struct {
	ID       uuid.UUID
	Anchor   geom.Point // minimum corner
	W, H     float64    // grid units
	Name     string
	DocumentRef string
}

// Rect returns the artwork's rectangle as a polygon.
func (a Artwork) Rect() geom.Polygon {
	ax, ay := a.Anchor.Grid()
	return geom.RectanglePolygon(geom.NewPoint(ax, ay), geom.NewPoint(ax+a.W, ay+a.H))
}

func (a Artwork) Clone() Artwork { return a }

// Floor owns its elements exclusively (spec §3 ownership semantics).
type Floor struct {
	ID       uuid.UUID
	Name     string
	Rooms    []Room
	Walls    []Wall
	Doors    []Door
	Links    []VerticalLink
	Artworks []Artwork
}

// Clone deep-copies a floor and all its element slices.
func (f Floor) Clone() Floor {
	clone := Floor{ID: f.ID, Name: f.Name}
	clone.Rooms = make([]Room, len(f.Rooms))
	for i, r := range f.Rooms {
		clone.Rooms[i] = r.Clone()
	}
	clone.Walls = make([]Wall, len(f.Walls))
	for i, w := range f.Walls {
		clone.Walls[i] = w.Clone()
	}
	clone.Doors = make([]Door, len(f.Doors))
	for i, d := range f.Doors {
		clone.Doors[i] = d.Clone()
	}
	clone.Links = make([]VerticalLink, len(f.Links))
	for i, l := range f.Links {
		clone.Links[i] = l.Clone()
	}
	clone.Artworks = make([]Artwork, len(f.Artworks))
	for i, a := range f.Artworks {
		clone.Artworks[i] = a.Clone()
	}
	return clone
}

// RoomIndex returns the index of the room with the given id, or
// ok=false.
func (f *Floor) RoomIndex(id uuid.UUID) (int, bool) {
	for i := range f.Rooms {
		if f.Rooms[i].ID == id {
			return i, true
		}
	}
	return 0, false
}

func (f *Floor) WallIndex(id uuid.UUID) (int, bool) {
	for i := range f.Walls {
		if f.Walls[i].ID == id {
			return i, true
		}
	}
	return 0, false
}

func (f *Floor) DoorIndex(id uuid.UUID) (int, bool) {
	for i := range f.Doors {
		if f.Doors[i].ID == id {
			return i, true
		}
	}
	return 0, false
}

func (f *Floor) LinkIndex(id uuid.UUID) (int, bool) {
	for i := range f.Links {
		if f.Links[i].ID == id {
			return i, true
		}
	}
	return 0, false
}

func (f *Floor) ArtworkIndex(id uuid.UUID) (int, bool) {
	for i := range f.Artworks {
		if f.Artworks[i].ID == id {
			return i, true
		}
	}
	return 0, false
}

// Plan is an ordered sequence of floors (spec §3).
type Plan struct {
	Floors       []Floor
	CurrentFloor uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Clone deep-copies the plan.
func (p Plan) Clone() Plan {
	clone := Plan{CurrentFloor: p.CurrentFloor, CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt}
	clone.Floors = make([]Floor, len(p.Floors))
	for i, f := range p.Floors {
		clone.Floors[i] = f.Clone()
	}
	return clone
}

// FloorIndex returns the index of the floor with the given id.
func (p *Plan) FloorIndex(id uuid.UUID) (int, bool) {
	for i := range p.Floors {
		if p.Floors[i].ID == id {
			return i, true
		}
	}
	return 0, false
}

// CurrentFloorPtr returns a pointer to the current floor, or nil.
func (p *Plan) CurrentFloorPtr() *Floor {
	idx, ok := p.FloorIndex(p.CurrentFloor)
	if !ok {
		return nil
	}
	return &p.Floors[idx]
}

// NewPlan creates a plan with a single, empty floor, matching spec §3's
// invariant that at least one floor always exists.
func NewPlan(firstFloorName string) Plan {
	now := time.Now()
	floorID := uuid.New()
	return Plan{
		Floors: []Floor{{
			ID:   floorID,
			Name: firstFloorName,
		}},
		CurrentFloor: floorID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
