package cascade

import (
	"github.com/google/uuid"

	"github.com/arx-os/museum-editor/internal/arena"
	"github.com/arx-os/museum-editor/internal/geom"
)

// WallTranslated moves a free-standing wall's whole body by delta,
// translating every door or vertical link hosted on it by the same
// amount (spec §4.5: "a drag on a room or wall body translates it",
// mirroring RoomTranslated's dependent-translation shape for the wall
// carrier).
func WallTranslated(floor arena.Floor, wallID uuid.UUID, delta geom.Vector) Result {
	idx, found := floor.WallIndex(wallID)
	if !found {
		return rejected("wall not found")
	}
	next := floor.Clone()
	wall := &next.Walls[idx]
	wall.Segment.A = wall.Segment.A.Add(delta)
	wall.Segment.B = wall.Segment.B.Add(delta)

	for di := range next.Doors {
		if next.Doors[di].HostWall != nil && *next.Doors[di].HostWall == wallID {
			next.Doors[di].Segment.A = next.Doors[di].Segment.A.Add(delta)
			next.Doors[di].Segment.B = next.Doors[di].Segment.B.Add(delta)
		}
	}
	for li := range next.Links {
		if next.Links[li].HostWall != nil && *next.Links[li].HostWall == wallID {
			next.Links[li].Segment.A = next.Links[li].Segment.A.Add(delta)
			next.Links[li].Segment.B = next.Links[li].Segment.B.Add(delta)
		}
	}

	return Result{Floor: next}
}

// WallDeleted removes an interior wall and every door or vertical link
// hosted on it, mirroring RoomDeleted's dependent-removal shape for the
// other carrier type a door/link can sit on (spec §4.4's carrier-delete
// rule, generalised from room boundaries to free-standing walls).
func WallDeleted(floor arena.Floor, wallID uuid.UUID) Result {
	idx, found := floor.WallIndex(wallID)
	if !found {
		return rejected("wall not found")
	}
	next := floor.Clone()
	next.Walls = append(next.Walls[:idx], next.Walls[idx+1:]...)

	next.Doors = filterDoors(next.Doors, func(d arena.Door) bool {
		return d.HostWall == nil || *d.HostWall != wallID
	})
	next.Links = filterLinks(next.Links, func(l arena.VerticalLink) bool {
		return l.HostWall == nil || *l.HostWall != wallID
	})

	return Result{Floor: next}
}
