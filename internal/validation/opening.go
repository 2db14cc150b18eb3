package validation

import (
	"github.com/google/uuid"

	"github.com/arx-os/museum-editor/internal/arena"
	"github.com/arx-os/museum-editor/internal/config"
	"github.com/arx-os/museum-editor/internal/geom"
)

// ValidateDoor checks a candidate door segment: width bounds, colinear
// containment on an existing host, and non-overlap with other
// doors/links on the same host (spec §4.2).
func ValidateDoor(cfg config.ConstraintsConfig, floor *arena.Floor, candidate arena.Door) Result {
	countCall("door")
	width := candidate.Width()
	if width < cfg.MinDoorWidth || width > cfg.MaxDoorWidth {
		return fail(SeverityError, "door width outside configured bounds")
	}
	host, found := FindHost(floor, candidate.Segment)
	if !found {
		return fail(SeverityError, "door does not sit on a room wall edge or wall segment",
			"snap the door to a wall before committing")
	}
	if overlapsHostedOpening(floor, candidate.ID, host, candidate.Segment) {
		return fail(SeverityError, "door overlaps another door or link on the same host")
	}
	return ok()
}

// ValidateVerticalLink checks a candidate vertical link: everything
// ValidateDoor checks, plus a known, distinct destination floor.
func ValidateVerticalLink(cfg config.ConstraintsConfig, floor *arena.Floor, plan *arena.Plan, hostFloorID uuid.UUID, candidate arena.VerticalLink) Result {
	countCall("vertical_link")
	width := candidate.Width()
	if width < cfg.MinLinkWidth || width > cfg.MaxLinkWidth {
		return fail(SeverityError, "vertical link width outside configured bounds")
	}
	host, found := FindHost(floor, candidate.Segment)
	if !found {
		return fail(SeverityError, "vertical link does not sit on a room wall edge or wall segment")
	}
	if overlapsHostedOpening(floor, candidate.ID, host, candidate.Segment) {
		return fail(SeverityError, "vertical link overlaps another door or link on the same host")
	}
	if candidate.DestFloor == hostFloorID {
		return fail(SeverityError, "vertical link destination must differ from its host floor")
	}
	if _, ok := plan.FloorIndex(candidate.DestFloor); !ok {
		return fail(SeverityError, "vertical link destination floor does not exist")
	}
	return ok()
}

// overlapsHostedOpening reports whether candidate's segment overlaps any
// other door or link hosted on the same wall/room-edge.
func overlapsHostedOpening(floor *arena.Floor, excludeID uuid.UUID, host HostSegment, candidate geom.Segment) bool {
	sameHost := func(otherHost HostSegment) bool {
		if host.RoomID != nil && otherHost.RoomID != nil {
			return *host.RoomID == *otherHost.RoomID && host.EdgeIdx == otherHost.EdgeIdx
		}
		if host.WallID != nil && otherHost.WallID != nil {
			return *host.WallID == *otherHost.WallID
		}
		return false
	}

	for _, d := range floor.Doors {
		if d.ID == excludeID {
			continue
		}
		otherHost, found := FindHost(floor, d.Segment)
		if !found || !sameHost(otherHost) {
			continue
		}
		if geom.SegmentsOverlap(candidate.A, candidate.B, d.Segment.A, d.Segment.B) {
			return true
		}
	}
	for _, l := range floor.Links {
		if l.ID == excludeID {
			continue
		}
		otherHost, found := FindHost(floor, l.Segment)
		if !found || !sameHost(otherHost) {
			continue
		}
		if geom.SegmentsOverlap(candidate.A, candidate.B, l.Segment.A, l.Segment.B) {
			return true
		}
	}
	return false
}

// ValidateWall checks a candidate interior wall: minimum length, both
// endpoints within the owning room, and no proper crossing with another
// wall or an opening segment.
func ValidateWall(cfg config.ConstraintsConfig, floor *arena.Floor, candidate arena.Wall) Result {
	countCall("wall")
	if candidate.Segment.Length() < cfg.MinWallLength {
		return fail(SeverityError, "wall length below configured minimum")
	}
	if candidate.RoomID != nil {
		idx, found := floor.RoomIndex(*candidate.RoomID)
		if !found {
			return fail(SeverityError, "wall references a room that does not exist")
		}
		room := floor.Rooms[idx]
		if !geom.PointInPolygon(candidate.Segment.A, room.Vertices) ||
			!geom.PointInPolygon(candidate.Segment.B, room.Vertices) {
			return fail(SeverityError, "wall endpoints must lie inside or on the boundary of the owning room")
		}
	}
	for _, other := range floor.Walls {
		if other.ID == candidate.ID {
			continue
		}
		if geom.SegmentsIntersect(candidate.Segment.A, candidate.Segment.B, other.Segment.A, other.Segment.B) {
			return fail(SeverityError, "wall crosses another wall")
		}
	}
	for _, d := range floor.Doors {
		if geom.SegmentsIntersect(candidate.Segment.A, candidate.Segment.B, d.Segment.A, d.Segment.B) {
			return fail(SeverityError, "wall crosses a door")
		}
	}
	for _, l := range floor.Links {
		if geom.SegmentsIntersect(candidate.Segment.A, candidate.Segment.B, l.Segment.A, l.Segment.B) {
			return fail(SeverityError, "wall crosses a vertical link")
		}
	}
	return ok()
}
