package ops

import (
	"github.com/google/uuid"

	"github.com/arx-os/museum-editor/internal/arena"
	"github.com/arx-os/museum-editor/internal/geom"
	"github.com/arx-os/museum-editor/internal/snap"
	"github.com/arx-os/museum-editor/internal/validation"
)

// CommitDoor commits a door drag along a wall snap host (spec §4.5):
// the element is centred on the projected position with width equal to
// the drag length.
func (e *Engine) CommitDoor(floor arena.Floor, host snap.Carrier, hostSegment geom.Segment, dragStart, dragEnd geom.Point) Outcome {
	width := dragStart.DistanceTo(dragEnd)
	center, ok := snap.ProjectOnWallSegment(dragEnd, hostSegment, width, e.Config.Constraints.MinClearance)
	if !ok {
		return rejectOutcome(validation.Result{Valid: false, Severity: validation.SeverityError, Message: "host wall too short for this door"})
	}
	segment := centredSegment(center, hostSegment, width)

	door := arena.Door{ID: newID(), Segment: segment}
	applyHostToDoor(&door, host)

	res := validation.ValidateDoor(e.Config.Constraints, &floor, door)
	if res.Blocks(validation.Strict) {
		return rejectOutcome(res)
	}
	floor.Doors = append(floor.Doors, door)
	return acceptOutcome(floor)
}

// CommitVerticalLink commits a stairs/elevator drag the same way as a
// door, additionally recording the destination floor and travel
// direction; pairing with the reciprocal link on the destination floor
// is the multi-floor manager's responsibility (spec §4.6).
func (e *Engine) CommitVerticalLink(floor arena.Floor, plan arena.Plan, kind arena.LinkKind, direction arena.LinkDirection, destFloor uuid.UUID, host snap.Carrier, hostSegment geom.Segment, dragStart, dragEnd geom.Point) Outcome {
	width := dragStart.DistanceTo(dragEnd)
	center, ok := snap.ProjectOnWallSegment(dragEnd, hostSegment, width, e.Config.Constraints.MinClearance)
	if !ok {
		return rejectOutcome(validation.Result{Valid: false, Severity: validation.SeverityError, Message: "host wall too short for this link"})
	}
	segment := centredSegment(center, hostSegment, width)

	link := arena.VerticalLink{ID: newID(), Kind: kind, Direction: direction, Segment: segment, DestFloor: destFloor}
	applyHostToLink(&link, host)

	res := validation.ValidateVerticalLink(e.Config.Constraints, &floor, &plan, floor.ID, link)
	if res.Blocks(validation.Strict) {
		return rejectOutcome(res)
	}
	floor.Links = append(floor.Links, link)
	return acceptOutcome(floor)
}

func centredSegment(center geom.Point, host geom.Segment, width float64) geom.Segment {
	_, t := geom.ProjectOnSegment(center, host.A, host.B)
	halfWidthT := (width / 2) / host.Length()
	a := host.PointAt(clamp01(t - halfWidthT))
	b := host.PointAt(clamp01(t + halfWidthT))
	return geom.Segment{A: a, B: b}
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

func applyHostToDoor(d *arena.Door, host snap.Carrier) {
	if host.RoomID != nil {
		id := *host.RoomID
		d.HostRoom = &id
		d.HostEdge = host.EdgeIdx
	}
	if host.WallID != nil {
		id := *host.WallID
		d.HostWall = &id
	}
}

func applyHostToLink(l *arena.VerticalLink, host snap.Carrier) {
	if host.RoomID != nil {
		id := *host.RoomID
		l.HostRoom = &id
		l.HostEdge = host.EdgeIdx
	}
	if host.WallID != nil {
		id := *host.WallID
		l.HostWall = &id
	}
}
