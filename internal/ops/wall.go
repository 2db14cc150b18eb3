package ops

import (
	"github.com/arx-os/museum-editor/internal/arena"
	"github.com/arx-os/museum-editor/internal/geom"
	"github.com/arx-os/museum-editor/internal/validation"
)

// CommitWall commits an interior wall between start and end (spec
// §4.5): both ends are expected to already be snapped by the caller via
// the snap service; the wall is automatically assigned to the room
// whose polygon contains its midpoint.
func (e *Engine) CommitWall(floor arena.Floor, start, end geom.Point) Outcome {
	segment := geom.Segment{A: start, B: end}
	wall := arena.Wall{ID: newID(), Segment: segment, Thickness: arena.WallInterior}

	midX, midY := segment.PointAt(0.5).Grid()
	mid := geom.NewPoint(midX, midY)
	for i := range floor.Rooms {
		if geom.PointInPolygon(mid, floor.Rooms[i].Vertices) {
			id := floor.Rooms[i].ID
			wall.RoomID = &id
			break
		}
	}

	res := validation.ValidateWall(e.Config.Constraints, &floor, wall)
	if res.Blocks(validation.Strict) {
		return rejectOutcome(res)
	}
	floor.Walls = append(floor.Walls, wall)
	return acceptOutcome(floor)
}
