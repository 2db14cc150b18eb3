package validation

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arx-os/museum-editor/internal/arena"
	"github.com/arx-os/museum-editor/internal/config"
	"github.com/arx-os/museum-editor/internal/geom"
)

func roomFloor() (*arena.Floor, arena.Room) {
	room := arena.Room{
		ID:       uuid.New(),
		Vertices: geom.RectanglePolygon(geom.NewPoint(0, 0), geom.NewPoint(10, 6)),
	}
	return &arena.Floor{ID: uuid.New(), Rooms: []arena.Room{room}}, room
}

func TestValidateDoor_RejectsBadWidth(t *testing.T) {
	cfg := config.Default().Constraints
	floor, room := roomFloor()
	door := arena.Door{
		ID:      uuid.New(),
		Segment: geom.Segment{A: geom.NewPoint(2, 0), B: geom.NewPoint(2.1, 0)},
	}
	_ = room
	res := ValidateDoor(cfg, floor, door)
	require.False(t, res.Valid)
	assert.Equal(t, SeverityError, res.Severity)
}

func TestValidateDoor_AcceptsHostedOpening(t *testing.T) {
	cfg := config.Default().Constraints
	floor, _ := roomFloor()
	door := arena.Door{
		ID:      uuid.New(),
		Segment: geom.Segment{A: geom.NewPoint(2, 0), B: geom.NewPoint(3, 0)},
	}
	res := ValidateDoor(cfg, floor, door)
	assert.True(t, res.Valid)
}

func TestValidateDoor_RejectsUnhostedSegment(t *testing.T) {
	cfg := config.Default().Constraints
	floor, _ := roomFloor()
	door := arena.Door{
		ID:      uuid.New(),
		Segment: geom.Segment{A: geom.NewPoint(20, 20), B: geom.NewPoint(21, 20)},
	}
	res := ValidateDoor(cfg, floor, door)
	require.False(t, res.Valid)
}

func TestValidateDoor_RejectsOverlapWithExistingDoor(t *testing.T) {
	cfg := config.Default().Constraints
	floor, _ := roomFloor()
	floor.Doors = append(floor.Doors, arena.Door{
		ID:      uuid.New(),
		Segment: geom.Segment{A: geom.NewPoint(2, 0), B: geom.NewPoint(3, 0)},
	})
	candidate := arena.Door{
		ID:      uuid.New(),
		Segment: geom.Segment{A: geom.NewPoint(2.5, 0), B: geom.NewPoint(3.5, 0)},
	}
	res := ValidateDoor(cfg, floor, candidate)
	require.False(t, res.Valid)
	assert.Equal(t, SeverityError, res.Severity)
}

func TestValidateVerticalLink_RejectsSelfFloorDestination(t *testing.T) {
	cfg := config.Default().Constraints
	floor, _ := roomFloor()
	plan := &arena.Plan{Floors: []arena.Floor{*floor}}
	link := arena.VerticalLink{
		ID:        uuid.New(),
		Kind:      arena.LinkStairs,
		Segment:   geom.Segment{A: geom.NewPoint(2, 0), B: geom.NewPoint(4, 0)},
		DestFloor: floor.ID,
	}
	res := ValidateVerticalLink(cfg, floor, plan, floor.ID, link)
	require.False(t, res.Valid)
}

func TestValidateVerticalLink_RejectsUnknownDestination(t *testing.T) {
	cfg := config.Default().Constraints
	floor, _ := roomFloor()
	plan := &arena.Plan{Floors: []arena.Floor{*floor}}
	link := arena.VerticalLink{
		ID:        uuid.New(),
		Kind:      arena.LinkElevator,
		Segment:   geom.Segment{A: geom.NewPoint(2, 0), B: geom.NewPoint(4, 0)},
		DestFloor: uuid.New(),
	}
	res := ValidateVerticalLink(cfg, floor, plan, floor.ID, link)
	require.False(t, res.Valid)
}

func TestValidateVerticalLink_AcceptsValidLink(t *testing.T) {
	cfg := config.Default().Constraints
	floor, _ := roomFloor()
	other := arena.Floor{ID: uuid.New()}
	plan := &arena.Plan{Floors: []arena.Floor{*floor, other}}
	link := arena.VerticalLink{
		ID:        uuid.New(),
		Kind:      arena.LinkElevator,
		Segment:   geom.Segment{A: geom.NewPoint(2, 0), B: geom.NewPoint(4, 0)},
		DestFloor: other.ID,
	}
	res := ValidateVerticalLink(cfg, floor, plan, floor.ID, link)
	assert.True(t, res.Valid)
}

func TestValidateWall_RejectsTooShort(t *testing.T) {
	cfg := config.Default().Constraints
	floor, _ := roomFloor()
	wall := arena.Wall{
		ID:      uuid.New(),
		Segment: geom.Segment{A: geom.NewPoint(2, 2), B: geom.NewPoint(2.2, 2)},
	}
	res := ValidateWall(cfg, floor, wall)
	require.False(t, res.Valid)
}

func TestValidateWall_RejectsCrossingAnotherWall(t *testing.T) {
	cfg := config.Default().Constraints
	floor, _ := roomFloor()
	floor.Walls = append(floor.Walls, arena.Wall{
		ID:      uuid.New(),
		Segment: geom.Segment{A: geom.NewPoint(1, 0), B: geom.NewPoint(1, 6)},
	})
	crossing := arena.Wall{
		ID:      uuid.New(),
		Segment: geom.Segment{A: geom.NewPoint(0, 3), B: geom.NewPoint(2, 3)},
	}
	res := ValidateWall(cfg, floor, crossing)
	require.False(t, res.Valid)
}

func TestValidateWall_AcceptsInteriorPartition(t *testing.T) {
	cfg := config.Default().Constraints
	floor, room := roomFloor()
	wall := arena.Wall{
		ID:      uuid.New(),
		Segment: geom.Segment{A: geom.NewPoint(5, 0), B: geom.NewPoint(5, 6)},
		RoomID:  &room.ID,
	}
	res := ValidateWall(cfg, floor, wall)
	assert.True(t, res.Valid)
}
