package interaction

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arx-os/museum-editor/internal/arena"
	"github.com/arx-os/museum-editor/internal/config"
	"github.com/arx-os/museum-editor/internal/geom"
	"github.com/arx-os/museum-editor/internal/snap"
)

func rectFloor() (arena.Floor, uuid.UUID) {
	roomID := uuid.New()
	floor := arena.Floor{
		ID: uuid.New(),
		Rooms: []arena.Room{{
			ID: roomID,
			Vertices: geom.Polygon{
				geom.NewPoint(0, 0),
				geom.NewPoint(10, 0),
				geom.NewPoint(10, 6),
				geom.NewPoint(0, 6),
			},
		}},
	}
	return floor, roomID
}

func TestBeginTool_SwitchesToolAndResetsState(t *testing.T) {
	m := New(config.Default())
	m.State = State{Kind: DrawingPolygon, Points: geom.Polygon{geom.NewPoint(0, 0)}}

	m.BeginTool(ToolRectangle)

	assert.Equal(t, ToolRectangle, m.Tool)
	assert.Equal(t, Idle, m.State.Kind)
}

func TestEscape_DiscardsInProgressState(t *testing.T) {
	m := New(config.Default())
	m.State = State{Kind: DrawingShape, Tool: ToolRectangle, Anchor: geom.NewPoint(0, 0)}

	m.Escape()

	assert.Equal(t, Idle, m.State.Kind)
	assert.False(t, m.InProgress())
}

func TestPointerDownRoom_AccumulatesVerticesAndClosesIntoRoom(t *testing.T) {
	m := New(config.Default())
	m.BeginTool(ToolRoom)
	floor := &arena.Floor{ID: uuid.New()}

	t1 := m.PointerDown(floor, nil, geom.NewPoint(0, 0), Modifiers{})
	assert.False(t, t1.Applied)
	require.Equal(t, DrawingPolygon, m.State.Kind)
	require.Len(t, m.State.Points, 1)

	m.PointerDown(floor, nil, geom.NewPoint(10, 0), Modifiers{})
	m.PointerDown(floor, nil, geom.NewPoint(10, 10), Modifiers{})
	m.PointerDown(floor, nil, geom.NewPoint(0, 10), Modifiers{})
	require.Len(t, m.State.Points, 4)

	closing := m.PointerDown(floor, nil, geom.NewPoint(0.1, 0.1), Modifiers{})
	require.True(t, closing.Applied, closing.Message)
	require.Len(t, closing.Floor.Rooms, 1)
	assert.Equal(t, Idle, m.State.Kind)
}

func TestPointerDownRoom_RejectsSelfIntersectingVertex(t *testing.T) {
	m := New(config.Default())
	m.BeginTool(ToolRoom)
	floor := &arena.Floor{ID: uuid.New()}

	m.PointerDown(floor, nil, geom.NewPoint(0, 0), Modifiers{})
	m.PointerDown(floor, nil, geom.NewPoint(10, 0), Modifiers{})
	m.PointerDown(floor, nil, geom.NewPoint(10, 10), Modifiers{})
	m.PointerDown(floor, nil, geom.NewPoint(0, 10), Modifiers{})
	require.Len(t, m.State.Points, 4)

	// This point's edge back to the last vertex crosses the chain's first
	// edge, so it must be rejected rather than appended.
	rejected := m.PointerDown(floor, nil, geom.NewPoint(5, -5), Modifiers{})
	assert.False(t, rejected.Applied)
	assert.NotEmpty(t, rejected.Message)
	require.Len(t, m.State.Points, 4)
}

func TestPointerDownShape_DrawsRectangleAndCommitsOnPointerUp(t *testing.T) {
	m := New(config.Default())
	m.BeginTool(ToolRectangle)
	floor := &arena.Floor{ID: uuid.New()}

	m.PointerDown(floor, nil, geom.NewPoint(0, 0), Modifiers{})
	require.Equal(t, DrawingShape, m.State.Kind)

	m.PointerMove(geom.NewPoint(5, 4))
	assert.Equal(t, geom.NewPoint(5, 4), m.State.Current)

	out := m.PointerUp(floor, nil, geom.NewPoint(5, 4))
	require.True(t, out.Applied, out.Message)
	require.Len(t, out.Floor.Rooms, 1)
	assert.Equal(t, Idle, m.State.Kind)
}

func TestPointerDownDoor_SnapsToWallEdgeAndCommitsDoor(t *testing.T) {
	m := New(config.Default())
	m.BeginTool(ToolDoor)
	floor, _ := rectFloor()
	idx := snap.BuildIndex(&floor)

	down := m.PointerDown(&floor, idx, geom.NewPoint(5, 0), Modifiers{})
	assert.False(t, down.Applied)
	require.Equal(t, PlacingOnWall, m.State.Kind)
	assert.Equal(t, snap.KindWallEdge, m.State.WallSnap.Kind)

	m.PointerMove(geom.NewPoint(7, 0))
	out := m.PointerUp(&floor, nil, geom.NewPoint(7, 0))
	require.True(t, out.Applied, out.Message)
	require.Len(t, out.Floor.Doors, 1)
	assert.Equal(t, Idle, m.State.Kind)
}

func TestPointerDownDoor_RejectsWhenNoWallNearby(t *testing.T) {
	m := New(config.Default())
	m.BeginTool(ToolDoor)
	floor, _ := rectFloor()
	idx := snap.BuildIndex(&floor)

	out := m.PointerDown(&floor, idx, geom.NewPoint(50, 50), Modifiers{})
	assert.False(t, out.Applied)
	assert.NotEmpty(t, out.Message)
	assert.Equal(t, Idle, m.State.Kind)
}

func TestPointerDownSelect_HitsRoomVertexAndDragsIt(t *testing.T) {
	m := New(config.Default())
	m.BeginTool(ToolSelect)
	floor, roomID := rectFloor()

	down := m.PointerDown(&floor, nil, geom.NewPoint(0, 0), Modifiers{})
	assert.False(t, down.Applied)
	require.Equal(t, DraggingVertex, m.State.Kind)
	assert.Equal(t, roomID, m.State.RoomID)
	assert.Equal(t, 0, m.State.VertexIndex)
	require.Equal(t, SelectionElement, m.Selection.Kind)
	assert.Equal(t, roomID, m.Selection.ElementID())

	out := m.PointerUp(&floor, nil, geom.NewPoint(-1, -1))
	require.True(t, out.Applied, out.Message)
	assert.Equal(t, Idle, m.State.Kind)
}

func TestPointerDownSelect_EmptySpotStartsMarqueeAndSelectsWholeRoom(t *testing.T) {
	m := New(config.Default())
	m.BeginTool(ToolSelect)
	floor, roomID := rectFloor()

	down := m.PointerDown(&floor, nil, geom.NewPoint(-2, -2), Modifiers{})
	assert.False(t, down.Applied)
	require.Equal(t, Marquee, m.State.Kind)

	out := m.PointerUp(&floor, nil, geom.NewPoint(12, 8))
	assert.False(t, out.Applied)
	require.Equal(t, SelectionElement, m.Selection.Kind)
	require.Len(t, m.Selection.Elements, 1)
	assert.Equal(t, ElementRoom, m.Selection.ElementKind())
	assert.Equal(t, roomID, m.Selection.ElementID())
	assert.Equal(t, Idle, m.State.Kind)
}

// TestPointerDownSelect_MarqueeSelectsEveryElementInBox exercises spec
// §4.5's multi-element marquee: a box spanning two separate rooms picks
// both, not just the first one found.
func TestPointerDownSelect_MarqueeSelectsEveryElementInBox(t *testing.T) {
	m := New(config.Default())
	m.BeginTool(ToolSelect)
	roomA := uuid.New()
	roomB := uuid.New()
	floor := arena.Floor{
		ID: uuid.New(),
		Rooms: []arena.Room{
			{ID: roomA, Vertices: geom.Polygon{geom.NewPoint(0, 0), geom.NewPoint(4, 0), geom.NewPoint(4, 4), geom.NewPoint(0, 4)}},
			{ID: roomB, Vertices: geom.Polygon{geom.NewPoint(10, 0), geom.NewPoint(14, 0), geom.NewPoint(14, 4), geom.NewPoint(10, 4)}},
		},
	}

	down := m.PointerDown(&floor, nil, geom.NewPoint(-1, -1), Modifiers{})
	assert.False(t, down.Applied)
	require.Equal(t, Marquee, m.State.Kind)

	out := m.PointerUp(&floor, nil, geom.NewPoint(15, 5))
	assert.False(t, out.Applied)
	require.Equal(t, SelectionElement, m.Selection.Kind)
	require.Len(t, m.Selection.Elements, 2)
	ids := []uuid.UUID{m.Selection.Elements[0].ID, m.Selection.Elements[1].ID}
	assert.Contains(t, ids, roomA)
	assert.Contains(t, ids, roomB)
}

func TestPointerDownSelect_RoomBodyDragTranslatesRoom(t *testing.T) {
	m := New(config.Default())
	m.BeginTool(ToolSelect)
	floor, roomID := rectFloor()

	down := m.PointerDown(&floor, nil, geom.NewPoint(5, 3), Modifiers{})
	assert.False(t, down.Applied)
	require.Equal(t, DraggingShape, m.State.Kind)
	assert.Equal(t, roomID, m.State.ElementID)

	out := m.PointerUp(&floor, nil, geom.NewPoint(6, 3))
	require.True(t, out.Applied, out.Message)
	assert.Equal(t, Idle, m.State.Kind)
}

func TestDeleteSelection_RemovesSelectedRoom(t *testing.T) {
	m := New(config.Default())
	floor, roomID := rectFloor()
	plan := arena.Plan{Floors: []arena.Floor{floor}, CurrentFloor: floor.ID}
	m.Selection = singleSelection(roomID, ElementRoom)

	out := m.DeleteSelection(plan, floor.ID)

	require.True(t, out.Applied, out.Message)
	assert.Empty(t, out.Floor.Rooms)
	assert.Equal(t, SelectionNone, m.Selection.Kind)
}

// TestDeleteSelection_RemovesEveryElementInOneCommit exercises spec §5's
// "single historied deletion" for a marquee spanning several elements: an
// artwork and a door both vanish from one DeleteSelection call.
func TestDeleteSelection_RemovesEveryElementInOneCommit(t *testing.T) {
	m := New(config.Default())
	floor, _ := rectFloor()
	artworkID := uuid.New()
	doorID := uuid.New()
	floor.Artworks = []arena.Artwork{{ID: artworkID, Anchor: geom.NewPoint(1, 1), W: 2, H: 1, Name: "test"}}
	floor.Doors = []arena.Door{{ID: doorID, Segment: geom.Segment{A: geom.NewPoint(4, 0), B: geom.NewPoint(6, 0)}}}
	plan := arena.Plan{Floors: []arena.Floor{floor}, CurrentFloor: floor.ID}
	m.Selection = Selection{Kind: SelectionElement, Elements: []SelectedElement{
		{ID: artworkID, Kind: ElementArtwork},
		{ID: doorID, Kind: ElementDoor},
	}}

	out := m.DeleteSelection(plan, floor.ID)

	require.True(t, out.Applied, out.Message)
	assert.Empty(t, out.Floor.Artworks)
	assert.Empty(t, out.Floor.Doors)
	assert.Equal(t, SelectionNone, m.Selection.Kind)
}

func TestDeleteSelection_NoSelectionIsRejected(t *testing.T) {
	m := New(config.Default())
	floor, _ := rectFloor()
	plan := arena.Plan{Floors: []arena.Floor{floor}, CurrentFloor: floor.ID}

	out := m.DeleteSelection(plan, floor.ID)

	assert.False(t, out.Applied)
	assert.NotEmpty(t, out.Message)
}

func TestDeleteSelection_RemovesSelectedArtwork(t *testing.T) {
	m := New(config.Default())
	floor, _ := rectFloor()
	artworkID := uuid.New()
	floor.Artworks = []arena.Artwork{{ID: artworkID, Anchor: geom.NewPoint(1, 1), W: 2, H: 1, Name: "test"}}
	plan := arena.Plan{Floors: []arena.Floor{floor}, CurrentFloor: floor.ID}
	m.Selection = singleSelection(artworkID, ElementArtwork)

	out := m.DeleteSelection(plan, floor.ID)

	require.True(t, out.Applied, out.Message)
	assert.Empty(t, out.Floor.Artworks)
}
