package editor

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arx-os/museum-editor/internal/arena"
	"github.com/arx-os/museum-editor/internal/config"
	"github.com/arx-os/museum-editor/internal/export"
	"github.com/arx-os/museum-editor/internal/floors"
	"github.com/arx-os/museum-editor/internal/geom"
	"github.com/arx-os/museum-editor/internal/interaction"
)

func newKernel(t *testing.T) *Kernel {
	t.Helper()
	k, err := New(config.Default(), nil)
	require.NoError(t, err)
	t.Cleanup(k.Close)
	return k
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Grid.UnitMetres = 0

	_, err := New(cfg, nil)
	assert.Error(t, err)
}

func TestNew_SeedsSingleFloorAndInitialCheckpoint(t *testing.T) {
	k := newKernel(t)

	require.Len(t, k.Plan.Floors, 1)
	assert.Equal(t, 1, k.History.Len())
	assert.Equal(t, k.Plan.Floors[0].ID, k.Plan.CurrentFloor)
}

func TestKernel_DrawRectangleRoomCommitsThroughHistory(t *testing.T) {
	k := newKernel(t)

	k.BeginTool(interaction.ToolRectangle)
	down := k.PointerDown(geom.NewPoint(0, 0), interaction.Modifiers{})
	assert.False(t, down.Applied)

	out := k.PointerUp(geom.NewPoint(5, 4))
	require.True(t, out.Applied, out.Message)

	floor := k.Plan.CurrentFloorPtr()
	require.Len(t, floor.Rooms, 1)
	assert.Equal(t, 2, k.History.Len())
}

func TestKernel_UndoRedoRestoresPriorPlan(t *testing.T) {
	k := newKernel(t)
	k.BeginTool(interaction.ToolRectangle)
	k.PointerDown(geom.NewPoint(0, 0), interaction.Modifiers{})
	out := k.PointerUp(geom.NewPoint(5, 4))
	require.True(t, out.Applied, out.Message)

	require.True(t, k.Undo())
	assert.Empty(t, k.Plan.CurrentFloorPtr().Rooms)

	require.True(t, k.Redo())
	assert.Len(t, k.Plan.CurrentFloorPtr().Rooms, 1)
}

func TestKernel_DeleteSelectionRemovesRoom(t *testing.T) {
	k := newKernel(t)
	k.BeginTool(interaction.ToolRectangle)
	k.PointerDown(geom.NewPoint(0, 0), interaction.Modifiers{})
	out := k.PointerUp(geom.NewPoint(5, 4))
	require.True(t, out.Applied, out.Message)

	roomID := k.Plan.CurrentFloorPtr().Rooms[0].ID
	k.Machine.Selection = interaction.Selection{
		Kind:     interaction.SelectionElement,
		Elements: []interaction.SelectedElement{{ID: roomID, Kind: interaction.ElementRoom}},
	}

	del := k.DeleteSelection()
	require.True(t, del.Applied, del.Message)
	assert.Empty(t, k.Plan.CurrentFloorPtr().Rooms)
}

func TestKernel_EscapeDiscardsInProgressDrawAndLeavesPlanUntouched(t *testing.T) {
	k := newKernel(t)
	before := k.Plan

	k.BeginTool(interaction.ToolRectangle)
	k.PointerDown(geom.NewPoint(0, 0), interaction.Modifiers{})
	k.PointerMove(geom.NewPoint(3, 3))
	k.Escape()

	assert.Equal(t, interaction.Idle, k.Machine.State.Kind)
	assert.Equal(t, before, k.Plan)
}

func TestKernel_AddFloorSwitchesCurrentFloor(t *testing.T) {
	k := newKernel(t)

	k.AddFloor(floors.Above, "Floor 2")

	require.Len(t, k.Plan.Floors, 2)
	assert.Equal(t, k.Plan.Floors[1].ID, k.Plan.CurrentFloor)
	assert.Equal(t, "Floor 2", k.Plan.Floors[1].Name)
}

func TestKernel_RenameFloor(t *testing.T) {
	k := newKernel(t)
	id := k.Plan.Floors[0].ID

	ok := k.RenameFloor(id, "Lobby")

	require.True(t, ok)
	assert.Equal(t, "Lobby", k.Plan.CurrentFloorPtr().Name)
}

func TestKernel_UpdateElementRenamesArtwork(t *testing.T) {
	k := newKernel(t)
	artworkID := uuid.New()
	floor := k.Plan.Floors[0]
	floor.Artworks = []arena.Artwork{{ID: artworkID, Anchor: geom.NewPoint(1, 1), W: 1, H: 1, Name: "untitled"}}
	k.Plan.Floors[0] = floor

	name := "The Starry Night"
	out := k.UpdateElement(artworkID, ElementPatch{Name: &name})

	require.True(t, out.Applied, out.Message)
	assert.Equal(t, "The Starry Night", k.Plan.CurrentFloorPtr().Artworks[0].Name)
}

func TestKernel_UpdateElementReportsMissingElement(t *testing.T) {
	k := newKernel(t)
	name := "x"

	out := k.UpdateElement(uuid.New(), ElementPatch{Name: &name})

	assert.False(t, out.Applied)
	assert.NotEmpty(t, out.Message)
}

func TestKernel_ExportProducesOnePlanRowPerFloor(t *testing.T) {
	k := newKernel(t)
	k.AddFloor(floors.Above, "Floor 2")

	doc := k.Export(export.Options{MuseumID: "museum-1", FormatVersion: "1", ExportedAt: time.Unix(0, 0)})

	assert.Len(t, doc.PlanEditor.Plans, 2)
	assert.Equal(t, 2, doc.Metadata.TotalFloors)
}
