package floors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arx-os/museum-editor/internal/arena"
	"github.com/arx-os/museum-editor/internal/geom"
)

func TestAddFloor_AboveAppendsAndSwitchesCurrent(t *testing.T) {
	plan := arena.NewPlan("Ground")
	next := AddFloor(plan, Above, "First")
	require.Len(t, next.Floors, 2)
	assert.Equal(t, "First", next.Floors[1].Name)
	assert.Equal(t, next.Floors[1].ID, next.CurrentFloor)
}

func TestAddFloor_BelowPrepends(t *testing.T) {
	plan := arena.NewPlan("Ground")
	next := AddFloor(plan, Below, "Basement")
	require.Len(t, next.Floors, 2)
	assert.Equal(t, "Basement", next.Floors[0].Name)
}

func TestDeleteFloor_RefusesLastFloor(t *testing.T) {
	plan := arena.NewPlan("Ground")
	res := DeleteFloor(plan, plan.Floors[0].ID)
	assert.True(t, res.Rejected)
}

func TestMoveFloorUp_SwapsWithSuccessor(t *testing.T) {
	plan := arena.NewPlan("Ground")
	plan = AddFloor(plan, Above, "First")
	groundID := plan.Floors[0].ID

	next, ok := MoveFloorUp(plan, groundID)
	require.True(t, ok)
	assert.Equal(t, groundID, next.Floors[1].ID)
	assert.Equal(t, "First", next.Floors[0].Name)
}

func TestMoveFloorUp_FailsAtTop(t *testing.T) {
	plan := arena.NewPlan("Ground")
	_, ok := MoveFloorUp(plan, plan.Floors[0].ID)
	assert.False(t, ok)
}

func TestRenameFloor_UpdatesName(t *testing.T) {
	plan := arena.NewPlan("Ground")
	next, ok := RenameFloor(plan, plan.Floors[0].ID, "Lobby")
	require.True(t, ok)
	assert.Equal(t, "Lobby", next.Floors[0].Name)
}

func TestPairVerticalLinks_InstallsReciprocalWithInvertedDirection(t *testing.T) {
	plan := arena.NewPlan("Ground")
	plan = AddFloor(plan, Above, "First")
	groundID, firstID := plan.Floors[0].ID, plan.Floors[1].ID

	link := arena.VerticalLink{
		Kind:      arena.LinkElevator,
		Direction: arena.LinkUp,
		DestFloor: firstID,
		Segment:   geom.Segment{A: geom.NewPoint(0, 0), B: geom.NewPoint(2, 0)},
	}
	next, ok := PairVerticalLinks(plan, groundID, link)
	require.True(t, ok)

	groundIdx, _ := next.FloorIndex(groundID)
	firstIdx, _ := next.FloorIndex(firstID)
	require.Len(t, next.Floors[groundIdx].Links, 1)
	require.Len(t, next.Floors[firstIdx].Links, 1)

	hostLink := next.Floors[groundIdx].Links[0]
	pairLink := next.Floors[firstIdx].Links[0]
	assert.Equal(t, arena.LinkDown, pairLink.Direction)
	assert.Equal(t, groundID, pairLink.DestFloor)
	require.NotNil(t, hostLink.PairID)
	assert.Equal(t, pairLink.ID, *hostLink.PairID)
	require.NotNil(t, pairLink.PairID)
	assert.Equal(t, hostLink.ID, *pairLink.PairID)
}

func TestDeleteVerticalLink_RemovesBothSides(t *testing.T) {
	plan := arena.NewPlan("Ground")
	plan = AddFloor(plan, Above, "First")
	groundID, firstID := plan.Floors[0].ID, plan.Floors[1].ID

	link := arena.VerticalLink{
		Kind: arena.LinkStairs, Direction: arena.LinkBoth, DestFloor: firstID,
		Segment: geom.Segment{A: geom.NewPoint(0, 0), B: geom.NewPoint(2, 0)},
	}
	plan, ok := PairVerticalLinks(plan, groundID, link)
	require.True(t, ok)

	groundIdx, _ := plan.FloorIndex(groundID)
	hostLinkID := plan.Floors[groundIdx].Links[0].ID

	res := DeleteVerticalLink(plan, groundID, hostLinkID)
	require.False(t, res.Rejected)
	gIdx, _ := res.Plan.FloorIndex(groundID)
	fIdx, _ := res.Plan.FloorIndex(firstID)
	assert.Empty(t, res.Plan.Floors[gIdx].Links)
	assert.Empty(t, res.Plan.Floors[fIdx].Links)
}
