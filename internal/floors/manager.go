// Package floors implements the editor's multi-floor manager (spec
// §4.6): adding, deleting, and reordering floors, and pairing vertical
// links across floors. Deletion defers to internal/cascade for the
// dependent-element cleanup; this package owns only plan-level
// structure (ordering, current-floor tracking, link pairing), grounded
// on the teacher's cross-floor Wall/Opening reference bookkeeping in
// core/topology/structures.go.
package floors

import (
	"github.com/google/uuid"

	"github.com/arx-os/museum-editor/internal/arena"
	"github.com/arx-os/museum-editor/internal/cascade"
)

// Direction selects where a new floor is inserted relative to the
// current stack (spec §4.6: "above (next integer index) or below (next
// negative index)").
type Direction int

const (
	Above Direction = iota
	Below
)

// AddFloor inserts a new floor above or below the current stack and
// switches to it.
func AddFloor(plan arena.Plan, direction Direction, name string) arena.Plan {
	next := plan.Clone()
	floor := arena.Floor{ID: uuid.New(), Name: name}
	switch direction {
	case Above:
		next.Floors = append(next.Floors, floor)
	case Below:
		next.Floors = append([]arena.Floor{floor}, next.Floors...)
	}
	next.CurrentFloor = floor.ID
	return next
}

// DeleteFloor removes floor id, refusing when it is the only floor
// remaining, and runs the cascade cleanup for dangling vertical links
// on every other floor (spec §4.4, §4.6).
func DeleteFloor(plan arena.Plan, id uuid.UUID) cascade.PlanResult {
	return cascade.FloorDeleted(plan, id)
}

// MoveFloorUp swaps floor id with its successor in the stack.
func MoveFloorUp(plan arena.Plan, id uuid.UUID) (arena.Plan, bool) {
	return moveFloor(plan, id, 1)
}

// MoveFloorDown swaps floor id with its predecessor in the stack.
func MoveFloorDown(plan arena.Plan, id uuid.UUID) (arena.Plan, bool) {
	return moveFloor(plan, id, -1)
}

func moveFloor(plan arena.Plan, id uuid.UUID, delta int) (arena.Plan, bool) {
	idx, found := plan.FloorIndex(id)
	if !found {
		return plan, false
	}
	target := idx + delta
	if target < 0 || target >= len(plan.Floors) {
		return plan, false
	}
	next := plan.Clone()
	next.Floors[idx], next.Floors[target] = next.Floors[target], next.Floors[idx]
	return next, true
}

// RenameFloor sets floor id's display name.
func RenameFloor(plan arena.Plan, id uuid.UUID, name string) (arena.Plan, bool) {
	idx, found := plan.FloorIndex(id)
	if !found {
		return plan, false
	}
	next := plan.Clone()
	next.Floors[idx].Name = name
	return next, true
}

// PairVerticalLinks installs the reciprocal link spec §4.6 requires:
// creating link on hostFloorID with destination destFloorID also
// installs an inverted-direction link on destFloorID at the same plan
// coordinates, with each link's PairID pointing at the other.
func PairVerticalLinks(plan arena.Plan, hostFloorID uuid.UUID, link arena.VerticalLink) (arena.Plan, bool) {
	hostIdx, found := plan.FloorIndex(hostFloorID)
	if !found {
		return plan, false
	}
	destIdx, found := plan.FloorIndex(link.DestFloor)
	if !found {
		return plan, false
	}

	next := plan.Clone()

	hostLink := link.Clone()
	hostLink.ID = uuid.New()
	pairLink := link.Clone()
	pairLink.ID = uuid.New()
	pairLink.DestFloor = hostFloorID
	pairLink.Direction = invertDirection(link.Direction)

	hostID, pairID := hostLink.ID, pairLink.ID
	hostLink.PairID = &pairID
	pairLink.PairID = &hostID

	next.Floors[hostIdx].Links = append(next.Floors[hostIdx].Links, hostLink)
	next.Floors[destIdx].Links = append(next.Floors[destIdx].Links, pairLink)

	return next, true
}

func invertDirection(d arena.LinkDirection) arena.LinkDirection {
	switch d {
	case arena.LinkUp:
		return arena.LinkDown
	case arena.LinkDown:
		return arena.LinkUp
	default:
		return arena.LinkBoth
	}
}

// DeleteVerticalLink removes linkID from floorID and its paired link on
// the destination floor (spec §4.4).
func DeleteVerticalLink(plan arena.Plan, floorID, linkID uuid.UUID) cascade.PlanResult {
	return cascade.LinkDeleted(plan, floorID, linkID)
}
