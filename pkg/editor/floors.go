package editor

import (
	"github.com/google/uuid"

	"github.com/arx-os/museum-editor/internal/arena"
	"github.com/arx-os/museum-editor/internal/floors"
)

// AddFloor inserts a new floor above or below the current stack and
// switches to it (spec §6 "add_floor(direction)").
func (k *Kernel) AddFloor(direction floors.Direction, name string) {
	next := floors.AddFloor(k.Plan, direction, name)
	k.Plan = next
	k.History.Commit(next, "add floor")
	k.recompute()
}

// DeleteFloor removes floor id, refusing when it is the plan's only
// floor, and cleans up dangling vertical links on its neighbours (spec
// §4.4, §4.6, §6 "delete_floor(id)").
func (k *Kernel) DeleteFloor(id uuid.UUID) Result {
	res := floors.DeleteFloor(k.Plan, id)
	if res.Rejected {
		return Result{Message: res.Reason}
	}
	k.Plan = res.Plan
	k.History.Commit(res.Plan, "delete floor")
	k.recompute()
	return Result{Applied: true, Description: "delete floor"}
}

// MoveFloor swaps floor id with its neighbour in the given direction
// (spec §6 "move_floor(id, direction)").
func (k *Kernel) MoveFloor(id uuid.UUID, direction floors.Direction) bool {
	var next arena.Plan
	var ok bool
	switch direction {
	case floors.Above:
		next, ok = floors.MoveFloorUp(k.Plan, id)
	case floors.Below:
		next, ok = floors.MoveFloorDown(k.Plan, id)
	}
	if !ok {
		return false
	}
	k.Plan = next
	k.History.Commit(next, "move floor")
	k.recompute()
	return true
}

// RenameFloor sets floor id's display name (spec §6
// "rename_floor(id, name)").
func (k *Kernel) RenameFloor(id uuid.UUID, name string) bool {
	next, ok := floors.RenameFloor(k.Plan, id, name)
	if !ok {
		return false
	}
	k.Plan = next
	k.History.Commit(next, "rename floor")
	return true
}
