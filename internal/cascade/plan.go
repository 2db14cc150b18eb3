package cascade

import (
	"github.com/google/uuid"

	"github.com/arx-os/museum-editor/internal/arena"
)

// PlanResult is the outcome of a plan-level cascade: either a new plan
// plus diagnostics, or a rejection.
type PlanResult struct {
	Plan        arena.Plan
	Diagnostics []Diagnostic
	Rejected    bool
	Reason      string
}

func rejectedPlan(reason string) PlanResult { return PlanResult{Rejected: true, Reason: reason} }

// FloorDeleted implements the floor case of spec §4.4's fourth rule:
// deleting a floor deletes all its elements and, on every other floor,
// deletes vertical links whose destination was the removed floor.
// Refuses when floorID is the plan's only floor (spec §4.6).
func FloorDeleted(plan arena.Plan, floorID uuid.UUID) PlanResult {
	if len(plan.Floors) <= 1 {
		return rejectedPlan("cannot delete the only remaining floor")
	}
	idx, found := plan.FloorIndex(floorID)
	if !found {
		return rejectedPlan("floor not found")
	}

	next := plan.Clone()
	next.Floors = append(next.Floors[:idx], next.Floors[idx+1:]...)

	var diagnostics []Diagnostic
	for fi := range next.Floors {
		remaining := next.Floors[fi].Links[:0]
		for _, l := range next.Floors[fi].Links {
			if l.DestFloor == floorID {
				diagnostics = append(diagnostics, Diagnostic{
					Message: "vertical link on floor " + next.Floors[fi].Name + " lost its destination and was removed",
				})
				continue
			}
			remaining = append(remaining, l)
		}
		next.Floors[fi].Links = remaining
	}

	if next.CurrentFloor == floorID {
		next.CurrentFloor = next.Floors[0].ID
	}

	return PlanResult{Plan: next, Diagnostics: diagnostics}
}

// LinkDeleted implements the vertical-link case of spec §4.4's fourth
// rule: deleting a vertical link on floor A also deletes its paired
// link on floor B, identified by PairID (spec §9 Open Question
// resolution).
func LinkDeleted(plan arena.Plan, floorID, linkID uuid.UUID) PlanResult {
	floorIdx, found := plan.FloorIndex(floorID)
	if !found {
		return rejectedPlan("floor not found")
	}
	next := plan.Clone()
	floor := &next.Floors[floorIdx]

	linkIdx, found := floor.LinkIndex(linkID)
	if !found {
		return rejectedPlan("vertical link not found")
	}
	pairID := floor.Links[linkIdx].PairID
	floor.Links = append(floor.Links[:linkIdx], floor.Links[linkIdx+1:]...)

	var diagnostics []Diagnostic
	if pairID != nil {
		removedPair := false
		for fi := range next.Floors {
			if next.Floors[fi].ID == floorID {
				continue
			}
			if pi, ok := next.Floors[fi].LinkIndex(*pairID); ok {
				next.Floors[fi].Links = append(next.Floors[fi].Links[:pi], next.Floors[fi].Links[pi+1:]...)
				removedPair = true
				break
			}
		}
		if removedPair {
			diagnostics = append(diagnostics, Diagnostic{Message: "paired vertical link on the destination floor was also removed"})
		}
	}

	return PlanResult{Plan: next, Diagnostics: diagnostics}
}
