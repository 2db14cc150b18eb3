package interaction

import (
	"github.com/google/uuid"

	"github.com/arx-os/museum-editor/internal/arena"
	"github.com/arx-os/museum-editor/internal/cascade"
	"github.com/arx-os/museum-editor/internal/floors"
)

// DeleteSelection runs the cascade for every element in the current
// selection and clears it (spec §5: "Delete key requires a non-empty
// selection; it produces a cascade plan then commits a single historied
// deletion"). A marquee selection spanning several elements is deleted as
// one historied checkpoint: each element's cascade runs in turn against
// the floor left by the previous one, and if any step rejects, none of
// the deletions are visible (spec §5: "no partial commit is ever
// visible"). Vertical links need the whole plan to locate and remove
// their paired link, so this takes plan rather than just the floor.
func (m *Machine) DeleteSelection(plan arena.Plan, floorID uuid.UUID) Transition {
	sel := m.Selection
	m.Selection = Selection{Kind: SelectionNone}

	if sel.Kind != SelectionElement || len(sel.Elements) == 0 {
		return Transition{Message: "no element selected"}
	}

	floor := plan.CurrentFloorPtr()
	if floor == nil || floor.ID != floorID {
		idx, ok := plan.FloorIndex(floorID)
		if !ok {
			return Transition{Message: "floor not found"}
		}
		floor = &plan.Floors[idx]
	}

	working := plan.Clone()
	current := *floor
	for _, el := range sel.Elements {
		next, rejectMsg, ok := deleteOne(working, floor.ID, current, el)
		if !ok {
			return Transition{Message: rejectMsg}
		}
		current = next
		if idx, found := working.FloorIndex(floor.ID); found {
			working.Floors[idx] = current
		}
	}

	label := "delete selection"
	if len(sel.Elements) == 1 {
		label = deleteLabel(sel.Elements[0].Kind)
	}
	return Transition{Applied: true, Floor: current, Description: label}
}

// deleteOne runs the cascade for a single selected element against
// floor, returning the resulting floor or a rejection reason. plan
// carries the full multi-floor state for the vertical-link case, which
// must locate and remove the paired link on another floor.
func deleteOne(plan arena.Plan, floorID uuid.UUID, floor arena.Floor, el SelectedElement) (arena.Floor, string, bool) {
	switch el.Kind {
	case ElementRoom:
		res := cascade.RoomDeleted(floor, el.ID)
		if res.Rejected {
			return arena.Floor{}, res.Reason, false
		}
		return res.Floor, "", true
	case ElementWall:
		res := cascade.WallDeleted(floor, el.ID)
		if res.Rejected {
			return arena.Floor{}, res.Reason, false
		}
		return res.Floor, "", true
	case ElementDoor:
		next := floor.Clone()
		if !removeDoor(&next, el.ID) {
			return arena.Floor{}, "door not found", false
		}
		return next, "", true
	case ElementLink:
		res := floors.DeleteVerticalLink(plan, floorID, el.ID)
		if res.Rejected {
			return arena.Floor{}, res.Reason, false
		}
		updatedIdx, _ := res.Plan.FloorIndex(floorID)
		return res.Plan.Floors[updatedIdx], "", true
	case ElementArtwork:
		next := floor.Clone()
		if !removeArtwork(&next, el.ID) {
			return arena.Floor{}, "artwork not found", false
		}
		return next, "", true
	}
	return arena.Floor{}, "unknown element kind", false
}

func deleteLabel(kind ElementKind) string {
	switch kind {
	case ElementRoom:
		return "delete room"
	case ElementWall:
		return "delete wall"
	case ElementDoor:
		return "delete door"
	case ElementLink:
		return "delete vertical link"
	case ElementArtwork:
		return "delete artwork"
	}
	return "delete selection"
}

func removeDoor(floor *arena.Floor, id uuid.UUID) bool {
	idx, ok := floor.DoorIndex(id)
	if !ok {
		return false
	}
	floor.Doors = append(floor.Doors[:idx], floor.Doors[idx+1:]...)
	return true
}

func removeArtwork(floor *arena.Floor, id uuid.UUID) bool {
	idx, ok := floor.ArtworkIndex(id)
	if !ok {
		return false
	}
	floor.Artworks = append(floor.Artworks[:idx], floor.Artworks[idx+1:]...)
	return true
}
