package editor

import (
	"github.com/google/uuid"

	"github.com/arx-os/museum-editor/internal/arena"
	"github.com/arx-os/museum-editor/internal/interaction"
)

// ElementPatch carries the non-geometric properties update_element may
// change; a nil field is left untouched (spec §6 "update_element(id,
// partial)"). Geometric edits go through the pointer/drag operations
// instead, which run the full validation/cascade pipeline a bare
// property edit does not need.
type ElementPatch struct {
	Name          *string
	DocumentRef   *string
	WallKind      *arena.WallKind
	LinkDirection *arena.LinkDirection
}

// UpdateElement applies patch to element id on the current floor
// through the same history pipeline as every other commit (spec §6).
func (k *Kernel) UpdateElement(id uuid.UUID, patch ElementPatch) Result {
	floor := k.currentFloor()
	if floor == nil {
		return Result{Message: "no current floor"}
	}
	next := floor.Clone()

	switch {
	case patchArtwork(&next, id, patch):
	case patchWall(&next, id, patch):
	case patchLink(&next, id, patch):
	default:
		return Result{Message: "element not found"}
	}

	return k.apply(interaction.Transition{Applied: true, Floor: next, Description: "update element"})
}

func patchArtwork(floor *arena.Floor, id uuid.UUID, patch ElementPatch) bool {
	idx, found := floor.ArtworkIndex(id)
	if !found {
		return false
	}
	if patch.Name != nil {
		floor.Artworks[idx].Name = *patch.Name
	}
	if patch.DocumentRef != nil {
		floor.Artworks[idx].DocumentRef = *patch.DocumentRef
	}
	return true
}

func patchWall(floor *arena.Floor, id uuid.UUID, patch ElementPatch) bool {
	idx, found := floor.WallIndex(id)
	if !found {
		return false
	}
	if patch.WallKind != nil {
		floor.Walls[idx].Thickness = *patch.WallKind
	}
	return true
}

func patchLink(floor *arena.Floor, id uuid.UUID, patch ElementPatch) bool {
	idx, found := floor.LinkIndex(id)
	if !found {
		return false
	}
	if patch.LinkDirection != nil {
		floor.Links[idx].Direction = *patch.LinkDirection
	}
	return true
}
