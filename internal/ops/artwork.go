package ops

import (
	"github.com/google/uuid"

	"github.com/arx-os/museum-editor/internal/arena"
	"github.com/arx-os/museum-editor/internal/geom"
	"github.com/arx-os/museum-editor/internal/validation"
)

// CommitArtwork commits a rectangle-drag artwork placement inside a
// room (spec §4.5): enforced minimum width/height, containment in
// exactly one room, and non-overlap with other artworks.
func (e *Engine) CommitArtwork(floor arena.Floor, anchor, opposite geom.Point, name, documentRef string) Outcome {
	ax, ay := anchor.Grid()
	ox, oy := opposite.Grid()
	minX, minY := minF(ax, ox), minF(ay, oy)
	w, h := absF(ox-ax), absF(oy-ay)

	artwork := arena.Artwork{
		ID:          newID(),
		Anchor:      geom.NewPoint(minX, minY),
		W:           w,
		H:           h,
		Name:        name,
		DocumentRef: documentRef,
	}

	res := validation.ValidateArtwork(e.Config.Constraints, &floor, artwork)
	if res.Blocks(validation.Strict) {
		return rejectOutcome(res)
	}
	floor.Artworks = append(floor.Artworks, artwork)
	return acceptOutcome(floor)
}

// ResizeArtwork re-derives an existing artwork's rectangle from a fixed
// corner and the dragged corner (spec §4.5's artwork handle resize),
// preserving its id, name, and document reference.
func (e *Engine) ResizeArtwork(floor arena.Floor, id uuid.UUID, fixedCorner, draggedCorner geom.Point) Outcome {
	idx, found := floor.ArtworkIndex(id)
	if !found {
		return rejectOutcome(validation.Result{Valid: false, Severity: validation.SeverityError, Message: "artwork not found"})
	}
	existing := floor.Artworks[idx]

	fx, fy := fixedCorner.Grid()
	dx, dy := draggedCorner.Grid()
	minX, minY := minF(fx, dx), minF(fy, dy)
	w, h := absF(dx-fx), absF(dy-fy)

	candidate := existing
	candidate.Anchor = geom.NewPoint(minX, minY)
	candidate.W = w
	candidate.H = h

	res := validation.ValidateArtwork(e.Config.Constraints, &floor, candidate)
	if res.Blocks(validation.Strict) {
		return rejectOutcome(res)
	}
	floor.Artworks[idx] = candidate
	return acceptOutcome(floor)
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
