package ops

import (
	"github.com/arx-os/museum-editor/internal/arena"
	"github.com/arx-os/museum-editor/internal/geom"
	"github.com/arx-os/museum-editor/internal/validation"
)

// AppendPolygonVertex implements the free-polygon room tool's per-click
// behaviour (spec §4.5): appends point to the in-progress polyline,
// rejecting it if doing so would self-intersect the polyline so far.
func AppendPolygonVertex(inProgress geom.Polygon, point geom.Point) (geom.Polygon, bool) {
	candidate := append(append(geom.Polygon(nil), inProgress...), point)
	if len(candidate) < 3 {
		return candidate, true
	}
	// Check the newest edge against every non-adjacent prior edge; an
	// open polyline has no closing edge yet.
	n := len(candidate)
	newEdge := geom.Segment{A: candidate[n-2], B: candidate[n-1]}
	for i := 0; i < n-3; i++ {
		edge := geom.Segment{A: candidate[i], B: candidate[i+1]}
		if geom.SegmentsIntersect(newEdge.A, newEdge.B, edge.A, edge.B) {
			return inProgress, false
		}
	}
	return candidate, true
}

// CanClosePolygon reports whether point is within closeThreshold of the
// polyline's first vertex and there are enough vertices to form a room.
func CanClosePolygon(inProgress geom.Polygon, point geom.Point, closeThreshold float64) bool {
	return len(inProgress) >= 3 && point.DistanceTo(inProgress[0]) <= closeThreshold
}

// CommitRoom validates and, on success, appends a new room built from
// inProgress to floor. Closing a free-hand polygon runs in Strict mode
// (spec §4.5: "close commits through the room validator in tolerant
// mode" — tolerant here refers to the shape tools; the free-polygon
// close is itself the strict path per spec §4.2).
func (e *Engine) CommitRoom(floor arena.Floor, vertices geom.Polygon, strictness validation.Strictness) Outcome {
	room := arena.Room{ID: newID(), Vertices: vertices}
	res := validation.ValidateRoom(e.Config.Constraints, &floor, room)
	if res.Blocks(strictness) {
		return rejectOutcome(res)
	}
	floor.Rooms = append(floor.Rooms, room)
	return acceptOutcome(floor)
}

// CommitRectangle, CommitCircle, CommitTriangle, and CommitArc build a
// shape's polygon from an anchor/opposite drag and commit it through
// the room validator in tolerant mode, per spec §4.5.
func (e *Engine) CommitRectangle(floor arena.Floor, anchor, opposite geom.Point) Outcome {
	if !e.minDragExceeded(anchor, opposite) {
		return rejectOutcome(validation.Result{Valid: false, Severity: validation.SeverityError, Message: "drag distance below minimum"})
	}
	return e.CommitRoom(floor, geom.RectanglePolygon(anchor, opposite), validation.Tolerant)
}

func (e *Engine) CommitCircle(floor arena.Floor, center, radiusPoint geom.Point) Outcome {
	if !e.minDragExceeded(center, radiusPoint) {
		return rejectOutcome(validation.Result{Valid: false, Severity: validation.SeverityError, Message: "drag distance below minimum"})
	}
	radius := center.DistanceTo(radiusPoint)
	return e.CommitRoom(floor, geom.CirclePolygon(center, radius, 32), validation.Tolerant)
}

func (e *Engine) CommitTriangle(floor arena.Floor, anchor, opposite geom.Point) Outcome {
	if !e.minDragExceeded(anchor, opposite) {
		return rejectOutcome(validation.Result{Valid: false, Severity: validation.SeverityError, Message: "drag distance below minimum"})
	}
	return e.CommitRoom(floor, geom.TrianglePolygon(anchor, opposite), validation.Tolerant)
}

func (e *Engine) CommitArc(floor arena.Floor, center, radiusPoint geom.Point) Outcome {
	if !e.minDragExceeded(center, radiusPoint) {
		return rejectOutcome(validation.Result{Valid: false, Severity: validation.SeverityError, Message: "drag distance below minimum"})
	}
	return e.CommitRoom(floor, geom.ArcPolygon(center, radiusPoint, 24), validation.Tolerant)
}
