// Package validation implements the editor's pure geometric validators
// (spec §4.2): room, wall, door, vertical link, and artwork diagnostics,
// plus the cheap global coherence scan. Every validator is pure and takes
// a floor for context, returning a Result the caller can inspect without
// any exception machinery (spec §7: "validation errors are returned from
// the operation, never thrown across the boundary").
package validation

import (
	"github.com/google/uuid"

	"github.com/arx-os/museum-editor/internal/arena"
	"github.com/arx-os/museum-editor/internal/config"
	"github.com/arx-os/museum-editor/internal/geom"
)

// Severity mirrors spec §4.2's {ok, warning, error}.
type Severity string

const (
	SeverityOK      Severity = "ok"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Result is the validator diagnostic shape from spec §4.2, named after
// the teacher's own ValidationResult/ValidationError pair in
// internal/validation/validator.go.
type Result struct {
	Valid       bool
	Severity    Severity
	Message     string
	Suggestions []string
}

// ok returns a passing result.
func ok() Result { return Result{Valid: true, Severity: SeverityOK} }

func fail(severity Severity, message string, suggestions ...string) Result {
	return Result{Valid: false, Severity: severity, Message: message, Suggestions: suggestions}
}

// Strictness controls whether warnings are treated as rejections (spec
// §4.2: "strict (free-hand polygon commit) rejects warnings too;
// tolerant (shape-tool commit) lets warnings through").
type Strictness int

const (
	Tolerant Strictness = iota
	Strict
)

// Blocks reports whether a Result should block the commit under the
// given strictness.
func (r Result) Blocks(s Strictness) bool {
	if r.Valid {
		return false
	}
	if r.Severity == SeverityError {
		return true
	}
	return s == Strict && r.Severity == SeverityWarning
}

// ValidateRoom checks a candidate room polygon against the rest of the
// floor, per spec §4.2.
func ValidateRoom(cfg config.ConstraintsConfig, floor *arena.Floor, candidate arena.Room) Result {
	countCall("room")
	if len(candidate.Vertices) < 3 {
		return fail(SeverityError, "room must have at least 3 vertices")
	}
	if geom.HasDuplicateVertices(candidate.Vertices) {
		return fail(SeverityError, "room has duplicated vertices", "merge or remove the coincident vertex")
	}
	if !geom.PolygonIsSimple(candidate.Vertices) {
		return fail(SeverityError, "room polygon self-intersects", "undo the last vertex and retry")
	}
	area := geom.PolygonArea(candidate.Vertices)
	if area < cfg.MinRoomArea {
		return fail(SeverityWarning, "room area is below the configured minimum",
			"enlarge the room or lower constraints.min_room_area")
	}
	for _, other := range floor.Rooms {
		if other.ID == candidate.ID {
			continue
		}
		if geom.PolygonsOverlap(candidate.Vertices, other.Vertices) {
			return fail(SeverityError, "room overlaps another room on this floor",
				"move or resize the room so it only touches, not overlaps")
		}
	}
	return ok()
}

// ValidateArtwork checks placement: containment in exactly one room, size
// bounds, and non-overlap with other artworks.
func ValidateArtwork(cfg config.ConstraintsConfig, floor *arena.Floor, candidate arena.Artwork) Result {
	countCall("artwork")
	if candidate.W < cfg.MinArtworkW || candidate.W > cfg.MaxArtworkW {
		return fail(SeverityError, "artwork width outside configured bounds")
	}
	if candidate.H < cfg.MinArtworkH || candidate.H > cfg.MaxArtworkH {
		return fail(SeverityError, "artwork height outside configured bounds")
	}

	rect := candidate.Rect()
	containingRoom, found := containingRoomForRect(floor, rect)
	if !found {
		return fail(SeverityError, "artwork is not fully contained in any room",
			"move the artwork so all four corners lie inside one room")
	}
	_ = containingRoom

	for _, other := range floor.Artworks {
		if other.ID == candidate.ID {
			continue
		}
		if geom.PolygonsOverlap(rect, other.Rect()) {
			return fail(SeverityError, "artwork overlaps another artwork")
		}
	}
	return ok()
}

// containingRoomForRect returns the single room whose polygon contains
// every corner of rect, per spec §3 ("rectangle lies entirely within
// exactly one room").
func containingRoomForRect(floor *arena.Floor, rect geom.Polygon) (uuid.UUID, bool) {
	for _, room := range floor.Rooms {
		allInside := true
		for _, corner := range rect {
			if !geom.PointInPolygon(corner, room.Vertices) {
				allInside = false
				break
			}
		}
		if allInside {
			return room.ID, true
		}
	}
	return uuid.UUID{}, false
}

// ContainingRoom is the exported form of containingRoomForRect, used by
// cascades and the measurement engine to derive an artwork's room
// on demand.
func ContainingRoom(floor *arena.Floor, a arena.Artwork) (uuid.UUID, bool) {
	return containingRoomForRect(floor, a.Rect())
}

// HostSegment describes the wall edge or interior wall segment a door or
// vertical link sits on.
type HostSegment struct {
	RoomID   *uuid.UUID
	EdgeIdx  int
	WallID   *uuid.UUID
	Segment  geom.Segment
}

// FindHost locates the room edge or interior wall whose infinite line is
// colinear with candidate and which contains candidate within Epsilon.
func FindHost(floor *arena.Floor, candidate geom.Segment) (HostSegment, bool) {
	for ri := range floor.Rooms {
		room := &floor.Rooms[ri]
		n := len(room.Vertices)
		for i := 0; i < n; i++ {
			a, b := room.Vertices[i], room.Vertices[(i+1)%n]
			if segmentHostsCandidate(a, b, candidate) {
				id := room.ID
				return HostSegment{RoomID: &id, EdgeIdx: i, Segment: geom.Segment{A: a, B: b}}, true
			}
		}
	}
	for wi := range floor.Walls {
		wall := &floor.Walls[wi]
		if segmentHostsCandidate(wall.Segment.A, wall.Segment.B, candidate) {
			id := wall.ID
			return HostSegment{WallID: &id, Segment: wall.Segment}, true
		}
	}
	return HostSegment{}, false
}

// segmentHostsCandidate reports whether candidate is colinear with and
// contained within the closed host segment [hostA, hostB].
func segmentHostsCandidate(hostA, hostB geom.Point, candidate geom.Segment) bool {
	return geom.SegmentContains(hostA, hostB, candidate.A) &&
		geom.SegmentContains(hostA, hostB, candidate.B)
}
