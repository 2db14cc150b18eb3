package snap

import "github.com/arx-os/museum-editor/internal/geom"

// ProjectOnWallSegment implements project_on_wall_segment from spec
// §4.3: it yields the point on host at which an element of elementWidth
// can be centred while keeping at least minClearance from both of the
// host's endpoints, projecting point onto the host's line first. It
// returns ok=false if the host is too short to hold the element with
// the required clearance on both sides.
func ProjectOnWallSegment(point geom.Point, host geom.Segment, elementWidth, minClearance float64) (center geom.Point, ok bool) {
	hostLen := host.Length()
	required := elementWidth + 2*minClearance
	if hostLen < required {
		return geom.Point{}, false
	}

	_, t := geom.ProjectOnSegment(point, host.A, host.B)

	minT := (minClearance + elementWidth/2) / hostLen
	maxT := 1 - minT

	if t < minT {
		t = minT
	} else if t > maxT {
		t = maxT
	}

	return host.PointAt(t), true
}
