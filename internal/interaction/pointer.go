package interaction

import (
	"github.com/google/uuid"

	"github.com/arx-os/museum-editor/internal/arena"
	"github.com/arx-os/museum-editor/internal/cascade"
	"github.com/arx-os/museum-editor/internal/geom"
	"github.com/arx-os/museum-editor/internal/ops"
	"github.com/arx-os/museum-editor/internal/snap"
	"github.com/arx-os/museum-editor/internal/spatialindex"
	"github.com/arx-os/museum-editor/internal/validation"
)

// Transition is the result of a pointer event that may mutate floor
// state: either a new floor ready to commit to history, or a rejection
// the caller can surface without touching committed state (spec §5:
// "if any step rejects, the provisional state is discarded").
type Transition struct {
	Applied     bool
	Floor       arena.Floor
	Message     string
	Description string // history checkpoint label, set only when Applied
}

func transitionFromOutcome(o ops.Outcome, label string) Transition {
	if !o.Applied {
		return Transition{Message: o.Result.Message}
	}
	return Transition{Applied: true, Floor: o.Floor, Description: label}
}

func transitionFromCascade(r cascade.Result, label string) Transition {
	if r.Rejected {
		return Transition{Message: r.Reason}
	}
	return Transition{Applied: true, Floor: r.Floor, Description: label}
}

// PendingLink carries the destination floor/kind/direction for a
// stairs/elevator placement, set by the caller before PointerDown for
// ToolStairs/ToolElevator (the state machine cannot infer which floor
// the user picked from pointer geometry alone).
type PendingLink struct {
	Kind      arena.LinkKind
	Direction arena.LinkDirection
	DestFloor uuid.UUID
}

// PointerDown begins or advances a provisional operation at point on
// floor, using idx (built by snap.BuildIndex against floor) for
// snapping. For click-only tools (Select, Room) this may itself produce
// a committed Transition.
func (m *Machine) PointerDown(floor *arena.Floor, idx *spatialindex.Index, point geom.Point, mods Modifiers) Transition {
	switch m.Tool {
	case ToolSelect:
		return m.pointerDownSelect(floor, point, mods)
	case ToolRoom:
		return m.pointerDownRoom(floor, point)
	case ToolRectangle, ToolCircle, ToolTriangle, ToolArc, ToolArtwork:
		m.State = State{Kind: DrawingShape, Tool: m.Tool, Anchor: point, Current: point}
		return Transition{}
	case ToolDoor, ToolStairs, ToolElevator:
		candidates := snap.FindCandidates(idx, floor, point, m.snapRadii(), snap.FilterWallHostOnly, 0)
		cand, ok := snap.Best(candidates)
		m.DebugLog.LogCandidates(cand, ok, len(candidates))
		if !ok {
			return Transition{Message: "no wall to host this opening here"}
		}
		m.State = State{Kind: PlacingOnWall, Tool: m.Tool, WallSnap: cand, DragFrom: cand.Point, Current: cand.Point}
		return Transition{}
	case ToolWall:
		candidates := snap.FindCandidates(idx, floor, point, m.snapRadii(), snap.FilterVertexAndWall, m.Config.Grid.Step)
		cand, ok := snap.Best(candidates)
		m.DebugLog.LogCandidates(cand, ok, len(candidates))
		start := point
		if ok {
			start = cand.Point
		}
		m.State = State{Kind: DrawingShape, Tool: ToolWall, Anchor: start, Current: start}
		return Transition{}
	}
	return Transition{}
}

func (m *Machine) pointerDownSelect(floor *arena.Floor, point geom.Point, mods Modifiers) Transition {
	h, found := hitTest(floor, point, m.Config.Snap.Radii.Vertex)
	if !found {
		m.State = State{Kind: Marquee, Anchor: point, Current: point}
		return Transition{}
	}

	switch {
	case h.isVertex:
		m.Selection = singleSelection(h.id, ElementRoom)
		m.State = State{Kind: DraggingVertex, RoomID: h.id, VertexIndex: h.vertexIndex, Current: point}
	case h.isEndpoint:
		m.Selection = singleSelection(h.id, ElementWall)
		m.State = State{Kind: DraggingEndpoint, ElementID: h.id, ElementKind: ElementWall, EndIndex: h.endIndex, Current: point}
	case h.isHandle:
		m.Selection = singleSelection(h.id, ElementArtwork)
		m.State = State{Kind: ResizingArtwork, ElementID: h.id, Handle: h.handle, Origin: h.origin, Current: point}
	case h.kind == ElementRoom || h.kind == ElementWall:
		m.Selection = singleSelection(h.id, h.kind)
		m.State = State{Kind: DraggingShape, ElementID: h.id, ElementKind: h.kind, Anchor: point, Current: point}
	default:
		// Doors, links, and artwork bodies are selectable but not
		// draggable as a whole (spec §4.5 only grants body-drag to
		// room and wall carriers).
		m.Selection = singleSelection(h.id, h.kind)
		m.State = State{Kind: Idle}
	}
	return Transition{}
}

// singleSelection builds a one-element Selection for a plain click pick.
func singleSelection(id uuid.UUID, kind ElementKind) Selection {
	return Selection{Kind: SelectionElement, Elements: []SelectedElement{{ID: id, Kind: kind}}}
}

func (m *Machine) pointerDownRoom(floor *arena.Floor, point geom.Point) Transition {
	if m.State.Kind != DrawingPolygon {
		m.State = State{Kind: DrawingPolygon, Tool: ToolRoom, Points: geom.Polygon{point}, Current: point}
		return Transition{}
	}
	if ops.CanClosePolygon(m.State.Points, point, m.Config.Constraints.CloseThreshold) {
		outcome := m.Ops.CommitRoom(*floor, m.State.Points, validation.Strict)
		m.State = State{Kind: Idle}
		return transitionFromOutcome(outcome, "create room")
	}
	next, ok := ops.AppendPolygonVertex(m.State.Points, point)
	if !ok {
		return Transition{Message: "vertex would self-intersect the polygon"}
	}
	m.State.Points = next
	m.State.Current = point
	return Transition{}
}

// PointerMove updates the provisional state's live pointer position; it
// never mutates committed floor state (spec §4.5: "updates provisional
// state without saving history").
func (m *Machine) PointerMove(point geom.Point) {
	if m.State.Kind == Idle {
		return
	}
	m.State.Current = point
}

// PointerUp commits the in-progress operation, if any, and returns to
// Idle regardless of outcome (spec §4.5: commit is the only
// history-producing transition; a rejection still discards the
// provisional state per spec §5).
func (m *Machine) PointerUp(floor *arena.Floor, plan *arena.Plan, point geom.Point) Transition {
	state := m.State
	defer func() { m.State = State{Kind: Idle} }()

	switch state.Kind {
	case DrawingShape:
		return m.commitDrawingShape(floor, state, point)
	case PlacingOnWall:
		return m.commitPlacingOnWall(floor, plan, state, point)
	case DraggingShape:
		return m.commitDraggingShape(floor, state, point)
	case DraggingVertex:
		res := cascade.RoomVertexMoved(m.Config, *floor, state.RoomID, state.VertexIndex, point)
		return transitionFromCascade(res, "move vertex")
	case DraggingEndpoint:
		res := cascade.WallEndpointMoved(m.Config, *floor, state.ElementID, state.EndIndex, point)
		return transitionFromCascade(res, "move wall endpoint")
	case ResizingArtwork:
		outcome := m.Ops.ResizeArtwork(*floor, state.ElementID, state.Origin, point)
		return transitionFromOutcome(outcome, "resize artwork")
	case Marquee:
		m.Selection = selectionInBox(floor, boxFrom(state.Anchor, point))
		return Transition{}
	}
	return Transition{}
}

func (m *Machine) commitDrawingShape(floor *arena.Floor, state State, point geom.Point) Transition {
	switch state.Tool {
	case ToolRectangle:
		return transitionFromOutcome(m.Ops.CommitRectangle(*floor, state.Anchor, point), "create rectangle room")
	case ToolCircle:
		return transitionFromOutcome(m.Ops.CommitCircle(*floor, state.Anchor, point), "create circular room")
	case ToolTriangle:
		return transitionFromOutcome(m.Ops.CommitTriangle(*floor, state.Anchor, point), "create triangular room")
	case ToolArc:
		return transitionFromOutcome(m.Ops.CommitArc(*floor, state.Anchor, point), "create arc room")
	case ToolArtwork:
		return transitionFromOutcome(
			m.Ops.CommitArtwork(*floor, state.Anchor, point, m.pendingArtwork.Name, m.pendingArtwork.DocumentRef),
			"place artwork",
		)
	case ToolWall:
		return transitionFromOutcome(m.Ops.CommitWall(*floor, state.Anchor, point), "create wall")
	}
	return Transition{}
}

func (m *Machine) commitPlacingOnWall(floor *arena.Floor, plan *arena.Plan, state State, point geom.Point) Transition {
	host := hostSegmentFor(floor, state.WallSnap.Carrier)
	switch state.Tool {
	case ToolDoor:
		return transitionFromOutcome(m.Ops.CommitDoor(*floor, state.WallSnap.Carrier, host, state.DragFrom, point), "place door")
	case ToolStairs, ToolElevator:
		kind := arena.LinkStairs
		if state.Tool == ToolElevator {
			kind = arena.LinkElevator
		}
		link := m.pendingLink
		if link.Kind == "" {
			link.Kind = kind
		}
		var p arena.Plan
		if plan != nil {
			p = *plan
		}
		return transitionFromOutcome(
			m.Ops.CommitVerticalLink(*floor, p, link.Kind, link.Direction, link.DestFloor, state.WallSnap.Carrier, host, state.DragFrom, point),
			"place vertical link",
		)
	}
	return Transition{}
}

func hostSegmentFor(floor *arena.Floor, carrier snap.Carrier) geom.Segment {
	if carrier.RoomID != nil {
		for _, room := range floor.Rooms {
			if room.ID == *carrier.RoomID {
				n := len(room.Vertices)
				a, b := room.Vertices[carrier.EdgeIdx%n], room.Vertices[(carrier.EdgeIdx+1)%n]
				return geom.Segment{A: a, B: b}
			}
		}
	}
	if carrier.WallID != nil {
		for _, wall := range floor.Walls {
			if wall.ID == *carrier.WallID {
				return wall.Segment
			}
		}
	}
	return geom.Segment{}
}

func (m *Machine) commitDraggingShape(floor *arena.Floor, state State, point geom.Point) Transition {
	delta := point.Sub(state.Anchor)
	switch state.ElementKind {
	case ElementRoom:
		return transitionFromCascade(cascade.RoomTranslated(m.Config, *floor, state.ElementID, delta), "move room")
	case ElementWall:
		return transitionFromCascade(cascade.WallTranslated(*floor, state.ElementID, delta), "move wall")
	}
	return Transition{}
}

func (m *Machine) snapRadii() snap.Radii {
	return snap.Radii{Vertex: m.Config.Snap.Radii.Vertex, Wall: m.Config.Snap.Radii.Wall, Grid: m.Config.Snap.Radii.Grid}
}
