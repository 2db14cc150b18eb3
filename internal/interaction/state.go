// Package interaction implements the editor's interaction state machine
// (spec §4.7): a tagged-union State threaded through begin/update/commit/
// abort transitions driven by the operation surface's pointer calls. This
// replaces the teacher's scattered per-handler event dispatch
// (cmd/arx/internal/app.go routes each CLI verb to its own handler
// function) with a single entry point that holds exactly one active state
// at a time, per spec §9's re-architecture guidance for "pointer-driven
// interaction callbacks".
package interaction

import (
	"github.com/google/uuid"

	"github.com/arx-os/museum-editor/internal/config"
	"github.com/arx-os/museum-editor/internal/geom"
	"github.com/arx-os/museum-editor/internal/ops"
	"github.com/arx-os/museum-editor/internal/snap"
)

// Tool identifies the active drawing/editing tool.
type Tool int

const (
	ToolSelect Tool = iota
	ToolRoom
	ToolRectangle
	ToolCircle
	ToolTriangle
	ToolArc
	ToolArtwork
	ToolDoor
	ToolStairs
	ToolElevator
	ToolWall
)

// Modifiers carries pointer-event modifier keys relevant to interaction
// transitions (spec §6: "pointer_down(world_point, modifiers)").
type Modifiers struct {
	Additive bool // shift held; the Select tool does not read it and always replaces the selection
}

// Kind names a State variant, one per spec §4.7 state name.
type Kind int

const (
	Idle Kind = iota
	DrawingPolygon
	DrawingShape
	PlacingOnWall
	DraggingShape
	DraggingVertex
	DraggingEndpoint
	ResizingArtwork
	Marquee
)

// ElementKind distinguishes the kind of element a Selection or dragging
// state refers to.
type ElementKind int

const (
	ElementRoom ElementKind = iota
	ElementWall
	ElementDoor
	ElementLink
	ElementArtwork
)

// ArtworkHandle identifies which corner handle a ResizingArtwork
// drag is manipulating.
type ArtworkHandle int

const (
	HandleTopLeft ArtworkHandle = iota
	HandleTopRight
	HandleBottomLeft
	HandleBottomRight
)

// State is the interaction state machine's tagged union (spec §4.7);
// only the fields relevant to Kind are populated. Go has no sum type, so
// this follows the same one-struct-many-optional-fields shape spec §9
// prescribes for Selection.
type State struct {
	Kind Kind
	Tool Tool

	// DrawingPolygon
	Points geom.Polygon

	// DrawingShape / Marquee
	Anchor  geom.Point
	Current geom.Point

	// PlacingOnWall
	WallSnap snap.Candidate
	DragFrom geom.Point

	// DraggingShape / DraggingVertex / DraggingEndpoint / ResizingArtwork
	ElementID   uuid.UUID
	ElementKind ElementKind
	RoomID      uuid.UUID
	VertexIndex int
	EndIndex    int
	Host        snap.Carrier
	Handle      ArtworkHandle
	Origin      geom.Point // ResizingArtwork: the fixed opposite corner
}

// SelectionKind distinguishes a selection of whole elements from a
// selection of a room's individual vertices (spec §9).
type SelectionKind int

const (
	SelectionNone SelectionKind = iota
	SelectionElement
	SelectionVertices
)

// SelectedElement pairs an element's handle with its kind, one entry per
// element a marquee or click picked.
type SelectedElement struct {
	ID   uuid.UUID
	Kind ElementKind
}

// RoomVertices names the vertices of one room a marquee partially covers
// (not every vertex inside the box, so the room isn't promoted to a whole
// Element).
type RoomVertices struct {
	RoomID  uuid.UUID
	Indices []int
}

// Selection is the tagged-variant selection model from spec §9:
// "Selection = None | Element(id, kind) | Vertices(room_id, indices[])",
// generalised so both variants carry every match a marquee spans rather
// than just one (spec §4.5: "Marquee selection picks all elements whose
// characteristic point lies in the box").
type Selection struct {
	Kind             SelectionKind
	Elements         []SelectedElement
	VertexSelections []RoomVertices
}

// ElementID returns the first selected element's handle, or the zero UUID
// for an empty or vertex-only selection. Single-element call sites (a
// plain click, a single-room delete) use this instead of indexing Elements.
func (s Selection) ElementID() uuid.UUID {
	if len(s.Elements) == 0 {
		return uuid.UUID{}
	}
	return s.Elements[0].ID
}

// ElementKind returns the first selected element's kind; see ElementID.
func (s Selection) ElementKind() ElementKind {
	if len(s.Elements) == 0 {
		return ElementRoom
	}
	return s.Elements[0].Kind
}

// RoomID returns the room named by the first vertex selection, or the zero
// UUID if none is present. See ElementID.
func (s Selection) RoomID() uuid.UUID {
	if len(s.VertexSelections) == 0 {
		return uuid.UUID{}
	}
	return s.VertexSelections[0].RoomID
}

// Indices returns the vertex indices of the first vertex selection; see
// RoomID.
func (s Selection) Indices() []int {
	if len(s.VertexSelections) == 0 {
		return nil
	}
	return s.VertexSelections[0].Indices
}

// Machine drives the interaction state machine: at most one State is
// active, and every transition is triggered by a pointer or tool call
// (spec §4.7: "Only one state is active at a time").
type Machine struct {
	Config    config.EditorConfig
	Ops       *ops.Engine
	Tool      Tool
	State     State
	Selection Selection

	// DebugLog, if set, receives a throttled line per snap lookup made
	// while placing a door/stairs/elevator or drawing a wall. Nil by
	// default; callers that want this opt in explicitly.
	DebugLog *snap.DebugLogger

	pendingLink    PendingLink
	pendingArtwork ArtworkMetadata
}

// ArtworkMetadata carries the title/document reference for the next
// artwork placement, set by the caller before beginning ToolArtwork
// since the state machine has no other channel for free-text input.
type ArtworkMetadata struct {
	Name        string
	DocumentRef string
}

// SetPendingLink records the destination floor/kind/direction to use for
// the next stairs/elevator placement.
func (m *Machine) SetPendingLink(p PendingLink) { m.pendingLink = p }

// SetPendingArtwork records the title/document reference to use for the
// next artwork placement.
func (m *Machine) SetPendingArtwork(a ArtworkMetadata) { m.pendingArtwork = a }

// New returns a Machine in the Idle state with the Select tool active.
func New(cfg config.EditorConfig) *Machine {
	return &Machine{Config: cfg, Ops: ops.New(cfg), Tool: ToolSelect, State: State{Kind: Idle}}
}

// BeginTool switches the active tool and discards any in-progress
// provisional state, per spec §6's begin_tool operation.
func (m *Machine) BeginTool(tool Tool) {
	m.Tool = tool
	m.State = State{Kind: Idle}
}

// Escape always returns to Idle and discards provisional state (spec
// §4.7, §5 "Cancellation").
func (m *Machine) Escape() {
	m.State = State{Kind: Idle}
}

// InProgress reports whether a provisional operation is underway.
func (m *Machine) InProgress() bool {
	return m.State.Kind != Idle
}
