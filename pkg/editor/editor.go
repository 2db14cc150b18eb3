// Package editor is the museum floor-plan editor kernel's public
// operation surface (spec §6): a single Kernel type exposing every
// mutating and query operation a host application (CLI, TUI, or a
// future GUI) drives. It wires internal/interaction, internal/history,
// internal/measurement, internal/validation, internal/floors, and
// internal/export behind one facade, following the teacher's
// cobra-command-per-verb pattern (cmd/arx/cmd_add.go) generalized to a
// Go method-per-operation surface — no CLI framework is needed for the
// facade itself.
package editor

import (
	"time"

	"github.com/google/uuid"

	"github.com/arx-os/museum-editor/internal/arena"
	"github.com/arx-os/museum-editor/internal/config"
	"github.com/arx-os/museum-editor/internal/floors"
	"github.com/arx-os/museum-editor/internal/geom"
	"github.com/arx-os/museum-editor/internal/history"
	"github.com/arx-os/museum-editor/internal/interaction"
	"github.com/arx-os/museum-editor/internal/measurement"
	"github.com/arx-os/museum-editor/internal/museumerrors"
	"github.com/arx-os/museum-editor/internal/museumlog"
	"github.com/arx-os/museum-editor/internal/snap"
	"github.com/arx-os/museum-editor/internal/validation"
)

// snapDebugRatePerSecond bounds how often the snap service's debug
// logger may emit a line; a drag calls FindCandidates far more often
// than this.
const snapDebugRatePerSecond = 4

// Result is the outcome of an operation that may mutate the plan:
// either a committed change (Applied, with a Description used as the
// history checkpoint label) or a rejection message with the committed
// state left untouched (spec §5: "if any step rejects, the
// provisional state is discarded").
type Result struct {
	Applied     bool
	Message     string
	Description string
}

// Kernel is the editor's single-threaded cooperative state holder
// (spec §5). Every exported method here corresponds to one operation
// in spec §6's operation surface.
type Kernel struct {
	Config  config.EditorConfig
	Plan    arena.Plan
	Machine *interaction.Machine
	History *history.Ring
	Log     *museumlog.Logger

	measurement *measurement.Engine
	provisional history.Provisional
	coherence   validation.CoherenceReport
}

// New validates cfg and returns a Kernel seeded with a single empty
// floor. Configuration errors are detected here and the kernel refuses
// to begin until they are resolved (spec §7).
func New(cfg config.EditorConfig, log *museumlog.Logger) (*Kernel, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = museumlog.Noop()
	}
	meas, err := measurement.New(cfg.Grid)
	if err != nil {
		return nil, err
	}

	plan := arena.NewPlan("Ground Floor")
	k := &Kernel{
		Config:      cfg,
		Plan:        plan,
		Machine:     interaction.New(cfg),
		History:     history.New(cfg.History.Cap),
		Log:         log,
		measurement: meas,
	}
	k.Machine.DebugLog = snap.NewDebugLogger(log, snapDebugRatePerSecond)
	k.History.Commit(plan, "create plan")
	k.recompute()
	return k, nil
}

// Close releases resources (the measurement engine's cache) held by
// the kernel.
func (k *Kernel) Close() { k.measurement.Close() }

// ReloadConfig swaps in cfg, already validated by the caller's
// config.Watcher, as the kernel's live configuration. It refuses while a
// provisional operation is in progress so a reload can never change the
// thresholds a half-finished drag is being validated against (spec §5:
// "no partial commit is ever visible").
func (k *Kernel) ReloadConfig(cfg config.EditorConfig) error {
	if k.Machine.InProgress() {
		return museumerrors.Config("cannot reload configuration mid-operation")
	}
	k.Config = cfg
	k.Machine.Config = cfg
	k.Machine.Ops.Config = cfg
	return nil
}

// Coherence returns the most recent global coherence scan of the
// current floor (spec §7: "State invariant breach... reported via the
// coherence status counter").
func (k *Kernel) Coherence() validation.CoherenceReport { return k.coherence }

// Measurements returns the current floor's derived area/edge-length
// table (spec §4.9).
func (k *Kernel) Measurements() measurement.Table {
	floor := k.currentFloor()
	if floor == nil {
		return measurement.Table{}
	}
	return k.measurement.Recompute(floor)
}

func (k *Kernel) currentFloor() *arena.Floor {
	return k.Plan.CurrentFloorPtr()
}

func (k *Kernel) recompute() {
	floor := k.currentFloor()
	if floor == nil {
		return
	}
	k.measurement.Recompute(floor)
	k.coherence = validation.ScanCoherence(&k.Plan, floor)
}

// apply commits a transition's floor into the plan and pushes a
// history checkpoint, or reports its rejection unchanged.
func (k *Kernel) apply(t interaction.Transition) Result {
	if !t.Applied {
		k.provisional.Abort()
		return Result{Message: t.Message}
	}

	next := k.Plan.Clone()
	idx, ok := next.FloorIndex(t.Floor.ID)
	if !ok {
		return Result{Message: "floor no longer exists"}
	}
	next.Floors[idx] = t.Floor

	if t.Description == "place vertical link" && len(t.Floor.Links) > 0 {
		newLink := t.Floor.Links[len(t.Floor.Links)-1]
		if paired, ok := floors.PairVerticalLinks(next, t.Floor.ID, newLink); ok {
			next = paired
			// Drop the unpaired link this transition appended; the paired
			// pass re-adds it with a fresh id alongside its reciprocal.
			hostIdx, _ := next.FloorIndex(t.Floor.ID)
			next.Floors[hostIdx].Links = removeLink(next.Floors[hostIdx].Links, newLink.ID)
		}
	}

	next.UpdatedAt = time.Now()
	if k.provisional.Active() {
		k.provisional.Update(next)
		if p, ok := k.provisional.Commit(); ok {
			next = p
		}
	}
	k.Plan = next
	k.History.Commit(next, t.Description)
	k.recompute()
	return Result{Applied: true, Description: t.Description}
}

func removeLink(links []arena.VerticalLink, id uuid.UUID) []arena.VerticalLink {
	for i, l := range links {
		if l.ID == id {
			return append(links[:i], links[i+1:]...)
		}
	}
	return links
}

// BeginTool switches the active tool, discarding any in-progress
// provisional operation.
func (k *Kernel) BeginTool(tool interaction.Tool) {
	k.Machine.BeginTool(tool)
	k.provisional.Abort()
}

// SetCurrentFloor switches the plan's current floor.
func (k *Kernel) SetCurrentFloor(id uuid.UUID) error {
	if _, ok := k.Plan.FloorIndex(id); !ok {
		return museumerrors.Placement("floor not found")
	}
	k.Plan.CurrentFloor = id
	k.recompute()
	return nil
}

// PointerDown begins or advances a provisional operation under the
// active tool at point, snapping against the current floor.
func (k *Kernel) PointerDown(point geom.Point, mods interaction.Modifiers) Result {
	floor := k.currentFloor()
	if floor == nil {
		return Result{Message: "no current floor"}
	}
	idx := snap.BuildIndex(floor)
	t := k.Machine.PointerDown(floor, idx, point, mods)
	if t.Applied {
		return k.apply(t)
	}
	if k.Machine.InProgress() {
		k.provisional.Begin(k.Plan)
	}
	if t.Message != "" {
		return Result{Message: t.Message}
	}
	return Result{}
}

// PointerMove updates the provisional operation's live pointer
// position without touching committed state (spec §4.5).
func (k *Kernel) PointerMove(point geom.Point) {
	k.Machine.PointerMove(point)
	if k.provisional.Active() {
		k.provisional.Update(k.Plan)
	}
}

// PointerUp commits the in-progress operation, if any.
func (k *Kernel) PointerUp(point geom.Point) Result {
	floor := k.currentFloor()
	if floor == nil {
		return Result{Message: "no current floor"}
	}
	t := k.Machine.PointerUp(floor, &k.Plan, point)
	return k.apply(t)
}

// Escape aborts any in-progress provisional operation without
// mutating committed state (spec §5).
func (k *Kernel) Escape() {
	k.Machine.Escape()
	k.provisional.Abort()
}

// DeleteSelection deletes the current selection's element and its
// cascade dependents as a single historied commit (spec §5).
func (k *Kernel) DeleteSelection() Result {
	floor := k.currentFloor()
	if floor == nil {
		return Result{Message: "no current floor"}
	}
	t := k.Machine.DeleteSelection(k.Plan, floor.ID)
	return k.apply(t)
}

// Undo moves the history cursor one step back.
func (k *Kernel) Undo() bool {
	plan, ok := k.History.Undo()
	if !ok {
		return false
	}
	k.Plan = plan
	k.recompute()
	return true
}

// Redo moves the history cursor one step forward.
func (k *Kernel) Redo() bool {
	plan, ok := k.History.Redo()
	if !ok {
		return false
	}
	k.Plan = plan
	k.recompute()
	return true
}
