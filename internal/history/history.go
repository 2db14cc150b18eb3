// Package history implements the editor's bounded undo/redo ring (spec
// §4.8). Checkpoint metadata follows the teacher's timestamped mutation
// pattern (core/wall_composition/types/wall_structure.go: CreatedAt /
// UpdatedAt on every structural edit), generalised here to a labelled
// checkpoint rather than a single wall's own timestamps.
package history

import (
	"reflect"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/arx-os/museum-editor/internal/arena"
)

var checkpointGauge = prometheus.NewGauge(prometheus.GaugeOpts{
	Name: "museum_history_checkpoints",
	Help: "Number of checkpoints currently held in the undo/redo ring.",
})

// Register adds the history manager's metric to reg.
func Register(reg prometheus.Registerer) error {
	return reg.Register(checkpointGauge)
}

// Checkpoint is one committed snapshot of the plan.
type Checkpoint struct {
	Plan        arena.Plan
	Description string
}

// Ring is a bounded, cursor-addressed sequence of checkpoints. New
// commits truncate the forward tail past the cursor (spec §4.8: "any
// new commit truncates the forward tail").
type Ring struct {
	cap         int
	checkpoints []Checkpoint
	cursor      int // index of the current checkpoint; -1 when empty
}

// New returns an empty ring with the given capacity.
func New(capacity int) *Ring {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring{cap: capacity, cursor: -1}
}

// Commit pushes a new checkpoint, truncating any forward (redo) tail
// first. Redundant commits — identical plan contents to the current
// checkpoint — are suppressed and report applied=false (spec §4.8).
func (r *Ring) Commit(plan arena.Plan, description string) (applied bool) {
	if r.cursor >= 0 && plansEqual(r.checkpoints[r.cursor].Plan, plan) {
		return false
	}

	r.checkpoints = r.checkpoints[:r.cursor+1]
	r.checkpoints = append(r.checkpoints, Checkpoint{Plan: plan, Description: description})
	r.cursor = len(r.checkpoints) - 1

	if len(r.checkpoints) > r.cap {
		overflow := len(r.checkpoints) - r.cap
		r.checkpoints = r.checkpoints[overflow:]
		r.cursor -= overflow
	}

	checkpointGauge.Set(float64(len(r.checkpoints)))
	return true
}

// plansEqual reports whether two plans have identical contents,
// ignoring timestamps, for redundant-commit suppression.
func plansEqual(a, b arena.Plan) bool {
	a.CreatedAt, a.UpdatedAt = time.Time{}, time.Time{}
	b.CreatedAt, b.UpdatedAt = time.Time{}, time.Time{}
	return reflect.DeepEqual(a, b)
}

// Undo moves the cursor one step back and returns that checkpoint's
// plan. ok is false if already at the oldest checkpoint.
func (r *Ring) Undo() (arena.Plan, bool) {
	if r.cursor <= 0 {
		return arena.Plan{}, false
	}
	r.cursor--
	return r.checkpoints[r.cursor].Plan, true
}

// Redo moves the cursor one step forward and returns that checkpoint's
// plan. ok is false if already at the newest checkpoint.
func (r *Ring) Redo() (arena.Plan, bool) {
	if r.cursor < 0 || r.cursor >= len(r.checkpoints)-1 {
		return arena.Plan{}, false
	}
	r.cursor++
	return r.checkpoints[r.cursor].Plan, true
}

// Current returns the checkpoint at the cursor, if any.
func (r *Ring) Current() (Checkpoint, bool) {
	if r.cursor < 0 {
		return Checkpoint{}, false
	}
	return r.checkpoints[r.cursor], true
}

// Len returns the number of checkpoints currently held.
func (r *Ring) Len() int { return len(r.checkpoints) }
