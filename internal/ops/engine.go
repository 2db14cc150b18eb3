// Package ops implements the editor's element lifecycle operations
// (spec §4.5): one commit function per tool, each running the uniform
// begin/update/commit/abort phases the interaction state machine
// drives. Every commit runs validation before touching floor state (no
// commit here runs a cascade), mirroring the teacher's composition engine pipeline
// (core/wall_composition/engine/composition_engine.go: build index,
// detect, build structures, validate, filter) adapted from wall
// composition to element commits.
package ops

import (
	"github.com/google/uuid"

	"github.com/arx-os/museum-editor/internal/arena"
	"github.com/arx-os/museum-editor/internal/config"
	"github.com/arx-os/museum-editor/internal/geom"
	"github.com/arx-os/museum-editor/internal/validation"
)

// Engine wraps the editor configuration shared by every tool's commit
// function.
type Engine struct {
	Config config.EditorConfig
}

// New returns an Engine bound to cfg.
func New(cfg config.EditorConfig) *Engine {
	return &Engine{Config: cfg}
}

// Outcome is the result of a commit attempt: either a new floor or a
// rejection, mirroring validation.Result's shape so callers can surface
// the same message/suggestions path for both validator and cascade
// rejections.
type Outcome struct {
	Floor   arena.Floor
	Result  validation.Result
	Applied bool
}

func rejectOutcome(res validation.Result) Outcome {
	return Outcome{Result: res}
}

func acceptOutcome(floor arena.Floor) Outcome {
	return Outcome{Floor: floor, Applied: true, Result: validation.Result{Valid: true}}
}

// minDragExceeded reports whether drag reaches the configured minimum,
// guarding against degenerate single-click shapes (spec §4.5).
func (e *Engine) minDragExceeded(anchor, current geom.Point) bool {
	return anchor.DistanceTo(current) >= e.Config.Constraints.MinDragDistance
}

func newID() uuid.UUID { return uuid.New() }
