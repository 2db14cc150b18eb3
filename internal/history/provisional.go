package history

import "github.com/arx-os/museum-editor/internal/arena"

// Provisional holds in-progress drag/draw state that bypasses the
// history ring (spec §4.8: "provisional updates during drags bypass the
// history... to avoid polluting the ring with every pointer move; only
// the final commit is recorded"). It never touches a Ring.
type Provisional struct {
	plan   arena.Plan
	active bool
}

// Begin starts a provisional update from plan.
func (p *Provisional) Begin(plan arena.Plan) {
	p.plan = plan
	p.active = true
}

// Update replaces the provisional plan without recording anything.
func (p *Provisional) Update(plan arena.Plan) {
	if !p.active {
		return
	}
	p.plan = plan
}

// Abort discards the provisional state (spec §4.7: Escape reverts any
// provisional state).
func (p *Provisional) Abort() {
	p.plan = arena.Plan{}
	p.active = false
}

// Commit returns the provisional plan for the caller to push onto a
// Ring, clearing the provisional state.
func (p *Provisional) Commit() (arena.Plan, bool) {
	if !p.active {
		return arena.Plan{}, false
	}
	plan := p.plan
	p.Abort()
	return plan, true
}

// Active reports whether a provisional update is in progress.
func (p *Provisional) Active() bool { return p.active }
