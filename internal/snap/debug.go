package snap

import (
	"golang.org/x/time/rate"

	"github.com/arx-os/museum-editor/internal/museumlog"
)

// DebugLogger throttles the snap service's per-pointer-move debug
// logging: FindCandidates can run tens of times a second during a drag,
// and logging every call would drown the JSON log stream. At most one
// debug line is emitted per tick.
type DebugLogger struct {
	log     *museumlog.Logger
	limiter *rate.Limiter
}

// NewDebugLogger returns a logger that allows at most ratePerSecond
// debug emissions per second, bursting up to one more than that.
func NewDebugLogger(log *museumlog.Logger, ratePerSecond float64) *DebugLogger {
	return &DebugLogger{log: log, limiter: rate.NewLimiter(rate.Limit(ratePerSecond), int(ratePerSecond)+1)}
}

// LogCandidates emits a throttled debug line describing the candidate
// search result, dropping the line entirely if the limiter denies it.
func (d *DebugLogger) LogCandidates(best Candidate, found bool, total int) {
	if d == nil || d.log == nil || !d.limiter.Allow() {
		return
	}
	if !found {
		d.log.Debug("snap: no candidate in radius")
		return
	}
	d.log.Debugf("snap: best=%s distance=%.3f total_candidates=%d", best.Kind, best.Distance, total)
}
