package validation

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/arx-os/museum-editor/internal/arena"
)

var (
	validationCallsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "museum_validation_calls_total",
		Help: "Total number of validator invocations, by entity kind.",
	}, []string{"kind"})

	coherenceIssues = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "museum_coherence_issues",
		Help: "Residual invariant violations found by the last coherence scan, by kind.",
	}, []string{"kind"})
)

// Register adds the validation engine's metrics to reg. Safe to call
// once per process; registering into a fresh prometheus.Registry in
// tests avoids collisions with the default global registry.
func Register(reg prometheus.Registerer) error {
	if err := reg.Register(validationCallsTotal); err != nil {
		return err
	}
	return reg.Register(coherenceIssues)
}

func countCall(kind string) { validationCallsTotal.WithLabelValues(kind).Inc() }

// CoherenceReport tallies the cheap, read-only checks spec §4.2 runs
// after each commit: orphan artworks, dangling vertical links, and
// doors/links no longer sitting on an existing host.
type CoherenceReport struct {
	OrphanArtworks   int
	DanglingLinks    int
	UnhostedOpenings int
}

// TotalIssues returns the sum of all residual issue counts.
func (r CoherenceReport) TotalIssues() int {
	return r.OrphanArtworks + r.DanglingLinks + r.UnhostedOpenings
}

// ScanCoherence runs the global coherence scan over a single floor. It
// never blocks edits (spec §4.2: "does not block edits"); it only
// produces a status for a coherence indicator and updates the exported
// gauges.
func ScanCoherence(plan *arena.Plan, floor *arena.Floor) CoherenceReport {
	var report CoherenceReport

	for _, a := range floor.Artworks {
		if _, found := ContainingRoom(floor, a); !found {
			report.OrphanArtworks++
		}
	}

	for _, l := range floor.Links {
		if _, found := plan.FloorIndex(l.DestFloor); !found {
			report.DanglingLinks++
		}
	}

	for _, d := range floor.Doors {
		if _, found := FindHost(floor, d.Segment); !found {
			report.UnhostedOpenings++
		}
	}
	for _, l := range floor.Links {
		if _, found := FindHost(floor, l.Segment); !found {
			report.UnhostedOpenings++
		}
	}

	coherenceIssues.WithLabelValues("orphan_artworks").Set(float64(report.OrphanArtworks))
	coherenceIssues.WithLabelValues("dangling_links").Set(float64(report.DanglingLinks))
	coherenceIssues.WithLabelValues("unhosted_openings").Set(float64(report.UnhostedOpenings))

	return report
}
