package validation

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/arx-os/museum-editor/internal/arena"
	"github.com/arx-os/museum-editor/internal/geom"
)

func TestScanCoherence_CleanFloorHasNoIssues(t *testing.T) {
	floor, _ := roomFloor()
	plan := &arena.Plan{Floors: []arena.Floor{*floor}}
	report := ScanCoherence(plan, floor)
	assert.Equal(t, 0, report.TotalIssues())
}

func TestScanCoherence_DetectsOrphanArtwork(t *testing.T) {
	floor, _ := roomFloor()
	floor.Artworks = append(floor.Artworks, arena.Artwork{
		ID:     uuid.New(),
		Anchor: geom.NewPoint(100, 100),
		W:      1, H: 1,
	})
	plan := &arena.Plan{Floors: []arena.Floor{*floor}}
	report := ScanCoherence(plan, floor)
	assert.Equal(t, 1, report.OrphanArtworks)
	assert.Equal(t, 1, report.TotalIssues())
}

func TestScanCoherence_DetectsDanglingLink(t *testing.T) {
	floor, _ := roomFloor()
	floor.Links = append(floor.Links, arena.VerticalLink{
		ID:        uuid.New(),
		Segment:   geom.Segment{A: geom.NewPoint(2, 0), B: geom.NewPoint(4, 0)},
		DestFloor: uuid.New(),
	})
	plan := &arena.Plan{Floors: []arena.Floor{*floor}}
	report := ScanCoherence(plan, floor)
	assert.Equal(t, 1, report.DanglingLinks)
}

func TestScanCoherence_DetectsUnhostedOpening(t *testing.T) {
	floor, _ := roomFloor()
	floor.Doors = append(floor.Doors, arena.Door{
		ID:      uuid.New(),
		Segment: geom.Segment{A: geom.NewPoint(50, 50), B: geom.NewPoint(51, 50)},
	})
	plan := &arena.Plan{Floors: []arena.Floor{*floor}}
	report := ScanCoherence(plan, floor)
	assert.Equal(t, 1, report.UnhostedOpenings)
}
