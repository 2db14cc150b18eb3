// Package measurement implements the editor's measurement engine (spec
// §4.9): after each commit, recomputes per-room area and edge lengths
// for the floor's measurement table, and produces dynamic in-progress
// readouts for sketches that have not yet committed. Area and edge
// derivation follow the teacher's shoelace Area/Centroid pair
// (core/topology/structures.go), generalised from a detected Face to an
// editor Room and from nanometre-integer accumulation to the kernel's
// own sub-grid Point arithmetic.
package measurement

import (
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/google/uuid"

	"github.com/arx-os/museum-editor/internal/arena"
	"github.com/arx-os/museum-editor/internal/config"
	"github.com/arx-os/museum-editor/internal/geom"
)

// RoomMeasurement is one room's entry in the floor's measurement table.
type RoomMeasurement struct {
	RoomID      uuid.UUID
	AreaMetres2 float64
	EdgeLengths []float64 // metres, in polygon edge order
	Centroid    geom.Point
}

// Table is a floor's full set of room measurements.
type Table struct {
	FloorID uuid.UUID
	Rooms   []RoomMeasurement
}

// Engine recomputes measurement tables, caching per-room results keyed
// by a hash of the room's vertex data so an unrelated edit elsewhere on
// the floor does not force every room to re-derive its measurements.
type Engine struct {
	cache      *ristretto.Cache
	unitMetres float64
}

// New returns a measurement engine sized for a few thousand rooms across
// open floors, using the grid-unit-to-metre ratio from cfg.
func New(cfg config.GridConfig) (*Engine, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 100_000,
		MaxCost:     10_000_000,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &Engine{cache: cache, unitMetres: cfg.UnitMetres}, nil
}

// Close releases the cache's background resources.
func (e *Engine) Close() { e.cache.Close() }

// Recompute derives the measurement table for floor, reusing a cached
// entry per room when its vertex set is unchanged.
func (e *Engine) Recompute(floor *arena.Floor) Table {
	table := Table{FloorID: floor.ID}
	for _, room := range floor.Rooms {
		table.Rooms = append(table.Rooms, e.measureRoom(room))
	}
	return table
}

func (e *Engine) measureRoom(room arena.Room) RoomMeasurement {
	key := cacheKey(room)
	if cached, found := e.cache.Get(key); found {
		if m, ok := cached.(RoomMeasurement); ok {
			return m
		}
	}

	m := RoomMeasurement{
		RoomID:      room.ID,
		AreaMetres2: geom.PolygonArea(room.Vertices) * e.unitMetres * e.unitMetres,
		Centroid:    geom.PolygonCentroid(room.Vertices),
	}
	n := len(room.Vertices)
	for i := 0; i < n; i++ {
		a, b := room.Vertices[i], room.Vertices[(i+1)%n]
		m.EdgeLengths = append(m.EdgeLengths, a.DistanceTo(b)*e.unitMetres)
	}

	e.cache.SetWithTTL(key, m, 1, 5*time.Minute)
	e.cache.Wait()
	return m
}

func cacheKey(room arena.Room) string {
	key := room.ID.String()
	for _, v := range room.Vertices {
		key += ":" + itoa(v.X) + "," + itoa(v.Y)
	}
	return key
}

func itoa(v int64) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// InProgressEdgeLength returns the dynamic length readout for the
// current edge of an in-progress polyline (spec §4.9: "current polygon
// edge length... produced on demand without entering the measurement
// table").
func InProgressEdgeLength(last, cursor geom.Point, unitMetres float64) float64 {
	return last.DistanceTo(cursor) * unitMetres
}

// InProgressRectangle returns the dynamic width/height readout for an
// in-progress rectangle/artwork drag.
func InProgressRectangle(anchor, cursor geom.Point, unitMetres float64) (width, height float64) {
	ax, ay := anchor.Grid()
	cx, cy := cursor.Grid()
	return absF(cx-ax) * unitMetres, absF(cy-ay) * unitMetres
}

// InProgressRadius returns the dynamic radius readout for an in-progress
// circle/arc drag.
func InProgressRadius(center, cursor geom.Point, unitMetres float64) float64 {
	return center.DistanceTo(cursor) * unitMetres
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
