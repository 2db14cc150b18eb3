package export

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arx-os/museum-editor/internal/arena"
	"github.com/arx-os/museum-editor/internal/config"
	"github.com/arx-os/museum-editor/internal/geom"
)

func sampleFloor() arena.Floor {
	roomID := uuid.New()
	doorID := uuid.New()
	artworkID := uuid.New()

	room := arena.Room{
		ID:       roomID,
		Vertices: geom.RectanglePolygon(geom.NewPoint(0, 0), geom.NewPoint(10, 6)),
	}
	door := arena.Door{
		ID:       doorID,
		Segment:  geom.Segment{A: geom.NewPoint(2, 0), B: geom.NewPoint(3, 0)},
		HostRoom: &roomID,
		HostEdge: 0,
	}
	art := arena.Artwork{
		ID:          artworkID,
		Anchor:      geom.NewPoint(1, 1),
		W:           2,
		H:           1,
		Name:        "Untitled",
		DocumentRef: "doc://untitled",
	}

	return arena.Floor{
		ID:       uuid.New(),
		Name:     "Ground Floor",
		Rooms:    []arena.Room{room},
		Doors:    []arena.Door{door},
		Artworks: []arena.Artwork{art},
	}
}

func samplePlan() arena.Plan {
	floor := sampleFloor()
	return arena.Plan{Floors: []arena.Floor{floor}, CurrentFloor: floor.ID}
}

func testOpts() Options {
	return Options{MuseumID: "museum-1", FormatVersion: "1.0", ExportedAt: time.Unix(0, 0).UTC()}
}

func TestMap_AssignsSequentialPlanAndEntityIDs(t *testing.T) {
	doc := Map(samplePlan(), config.Default(), testOpts())

	require.Len(t, doc.PlanEditor.Plans, 1)
	assert.Equal(t, int64(1), doc.PlanEditor.Plans[0].ID)
	assert.Equal(t, "Ground Floor", doc.PlanEditor.Plans[0].Nom)

	require.Len(t, doc.PlanEditor.Entities, 3) // room, door, artwork
	ids := map[int64]EntityType{}
	for _, e := range doc.PlanEditor.Entities {
		ids[e.ID] = e.EntityType
		assert.Equal(t, int64(1), e.PlanID)
	}
	assert.Equal(t, EntityRoom, ids[1])
	assert.Equal(t, EntityDoor, ids[2])
	assert.Equal(t, EntityArtwork, ids[3])
}

func TestMap_RoomPointsPreservePolygonOrderAndCoordinates(t *testing.T) {
	plan := samplePlan()
	doc := Map(plan, config.Default(), testOpts())

	var roomPoints []PointRow
	for _, p := range doc.PlanEditor.Points {
		if p.EntityID == 1 {
			roomPoints = append(roomPoints, p)
		}
	}
	require.Len(t, roomPoints, 4)
	for i, p := range roomPoints {
		assert.Equal(t, i+1, p.Ordre) // ordre is 1-based within the entity
	}
	assert.InDelta(t, 0, roomPoints[0].X, 1e-9)
	assert.InDelta(t, 0, roomPoints[0].Y, 1e-9)
	assert.InDelta(t, 10, roomPoints[1].X, 1e-9)
}

func TestMap_DoorEmitsConnectsToRelationForHostRoom(t *testing.T) {
	doc := Map(samplePlan(), config.Default(), testOpts())

	require.Len(t, doc.PlanEditor.Relations, 1)
	rel := doc.PlanEditor.Relations[0]
	assert.Equal(t, "CONNECTS_TO", rel.TypeRelation)
	assert.Equal(t, int64(2), rel.SourceID) // door entity id
	assert.Equal(t, int64(1), rel.CibleID)  // room entity id
}

func TestMap_ArtworkEmitsFourCornersAndOeuvreRow(t *testing.T) {
	doc := Map(samplePlan(), config.Default(), testOpts())

	var artworkPoints []PointRow
	for _, p := range doc.PlanEditor.Points {
		if p.EntityID == 3 {
			artworkPoints = append(artworkPoints, p)
		}
	}
	require.Len(t, artworkPoints, 4)

	require.Len(t, doc.OeuvresContenus.Oeuvres, 1)
	oeuvre := doc.OeuvresContenus.Oeuvres[0]
	assert.Equal(t, "Untitled", oeuvre.Title)
	assert.Equal(t, int64(3), oeuvre.EntityID)
	assert.NotEmpty(t, oeuvre.Room) // artwork's containing room id

	var artworkEntity EntityRow
	for _, e := range doc.PlanEditor.Entities {
		if e.ID == 3 {
			artworkEntity = e
		}
	}
	assert.Equal(t, "Untitled", artworkEntity.Name)
	require.True(t, artworkEntity.OeuvreID.Valid)
	assert.Equal(t, oeuvre.ID, artworkEntity.OeuvreID.Int64)
}

func TestMap_LegacyFormatMirrorsCountsAndCoordinatesExactly(t *testing.T) {
	doc := Map(samplePlan(), config.Default(), testOpts())

	require.Len(t, doc.LegacyFormat.Floors, 1)
	lf := doc.LegacyFormat.Floors[0]
	require.Len(t, lf.Rooms, 1)
	require.Len(t, lf.Rooms[0].Vertices, 4)
	assert.Equal(t, LegacyXY{X: 0, Y: 0}, lf.Rooms[0].Vertices[0])
	require.Len(t, lf.Doors, 1)
	assert.Equal(t, LegacyXY{X: 2, Y: 0}, lf.Doors[0].A)
	require.Len(t, lf.Artworks, 1)
	assert.Equal(t, 2.0, lf.Artworks[0].W)
}

func TestMap_StatsCountElementsPerFloor(t *testing.T) {
	doc := Map(samplePlan(), config.Default(), testOpts())
	assert.Equal(t, 1, doc.Divers.Stats.TotalRooms)
	assert.Equal(t, 1, doc.Divers.Stats.TotalDoors)
	assert.Equal(t, 1, doc.Divers.Stats.TotalArtworks)
}

func TestMap_CoordinatesRoundTripWithoutDrift(t *testing.T) {
	plan := samplePlan()
	doc := Map(plan, config.Default(), testOpts())

	original := plan.Floors[0].Rooms[0].Vertices
	var exported []PointRow
	for _, p := range doc.PlanEditor.Points {
		if p.EntityID == 1 {
			exported = append(exported, p)
		}
	}
	require.Len(t, exported, len(original))
	for i, v := range original {
		x, y := v.Grid()
		assert.Equal(t, x, exported[i].X)
		assert.Equal(t, y, exported[i].Y)
	}
}

func TestMap_IsDeterministicAcrossRepeatedCalls(t *testing.T) {
	plan := samplePlan()
	cfg := config.Default()
	opts := testOpts()

	first := Map(plan, cfg, opts)
	second := Map(plan, cfg, opts)
	assert.Equal(t, first, second)
}

func TestMap_MetadataReflectsOptionsAndFloorCount(t *testing.T) {
	doc := Map(samplePlan(), config.Default(), testOpts())
	assert.Equal(t, "museum-1", doc.Metadata.MuseumID)
	assert.Equal(t, "1.0", doc.Metadata.FormatVersion)
	assert.Equal(t, 1, doc.Metadata.TotalFloors)
	assert.Equal(t, config.Default().Grid.UnitMetres, doc.Metadata.GridSizeM)
}
