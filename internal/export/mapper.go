package export

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/arx-os/museum-editor/internal/arena"
	"github.com/arx-os/museum-editor/internal/config"
	"github.com/arx-os/museum-editor/internal/geom"
	"github.com/arx-os/museum-editor/internal/validation"
)

// Options carries the caller-supplied fields the mapper cannot derive
// from the plan alone (spec §6 metadata).
type Options struct {
	MuseumID      string
	FormatVersion string
	ExportedAt    time.Time
}

// idAllocator hands out sequential int64 ids in call order, giving the
// mapper its "re-running on an unchanged plan reproduces identical ids"
// determinism without threading a counter through every loop.
type idAllocator struct{ next int64 }

func newIDAllocator() *idAllocator { return &idAllocator{next: 1} }

func (a *idAllocator) take() int64 {
	id := a.next
	a.next++
	return id
}

// Map deterministically maps plan to the stable export document (spec
// §4.10, §6). Ids are assigned in floor order, then per-floor in
// room/wall/door/link/artwork order, so re-running Map on an unchanged
// plan reproduces identical ids and is safe to diff across exports.
func Map(plan arena.Plan, cfg config.EditorConfig, opts Options) Document {
	doc := Document{
		Metadata: Metadata{
			ExportDate:    opts.ExportedAt,
			MuseumID:      opts.MuseumID,
			GridSizeM:     cfg.Grid.UnitMetres,
			TotalFloors:   len(plan.Floors),
			FormatVersion: opts.FormatVersion,
		},
	}

	entityIDs := newIDAllocator()
	pointIDs := newIDAllocator()
	relationIDs := newIDAllocator()
	oeuvreIDs := newIDAllocator()

	// roomEntityByID lets the door pass resolve CONNECTS_TO targets
	// without a second scan of the room slice.
	roomEntityByID := make(map[uuid.UUID]int64)

	for floorIdx := range plan.Floors {
		floor := &plan.Floors[floorIdx]
		planID := int64(floorIdx + 1)
		doc.PlanEditor.Plans = append(doc.PlanEditor.Plans, PlanRow{
			ID: planID, Nom: floor.Name, DateCreation: opts.ExportedAt, SortOrder: floorIdx,
		})

		legacyFloor := LegacyFloor{ID: floor.ID.String(), Name: floor.Name}

		for _, room := range floor.Rooms {
			id := entityIDs.take()
			doc.PlanEditor.Entities = append(doc.PlanEditor.Entities, EntityRow{
				ID: id, PlanID: planID, EntityType: EntityRoom, SourceID: room.ID.String(),
			})
			roomEntityByID[room.ID] = id

			legacyRoom := LegacyRoom{ID: room.ID.String()}
			for i, v := range room.Vertices {
				x, y := v.Grid()
				doc.PlanEditor.Points = append(doc.PlanEditor.Points, PointRow{
					ID: pointIDs.take(), EntityID: id, X: x, Y: y, Ordre: i + 1,
				})
				legacyRoom.Vertices = append(legacyRoom.Vertices, LegacyXY{X: x, Y: y})
			}
			legacyFloor.Rooms = append(legacyFloor.Rooms, legacyRoom)
		}

		for _, wall := range floor.Walls {
			id := entityIDs.take()
			doc.PlanEditor.Entities = append(doc.PlanEditor.Entities, EntityRow{
				ID: id, PlanID: planID, EntityType: EntityWall, SourceID: wall.ID.String(),
			})
			appendSegmentPoints(&doc.PlanEditor.Points, pointIDs, id, wall.Segment)
			legacyFloor.Walls = append(legacyFloor.Walls, legacySegmentOf(wall.ID, wall.Segment))
		}

		for _, door := range floor.Doors {
			id := entityIDs.take()
			doc.PlanEditor.Entities = append(doc.PlanEditor.Entities, EntityRow{
				ID: id, PlanID: planID, EntityType: EntityDoor, SourceID: door.ID.String(),
			})
			appendSegmentPoints(&doc.PlanEditor.Points, pointIDs, id, door.Segment)
			legacyFloor.Doors = append(legacyFloor.Doors, legacySegmentOf(door.ID, door.Segment))

			for _, roomID := range adjacentRoomIDs(door) {
				toEntity, ok := roomEntityByID[roomID]
				if !ok {
					continue
				}
				doc.PlanEditor.Relations = append(doc.PlanEditor.Relations, RelationRow{
					ID: relationIDs.take(), SourceID: id, CibleID: toEntity, TypeRelation: "CONNECTS_TO",
				})
			}
		}

		for _, link := range floor.Links {
			id := entityIDs.take()
			doc.PlanEditor.Entities = append(doc.PlanEditor.Entities, EntityRow{
				ID: id, PlanID: planID, EntityType: EntityVerticalLink, SourceID: link.ID.String(),
			})
			appendSegmentPoints(&doc.PlanEditor.Points, pointIDs, id, link.Segment)
			legacyFloor.Links = append(legacyFloor.Links, legacySegmentOf(link.ID, link.Segment))

			if hostEntity, ok := roomEntityByID[derefOr(link.HostRoom, uuid.Nil)]; ok && link.HostRoom != nil {
				doc.PlanEditor.Relations = append(doc.PlanEditor.Relations, RelationRow{
					ID: relationIDs.take(), SourceID: id, CibleID: hostEntity, TypeRelation: "CONNECTS_TO",
				})
			}
		}

		for _, art := range floor.Artworks {
			id := entityIDs.take()
			oeuvreID := oeuvreIDs.take()
			doc.PlanEditor.Entities = append(doc.PlanEditor.Entities, EntityRow{
				ID: id, PlanID: planID, EntityType: EntityArtwork, Name: art.Name,
				OeuvreID: sql.NullInt64{Int64: oeuvreID, Valid: true}, SourceID: art.ID.String(),
			})

			if art.W > 0 && art.H > 0 {
				for i, corner := range art.Rect() {
					x, y := corner.Grid()
					doc.PlanEditor.Points = append(doc.PlanEditor.Points, PointRow{
						ID: pointIDs.take(), EntityID: id, X: x, Y: y, Ordre: i + 1,
					})
				}
			} else {
				x, y := art.Anchor.Grid()
				doc.PlanEditor.Points = append(doc.PlanEditor.Points, PointRow{
					ID: pointIDs.take(), EntityID: id, X: x, Y: y, Ordre: 1,
				})
			}

			room := ""
			if roomID, ok := validation.ContainingRoom(floor, art); ok {
				room = roomID.String()
			}
			doc.OeuvresContenus.Oeuvres = append(doc.OeuvresContenus.Oeuvres, OeuvreRow{
				ID: oeuvreID, EntityID: id, Title: art.Name, Room: room, DocumentRef: art.DocumentRef,
			})

			ax, ay := art.Anchor.Grid()
			legacyFloor.Artworks = append(legacyFloor.Artworks, LegacyRectangle{
				ID: art.ID.String(), Anchor: LegacyXY{X: ax, Y: ay}, W: art.W, H: art.H,
			})
		}

		doc.Divers.Stats.TotalRooms += len(floor.Rooms)
		doc.Divers.Stats.TotalArtworks += len(floor.Artworks)
		doc.Divers.Stats.TotalDoors += len(floor.Doors)

		doc.LegacyFormat.Floors = append(doc.LegacyFormat.Floors, legacyFloor)
	}

	return doc
}

// appendSegmentPoints emits the two endpoint samples (ordre 1 = A, ordre
// 2 = B) for a door/wall/link entity, preserving segment direction.
func appendSegmentPoints(points *[]PointRow, ids *idAllocator, entityID int64, seg geom.Segment) {
	ax, ay := seg.A.Grid()
	bx, by := seg.B.Grid()
	*points = append(*points,
		PointRow{ID: ids.take(), EntityID: entityID, X: ax, Y: ay, Ordre: 1},
		PointRow{ID: ids.take(), EntityID: entityID, X: bx, Y: by, Ordre: 2},
	)
}

func legacySegmentOf(id uuid.UUID, seg geom.Segment) LegacySegment {
	ax, ay := seg.A.Grid()
	bx, by := seg.B.Grid()
	return LegacySegment{ID: id.String(), A: LegacyXY{X: ax, Y: ay}, B: LegacyXY{X: bx, Y: by}}
}

// adjacentRoomIDs returns the rooms a door connects: its two boundary
// owners when interior, or its single hosting room's edge when hosted
// on a room's own boundary (spec §4.10 CONNECTS_TO relations).
func adjacentRoomIDs(door arena.Door) []uuid.UUID {
	var ids []uuid.UUID
	if door.RoomA != nil {
		ids = append(ids, *door.RoomA)
	}
	if door.RoomB != nil {
		ids = append(ids, *door.RoomB)
	}
	if door.HostRoom != nil {
		ids = append(ids, *door.HostRoom)
	}
	return ids
}

func derefOr(id *uuid.UUID, fallback uuid.UUID) uuid.UUID {
	if id == nil {
		return fallback
	}
	return *id
}
