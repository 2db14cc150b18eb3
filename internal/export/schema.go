// Package export implements the editor's relational export mapper
// (spec §4.10, §6): a pure function from an immutable plan snapshot to
// the stable export document contract. Table shapes are expressed as
// gorm-tagged structs, following the teacher's schema-as-Go-structs
// pattern (internal/spatial/postgis/schema.go defines its tables as SQL
// DDL strings; here the same column lists are expressed as gorm model
// tags instead, since the kernel never opens a live database
// connection — persistence is explicitly out of scope).
package export

import (
	"database/sql"
	"time"
)

// EntityType enumerates the entity kinds the mapper emits (spec §4.10).
type EntityType string

const (
	EntityRoom         EntityType = "ROOM"
	EntityArtwork      EntityType = "ARTWORK"
	EntityDoor         EntityType = "DOOR"
	EntityVerticalLink EntityType = "VERTICAL_LINK"
	EntityWall         EntityType = "WALL"
)

// PlanRow is one row of plans[], one per floor in stack order: spec §6's
// `plans(plan_id pk, nom, description, date_creation)`.
type PlanRow struct {
	ID           int64          `gorm:"primaryKey;column:plan_id"`
	Nom          string         `gorm:"column:nom"`
	Description  sql.NullString `gorm:"column:description"` // the kernel carries no floor description yet
	DateCreation time.Time      `gorm:"column:date_creation"`
	SortOrder    int            `gorm:"column:sort_order"`
}

func (PlanRow) TableName() string { return "plans" }

// EntityRow is one row of entities[]: a room, artwork, door, vertical
// link, or wall on a given plan. Spec §6: `entities(entity_id pk, plan_id
// fk, name, entity_type, description, oeuvre_id fk nullable)`.
type EntityRow struct {
	ID          int64          `gorm:"primaryKey;column:entity_id"`
	PlanID      int64          `gorm:"column:plan_id;index"`
	Name        string         `gorm:"column:name"`
	EntityType  EntityType     `gorm:"column:entity_type"`
	Description sql.NullString `gorm:"column:description"` // rooms/walls/doors/links carry no description yet
	OeuvreID    sql.NullInt64  `gorm:"column:oeuvre_id"`   // set only for artwork entities
	SourceID    string         `gorm:"column:source_id"`   // original uuid.UUID, for round-trip identity
}

func (EntityRow) TableName() string { return "entities" }

// PointRow is one ordered geometry sample belonging to an entity. Spec
// §6: `points(point_id pk, entity_id fk, x, y, ordre)` — "ordre is
// 1-based within the entity".
type PointRow struct {
	ID       int64   `gorm:"primaryKey;column:point_id"`
	EntityID int64   `gorm:"column:entity_id;index"`
	X        float64 `gorm:"column:x"`
	Y        float64 `gorm:"column:y"`
	Ordre    int     `gorm:"column:ordre"`
}

func (PointRow) TableName() string { return "points" }

// RelationRow is one CONNECTS_TO edge from a door entity to an adjacent
// room entity, or from a vertical-link entity to its host room entity. Spec §6: `relations(relation_id pk, source_id fk
// entities, cible_id fk entities, type_relation)`.
type RelationRow struct {
	ID           int64  `gorm:"primaryKey;column:relation_id"`
	SourceID     int64  `gorm:"column:source_id"`
	CibleID      int64  `gorm:"column:cible_id"`
	TypeRelation string `gorm:"column:type_relation"`
}

func (RelationRow) TableName() string { return "relations" }

// OeuvreRow is one record per artwork. Spec §6: `oeuvres(oeuvre_id pk,
// title, artist, description, image_link, pdf_link, room)`.
type OeuvreRow struct {
	ID          int64          `gorm:"primaryKey;column:oeuvre_id"`
	EntityID    int64          `gorm:"column:entity_id;index"`
	Title       string         `gorm:"column:title"`
	Artist      sql.NullString `gorm:"column:artist"`      // the kernel has no artist attribution field yet
	Description sql.NullString `gorm:"column:description"` // nor a curatorial description, distinct from DocumentRef below
	ImageLink   sql.NullString `gorm:"column:image_link"`
	PDFLink     sql.NullString `gorm:"column:pdf_link"`
	Room        string         `gorm:"column:room"`
	DocumentRef string         `gorm:"column:document_ref"`
}

func (OeuvreRow) TableName() string { return "oeuvres" }

// ChunkRow, PregenerationRow, and CriteriaRow are schema placeholders
// the export document reserves for downstream content pipelines the
// kernel does not synthesise (spec §4.10: "core does not synthesise
// content").
type ChunkRow struct {
	ID       int64 `gorm:"primaryKey;column:id"`
	OeuvreID int64 `gorm:"column:oeuvre_id;index"`
}

func (ChunkRow) TableName() string { return "chunks" }

type PregenerationRow struct {
	ID       int64 `gorm:"primaryKey;column:id"`
	OeuvreID int64 `gorm:"column:oeuvre_id;index"`
}

func (PregenerationRow) TableName() string { return "pregenerations" }

type CriteriaRow struct {
	ID   int64  `gorm:"primaryKey;column:id"`
	Name string `gorm:"column:name"`
}

func (CriteriaRow) TableName() string { return "criterias" }

// Metadata is the export document's top-level metadata block (spec §6).
type Metadata struct {
	ExportDate    time.Time `json:"export_date"`
	MuseumID      string    `json:"museum_id"`
	GridSizeM     float64   `json:"grid_size_m"`
	TotalFloors   int       `json:"total_floors"`
	FormatVersion string    `json:"format_version"`
}

// PlanEditorDocument bundles the plan_editor export block.
type PlanEditorDocument struct {
	Plans     []PlanRow     `json:"plans"`
	Entities  []EntityRow   `json:"entities"`
	Points    []PointRow    `json:"points"`
	Relations []RelationRow `json:"relations"`
}

// OeuvresContenusDocument bundles the oeuvres_contenus export block.
type OeuvresContenusDocument struct {
	Oeuvres        []OeuvreRow        `json:"oeuvres"`
	Chunks         []ChunkRow         `json:"chunks"`
	Pregenerations []PregenerationRow `json:"pregenerations"`
}

// CriteriasGuidesDocument bundles the criterias_guides export block;
// the kernel only ever emits the empty placeholder tables (spec §4.10).
type CriteriasGuidesDocument struct {
	Criterias           []CriteriaRow `json:"criterias"`
	OeuvreCriterias     []struct{}    `json:"oeuvre_criterias"`
	GeneratedGuides     []struct{}    `json:"generated_guides"`
	CriteriasGuide      []struct{}    `json:"criterias_guide"`
	CriteriasPregenrtns []struct{}    `json:"criterias_pregeneration"`
}

// Document is the complete, stable export document contract (spec §6).
type Document struct {
	Metadata        Metadata                `json:"metadata"`
	PlanEditor      PlanEditorDocument      `json:"plan_editor"`
	OeuvresContenus OeuvresContenusDocument `json:"oeuvres_contenus"`
	CriteriasGuides CriteriasGuidesDocument `json:"criterias_guides"`
	Divers          Divers                  `json:"divers"`
	LegacyFormat    LegacyFormat            `json:"legacy_format"`
}

// Divers bundles miscellaneous top-level stats (spec §6).
type Divers struct {
	Stats   Stats    `json:"stats"`
	QRCodes []string `json:"qr_codes"`
}

// Stats carries cheap summary counters over the exported plan.
type Stats struct {
	TotalRooms    int `json:"total_rooms"`
	TotalArtworks int `json:"total_artworks"`
	TotalDoors    int `json:"total_doors"`
}

// LegacyFormat is a denormalised floors-with-elements dump kept
// bit-compatible with prior export versions (spec §6).
type LegacyFormat struct {
	Floors []LegacyFloor `json:"floors"`
}

// LegacyFloor is one floor's elements in the legacy, denormalised shape.
type LegacyFloor struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Rooms    []LegacyRoom      `json:"rooms"`
	Walls    []LegacySegment   `json:"walls"`
	Doors    []LegacySegment   `json:"doors"`
	Links    []LegacySegment   `json:"vertical_links"`
	Artworks []LegacyRectangle `json:"artworks"`
}

// LegacyRoom mirrors a room's polygon in the legacy dump.
type LegacyRoom struct {
	ID       string     `json:"id"`
	Vertices []LegacyXY `json:"vertices"`
}

// LegacySegment mirrors a door/wall/link segment in the legacy dump.
type LegacySegment struct {
	ID string   `json:"id"`
	A  LegacyXY `json:"a"`
	B  LegacyXY `json:"b"`
}

// LegacyRectangle mirrors an artwork's rectangle in the legacy dump.
type LegacyRectangle struct {
	ID     string   `json:"id"`
	Anchor LegacyXY `json:"anchor"`
	W      float64  `json:"w"`
	H      float64  `json:"h"`
}

// LegacyXY is a bare coordinate pair, kept at full float precision for
// exact round-tripping (spec §4.10).
type LegacyXY struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}
