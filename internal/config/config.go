// Package config provides configuration management for the museum editor
// kernel. It handles loading, validation, and hot-reload of editor
// thresholds, following the prioritized-source loader pattern of the
// teacher's own internal/config package (FileConfigSource > environment
// > defaults) adapted from ArxOS's cloud/storage settings to the editor's
// grid, constraints, history, and snap settings.
package config

import (
	"fmt"

	"github.com/arx-os/museum-editor/internal/museumerrors"
)

// GridConfig controls the grid coordinate system (spec §6, "grid.*").
type GridConfig struct {
	UnitMetres float64 `yaml:"unit_metres" json:"unit_metres"`
	Step       float64 `yaml:"step" json:"step"`
}

// ConstraintsConfig holds the inclusive thresholds used by validators and
// commit gates (spec §6, "constraints.*").
type ConstraintsConfig struct {
	MinRoomArea     float64 `yaml:"min_room_area" json:"min_room_area"`
	MinWallLength   float64 `yaml:"min_wall_length" json:"min_wall_length"`
	MinDoorWidth    float64 `yaml:"min_door_width" json:"min_door_width"`
	MaxDoorWidth    float64 `yaml:"max_door_width" json:"max_door_width"`
	MinLinkWidth    float64 `yaml:"min_link_width" json:"min_link_width"`
	MaxLinkWidth    float64 `yaml:"max_link_width" json:"max_link_width"`
	MinArtworkW     float64 `yaml:"min_artwork_w" json:"min_artwork_w"`
	MinArtworkH     float64 `yaml:"min_artwork_h" json:"min_artwork_h"`
	MaxArtworkW     float64 `yaml:"max_artwork_w" json:"max_artwork_w"`
	MaxArtworkH     float64 `yaml:"max_artwork_h" json:"max_artwork_h"`
	MinDragDistance float64 `yaml:"min_drag_distance" json:"min_drag_distance"`
	// MinClearance resolves the Open Question in spec §9 about door vs
	// artwork clearance: one field, used by both.
	MinClearance   float64 `yaml:"min_clearance" json:"min_clearance"`
	CloseThreshold float64 `yaml:"close_threshold" json:"close_threshold"`
}

// HistoryConfig controls the history manager (spec §6, "history.*").
type HistoryConfig struct {
	Cap int `yaml:"cap" json:"cap"`
}

// SnapRadii controls the snap service's candidate radii, in grid units
// (spec §6, "snap.radii.*").
type SnapRadii struct {
	Vertex float64 `yaml:"vertex" json:"vertex"`
	Wall   float64 `yaml:"wall" json:"wall"`
	Grid   float64 `yaml:"grid" json:"grid"`
}

// SnapConfig wraps the snap radii.
type SnapConfig struct {
	Radii SnapRadii `yaml:"radii" json:"radii"`
}

// EditorConfig is the complete configuration recognised by the kernel.
type EditorConfig struct {
	Grid        GridConfig        `yaml:"grid" json:"grid"`
	Constraints ConstraintsConfig `yaml:"constraints" json:"constraints"`
	History     HistoryConfig     `yaml:"history" json:"history"`
	Snap        SnapConfig        `yaml:"snap" json:"snap"`
}

// Default returns the kernel's default configuration (spec §6 defaults).
func Default() EditorConfig {
	return EditorConfig{
		Grid: GridConfig{
			UnitMetres: 0.5,
			Step:       1,
		},
		Constraints: ConstraintsConfig{
			MinRoomArea:     4,
			MinWallLength:   1,
			MinDoorWidth:    1,
			MaxDoorWidth:    6,
			MinLinkWidth:    2,
			MaxLinkWidth:    8,
			MinArtworkW:     0.2,
			MinArtworkH:     0.2,
			MaxArtworkW:     20,
			MaxArtworkH:     20,
			MinDragDistance: 0.25,
			MinClearance:    0.25,
			CloseThreshold:  0.5,
		},
		History: HistoryConfig{Cap: 50},
		Snap: SnapConfig{
			Radii: SnapRadii{Vertex: 0.5, Wall: 0.35, Grid: 0.25},
		},
	}
}

// Validate checks that thresholds are internally consistent and within
// domain (spec §7 "Configuration error... detected at startup"). The
// operation surface refuses to begin until this passes.
func (c EditorConfig) Validate() error {
	if c.Grid.UnitMetres <= 0 {
		return museumerrors.Config("grid.unit_metres must be positive")
	}
	if c.Grid.Step <= 0 {
		return museumerrors.Config("grid.step must be positive")
	}
	if c.Constraints.MinRoomArea <= 0 {
		return museumerrors.Config("constraints.min_room_area must be positive")
	}
	if c.Constraints.MinWallLength <= 0 {
		return museumerrors.Config("constraints.min_wall_length must be positive")
	}
	if c.Constraints.MinDoorWidth <= 0 || c.Constraints.MinDoorWidth > c.Constraints.MaxDoorWidth {
		return museumerrors.Config(fmt.Sprintf(
			"constraints.min_door_width (%.3f) must be positive and <= max_door_width (%.3f)",
			c.Constraints.MinDoorWidth, c.Constraints.MaxDoorWidth))
	}
	if c.Constraints.MinLinkWidth <= 0 || c.Constraints.MinLinkWidth > c.Constraints.MaxLinkWidth {
		return museumerrors.Config(fmt.Sprintf(
			"constraints.min_link_width (%.3f) must be positive and <= max_link_width (%.3f)",
			c.Constraints.MinLinkWidth, c.Constraints.MaxLinkWidth))
	}
	if c.Constraints.MinArtworkW <= 0 || c.Constraints.MinArtworkW > c.Constraints.MaxArtworkW {
		return museumerrors.Config("constraints.min_artwork_w must be positive and <= max_artwork_w")
	}
	if c.Constraints.MinArtworkH <= 0 || c.Constraints.MinArtworkH > c.Constraints.MaxArtworkH {
		return museumerrors.Config("constraints.min_artwork_h must be positive and <= max_artwork_h")
	}
	if c.Constraints.MinDragDistance < 0 {
		return museumerrors.Config("constraints.min_drag_distance must not be negative")
	}
	if c.Constraints.MinClearance < 0 {
		return museumerrors.Config("constraints.min_clearance must not be negative")
	}
	if c.Constraints.CloseThreshold <= 0 {
		return museumerrors.Config("constraints.close_threshold must be positive")
	}
	if c.History.Cap < 1 {
		return museumerrors.Config("history.cap must be at least 1")
	}
	if c.Snap.Radii.Vertex <= 0 || c.Snap.Radii.Wall <= 0 || c.Snap.Radii.Grid <= 0 {
		return museumerrors.Config("snap.radii.* must all be positive")
	}
	return nil
}
