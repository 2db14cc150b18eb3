package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/arx-os/museum-editor/internal/floors"
	"github.com/arx-os/museum-editor/internal/geom"
	"github.com/arx-os/museum-editor/internal/interaction"
	"github.com/arx-os/museum-editor/pkg/editor"
)

// Operation is one step of a YAML-driven session fixture (mirrors the
// teacher's per-verb cobra commands in cmd/arx/cmd_add.go, but flattened
// into a data-driven sequence so a whole session can be replayed from a
// file instead of a shell invocation per step).
type Operation struct {
	Op        string  `yaml:"op"`
	Tool      string  `yaml:"tool,omitempty"`
	X         float64 `yaml:"x,omitempty"`
	Y         float64 `yaml:"y,omitempty"`
	Direction string  `yaml:"direction,omitempty"`
	Name      string  `yaml:"name,omitempty"`
	FloorIdx  int     `yaml:"floor_index,omitempty"`
}

// Fixture is the top-level YAML document: a named sequence of operations
// applied to a fresh kernel.
type Fixture struct {
	Operations []Operation `yaml:"operations"`
}

// LoadFixture reads and parses a fixture file.
func LoadFixture(path string) (Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Fixture{}, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return f, nil
}

var toolsByName = map[string]interaction.Tool{
	"select":    interaction.ToolSelect,
	"room":      interaction.ToolRoom,
	"rectangle": interaction.ToolRectangle,
	"circle":    interaction.ToolCircle,
	"triangle":  interaction.ToolTriangle,
	"arc":       interaction.ToolArc,
	"artwork":   interaction.ToolArtwork,
	"door":      interaction.ToolDoor,
	"stairs":    interaction.ToolStairs,
	"elevator":  interaction.ToolElevator,
	"wall":      interaction.ToolWall,
}

// Apply replays every operation in the fixture against k in order,
// logging each step's result and returning the first hard error (a
// malformed fixture, not a rejected editor operation — rejections are
// reported and replay continues, matching how an interactive session
// keeps going after a rejected edit).
func Apply(k *editor.Kernel, f Fixture) error {
	floorIDs := func() []uuid.UUID {
		ids := make([]uuid.UUID, len(k.Plan.Floors))
		for i, fl := range k.Plan.Floors {
			ids[i] = fl.ID
		}
		return ids
	}

	for i, op := range f.Operations {
		switch op.Op {
		case "begin_tool":
			tool, ok := toolsByName[op.Tool]
			if !ok {
				return fmt.Errorf("step %d: unknown tool %q", i, op.Tool)
			}
			k.BeginTool(tool)

		case "pointer_down":
			res := k.PointerDown(geom.NewPoint(op.X, op.Y), interaction.Modifiers{})
			report(i, "pointer_down", res)

		case "pointer_move":
			k.PointerMove(geom.NewPoint(op.X, op.Y))

		case "pointer_up":
			res := k.PointerUp(geom.NewPoint(op.X, op.Y))
			report(i, "pointer_up", res)

		case "escape":
			k.Escape()

		case "delete_selection":
			res := k.DeleteSelection()
			report(i, "delete_selection", res)

		case "undo":
			if !k.Undo() {
				fmt.Printf("step %d: undo: nothing to undo\n", i)
			}

		case "redo":
			if !k.Redo() {
				fmt.Printf("step %d: redo: nothing to redo\n", i)
			}

		case "add_floor":
			dir := floors.Below
			if op.Direction == "above" {
				dir = floors.Above
			}
			k.AddFloor(dir, op.Name)

		case "delete_floor":
			ids := floorIDs()
			if op.FloorIdx >= len(ids) {
				return fmt.Errorf("step %d: delete_floor: floor_index %d out of range", i, op.FloorIdx)
			}
			res := k.DeleteFloor(ids[op.FloorIdx])
			report(i, "delete_floor", res)

		case "rename_floor":
			ids := floorIDs()
			if op.FloorIdx >= len(ids) {
				return fmt.Errorf("step %d: rename_floor: floor_index %d out of range", i, op.FloorIdx)
			}
			k.RenameFloor(ids[op.FloorIdx], op.Name)

		default:
			return fmt.Errorf("step %d: unknown operation %q", i, op.Op)
		}
	}
	return nil
}

func report(step int, op string, res editor.Result) {
	if res.Applied {
		fmt.Printf("step %d: %s: %s\n", step, op, res.Description)
		return
	}
	fmt.Printf("step %d: %s: rejected (%s)\n", step, op, res.Message)
}
