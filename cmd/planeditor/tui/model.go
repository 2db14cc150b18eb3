// Package tui renders the kernel's current floor as an ASCII canvas and
// drives it interactively, following the teacher's bubbletea model
// pattern (internal/tui/models/floor_plan.go): a single struct
// implementing Init/Update/View, key bindings dispatched in Update, and
// a dedicated render pass in View.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arx-os/museum-editor/internal/config"
	"github.com/arx-os/museum-editor/internal/geom"
	"github.com/arx-os/museum-editor/internal/interaction"
	"github.com/arx-os/museum-editor/pkg/editor"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	footerStyle = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

const (
	canvasWidth  = 70
	canvasHeight = 22
)

var toolKeys = map[string]interaction.Tool{
	"v": interaction.ToolSelect,
	"p": interaction.ToolRoom,
	"r": interaction.ToolRectangle,
	"c": interaction.ToolCircle,
	"t": interaction.ToolTriangle,
	"w": interaction.ToolWall,
	"d": interaction.ToolDoor,
	"a": interaction.ToolArtwork,
	"s": interaction.ToolStairs,
	"e": interaction.ToolElevator,
}

// Model is the floor-plan TUI's bubbletea model.
type Model struct {
	kernel  *editor.Kernel
	watcher *config.Watcher // nil unless --watch-config was passed

	cursor geom.Point
	scale  float64 // cells per grid unit
	down   bool     // true between a pointer_down and its matching pointer_up

	status string
	quit   bool
}

// New returns a Model driving k, starting at the grid origin.
func New(k *editor.Kernel) Model {
	return Model{kernel: k, cursor: geom.NewPoint(0, 0), scale: 2}
}

// NewWithWatcher returns a Model that also hot-reloads k's configuration
// whenever watcher reports a file change, applied only between
// operations (spec §5).
func NewWithWatcher(k *editor.Kernel, watcher *config.Watcher) Model {
	m := New(k)
	m.watcher = watcher
	return m
}

// configEventMsg carries a config file change notification into Update.
type configEventMsg struct{}

// configErrMsg carries a watcher error into Update.
type configErrMsg struct{ err error }

func (m Model) Init() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return waitForConfigEvent(m.watcher)
}

// waitForConfigEvent blocks on the watcher's fsnotify channels and
// surfaces the next change as a bubbletea message, the way bubbletea's
// own examples bridge an external channel into the Update loop.
func waitForConfigEvent(w *config.Watcher) tea.Cmd {
	return func() tea.Msg {
		select {
		case _, ok := <-w.Events():
			if !ok {
				return nil
			}
			return configEventMsg{}
		case err, ok := <-w.Errors():
			if !ok {
				return nil
			}
			return configErrMsg{err: err}
		}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case configEventMsg:
		next, changed, err := m.watcher.Reload()
		switch {
		case err != nil:
			m.status = "config reload: rejected (" + err.Error() + ")"
		case changed:
			if err := m.kernel.ReloadConfig(next); err != nil {
				m.status = "config reload: rejected (" + err.Error() + ")"
			} else {
				m.status = "config reloaded"
			}
		}
		return m, waitForConfigEvent(m.watcher)
	case configErrMsg:
		m.status = "config watch error: " + msg.err.Error()
		return m, waitForConfigEvent(m.watcher)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := keyMsg.String()
	step := 1 / m.scale

	switch key {
	case "ctrl+c", "q":
		m.quit = true
		return m, tea.Quit

	case "up", "k":
		m.cursor = moveCursor(m.cursor, 0, -step)
	case "down", "j":
		m.cursor = moveCursor(m.cursor, 0, step)
	case "left", "h":
		m.cursor = moveCursor(m.cursor, -step, 0)
	case "right", "l":
		m.cursor = moveCursor(m.cursor, step, 0)

	case "+", "=":
		m.scale *= 1.25
	case "-":
		m.scale /= 1.25

	case "enter", " ":
		if !m.down {
			res := m.kernel.PointerDown(m.cursor, interaction.Modifiers{})
			m.down = true
			m.status = statusOf("pointer_down", res)
		} else {
			res := m.kernel.PointerUp(m.cursor)
			m.down = false
			m.status = statusOf("pointer_up", res)
		}

	case "esc":
		m.kernel.Escape()
		m.down = false
		m.status = "cancelled"

	case "x", "delete", "backspace":
		res := m.kernel.DeleteSelection()
		m.status = statusOf("delete", res)

	case "u":
		if m.kernel.Undo() {
			m.status = "undo"
		} else {
			m.status = "nothing to undo"
		}

	case "U":
		if m.kernel.Redo() {
			m.status = "redo"
		} else {
			m.status = "nothing to redo"
		}

	default:
		if tool, ok := toolKeys[key]; ok {
			m.kernel.BeginTool(tool)
			m.down = false
			m.status = "tool: " + key
		}
	}

	return m, nil
}

func moveCursor(p geom.Point, dx, dy float64) geom.Point {
	x, y := p.Grid()
	return geom.NewPoint(x+dx, y+dy)
}

func statusOf(op string, res editor.Result) string {
	if res.Applied {
		return op + ": " + res.Description
	}
	return op + ": rejected (" + res.Message + ")"
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("museum-editor  tool=%d  scale=%.2f", m.kernel.Machine.Tool, m.scale)))
	b.WriteString("\n\n")
	b.WriteString(renderCanvas(m.kernel, m.cursor, m.scale))
	b.WriteString("\n")

	if m.status != "" {
		style := okStyle
		if strings.Contains(m.status, "rejected") {
			style = errorStyle
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(footerStyle.Render(
		"[v]select [p]room [r]rect [c]circle [t]tri [w]wall [d]door [a]art [s]stairs [e]elevator  " +
			"arrows move  enter click  esc cancel  x delete  u/U undo/redo  q quit"))
	return b.String()
}
