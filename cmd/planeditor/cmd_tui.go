package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/arx-os/museum-editor/cmd/planeditor/tui"
	"github.com/arx-os/museum-editor/internal/config"
	"github.com/arx-os/museum-editor/pkg/editor"
)

var watchConfig bool

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Drive the editor kernel interactively in a terminal UI",
	RunE:  runTUI,
}

func init() {
	tuiCmd.Flags().BoolVar(&watchConfig, "watch-config", false, "hot-reload --config on changes while the TUI runs")
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger()

	k, err := editor.New(cfg, log)
	if err != nil {
		return fmt.Errorf("start kernel: %w", err)
	}
	defer k.Close()

	if metricsAddr != "" {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		if _, err := startMetricsServer(ctx, metricsAddr); err != nil {
			return err
		}
	}

	model := tui.New(k)
	if watchConfig && configPath != "" {
		sources := []config.Source{config.DefaultSource{}, config.FileSource{Path: configPath}}
		watcher, err := config.NewWatcher(configPath, config.NewLoader(sources...), cfg)
		if err != nil {
			return fmt.Errorf("watch config: %w", err)
		}
		defer watcher.Close()
		model = tui.NewWithWatcher(k, watcher)
	}

	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	return err
}
