package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arx-os/museum-editor/internal/export"
	"github.com/arx-os/museum-editor/pkg/editor"
)

var exportOut bool

var runCmd = &cobra.Command{
	Use:   "run <fixture.yaml>",
	Short: "Replay a YAML-scripted editing session",
	Args:  cobra.ExactArgs(1),
	RunE:  runFixture,
}

func init() {
	runCmd.Flags().BoolVar(&exportOut, "export", false, "print the resulting export document as JSON")
}

func runFixture(cmd *cobra.Command, args []string) error {
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

	fixture, err := LoadFixture(args[0])
	if err != nil {
		return err
	}
	if err := Apply(k, fixture); err != nil {
		return err
	}

	summarize(k)

	if exportOut {
		doc := k.Export(export.Options{MuseumID: "demo", FormatVersion: "1"})
		printJSON(doc)
	}
	return nil
}

func summarize(k *editor.Kernel) {
	fmt.Println("--- session summary ---")
	for _, floor := range k.Plan.Floors {
		fmt.Printf("floor %q: %d rooms, %d walls, %d doors, %d links, %d artworks\n",
			floor.Name, len(floor.Rooms), len(floor.Walls), len(floor.Doors), len(floor.Links), len(floor.Artworks))
	}
	report := k.Coherence()
	fmt.Printf("coherence issues: %d\n", report.TotalIssues())
	fmt.Printf("history checkpoints: %d\n", k.History.Len())
}

func printJSON(v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Println("export: marshal error:", err)
		return
	}
	fmt.Println(string(data))
}
