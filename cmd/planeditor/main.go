// Command planeditor is an external-caller demonstrator for
// pkg/editor: a CLI that replays a YAML-scripted editing session and a
// TUI that drives the kernel interactively, the way cmd/arx drives
// ArxOS's own domain services from outside the module (cmd/arx/main.go,
// cmd/arx/cmd_add.go).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arx-os/museum-editor/internal/config"
	"github.com/arx-os/museum-editor/internal/museumlog"
)

var (
	configPath string
	logLevel   string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics at this address (e.g. :9090); disabled if empty")
}

var rootCmd = &cobra.Command{
	Use:   "planeditor",
	Short: "Museum floor-plan editor kernel demonstrator",
	Long: `planeditor drives the museum editor kernel (pkg/editor) from outside
the module, the way a host application would: replaying a scripted
session from a YAML fixture, or driving the kernel interactively
through a terminal UI.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML editor config file (defaults built in)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	rootCmd.AddCommand(runCmd, tuiCmd)
}

func loadConfig() (config.EditorConfig, error) {
	sources := []config.Source{config.DefaultSource{}}
	if configPath != "" {
		sources = append(sources, config.FileSource{Path: configPath})
	}
	return config.NewLoader(sources...).Load()
}

func newLogger() *museumlog.Logger {
	return museumlog.New(logLevel)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "planeditor:", err)
		os.Exit(1)
	}
}
