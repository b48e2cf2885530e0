// Package cli implements the strand command-line interface.
//
// This package provides commands for parsing residue sequence files into
// graphs, rendering those graphs as node-link diagrams, and inspecting
// the supported residue alphabets. The CLI is built using cobra and
// supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - parse: Convert a sequence file (txt, csv, ig, fasta, json) to a graph
//   - render: Generate SVG, PDF, or PNG diagrams from a graph file
//   - alphabets: Print the one-letter residue code tables
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers
// are passed through context.Context to allow structured progress
// tracking.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/strandkit/strand/pkg/buildinfo"
)

// appName is the application name used for directories and display.
const appName = "strand"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          appName,
		Short:        "Strand turns residue sequences into molecular graphs",
		Long:         `Strand is a CLI tool for converting residue sequence files (plain text, CSV, Intelligenetics, FASTA, or node-link JSON) into molecular graphs and rendering them as diagrams.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/strand/config.toml)")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(configPath)
		if err != nil {
			return err
		}
		ctx := withLogger(cmd.Context(), c.Logger)
		ctx = withConfig(ctx, cfg)
		cmd.SetContext(ctx)
		return nil
	}

	root.AddCommand(newParseCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newAlphabetsCmd())

	return root
}
