// Package cli implements the colorbars command-line interface.
//
// Commands:
//   - render: draw a frequency table as a bar chart (svg, png, html, pdf, json)
//   - rank: print the ranked table, or browse it interactively
//   - extract: count the colours of an image into a frequency table
//   - transform: rearrange the pixels of an image
//   - serve: serve the chart over HTTP
//   - cache, config, completion: housekeeping
//
// All commands support --verbose (-v) for debug-level logging and --config
// to read a configuration file other than the default.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/colorbars/pkg/buildinfo"
	"github.com/matzehuels/colorbars/pkg/cache"
	"github.com/matzehuels/colorbars/pkg/config"
	"github.com/matzehuels/colorbars/pkg/observability"
	"github.com/matzehuels/colorbars/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "colorbars"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config

	configPath string
}

// New creates a new CLI instance with a default logger and built-in config.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Colorbars charts colour frequencies as bars",
		Long:          `Colorbars reads a table of colour codes and frequencies, keeps the most frequent entries, and draws them as a bar chart where every bar is filled with its own colour.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			c.Config = cfg
			observability.NewLogHooks(c.Logger).Install()
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/colorbars/config.toml)")

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.rankCommand())
	root.AddCommand(c.extractCommand())
	root.AddCommand(c.transformCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use. noCache skips opening the
// configured backend entirely.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	store, err := c.openCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "v"+buildinfo.Version+":")
	return pipeline.NewRunner(store, keyer, c.Logger), nil
}

func (c *CLI) openCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	return cache.Open(ctx, c.Config.CacheOptions())
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the file cache directory using XDG standard (~/.cache/colorbars/).
func cacheDir() (string, error) {
	return cache.DefaultDir()
}

// =============================================================================
// Options Helpers
// =============================================================================

// renderDefaults returns pipeline options filled from the [chart] and [cache]
// config sections. Flags are applied on top by each command.
func (c *CLI) renderDefaults() pipeline.Options {
	ch := c.Config.Chart
	return pipeline.Options{
		Limit:      ch.Limit,
		Width:      ch.Width,
		Height:     ch.Height,
		Formats:    append([]string(nil), ch.Formats...),
		Title:      ch.Title,
		Background: ch.Background,
		CacheTTL:   c.Config.Cache.TTL.Duration,
		Logger:     c.Logger,
	}
}
