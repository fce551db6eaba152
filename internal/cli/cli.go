// Package cli implements the colgrid command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/colgrid/colgrid/pkg/buildinfo"
	"github.com/colgrid/colgrid/pkg/cache"
	"github.com/colgrid/colgrid/pkg/grid"
	"github.com/colgrid/colgrid/pkg/layout"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "colgrid"

	// defaultCSSFile is the stylesheet output filename.
	defaultCSSFile = "grid.css"

	// defaultJSONFile is the rule dump output filename.
	defaultJSONFile = "rules.json"
)

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
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "colgrid",
		Short:        "Colgrid generates responsive column layout rules",
		Long:         `Colgrid is a responsive column layout engine: it generates the complete rule set for a configurable grid (spans, offsets, ordering, content sizing), resolves layout intents to class lists, and emits the stylesheet that backs them.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.resolveCommand())
	root.AddCommand(c.rulesCommand())
	root.AddCommand(c.cascadeCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Registry Factory
// =============================================================================

// newRegistry builds the registry from a TOML file. An empty path means
// the default lookup: ./colgrid.toml, falling back to the standard grid.
func (c *CLI) newRegistry(configPath string) (*grid.Registry, error) {
	if configPath == "" {
		configPath = grid.DefaultConfigFile
	}
	cfg, err := grid.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	reg, err := grid.NewRegistry(cfg)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("registry built",
		"columns", cfg.Columns,
		"breakpoints", len(cfg.Breakpoints),
		"rules", reg.Len(),
	)
	return reg, nil
}

// newResolver builds an intent resolver over the registry.
func (c *CLI) newResolver(configPath string) (*layout.Resolver, error) {
	reg, err := c.newRegistry(configPath)
	if err != nil {
		return nil, err
	}
	return layout.NewResolver(reg, layout.WithLogger(c.Logger)), nil
}

// =============================================================================
// Cache Factory
// =============================================================================

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/colgrid/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
