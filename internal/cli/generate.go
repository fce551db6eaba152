package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/colgrid/colgrid/pkg/cache"
	"github.com/colgrid/colgrid/pkg/grid"
	"github.com/colgrid/colgrid/pkg/stylesheet"
)

// Output formats for the generate command.
const (
	formatCSS  = "css"
	formatJSON = "json"
)

// artifactTTL bounds cache storage for generated artifacts.
const artifactTTL = 24 * time.Hour

// generateCommand creates the generate command for emitting the rule set.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		configPath string
		output     string
		formatsStr string
		minified   bool
		noCache    bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the stylesheet and rule dump for a grid",
		Long: `Generate the complete rule set for a grid configuration and write it
as a stylesheet (grid.css) and a machine-readable rule dump (rules.json).

The grid is read from colgrid.toml in the working directory, or from the
file given with --config. Without a configuration file the standard
12-column grid with the sm/md/lg breakpoint table is used.

Output is deterministic: the same configuration always produces
byte-identical artifacts. Results are cached locally for faster
subsequent runs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formats, err := parseFormats(formatsStr)
			if err != nil {
				return err
			}
			return c.runGenerate(cmd.Context(), configPath, output, formats, minified, noCache)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "grid configuration file (default colgrid.toml)")
	cmd.Flags().StringVarP(&output, "output", "o", ".", "output directory")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): css (default), json (comma-separated)")
	cmd.Flags().BoolVar(&minified, "minified", false, "emit minified CSS")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) ([]string, error) {
	if s == "" {
		return []string{formatCSS}, nil
	}
	formats := strings.Split(s, ",")
	for _, f := range formats {
		if f != formatCSS && f != formatJSON {
			return nil, fmt.Errorf("unknown format %q (valid: css, json)", f)
		}
	}
	return formats, nil
}

// runGenerate renders the requested artifacts and writes them out.
func (c *CLI) runGenerate(ctx context.Context, configPath, output string, formats []string, minified, noCache bool) error {
	reg, err := c.newRegistry(configPath)
	if err != nil {
		return err
	}

	store, err := newCache(noCache)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}
	defer store.Close()
	keyer := cache.NewDefaultKeyer()
	cfgHash := configHash(reg.Config())

	if err := os.MkdirAll(output, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	prog := newProgress(c.Logger)
	for _, format := range formats {
		var (
			path   string
			data   []byte
			hit    bool
			key    string
			render func() ([]byte, error)
		)
		switch format {
		case formatCSS:
			path = filepath.Join(output, defaultCSSFile)
			key = keyer.StylesheetKey(cfgHash, cache.StylesheetKeyOpts{Minified: minified, RowUtilities: true})
			render = func() ([]byte, error) {
				var opts []stylesheet.CSSOption
				if minified {
					opts = append(opts, stylesheet.WithCSSMinified())
				}
				return stylesheet.RenderCSS(reg, opts...), nil
			}
		case formatJSON:
			path = filepath.Join(output, defaultJSONFile)
			key = keyer.RulesKey(cfgHash)
			render = func() ([]byte, error) {
				return stylesheet.RenderJSON(reg)
			}
		}

		data, hit, err = store.Get(ctx, key)
		if err != nil {
			c.Logger.Debug("cache read failed", "key", key, "err", err)
		}
		if !hit {
			if data, err = render(); err != nil {
				return err
			}
			if err := store.Set(ctx, key, data, artifactTTL); err != nil {
				c.Logger.Debug("cache write failed", "key", key, "err", err)
			}
		}

		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path, hit)
	}

	prog.done(fmt.Sprintf("Generated %d rules across %d tiers", reg.Len(), len(reg.Tiers())))
	return nil
}

// configHash derives the cache key component for a grid configuration.
func configHash(cfg grid.Config) string {
	data, _ := json.Marshal(cfg)
	return cache.Hash(data)
}
