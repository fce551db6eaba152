package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/colgrid/colgrid/pkg/cache"
	"github.com/colgrid/colgrid/pkg/cascade"
	"github.com/colgrid/colgrid/pkg/grid"
)

// Cascade output formats.
const (
	cascadeFormatDOT = "dot"
	cascadeFormatSVG = "svg"
)

// cascadeCommand creates the cascade command for visualizing how a
// resolved intent plays out across breakpoints.
func (c *CLI) cascadeCommand() *cobra.Command {
	var (
		configPath string
		output     string
		format     string
		detailed   bool
		noCache    bool
		flags      intentFlags
	)

	cmd := &cobra.Command{
		Use:   "cascade",
		Short: "Visualize an intent's supersession chain",
		Long: `Visualize how a resolved intent cascades across breakpoints.

The intent is resolved to its class list, then each property's
supersession chain (baseline through the widest breakpoint) is rendered
as a Graphviz diagram. Useful for debugging why a cell sizes the way it
does at a given viewport width.

Examples:

  colgrid cascade --span 12 --at md:span=6 --at lg:span=4
  colgrid cascade --span 6 --at md:auto --format svg -o cascade.svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != cascadeFormatDOT && format != cascadeFormatSVG {
				return fmt.Errorf("unknown format %q (valid: dot, svg)", format)
			}

			res, err := c.newResolver(configPath)
			if err != nil {
				return err
			}

			in, err := flags.intent()
			if err != nil {
				return err
			}
			classes, err := res.Col(in)
			if err != nil {
				return err
			}
			if len(classes) == 0 {
				printInfo("Nothing to visualize: the intent carries no layout properties")
				return nil
			}

			data, hit, err := c.renderCascade(cmd.Context(), res.Registry(), classes, format, detailed, noCache)
			if err != nil {
				return err
			}

			if output == "" {
				fmt.Fprint(cmd.OutOrStdout(), string(data))
				return nil
			}
			if err := os.WriteFile(output, data, 0644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printFile(output, hit)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "grid configuration file (default colgrid.toml)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", cascadeFormatDOT, "output format: dot (default), svg")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include CSS declarations in node labels")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	flags.register(cmd)

	return cmd
}

// renderCascade renders the supersession diagram for a class list,
// serving repeated renders (the SVG pass in particular) from the
// artifact cache. The boolean reports whether the result was cached.
func (c *CLI) renderCascade(ctx context.Context, reg *grid.Registry, classes []string, format string, detailed, noCache bool) ([]byte, bool, error) {
	store, err := newCache(noCache)
	if err != nil {
		return nil, false, fmt.Errorf("initialize cache: %w", err)
	}
	defer store.Close()

	key := cache.NewDefaultKeyer().CascadeKey(configHash(reg.Config()), cache.CascadeKeyOpts{
		Classes:  classes,
		Detailed: detailed,
		Format:   format,
	})
	data, hit, err := store.Get(ctx, key)
	if err != nil {
		c.Logger.Debug("cache read failed", "key", key, "err", err)
	}
	if hit {
		return data, true, nil
	}

	dot, err := cascade.ToDOT(reg, classes, cascade.Options{Detailed: detailed})
	if err != nil {
		return nil, false, err
	}
	data = []byte(dot)
	if format == cascadeFormatSVG {
		if data, err = cascade.RenderSVG(dot); err != nil {
			return nil, false, err
		}
	}

	if err := store.Set(ctx, key, data, artifactTTL); err != nil {
		c.Logger.Debug("cache write failed", "key", key, "err", err)
	}
	return data, false, nil
}
