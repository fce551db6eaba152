package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// resolveCommand creates the resolve command for turning intent flags
// into a class list.
func (c *CLI) resolveCommand() *cobra.Command {
	var (
		configPath string
		flags      intentFlags
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a layout intent to its class list",
		Long: `Resolve a layout intent to the ordered list of generated classes.

Sizing follows a fixed precedence: auto wins over flex, flex wins over
span. A zero offset emits nothing. Breakpoint overrides are additive and
emitted in ascending breakpoint order.

Examples:

  colgrid resolve --span 6
  colgrid resolve --span 12 --at md:span=6 --at lg:span=4
  colgrid resolve --auto --order first`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
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
				printInfo("No classes: the intent carries no layout properties")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(classes, " "))
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "grid configuration file (default colgrid.toml)")
	flags.register(cmd)

	return cmd
}
