package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/colgrid/colgrid/pkg/grid"
	"github.com/colgrid/colgrid/pkg/stylesheet"
)

// rulesCommand creates the rules command for inspecting the registry.
func (c *CLI) rulesCommand() *cobra.Command {
	var (
		configPath  string
		tier        string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the generated rules",
		Long: `List every generated rule with its tier and CSS declarations.

Use --tier to limit output to one breakpoint tier ("base" selects the
mobile baseline). With --interactive the registry opens in a browsable,
filterable list.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := c.newRegistry(configPath)
			if err != nil {
				return err
			}

			rules, err := filterTier(reg, tier)
			if err != nil {
				return err
			}

			if interactive {
				model := NewRuleListModel(reg.Config(), rules)
				_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
				return err
			}

			printRuleTable(reg.Config(), rules)
			printDetail("%d rules · %d columns", len(rules), reg.Config().Columns)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "grid configuration file (default colgrid.toml)")
	cmd.Flags().StringVar(&tier, "tier", "", `limit to one tier: "base" or a breakpoint name`)
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse rules interactively")

	return cmd
}

// filterTier selects the rules of one tier, or all rules for an empty
// selector. "base" names the mobile baseline, whose tier string is "".
func filterTier(reg *grid.Registry, tier string) ([]grid.Rule, error) {
	if tier == "" {
		return reg.All(), nil
	}
	name := tier
	if tier == "base" {
		name = ""
	} else if _, ok := reg.Config().Breakpoint(name); !ok {
		return nil, fmt.Errorf("unknown tier %q (valid: base, breakpoint names)", tier)
	}

	var rules []grid.Rule
	for _, r := range reg.All() {
		if r.Breakpoint == name {
			rules = append(rules, r)
		}
	}
	return rules, nil
}

// tierLabel renders the tier column: the baseline has no breakpoint
// name.
func tierLabel(breakpoint string) string {
	if breakpoint == "" {
		return "base"
	}
	return breakpoint
}

// printRuleTable renders the rules as a bordered table.
func printRuleTable(cfg grid.Config, rules []grid.Rule) {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := make([][]string, 0, len(rules))
	for _, r := range rules {
		rows = append(rows, []string{
			r.Identifier,
			tierLabel(r.Breakpoint),
			r.Property.Kind.String(),
			stylesheet.Declarations(cfg, r.Property),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Identifier", "Tier", "Property", "Declarations").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return StyleHighlight
			}
			if col == 3 {
				return StyleDim
			}
			return StyleValue
		})

	fmt.Println(t.Render())
}
