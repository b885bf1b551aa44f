package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moneywise/moneywise/internal/adapters/outbound/tui"
	"github.com/moneywise/moneywise/internal/domain"
)

type navOutput struct {
	Path    string            `json:"path"`
	Entries []domain.NavEntry `json:"entries"`
	Active  *domain.NavItem   `json:"active,omitempty"`
}

func newNavCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "nav [route]",
		Short: "Show sidebar items and which one is active",
		Long:  "List the sidebar navigation items for a route. An item is active only when its path equals the route exactly.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			route := domain.PathDashboard
			if len(args) > 0 {
				route = args[0]
			}

			a, err := bootstrap(cmd, route, false)
			if err != nil {
				return err
			}
			defer a.close()

			entries := a.svc.NavEntries(route)
			if jsonOutput {
				out := navOutput{Path: route, Entries: entries}
				if item, ok := a.svc.ActiveNav(route); ok {
					out.Active = &item
				}
				return renderJSON(cmd, out)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderNavigation(entries, route))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
