package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moneywise/moneywise/internal/adapters/outbound/tui"
	"github.com/moneywise/moneywise/internal/domain"
)

func newRenderCmd() *cobra.Command {
	var (
		content     string
		sidebarOpen bool
		jsonOutput  bool
	)

	cmd := &cobra.Command{
		Use:   "render [route]",
		Short: "Render the dashboard shell for a route",
		Long:  "Compose the dashboard shell for the given route (default /dashboard) and print it as a styled terminal view or as JSON.",
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

			if sidebarOpen {
				a.svc.ToggleSidebar()
			}
			view := a.svc.View(content)

			if jsonOutput {
				return renderJSON(cmd, view)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderShell(view))
			return nil
		},
	}

	cmd.Flags().StringVar(&content, "content", "", "Text for the content region")
	cmd.Flags().BoolVar(&sidebarOpen, "sidebar-open", false, "Render with the mobile sidebar open")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the shell view as JSON")

	return cmd
}
