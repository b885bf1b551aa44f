package cli

import (
	mcpadapter "github.com/moneywise/moneywise/internal/adapters/inbound/mcp"
	"github.com/moneywise/moneywise/internal/domain"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the MoneyWise MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var route string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start MoneyWise MCP server (stdio)",
		Long:  "Start the MoneyWise MCP server using stdio transport. This lets AI assistants read notifications, follow links and render the dashboard shell.",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(cmd, route, false)
			if err != nil {
				return err
			}
			defer a.close()

			s := mcpadapter.NewMoneyWiseMCPServer(a.svc)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&route, "route", domain.PathDashboard, "Starting path")

	return cmd
}
