package cli

import "github.com/spf13/cobra"

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "moneywise",
		Short:         "MoneyWise dashboard shell",
		Long:          "MoneyWise renders the dashboard chrome (sidebar, header, notification and profile menus) in the terminal, over HTTP and over MCP.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().String("config-dir", "", "Directory holding .moneywise.yaml (defaults to the working directory, then the git root)")
	cmd.PersistentFlags().String("log-level", "", "Log level override: debug, info, warn or error")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newRenderCmd())
	cmd.AddCommand(newNavCmd())
	cmd.AddCommand(newNotificationsCmd())
	cmd.AddCommand(newShellCmd())
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
