package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/moneywise/moneywise/internal/adapters/outbound/tui"
	"github.com/moneywise/moneywise/internal/domain"
)

func newNotificationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notifications",
		Aliases: []string{"notif"},
		Short:   "Inspect and mark notifications",
	}
	cmd.AddCommand(newNotificationsListCmd())
	cmd.AddCommand(newNotificationsReadCmd())
	return cmd
}

func newNotificationsListCmd() *cobra.Command {
	var (
		limit      int
		unreadOnly bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notifications in display order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return fmt.Errorf("--limit must not be negative, got %d", limit)
			}

			a, err := bootstrap(cmd, domain.PathNotifications, false)
			if err != nil {
				return err
			}
			defer a.close()

			items := a.svc.Notifications(limit, unreadOnly)
			unread := a.svc.UnreadCount()
			if jsonOutput {
				return renderJSON(cmd, map[string]any{
					"notifications": items,
					"unread_count":  unread,
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderNotifications(items, unread))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number to show (0: all)")
	cmd.Flags().BoolVar(&unreadOnly, "unread", false, "Show only unread notifications")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func newNotificationsReadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read ID...",
		Short: "Mark notifications as read",
		Long:  "Mark the given notifications as read and print the resulting unread count. State is not persisted between runs.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]int, 0, len(args))
			for _, arg := range args {
				id, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid notification id %q", arg)
				}
				ids = append(ids, id)
			}

			a, err := bootstrap(cmd, domain.PathNotifications, false)
			if err != nil {
				return err
			}
			defer a.close()

			changed := 0
			for _, id := range ids {
				if a.svc.MarkAsRead(id) {
					changed++
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "marked %d of %d; %d unread\n", changed, len(ids), a.svc.UnreadCount())
			return nil
		},
	}
}
