package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/moneywise/moneywise/internal/application"
	"github.com/moneywise/moneywise/internal/domain"
)

// registerTools registers all MoneyWise MCP tools on the given server.
func registerTools(s *server.MCPServer, svc *application.DashboardService) {
	// 1. moneywise_list_notifications
	s.AddTool(
		mcplib.NewTool("moneywise_list_notifications",
			mcplib.WithDescription("Lists notifications in display order as JSON"),
			mcplib.WithNumber("limit", mcplib.Description("Maximum number of notifications to return (0 or omitted: all)")),
			mcplib.WithBoolean("unread_only", mcplib.Description("Return only unread notifications")),
		),
		handleListNotifications(svc),
	)

	// 2. moneywise_unread_count
	s.AddTool(
		mcplib.NewTool("moneywise_unread_count",
			mcplib.WithDescription("Returns the number of unread notifications and the header badge text"),
		),
		handleUnreadCount(svc),
	)

	// 3. moneywise_mark_notification_read
	s.AddTool(
		mcplib.NewTool("moneywise_mark_notification_read",
			mcplib.WithDescription("Marks one notification as read. Unknown or already-read ids change nothing."),
			mcplib.WithNumber("id",
				mcplib.Required(),
				mcplib.Description("Notification id"),
			),
		),
		handleMarkRead(svc),
	)

	// 4. moneywise_mark_all_read
	s.AddTool(
		mcplib.NewTool("moneywise_mark_all_read",
			mcplib.WithDescription("Marks every notification as read"),
		),
		handleMarkAllRead(svc),
	)

	// 5. moneywise_navigate
	s.AddTool(
		mcplib.NewTool("moneywise_navigate",
			mcplib.WithDescription("Sends a navigation request to the router, exactly as a link click would"),
			mcplib.WithString("path",
				mcplib.Required(),
				mcplib.Description("Destination path, e.g. /dashboard/insights"),
			),
		),
		handleNavigate(svc),
	)

	// 6. moneywise_active_nav
	s.AddTool(
		mcplib.NewTool("moneywise_active_nav",
			mcplib.WithDescription("Returns the sidebar entries with the active flag set by exact path match"),
			mcplib.WithString("path", mcplib.Description("Path to match (defaults to the router's current path)")),
		),
		handleActiveNav(svc),
	)

	// 7. moneywise_toggle_sidebar
	s.AddTool(
		mcplib.NewTool("moneywise_toggle_sidebar",
			mcplib.WithDescription("Opens or closes the mobile sidebar and returns the new state"),
		),
		handleToggleSidebar(svc),
	)

	// 8. moneywise_render_shell
	s.AddTool(
		mcplib.NewTool("moneywise_render_shell",
			mcplib.WithDescription("Returns the composed dashboard shell for the current path as JSON"),
			mcplib.WithString("content", mcplib.Description("Text placed in the content region")),
		),
		handleRenderShell(svc),
	)
}

func handleListNotifications(svc *application.DashboardService) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		args := request.GetArguments()
		limit := 0
		if v, ok := args["limit"].(float64); ok {
			if v < 0 {
				return errorResult("limit must not be negative"), nil
			}
			limit = int(v)
		}
		unreadOnly, _ := args["unread_only"].(bool)

		return jsonResult(map[string]any{
			"notifications": svc.Notifications(limit, unreadOnly),
			"unread_count":  svc.UnreadCount(),
		})
	}
}

func handleUnreadCount(svc *application.DashboardService) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		unread := svc.UnreadCount()
		return jsonResult(map[string]any{
			"unread_count": unread,
			"badge":        domain.UnreadBadge(unread),
		})
	}
}

func handleMarkRead(svc *application.DashboardService) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		raw, ok := request.GetArguments()["id"].(float64)
		if !ok {
			return errorResult("id is required"), nil
		}
		id := int(raw)
		if float64(id) != raw {
			return errorResult(fmt.Sprintf("id must be an integer, got %v", raw)), nil
		}

		changed := svc.MarkAsRead(id)
		return jsonResult(map[string]any{
			"id":           id,
			"changed":      changed,
			"unread_count": svc.UnreadCount(),
		})
	}
}

func handleMarkAllRead(svc *application.DashboardService) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		updated := svc.MarkAllAsRead()
		return jsonResult(map[string]any{
			"updated_count": updated,
			"unread_count":  svc.UnreadCount(),
		})
	}
}

func handleNavigate(svc *application.DashboardService) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		path, err := request.RequireString("path")
		if err != nil || path == "" {
			return errorResult("path is required"), nil
		}

		svc.Navigate(path)
		return textResult(fmt.Sprintf("navigated to %s", svc.CurrentPath())), nil
	}
}

func handleActiveNav(svc *application.DashboardService) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		path, _ := request.GetArguments()["path"].(string)
		if path == "" {
			path = svc.CurrentPath()
		}

		result := map[string]any{
			"path":    path,
			"entries": svc.NavEntries(path),
		}
		if item, ok := svc.ActiveNav(path); ok {
			result["active"] = item
		}
		return jsonResult(result)
	}
}

func handleToggleSidebar(svc *application.DashboardService) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return jsonResult(map[string]bool{"open": svc.ToggleSidebar()})
	}
}

func handleRenderShell(svc *application.DashboardService) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		content, _ := request.GetArguments()["content"].(string)
		return jsonResult(svc.View(content))
	}
}

// jsonResult marshals v to indented JSON and wraps it in a CallToolResult.
func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
