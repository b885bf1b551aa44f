package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/moneywise/moneywise/internal/application"
)

const (
	notificationsURI = "moneywise://notifications"
	navigationURI    = "moneywise://navigation"
)

// registerResources registers all MoneyWise MCP resources on the given server.
func registerResources(s *server.MCPServer, svc *application.DashboardService) {
	// 1. moneywise://notifications - full notification list
	s.AddResource(
		mcplib.NewResource(
			notificationsURI,
			"Notifications",
			mcplib.WithResourceDescription("All notifications in display order"),
			mcplib.WithMIMEType("application/json"),
		),
		handleNotificationsResource(svc),
	)

	// 2. moneywise://navigation - sidebar entries for the current path
	s.AddResource(
		mcplib.NewResource(
			navigationURI,
			"Navigation",
			mcplib.WithResourceDescription("Sidebar entries with the active flag for the router's current path"),
			mcplib.WithMIMEType("application/json"),
		),
		handleNavigationResource(svc),
	)

	// 3. moneywise://notifications/{id} - a single notification
	s.AddResourceTemplate(
		mcplib.NewResourceTemplate(
			notificationsURI+"/{id}",
			"Notification",
			mcplib.WithTemplateDescription("A single notification by id"),
			mcplib.WithTemplateMIMEType("application/json"),
		),
		handleNotificationResource(svc),
	)
}

func handleNotificationsResource(svc *application.DashboardService) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		return jsonContents(notificationsURI, svc.Notifications(0, false))
	}
}

func handleNavigationResource(svc *application.DashboardService) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		path := svc.CurrentPath()
		return jsonContents(navigationURI, map[string]any{
			"path":    path,
			"entries": svc.NavEntries(path),
		})
	}
}

func handleNotificationResource(svc *application.DashboardService) server.ResourceTemplateHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		raw := templateArg(request.Params.Arguments, "id")
		if raw == "" {
			return nil, fmt.Errorf("notification id is required")
		}
		id, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid notification id %q: %w", raw, err)
		}

		n, ok := svc.Notification(id)
		if !ok {
			return nil, fmt.Errorf("notification %d not found", id)
		}
		return jsonContents(request.Params.URI, n)
	}
}

// templateArg reads a value filled in by URI template matching, which may
// arrive as a string or a single-element slice.
func templateArg(args map[string]any, name string) string {
	switch v := args[name].(type) {
	case string:
		return v
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	case []any:
		if len(v) > 0 {
			s, _ := v[0].(string)
			return s
		}
	}
	return ""
}

func jsonContents(uri string, v any) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
