package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/moneywise/moneywise/internal/application"
)

const serverVersion = "0.1.0"

// NewMoneyWiseMCPServer creates an MCP server exposing the dashboard shell
// held by svc. Every tool call goes through svc, so the server may share it
// with other surfaces.
func NewMoneyWiseMCPServer(svc *application.DashboardService) *server.MCPServer {
	s := server.NewMCPServer(
		"moneywise",
		serverVersion,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, svc)
	registerResources(s, svc)

	return s
}
