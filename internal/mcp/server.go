package mcp

import (
	"context"
	"net/http"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"github.com/tenxer/meta-ads-gateway/internal/config"
	"github.com/tenxer/meta-ads-gateway/internal/usecases/tooling"
)

// Server exposes the tool service over the Model Context Protocol, on
// stdio for desktop clients and over SSE when running as an HTTP
// service. Tool schemas are advertised verbatim from the schema table.
type Server struct {
	mcp *server.MCPServer
}

func NewServer(cfg *config.Config, service tooling.Service) *Server {
	srv := server.NewMCPServer(
		cfg.MCP.ServerName,
		cfg.MCP.ServerVersion,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	for _, schema := range service.Schemas() {
		tool := mcpgo.NewToolWithRawSchema(schema.Name, schema.Description, schema.InputSchemaJSON())
		srv.AddTool(tool, toolHandler(service, schema.Name))
	}

	logrus.WithFields(logrus.Fields{
		"server_name": cfg.MCP.ServerName,
		"tools":       len(service.Schemas()),
	}).Info("MCP server configured")

	return &Server{mcp: srv}
}

func toolHandler(service tooling.Service, name string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
		result, err := service.Execute(ctx, name, req.GetArguments())
		if err != nil {
			return mcpgo.NewToolResultError(err.Error()), nil
		}

		content := make([]mcpgo.Content, 0, len(result.Content))
		for _, block := range result.Content {
			content = append(content, mcpgo.NewTextContent(block.Text))
		}

		return &mcpgo.CallToolResult{
			Content: content,
			IsError: result.IsError,
		}, nil
	}
}

// ServeStdio blocks serving MCP over stdin/stdout
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// SSEHandler returns the HTTP handler serving MCP over SSE under /mcp
// (GET /mcp/sse for the event stream, POST /mcp/message for calls).
func (s *Server) SSEHandler() http.Handler {
	return server.NewSSEServer(s.mcp, server.WithStaticBasePath("/mcp"))
}
