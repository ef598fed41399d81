package handler

import (
	"net/http"

	"github.com/tenxer/meta-ads-gateway/internal/config"
	"github.com/tenxer/meta-ads-gateway/internal/usecases/tooling"
)

// ClaudeManifest serves the connector manifest: service metadata plus
// every tool with its schema, all generated from the schema table.
func ClaudeManifest(cfg *config.Config, service tooling.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		type manifestTool struct {
			Name        string         `json:"name"`
			Description string         `json:"description"`
			Method      string         `json:"method"`
			Endpoint    string         `json:"endpoint"`
			InputSchema map[string]any `json:"inputSchema"`
		}

		schemas := service.Schemas()
		tools := make([]manifestTool, 0, len(schemas))
		for _, schema := range schemas {
			tools = append(tools, manifestTool{
				Name:        schema.Name,
				Description: schema.Description,
				Method:      http.MethodPost,
				Endpoint:    "/mcp",
				InputSchema: schema.InputSchema(),
			})
		}

		manifest := map[string]any{
			"name":        cfg.MCP.ServerName,
			"description": "Access your Meta Ad Accounts, insights, creatives, and performance data from any tool-calling client.",
			"version":     cfg.MCP.ServerVersion,
			"connection":  map[string]any{"type": "none"},
			"api":         map[string]any{"base_url": cfg.Server.BaseURL},
			"tools":       tools,
		}

		writeJSON(w, r, manifest)
	})
}
