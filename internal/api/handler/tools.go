package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/tenxer/meta-ads-gateway/internal/usecases/tooling"
	"github.com/tenxer/meta-ads-gateway/pkg/apiErrors"
	"github.com/tenxer/meta-ads-gateway/pkg/log"
)

// ListTools returns every registered tool with its input schema
func ListTools(service tooling.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		type toolEntry struct {
			Name        string         `json:"name"`
			Description string         `json:"description"`
			InputSchema map[string]any `json:"input_schema"`
		}

		schemas := service.Schemas()
		tools := make([]toolEntry, 0, len(schemas))
		for _, schema := range schemas {
			tools = append(tools, toolEntry{
				Name:        schema.Name,
				Description: schema.Description,
				InputSchema: schema.InputSchema(),
			})
		}

		writeJSON(w, r, map[string]any{"tools": tools})
	})
}

// ExecuteTool runs one tool by name; the request body is the raw
// argument object.
func ExecuteTool(service tooling.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		name := httprouter.ParamsFromContext(r.Context()).ByName("name")

		args, err := decodeArgs(r.Body)
		if err != nil {
			logger.WithError(err).Warn("tools: invalid request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "request body must be a JSON object", nil)
			return
		}

		result, err := service.Execute(r.Context(), name, args)
		if err != nil {
			logger.WithError(err).WithField("tool", name).Warn("tools: unknown tool requested")
			apiErrors.WriteError(w, apiErrors.ErrUnknownTool, err.Error(), nil)
			return
		}

		writeJSON(w, r, result)
	})
}

// decodeArgs reads a JSON object body; an empty body means no arguments
func decodeArgs(body io.Reader) (map[string]any, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return map[string]any{}, nil
	}

	args := map[string]any{}
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, err
	}
	return args, nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, body any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("failed to encode response")
	}
}
