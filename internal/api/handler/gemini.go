package handler

import (
	"encoding/json"
	"net/http"

	"github.com/tenxer/meta-ads-gateway/internal/usecases/tooling"
	"github.com/tenxer/meta-ads-gateway/pkg/apiErrors"
	"github.com/tenxer/meta-ads-gateway/pkg/log"
)

// geminiFunctionCall is the request body of POST /gemini/functions.
// Both the wrapped {functionCall: {...}} and the bare {name, args}
// shapes are accepted.
type geminiFunctionCall struct {
	FunctionCall *geminiCall    `json:"functionCall"`
	Name         string         `json:"name"`
	Args         map[string]any `json:"args"`
}

type geminiCall struct {
	Name string         `json:"name"`
	Args map[string]any `json:"args"`
}

// geminiFunctionResult wraps the tool output as a functionResponse part
type geminiFunctionResult struct {
	FunctionResponse geminiResponse `json:"functionResponse"`
}

type geminiResponse struct {
	Name     string         `json:"name"`
	Response map[string]any `json:"response"`
}

// GeminiFunctionCall executes a tool in Gemini function-calling shape
func GeminiFunctionCall(service tooling.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var call geminiFunctionCall
		if err := json.NewDecoder(r.Body).Decode(&call); err != nil {
			logger.WithError(err).Warn("gemini: invalid request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "request body must be a JSON function call", nil)
			return
		}

		name, args := call.Name, call.Args
		if call.FunctionCall != nil {
			name, args = call.FunctionCall.Name, call.FunctionCall.Args
		}
		if name == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "function name is required", nil)
			return
		}
		if args == nil {
			args = map[string]any{}
		}

		result, err := service.Execute(r.Context(), name, args)
		if err != nil {
			logger.WithError(err).WithField("function", name).Warn("gemini: unknown function requested")
			apiErrors.WriteError(w, apiErrors.ErrUnknownTool, err.Error(), nil)
			return
		}

		writeJSON(w, r, geminiFunctionResult{
			FunctionResponse: geminiResponse{
				Name: name,
				Response: map[string]any{
					"content": result.Text(),
				},
			},
		})
	})
}

// GeminiFunctionDefinitions lists every tool as a Gemini function
// declaration.
func GeminiFunctionDefinitions(service tooling.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		type functionDef struct {
			Name        string         `json:"name"`
			Description string         `json:"description"`
			Parameters  map[string]any `json:"parameters"`
		}

		schemas := service.Schemas()
		functions := make([]functionDef, 0, len(schemas))
		for _, schema := range schemas {
			functions = append(functions, functionDef{
				Name:        schema.Name,
				Description: schema.Description,
				Parameters:  schema.InputSchema(),
			})
		}

		writeJSON(w, r, map[string]any{"functions": functions})
	})
}
