package handler

import (
	"encoding/json"
	"net/http"

	"github.com/tenxer/meta-ads-gateway/internal/usecases/tooling"
	"github.com/tenxer/meta-ads-gateway/pkg/apiErrors"
	"github.com/tenxer/meta-ads-gateway/pkg/log"
	"github.com/tenxer/meta-ads-gateway/pkg/utils"
)

// openAIFunctionCall is the request body of POST /openai/functions.
// Arguments arrive either as a JSON object or as the JSON-encoded
// string the OpenAI API produces.
type openAIFunctionCall struct {
	ToolCallID string          `json:"tool_call_id"`
	Name       string          `json:"name"`
	Arguments  json.RawMessage `json:"arguments"`
}

// openAIFunctionResult is the tool-role message returned to the caller
type openAIFunctionResult struct {
	ToolCallID string `json:"tool_call_id"`
	Role       string `json:"role"`
	Name       string `json:"name"`
	Content    string `json:"content"`
}

// OpenAIFunctionCall executes a tool in OpenAI function-calling shape
func OpenAIFunctionCall(service tooling.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var call openAIFunctionCall
		if err := json.NewDecoder(r.Body).Decode(&call); err != nil {
			logger.WithError(err).Warn("openai: invalid request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "request body must be a JSON function call", nil)
			return
		}
		if call.Name == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "function name is required", nil)
			return
		}

		args, err := decodeOpenAIArguments(call.Arguments)
		if err != nil {
			logger.WithError(err).Warn("openai: invalid function arguments")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "arguments must be a JSON object or encoded object string", nil)
			return
		}

		result, err := service.Execute(r.Context(), call.Name, args)
		if err != nil {
			logger.WithError(err).WithField("function", call.Name).Warn("openai: unknown function requested")
			apiErrors.WriteError(w, apiErrors.ErrUnknownTool, err.Error(), nil)
			return
		}

		toolCallID := call.ToolCallID
		if toolCallID == "" {
			toolCallID = "call_" + utils.GenerateID()
		}

		writeJSON(w, r, openAIFunctionResult{
			ToolCallID: toolCallID,
			Role:       "tool",
			Name:       call.Name,
			Content:    result.Text(),
		})
	})
}

// OpenAIFunctionDefinitions lists every tool as an OpenAI function
func OpenAIFunctionDefinitions(service tooling.Service) http.Handler {
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

func decodeOpenAIArguments(raw json.RawMessage) (map[string]any, error) {
	if len(raw) == 0 {
		return map[string]any{}, nil
	}

	// string form first: "{\"act_id\":...}"
	var encoded string
	if err := json.Unmarshal(raw, &encoded); err == nil {
		if encoded == "" {
			return map[string]any{}, nil
		}
		args := map[string]any{}
		if err := json.Unmarshal([]byte(encoded), &args); err != nil {
			return nil, err
		}
		return args, nil
	}

	args := map[string]any{}
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, err
	}
	return args, nil
}
