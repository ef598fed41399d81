package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tenxer/meta-ads-gateway/internal/api/handler/router"
	"github.com/tenxer/meta-ads-gateway/internal/domain"
	"github.com/tenxer/meta-ads-gateway/internal/usecases/tooling"
)

func newOpenAIRouter(service tooling.Service) http.Handler {
	return router.New(router.WithRoutes(OpenAI(service)...))
}

func TestOpenAIFunctionCall_ObjectArguments(t *testing.T) {
	service := &stubService{result: domain.TextResult("report")}
	rt := newOpenAIRouter(service)

	body := `{"tool_call_id":"call_abc","name":"facebook_get_adaccount_insights","arguments":{"act_id":"act_1","fields":["spend"]}}`
	req := httptest.NewRequest(http.MethodPost, "/openai/functions", strings.NewReader(body))
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "facebook_get_adaccount_insights", service.lastName)
	assert.Equal(t, "act_1", service.lastArgs["act_id"])

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "call_abc", resp["tool_call_id"])
	assert.Equal(t, "tool", resp["role"])
	assert.Equal(t, "facebook_get_adaccount_insights", resp["name"])
	assert.Equal(t, "report", resp["content"])
}

func TestOpenAIFunctionCall_StringEncodedArguments(t *testing.T) {
	service := &stubService{result: domain.TextResult("report")}
	rt := newOpenAIRouter(service)

	// the OpenAI API serializes arguments as a JSON-encoded string
	body := `{"name":"facebook_get_adaccount_insights","arguments":"{\"act_id\":\"act_1\",\"fields\":[\"spend\"]}"}`
	req := httptest.NewRequest(http.MethodPost, "/openai/functions", strings.NewReader(body))
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "act_1", service.lastArgs["act_id"])
	assert.Equal(t, []any{"spend"}, service.lastArgs["fields"])

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	id, ok := resp["tool_call_id"].(string)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(id, "call_"), "generated id %q lacks call_ prefix", id)
}

func TestOpenAIFunctionCall_MissingArguments(t *testing.T) {
	service := &stubService{result: domain.TextResult("ok")}
	rt := newOpenAIRouter(service)

	req := httptest.NewRequest(http.MethodPost, "/openai/functions", strings.NewReader(`{"name":"facebook_check_auth"}`))
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{}, service.lastArgs)
}

func TestOpenAIFunctionCall_MissingName(t *testing.T) {
	rt := newOpenAIRouter(&stubService{})

	req := httptest.NewRequest(http.MethodPost, "/openai/functions", strings.NewReader(`{"arguments":{}}`))
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VAL_002")
}

func TestOpenAIFunctionCall_MalformedArguments(t *testing.T) {
	rt := newOpenAIRouter(&stubService{})

	body := `{"name":"facebook_check_auth","arguments":"not an object"}`
	req := httptest.NewRequest(http.MethodPost, "/openai/functions", strings.NewReader(body))
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VAL_001")
}

func TestOpenAIFunctionDefinitions(t *testing.T) {
	rt := newOpenAIRouter(&stubService{})

	req := httptest.NewRequest(http.MethodGet, "/openai/functions/definitions", nil)
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Functions []struct {
			Name       string         `json:"name"`
			Parameters map[string]any `json:"parameters"`
		} `json:"functions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Functions, 12)

	names := make(map[string]bool, len(body.Functions))
	for _, fn := range body.Functions {
		names[fn.Name] = true
		assert.Equal(t, "object", fn.Parameters["type"])
	}
	assert.True(t, names["facebook_get_adaccount_insights"])
	assert.True(t, names["facebook_login"])
}
