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

func newGeminiRouter(service tooling.Service) http.Handler {
	return router.New(router.WithRoutes(Gemini(service)...))
}

func TestGeminiFunctionCall_WrappedShape(t *testing.T) {
	service := &stubService{result: domain.TextResult("report")}
	rt := newGeminiRouter(service)

	body := `{"functionCall":{"name":"facebook_get_campaign_details","args":{"campaign_id":"123"}}}`
	req := httptest.NewRequest(http.MethodPost, "/gemini/functions", strings.NewReader(body))
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "facebook_get_campaign_details", service.lastName)
	assert.Equal(t, "123", service.lastArgs["campaign_id"])

	var resp struct {
		FunctionResponse struct {
			Name     string         `json:"name"`
			Response map[string]any `json:"response"`
		} `json:"functionResponse"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "facebook_get_campaign_details", resp.FunctionResponse.Name)
	assert.Equal(t, "report", resp.FunctionResponse.Response["content"])
}

func TestGeminiFunctionCall_BareShape(t *testing.T) {
	service := &stubService{result: domain.TextResult("ok")}
	rt := newGeminiRouter(service)

	body := `{"name":"facebook_check_auth","args":{}}`
	req := httptest.NewRequest(http.MethodPost, "/gemini/functions", strings.NewReader(body))
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "facebook_check_auth", service.lastName)
}

func TestGeminiFunctionCall_NilArgs(t *testing.T) {
	service := &stubService{result: domain.TextResult("ok")}
	rt := newGeminiRouter(service)

	req := httptest.NewRequest(http.MethodPost, "/gemini/functions", strings.NewReader(`{"name":"facebook_login"}`))
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{}, service.lastArgs)
}

func TestGeminiFunctionCall_MissingName(t *testing.T) {
	rt := newGeminiRouter(&stubService{})

	req := httptest.NewRequest(http.MethodPost, "/gemini/functions", strings.NewReader(`{"functionCall":{"args":{}}}`))
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VAL_002")
}

func TestGeminiFunctionDefinitions(t *testing.T) {
	rt := newGeminiRouter(&stubService{})

	req := httptest.NewRequest(http.MethodGet, "/gemini/functions/definitions", nil)
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Functions []struct {
			Name string `json:"name"`
		} `json:"functions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Functions, 12)
}
