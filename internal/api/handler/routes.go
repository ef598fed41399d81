package handler

import (
	"net/http"

	"github.com/tenxer/meta-ads-gateway/internal/api/handler/router"
	"github.com/tenxer/meta-ads-gateway/internal/config"
	"github.com/tenxer/meta-ads-gateway/internal/usecases/authing"
	"github.com/tenxer/meta-ads-gateway/internal/usecases/tooling"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Tools(service tooling.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/tools",
			Method:  http.MethodGet,
			Handler: ListTools(service),
		},
		{
			Path:    "/v1/tools/:name",
			Method:  http.MethodPost,
			Handler: ExecuteTool(service),
		},
	}
}

func OpenAI(service tooling.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/openai/functions",
			Method:  http.MethodPost,
			Handler: OpenAIFunctionCall(service),
		},
		{
			Path:    "/openai/functions/definitions",
			Method:  http.MethodGet,
			Handler: OpenAIFunctionDefinitions(service),
		},
	}
}

func Gemini(service tooling.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/gemini/functions",
			Method:  http.MethodPost,
			Handler: GeminiFunctionCall(service),
		},
		{
			Path:    "/gemini/functions/definitions",
			Method:  http.MethodGet,
			Handler: GeminiFunctionDefinitions(service),
		},
	}
}

func Manifest(cfg *config.Config, service tooling.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/claude/manifest",
			Method:  http.MethodGet,
			Handler: ClaudeManifest(cfg, service),
		},
	}
}

func OAuth(oauth *authing.OAuthService, store *authing.FileTokenStore) []router.Route {
	return []router.Route{
		{
			Path:    "/auth/facebook",
			Method:  http.MethodGet,
			Handler: StartOAuth(oauth),
		},
		{
			Path:    "/auth/facebook/callback",
			Method:  http.MethodGet,
			Handler: OAuthCallback(oauth),
		},
		{
			Path:    "/auth/status",
			Method:  http.MethodGet,
			Handler: AuthStatus(store),
		},
	}
}
