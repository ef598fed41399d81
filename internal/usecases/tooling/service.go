package tooling

import (
	"context"

	"github.com/pkg/errors"

	"github.com/tenxer/meta-ads-gateway/infrastructure/integrator/meta/metaclient"
	"github.com/tenxer/meta-ads-gateway/internal/domain"
	"github.com/tenxer/meta-ads-gateway/pkg/log"
)

// TokenProvider supplies the Facebook access token attached to Graph
// API calls. It returns ErrNotAuthenticated when no valid token is
// stored.
type TokenProvider interface {
	AccessToken(ctx context.Context) (string, error)
}

// AuthToolHandler implements the session tools that manage the stored
// token instead of calling the Graph API.
type AuthToolHandler interface {
	Login(ctx context.Context) (*domain.ToolResult, error)
	Logout(ctx context.Context) (*domain.ToolResult, error)
	CheckAuth(ctx context.Context) (*domain.ToolResult, error)
}

// Service executes tool calls coming from any protocol adapter, all
// normalized to (toolName, args).
type Service interface {
	Execute(ctx context.Context, toolName string, args map[string]any) (*domain.ToolResult, error)
	Schemas() []ToolSchema
}

type service struct {
	client metaclient.Client
	tokens TokenProvider
	auth   AuthToolHandler
}

func NewService(client metaclient.Client, tokens TokenProvider, auth AuthToolHandler) Service {
	return &service{
		client: client,
		tokens: tokens,
		auth:   auth,
	}
}

func (s *service) Schemas() []ToolSchema {
	return Schemas()
}

// Execute dispatches one tool call. Tool-level failures (validation,
// auth, upstream errors) come back as error-shaped results rather than
// Go errors, so every adapter renders them the same way; only an
// unknown tool name is an actual error.
func (s *service) Execute(ctx context.Context, toolName string, args map[string]any) (*domain.ToolResult, error) {
	schema, ok := SchemaFor(toolName)
	if !ok {
		return nil, errors.Errorf("unknown tool: %s", toolName)
	}

	logger := log.ForContext(ctx)
	logger.Infof("executing tool %s", toolName)

	result, err := s.dispatch(ctx, schema, args)
	if err != nil {
		logger.WithError(err).Errorf("tool %s failed", toolName)
		return resultFromError(err), nil
	}

	return result, nil
}

func (s *service) dispatch(ctx context.Context, schema ToolSchema, args map[string]any) (*domain.ToolResult, error) {
	switch schema.Name {
	case "facebook_login":
		return s.auth.Login(ctx)
	case "facebook_logout":
		return s.auth.Logout(ctx)
	case "facebook_check_auth":
		return s.auth.CheckAuth(ctx)
	}

	// every remaining tool talks to the Graph API
	token, err := s.tokens.AccessToken(ctx)
	if err != nil {
		return nil, err
	}

	validated, err := Validate(schema, args)
	if err != nil {
		return nil, err
	}

	switch schema.Name {
	case "facebook_list_ad_accounts":
		return s.listAdAccounts(ctx, token)
	case "facebook_fetch_pagination_url":
		return s.fetchPaginationURL(ctx, validated)
	case "facebook_get_details_of_ad_account":
		return s.accountDetails(ctx, token, validated)
	case "facebook_get_adaccount_insights":
		return s.accountInsights(ctx, token, validated)
	case "facebook_get_activities_by_adaccount":
		return s.accountActivities(ctx, token, validated)
	case "facebook_get_ad_creatives":
		return s.adCreatives(ctx, token, validated)
	case "facebook_get_campaign_details":
		return s.campaignDetails(ctx, token, validated)
	case "facebook_get_adset_details":
		return s.adsetDetails(ctx, token, validated)
	case "facebook_get_creative_asset_url_by_ad_id":
		return s.creativeAssetURL(ctx, token, validated)
	default:
		return nil, errors.Errorf("unknown tool: %s", schema.Name)
	}
}
