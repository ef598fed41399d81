package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
)

// oauthScopes are the permissions the read-only tools need
const oauthScopes = "ads_read,ads_management,business_management"

// TokenResponse is the body of a successful /oauth/access_token exchange
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// BuildAuthURL assembles the Facebook login dialog URL for the
// browser-redirect flow.
func (c *GraphClient) BuildAuthURL(state string) string {
	params := url.Values{}
	params.Set("client_id", c.Cfg.Meta.AppID)
	params.Set("redirect_uri", c.Cfg.OAuth.RedirectURL)
	params.Set("scope", oauthScopes)
	params.Set("response_type", "code")
	params.Set("state", state)

	return fmt.Sprintf("https://www.facebook.com/%s/dialog/oauth?%s", c.Cfg.Meta.Version, params.Encode())
}

// ExchangeCode trades an OAuth authorization code for a user access token.
func (c *GraphClient) ExchangeCode(ctx context.Context, code string) (*TokenResponse, error) {
	params := url.Values{}
	params.Set("client_id", c.Cfg.Meta.AppID)
	params.Set("client_secret", c.Cfg.Meta.AppSecret)
	params.Set("redirect_uri", c.Cfg.OAuth.RedirectURL)
	params.Set("code", code)

	requestURL := fmt.Sprintf("%s/oauth/access_token?%s", c.Cfg.Meta.URL, params.Encode())

	body, err := c.doGet(ctx, requestURL, "/oauth/access_token")
	if err != nil {
		return nil, errors.Wrap(err, "token exchange failed")
	}

	var token TokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return nil, errors.Wrap(err, "decoding token exchange response")
	}

	if token.AccessToken == "" {
		return nil, &UpstreamError{Message: "token exchange returned no access token", Code: http.StatusBadGateway}
	}

	return &token, nil
}
