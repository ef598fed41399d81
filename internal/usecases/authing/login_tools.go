package authing

import (
	"context"
	"fmt"

	"github.com/tenxer/meta-ads-gateway/internal/domain"
)

// LoginTools implements the facebook_login / facebook_logout /
// facebook_check_auth tools on top of the token store and the OAuth
// flow. It satisfies tooling.AuthToolHandler.
type LoginTools struct {
	store *FileTokenStore
	oauth *OAuthService
}

func NewLoginTools(store *FileTokenStore, oauth *OAuthService) *LoginTools {
	return &LoginTools{
		store: store,
		oauth: oauth,
	}
}

// Login reports the current session or hands back the browser login URL
func (t *LoginTools) Login(_ context.Context) (*domain.ToolResult, error) {
	if _, ok := t.store.Token(DefaultUserID); ok {
		return domain.TextResult(
			"✅ You are already logged in to Facebook. Use facebook_logout to disconnect and login with another account.",
		), nil
	}

	loginURL, err := t.oauth.LoginURL()
	if err != nil {
		return nil, err
	}

	text := fmt.Sprintf(
		"🔐 Facebook login required. Open this URL in your browser to authenticate:\n\n%s\n\nAfter completing the login, retry your request.",
		loginURL,
	)
	return domain.TextResult(text), nil
}

// Logout clears the stored token
func (t *LoginTools) Logout(_ context.Context) (*domain.ToolResult, error) {
	if err := t.store.Clear(DefaultUserID); err != nil {
		return nil, err
	}
	return domain.TextResult("🗑️ Facebook token cleared. You are now logged out."), nil
}

// CheckAuth reports the stored token status without exposing the token
func (t *LoginTools) CheckAuth(_ context.Context) (*domain.ToolResult, error) {
	info := t.store.Info(DefaultUserID)

	switch {
	case !info.HasToken:
		return domain.TextResult(
			"❌ Not authenticated. Use the facebook_login tool to connect your Facebook account.",
		), nil
	case info.IsExpired:
		return domain.TextResult(fmt.Sprintf(
			"⚠️ Stored Facebook token has expired (expired at %s). Use facebook_login to authenticate again.",
			info.ExpiresAt,
		)), nil
	default:
		return domain.TextResult(fmt.Sprintf(
			"✅ Authenticated with Facebook.\n  Stored at: %s\n  Expires at: %s",
			info.StoredAt,
			info.ExpiresAt,
		)), nil
	}
}
