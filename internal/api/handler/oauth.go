package handler

import (
	"fmt"
	"net/http"

	"github.com/tenxer/meta-ads-gateway/internal/usecases/authing"
	"github.com/tenxer/meta-ads-gateway/pkg/apiErrors"
	"github.com/tenxer/meta-ads-gateway/pkg/log"
)

// StartOAuth redirects the browser to the Facebook login dialog
func StartOAuth(oauth *authing.OAuthService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		loginURL, err := oauth.LoginURL()
		if err != nil {
			logger.WithError(err).Error("oauth: failed to build login URL")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "could not start the login flow", nil)
			return
		}

		logger.Info("oauth: redirecting to Facebook login dialog")
		http.Redirect(w, r, loginURL, http.StatusFound)
	})
}

// OAuthCallback handles the redirect back from Facebook
func OAuthCallback(oauth *authing.OAuthService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		query := r.URL.Query()

		if errName := query.Get("error"); errName != "" {
			logger.WithField("error", errName).Warn("oauth: login denied by user or Facebook")
			writeOAuthPage(w, "❌ Authentication Failed",
				fmt.Sprintf("Facebook reported: %s. You can close this window and try again.", errName))
			return
		}

		code := query.Get("code")
		if code == "" {
			writeOAuthPage(w, "❌ Authentication Failed",
				"Missing authorization code in the callback. You can close this window and try again.")
			return
		}

		if err := oauth.HandleCallback(r.Context(), query.Get("state"), code); err != nil {
			logger.WithError(err).Error("oauth: callback handling failed")
			writeOAuthPage(w, "❌ Authentication Failed",
				"Could not complete the Facebook login. You can close this window and try again.")
			return
		}

		writeOAuthPage(w, "✅ Authentication Successful",
			"You are now connected to Facebook. You can close this window and return to your chat.")
	})
}

// AuthStatus reports the stored token status as JSON
func AuthStatus(store *authing.FileTokenStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info := store.Info(authing.DefaultUserID)

		body := map[string]any{
			"authenticated": info.HasToken && !info.IsExpired,
		}
		if info.HasToken {
			body["stored_at"] = info.StoredAt
			body["expires_at"] = info.ExpiresAt
			body["expired"] = info.IsExpired
		}

		writeJSON(w, r, body)
	})
}

func writeOAuthPage(w http.ResponseWriter, title, message string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>%s</title>
  <style>
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
      background: #f7f9fc;
      color: #333;
      display: flex;
      justify-content: center;
      align-items: center;
      height: 100vh;
      margin: 0;
    }
    main {
      background: white;
      padding: 2.5rem 3rem;
      border-radius: 12px;
      box-shadow: 0 4px 12px rgba(0, 0, 0, 0.08);
      text-align: center;
      max-width: 28rem;
    }
  </style>
</head>
<body>
  <main>
    <h1>%s</h1>
    <p>%s</p>
  </main>
</body>
</html>`, title, title, message)
}
