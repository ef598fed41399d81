package tooling

import (
	"fmt"

	"github.com/pkg/errors"
	metaclient "github.com/tenxer/meta-ads-gateway/infrastructure/integrator/meta/metaclient"
	"github.com/tenxer/meta-ads-gateway/internal/domain"
)

// ValidationError reports malformed or missing tool arguments. It is
// raised before any network call and never retried.
type ValidationError struct {
	Field      string
	Constraint string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid parameter %q: %s", e.Field, e.Constraint)
}

// AuthenticationError reports a missing or rejected access token
type AuthenticationError struct {
	Reason string
}

func (e *AuthenticationError) Error() string {
	return e.Reason
}

// ErrNotAuthenticated is the precondition failure raised when a tool that
// needs a Facebook token is called before login.
var ErrNotAuthenticated = &AuthenticationError{
	Reason: "no Facebook access token available. Use the facebook_login tool to authenticate first",
}

// resultFromError converts any error from the tool pipeline into the
// success-shaped envelope the adapters expect. Upstream message and code
// are preserved verbatim.
func resultFromError(err error) *domain.ToolResult {
	var (
		validationErr *ValidationError
		authErr       *AuthenticationError
		upstreamErr   *metaclient.UpstreamError
		timeoutErr    *metaclient.TimeoutError
	)

	switch {
	case errors.As(err, &validationErr):
		return domain.ErrorResult(fmt.Sprintf("❌ Validation error: %s", validationErr.Error()))
	case errors.As(err, &authErr):
		return domain.ErrorResult(fmt.Sprintf("🔐 Authentication required: %s", authErr.Error()))
	case errors.As(err, &timeoutErr):
		return domain.ErrorResult(fmt.Sprintf("⏱️ Timeout: %s", timeoutErr.Error()))
	case errors.As(err, &upstreamErr):
		return domain.ErrorResult(fmt.Sprintf("❌ %s", upstreamErr.Error()))
	default:
		return domain.ErrorResult(fmt.Sprintf("❌ Error: %s", err.Error()))
	}
}
