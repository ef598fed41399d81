package metaclient

import (
	"fmt"

	metadomain "github.com/tenxer/meta-ads-gateway/infrastructure/integrator/meta/domain"
)

// UpstreamError is a Graph API error response, preserving the upstream
// message and numeric code verbatim.
type UpstreamError struct {
	Message      string
	Type         string
	Code         int
	ErrorSubcode int
	FBTraceID    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("Facebook API Error: %s (Code: %d)", e.Message, e.Code)
}

// IsTokenExpired reports whether the upstream error indicates an expired
// or invalidated access token.
func (e *UpstreamError) IsTokenExpired() bool {
	resp := metadomain.ErrorResponse{Error: metadomain.ErrorDetails{
		Type:         e.Type,
		Code:         e.Code,
		ErrorSubcode: e.ErrorSubcode,
	}}
	return resp.IsTokenExpired()
}

// TimeoutError indicates the upstream call exceeded the client timeout.
// It is reported distinctly from a generic upstream failure.
type TimeoutError struct {
	Path string
}

func (e *TimeoutError) Error() string {
	return "Request timeout - Facebook API took too long to respond"
}
