package metadomain

// ErrorResponse is the error envelope the Graph API returns
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails carries the upstream error fields
type ErrorDetails struct {
	Message      string      `json:"message"`
	Type         string      `json:"type"`
	Code         int         `json:"code"`
	ErrorSubcode int         `json:"error_subcode,omitempty"`
	FBTraceID    string      `json:"fbtrace_id"`
	ErrorData    interface{} `json:"error_data,omitempty"`
}

// IsTokenExpired reports whether the error indicates an expired token.
// Code 190 is "access token expired"; subcodes 460, 463 and 467 cover
// password changes, expiry and invalidated sessions.
func (e *ErrorResponse) IsTokenExpired() bool {
	return e.Error.Code == 190 ||
		(e.Error.Type == "OAuthException" && (e.Error.ErrorSubcode == 460 || e.Error.ErrorSubcode == 463 || e.Error.ErrorSubcode == 467))
}
