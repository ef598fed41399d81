package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/tenxer/meta-ads-gateway/infrastructure/integrator/meta/domain"
	"github.com/tenxer/meta-ads-gateway/internal/config"
)

const requestTimeout = 30 * time.Second

// Client is the boundary the tool layer talks to. Every method injects
// the access token and normalizes upstream failures into UpstreamError
// or TimeoutError.
type Client interface {
	Get(ctx context.Context, path string, params url.Values, accessToken string) ([]byte, error)
	GetURL(ctx context.Context, fullURL string) ([]byte, error)
	BuildAuthURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*TokenResponse, error)
}

type GraphClient struct {
	Cfg  *config.Config
	http *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &GraphClient{
		Cfg:  cfg,
		http: &http.Client{Timeout: requestTimeout},
	}
}

// Get performs a GET against a versioned Graph API path ("/act_1/insights")
// with the access token appended, returning the raw JSON body.
func (c *GraphClient) Get(ctx context.Context, path string, params url.Values, accessToken string) ([]byte, error) {
	// never write the token into the caller's map
	query := url.Values{}
	for key, values := range params {
		query[key] = append([]string(nil), values...)
	}
	query.Set("access_token", accessToken)

	requestURL := fmt.Sprintf("%s%s?%s", c.Cfg.Meta.URL, path, query.Encode())

	return c.doGet(ctx, requestURL, path)
}

// GetURL performs a GET against a full URL, used to follow the pagination
// links the Graph API returns (those already embed the access token).
func (c *GraphClient) GetURL(ctx context.Context, fullURL string) ([]byte, error) {
	parsed, err := url.Parse(fullURL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid pagination URL")
	}

	base, err := url.Parse(c.Cfg.Meta.BaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid Graph API base URL")
	}
	if parsed.Scheme != base.Scheme || parsed.Host != base.Host {
		return nil, errors.Errorf("refusing to fetch non-Graph URL: %s", parsed.Host)
	}

	return c.doGet(ctx, fullURL, parsed.Path)
}

func (c *GraphClient) doGet(ctx context.Context, requestURL, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "building Graph API request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if isTimeout(err) {
			logrus.WithField("path", path).Warn("graph: request timed out")
			return nil, &TimeoutError{Path: path}
		}
		return nil, errors.Wrap(err, "calling Graph API")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "reading Graph API response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, normalizeError(resp.StatusCode, body)
	}

	// Some error payloads come back with a 200 status
	var errorResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errorResp); err == nil && errorResp.Error.Message != "" {
		return nil, upstreamFromResponse(&errorResp)
	}

	return body, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return false
}

func normalizeError(status int, body []byte) error {
	var errorResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errorResp); err == nil && errorResp.Error.Message != "" {
		return upstreamFromResponse(&errorResp)
	}

	return &UpstreamError{
		Message: fmt.Sprintf("unexpected response (status %d): %s", status, strings.TrimSpace(string(body))),
		Code:    status,
	}
}

func upstreamFromResponse(resp *metadomain.ErrorResponse) *UpstreamError {
	logrus.WithFields(logrus.Fields{
		"code":        resp.Error.Code,
		"subcode":     resp.Error.ErrorSubcode,
		"fbtrace_id":  resp.Error.FBTraceID,
		"error_type":  resp.Error.Type,
		"token_stale": (&metadomain.ErrorResponse{Error: resp.Error}).IsTokenExpired(),
	}).Warn("graph: API returned an error")

	return &UpstreamError{
		Message:      resp.Error.Message,
		Type:         resp.Error.Type,
		Code:         resp.Error.Code,
		ErrorSubcode: resp.Error.ErrorSubcode,
		FBTraceID:    resp.Error.FBTraceID,
	}
}
