package tooling

import (
	"context"

	"github.com/pkg/errors"

	metadomain "github.com/tenxer/meta-ads-gateway/infrastructure/integrator/meta/domain"
	"github.com/tenxer/meta-ads-gateway/internal/domain"
)

// accountInsights handles facebook_get_adaccount_insights: build the
// query, fetch, format, and append the debug trace plus the raw payload.
func (s *service) accountInsights(ctx context.Context, token string, args map[string]any) (*domain.ToolResult, error) {
	built, err := BuildInsightsParams(args)
	if err != nil {
		return nil, err
	}

	raw, err := s.client.Get(ctx, "/"+built.ActID+"/insights", built.Params, token)
	if err != nil {
		return nil, err
	}

	var payload metadomain.InsightsPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, errors.Wrap(err, "decoding insights payload")
	}

	text := "No insights data found."
	if len(payload.Data) > 0 {
		text = FormatInsightsReport(payload.Data, built.Increment)
	}

	text += debugAppendix(built.Debug)
	text += rawAppendix(raw)

	return domain.TextResult(text), nil
}
