package tooling

import (
	"context"
	"net/url"
	"strings"

	"github.com/tenxer/meta-ads-gateway/internal/domain"
	"github.com/tenxer/meta-ads-gateway/pkg/utils"
)

// accountDetails handles facebook_get_details_of_ad_account
func (s *service) accountDetails(ctx context.Context, token string, args map[string]any) (*domain.ToolResult, error) {
	actID := stringArg(args, "act_id")
	schema, _ := SchemaFor("facebook_get_details_of_ad_account")
	fields := fieldsArg(args, schema.Fields["fields"])

	params := url.Values{}
	params.Set("fields", strings.Join(fields, ","))

	raw, err := s.client.Get(ctx, "/"+actID, params, token)
	if err != nil {
		return nil, err
	}

	text := "📊 **Ad Account Details** (`" + actID + "`):\n\n```json\n" +
		utils.PrettyJson(raw) + "\n```"

	return domain.TextResult(text), nil
}
