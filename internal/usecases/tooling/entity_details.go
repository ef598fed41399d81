package tooling

import (
	"context"
	"net/url"
	"strings"

	"github.com/tenxer/meta-ads-gateway/internal/domain"
	"github.com/tenxer/meta-ads-gateway/pkg/utils"
)

// campaignDetails handles facebook_get_campaign_details
func (s *service) campaignDetails(ctx context.Context, token string, args map[string]any) (*domain.ToolResult, error) {
	schema, _ := SchemaFor("facebook_get_campaign_details")
	return s.entityDetails(ctx, token,
		stringArg(args, "campaign_id"),
		fieldsArg(args, schema.Fields["fields"]),
		"🎪 **Campaign Details**")
}

// adsetDetails handles facebook_get_adset_details
func (s *service) adsetDetails(ctx context.Context, token string, args map[string]any) (*domain.ToolResult, error) {
	schema, _ := SchemaFor("facebook_get_adset_details")
	return s.entityDetails(ctx, token,
		stringArg(args, "adset_id"),
		fieldsArg(args, schema.Fields["fields"]),
		"🎯 **Ad Set Details**")
}

// creativeAssetURL handles facebook_get_creative_asset_url_by_ad_id.
// The creative is expanded inline on the ad object so one call returns
// the asset URLs together with the ad copy.
func (s *service) creativeAssetURL(ctx context.Context, token string, args map[string]any) (*domain.ToolResult, error) {
	adID := stringArg(args, "ad_id")

	params := url.Values{}
	params.Set("fields", "id,name,creative{id,name,title,body,image_url,video_id,thumbnail_url,object_story_spec}")

	raw, err := s.client.Get(ctx, "/"+adID, params, token)
	if err != nil {
		return nil, err
	}

	text := "🖼️ **Creative Assets** (`" + adID + "`):\n\n```json\n" +
		utils.PrettyJson(raw) + "\n```"
	return domain.TextResult(text), nil
}

func (s *service) entityDetails(ctx context.Context, token, id string, fields []string, header string) (*domain.ToolResult, error) {
	params := url.Values{}
	params.Set("fields", strings.Join(fields, ","))

	raw, err := s.client.Get(ctx, "/"+id, params, token)
	if err != nil {
		return nil, err
	}

	text := header + " (`" + id + "`):\n\n```json\n" + utils.PrettyJson(raw) + "\n```"
	return domain.TextResult(text), nil
}
