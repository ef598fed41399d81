package tooling

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	metadomain "github.com/tenxer/meta-ads-gateway/infrastructure/integrator/meta/domain"
	"github.com/tenxer/meta-ads-gateway/internal/domain"
)

const defaultCreativeLimit = 25

var creativeFields = []string{
	"id",
	"name",
	"title",
	"body",
	"status",
	"thumbnail_url",
	"object_type",
}

// adCreatives handles facebook_get_ad_creatives
func (s *service) adCreatives(ctx context.Context, token string, args map[string]any) (*domain.ToolResult, error) {
	actID := stringArg(args, "act_id")

	params := url.Values{}
	params.Set("fields", strings.Join(creativeFields, ","))
	params.Set("limit", strconv.Itoa(intArg(args, "limit", defaultCreativeLimit)))

	raw, err := s.client.Get(ctx, "/"+actID+"/adcreatives", params, token)
	if err != nil {
		return nil, err
	}

	var list metadomain.CreativeList
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, errors.Wrap(err, "decoding creative list")
	}

	var b strings.Builder
	if len(list.Data) == 0 {
		b.WriteString("No ad creatives found for this ad account.")
	} else {
		b.WriteString(fmt.Sprintf("🎨 **Ad Creatives (%d):**\n\n", len(list.Data)))
		for _, creative := range list.Data {
			b.WriteString(fmt.Sprintf("**%s** (`%s`)\n", creative.Name, creative.ID))
			if creative.Title != "" {
				b.WriteString(fmt.Sprintf("  📝 Title: %s\n", creative.Title))
			}
			if creative.Body != "" {
				b.WriteString(fmt.Sprintf("  💬 Body: %s\n", creative.Body))
			}
			if creative.Status != "" {
				b.WriteString(fmt.Sprintf("  Status: %s\n", creative.Status))
			}
			if creative.ThumbnailURL != "" {
				b.WriteString(fmt.Sprintf("  🖼️ Thumbnail: %s\n", creative.ThumbnailURL))
			}
			b.WriteString("\n")
		}
		writePaginationHint(&b, list.Paging)
	}

	text := b.String() + rawAppendix(raw)
	return domain.TextResult(text), nil
}
