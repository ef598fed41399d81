package tooling

import (
	"context"

	"github.com/tenxer/meta-ads-gateway/internal/domain"
	"github.com/tenxer/meta-ads-gateway/pkg/utils"
)

// fetchPaginationURL handles facebook_fetch_pagination_url. Pagination
// links returned by the Graph API already embed the access token, so
// the stored token is not re-attached here.
func (s *service) fetchPaginationURL(ctx context.Context, args map[string]any) (*domain.ToolResult, error) {
	pageURL := stringArg(args, "url")

	raw, err := s.client.GetURL(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	text := "📄 **Paginated Results:**\n\n```json\n" + utils.PrettyJson(raw) + "\n```"
	return domain.TextResult(text), nil
}
