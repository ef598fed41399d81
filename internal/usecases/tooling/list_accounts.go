package tooling

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	metadomain "github.com/tenxer/meta-ads-gateway/infrastructure/integrator/meta/domain"
	"github.com/tenxer/meta-ads-gateway/internal/domain"
	"github.com/tenxer/meta-ads-gateway/pkg/utils"
)

var adAccountFields = []string{"id", "name", "account_status", "currency", "amount_spent", "balance"}

// listAdAccounts handles facebook_list_ad_accounts
func (s *service) listAdAccounts(ctx context.Context, token string) (*domain.ToolResult, error) {
	params := url.Values{}
	params.Set("fields", strings.Join(adAccountFields, ","))

	raw, err := s.client.Get(ctx, "/me/adaccounts", params, token)
	if err != nil {
		return nil, err
	}

	var list metadomain.AdAccountList
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, errors.Wrap(err, "decoding ad account list")
	}

	var b strings.Builder
	if len(list.Data) == 0 {
		b.WriteString("No ad accounts found for this user.")
	} else {
		b.WriteString(fmt.Sprintf("📋 **Facebook Ad Accounts (%d):**\n\n", len(list.Data)))
		for _, account := range list.Data {
			b.WriteString(fmt.Sprintf("**%s** (`%s`)\n", account.Name, account.ID))
			b.WriteString(fmt.Sprintf("  Status: %s\n", metadomain.AccountStatusLabel(account.AccountStatus)))
			b.WriteString(fmt.Sprintf("  Currency: %s\n", account.Currency))
			if spend, ok := utils.Numeric(account.AmountSpent); ok {
				b.WriteString(fmt.Sprintf("  💰 Amount spent: %.2f\n", spend))
			}
			b.WriteString("\n")
		}
		writePaginationHint(&b, list.Paging)
	}

	text := b.String() + rawAppendix(raw)
	return domain.TextResult(text), nil
}

// writePaginationHint points the model at the pagination tool when the
// upstream payload has a next page.
func writePaginationHint(b *strings.Builder, paging *metadomain.Paging) {
	if paging == nil || paging.Next == "" {
		return
	}
	b.WriteString("➡️ More results available. Call facebook_fetch_pagination_url with:\n")
	b.WriteString(paging.Next)
	b.WriteString("\n")
}
