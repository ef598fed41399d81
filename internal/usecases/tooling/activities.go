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
	"github.com/tenxer/meta-ads-gateway/pkg/utils"
)

const defaultActivityLimit = 25

var activityFields = []string{
	"event_time",
	"event_type",
	"translated_event_type",
	"actor_name",
	"object_name",
	"extra_data",
}

// accountActivities handles facebook_get_activities_by_adaccount
func (s *service) accountActivities(ctx context.Context, token string, args map[string]any) (*domain.ToolResult, error) {
	actID := stringArg(args, "act_id")

	params := url.Values{}
	params.Set("fields", strings.Join(activityFields, ","))
	params.Set("limit", strconv.Itoa(intArg(args, "limit", defaultActivityLimit)))
	for _, key := range []string{"since", "until"} {
		value := stringArg(args, key)
		if value == "" {
			continue
		}
		if _, err := utils.ParseDate(value); err != nil {
			return nil, &ValidationError{Field: key, Constraint: "must be a YYYY-MM-DD date"}
		}
		params.Set(key, value)
	}

	raw, err := s.client.Get(ctx, "/"+actID+"/activities", params, token)
	if err != nil {
		return nil, err
	}

	var list metadomain.ActivityList
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, errors.Wrap(err, "decoding activity list")
	}

	var b strings.Builder
	if len(list.Data) == 0 {
		b.WriteString("No activities found for this ad account.")
	} else {
		b.WriteString(fmt.Sprintf("📜 **Account Activities (%d):**\n\n", len(list.Data)))
		for _, activity := range list.Data {
			label := activity.TranslatedEventType
			if label == "" {
				label = activity.EventType
			}
			b.WriteString(fmt.Sprintf("**%s** — %s\n", activity.EventTime, label))
			if activity.ActorName != "" {
				b.WriteString(fmt.Sprintf("  👤 By: %s\n", activity.ActorName))
			}
			if activity.ObjectName != "" {
				b.WriteString(fmt.Sprintf("  🎯 Object: %s\n", activity.ObjectName))
			}
			b.WriteString("\n")
		}
		writePaginationHint(&b, list.Paging)
	}

	text := b.String() + rawAppendix(raw)
	return domain.TextResult(text), nil
}
