package tooling

import (
	"fmt"
	"sort"
	"strings"

	metadomain "github.com/tenxer/meta-ads-gateway/infrastructure/integrator/meta/domain"
	"github.com/tenxer/meta-ads-gateway/pkg/utils"
)

// breakdownCandidates are the dimension keys probed against the first
// row to decide which rendering path applies.
var breakdownCandidates = []string{
	"date_start",
	"date_stop",
	"placement",
	"age",
	"gender",
	"country",
	"region",
	"device_platform",
	"publisher_platform",
	"platform_position",
	"impression_device",
	"product_id",
	"dma",
}

// FormatInsightsReport renders the insights rows as a human-readable
// report. Monthly bucketing takes the month-wise path; otherwise the
// detected breakdown dimensions decide between time-based and simple
// rendering.
func FormatInsightsReport(rows []metadomain.Row, increment ResolvedTimeIncrement) string {
	if increment.Monthly {
		return formatMonthlyBreakdown(rows)
	}
	return formatInsightsWithBreakdowns(rows, increment)
}

func formatInsightsWithBreakdowns(rows []metadomain.Row, increment ResolvedTimeIncrement) string {
	breakdownFields := detectBreakdownFields(rows)

	switch {
	case contains(breakdownFields, "date_start") && increment.Monthly:
		return formatMonthlyBreakdown(rows)
	case contains(breakdownFields, "date_start"):
		return formatTimeBasedBreakdown(rows)
	default:
		return formatSimpleInsights(rows)
	}
}

func formatMonthlyBreakdown(rows []metadomain.Row) string {
	var b strings.Builder
	b.WriteString("📆 **Month-wise Performance Breakdown:**\n\n")

	sorted := sortedByDateStart(rows)
	for _, row := range sorted {
		start := monthOf(row.DateStart())
		end := monthOf(row.DateStop())

		label := start
		if start != end {
			label = fmt.Sprintf("%s → %s", start, end)
		}

		writeRowBlock(&b, label, row)
	}

	return b.String()
}

func formatTimeBasedBreakdown(rows []metadomain.Row) string {
	var b strings.Builder
	b.WriteString("📅 **Time-Based Performance Breakdown:**\n\n")

	sorted := sortedByDateStart(rows)
	for _, row := range sorted {
		start := row.DateStart()
		end := row.DateStop()

		label := start
		if start != end {
			label = fmt.Sprintf("%s → %s", start, end)
		}

		writeRowBlock(&b, label, row)
	}

	return b.String()
}

func formatSimpleInsights(rows []metadomain.Row) string {
	var b strings.Builder
	b.WriteString("📊 **Performance Summary:**\n\n")

	for i, row := range rows {
		label := dimensionLabel(row)
		if label == "" && len(rows) > 1 {
			label = fmt.Sprintf("Result %d", i+1)
		}

		if label != "" {
			b.WriteString(fmt.Sprintf("**%s:**\n", label))
			b.WriteString(formatRowMetrics(row, "  "))
			writeConversionLine(&b, row, "  ")
		} else {
			b.WriteString(formatRowMetrics(row, ""))
			writeConversionLine(&b, row, "")
		}
		b.WriteString("\n")
	}

	return b.String()
}

// dimensionLabel joins the non-date breakdown values of a row, e.g.
// "25-34 | female" for an age+gender breakdown.
func dimensionLabel(row metadomain.Row) string {
	var parts []string
	for _, field := range breakdownCandidates {
		if field == "date_start" || field == "date_stop" {
			continue
		}
		if v, ok := row[field].(string); ok && v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " | ")
}

func writeRowBlock(b *strings.Builder, label string, row metadomain.Row) {
	b.WriteString(fmt.Sprintf("**%s:**\n", label))
	b.WriteString(formatRowMetrics(row, "  "))
	writeConversionLine(b, row, "  ")
	b.WriteString("\n")
}

func writeConversionLine(b *strings.Builder, row metadomain.Row, indent string) {
	if summary := conversionSummary(row); summary != "" {
		b.WriteString(fmt.Sprintf("%s🎯 **Conversions:** %s\n", indent, summary))
	}
}

// formatRowMetrics renders the standard metric lines of one row. A
// metric missing from the row is skipped, never rendered as zero.
func formatRowMetrics(row metadomain.Row, indent string) string {
	var b strings.Builder

	if v, ok := metricValue(row, "spend"); ok {
		b.WriteString(fmt.Sprintf("%s💰 Spend: $%.2f\n", indent, v))
	}
	if v, ok := metricValue(row, "impressions"); ok {
		b.WriteString(fmt.Sprintf("%s👁️ Impressions: %s\n", indent, utils.FormatThousands(int64(v))))
	}
	if v, ok := metricValue(row, "clicks"); ok {
		b.WriteString(fmt.Sprintf("%s🖱️ Clicks: %s\n", indent, utils.FormatThousands(int64(v))))
	}
	if v, ok := metricValue(row, "ctr"); ok {
		b.WriteString(fmt.Sprintf("%s📊 CTR: %.2f%%\n", indent, v))
	}
	if v, ok := metricValue(row, "cpc"); ok {
		b.WriteString(fmt.Sprintf("%s💸 CPC: $%.2f\n", indent, v))
	}
	if v, ok := metricValue(row, "cpm"); ok {
		b.WriteString(fmt.Sprintf("%s📈 CPM: $%.2f\n", indent, v))
	}

	return b.String()
}

func metricValue(row metadomain.Row, key string) (float64, bool) {
	raw, present := row[key]
	if !present || raw == nil {
		return 0, false
	}
	v, ok := utils.Numeric(raw)
	if !ok {
		return 0, false
	}
	return v, true
}

// conversionSummary merges the row's conversions and actions into
// "type: value" pairs. Conversions win: an actions entry only
// contributes when its type has no positive conversions total yet.
func conversionSummary(row metadomain.Row) string {
	totals := map[string]float64{}
	var order []string

	for _, entry := range row.Actions("conversions") {
		if _, seen := totals[entry.ActionType]; !seen {
			order = append(order, entry.ActionType)
		}
		v, _ := utils.Numeric(entry.Value)
		totals[entry.ActionType] += v
	}
	for _, entry := range row.Actions("actions") {
		if totals[entry.ActionType] != 0 {
			continue
		}
		if _, seen := totals[entry.ActionType]; !seen {
			order = append(order, entry.ActionType)
		}
		v, _ := utils.Numeric(entry.Value)
		totals[entry.ActionType] += v
	}

	var parts []string
	for _, actionType := range order {
		if totals[actionType] <= 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", actionType, metadomain.FormatValue(totals[actionType])))
	}

	return strings.Join(parts, ", ")
}

func detectBreakdownFields(rows []metadomain.Row) []string {
	if len(rows) == 0 {
		return nil
	}

	first := rows[0]
	var found []string
	for _, field := range breakdownCandidates {
		if _, ok := first[field]; ok {
			found = append(found, field)
		}
	}
	return found
}

func sortedByDateStart(rows []metadomain.Row) []metadomain.Row {
	sorted := make([]metadomain.Row, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DateStart() < sorted[j].DateStart()
	})
	return sorted
}

func monthOf(date string) string {
	if len(date) >= 7 {
		return date[:7]
	}
	return date
}
