package metadomain

import "strconv"

// FormatValue renders a numeric value the way the Graph API serializes
// them, without trailing zeros.
func FormatValue(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Row is one insights record. The set of keys depends on the requested
// fields and breakdowns, so rows stay loosely typed; metric values arrive
// as strings ("12.34"), action lists as []any of {action_type, value}.
type Row map[string]any

// InsightsPayload is the `{data: [...], paging: {...}}` body returned by
// the /insights edge.
type InsightsPayload struct {
	Data   []Row   `json:"data"`
	Paging *Paging `json:"paging,omitempty"`
}

// Paging holds Graph API cursor-based pagination info
type Paging struct {
	Cursors  *Cursors `json:"cursors,omitempty"`
	Next     string   `json:"next,omitempty"`
	Previous string   `json:"previous,omitempty"`
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

// ActionEntry is one element of an actions[] or conversions[] list
type ActionEntry struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// Actions extracts an action list ("actions", "conversions") from a row.
// Entries that do not look like {action_type, value} objects are skipped.
func (r Row) Actions(key string) []ActionEntry {
	list, ok := r[key].([]any)
	if !ok {
		return nil
	}

	entries := make([]ActionEntry, 0, len(list))
	for _, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}

		entry := ActionEntry{}
		if t, ok := m["action_type"].(string); ok {
			entry.ActionType = t
		}
		switch v := m["value"].(type) {
		case string:
			entry.Value = v
		case float64:
			entry.Value = FormatValue(v)
		}

		entries = append(entries, entry)
	}

	return entries
}

// DateStart returns the row's date_start, or "" when absent
func (r Row) DateStart() string {
	s, _ := r["date_start"].(string)
	return s
}

// DateStop returns the row's date_stop, or "" when absent
func (r Row) DateStop() string {
	s, _ := r["date_stop"].(string)
	return s
}
