package tooling

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// FieldSpec declares one parameter of a tool schema. The same table
// drives validation and every definition-listing surface (MCP, OpenAI,
// Gemini, manifest), so the advertised contract cannot drift from the
// enforced one.
type FieldSpec struct {
	// Type is the JSON schema type. Types wins when set (union types,
	// e.g. time_increment's string|number|null).
	Type  string
	Types []string

	Description string

	// Default is applied by the validator when the field is absent and
	// advertised in the schema.
	Default any
	// DocDefault is advertised in the schema but NOT applied: the field
	// stays absent and downstream decides (e.g. date_preset, limit).
	DocDefault any

	Enum    []string
	Pattern string
	Maximum float64

	// Items / Properties describe array element and object member shapes
	Items      map[string]any
	Properties map[string]any

	// MinItems rejects empty arrays (the insights fields list)
	MinItems int
}

// ToolSchema is the declared input contract of one tool
type ToolSchema struct {
	Name        string
	Description string
	Required    []string
	Fields      map[string]FieldSpec
}

// accountIDPattern matches the act_<digits> account reference format
const accountIDPattern = `^act_\d+$`

var actIDField = FieldSpec{
	Type:        "string",
	Description: "Ad account ID (format: act_123456789)",
	Pattern:     accountIDPattern,
}

var schemas = []ToolSchema{
	{
		Name:        "facebook_login",
		Description: "Login to Facebook using OAuth to authenticate and access ad accounts",
		Fields:      map[string]FieldSpec{},
	},
	{
		Name:        "facebook_logout",
		Description: "Logout from Facebook and clear the stored access token",
		Fields:      map[string]FieldSpec{},
	},
	{
		Name:        "facebook_check_auth",
		Description: "Check whether a Facebook access token is stored and still valid",
		Fields:      map[string]FieldSpec{},
	},
	{
		Name:        "facebook_list_ad_accounts",
		Description: "List all Facebook ad accounts accessible to the authenticated user",
		Fields:      map[string]FieldSpec{},
	},
	{
		Name:        "facebook_fetch_pagination_url",
		Description: "Fetch data from a pagination URL returned by a previous tool call",
		Required:    []string{"url"},
		Fields: map[string]FieldSpec{
			"url": {
				Type:        "string",
				Description: "Full pagination URL from a previous response",
			},
		},
	},
	{
		Name:        "facebook_get_details_of_ad_account",
		Description: "Get detailed information about a specific ad account including balance, currency, and status",
		Required:    []string{"act_id"},
		Fields: map[string]FieldSpec{
			"act_id": actIDField,
			"fields": {
				Type:        "array",
				Description: "Fields to retrieve",
				Items:       map[string]any{"type": "string"},
				DocDefault:  []string{"id", "name", "account_status", "currency", "balance", "amount_spent"},
			},
		},
	},
	{
		Name:        "facebook_get_adaccount_insights",
		Description: "Get performance insights and metrics for ad accounts, campaigns, adsets, or individual ads",
		Required:    []string{"act_id", "fields"},
		Fields: map[string]FieldSpec{
			"act_id": actIDField,
			"fields": {
				Type:        "array",
				Description: "Metrics to retrieve (e.g., ['impressions', 'clicks', 'spend', 'cpm', 'ctr', 'reach', 'frequency'])",
				Items:       map[string]any{"type": "string"},
				MinItems:    1,
			},
			"level": {
				Type:        "string",
				Description: "Reporting level",
				Enum:        []string{"account", "campaign", "adset", "ad"},
				Default:     "account",
			},
			"date_preset": {
				Type:        "string",
				Description: "Date range preset (e.g., today, yesterday, last_7d, last_14d, last_30d, last_90d, this_month, last_month)",
				DocDefault:  "last_30d",
			},
			"time_range": {
				Type:        "object",
				Description: "Custom date range with 'since' and 'until' in YYYY-MM-DD format",
				Properties: map[string]any{
					"since": map[string]any{"type": "string"},
					"until": map[string]any{"type": "string"},
				},
			},
			"time_increment": {
				Types:       []string{"string", "number", "null"},
				Description: "Time bucketing: number of days, 'monthly' or 'all_days'. Defaults to monthly buckets.",
			},
			"breakdowns": {
				Type:        "array",
				Description: "Breakdown dimensions (e.g., ['age', 'gender', 'country', 'device_platform', 'placement'])",
				Items:       map[string]any{"type": "string"},
			},
			"filtering": {
				Type:        "array",
				Description: "Filter conditions for the data",
				Items: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"field":    map[string]any{"type": "string"},
						"operator": map[string]any{"type": "string"},
						"value":    map[string]any{"type": "string"},
					},
				},
			},
		},
	},
	{
		Name:        "facebook_get_activities_by_adaccount",
		Description: "Get activity logs and change history for a specific ad account",
		Required:    []string{"act_id"},
		Fields: map[string]FieldSpec{
			"act_id": actIDField,
			"since": {
				Type:        "string",
				Description: "Start date for activities in YYYY-MM-DD format",
			},
			"until": {
				Type:        "string",
				Description: "End date for activities in YYYY-MM-DD format",
			},
			"limit": {
				Type:        "number",
				Description: "Number of activities to retrieve",
				DocDefault:  25,
				Maximum:     100,
			},
		},
	},
	{
		Name:        "facebook_get_ad_creatives",
		Description: "Get creative assets and performance data for ads including images, videos, and ad copy",
		Required:    []string{"act_id"},
		Fields: map[string]FieldSpec{
			"act_id": actIDField,
			"limit": {
				Type:        "number",
				Description: "Number of creatives to retrieve",
				DocDefault:  25,
				Maximum:     100,
			},
		},
	},
	{
		Name:        "facebook_get_campaign_details",
		Description: "Get detailed information about a specific campaign",
		Required:    []string{"campaign_id"},
		Fields: map[string]FieldSpec{
			"campaign_id": {
				Type:        "string",
				Description: "Campaign ID",
			},
			"fields": {
				Type:        "array",
				Description: "Fields to retrieve",
				Items:       map[string]any{"type": "string"},
				DocDefault:  []string{"id", "name", "objective", "status", "daily_budget", "lifetime_budget", "created_time"},
			},
		},
	},
	{
		Name:        "facebook_get_adset_details",
		Description: "Get detailed information about a specific ad set including targeting and budget",
		Required:    []string{"adset_id"},
		Fields: map[string]FieldSpec{
			"adset_id": {
				Type:        "string",
				Description: "Ad set ID",
			},
			"fields": {
				Type:        "array",
				Description: "Fields to retrieve",
				Items:       map[string]any{"type": "string"},
				DocDefault:  []string{"id", "name", "status", "daily_budget", "lifetime_budget", "targeting", "optimization_goal"},
			},
		},
	},
	{
		Name:        "facebook_get_creative_asset_url_by_ad_id",
		Description: "Get creative asset URLs and details for a specific ad including images, videos, and ad copy",
		Required:    []string{"ad_id"},
		Fields: map[string]FieldSpec{
			"ad_id": {
				Type:        "string",
				Description: "Ad ID to get creative assets for",
			},
		},
	},
}

// Schemas returns the declared schema of every tool
func Schemas() []ToolSchema {
	return schemas
}

// SchemaFor returns the schema of a single tool
func SchemaFor(name string) (ToolSchema, bool) {
	for _, s := range schemas {
		if s.Name == name {
			return s, true
		}
	}
	return ToolSchema{}, false
}

// InputSchema renders the JSON schema object advertised to callers
func (s ToolSchema) InputSchema() map[string]any {
	properties := map[string]any{}

	for name, field := range s.Fields {
		prop := map[string]any{}

		if len(field.Types) > 0 {
			prop["type"] = field.Types
		} else {
			prop["type"] = field.Type
		}
		if field.Description != "" {
			prop["description"] = field.Description
		}
		if len(field.Enum) > 0 {
			prop["enum"] = field.Enum
		}
		if field.Default != nil {
			prop["default"] = field.Default
		} else if field.DocDefault != nil {
			prop["default"] = field.DocDefault
		}
		if field.Maximum > 0 {
			prop["maximum"] = field.Maximum
		}
		if field.Items != nil {
			prop["items"] = field.Items
		}
		if field.Properties != nil {
			prop["properties"] = field.Properties
		}

		properties[name] = prop
	}

	required := s.Required
	if required == nil {
		required = []string{}
	}

	return map[string]any{
		"type":       "object",
		"properties": properties,
		"required":   required,
	}
}

// InputSchemaJSON renders the schema as raw JSON, used for MCP tool
// registration.
func (s ToolSchema) InputSchemaJSON() []byte {
	raw, err := json.Marshal(s.InputSchema())
	if err != nil {
		// The schema table is static; a marshal failure is a programming error.
		panic(err)
	}
	return raw
}
