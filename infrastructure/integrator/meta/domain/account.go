package metadomain

// AdAccount is the subset of ad account fields the default tool schemas
// request. Extra fields requested by the caller stay in the raw payload.
type AdAccount struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	AccountStatus int    `json:"account_status"`
	Currency      string `json:"currency"`
	AmountSpent   string `json:"amount_spent"`
	Balance       string `json:"balance"`
}

// AdAccountList is the `{data: [...]}` body of /me/adaccounts
type AdAccountList struct {
	Data   []AdAccount `json:"data"`
	Paging *Paging     `json:"paging,omitempty"`
}

// AccountStatusLabel maps the numeric account_status to its meaning
func AccountStatusLabel(status int) string {
	switch status {
	case 1:
		return "ACTIVE"
	case 2:
		return "DISABLED"
	case 3:
		return "UNSETTLED"
	case 7:
		return "PENDING_RISK_REVIEW"
	case 8:
		return "PENDING_SETTLEMENT"
	case 9:
		return "IN_GRACE_PERIOD"
	case 100:
		return "PENDING_CLOSURE"
	case 101:
		return "CLOSED"
	case 201:
		return "ANY_ACTIVE"
	case 202:
		return "ANY_CLOSED"
	default:
		return "UNKNOWN"
	}
}

// Activity is one entry of the /activities change-history edge
type Activity struct {
	EventTime           string `json:"event_time"`
	EventType           string `json:"event_type"`
	TranslatedEventType string `json:"translated_event_type"`
	ActorName           string `json:"actor_name"`
	ObjectName          string `json:"object_name"`
	ExtraData           string `json:"extra_data,omitempty"`
}

// ActivityList is the `{data: [...]}` body of /activities
type ActivityList struct {
	Data   []Activity `json:"data"`
	Paging *Paging    `json:"paging,omitempty"`
}

// Creative is one entry of the /adcreatives edge
type Creative struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Title        string `json:"title,omitempty"`
	Body         string `json:"body,omitempty"`
	Status       string `json:"status,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	ObjectType   string `json:"object_type,omitempty"`
}

// CreativeList is the `{data: [...]}` body of /adcreatives
type CreativeList struct {
	Data   []Creative `json:"data"`
	Paging *Paging    `json:"paging,omitempty"`
}
