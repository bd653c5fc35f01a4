package domain

// BusinessUnit rows hold only the unit name; products and event types live
// in their own tables keyed back by name.
type BusinessUnit struct {
	Name string `json:"name"`
}

// Product links a product name to a business unit. Rows are not
// deduplicated.
type Product struct {
	BusinessUnit string `json:"business_unit"`
	Product      string `json:"product"`
}

// BaselEventType links an operational-risk loss-event category to a
// business unit. Rows are not deduplicated.
type BaselEventType struct {
	BusinessUnit string `json:"business_unit"`
	EventType    string `json:"basel_event_type"`
}
