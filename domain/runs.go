package domain

// ActualRun is one completed execution of the capital risk model against
// real loss data. run_date is supplied by the caller; id and created_at are
// assigned by the store.
type ActualRun struct {
	ID             string `json:"id"`
	BusinessUnit   string `json:"business_unit"`
	Product        string `json:"product"`
	BaselEventType string `json:"basel_event_type"`
	Description    string `json:"description,omitempty"`
	RunDate        string `json:"run_date"`
	CreatedAt      string `json:"created_at"`
}

// ExperimentRun is a what-if execution of the model. The loss-quantile
// fields are only populated for rows that came in through a CSV bulk import;
// API-created rows leave them empty.
type ExperimentRun struct {
	ID             string `json:"id"`
	BusinessUnit   string `json:"business_unit"`
	Product        string `json:"product"`
	BaselEventType string `json:"basel_event_type"`
	Description    string `json:"description,omitempty"`
	ExperimentName string `json:"experiment_name"`
	CreatedAt      string `json:"created_at"`
	OneInTwo       string `json:"1in2,omitempty"`
	OneInFive      string `json:"1in5,omitempty"`
	OneInTen       string `json:"1in10,omitempty"`
	OneInTwenty    string `json:"1in20,omitempty"`
}

// ScenarioRun tracks a long-running scenario execution. status starts as
// "running" and is the only mutable field on any run record.
type ScenarioRun struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	BusinessUnit string `json:"business_unit"`
	Product      string `json:"product"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
}
