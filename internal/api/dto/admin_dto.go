package dto

import (
	"encoding/json"
	"time"
)

// SummaryResponse is the executive summary returned by the advisor proxy.
type SummaryResponse struct {
	Summary         string            `json:"summary"`
	Actions         []string          `json:"actions"`
	SuggestedFilter map[string]string `json:"suggestedFilter,omitempty"`
	Suggestions     json.RawMessage   `json:"suggestions,omitempty"`
}

// AdvisorRunResponse is one audit row.
type AdvisorRunResponse struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Endpoint  string    `json:"endpoint"`
	DcID      string    `json:"dcId,omitempty"`
	LatencyMs int64     `json:"latencyMs"`
	Status    string    `json:"status"`
	Detail    string    `json:"detail,omitempty"`
}

// ImportResponse reports rows written by an admin import.
type ImportResponse struct {
	Datacenters int `json:"datacenters"`
	Tickets     int `json:"tickets"`
}
