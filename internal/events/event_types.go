package events

import (
	"time"

	"github.com/spec-kit/sla-dashboard/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventReminderDue     EventType = "reminder_due"
	EventDatasetImported EventType = "dataset_imported"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	TicketID  string      `json:"ticket_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// ReminderDuePayload payload.
type ReminderDuePayload struct {
	Rule        string                `json:"rule"`
	DcID        string                `json:"dc_id"`
	DocCategory string                `json:"doc_category"`
	Owner       string                `json:"owner"`
	Priority    domain.TicketPriority `json:"priority"`
	DueDate     time.Time             `json:"due_date"`
	DaysToDue   int                   `json:"days_to_due"`
}

// DatasetImportedPayload payload.
type DatasetImportedPayload struct {
	Source      string `json:"source"`
	Datacenters int    `json:"datacenters"`
	Tickets     int    `json:"tickets"`
}
