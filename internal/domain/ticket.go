package domain

import "time"

// TicketStatus is the lifecycle state as stored. Only TicketStatusOpen is
// treated as open; every other value counts as not open.
type TicketStatus string

const (
	TicketStatusOpen   TicketStatus = "Open"
	TicketStatusClosed TicketStatus = "Closed"
)

// TicketPriority is an unordered category. Comparisons are lexical.
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "Low"
	TicketPriorityMedium TicketPriority = "Medium"
	TicketPriorityHigh   TicketPriority = "High"
)

// Ticket is a document-compliance ticket raised against a data center.
type Ticket struct {
	ID          string
	DcID        string
	DocCategory string
	CreatedAt   time.Time
	DueDate     time.Time
	Owner       string
	Status      TicketStatus
	Priority    TicketPriority
}

// IsOpen reports whether the ticket still counts against its SLA.
func (t Ticket) IsOpen() bool {
	return t.Status == TicketStatusOpen
}
