package dto

import (
	"time"

	"github.com/spec-kit/sla-dashboard/internal/domain"
)

// KPIResponse is the dashboard headline.
type KPIResponse struct {
	Open    int `json:"open"`
	DueIn7  int `json:"dueIn7"`
	DueIn21 int `json:"dueIn21"`
	Overdue int `json:"overdue"`
}

// TicketResponse is a stored ticket with its day distance to due.
type TicketResponse struct {
	TicketID    string                `json:"ticketId"`
	DcID        string                `json:"dcId"`
	DocCategory string                `json:"docCategory"`
	Owner       string                `json:"owner"`
	Status      domain.TicketStatus   `json:"status"`
	Priority    domain.TicketPriority `json:"priority"`
	CreatedAt   time.Time             `json:"createdAt"`
	DueDate     time.Time             `json:"dueDate"`
	DaysToDue   int                   `json:"daysToDue"`
}

// ReminderResponse is one reminder candidate.
type ReminderResponse struct {
	TicketID    string                `json:"ticketId"`
	DcID        string                `json:"dcId"`
	DocCategory string                `json:"docCategory"`
	Owner       string                `json:"owner"`
	Priority    domain.TicketPriority `json:"priority"`
	DueDate     time.Time             `json:"dueDate"`
	DaysToDue   int                   `json:"daysToDue"`
}

// HeatmapRowResponse counts open tickets of one data center per bucket.
type HeatmapRowResponse struct {
	DcID    string `json:"dcId"`
	Overdue int    `json:"overdue"`
	Due7    int    `json:"due7"`
	Due21   int    `json:"due21"`
	OK      int    `json:"ok"`
}

// DatacenterTicketResponse is an open ticket in the per-center listing.
type DatacenterTicketResponse struct {
	TicketID    string                `json:"ticketId"`
	DocCategory string                `json:"docCategory"`
	Owner       string                `json:"owner"`
	Priority    domain.TicketPriority `json:"priority"`
	DueDate     time.Time             `json:"dueDate"`
	DueInDays   int                   `json:"dueInDays"`
}

// RiskResponse is an open ticket with its risk score.
type RiskResponse struct {
	TicketID    string                `json:"ticketId"`
	DcID        string                `json:"dcId"`
	DocCategory string                `json:"docCategory"`
	Owner       string                `json:"owner"`
	Priority    domain.TicketPriority `json:"priority"`
	DueDate     time.Time             `json:"dueDate"`
	DaysToDue   int                   `json:"daysToDue"`
	RiskScore   int                   `json:"riskScore"`
	RiskBucket  domain.RiskBucket     `json:"riskBucket"`
}

// DatacenterResponse describes a data center.
type DatacenterResponse struct {
	DcID     string `json:"dcId"`
	Region   string `json:"region"`
	AreaSqft int    `json:"areaSqft"`
	Manager  string `json:"manager"`
}
