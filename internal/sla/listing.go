package sla

import (
	"sort"
	"time"

	"github.com/spec-kit/sla-dashboard/internal/domain"
)

// TicketView is a ticket augmented with its day distance to the due date.
type TicketView struct {
	domain.Ticket
	DaysToDue int
}

// ListTickets filters tickets and annotates each with DaysToDue relative to
// now's UTC day. Stored order is kept.
func ListTickets(tickets []domain.Ticket, f Filter, now time.Time) []TicketView {
	matched := Apply(tickets, f)
	out := make([]TicketView, 0, len(matched))
	for _, t := range matched {
		out = append(out, TicketView{Ticket: t, DaysToDue: DaysToDue(t.DueDate, now)})
	}
	return out
}

// DatacenterTickets returns the open tickets of one data center sorted by
// ascending day distance. Equal distances keep their input order.
func DatacenterTickets(tickets []domain.Ticket, dcID string, now time.Time) []TicketView {
	out := ListTickets(tickets, Filter{Status: string(domain.TicketStatusOpen), DcID: dcID}, now)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DaysToDue < out[j].DaysToDue
	})
	return out
}
