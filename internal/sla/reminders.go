package sla

import (
	"sort"
	"time"

	"github.com/spec-kit/sla-dashboard/internal/domain"
)

// ReminderQuery narrows reminder selection. A nil ThresholdDays keeps every
// open ticket regardless of its due date.
type ReminderQuery struct {
	Priority      string
	DcID          string
	ThresholdDays *int
}

// Reminder is an open ticket selected for notification.
type Reminder struct {
	TicketID    string
	DcID        string
	DocCategory string
	Owner       string
	Priority    domain.TicketPriority
	DueDate     time.Time
	DaysToDue   int
}

// SelectReminders picks open tickets matching q whose due day is at most
// ThresholdDays away from today's UTC day. Overdue tickets pass any
// non-negative threshold. Results are ordered by DaysToDue, then by
// priority string; remaining ties keep input order.
func SelectReminders(tickets []domain.Ticket, q ReminderQuery, today time.Time) []Reminder {
	candidates := Apply(openOnly(tickets), Filter{Priority: q.Priority, DcID: q.DcID})

	out := make([]Reminder, 0, len(candidates))
	for _, t := range candidates {
		days := DaysToDue(t.DueDate, today)
		if q.ThresholdDays != nil && days > *q.ThresholdDays {
			continue
		}
		out = append(out, Reminder{
			TicketID:    t.ID,
			DcID:        t.DcID,
			DocCategory: t.DocCategory,
			Owner:       t.Owner,
			Priority:    t.Priority,
			DueDate:     t.DueDate,
			DaysToDue:   days,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DaysToDue != out[j].DaysToDue {
			return out[i].DaysToDue < out[j].DaysToDue
		}
		return out[i].Priority < out[j].Priority
	})
	return out
}
