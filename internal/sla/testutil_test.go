package sla

import (
	"time"

	"github.com/spec-kit/sla-dashboard/internal/domain"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func ticket(id, dc string, status domain.TicketStatus, priority domain.TicketPriority, due time.Time) domain.Ticket {
	return domain.Ticket{
		ID:          id,
		DcID:        dc,
		DocCategory: "Fire Safety",
		CreatedAt:   due.AddDate(0, -1, 0),
		DueDate:     due,
		Owner:       "owner-" + id,
		Status:      status,
		Priority:    priority,
	}
}

func ids[T any](items []T, id func(T) string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, id(it))
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
