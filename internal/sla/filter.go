package sla

import (
	"strings"

	"github.com/spec-kit/sla-dashboard/internal/domain"
)

// Filter holds optional equality predicates. Blank fields match everything.
type Filter struct {
	Status   string
	DcID     string
	Category string
	Priority string
}

// IsZero reports whether no predicate is set.
func (f Filter) IsZero() bool {
	return blank(f.Status) && blank(f.DcID) && blank(f.Category) && blank(f.Priority)
}

// Matches reports whether t satisfies every non-blank predicate.
// Comparison is exact and case-sensitive.
func (f Filter) Matches(t domain.Ticket) bool {
	if !blank(f.Status) && string(t.Status) != f.Status {
		return false
	}
	if !blank(f.DcID) && t.DcID != f.DcID {
		return false
	}
	if !blank(f.Category) && t.DocCategory != f.Category {
		return false
	}
	if !blank(f.Priority) && string(t.Priority) != f.Priority {
		return false
	}
	return true
}

// Apply returns the tickets matching f in their original order.
func Apply(tickets []domain.Ticket, f Filter) []domain.Ticket {
	out := make([]domain.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

func openOnly(tickets []domain.Ticket) []domain.Ticket {
	return Apply(tickets, Filter{Status: string(domain.TicketStatusOpen)})
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
