package sla

import (
	"testing"
	"time"

	"github.com/spec-kit/sla-dashboard/internal/domain"
)

func TestListTicketsKeepsStoredOrder(t *testing.T) {
	now := time.Date(2024, 6, 1, 23, 0, 0, 0, time.UTC)
	tickets := []domain.Ticket{
		ticket("late", "DC-1", domain.TicketStatusOpen, domain.TicketPriorityLow, day("2024-07-01")),
		ticket("soon", "DC-1", domain.TicketStatusClosed, domain.TicketPriorityLow, day("2024-06-02")),
	}
	got := ListTickets(tickets, Filter{}, now)
	if len(got) != 2 || got[0].ID != "late" || got[0].DaysToDue != 30 || got[1].DaysToDue != 1 {
		t.Fatalf("unexpected listing %+v", got)
	}
}

func TestDatacenterTickets(t *testing.T) {
	now := day("2024-06-01")
	tickets := []domain.Ticket{
		ticket("c", "DC-1", domain.TicketStatusOpen, domain.TicketPriorityLow, day("2024-06-20")),
		ticket("a", "DC-1", domain.TicketStatusOpen, domain.TicketPriorityLow, day("2024-05-28")),
		ticket("x", "DC-2", domain.TicketStatusOpen, domain.TicketPriorityLow, day("2024-05-01")),
		ticket("b1", "DC-1", domain.TicketStatusOpen, domain.TicketPriorityHigh, day("2024-06-05")),
		ticket("closed", "DC-1", domain.TicketStatusClosed, domain.TicketPriorityLow, day("2024-05-01")),
		ticket("b2", "DC-1", domain.TicketStatusOpen, domain.TicketPriorityLow, day("2024-06-05")),
	}
	got := ids(DatacenterTickets(tickets, "DC-1", now), func(v TicketView) string { return v.ID })
	if !equalStrings(got, []string{"a", "b1", "b2", "c"}) {
		t.Fatalf("got %v", got)
	}
	if got := DatacenterTickets(tickets, "DC-404", now); len(got) != 0 {
		t.Fatalf("unknown dc should be empty, got %d", len(got))
	}
}
