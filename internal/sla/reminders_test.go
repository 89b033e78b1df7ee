package sla

import (
	"testing"
	"time"

	"github.com/spec-kit/sla-dashboard/internal/domain"
)

func reminderID(r Reminder) string { return r.TicketID }

func intPtr(v int) *int { return &v }

func TestSelectRemindersScenario(t *testing.T) {
	today := day("2024-06-01")
	tickets := []domain.Ticket{
		ticket("A", "DC-1", domain.TicketStatusOpen, domain.TicketPriorityLow, day("2024-06-08")),
		ticket("B", "DC-1", domain.TicketStatusOpen, domain.TicketPriorityLow, day("2024-06-09")),
		ticket("C", "DC-2", domain.TicketStatusOpen, domain.TicketPriorityHigh, day("2024-05-30")),
		ticket("D", "DC-2", domain.TicketStatusClosed, domain.TicketPriorityHigh, day("2024-05-20")),
	}

	got := SelectReminders(tickets, ReminderQuery{ThresholdDays: intPtr(0)}, today)
	if len(got) != 1 || got[0].TicketID != "C" || got[0].DaysToDue != -2 {
		t.Fatalf("threshold 0: got %+v", got)
	}

	got = SelectReminders(tickets, ReminderQuery{ThresholdDays: intPtr(7)}, today)
	if gotIDs := ids(got, reminderID); !equalStrings(gotIDs, []string{"C", "A"}) {
		t.Fatalf("threshold 7: got %v", gotIDs)
	}

	got = SelectReminders(tickets, ReminderQuery{}, today)
	if gotIDs := ids(got, reminderID); !equalStrings(gotIDs, []string{"C", "A", "B"}) {
		t.Fatalf("no threshold: got %v", gotIDs)
	}
}

func TestSelectRemindersOrdering(t *testing.T) {
	today := time.Date(2024, 6, 1, 15, 30, 0, 0, time.UTC)
	due := day("2024-06-05")
	tickets := []domain.Ticket{
		ticket("late-low", "DC-1", domain.TicketStatusOpen, domain.TicketPriorityLow, due.AddDate(0, 0, 3)),
		ticket("med-1", "DC-1", domain.TicketStatusOpen, domain.TicketPriorityMedium, due),
		ticket("high", "DC-1", domain.TicketStatusOpen, domain.TicketPriorityHigh, due),
		ticket("med-2", "DC-1", domain.TicketStatusOpen, domain.TicketPriorityMedium, due.Add(20*time.Hour)),
		ticket("low", "DC-1", domain.TicketStatusOpen, domain.TicketPriorityLow, due),
		ticket("early-high", "DC-1", domain.TicketStatusOpen, domain.TicketPriorityHigh, due.AddDate(0, 0, -1)),
	}
	got := ids(SelectReminders(tickets, ReminderQuery{}, today), reminderID)
	want := []string{"early-high", "high", "low", "med-1", "med-2", "late-low"}
	if !equalStrings(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestSelectRemindersFilters(t *testing.T) {
	today := day("2024-06-01")
	tickets := []domain.Ticket{
		ticket("1", "DC-1", domain.TicketStatusOpen, domain.TicketPriorityHigh, day("2024-06-02")),
		ticket("2", "DC-2", domain.TicketStatusOpen, domain.TicketPriorityHigh, day("2024-06-03")),
		ticket("3", "DC-1", domain.TicketStatusOpen, domain.TicketPriorityLow, day("2024-06-04")),
	}
	got := ids(SelectReminders(tickets, ReminderQuery{Priority: "High", DcID: "DC-1"}, today), reminderID)
	if !equalStrings(got, []string{"1"}) {
		t.Fatalf("got %v", got)
	}
	if got := SelectReminders(tickets, ReminderQuery{Priority: "Urgent"}, today); len(got) != 0 {
		t.Fatalf("unknown priority should select nothing, got %d", len(got))
	}
	if got := SelectReminders(tickets, ReminderQuery{ThresholdDays: intPtr(-5)}, today); len(got) != 0 {
		t.Fatalf("negative threshold should exclude future tickets, got %d", len(got))
	}
}

func TestSelectRemindersCopiesFields(t *testing.T) {
	today := day("2024-06-01")
	src := ticket("X", "DC-9", domain.TicketStatusOpen, domain.TicketPriorityMedium, day("2024-06-11"))
	got := SelectReminders([]domain.Ticket{src}, ReminderQuery{}, today)
	want := Reminder{
		TicketID:    "X",
		DcID:        "DC-9",
		DocCategory: src.DocCategory,
		Owner:       src.Owner,
		Priority:    domain.TicketPriorityMedium,
		DueDate:     src.DueDate,
		DaysToDue:   10,
	}
	if len(got) != 1 || got[0] != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}
