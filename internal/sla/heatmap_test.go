package sla

import (
	"testing"

	"github.com/spec-kit/sla-dashboard/internal/domain"
)

func TestHeatmap(t *testing.T) {
	today := day("2024-06-01")
	tickets := []domain.Ticket{
		ticket("1", "DC-B", domain.TicketStatusOpen, domain.TicketPriorityLow, day("2024-05-31")),
		ticket("2", "DC-B", domain.TicketStatusOpen, domain.TicketPriorityLow, day("2024-06-01")),
		ticket("3", "DC-B", domain.TicketStatusOpen, domain.TicketPriorityLow, day("2024-06-08")),
		ticket("4", "DC-B", domain.TicketStatusOpen, domain.TicketPriorityLow, day("2024-06-09")),
		ticket("5", "DC-B", domain.TicketStatusOpen, domain.TicketPriorityLow, day("2024-06-22")),
		ticket("6", "DC-B", domain.TicketStatusOpen, domain.TicketPriorityLow, day("2024-06-23")),
		ticket("7", "DC-A", domain.TicketStatusOpen, domain.TicketPriorityLow, day("2024-07-30")),
		ticket("8", "DC-C", domain.TicketStatusClosed, domain.TicketPriorityLow, day("2024-05-01")),
		ticket("9", "DC-A", domain.TicketStatusClosed, domain.TicketPriorityLow, day("2024-05-01")),
	}

	got := Heatmap(tickets, today)
	want := []HeatmapRow{
		{DcID: "DC-A", OK: 1},
		{DcID: "DC-B", Overdue: 1, Due7: 2, Due21: 2, OK: 1},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d rows, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestHeatmapTotalsMatchOpenCount(t *testing.T) {
	today := day("2024-06-01")
	var tickets []domain.Ticket
	dcs := []string{"DC-3", "DC-1", "DC-2"}
	for i := 0; i < 60; i++ {
		status := domain.TicketStatusOpen
		if i%4 == 0 {
			status = domain.TicketStatusClosed
		}
		tickets = append(tickets, ticket("t", dcs[i%3], status, domain.TicketPriorityLow, today.AddDate(0, 0, i-20)))
	}
	open := map[string]int{}
	for _, tk := range tickets {
		if tk.IsOpen() {
			open[tk.DcID]++
		}
	}
	rows := Heatmap(tickets, today)
	for i, row := range rows {
		if i > 0 && rows[i-1].DcID >= row.DcID {
			t.Fatalf("rows not sorted: %s before %s", rows[i-1].DcID, row.DcID)
		}
		if row.Total() != open[row.DcID] {
			t.Errorf("%s total %d, want %d", row.DcID, row.Total(), open[row.DcID])
		}
	}
	if len(rows) != len(open) {
		t.Fatalf("got %d rows, want %d", len(rows), len(open))
	}
}

func TestHeatmapEmpty(t *testing.T) {
	if rows := Heatmap(nil, day("2024-06-01")); len(rows) != 0 {
		t.Fatalf("expected no rows, got %+v", rows)
	}
}

func TestBucketCounts(t *testing.T) {
	today := day("2024-06-01")
	tickets := []domain.Ticket{
		ticket("1", "DC-1", domain.TicketStatusOpen, domain.TicketPriorityLow, day("2024-05-01")),
		ticket("2", "DC-2", domain.TicketStatusOpen, domain.TicketPriorityLow, day("2024-05-02")),
		ticket("3", "DC-2", domain.TicketStatusOpen, domain.TicketPriorityLow, day("2024-06-03")),
		ticket("4", "DC-2", domain.TicketStatusClosed, domain.TicketPriorityLow, day("2024-06-03")),
	}
	got := BucketCounts(tickets, today)
	if got[domain.BucketOverdue] != 2 || got[domain.BucketDueSoon7] != 1 {
		t.Fatalf("unexpected counts %v", got)
	}
	if v, ok := got[domain.BucketOnTrack]; !ok || v != 0 {
		t.Fatalf("empty buckets should be present with zero, got %v", got)
	}
}
