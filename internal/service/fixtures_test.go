package service

import (
	"context"
	"sync"
	"time"

	"github.com/spec-kit/sla-dashboard/internal/domain"
	"github.com/spec-kit/sla-dashboard/internal/snapshot"
)

var fixedNow = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func due(days int) time.Time {
	return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, days)
}

func fixtureSnapshot() *snapshot.Snapshot {
	return &snapshot.Snapshot{
		Datacenters: []domain.Datacenter{
			{DcID: "DC-1", Region: "EMEA", AreaSqft: 1000, Manager: "Dana"},
			{DcID: "DC-2", Region: "APAC", AreaSqft: 2000, Manager: "Eli"},
			{DcID: "DC-3", Region: "AMER", AreaSqft: 3000, Manager: "Fay"},
		},
		Tickets: []domain.Ticket{
			{ID: "A", DcID: "DC-1", DocCategory: "Fire", DueDate: due(7), Owner: "alice", Status: domain.TicketStatusOpen, Priority: domain.TicketPriorityLow},
			{ID: "B", DcID: "DC-1", DocCategory: "Power", DueDate: due(8), Owner: "bob", Status: domain.TicketStatusOpen, Priority: domain.TicketPriorityHigh},
			{ID: "C", DcID: "DC-2", DocCategory: "Fire", DueDate: due(-2), Owner: "carol", Status: domain.TicketStatusOpen, Priority: domain.TicketPriorityMedium},
			{ID: "D", DcID: "DC-3", DocCategory: "Fire", DueDate: due(-9), Owner: "dan", Status: domain.TicketStatusClosed, Priority: domain.TicketPriorityHigh},
			{ID: "E", DcID: "DC-2", DocCategory: "Cooling", DueDate: due(40), Owner: "erin", Status: domain.TicketStatusOpen, Priority: domain.TicketPriorityHigh},
		},
		TakenAt: fixedNow,
	}
}

type fakeDeduper struct {
	mu   sync.Mutex
	seen map[string]bool
	err  error
}

func (d *fakeDeduper) MarkOnce(_ context.Context, key string, _ time.Duration) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.err != nil {
		return false, d.err
	}
	if d.seen == nil {
		d.seen = map[string]bool{}
	}
	if d.seen[key] {
		return false, nil
	}
	d.seen[key] = true
	return true, nil
}

func (d *fakeDeduper) Forget(_ context.Context, key string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.err != nil {
		return d.err
	}
	delete(d.seen, key)
	return nil
}
