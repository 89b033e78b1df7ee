package service

import (
	"context"
	"errors"
	"testing"

	"github.com/spec-kit/sla-dashboard/internal/config"
	"github.com/spec-kit/sla-dashboard/internal/events"
	"github.com/spec-kit/sla-dashboard/internal/observability"
	"github.com/spec-kit/sla-dashboard/internal/snapshot"
)

func newReminderHarness(dedupe Deduper, policy *config.ReminderPolicy) (*ReminderService, *[]events.Event) {
	dispatcher := events.NewInMemoryDispatcher()
	var got []events.Event
	dispatcher.Subscribe(events.EventReminderDue, func(_ context.Context, e events.Event) error {
		got = append(got, e)
		return nil
	})
	svc := NewReminderService(ReminderDependencies{
		Snapshots:  snapshot.Static{Snapshot: fixtureSnapshot()},
		Policy:     policy,
		Dedupe:     dedupe,
		Dispatcher: dispatcher,
		Metrics:    observability.NewMetrics(),
		Now:        clock,
	})
	return svc, &got
}

func TestReminderSweepAppliesPolicyAndDedupes(t *testing.T) {
	policy := &config.ReminderPolicy{Rules: []config.ReminderRule{
		{Name: "high-21d", Priority: "High", ThresholdDays: 21},
		{Name: "all-7d", ThresholdDays: 7},
	}}
	svc, got := newReminderHarness(&fakeDeduper{}, policy)

	result, err := svc.Sweep(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	// high-21d selects B; all-7d selects C and A.
	if result.Selected != 3 || result.Published != 3 || result.Duplicates != 0 {
		t.Fatalf("first sweep = %+v", result)
	}
	order := []string{(*got)[0].TicketID, (*got)[1].TicketID, (*got)[2].TicketID}
	if order[0] != "B" || order[1] != "C" || order[2] != "A" {
		t.Fatalf("publish order = %v", order)
	}
	payload, ok := (*got)[1].Payload.(events.ReminderDuePayload)
	if !ok || payload.Rule != "all-7d" || payload.DaysToDue != -2 || payload.Owner != "carol" {
		t.Fatalf("unexpected payload %+v", (*got)[1].Payload)
	}

	result, err = svc.Sweep(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if result.Published != 0 || result.Duplicates != 3 {
		t.Fatalf("second sweep = %+v", result)
	}
}

func TestReminderSweepOverlappingRulesPublishOnce(t *testing.T) {
	policy := &config.ReminderPolicy{Rules: []config.ReminderRule{
		{Name: "first", ThresholdDays: 7},
		{Name: "second", ThresholdDays: 7},
	}}
	svc, got := newReminderHarness(&fakeDeduper{}, policy)
	result, err := svc.Sweep(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if result.Published != 2 || result.Duplicates != 2 || len(*got) != 2 {
		t.Fatalf("result = %+v, events = %d", result, len(*got))
	}
}

func TestReminderSweepFailsOpenWithoutDedupe(t *testing.T) {
	svc, got := newReminderHarness(&fakeDeduper{err: errors.New("redis down")}, nil)
	if _, err := svc.Sweep(context.Background()); err != nil {
		t.Fatal(err)
	}
	if len(*got) == 0 {
		t.Fatal("expected reminders despite dedupe failure")
	}
}

func TestReminderSweepSnapshotError(t *testing.T) {
	svc := NewReminderService(ReminderDependencies{Snapshots: failingProvider{err: errors.New("down")}, Now: clock})
	if _, err := svc.Sweep(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

func TestReminderSweepRetriesFailedDeliveries(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	failing := true
	var delivered []string
	dispatcher.Subscribe(events.EventReminderDue, func(_ context.Context, e events.Event) error {
		if failing {
			return errors.New("smtp unavailable")
		}
		delivered = append(delivered, e.TicketID)
		return nil
	})
	svc := NewReminderService(ReminderDependencies{
		Snapshots:  snapshot.Static{Snapshot: fixtureSnapshot()},
		Policy:     &config.ReminderPolicy{Rules: []config.ReminderRule{{Name: "all-7d", ThresholdDays: 7}}},
		Dedupe:     &fakeDeduper{},
		Dispatcher: dispatcher,
		Now:        clock,
	})

	result, err := svc.Sweep(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if result.Selected != 2 || result.Published != 0 || result.Failed != 2 || result.Duplicates != 0 {
		t.Fatalf("failing sweep = %+v", result)
	}

	failing = false
	result, err = svc.Sweep(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if result.Published != 2 || result.Failed != 0 || result.Duplicates != 0 {
		t.Fatalf("retry sweep = %+v", result)
	}
	if len(delivered) != 2 || delivered[0] != "C" || delivered[1] != "A" {
		t.Fatalf("delivered = %v", delivered)
	}
}
