package service

import (
	"context"
	"time"

	"github.com/spec-kit/sla-dashboard/internal/domain"
	"github.com/spec-kit/sla-dashboard/internal/sla"
	"github.com/spec-kit/sla-dashboard/internal/snapshot"
)

// SlaService answers dashboard queries by running the SLA engine over the
// current snapshot. Each call reads one snapshot and one clock value.
type SlaService struct {
	snapshots snapshot.Provider
	now       func() time.Time
}

// NewSlaService constructs the service.
func NewSlaService(snapshots snapshot.Provider, now func() time.Time) *SlaService {
	if now == nil {
		now = time.Now
	}
	return &SlaService{snapshots: snapshots, now: now}
}

// TicketListFilter mirrors the query parameters of the ticket listing.
type TicketListFilter struct {
	Status   string
	DcID     string
	Category string
}

// Summary computes headline KPI counts.
func (s *SlaService) Summary(ctx context.Context) (sla.KPI, error) {
	snap, now, err := s.read(ctx)
	if err != nil {
		return sla.KPI{}, err
	}
	return sla.Summarize(snap.Tickets, now), nil
}

// Tickets lists tickets matching filter with their day distance.
func (s *SlaService) Tickets(ctx context.Context, filter TicketListFilter) ([]sla.TicketView, error) {
	snap, now, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	f := sla.Filter{Status: filter.Status, DcID: filter.DcID, Category: filter.Category}
	return sla.ListTickets(snap.Tickets, f, now), nil
}

// Reminders selects reminder candidates.
func (s *SlaService) Reminders(ctx context.Context, query sla.ReminderQuery) ([]sla.Reminder, error) {
	snap, now, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	return sla.SelectReminders(snap.Tickets, query, now), nil
}

// Heatmap groups open tickets per data center and bucket.
func (s *SlaService) Heatmap(ctx context.Context) ([]sla.HeatmapRow, error) {
	snap, now, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	return sla.Heatmap(snap.Tickets, now), nil
}

// DatacenterTickets lists the open tickets of one data center.
func (s *SlaService) DatacenterTickets(ctx context.Context, dcID string) ([]sla.TicketView, error) {
	snap, now, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	return sla.DatacenterTickets(snap.Tickets, dcID, now), nil
}

// Risk scores open tickets, optionally for one data center.
func (s *SlaService) Risk(ctx context.Context, dcID string) ([]sla.ScoredTicket, error) {
	snap, now, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	return sla.ScoreTickets(snap.Tickets, dcID, now), nil
}

// BucketCounts tallies open tickets per bucket.
func (s *SlaService) BucketCounts(ctx context.Context) (map[domain.DueBucket]int, error) {
	snap, now, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	return sla.BucketCounts(snap.Tickets, now), nil
}

// Datacenters lists the known data centers.
func (s *SlaService) Datacenters(ctx context.Context) ([]domain.Datacenter, error) {
	snap, err := s.snapshots.Current(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Datacenters, nil
}

func (s *SlaService) read(ctx context.Context) (*snapshot.Snapshot, time.Time, error) {
	snap, err := s.snapshots.Current(ctx)
	if err != nil {
		return nil, time.Time{}, err
	}
	return snap, s.now().UTC(), nil
}
