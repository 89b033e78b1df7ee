// Package snapshot materializes point-in-time views of the ticket store
// for the SLA engine.
package snapshot

import (
	"context"
	"fmt"
	"time"

	"github.com/spec-kit/sla-dashboard/internal/domain"
	"github.com/spec-kit/sla-dashboard/internal/repository"
)

// Snapshot is an immutable read of the store. Callers must not modify the
// slices.
type Snapshot struct {
	Tickets     []domain.Ticket
	Datacenters []domain.Datacenter
	TakenAt     time.Time
}

// Provider supplies the current snapshot.
type Provider interface {
	Current(ctx context.Context) (*Snapshot, error)
}

// Invalidator drops any memoized snapshot.
type Invalidator interface {
	Invalidate()
}

// RepositoryProvider reads a fresh snapshot from the repositories on every call.
type RepositoryProvider struct {
	tickets     repository.TicketRepository
	datacenters repository.DatacenterRepository
	now         func() time.Time
}

// NewRepositoryProvider builds a provider over the given repositories.
func NewRepositoryProvider(tickets repository.TicketRepository, datacenters repository.DatacenterRepository) *RepositoryProvider {
	return &RepositoryProvider{tickets: tickets, datacenters: datacenters, now: time.Now}
}

func (p *RepositoryProvider) Current(ctx context.Context) (*Snapshot, error) {
	tickets, err := p.tickets.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	dcs, err := p.datacenters.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list datacenters: %w", err)
	}
	return &Snapshot{Tickets: tickets, Datacenters: dcs, TakenAt: p.now().UTC()}, nil
}

// Static serves a fixed snapshot.
type Static struct {
	Snapshot *Snapshot
}

func (s Static) Current(context.Context) (*Snapshot, error) {
	return s.Snapshot, nil
}
