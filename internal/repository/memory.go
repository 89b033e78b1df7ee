package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/sla-dashboard/internal/domain"
)

// MemoryTicketRepository keeps tickets in process. It is used when no
// Postgres DSN is configured and in tests.
type MemoryTicketRepository struct {
	mu      sync.RWMutex
	tickets []domain.Ticket
}

// NewMemoryTicketRepository seeds the repository with tickets.
func NewMemoryTicketRepository(tickets ...domain.Ticket) *MemoryTicketRepository {
	return &MemoryTicketRepository{tickets: append([]domain.Ticket(nil), tickets...)}
}

func (r *MemoryTicketRepository) List(_ context.Context) ([]domain.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.Ticket(nil), r.tickets...), nil
}

func (r *MemoryTicketRepository) GetByID(_ context.Context, id string) (*domain.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.tickets {
		if t.ID == id {
			found := t
			return &found, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *MemoryTicketRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tickets), nil
}

func (r *MemoryTicketRepository) Replace(_ context.Context, tickets []domain.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tickets = append([]domain.Ticket(nil), tickets...)
	return nil
}

// MemoryDatacenterRepository keeps datacenters in process.
type MemoryDatacenterRepository struct {
	mu  sync.RWMutex
	dcs []domain.Datacenter
}

// NewMemoryDatacenterRepository seeds the repository with dcs.
func NewMemoryDatacenterRepository(dcs ...domain.Datacenter) *MemoryDatacenterRepository {
	r := &MemoryDatacenterRepository{}
	_ = r.Replace(context.Background(), dcs)
	return r
}

func (r *MemoryDatacenterRepository) List(_ context.Context) ([]domain.Datacenter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.Datacenter(nil), r.dcs...), nil
}

func (r *MemoryDatacenterRepository) GetByID(_ context.Context, dcID string) (*domain.Datacenter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := sort.Search(len(r.dcs), func(i int) bool { return r.dcs[i].DcID >= dcID })
	if i < len(r.dcs) && r.dcs[i].DcID == dcID {
		found := r.dcs[i]
		return &found, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *MemoryDatacenterRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.dcs), nil
}

// Replace stores dcs ordered by DcID, matching the Postgres listing order.
func (r *MemoryDatacenterRepository) Replace(_ context.Context, dcs []domain.Datacenter) error {
	sorted := append([]domain.Datacenter(nil), dcs...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].DcID < sorted[j].DcID })
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dcs = sorted
	return nil
}
