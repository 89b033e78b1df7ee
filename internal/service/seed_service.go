package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/sla-dashboard/internal/events"
	"github.com/spec-kit/sla-dashboard/internal/loader"
	"github.com/spec-kit/sla-dashboard/internal/repository"
	"github.com/spec-kit/sla-dashboard/internal/snapshot"
)

// SeedService loads CSV exports into the repositories.
type SeedService struct {
	tickets     repository.TicketRepository
	datacenters repository.DatacenterRepository
	cache       snapshot.Invalidator
	dispatcher  events.Dispatcher
	logger      *zap.Logger
}

// SeedDependencies bundles collaborators for SeedService.
type SeedDependencies struct {
	TicketRepo     repository.TicketRepository
	DatacenterRepo repository.DatacenterRepository
	Cache          snapshot.Invalidator
	Dispatcher     events.Dispatcher
	Logger         *zap.Logger
}

// NewSeedService constructs the service.
func NewSeedService(deps SeedDependencies) *SeedService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SeedService{
		tickets:     deps.TicketRepo,
		datacenters: deps.DatacenterRepo,
		cache:       deps.Cache,
		dispatcher:  deps.Dispatcher,
		logger:      logger,
	}
}

// SeedResult reports how many rows were written per table.
type SeedResult struct {
	Datacenters int `json:"datacenters"`
	Tickets     int `json:"tickets"`
}

// Ensure fills each empty table from dir and leaves populated tables alone.
func (s *SeedService) Ensure(ctx context.Context, dir string) (SeedResult, error) {
	return s.load(ctx, dir, false)
}

// Reload replaces both tables with the content of dir.
func (s *SeedService) Reload(ctx context.Context, dir string) (SeedResult, error) {
	return s.load(ctx, dir, true)
}

func (s *SeedService) load(ctx context.Context, dir string, force bool) (SeedResult, error) {
	var result SeedResult

	ds, err := loader.LoadDir(dir)
	if err != nil {
		return result, err
	}

	// A partial write must still drop the cached snapshot.
	wrote := false
	fail := func(err error) (SeedResult, error) {
		if wrote {
			s.invalidate()
		}
		return result, err
	}

	dcCount, err := s.datacenters.Count(ctx)
	if err != nil {
		return fail(fmt.Errorf("count datacenters: %w", err))
	}
	if force || dcCount == 0 {
		if err := s.datacenters.Replace(ctx, ds.Datacenters); err != nil {
			return fail(fmt.Errorf("store datacenters: %w", err))
		}
		wrote = true
		result.Datacenters = len(ds.Datacenters)
	}

	ticketCount, err := s.tickets.Count(ctx)
	if err != nil {
		return fail(fmt.Errorf("count tickets: %w", err))
	}
	if force || ticketCount == 0 {
		if err := s.tickets.Replace(ctx, ds.Tickets); err != nil {
			return fail(fmt.Errorf("store tickets: %w", err))
		}
		wrote = true
		result.Tickets = len(ds.Tickets)
	}

	if !wrote {
		s.logger.Info("seed skipped; tables already populated", zap.String("dir", dir))
		return result, nil
	}

	s.invalidate()
	s.logger.Info("dataset loaded",
		zap.String("dir", dir),
		zap.Int("datacenters", result.Datacenters),
		zap.Int("tickets", result.Tickets))
	s.publish(ctx, dir, result)
	return result, nil
}

func (s *SeedService) invalidate() {
	if s.cache != nil {
		s.cache.Invalidate()
	}
}

func (s *SeedService) publish(ctx context.Context, dir string, result SeedResult) {
	if s.dispatcher == nil {
		return
	}
	err := s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventDatasetImported,
		Timestamp: time.Now().UTC(),
		Payload: events.DatasetImportedPayload{
			Source:      dir,
			Datacenters: result.Datacenters,
			Tickets:     result.Tickets,
		},
	})
	if err != nil {
		s.logger.Warn("dataset_imported handlers failed", zap.Error(err))
	}
}
