package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/sla-dashboard/internal/config"
	"github.com/spec-kit/sla-dashboard/internal/events"
	"github.com/spec-kit/sla-dashboard/internal/observability"
	"github.com/spec-kit/sla-dashboard/internal/sla"
	"github.com/spec-kit/sla-dashboard/internal/snapshot"
)

const reminderDedupeTTL = 48 * time.Hour

// Deduper records that a key was handled. persistence.Redis satisfies it.
type Deduper interface {
	MarkOnce(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Forget(ctx context.Context, key string) error
}

// ReminderService runs the reminder policy against the current snapshot
// and publishes one reminder_due event per ticket per UTC day.
type ReminderService struct {
	snapshots  snapshot.Provider
	policy     *config.ReminderPolicy
	dedupe     Deduper
	dispatcher events.Dispatcher
	metrics    *observability.Metrics
	logger     *zap.Logger
	now        func() time.Time
}

// ReminderDependencies bundles collaborators for ReminderService.
type ReminderDependencies struct {
	Snapshots  snapshot.Provider
	Policy     *config.ReminderPolicy
	Dedupe     Deduper
	Dispatcher events.Dispatcher
	Metrics    *observability.Metrics
	Logger     *zap.Logger
	Now        func() time.Time
}

// NewReminderService creates the service.
func NewReminderService(deps ReminderDependencies) *ReminderService {
	s := &ReminderService{
		snapshots:  deps.Snapshots,
		policy:     deps.Policy,
		dedupe:     deps.Dedupe,
		dispatcher: deps.Dispatcher,
		metrics:    deps.Metrics,
		logger:     deps.Logger,
		now:        deps.Now,
	}
	if s.policy == nil {
		s.policy = config.DefaultReminderPolicy()
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// SweepResult summarizes one sweep.
type SweepResult struct {
	Selected   int
	Published  int
	Duplicates int
	Failed     int
}

// Sweep evaluates every policy rule once. Rules are applied in order, so a
// ticket matched by several rules is attributed to the first.
func (s *ReminderService) Sweep(ctx context.Context) (SweepResult, error) {
	var result SweepResult

	snap, err := s.snapshots.Current(ctx)
	if err != nil {
		return result, fmt.Errorf("load snapshot: %w", err)
	}
	now := s.now().UTC()
	day := sla.DayOf(now).Format("2006-01-02")

	s.metrics.SetBucketCounts(sla.BucketCounts(snap.Tickets, now))

	for _, rule := range s.policy.Rules {
		threshold := rule.ThresholdDays
		reminders := sla.SelectReminders(snap.Tickets, sla.ReminderQuery{
			Priority:      rule.Priority,
			DcID:          rule.DcID,
			ThresholdDays: &threshold,
		}, now)
		result.Selected += len(reminders)

		for _, r := range reminders {
			key := reminderKey(day, r.TicketID)
			if !s.firstToday(ctx, key, r.TicketID) {
				result.Duplicates++
				continue
			}
			if err := s.publish(ctx, rule.Name, r, now); err != nil {
				s.logger.Warn("reminder handlers failed",
					zap.String("ticket_id", r.TicketID),
					zap.String("rule", rule.Name),
					zap.Error(err))
				s.release(ctx, key, r.TicketID)
				result.Failed++
				continue
			}
			result.Published++
		}
	}

	s.logger.Info("reminder sweep finished",
		zap.Int("selected", result.Selected),
		zap.Int("published", result.Published),
		zap.Int("duplicates", result.Duplicates),
		zap.Int("failed", result.Failed))
	return result, nil
}

func reminderKey(day, ticketID string) string {
	return "sla:reminder:" + day + ":" + ticketID
}

// firstToday claims key and reports whether the ticket has not been
// reminded on that day yet. Dedupe failures fail open.
func (s *ReminderService) firstToday(ctx context.Context, key, ticketID string) bool {
	if s.dedupe == nil {
		return true
	}
	fresh, err := s.dedupe.MarkOnce(ctx, key, reminderDedupeTTL)
	if err != nil {
		s.logger.Warn("reminder dedupe unavailable", zap.String("ticket_id", ticketID), zap.Error(err))
		return true
	}
	return fresh
}

// release drops a claim whose delivery failed so a later sweep retries it.
func (s *ReminderService) release(ctx context.Context, key, ticketID string) {
	if s.dedupe == nil {
		return
	}
	if err := s.dedupe.Forget(ctx, key); err != nil {
		s.logger.Warn("failed to release reminder claim", zap.String("ticket_id", ticketID), zap.Error(err))
	}
}

func (s *ReminderService) publish(ctx context.Context, rule string, r sla.Reminder, now time.Time) error {
	if s.dispatcher == nil {
		return nil
	}
	return s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventReminderDue,
		TicketID:  r.TicketID,
		Timestamp: now,
		Payload: events.ReminderDuePayload{
			Rule:        rule,
			DcID:        r.DcID,
			DocCategory: r.DocCategory,
			Owner:       r.Owner,
			Priority:    r.Priority,
			DueDate:     r.DueDate,
			DaysToDue:   r.DaysToDue,
		},
	})
}
