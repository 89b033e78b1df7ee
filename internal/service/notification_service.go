package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/sla-dashboard/internal/config"
	"github.com/spec-kit/sla-dashboard/internal/events"
	"github.com/spec-kit/sla-dashboard/internal/observability"
)

// NotificationService handles emitting notifications for domain events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	metrics    *observability.Metrics
	cfg        config.ReminderConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, metrics *observability.Metrics, cfg config.ReminderConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		metrics:    metrics,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventReminderDue, n.handleReminderDue)
	n.dispatcher.Subscribe(events.EventDatasetImported, n.handleDatasetImported)
}

func (n *NotificationService) handleReminderDue(ctx context.Context, event events.Event) error {
	payload, _ := event.Payload.(events.ReminderDuePayload)
	n.logger.Info("ReminderDue",
		zap.String("ticket_id", event.TicketID),
		zap.String("rule", payload.Rule),
		zap.String("owner", payload.Owner),
		zap.Int("days_to_due", payload.DaysToDue))
	n.metrics.RecordReminder(payload.Rule)
	n.sendEmailNotificationStub(ctx, event, payload.Owner)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleDatasetImported(ctx context.Context, event events.Event) error {
	n.logger.Info("DatasetImported", zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(ctx context.Context, event events.Event, to string) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" || strings.TrimSpace(to) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("to", to),
		zap.String("ticket_id", event.TicketID),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("ticket_id", event.TicketID),
		zap.String("event_type", string(event.Type)))
}
