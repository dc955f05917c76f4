package worker

import (
	"context"
	"log"

	"backoffice-service/internal/broker"
	"backoffice-service/internal/models"
	"backoffice-service/internal/util"

	"go.uber.org/zap"
)

// NotificationWorker consumes alert lifecycle events and fans them out
// to operators (currently structured logs and counters; mail/chat sinks
// hang off the same callbacks).
type NotificationWorker struct {
	consumer     *broker.Consumer
	eventHandler *broker.EventHandler
	logger       *zap.Logger
}

// NewNotificationWorker creates a new notification worker
func NewNotificationWorker(consumer *broker.Consumer) *NotificationWorker {
	w := &NotificationWorker{
		consumer: consumer,
		logger:   util.GetLogger(),
	}

	eventHandler := broker.NewEventHandler()
	eventHandler.OnAlertResolved(w.handleAlertResolved)
	eventHandler.OnAlertDismissed(w.handleAlertDismissed)
	w.eventHandler = eventHandler

	return w
}

// Start starts the worker
func (w *NotificationWorker) Start(ctx context.Context) error {
	log.Println("Starting notification worker...")
	return w.consumer.StartConsuming(ctx, w.eventHandler.HandleMessage)
}

// Stop stops the worker
func (w *NotificationWorker) Stop() error {
	log.Println("Stopping notification worker...")
	return w.consumer.Close()
}

func (w *NotificationWorker) handleAlertResolved(ctx context.Context, event *models.AlertResolvedEvent) error {
	util.AlertNotificationsTotal.WithLabelValues(models.EventTypeAlertResolved).Inc()
	w.logger.Info("Alert resolution notified",
		zap.Int64("alert_id", event.AlertID),
		zap.String("alert_type", event.AlertType),
		zap.Int64("user_id", event.UserID))
	return nil
}

func (w *NotificationWorker) handleAlertDismissed(ctx context.Context, event *models.AlertDismissedEvent) error {
	util.AlertNotificationsTotal.WithLabelValues(models.EventTypeAlertDismissed).Inc()
	w.logger.Info("Alert dismissal notified",
		zap.Int64("alert_id", event.AlertID),
		zap.String("alert_type", event.AlertType),
		zap.Int64("user_id", event.UserID))
	return nil
}
