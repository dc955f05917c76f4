package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"backoffice-service/internal/models"

	"github.com/segmentio/kafka-go"
)

// EventPublisher handles publishing alert lifecycle events
type EventPublisher struct {
	producer *Producer
}

// NewEventPublisher creates a new event publisher
func NewEventPublisher(producer *Producer) *EventPublisher {
	return &EventPublisher{producer: producer}
}

// PublishAlertResolved publishes AlertResolved event
func (ep *EventPublisher) PublishAlertResolved(ctx context.Context, event *models.AlertResolvedEvent) error {
	key := fmt.Sprintf("alert-%d", event.AlertID)
	return ep.producer.PublishEvent(ctx, key, event)
}

// PublishAlertDismissed publishes AlertDismissed event
func (ep *EventPublisher) PublishAlertDismissed(ctx context.Context, event *models.AlertDismissedEvent) error {
	key := fmt.Sprintf("alert-%d", event.AlertID)
	return ep.producer.PublishEvent(ctx, key, event)
}

// EventHandler routes incoming alert events to registered callbacks
type EventHandler struct {
	onAlertResolved  func(context.Context, *models.AlertResolvedEvent) error
	onAlertDismissed func(context.Context, *models.AlertDismissedEvent) error
}

// NewEventHandler creates a new event handler
func NewEventHandler() *EventHandler {
	return &EventHandler{}
}

// OnAlertResolved registers a handler for AlertResolved events
func (eh *EventHandler) OnAlertResolved(handler func(context.Context, *models.AlertResolvedEvent) error) {
	eh.onAlertResolved = handler
}

// OnAlertDismissed registers a handler for AlertDismissed events
func (eh *EventHandler) OnAlertDismissed(handler func(context.Context, *models.AlertDismissedEvent) error) {
	eh.onAlertDismissed = handler
}

// HandleMessage routes messages to appropriate handlers
func (eh *EventHandler) HandleMessage(ctx context.Context, msg kafka.Message) error {
	var baseEvent models.BaseEvent
	if err := json.Unmarshal(msg.Value, &baseEvent); err != nil {
		return fmt.Errorf("failed to unmarshal base event: %w", err)
	}

	log.Printf("Handling event: type=%s, id=%s", baseEvent.EventType, baseEvent.EventID)

	switch baseEvent.EventType {
	case models.EventTypeAlertResolved:
		if eh.onAlertResolved != nil {
			var event models.AlertResolvedEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				return fmt.Errorf("failed to unmarshal AlertResolved event: %w", err)
			}
			return eh.onAlertResolved(ctx, &event)
		}

	case models.EventTypeAlertDismissed:
		if eh.onAlertDismissed != nil {
			var event models.AlertDismissedEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				return fmt.Errorf("failed to unmarshal AlertDismissed event: %w", err)
			}
			return eh.onAlertDismissed(ctx, &event)
		}

	default:
		log.Printf("Unhandled event type: %s", baseEvent.EventType)
	}

	return nil
}
