package models

import "time"

// Event types
const (
	EventTypeAlertResolved  = "ALERT_RESOLVED"
	EventTypeAlertDismissed = "ALERT_DISMISSED"
)

// BaseEvent contains common fields for all events
type BaseEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
}

// AlertResolvedEvent published when an alert is resolved
type AlertResolvedEvent struct {
	BaseEvent
	AlertID   int64  `json:"alert_id"`
	AlertType string `json:"alert_type"`
	UserID    int64  `json:"user_id"`
}

// AlertDismissedEvent published when an alert is dismissed
type AlertDismissedEvent struct {
	BaseEvent
	AlertID   int64  `json:"alert_id"`
	AlertType string `json:"alert_type"`
	UserID    int64  `json:"user_id"`
}
