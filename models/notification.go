package models

import "time"

// Notification types the backend emits. The shell uses the type to decide
// where a notification click navigates.
const (
	NotificationWorkOrderAssigned = "work_order_assigned"
)

// Notification is a single entry of GET /api/notifications.
type Notification struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Message      string    `json:"message"`
	Type         string    `json:"type"`
	Urgency      string    `json:"urgency,omitempty"`
	Read         bool      `json:"read"`
	OccurrenceID string    `json:"occurrence_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// NotificationCount is the payload of GET /api/notifications/count.
type NotificationCount struct {
	UnreadCount int `json:"unread_count"`
}
