package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType classifies in-app notifications.
type NotificationType string

const (
	NotificationTypeItemFound NotificationType = "ITEM_FOUND"
	NotificationTypeItemLost  NotificationType = "ITEM_LOST"
)

// PriorityMedium is the priority used for nearby-post alerts.
const PriorityMedium = "medium"

// NotificationJob is one notification to hand to the sink for a single recipient.
type NotificationJob struct {
	RecipientID string            `json:"recipientId"`
	Type        NotificationType  `json:"type"`
	Title       string            `json:"title"`
	Message     string            `json:"message"`
	Data        map[string]string `json:"data"`
	Link        string            `json:"link"`
	Priority    string            `json:"priority"`
}

// Notification is the persisted in-app notification shown in a user's inbox.
type Notification struct {
	ID          uuid.UUID         `json:"id"`          // The Global Unique Identifier (GUID) for the notification.
	RecipientID string            `json:"recipientId"` // The user the notification is addressed to.
	Type        NotificationType  `json:"type"`        // ITEM_FOUND or ITEM_LOST.
	Title       string            `json:"title"`
	Message     string            `json:"message"`
	Data        map[string]string `json:"data"`
	Link        string            `json:"link"` // Client path to open when tapped.
	Priority    string            `json:"priority"`
	IsRead      bool              `json:"isRead"`
	PushSent    int               `json:"pushSent"`   // Devices that accepted the push.
	PushFailed  int               `json:"pushFailed"` // Devices that rejected the push.
	CreatedAt   time.Time         `json:"createdAt"`
	ReadAt      *time.Time        `json:"readAt,omitempty"`
}

// NewNotificationFromJob materialises a job into an unread notification.
func NewNotificationFromJob(job *NotificationJob) *Notification {
	return &Notification{
		ID:          uuid.New(),
		RecipientID: job.RecipientID,
		Type:        job.Type,
		Title:       job.Title,
		Message:     job.Message,
		Data:        job.Data,
		Link:        job.Link,
		Priority:    job.Priority,
		CreatedAt:   time.Now(),
	}
}
