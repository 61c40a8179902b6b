package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel is the GORM-specific struct for the 'notifications' table.
// It represents one in-app notification addressed to a single user.
type NotificationModel struct {
	ID          uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RecipientID string            `gorm:"type:varchar(128);not null;index:idx_notifications_recipient_created,priority:1"`
	Type        string            `gorm:"type:varchar(32);not null"`
	Title       string            `gorm:"type:text;not null"`
	Message     string            `gorm:"type:text;not null"`
	Data        map[string]string `gorm:"type:jsonb;serializer:json"`
	Link        string            `gorm:"type:text"`
	Priority    string            `gorm:"type:varchar(16);not null;default:'medium'"`
	IsRead      bool              `gorm:"not null;default:false;index"`
	PushSent    int               `gorm:"not null;default:0"`
	PushFailed  int               `gorm:"not null;default:0"`
	CreatedAt   time.Time         `gorm:"index:idx_notifications_recipient_created,priority:2,sort:desc"`
	ReadAt      *time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
