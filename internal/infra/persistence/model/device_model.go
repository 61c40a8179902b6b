package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserDeviceModel is a push target of one user. A client device id is registered once per
// user; re-registering refreshes the token. Rejected tokens are deactivated, never deleted.
type UserDeviceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    string    `gorm:"type:varchar(128);not null;uniqueIndex:idx_user_devices_user_client,priority:1,where:deleted_at IS NULL;index:idx_user_devices_user_active,priority:1"`
	FCMToken  string    `gorm:"type:varchar(4096);not null;index:idx_user_devices_fcm_token"`
	DeviceID  string    `gorm:"type:varchar(128);not null;uniqueIndex:idx_user_devices_user_client,priority:2,where:deleted_at IS NULL"`
	Platform  string    `gorm:"type:varchar(16);not null"`
	IsActive  bool      `gorm:"not null;default:true;index:idx_user_devices_user_active,priority:2"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (UserDeviceModel) TableName() string {
	return "user_devices"
}
