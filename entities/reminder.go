package entities

import (
	"time"

	"github.com/google/uuid"
)

const (
	ReminderStatusPending = "Pending"
	ReminderStatusSent    = "Sent"
	ReminderStatusFailed  = "Failed"
)

type ScheduledReminder struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uint       `gorm:"index" json:"user_id"`
	Title       string     `json:"title"`
	Body        string     `json:"body"`
	FireAt      time.Time  `gorm:"type:timestamp with time zone;index" json:"fire_at"`
	Status      string     `gorm:"type:varchar(16);index" json:"status"` // "Pending", "Sent", "Failed"
	DeliveredAt *time.Time `gorm:"type:timestamp with time zone" json:"delivered_at,omitempty"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
	Timestamp
}
