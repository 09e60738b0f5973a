package models

import (
	"time"

	"github.com/google/uuid"
)

var FocusSessionStatuses = []string{"active", "paused", "completed", "cancelled"}

type FocusSession struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index;index:idx_sessions_user_status" json:"user_id"`

	StartTime       time.Time  `gorm:"not null" json:"start_time"`
	EndTime         *time.Time `json:"end_time"`
	DurationSeconds *int       `json:"duration_seconds"`
	SessionType     string     `gorm:"size:20;default:'individual'" json:"session_type"`
	Status          string     `gorm:"size:20;default:'active';index:idx_sessions_user_status" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
