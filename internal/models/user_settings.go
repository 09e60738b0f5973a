package models

import (
	"time"

	"github.com/google/uuid"
)

// UserSettings holds the per-user app settings. One row per user.
type UserSettings struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`

	NotificationsEnabled   bool    `gorm:"default:true" json:"notifications_enabled"`
	SoundEnabled           bool    `gorm:"default:true" json:"sound_enabled"`
	MusicVolume            float64 `gorm:"default:0.5" json:"music_volume"`
	DailyGoalMinutes       int     `gorm:"default:60" json:"daily_goal_minutes"`
	PreferredSessionLength int     `gorm:"default:25" json:"preferred_session_length"`
	BreakLength            int     `gorm:"default:5" json:"break_length"`
	Theme                  string  `gorm:"size:20;default:'light'" json:"theme"`
	AutoStartBreaks        bool    `gorm:"default:true" json:"auto_start_breaks"`
	ShowMotivationalQuotes bool    `gorm:"default:true" json:"show_motivational_quotes"`
	DailyReminder          *string `gorm:"size:5" json:"daily_reminder"`
	SessionEndReminder     *bool   `json:"session_end_reminder"`
	ReminderFrequency      *string `gorm:"size:20" json:"reminder_frequency"`
	PrivacyMode            *bool   `json:"privacy_mode"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
