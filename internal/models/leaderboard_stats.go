package models

import (
	"time"

	"github.com/google/uuid"
)

// LeaderboardStats aggregates the counters shown on the leaderboard.
// One row per user, initialized at provisioning time.
type LeaderboardStats struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`

	TotalFocusTime     int `gorm:"default:0" json:"total_focus_time"`
	WeeklyFocusTime    int `gorm:"default:0" json:"weekly_focus_time"`
	MonthlyFocusTime   int `gorm:"default:0" json:"monthly_focus_time"`
	Level              int `gorm:"default:1" json:"level"`
	Points             int `gorm:"default:0;index" json:"points"`
	CurrentStreak      int `gorm:"default:0" json:"current_streak"`
	LongestStreak      int `gorm:"default:0" json:"longest_streak"`
	SessionsCompleted  int `gorm:"default:0" json:"sessions_completed"`
	TotalSessions      int `gorm:"default:0" json:"total_sessions"`
	AchievementsEarned int `gorm:"default:0" json:"achievements_earned"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
