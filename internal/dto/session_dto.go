package dto

import (
	"github.com/google/uuid"

	"github.com/flintlabs/flint-backend/internal/models"
)

type StartSessionRequest struct {
	SessionType string `json:"session_type"`
}

type SessionEndResponse struct {
	Session      models.FocusSession `json:"session"`
	BonusAwarded bool                `json:"bonus_awarded"`
	FlintAwarded int                 `json:"flint_awarded"`
}

type LeaderboardEntry struct {
	UserID    uuid.UUID `json:"user_id"`
	Username  *string   `json:"username"`
	FullName  *string   `json:"full_name"`
	AvatarURL *string   `json:"avatar_url"`
	Points    int       `json:"points"`
	Level     int       `json:"level"`

	TotalFocusTime    int `json:"total_focus_time"`
	CurrentStreak     int `json:"current_streak"`
	SessionsCompleted int `json:"sessions_completed"`
}

type RankResponse struct {
	Rank       int                      `json:"rank"`
	TotalUsers int64                    `json:"total_users"`
	Stats      *models.LeaderboardStats `json:"stats"`
}
