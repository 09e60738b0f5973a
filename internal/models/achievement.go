package models

import (
	"time"

	"github.com/google/uuid"
)

type Achievement struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`

	AchievementType string  `gorm:"size:100;not null" json:"achievement_type"`
	Title           string  `gorm:"size:255;not null" json:"title"`
	Description     *string `gorm:"type:text" json:"description"`
	Icon            *string `gorm:"size:100" json:"icon"`
	PointsAwarded   int     `gorm:"default:0" json:"points_awarded"`
	Category        *string `gorm:"size:100" json:"category"`

	EarnedAt  time.Time `json:"earned_at"`
	CreatedAt time.Time `json:"created_at"`
}
