package models

import (
	"time"

	"github.com/google/uuid"
)

// LearningMetrics aggregates study-quality measurements. One row per user.
type LearningMetrics struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`

	TotalStudyTime       int     `gorm:"default:0" json:"total_study_time"`
	AverageSessionLength float64 `gorm:"default:0" json:"average_session_length"`
	FocusScore           float64 `gorm:"default:0" json:"focus_score"`
	ProductivityRating   float64 `gorm:"default:0" json:"productivity_rating"`
	SubjectsStudied      int     `gorm:"default:0" json:"subjects_studied"`
	GoalsCompleted       int     `gorm:"default:0" json:"goals_completed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
