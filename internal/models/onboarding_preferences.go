package models

import (
	"time"

	"github.com/google/uuid"
)

// OnboardingPreferences holds privacy and visibility toggles collected
// during onboarding. At most one row exists per user.
type OnboardingPreferences struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`

	IsOnboardingComplete        bool    `gorm:"default:false" json:"is_onboarding_complete"`
	AllowDirectMessages         bool    `gorm:"default:true" json:"allow_direct_messages"`
	PersonalizedRecommendations bool    `gorm:"default:true" json:"personalized_recommendations"`
	UsageAnalytics              bool    `gorm:"default:true" json:"usage_analytics"`
	ProfileVisibility           string  `gorm:"size:20;default:'friends'" json:"profile_visibility"`
	ShowStudyProgress           bool    `gorm:"default:true" json:"show_study_progress"`
	AppearOnLeaderboards        bool    `gorm:"default:true" json:"appear_on_leaderboards"`
	PublicStudyRooms            bool    `gorm:"default:true" json:"public_study_rooms"`
	ReceiveStudyInvitations     bool    `gorm:"default:true" json:"receive_study_invitations"`
	EmailNotificationPreference bool    `gorm:"default:true" json:"email_notification_preference"`
	ShareAnonymousAnalytics     bool    `gorm:"default:true" json:"share_anonymous_analytics"`
	WeeklyFocusGoal             *int    `json:"weekly_focus_goal"`
	FocusMethod                 *string `gorm:"size:100" json:"focus_method"`
	EducationLevel              *string `gorm:"size:100" json:"education_level"`

	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
