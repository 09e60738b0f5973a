package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the canonical user record, keyed by the Clerk identity id.
// Rows are created by the Clerk webhook and hard-deleted on account
// removal, so there is no soft-delete column.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ClerkID   string    `gorm:"size:255;not null;uniqueIndex" json:"-"`
	Email     string    `gorm:"size:255;not null;index" json:"email"`
	Username  *string   `gorm:"size:100;index" json:"username"`
	FullName  *string   `gorm:"size:255" json:"full_name"`
	FirstName *string   `gorm:"size:100" json:"first_name"`
	LastName  *string   `gorm:"size:100" json:"last_name"`
	AvatarURL *string   `gorm:"type:text" json:"avatar_url"`

	// Profile
	Bio        *string `gorm:"type:text" json:"bio"`
	University *string `gorm:"size:255" json:"university"`
	Major      *string `gorm:"size:255" json:"major"`
	Location   *string `gorm:"size:255" json:"location"`
	Classes    *string `gorm:"type:text" json:"classes"`
	Website    *string `gorm:"size:255" json:"website"`
	TimeZone   *string `gorm:"size:100" json:"time_zone"`
	Status     string  `gorm:"size:20;default:'active'" json:"status"`

	// Focus preferences stored on the user itself
	SoundPreference *string `gorm:"size:100" json:"sound_preference"`
	WeeklyFocusGoal *int    `json:"weekly_focus_goal"`
	FocusDuration   *int    `json:"focus_duration"`
	BreakDuration   *int    `json:"break_duration"`

	// Privacy visibility ('public' | 'friends' | 'private')
	FullNameVisibility   *string `gorm:"size:20" json:"full_name_visibility"`
	UniversityVisibility *string `gorm:"size:20" json:"university_visibility"`
	LocationVisibility   *string `gorm:"size:20" json:"location_visibility"`
	ClassesVisibility    *string `gorm:"size:20" json:"classes_visibility"`

	// Subscription
	SubscriptionTier string `gorm:"size:20;default:'trial'" json:"subscription_tier"`

	// Gamification
	EnvironmentTheme         *string `gorm:"size:50" json:"environment_theme"`
	DailyReminder            *string `gorm:"size:5" json:"daily_reminder"`
	TrailBuddyType           *string `gorm:"size:50" json:"trail_buddy_type"`
	TrailBuddyName           *string `gorm:"size:100" json:"trail_buddy_name"`
	FlintCurrency            int     `gorm:"default:0" json:"flint_currency"`
	FirstSessionBonusClaimed bool    `gorm:"default:false" json:"first_session_bonus_claimed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
