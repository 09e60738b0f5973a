package dto

import (
	"time"

	"github.com/google/uuid"
)

// UserUpdatePatch is the allow-listed set of fields an identity-provider
// change event may write onto the user row. A nil field means "not
// provided" and is never written; the clerk id itself is the lookup key
// and is not patchable.
type UserUpdatePatch struct {
	Email     *string
	Username  *string
	FullName  *string
	FirstName *string
	LastName  *string
	AvatarURL *string
}

// Updates maps the set fields to their column values. An empty map
// means the patch carries nothing and no write should be issued.
func (p *UserUpdatePatch) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if p.Email != nil {
		updates["email"] = *p.Email
	}
	if p.Username != nil {
		updates["username"] = *p.Username
	}
	if p.FullName != nil {
		updates["full_name"] = *p.FullName
	}
	if p.FirstName != nil {
		updates["first_name"] = *p.FirstName
	}
	if p.LastName != nil {
		updates["last_name"] = *p.LastName
	}
	if p.AvatarURL != nil {
		updates["avatar_url"] = *p.AvatarURL
	}
	return updates
}

// UpdateProfileRequest is the client-facing profile patch. Same
// set-fields-only semantics as UserUpdatePatch.
type UpdateProfileRequest struct {
	Bio              *string `json:"bio"`
	University       *string `json:"university"`
	Major            *string `json:"major"`
	AvatarURL        *string `json:"avatar_url"`
	Location         *string `json:"location"`
	Classes          *string `json:"classes"`
	Website          *string `json:"website"`
	TimeZone         *string `json:"time_zone"`
	SoundPreference  *string `json:"sound_preference"`
	EnvironmentTheme *string `json:"environment_theme"`
	TrailBuddyType   *string `json:"trail_buddy_type"`
	TrailBuddyName   *string `json:"trail_buddy_name"`
	WeeklyFocusGoal  *int    `json:"weekly_focus_goal"`
	FocusDuration    *int    `json:"focus_duration"`
	BreakDuration    *int    `json:"break_duration"`
}

func (r *UpdateProfileRequest) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Bio != nil {
		updates["bio"] = *r.Bio
	}
	if r.University != nil {
		updates["university"] = *r.University
	}
	if r.Major != nil {
		updates["major"] = *r.Major
	}
	if r.AvatarURL != nil {
		updates["avatar_url"] = *r.AvatarURL
	}
	if r.Location != nil {
		updates["location"] = *r.Location
	}
	if r.Classes != nil {
		updates["classes"] = *r.Classes
	}
	if r.Website != nil {
		updates["website"] = *r.Website
	}
	if r.TimeZone != nil {
		updates["time_zone"] = *r.TimeZone
	}
	if r.SoundPreference != nil {
		updates["sound_preference"] = *r.SoundPreference
	}
	if r.EnvironmentTheme != nil {
		updates["environment_theme"] = *r.EnvironmentTheme
	}
	if r.TrailBuddyType != nil {
		updates["trail_buddy_type"] = *r.TrailBuddyType
	}
	if r.TrailBuddyName != nil {
		updates["trail_buddy_name"] = *r.TrailBuddyName
	}
	if r.WeeklyFocusGoal != nil {
		updates["weekly_focus_goal"] = *r.WeeklyFocusGoal
	}
	if r.FocusDuration != nil {
		updates["focus_duration"] = *r.FocusDuration
	}
	if r.BreakDuration != nil {
		updates["break_duration"] = *r.BreakDuration
	}
	return updates
}

// InitUserResponse mirrors the fallback-initialization result the
// mobile client expects after signup.
type InitUserResponse struct {
	Success bool       `json:"success"`
	Reason  string     `json:"reason,omitempty"`
	UserID  *uuid.UUID `json:"user_id,omitempty"`
}

type UserResponse struct {
	ID               uuid.UUID `json:"id"`
	Email            string    `json:"email"`
	Username         *string   `json:"username"`
	FullName         *string   `json:"full_name"`
	AvatarURL        *string   `json:"avatar_url"`
	Status           string    `json:"status"`
	SubscriptionTier string    `json:"subscription_tier"`
	FlintCurrency    int       `json:"flint_currency"`
	CreatedAt        time.Time `json:"created_at"`
}
