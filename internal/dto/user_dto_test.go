package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestUserUpdatePatch_EmptyPatchProducesNoUpdates(t *testing.T) {
	patch := &UserUpdatePatch{}
	assert.Empty(t, patch.Updates())
}

func TestUserUpdatePatch_OnlySetFieldsAppear(t *testing.T) {
	patch := &UserUpdatePatch{
		Username:  strPtr("ada"),
		AvatarURL: strPtr("https://img.example.com/a.png"),
	}

	updates := patch.Updates()
	assert.Equal(t, map[string]interface{}{
		"username":   "ada",
		"avatar_url": "https://img.example.com/a.png",
	}, updates)
}

func TestUserUpdatePatch_EmptyStringIsAnExplicitValue(t *testing.T) {
	// A set-but-empty field is still a write; only nil means "absent".
	patch := &UserUpdatePatch{FullName: strPtr("")}
	assert.Equal(t, map[string]interface{}{"full_name": ""}, patch.Updates())
}

func TestUpdateProfileRequest_OnlySetFieldsAppear(t *testing.T) {
	goal := 300
	req := &UpdateProfileRequest{
		Bio:             strPtr("hi"),
		WeeklyFocusGoal: &goal,
	}

	updates := req.Updates()
	assert.Equal(t, map[string]interface{}{
		"bio":               "hi",
		"weekly_focus_goal": 300,
	}, updates)
}
