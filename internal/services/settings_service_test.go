package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flintlabs/flint-backend/internal/dto"
	"github.com/flintlabs/flint-backend/internal/models"
)

func TestGetSettings_ProvisionsDefaultsWhenMissing(t *testing.T) {
	db := newTestDB(t)
	userSvc := NewUserService(db)
	svc := NewSettingsService(db)
	userID := createTestUser(t, userSvc, "clerk_1")

	settings, err := svc.GetSettings(userID)
	require.NoError(t, err)
	assert.Equal(t, 25, settings.PreferredSessionLength)
	assert.Equal(t, "light", settings.Theme)
	assert.EqualValues(t, 1, count(t, db, &models.UserSettings{}, "user_id = ?", userID))

	// Second read reuses the provisioned row.
	again, err := svc.GetSettings(userID)
	require.NoError(t, err)
	assert.Equal(t, settings.ID, again.ID)
}

func TestUpdateSettings_PatchesOnlySetFields(t *testing.T) {
	db := newTestDB(t)
	userSvc := NewUserService(db)
	svc := NewSettingsService(db)
	userID := createTestUser(t, userSvc, "clerk_1")

	theme := "dark"
	volume := 0.8
	settings, err := svc.UpdateSettings(userID, &dto.UpdateSettingsRequest{
		Theme:       &theme,
		MusicVolume: &volume,
	})
	require.NoError(t, err)
	assert.Equal(t, "dark", settings.Theme)
	assert.InDelta(t, 0.8, settings.MusicVolume, 1e-9)
	// Untouched defaults survive the patch.
	assert.Equal(t, 60, settings.DailyGoalMinutes)
	assert.True(t, settings.SoundEnabled)
}

func TestCompleteOnboarding_SetsFlagAndAnswers(t *testing.T) {
	db := newTestDB(t)
	userSvc := NewUserService(db)
	svc := NewSettingsService(db)
	userID := createTestUser(t, userSvc, "clerk_1")
	require.NoError(t, userSvc.InitUserData(userID))

	goal := 300
	method := "pomodoro"
	prefs, err := svc.CompleteOnboarding(userID, &dto.CompleteOnboardingRequest{
		WeeklyFocusGoal: &goal,
		FocusMethod:     &method,
	})
	require.NoError(t, err)
	assert.True(t, prefs.IsOnboardingComplete)
	require.NotNil(t, prefs.CompletedAt)
	require.NotNil(t, prefs.WeeklyFocusGoal)
	assert.Equal(t, 300, *prefs.WeeklyFocusGoal)
}

func TestGetOnboarding_MissingRowIsNotFound(t *testing.T) {
	db := newTestDB(t)
	userSvc := NewUserService(db)
	svc := NewSettingsService(db)
	userID := createTestUser(t, userSvc, "clerk_1")

	_, err := svc.GetOnboarding(userID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
