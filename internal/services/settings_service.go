package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/flintlabs/flint-backend/internal/dto"
	"github.com/flintlabs/flint-backend/internal/models"
)

type SettingsService struct {
	db *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{db: db}
}

// GetSettings returns the user's settings row, provisioning the default
// row if the webhook-time initialization has not happened yet.
func (s *SettingsService) GetSettings(userID uuid.UUID) (*models.UserSettings, error) {
	var settings models.UserSettings
	err := s.db.Where("user_id = ?", userID).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		defaults := defaultSettings(userID)
		if err := s.db.Create(defaults).Error; err != nil {
			return nil, fmt.Errorf("failed to create default settings: %w", err)
		}
		return defaults, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return &settings, nil
}

// UpdateSettings patches the set fields onto the settings row, creating
// the row with defaults first when it is missing.
func (s *SettingsService) UpdateSettings(userID uuid.UUID, req *dto.UpdateSettingsRequest) (*models.UserSettings, error) {
	settings, err := s.GetSettings(userID)
	if err != nil {
		return nil, err
	}

	updates := req.Updates()
	if len(updates) == 0 {
		return settings, nil
	}

	if err := s.db.Model(settings).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}
	return settings, nil
}

func (s *SettingsService) GetOnboarding(userID uuid.UUID) (*models.OnboardingPreferences, error) {
	var prefs models.OnboardingPreferences
	if err := s.db.Where("user_id = ?", userID).First(&prefs).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load onboarding preferences: %w", err)
	}
	return &prefs, nil
}

// CompleteOnboarding marks onboarding finished and stores the answers
// collected by the final onboarding screen.
func (s *SettingsService) CompleteOnboarding(userID uuid.UUID, req *dto.CompleteOnboardingRequest) (*models.OnboardingPreferences, error) {
	prefs, err := s.GetOnboarding(userID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	updates := map[string]interface{}{
		"is_onboarding_complete": true,
		"completed_at":           now,
	}
	if req.WeeklyFocusGoal != nil {
		updates["weekly_focus_goal"] = *req.WeeklyFocusGoal
	}
	if req.FocusMethod != nil {
		updates["focus_method"] = *req.FocusMethod
	}
	if req.EducationLevel != nil {
		updates["education_level"] = *req.EducationLevel
	}

	if err := s.db.Model(prefs).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to complete onboarding: %w", err)
	}
	return prefs, nil
}
