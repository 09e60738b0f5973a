package services

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/flintlabs/flint-backend/internal/dto"
	"github.com/flintlabs/flint-backend/internal/models"
)

var ErrUserNotFound = errors.New("user not found")

// UserService owns the Clerk-driven user lifecycle: provisioning on
// user.created, projection of user.updated, and cascade removal on
// user.deleted. Webhook delivery may be retried, so every write path
// here is idempotent.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

type CreateUserInput struct {
	ClerkID   string
	Email     string
	Username  *string
	FullName  *string
	FirstName *string
	LastName  *string
	AvatarURL *string
}

// CreateUser inserts the canonical user row for a Clerk identity. A
// replayed creation event finds the existing row and returns its id
// without touching it.
func (s *UserService) CreateUser(input CreateUserInput) (uuid.UUID, error) {
	var existing models.User
	err := s.db.Where("clerk_id = ?", input.ClerkID).First(&existing).Error
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, fmt.Errorf("failed to look up user: %w", err)
	}

	user := models.User{
		ID:               uuid.New(),
		ClerkID:          input.ClerkID,
		Email:            input.Email,
		Username:         input.Username,
		FullName:         input.FullName,
		FirstName:        input.FirstName,
		LastName:         input.LastName,
		AvatarURL:        input.AvatarURL,
		Status:           "active",
		SubscriptionTier: "trial",
	}

	if err := s.db.Create(&user).Error; err != nil {
		return uuid.Nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user.ID, nil
}

// InitUserData creates the four dependent rows a user needs, each with
// its fixed defaults. Every kind is checked and inserted independently:
// a partial earlier failure self-heals on redelivery without duplicating
// the kinds that already exist.
func (s *UserService) InitUserData(userID uuid.UUID) error {
	if err := s.initOnboarding(userID); err != nil {
		return err
	}
	if err := s.initSettings(userID); err != nil {
		return err
	}
	if err := s.initLeaderboardStats(userID); err != nil {
		return err
	}
	return s.initLearningMetrics(userID)
}

func (s *UserService) initOnboarding(userID uuid.UUID) error {
	var existing models.OnboardingPreferences
	err := s.db.Where("user_id = ?", userID).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to look up onboarding preferences: %w", err)
	}

	prefs := models.OnboardingPreferences{
		ID:                          uuid.New(),
		UserID:                      userID,
		IsOnboardingComplete:        false,
		AllowDirectMessages:         true,
		PersonalizedRecommendations: true,
		UsageAnalytics:              true,
		ProfileVisibility:           "friends",
		ShowStudyProgress:           true,
		AppearOnLeaderboards:        true,
		PublicStudyRooms:            true,
		ReceiveStudyInvitations:     true,
		EmailNotificationPreference: true,
		ShareAnonymousAnalytics:     true,
	}
	if err := s.db.Create(&prefs).Error; err != nil {
		return fmt.Errorf("failed to create onboarding preferences: %w", err)
	}
	return nil
}

func (s *UserService) initSettings(userID uuid.UUID) error {
	var existing models.UserSettings
	err := s.db.Where("user_id = ?", userID).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to look up settings: %w", err)
	}

	if err := s.db.Create(defaultSettings(userID)).Error; err != nil {
		return fmt.Errorf("failed to create settings: %w", err)
	}
	return nil
}

func (s *UserService) initLeaderboardStats(userID uuid.UUID) error {
	var existing models.LeaderboardStats
	err := s.db.Where("user_id = ?", userID).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to look up leaderboard stats: %w", err)
	}

	stats := models.LeaderboardStats{
		ID:     uuid.New(),
		UserID: userID,
		Level:  1,
	}
	if err := s.db.Create(&stats).Error; err != nil {
		return fmt.Errorf("failed to create leaderboard stats: %w", err)
	}
	return nil
}

func (s *UserService) initLearningMetrics(userID uuid.UUID) error {
	var existing models.LearningMetrics
	err := s.db.Where("user_id = ?", userID).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to look up learning metrics: %w", err)
	}

	metrics := models.LearningMetrics{
		ID:     uuid.New(),
		UserID: userID,
	}
	if err := s.db.Create(&metrics).Error; err != nil {
		return fmt.Errorf("failed to create learning metrics: %w", err)
	}
	return nil
}

// defaultSettings returns the settings row every user starts with.
// Shared with the settings upsert path.
func defaultSettings(userID uuid.UUID) *models.UserSettings {
	return &models.UserSettings{
		ID:                     uuid.New(),
		UserID:                 userID,
		NotificationsEnabled:   true,
		SoundEnabled:           true,
		MusicVolume:            0.5,
		DailyGoalMinutes:       60,
		PreferredSessionLength: 25,
		BreakLength:            5,
		Theme:                  "light",
		AutoStartBreaks:        true,
		ShowMotivationalQuotes: true,
	}
}

// GetByClerkID resolves a user by its Clerk identity id.
func (s *UserService) GetByClerkID(clerkID string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("clerk_id = ?", clerkID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	return &user, nil
}

// UpdateUserByClerkID applies the set fields of the patch onto the user
// row. An unknown clerk id is a benign no-op: Clerk may deliver update
// events out of order with creation or after deletion. An empty patch
// issues no write at all.
func (s *UserService) UpdateUserByClerkID(clerkID string, patch *dto.UserUpdatePatch) error {
	user, err := s.GetByClerkID(clerkID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			slog.Warn("update for unknown user ignored", "clerk_id", clerkID)
			return nil
		}
		return err
	}

	updates := patch.Updates()
	if len(updates) == 0 {
		return nil
	}

	if err := s.db.Model(user).Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// UpdateProfile applies a client-side profile patch to the caller's row.
func (s *UserService) UpdateProfile(userID uuid.UUID, req *dto.UpdateProfileRequest) error {
	updates := req.Updates()
	if len(updates) == 0 {
		return nil
	}
	if err := s.db.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}

// DeleteUserByClerkID removes the user together with every dependent
// record. Children go before parents, the user row itself last, so an
// interrupted run can never orphan a row that still references a deleted
// parent; the whole cascade runs in one transaction where the store
// supports it. An unknown clerk id is a no-op.
func (s *UserService) DeleteUserByClerkID(clerkID string) error {
	user, err := s.GetByClerkID(clerkID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			slog.Warn("delete for unknown user ignored", "clerk_id", clerkID)
			return nil
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		// One-row-per-user kinds. The delete is issued against all rows
		// for the user to tolerate drift from the one-row invariant.
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.OnboardingPreferences{}).Error; err != nil {
			return fmt.Errorf("failed to delete onboarding preferences: %w", err)
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.UserSettings{}).Error; err != nil {
			return fmt.Errorf("failed to delete settings: %w", err)
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.LeaderboardStats{}).Error; err != nil {
			return fmt.Errorf("failed to delete leaderboard stats: %w", err)
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.LearningMetrics{}).Error; err != nil {
			return fmt.Errorf("failed to delete learning metrics: %w", err)
		}

		// Tasks, each preceded by its subtasks.
		var tasks []models.Task
		if err := tx.Where("user_id = ?", user.ID).Find(&tasks).Error; err != nil {
			return fmt.Errorf("failed to list tasks: %w", err)
		}
		for _, task := range tasks {
			if err := tx.Where("task_id = ?", task.ID).Delete(&models.Subtask{}).Error; err != nil {
				return fmt.Errorf("failed to delete subtasks: %w", err)
			}
			if err := tx.Delete(&task).Error; err != nil {
				return fmt.Errorf("failed to delete task: %w", err)
			}
		}

		if err := tx.Where("user_id = ?", user.ID).Delete(&models.Achievement{}).Error; err != nil {
			return fmt.Errorf("failed to delete achievements: %w", err)
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.FocusSession{}).Error; err != nil {
			return fmt.Errorf("failed to delete focus sessions: %w", err)
		}

		if err := tx.Delete(user).Error; err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		return nil
	})
}
