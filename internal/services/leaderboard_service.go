package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/flintlabs/flint-backend/internal/dto"
	"github.com/flintlabs/flint-backend/internal/models"
)

type LeaderboardService struct {
	db *gorm.DB
}

func NewLeaderboardService(db *gorm.DB) *LeaderboardService {
	return &LeaderboardService{db: db}
}

// Global returns the top entries ordered by points, enriched with the
// owning user's display fields. Users who opted out of leaderboards in
// their onboarding preferences are excluded.
func (s *LeaderboardService) Global(limit int) ([]dto.LeaderboardEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	var rows []struct {
		models.LeaderboardStats
		Username  *string
		FullName  *string
		AvatarURL *string
	}
	err := s.db.Model(&models.LeaderboardStats{}).
		Select("leaderboard_stats.*, users.username, users.full_name, users.avatar_url").
		Joins("JOIN users ON users.id = leaderboard_stats.user_id").
		Joins("LEFT JOIN onboarding_preferences ON onboarding_preferences.user_id = leaderboard_stats.user_id").
		Where("onboarding_preferences.appear_on_leaderboards IS NULL OR onboarding_preferences.appear_on_leaderboards = ?", true).
		Order("leaderboard_stats.points DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}

	entries := make([]dto.LeaderboardEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, dto.LeaderboardEntry{
			UserID:            r.UserID,
			Username:          r.Username,
			FullName:          r.FullName,
			AvatarURL:         r.AvatarURL,
			Points:            r.Points,
			Level:             r.Level,
			TotalFocusTime:    r.TotalFocusTime,
			CurrentStreak:     r.CurrentStreak,
			SessionsCompleted: r.SessionsCompleted,
		})
	}
	return entries, nil
}

func (s *LeaderboardService) MyStats(userID uuid.UUID) (*models.LeaderboardStats, error) {
	var stats models.LeaderboardStats
	if err := s.db.Where("user_id = ?", userID).First(&stats).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load stats: %w", err)
	}
	return &stats, nil
}

// Rank reports the caller's 1-based position by points and the total
// number of ranked users.
func (s *LeaderboardService) Rank(userID uuid.UUID) (*dto.RankResponse, error) {
	stats, err := s.MyStats(userID)
	if err != nil {
		return nil, err
	}

	var total int64
	if err := s.db.Model(&models.LeaderboardStats{}).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count stats: %w", err)
	}

	var ahead int64
	if err := s.db.Model(&models.LeaderboardStats{}).
		Where("points > ?", stats.Points).Count(&ahead).Error; err != nil {
		return nil, fmt.Errorf("failed to compute rank: %w", err)
	}

	return &dto.RankResponse{
		Rank:       int(ahead) + 1,
		TotalUsers: total,
		Stats:      stats,
	}, nil
}

func (s *LeaderboardService) Achievements(userID uuid.UUID) ([]models.Achievement, error) {
	var achievements []models.Achievement
	err := s.db.Where("user_id = ?", userID).
		Order("earned_at DESC").Find(&achievements).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list achievements: %w", err)
	}
	return achievements, nil
}
