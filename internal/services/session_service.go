package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/flintlabs/flint-backend/internal/models"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionFinished = errors.New("session already finished")
)

// FirstSessionBonus is the one-time flint grant for finishing the very
// first focus session.
const FirstSessionBonus = 50

type SessionService struct {
	db *gorm.DB
}

func NewSessionService(db *gorm.DB) *SessionService {
	return &SessionService{db: db}
}

func (s *SessionService) GetActive(userID uuid.UUID) (*models.FocusSession, error) {
	var session models.FocusSession
	err := s.db.Where("user_id = ? AND status = ?", userID, "active").
		Order("start_time DESC").First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load active session: %w", err)
	}
	return &session, nil
}

func (s *SessionService) List(userID uuid.UUID, limit int) ([]models.FocusSession, error) {
	q := s.db.Where("user_id = ?", userID).Order("start_time DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var sessions []models.FocusSession
	if err := q.Find(&sessions).Error; err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}

func (s *SessionService) Start(userID uuid.UUID, sessionType string) (*models.FocusSession, error) {
	if sessionType == "" {
		sessionType = "individual"
	}

	session := models.FocusSession{
		ID:          uuid.New(),
		UserID:      userID,
		StartTime:   time.Now().UTC(),
		SessionType: sessionType,
		Status:      "active",
	}
	if err := s.db.Create(&session).Error; err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}
	return &session, nil
}

// End completes an active or paused session: it records the duration,
// rolls the focus time into the leaderboard stats and learning metrics,
// and awards the one-time first-session bonus. BonusAwarded reports
// whether this call claimed it.
func (s *SessionService) End(userID uuid.UUID, sessionID uuid.UUID) (*models.FocusSession, bool, error) {
	session, err := s.get(userID, sessionID)
	if err != nil {
		return nil, false, err
	}
	if session.Status == "completed" || session.Status == "cancelled" {
		return nil, false, ErrSessionFinished
	}

	now := time.Now().UTC()
	duration := int(now.Sub(session.StartTime).Seconds())
	if duration < 0 {
		duration = 0
	}

	bonusAwarded := false
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(session).Updates(map[string]interface{}{
			"end_time":         now,
			"duration_seconds": duration,
			"status":           "completed",
		}).Error; err != nil {
			return fmt.Errorf("failed to end session: %w", err)
		}

		if err := s.applyStats(tx, userID, duration); err != nil {
			return err
		}

		var user models.User
		if err := tx.Where("id = ?", userID).First(&user).Error; err != nil {
			return fmt.Errorf("failed to load user: %w", err)
		}
		if !user.FirstSessionBonusClaimed {
			if err := tx.Model(&user).Updates(map[string]interface{}{
				"flint_currency":              gorm.Expr("flint_currency + ?", FirstSessionBonus),
				"first_session_bonus_claimed": true,
			}).Error; err != nil {
				return fmt.Errorf("failed to award first-session bonus: %w", err)
			}
			bonusAwarded = true
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	return session, bonusAwarded, nil
}

func (s *SessionService) Pause(userID uuid.UUID, sessionID uuid.UUID) (*models.FocusSession, error) {
	return s.setStatus(userID, sessionID, "paused", false)
}

func (s *SessionService) Resume(userID uuid.UUID, sessionID uuid.UUID) (*models.FocusSession, error) {
	return s.setStatus(userID, sessionID, "active", false)
}

func (s *SessionService) Cancel(userID uuid.UUID, sessionID uuid.UUID) (*models.FocusSession, error) {
	return s.setStatus(userID, sessionID, "cancelled", true)
}

func (s *SessionService) setStatus(userID uuid.UUID, sessionID uuid.UUID, status string, stamp bool) (*models.FocusSession, error) {
	session, err := s.get(userID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status == "completed" || session.Status == "cancelled" {
		return nil, ErrSessionFinished
	}

	updates := map[string]interface{}{"status": status}
	if stamp {
		updates["end_time"] = time.Now().UTC()
	}
	if err := s.db.Model(session).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to set session status: %w", err)
	}
	return session, nil
}

func (s *SessionService) get(userID uuid.UUID, sessionID uuid.UUID) (*models.FocusSession, error) {
	var session models.FocusSession
	err := s.db.Where("id = ? AND user_id = ?", sessionID, userID).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return &session, nil
}

// applyStats rolls a completed session into the per-user aggregates.
// The rows normally exist from provisioning; a missing row is recreated
// rather than failing the session.
func (s *SessionService) applyStats(tx *gorm.DB, userID uuid.UUID, durationSeconds int) error {
	minutes := durationSeconds / 60

	var stats models.LeaderboardStats
	err := tx.Where("user_id = ?", userID).First(&stats).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		stats = models.LeaderboardStats{ID: uuid.New(), UserID: userID, Level: 1}
		if err := tx.Create(&stats).Error; err != nil {
			return fmt.Errorf("failed to create leaderboard stats: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("failed to load leaderboard stats: %w", err)
	}

	stats.TotalFocusTime += minutes
	stats.WeeklyFocusTime += minutes
	stats.MonthlyFocusTime += minutes
	stats.SessionsCompleted++
	stats.TotalSessions++
	stats.Points += minutes
	if level := stats.Points/500 + 1; level > stats.Level {
		stats.Level = level
	}
	if err := tx.Save(&stats).Error; err != nil {
		return fmt.Errorf("failed to update leaderboard stats: %w", err)
	}

	var metrics models.LearningMetrics
	err = tx.Where("user_id = ?", userID).First(&metrics).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		metrics = models.LearningMetrics{ID: uuid.New(), UserID: userID}
		if err := tx.Create(&metrics).Error; err != nil {
			return fmt.Errorf("failed to create learning metrics: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("failed to load learning metrics: %w", err)
	}

	metrics.TotalStudyTime += minutes
	if stats.SessionsCompleted > 0 {
		metrics.AverageSessionLength = float64(metrics.TotalStudyTime) / float64(stats.SessionsCompleted)
	}
	if err := tx.Save(&metrics).Error; err != nil {
		return fmt.Errorf("failed to update learning metrics: %w", err)
	}
	return nil
}
