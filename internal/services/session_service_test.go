package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flintlabs/flint-backend/internal/models"
)

func TestStartSession_DefaultsToIndividual(t *testing.T) {
	db := newTestDB(t)
	userSvc := NewUserService(db)
	svc := NewSessionService(db)
	userID := createTestUser(t, userSvc, "clerk_1")

	session, err := svc.Start(userID, "")
	require.NoError(t, err)
	assert.Equal(t, "individual", session.SessionType)
	assert.Equal(t, "active", session.Status)
	assert.False(t, session.StartTime.IsZero())

	active, err := svc.GetActive(userID)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, session.ID, active.ID)
}

func TestEndSession_RollsIntoStatsAndAwardsBonusOnce(t *testing.T) {
	db := newTestDB(t)
	userSvc := NewUserService(db)
	svc := NewSessionService(db)
	userID := createTestUser(t, userSvc, "clerk_1")
	require.NoError(t, userSvc.InitUserData(userID))

	session, err := svc.Start(userID, "individual")
	require.NoError(t, err)

	ended, bonus, err := svc.End(userID, session.ID)
	require.NoError(t, err)
	assert.True(t, bonus)
	assert.Equal(t, "completed", ended.Status)
	require.NotNil(t, ended.EndTime)
	require.NotNil(t, ended.DurationSeconds)
	assert.GreaterOrEqual(t, *ended.DurationSeconds, 0)

	var user models.User
	require.NoError(t, db.Where("id = ?", userID).First(&user).Error)
	assert.Equal(t, FirstSessionBonus, user.FlintCurrency)
	assert.True(t, user.FirstSessionBonusClaimed)

	var stats models.LeaderboardStats
	require.NoError(t, db.Where("user_id = ?", userID).First(&stats).Error)
	assert.Equal(t, 1, stats.SessionsCompleted)
	assert.Equal(t, 1, stats.TotalSessions)

	// A second session bumps the counters but never re-awards the bonus.
	second, err := svc.Start(userID, "individual")
	require.NoError(t, err)
	_, bonus, err = svc.End(userID, second.ID)
	require.NoError(t, err)
	assert.False(t, bonus)

	require.NoError(t, db.Where("id = ?", userID).First(&user).Error)
	assert.Equal(t, FirstSessionBonus, user.FlintCurrency)

	require.NoError(t, db.Where("user_id = ?", userID).First(&stats).Error)
	assert.Equal(t, 2, stats.SessionsCompleted)
}

func TestEndSession_TwiceReturnsFinished(t *testing.T) {
	db := newTestDB(t)
	userSvc := NewUserService(db)
	svc := NewSessionService(db)
	userID := createTestUser(t, userSvc, "clerk_1")
	require.NoError(t, userSvc.InitUserData(userID))

	session, err := svc.Start(userID, "individual")
	require.NoError(t, err)
	_, _, err = svc.End(userID, session.ID)
	require.NoError(t, err)

	_, _, err = svc.End(userID, session.ID)
	assert.ErrorIs(t, err, ErrSessionFinished)
}

func TestEndSession_RecreatesMissingStatsRows(t *testing.T) {
	db := newTestDB(t)
	userSvc := NewUserService(db)
	svc := NewSessionService(db)
	// Provisioning skipped on purpose: aggregates must be recreated.
	userID := createTestUser(t, userSvc, "clerk_1")

	session, err := svc.Start(userID, "individual")
	require.NoError(t, err)
	_, _, err = svc.End(userID, session.ID)
	require.NoError(t, err)

	assert.EqualValues(t, 1, count(t, db, &models.LeaderboardStats{}, "user_id = ?", userID))
	assert.EqualValues(t, 1, count(t, db, &models.LearningMetrics{}, "user_id = ?", userID))
}

func TestPauseResumeCancel(t *testing.T) {
	db := newTestDB(t)
	userSvc := NewUserService(db)
	svc := NewSessionService(db)
	userID := createTestUser(t, userSvc, "clerk_1")

	session, err := svc.Start(userID, "individual")
	require.NoError(t, err)

	paused, err := svc.Pause(userID, session.ID)
	require.NoError(t, err)
	assert.Equal(t, "paused", paused.Status)

	// Paused sessions drop out of the active lookup.
	active, err := svc.GetActive(userID)
	require.NoError(t, err)
	assert.Nil(t, active)

	resumed, err := svc.Resume(userID, session.ID)
	require.NoError(t, err)
	assert.Equal(t, "active", resumed.Status)

	cancelled, err := svc.Cancel(userID, session.ID)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", cancelled.Status)
	require.NotNil(t, cancelled.EndTime)

	_, err = svc.Resume(userID, session.ID)
	assert.ErrorIs(t, err, ErrSessionFinished)
}

func TestSession_ScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	userSvc := NewUserService(db)
	svc := NewSessionService(db)
	owner := createTestUser(t, userSvc, "clerk_owner")
	other := createTestUser(t, userSvc, "clerk_other")

	session, err := svc.Start(owner, "individual")
	require.NoError(t, err)

	_, _, err = svc.End(other, session.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = svc.Pause(other, session.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, _, err = svc.End(other, uuid.New())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestListSessions_NewestFirstWithLimit(t *testing.T) {
	db := newTestDB(t)
	userSvc := NewUserService(db)
	svc := NewSessionService(db)
	userID := createTestUser(t, userSvc, "clerk_1")

	for i := 0; i < 3; i++ {
		_, err := svc.Start(userID, "individual")
		require.NoError(t, err)
	}

	sessions, err := svc.List(userID, 2)
	require.NoError(t, err)
	assert.Len(t, sessions, 2)

	all, err := svc.List(userID, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
