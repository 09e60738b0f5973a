package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/flintlabs/flint-backend/internal/models"
)

func seedStats(t *testing.T, db *gorm.DB, svc *UserService, clerkID string, points int) uuid.UUID {
	t.Helper()
	userID := createTestUser(t, svc, clerkID)
	require.NoError(t, svc.InitUserData(userID))
	require.NoError(t, db.Model(&models.LeaderboardStats{}).
		Where("user_id = ?", userID).Update("points", points).Error)
	return userID
}

func TestGlobalLeaderboard_OrderedByPoints(t *testing.T) {
	db := newTestDB(t)
	userSvc := NewUserService(db)
	svc := NewLeaderboardService(db)

	low := seedStats(t, db, userSvc, "clerk_low", 100)
	high := seedStats(t, db, userSvc, "clerk_high", 900)
	mid := seedStats(t, db, userSvc, "clerk_mid", 400)

	entries, err := svc.Global(10)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, high, entries[0].UserID)
	assert.Equal(t, mid, entries[1].UserID)
	assert.Equal(t, low, entries[2].UserID)
}

func TestGlobalLeaderboard_RespectsOptOut(t *testing.T) {
	db := newTestDB(t)
	userSvc := NewUserService(db)
	svc := NewLeaderboardService(db)

	visible := seedStats(t, db, userSvc, "clerk_visible", 10)
	hidden := seedStats(t, db, userSvc, "clerk_hidden", 999)
	require.NoError(t, db.Model(&models.OnboardingPreferences{}).
		Where("user_id = ?", hidden).Update("appear_on_leaderboards", false).Error)

	entries, err := svc.Global(10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, visible, entries[0].UserID)
}

func TestRank_CountsUsersAhead(t *testing.T) {
	db := newTestDB(t)
	userSvc := NewUserService(db)
	svc := NewLeaderboardService(db)

	seedStats(t, db, userSvc, "clerk_first", 900)
	mid := seedStats(t, db, userSvc, "clerk_second", 400)
	seedStats(t, db, userSvc, "clerk_third", 100)

	rank, err := svc.Rank(mid)
	require.NoError(t, err)
	assert.Equal(t, 2, rank.Rank)
	assert.EqualValues(t, 3, rank.TotalUsers)
}

func TestMyStats_MissingRowIsNotFound(t *testing.T) {
	db := newTestDB(t)
	userSvc := NewUserService(db)
	svc := NewLeaderboardService(db)
	userID := createTestUser(t, userSvc, "clerk_1")

	_, err := svc.MyStats(userID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
