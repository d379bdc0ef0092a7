package service

import (
	"testing"
	"time"

	"hamlog/reward"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerUser(t *testing.T, nickname string) int {
	t.Helper()
	var s UserService
	user, err := s.Register(nickname, "pw", nickname+"@example.com", "")
	require.NoError(t, err)
	return user.Id
}

func TestGrantPostOncePerDay(t *testing.T) {
	setupDB(t)
	t.Setenv("HAMLOG_TIME_LOCATION", "UTC")
	var users UserService
	var rewards RewardService

	userId := registerUser(t, "poster")
	morning := time.Date(2025, 1, 2, 8, 0, 0, 0, time.UTC)

	delta, err := rewards.GrantPost(userId, morning)
	require.NoError(t, err)
	assert.Equal(t, reward.PostBonus, delta)

	evening := time.Date(2025, 1, 2, 20, 0, 0, 0, time.UTC)
	delta, err = rewards.GrantPost(userId, evening)
	require.NoError(t, err)
	assert.Equal(t, 0, delta, "second post of the day earns nothing")

	user, err := users.GetUser(userId)
	require.NoError(t, err)
	assert.Equal(t, reward.PostBonus, user.Point)
	require.NotNil(t, user.LastPost)
	assert.True(t, reward.SameCalendarDay(*user.LastPost, morning, time.UTC))

	nextDay := time.Date(2025, 1, 3, 8, 0, 0, 0, time.UTC)
	delta, err = rewards.GrantPost(userId, nextDay)
	require.NoError(t, err)
	assert.Equal(t, reward.PostBonus, delta, "a fresh day grants again")
}

func TestGrantOxStampsLastGameEitherWay(t *testing.T) {
	setupDB(t)
	t.Setenv("HAMLOG_TIME_LOCATION", "UTC")
	var users UserService
	var rewards RewardService

	userId := registerUser(t, "quizzer")
	now := time.Date(2025, 1, 2, 8, 0, 0, 0, time.UTC)

	delta, err := rewards.GrantOx(userId, false, now)
	require.NoError(t, err)
	assert.Equal(t, 0, delta)

	user, err := users.GetUser(userId)
	require.NoError(t, err)
	assert.Equal(t, 0, user.Point)
	require.NotNil(t, user.LastGame, "a wrong answer still marks the game as played")

	delta, err = rewards.GrantOx(userId, true, now.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, reward.OxBonus, delta)

	user, err = users.GetUser(userId)
	require.NoError(t, err)
	assert.Equal(t, reward.OxBonus, user.Point)
}

func TestGrantCard(t *testing.T) {
	setupDB(t)
	t.Setenv("HAMLOG_TIME_LOCATION", "UTC")
	var users UserService
	var rewards RewardService

	userId := registerUser(t, "dealer")
	now := time.Date(2025, 1, 2, 8, 0, 0, 0, time.UTC)

	delta, err := rewards.GrantCard(userId, 42, now)
	require.NoError(t, err)
	assert.Equal(t, 42, delta)

	delta, err = rewards.GrantCard(userId, 0, now.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 0, delta)

	_, err = rewards.GrantCard(userId, -1, now)
	assert.ErrorIs(t, err, ErrNegativeScore)

	user, err := users.GetUser(userId)
	require.NoError(t, err)
	assert.Equal(t, 42, user.Point, "the rejected score must not touch the balance")
	require.NotNil(t, user.LastGame)
}

// Game rewards are not day-gated: repeated plays keep paying out.
func TestGamesHaveNoDailyGate(t *testing.T) {
	setupDB(t)
	t.Setenv("HAMLOG_TIME_LOCATION", "UTC")
	var users UserService
	var rewards RewardService

	userId := registerUser(t, "grinder")
	now := time.Date(2025, 1, 2, 8, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		delta, err := rewards.GrantOx(userId, true, now.Add(time.Duration(i)*time.Minute))
		require.NoError(t, err)
		assert.Equal(t, reward.OxBonus, delta)
	}

	user, err := users.GetUser(userId)
	require.NoError(t, err)
	assert.Equal(t, 3*reward.OxBonus, user.Point)
}
