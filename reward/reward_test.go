package reward

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ts(t *testing.T, value string, loc *time.Location) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02T15:04:05", value, loc)
	require.NoError(t, err)
	return parsed
}

func TestEvaluatePostFirstEver(t *testing.T) {
	loc := time.UTC
	now := ts(t, "2025-01-02T08:00:00", loc)

	res := EvaluatePost(PostState{Point: 0, LastPost: nil}, now, loc)

	assert.True(t, res.FirstToday)
	assert.Equal(t, PostBonus, res.PointDelta)
	assert.Equal(t, now, res.NewLastPost)
}

func TestEvaluatePostSameDay(t *testing.T) {
	loc := time.UTC
	last := ts(t, "2025-01-02T08:00:00", loc)
	now := ts(t, "2025-01-02T20:00:00", loc)

	res := EvaluatePost(PostState{Point: 110, LastPost: &last}, now, loc)

	assert.False(t, res.FirstToday)
	assert.Equal(t, 0, res.PointDelta)
	assert.Equal(t, last, res.NewLastPost, "a same-day repeat must not advance last_post")
}

func TestEvaluatePostEarlierDay(t *testing.T) {
	loc := time.UTC
	cases := []struct {
		name string
		last string
	}{
		{"yesterday", "2025-01-01T23:59:59"},
		{"last month", "2024-12-02T08:00:00"},
		{"a year ago", "2024-01-02T08:00:00"},
	}
	now := ts(t, "2025-01-02T08:00:00", loc)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			last := ts(t, tc.last, loc)
			res := EvaluatePost(PostState{Point: 100, LastPost: &last}, now, loc)
			assert.True(t, res.FirstToday)
			assert.Equal(t, PostBonus, res.PointDelta)
			assert.Equal(t, now, res.NewLastPost)
		})
	}
}

// Feeding the first result's NewLastPost back in with the same clock must
// yield a bonus exactly once.
func TestEvaluatePostIdempotentWithinDay(t *testing.T) {
	loc := time.UTC
	now := ts(t, "2025-01-02T08:00:00", loc)

	first := EvaluatePost(PostState{Point: 100, LastPost: nil}, now, loc)
	require.Equal(t, PostBonus, first.PointDelta)

	second := EvaluatePost(PostState{Point: 110, LastPost: &first.NewLastPost}, now, loc)
	assert.Equal(t, 0, second.PointDelta)
	assert.False(t, second.FirstToday)
}

// The gate is calendar-day equality, not a rolling 24h window.
func TestEvaluatePostMidnightBoundary(t *testing.T) {
	loc := time.UTC
	last := ts(t, "2025-01-01T23:59:00", loc)
	now := ts(t, "2025-01-02T00:01:00", loc)

	res := EvaluatePost(PostState{Point: 0, LastPost: &last}, now, loc)

	assert.True(t, res.FirstToday, "two minutes apart but across midnight counts as a new day")
	assert.Equal(t, PostBonus, res.PointDelta)
}

// Day equality follows the configured zone, not the timestamps' own zones.
func TestEvaluatePostZoneSensitivity(t *testing.T) {
	seoul, err := time.LoadLocation("Asia/Seoul")
	require.NoError(t, err)

	// 2025-01-01 20:00 UTC and 2025-01-02 02:00 UTC straddle midnight UTC,
	// but in Seoul (+09:00) both land on 01-02 (05:00 and 11:00).
	last := time.Date(2025, 1, 1, 20, 0, 0, 0, time.UTC)
	now := time.Date(2025, 1, 2, 2, 0, 0, 0, time.UTC)

	assert.False(t, SameCalendarDay(last, now, time.UTC))
	assert.True(t, SameCalendarDay(last, now, seoul))

	res := EvaluatePost(PostState{LastPost: &last}, now, seoul)
	assert.Equal(t, 0, res.PointDelta)
}

// Concrete end-to-end scenario: post on a fresh day, then again the same day.
func TestEvaluatePostScenario(t *testing.T) {
	loc := time.UTC
	last := ts(t, "2025-01-01T09:00:00", loc)
	point := 100

	morning := ts(t, "2025-01-02T08:00:00", loc)
	res := EvaluatePost(PostState{Point: point, LastPost: &last}, morning, loc)
	require.Equal(t, 10, res.PointDelta)
	point += res.PointDelta
	assert.Equal(t, 110, point)
	assert.Equal(t, morning, res.NewLastPost)

	evening := ts(t, "2025-01-02T20:00:00", loc)
	res = EvaluatePost(PostState{Point: point, LastPost: &res.NewLastPost}, evening, loc)
	assert.Equal(t, 0, res.PointDelta)
	assert.Equal(t, 110, point+res.PointDelta)
}

func TestEvaluateOx(t *testing.T) {
	assert.Equal(t, 5, EvaluateOx(true))
	assert.Equal(t, 0, EvaluateOx(false))
}

func TestEvaluateCard(t *testing.T) {
	assert.Equal(t, 0, EvaluateCard(0))
	assert.Equal(t, 42, EvaluateCard(42))
	assert.Equal(t, 1000000, EvaluateCard(1000000), "card score is uncapped")
}
