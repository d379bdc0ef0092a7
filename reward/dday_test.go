package reward

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDDay(t *testing.T) {
	loc := time.UTC
	now := time.Date(2025, 1, 2, 21, 30, 0, 0, loc)

	cases := []struct {
		name string
		goal time.Time
		want int
	}{
		{"tomorrow", time.Date(2025, 1, 3, 0, 0, 0, 0, loc), 1},
		{"today late evening", time.Date(2025, 1, 2, 23, 59, 0, 0, loc), 0},
		{"in ten days", time.Date(2025, 1, 12, 6, 0, 0, 0, loc), 10},
		{"yesterday", time.Date(2025, 1, 1, 12, 0, 0, 0, loc), -1},
		{"next year", time.Date(2026, 1, 2, 0, 0, 0, 0, loc), 365},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DDay(tc.goal, now, loc))
		})
	}
}

func TestTruncateToDate(t *testing.T) {
	seoul, err := time.LoadLocation("Asia/Seoul")
	assert.NoError(t, err)

	// 2025-01-01 20:00 UTC is already 01-02 in Seoul.
	in := time.Date(2025, 1, 1, 20, 0, 0, 0, time.UTC)
	got := TruncateToDate(in, seoul)
	assert.Equal(t, time.Date(2025, 1, 2, 0, 0, 0, 0, seoul), got)
}
