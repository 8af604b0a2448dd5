package domain

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func daysBefore(now time.Time, days float64) time.Time {
	return now.Add(-time.Duration(days * 24 * float64(time.Hour)))
}

func TestHotnessScore(t *testing.T) {
	now := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name          string
		createdAt     time.Time
		favoriteCount int64
		viewCount     int64
		expected      float64
	}{
		{
			name:      "no_engagement_scores_zero",
			createdAt: daysBefore(now, 3),
			expected:  0,
		},
		{
			name:          "brand_new_idea_is_boosted",
			createdAt:     now,
			favoriteCount: 2,
			viewCount:     10,
			// (2*5 + 10*0.1) * 1.5
			expected: 16.5,
		},
		{
			name:          "one_week_old_decays_twenty_percent",
			createdAt:     daysBefore(now, 7),
			favoriteCount: 1,
			expected:      4,
		},
		{
			name:          "two_weeks_old",
			createdAt:     daysBefore(now, 14),
			favoriteCount: 1,
			expected:      3.2,
		},
		{
			name:          "ten_days_with_favorites_and_views",
			createdAt:     daysBefore(now, 10),
			favoriteCount: 2,
			viewCount:     50,
			// 15 * 0.8^(10/7)
			expected: 10.9056,
		},
		{
			name:          "future_created_at_treated_as_new",
			createdAt:     now.Add(time.Hour),
			favoriteCount: 1,
			expected:      7.5,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := HotnessScore(tc.createdAt, tc.favoriteCount, tc.viewCount, now)
			assert.InDelta(t, tc.expected, got, 0.0001)
		})
	}
}

func TestHotnessScore_DecayMonotonic(t *testing.T) {
	now := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)

	previous := math.Inf(1)
	for hours := 0; hours <= 24*120; hours += 7 {
		createdAt := now.Add(-time.Duration(hours) * time.Hour)
		score := HotnessScore(createdAt, 3, 40, now)
		require.LessOrEqual(t, score, previous, "score increased at age %dh", hours)
		previous = score
	}
}

func TestHotnessScore_NewContentBoost(t *testing.T) {
	now := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)

	young := HotnessScore(daysBefore(now, 0.99), 4, 25, now)
	old := HotnessScore(daysBefore(now, 1.01), 4, 25, now)

	// Remove the decay difference between the two ages so only the boost remains.
	decayRatio := math.Pow(WeeklyDecay, (0.99-1.01)/7)
	assert.InDelta(t, NewContentBoost, young/old/decayRatio, 1e-6)
}

func TestHotnessScore_NonNegative(t *testing.T) {
	now := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)

	for _, days := range []float64{0, 0.5, 1, 30, 365, 3650} {
		for _, favorites := range []int64{0, 1, 1000} {
			for _, views := range []int64{0, 1, 100000} {
				score := HotnessScore(daysBefore(now, days), favorites, views, now)
				assert.GreaterOrEqual(t, score, 0.0)
			}
		}
	}
}

func TestRoundScore(t *testing.T) {
	assert.Equal(t, 10.91, RoundScore(10.905570341737851))
	assert.Equal(t, 0.74, RoundScore(0.7381406443449215))
	assert.Equal(t, 0.0, RoundScore(0))
	assert.Equal(t, 3.2, RoundScore(3.2000000000000006))
}
