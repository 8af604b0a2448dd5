package domain

import (
	"encoding/base64"
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedCursor_RoundTrip(t *testing.T) {
	//nolint:gosec // deterministic inputs for a property test
	rng := rand.New(rand.NewPCG(42, 7))
	base := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 250; i++ {
		score := rng.Float64() * 100000
		createdAt := base.Add(time.Duration(rng.Int64N(int64(6 * 365 * 24 * time.Hour))))
		id := rng.Int64N(math.MaxInt64)

		token, ok := EncodeFeedCursor(score, createdAt, id)
		require.True(t, ok)

		got, err := DecodeFeedCursor(token)
		require.NoError(t, err)

		assert.Equal(t, RoundScore(score), got.HotnessScore)
		assert.True(t, createdAt.Equal(got.CreatedAt), "want %s, got %s", createdAt, got.CreatedAt)
		assert.Equal(t, id, got.ID)
	}
}

func TestFeedCursor_RoundTripPreservesZone(t *testing.T) {
	taipei := time.FixedZone("UTC+8", 8*60*60)
	createdAt := time.Date(2025, 8, 28, 9, 30, 0, 123456000, taipei)

	token, ok := EncodeFeedCursor(11.16, createdAt, 17)
	require.True(t, ok)

	got, err := DecodeFeedCursor(token)
	require.NoError(t, err)
	assert.Equal(t, FeedCursor{HotnessScore: 11.16, CreatedAt: createdAt.UTC(), ID: 17}, got)
}

func TestEncodeFeedCursor_RejectsNonFiniteScore(t *testing.T) {
	now := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	for _, score := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		token, ok := EncodeFeedCursor(score, now, 1)
		assert.False(t, ok)
		assert.Empty(t, token)
	}
}

func TestEncodeFeedCursor_IsURLSafe(t *testing.T) {
	now := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	for id := int64(0); id < 200; id++ {
		token, ok := EncodeFeedCursor(float64(id)*1.37, now.Add(time.Duration(id)*time.Second), id)
		require.True(t, ok)
		assert.NotContains(t, token, "+")
		assert.NotContains(t, token, "/")
		assert.NotContains(t, token, "=")
	}
}

func TestDecodeFeedCursor_Rejects(t *testing.T) {
	encode := func(s string) string {
		return base64.RawURLEncoding.EncodeToString([]byte(s))
	}

	cases := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "not_base64", token: "not-base64!!"},
		{name: "base64_not_json", token: encode("hello there")},
		{name: "empty_object", token: encode("{}")},
		{name: "padded_empty_object", token: base64.URLEncoding.EncodeToString([]byte("{}"))},
		{name: "string_fields", token: encode(`{"h":"x","c":"y","i":"z"}`)},
		{name: "missing_id", token: encode(`{"h":1.5,"c":"2025-01-01T00:00:00Z"}`)},
		{name: "null_score", token: encode(`{"h":null,"c":"2025-01-01T00:00:00Z","i":3}`)},
		{name: "fractional_id", token: encode(`{"h":1.5,"c":"2025-01-01T00:00:00Z","i":1.5}`)},
		{name: "unparsable_date", token: encode(`{"h":1.5,"c":"yesterday","i":3}`)},
		{name: "json_array", token: encode(`[1,2,3]`)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeFeedCursor(tc.token)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidCursor)
		})
	}
}

func TestFeedCursor_After(t *testing.T) {
	at := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	pivot := FeedCursor{HotnessScore: 5, CreatedAt: at, ID: 10}

	cases := []struct {
		name     string
		c        FeedCursor
		expected bool
	}{
		{name: "lower_score", c: FeedCursor{HotnessScore: 4.99, CreatedAt: at.Add(time.Hour), ID: 99}, expected: true},
		{name: "higher_score", c: FeedCursor{HotnessScore: 5.01, CreatedAt: at.Add(-time.Hour), ID: 1}, expected: false},
		{name: "same_score_older", c: FeedCursor{HotnessScore: 5, CreatedAt: at.Add(-time.Second), ID: 99}, expected: true},
		{name: "same_score_newer", c: FeedCursor{HotnessScore: 5, CreatedAt: at.Add(time.Second), ID: 1}, expected: false},
		{name: "same_score_and_time_lower_id", c: FeedCursor{HotnessScore: 5, CreatedAt: at, ID: 9}, expected: true},
		{name: "same_score_and_time_higher_id", c: FeedCursor{HotnessScore: 5, CreatedAt: at, ID: 11}, expected: false},
		{name: "identical", c: pivot, expected: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.c.After(pivot))
		})
	}
}
