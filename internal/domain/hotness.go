package domain

import (
	"math"
	"time"
)

const (
	// FavoriteWeight and ViewWeight set the base popularity of an idea.
	FavoriteWeight = 5.0
	ViewWeight     = 0.1

	// WeeklyDecay is the fraction of score retained after each week of age.
	WeeklyDecay = 0.8

	// NewContentBoost applies to ideas younger than NewContentWindow.
	NewContentBoost  = 1.5
	NewContentWindow = 24 * time.Hour
)

// HotnessInput is what the refresher needs to know about an idea to score it.
type HotnessInput struct {
	ID        int64
	CreatedAt time.Time
	IsPublic  bool
}

// HotnessScore computes the time-decayed popularity of an idea.
// The base score of favoriteCount*5 + viewCount*0.1 decays by 20% per week of age,
// and ideas under a day old receive a 1.5x boost. Ages before createdAt
// (clock skew) are treated as zero. Counts must already be non-negative.
func HotnessScore(createdAt time.Time, favoriteCount, viewCount int64, now time.Time) float64 {
	ageDays := now.Sub(createdAt).Hours() / 24
	if ageDays < 0 {
		ageDays = 0
	}

	timeDecay := math.Pow(WeeklyDecay, ageDays/7)

	boost := 1.0
	if ageDays < NewContentWindow.Hours()/24 {
		boost = NewContentBoost
	}

	base := float64(favoriteCount)*FavoriteWeight + float64(viewCount)*ViewWeight

	return math.Max(base*timeDecay*boost, 0)
}

// RoundScore rounds a score to the two decimal places it is persisted with.
func RoundScore(score float64) float64 {
	return math.Round(score*100) / 100
}
