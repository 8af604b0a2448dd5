package domain

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// FeedCursor is a position in the explore ordering
// (hotness score DESC, created at DESC, id DESC).
type FeedCursor struct {
	HotnessScore float64
	CreatedAt    time.Time
	ID           int64
}

// After reports whether c sorts strictly after other in the explore ordering,
// i.e. whether c belongs on a later page than other.
func (c FeedCursor) After(other FeedCursor) bool {
	if c.HotnessScore != other.HotnessScore {
		return c.HotnessScore < other.HotnessScore
	}
	if !c.CreatedAt.Equal(other.CreatedAt) {
		return c.CreatedAt.Before(other.CreatedAt)
	}
	return c.ID < other.ID
}

type cursorPayload struct {
	H *float64 `json:"h"`
	C *string  `json:"c"`
	I *int64   `json:"i"`
}

// EncodeFeedCursor produces an opaque, URL-safe token for a feed position.
// The score is rounded to two decimals. It returns false if the score is not a
// finite number, in which case callers should treat the page as the last one.
func EncodeFeedCursor(hotnessScore float64, createdAt time.Time, id int64) (string, bool) {
	if math.IsNaN(hotnessScore) || math.IsInf(hotnessScore, 0) {
		return "", false
	}

	h := RoundScore(hotnessScore)
	c := createdAt.UTC().Format(time.RFC3339Nano)
	payload, err := json.Marshal(cursorPayload{H: &h, C: &c, I: &id})
	if err != nil {
		return "", false
	}

	return base64.RawURLEncoding.EncodeToString(payload), true
}

// DecodeFeedCursor parses a token produced by EncodeFeedCursor.
// Every malformed token yields an error wrapping ErrInvalidCursor.
func DecodeFeedCursor(token string) (FeedCursor, error) {
	if token == "" {
		return FeedCursor{}, fmt.Errorf("%w: empty token", ErrInvalidCursor)
	}

	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		// Tolerate padded tokens.
		raw, err = base64.URLEncoding.DecodeString(token)
		if err != nil {
			return FeedCursor{}, fmt.Errorf("%w: not base64: %w", ErrInvalidCursor, err)
		}
	}

	var payload cursorPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return FeedCursor{}, fmt.Errorf("%w: malformed payload: %w", ErrInvalidCursor, err)
	}

	if payload.H == nil || payload.C == nil || payload.I == nil {
		return FeedCursor{}, fmt.Errorf("%w: missing fields", ErrInvalidCursor)
	}

	createdAt, err := time.Parse(time.RFC3339Nano, *payload.C)
	if err != nil {
		return FeedCursor{}, fmt.Errorf("%w: unparsable date: %w", ErrInvalidCursor, err)
	}

	return FeedCursor{
		HotnessScore: *payload.H,
		CreatedAt:    createdAt.UTC(),
		ID:           *payload.I,
	}, nil
}
