package command

import (
	"context"
	"log/slog"
	"time"

	"github.com/jbeshir/idea-feed/internal/datasources/memory"
	"github.com/jbeshir/idea-feed/internal/domain"
)

var testNow = time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testContext() context.Context {
	return domain.ContextWithLogger(context.Background(), testLogger())
}

func fixedNow() time.Time {
	return testNow
}

// seedIdea stores a public idea with the given score and age.
func seedIdea(store *memory.Store, id, userID int64, score float64, age time.Duration, tags ...string) {
	store.PutIdea(domain.Idea{
		ID:           id,
		UserID:       userID,
		Title:        "Idea",
		Content:      "Content",
		IsPublic:     true,
		HotnessScore: score,
		CreatedAt:    testNow.Add(-age),
	}, tags)
}
