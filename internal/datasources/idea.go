package datasources

import (
	"context"
	"time"

	"github.com/jbeshir/idea-feed/internal/domain"
)

// IdeaRepository combines every store operation the service needs.
type IdeaRepository interface {
	HotnessStore
	HotIdeaLister
	FavoritedIdeaChecker
	IdeaCreator
	IdeaGetter
	IdeaVisibilitySetter
	FavoriteSetter
	ViewRecorder
	AuthorStatsGetter
	AuthorTopIdeasLister
	UserIdeasLister
	ViewHistoryLister
	UserBySubjectGetter
}

// HotnessStore is the subset of the store used by the hotness refresher.
type HotnessStore interface {
	HotnessInputGetter
	FavoriteCounter
	ViewCounter
	HotnessScoreWriter
	HotnessCandidateLister
	HotnessCandidateCounter
}

// HotnessInputGetter loads the fields needed to score one idea.
// Returns an error wrapping domain.ErrNotFound if the idea does not exist.
type HotnessInputGetter interface {
	GetHotnessInput(ctx context.Context, ideaID int64) (domain.HotnessInput, error)
}

// FavoriteCounter counts favorites per idea in one grouped query.
// Ideas without favorites are absent from the result.
type FavoriteCounter interface {
	CountFavorites(ctx context.Context, ideaIDs []int64) (map[int64]int64, error)
}

// ViewCounter counts views per idea in one grouped query.
// Ideas without views are absent from the result.
type ViewCounter interface {
	CountViews(ctx context.Context, ideaIDs []int64) (map[int64]int64, error)
}

// HotnessScoreWriter persists a computed score. Only the hotness refresher may call it.
type HotnessScoreWriter interface {
	SetHotnessScore(ctx context.Context, ideaID int64, score float64, updatedAt time.Time) error
}

// HotnessCandidateLister pages through ideas eligible for batch rescoring in ascending id order.
// A nil staleBefore selects every candidate; otherwise only ideas never scored or scored
// before staleBefore are returned.
type HotnessCandidateLister interface {
	ListHotnessCandidates(
		ctx context.Context, afterID int64, staleBefore *time.Time, limit int,
	) ([]domain.HotnessInput, error)
}

type HotnessCandidateCounter interface {
	CountHotnessCandidates(ctx context.Context, staleBefore *time.Time) (int64, error)
}

// HotIdeaLister lists public ideas in explore order, strictly after the given position.
type HotIdeaLister interface {
	ListHotIdeas(
		ctx context.Context, filters domain.IdeaFilters, after *domain.FeedCursor, limit int,
	) ([]domain.FeedIdea, error)
}

// FavoritedIdeaChecker reports which of the given ideas the user has favorited.
type FavoritedIdeaChecker interface {
	ListFavoritedIdeaIDs(ctx context.Context, userID int64, ideaIDs []int64) (map[int64]bool, error)
}

type IdeaCreator interface {
	CreateIdea(ctx context.Context, idea domain.NewIdea) (int64, error)
}

type IdeaGetter interface {
	GetIdea(ctx context.Context, ideaID int64) (domain.Idea, error)
}

// IdeaVisibilitySetter flips an idea's visibility. A non-empty shareLink is stored
// only if the idea has none yet.
type IdeaVisibilitySetter interface {
	SetIdeaVisibility(ctx context.Context, ideaID int64, isPublic bool, shareLink string) error
}

// FavoriteSetter adds and removes favorite edges, reporting whether anything changed.
type FavoriteSetter interface {
	AddFavorite(ctx context.Context, userID, ideaID int64) (bool, error)
	RemoveFavorite(ctx context.Context, userID, ideaID int64) (bool, error)
}

// ViewRecorder appends a view unless the user already viewed the idea within window.
type ViewRecorder interface {
	RecordView(ctx context.Context, userID, ideaID int64, at time.Time, window time.Duration) (bool, error)
}

type AuthorStatsGetter interface {
	GetAuthorStats(ctx context.Context, userID int64) (domain.AuthorStats, error)
}

type AuthorTopIdeasLister interface {
	ListAuthorTopIdeas(ctx context.Context, userID int64, limit int) ([]domain.TopIdea, error)
}

// UserIdeasLister lists every idea a user authored, private ones included,
// newest first (created_at DESC, id DESC).
type UserIdeasLister interface {
	ListUserIdeas(ctx context.Context, userID int64, offset, limit int) ([]domain.OwnIdea, error)
}

// ViewHistoryLister lists a user's most recent views, newest first.
type ViewHistoryLister interface {
	ListViewHistory(ctx context.Context, userID int64, limit int) ([]domain.ViewedIdea, error)
}

// UserBySubjectGetter maps an authentication subject to an internal user id.
type UserBySubjectGetter interface {
	GetUserIDBySubject(ctx context.Context, subject string) (int64, error)
}
