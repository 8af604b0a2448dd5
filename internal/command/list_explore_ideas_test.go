package command

import (
	"errors"
	"math/rand/v2"
	"strconv"
	"testing"
	"time"

	"github.com/jbeshir/idea-feed/internal/datasources/memory"
	"github.com/jbeshir/idea-feed/internal/datasources/mocks"
	"github.com/jbeshir/idea-feed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestListExplore(store *memory.Store) *ListExploreIdeas {
	return NewListExploreIdeas(store, store, store, store)
}

func TestClampExploreLimit(t *testing.T) {
	cases := []struct {
		name  string
		limit int
		want  int
	}{
		{name: "unset", limit: 0, want: 10},
		{name: "negative", limit: -3, want: 10},
		{name: "minimum", limit: 1, want: 1},
		{name: "within_range", limit: 15, want: 15},
		{name: "maximum", limit: 20, want: 20},
		{name: "above_maximum", limit: 500, want: 20},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClampExploreLimit(tc.limit))
		})
	}
}

// collectFeed walks the feed from the top by chaining cursors.
func collectFeed(t *testing.T, cmd *ListExploreIdeas, limit int, search string) ([]domain.FeedIdea, int) {
	var (
		all    []domain.FeedIdea
		cursor string
		pages  int
	)
	for {
		page, err := cmd.Execute(testContext(), ListExploreIdeasRequest{Cursor: cursor, Limit: limit, Search: search})
		require.NoError(t, err)
		pages++
		require.LessOrEqual(t, len(page.Ideas), limit)

		all = append(all, page.Ideas...)
		if !page.HasMore {
			assert.Nil(t, page.NextCursor)
			return all, pages
		}
		require.NotNil(t, page.NextCursor)
		cursor = *page.NextCursor
		require.Less(t, pages, 1000, "pagination did not terminate")
	}
}

func TestListExploreIdeas_PaginationCoversFeedExactlyOnce(t *testing.T) {
	store := memory.New()
	author := store.AddUser("auth0|author", "Ada", "")

	// Few distinct scores and timestamps so ties on both are common.
	rng := rand.New(rand.NewPCG(7, 42))
	scores := []float64{0, 0.74, 3.2, 3.2, 10.91}
	const n = 53
	for id := int64(1); id <= n; id++ {
		store.PutIdea(domain.Idea{
			ID:           id,
			UserID:       author,
			Title:        "Idea",
			Content:      "Content",
			IsPublic:     true,
			HotnessScore: scores[rng.IntN(len(scores))],
			CreatedAt:    testNow.Add(-time.Duration(rng.IntN(4)) * time.Hour),
		}, nil)
	}
	// Private ideas with scores that would otherwise rank first.
	for id := int64(n + 1); id <= n+5; id++ {
		store.PutIdea(domain.Idea{
			ID:           id,
			UserID:       author,
			IsPublic:     false,
			HotnessScore: 99,
			CreatedAt:    testNow,
		}, nil)
	}

	cmd := newTestListExplore(store)

	for _, limit := range []int{1, 3, 10, 20} {
		t.Run("limit_"+strconv.Itoa(limit), func(t *testing.T) {
			ideas, _ := collectFeed(t, cmd, limit, "")
			require.Len(t, ideas, n)

			seen := map[int64]bool{}
			for i, idea := range ideas {
				assert.False(t, seen[idea.ID], "idea %d returned twice", idea.ID)
				seen[idea.ID] = true
				assert.LessOrEqual(t, idea.ID, int64(n), "private idea %d returned", idea.ID)
				if i > 0 {
					assert.True(t, idea.Position().After(ideas[i-1].Position()),
						"idea %d not strictly after idea %d", idea.ID, ideas[i-1].ID)
				}
			}
		})
	}
}

func TestListExploreIdeas_ExactlyLimitHasNoCursor(t *testing.T) {
	store := memory.New()
	author := store.AddUser("auth0|author", "Ada", "")
	for id := int64(1); id <= 4; id++ {
		seedIdea(store, id, author, float64(id), time.Hour)
	}

	result, err := newTestListExplore(store).Execute(testContext(), ListExploreIdeasRequest{Limit: 4})
	require.NoError(t, err)
	assert.Len(t, result.Ideas, 4)
	assert.False(t, result.HasMore)
	assert.Nil(t, result.NextCursor)
}

func TestListExploreIdeas_EmptyFeed(t *testing.T) {
	result, err := newTestListExplore(memory.New()).Execute(testContext(), ListExploreIdeasRequest{})
	require.NoError(t, err)
	assert.Equal(t, ListExploreIdeasResult{Ideas: []domain.FeedIdea{}}, result)
}

func TestListExploreIdeas_RankingScenario(t *testing.T) {
	store := memory.New()
	author := store.AddUser("auth0|author", "Ada", "")
	a := int64(1)
	b := int64(2)
	seedIdea(store, a, author, 0, 10*24*time.Hour)
	seedIdea(store, b, author, 0, 12*time.Hour)

	for i := 0; i < 50; i++ {
		viewer := store.AddUser("", "viewer", "")
		_, err := store.RecordView(testContext(), viewer, a, testNow, ViewDedupWindow)
		require.NoError(t, err)
		if i < 2 {
			_, err = store.AddFavorite(testContext(), viewer, a)
			require.NoError(t, err)
		}
		if i < 5 {
			_, err = store.RecordView(testContext(), viewer, b, testNow, ViewDedupWindow)
			require.NoError(t, err)
		}
	}

	refresh := NewRefreshAllHotness(store, DefaultRefreshAllHotnessConfig(), nil)
	refresh.Now = fixedNow
	_, err := refresh.Execute(testContext(), RefreshAllHotnessRequest{ForceUpdate: true})
	require.NoError(t, err)

	result, err := newTestListExplore(store).Execute(testContext(), ListExploreIdeasRequest{Limit: 10})
	require.NoError(t, err)
	require.Len(t, result.Ideas, 2)

	assert.Equal(t, a, result.Ideas[0].ID)
	assert.Equal(t, 10.91, result.Ideas[0].HotnessScore)
	assert.Equal(t, int64(2), result.Ideas[0].FavoriteCount)
	assert.Equal(t, int64(50), result.Ideas[0].ViewCount)

	// Five views with the new-content boost: 0.5 * 0.8^(0.5/7) * 1.5.
	assert.Equal(t, b, result.Ideas[1].ID)
	assert.Equal(t, 0.74, result.Ideas[1].HotnessScore)
	assert.Equal(t, int64(5), result.Ideas[1].ViewCount)
}

func TestListExploreIdeas_ViewerFavorites(t *testing.T) {
	store := memory.New()
	author := store.AddUser("auth0|author", "Ada", "")
	viewer := store.AddUser("auth0|viewer", "Grace", "")
	seedIdea(store, 1, author, 2, time.Hour, "garden")
	seedIdea(store, 2, author, 1, time.Hour)
	_, err := store.AddFavorite(testContext(), viewer, 2)
	require.NoError(t, err)

	cmd := newTestListExplore(store)

	result, err := cmd.Execute(testContext(), ListExploreIdeasRequest{ViewerID: viewer})
	require.NoError(t, err)
	require.Len(t, result.Ideas, 2)
	assert.False(t, result.Ideas[0].IsFavoritedByViewer)
	assert.True(t, result.Ideas[1].IsFavoritedByViewer)
	assert.Equal(t, int64(1), result.Ideas[1].FavoriteCount)
	assert.Equal(t, []string{"garden"}, result.Ideas[0].Tags)
	assert.Equal(t, "Ada", result.Ideas[0].Author.Name)

	anonymous, err := cmd.Execute(testContext(), ListExploreIdeasRequest{})
	require.NoError(t, err)
	assert.False(t, anonymous.Ideas[1].IsFavoritedByViewer)

	searched, err := cmd.Execute(testContext(), ListExploreIdeasRequest{Search: "GARDEN"})
	require.NoError(t, err)
	require.Len(t, searched.Ideas, 1)
	assert.Equal(t, int64(1), searched.Ideas[0].ID)
}

func TestListExploreIdeas_Errors(t *testing.T) {
	errStore := errors.New("connection refused")
	validCursor, ok := domain.EncodeFeedCursor(3.2, testNow, 9)
	require.True(t, ok)

	cases := []struct {
		name      string
		cursor    string
		wantList  bool
		listErr   error
		wantAfter *domain.FeedCursor
		wantErr   error
	}{
		{
			name:    "malformed_cursor",
			cursor:  "not-base64!!",
			wantErr: domain.ErrInvalidCursor,
		},
		{
			name:    "cursor_missing_fields",
			cursor:  "e30",
			wantErr: domain.ErrInvalidCursor,
		},
		{
			name:      "store_failure",
			cursor:    validCursor,
			wantList:  true,
			listErr:   errStore,
			wantAfter: &domain.FeedCursor{HotnessScore: 3.2, CreatedAt: testNow, ID: 9},
			wantErr:   errStore,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lister := mocks.NewMockHotIdeaLister(t)
			if tc.wantList {
				lister.EXPECT().
					ListHotIdeas(mock.Anything, domain.IdeaFilters{}, tc.wantAfter, DefaultExplorePageSize+1).
					Return(nil, tc.listErr)
			}

			cmd := NewListExploreIdeas(
				lister,
				mocks.NewMockFavoriteCounter(t),
				mocks.NewMockViewCounter(t),
				mocks.NewMockFavoritedIdeaChecker(t),
			)

			_, err := cmd.Execute(testContext(), ListExploreIdeasRequest{Cursor: tc.cursor})
			require.ErrorIs(t, err, tc.wantErr)
			if errors.Is(tc.wantErr, domain.ErrInvalidCursor) {
				assert.NotErrorIs(t, err, errStore)
			}
		})
	}
}

func TestListExploreIdeas_AnnotationFailure(t *testing.T) {
	errStore := errors.New("deadlock found")
	idea := domain.FeedIdea{ID: 1, HotnessScore: 1, CreatedAt: testNow}

	lister := mocks.NewMockHotIdeaLister(t)
	lister.EXPECT().ListHotIdeas(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.FeedIdea{idea}, nil)

	favorites := mocks.NewMockFavoriteCounter(t)
	favorites.EXPECT().CountFavorites(mock.Anything, []int64{1}).Return(nil, errStore)

	views := mocks.NewMockViewCounter(t)
	views.EXPECT().CountViews(mock.Anything, []int64{1}).Return(map[int64]int64{}, nil)

	cmd := NewListExploreIdeas(lister, favorites, views, mocks.NewMockFavoritedIdeaChecker(t))

	_, err := cmd.Execute(testContext(), ListExploreIdeasRequest{})
	require.ErrorIs(t, err, errStore)
}
