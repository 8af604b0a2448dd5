package command

import (
	"errors"
	"testing"
	"time"

	"github.com/jbeshir/idea-feed/internal/datasources/memory"
	"github.com/jbeshir/idea-feed/internal/datasources/mocks"
	"github.com/jbeshir/idea-feed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetAuthorStats_Execute(t *testing.T) {
	store := memory.New()
	author := store.AddUser("auth0|author", "Ada", "")
	other := store.AddUser("auth0|other", "Grace", "")

	seedIdea(store, 1, author, 4, time.Hour)
	seedIdea(store, 2, author, 9, 2*time.Hour)
	seedIdea(store, 3, author, 1, 3*time.Hour)
	seedIdea(store, 4, author, 6, 4*time.Hour)
	seedIdea(store, 5, other, 50, time.Hour)
	store.PutIdea(domain.Idea{ID: 6, UserID: author, IsPublic: false, CreatedAt: testNow}, nil)

	ctx := testContext()
	for _, id := range []int64{1, 2, 5, 6} {
		_, err := store.AddFavorite(ctx, other, id)
		require.NoError(t, err)
		_, err = store.RecordView(ctx, other, id, testNow, ViewDedupWindow)
		require.NoError(t, err)
	}

	result, err := NewGetAuthorStats(store, store).Execute(ctx, GetAuthorStatsRequest{UserID: author})
	require.NoError(t, err)

	assert.Equal(t, domain.AuthorStats{TotalViews: 2, TotalFavorites: 2, IdeasCount: 4}, result.Stats)

	ids := make([]int64, 0, len(result.TopIdeas))
	for _, idea := range result.TopIdeas {
		ids = append(ids, idea.ID)
	}
	assert.Equal(t, []int64{2, 4, 1}, ids)
}

func TestGetAuthorStats_NoIdeas(t *testing.T) {
	result, err := NewGetAuthorStats(memory.New(), memory.New()).Execute(testContext(), GetAuthorStatsRequest{UserID: 1})
	require.NoError(t, err)
	assert.Equal(t, GetAuthorStatsResult{TopIdeas: []domain.TopIdea{}}, result)
}

func TestGetAuthorStats_Failure(t *testing.T) {
	errStore := errors.New("connection reset")

	stats := mocks.NewMockAuthorStatsGetter(t)
	stats.EXPECT().GetAuthorStats(mock.Anything, int64(1)).Return(domain.AuthorStats{}, nil)

	top := mocks.NewMockAuthorTopIdeasLister(t)
	top.EXPECT().ListAuthorTopIdeas(mock.Anything, int64(1), 3).Return(nil, errStore)

	_, err := NewGetAuthorStats(stats, top).Execute(testContext(), GetAuthorStatsRequest{UserID: 1})
	require.ErrorIs(t, err, errStore)
}
