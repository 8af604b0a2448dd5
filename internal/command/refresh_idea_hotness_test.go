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

func TestRefreshIdeaHotness_Execute(t *testing.T) {
	errStore := errors.New("connection reset")

	cases := []struct {
		name         string
		input        domain.HotnessInput
		inputErr     error
		favorites    map[int64]int64
		favoritesErr error
		views        map[int64]int64
		wantCount    bool
		wantScore    float64
		wantWrite    bool
		writeErr     error
		wantErr      error
		wantResult   RefreshIdeaHotnessResult
	}{
		{
			name:       "public_idea_scored_and_rounded",
			input:      domain.HotnessInput{ID: 1, CreatedAt: testNow.Add(-10 * 24 * time.Hour), IsPublic: true},
			favorites:  map[int64]int64{1: 2},
			views:      map[int64]int64{1: 50},
			wantCount:  true,
			wantScore:  10.91,
			wantWrite:  true,
			wantResult: RefreshIdeaHotnessResult{Score: 10.91, FavoriteCount: 2, ViewCount: 50},
		},
		{
			name:       "no_engagement_scores_zero",
			input:      domain.HotnessInput{ID: 1, CreatedAt: testNow.Add(-time.Hour), IsPublic: true},
			favorites:  map[int64]int64{},
			views:      map[int64]int64{},
			wantCount:  true,
			wantScore:  0,
			wantWrite:  true,
			wantResult: RefreshIdeaHotnessResult{},
		},
		{
			name:       "private_idea_reset_without_counting",
			input:      domain.HotnessInput{ID: 1, CreatedAt: testNow.Add(-time.Hour), IsPublic: false},
			wantScore:  0,
			wantWrite:  true,
			wantResult: RefreshIdeaHotnessResult{},
		},
		{
			name:     "missing_idea",
			inputErr: domain.ErrNotFound,
			wantErr:  domain.ErrNotFound,
		},
		{
			name:         "count_failure_skips_write",
			input:        domain.HotnessInput{ID: 1, CreatedAt: testNow, IsPublic: true},
			favoritesErr: errStore,
			views:        map[int64]int64{},
			wantCount:    true,
			wantErr:      errStore,
		},
		{
			name:      "write_failure",
			input:     domain.HotnessInput{ID: 1, CreatedAt: testNow, IsPublic: true},
			favorites: map[int64]int64{1: 1},
			views:     map[int64]int64{},
			wantCount: true,
			wantScore: 7.5,
			wantWrite: true,
			writeErr:  errStore,
			wantErr:   errStore,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			inputGetter := mocks.NewMockHotnessInputGetter(t)
			favoriteCounter := mocks.NewMockFavoriteCounter(t)
			viewCounter := mocks.NewMockViewCounter(t)
			scoreWriter := mocks.NewMockHotnessScoreWriter(t)

			inputGetter.EXPECT().GetHotnessInput(mock.Anything, int64(1)).Return(tc.input, tc.inputErr)
			if tc.wantCount {
				favoriteCounter.EXPECT().CountFavorites(mock.Anything, []int64{1}).Return(tc.favorites, tc.favoritesErr)
				viewCounter.EXPECT().CountViews(mock.Anything, []int64{1}).Return(tc.views, nil)
			}
			if tc.wantWrite {
				scoreWriter.EXPECT().SetHotnessScore(mock.Anything, int64(1), tc.wantScore, testNow).Return(tc.writeErr)
			}

			cmd := &RefreshIdeaHotness{
				InputGetter:     inputGetter,
				FavoriteCounter: favoriteCounter,
				ViewCounter:     viewCounter,
				ScoreWriter:     scoreWriter,
				Now:             fixedNow,
			}

			result, err := cmd.Execute(testContext(), RefreshIdeaHotnessRequest{IdeaID: 1})
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantResult, result)
		})
	}
}

func TestRefreshIdeaHotness_PrivateIdeaAlwaysZero(t *testing.T) {
	store := memory.New()
	author := store.AddUser("auth0|author", "Ada", "")
	fan := store.AddUser("auth0|fan", "Grace", "")

	store.PutIdea(domain.Idea{
		ID:           1,
		UserID:       author,
		Title:        "Hidden",
		Content:      "Private idea with a leftover score",
		IsPublic:     false,
		HotnessScore: 12.5,
		CreatedAt:    testNow.Add(-time.Hour),
	}, nil)
	_, err := store.AddFavorite(testContext(), fan, 1)
	require.NoError(t, err)

	cmd := NewRefreshIdeaHotness(store)
	cmd.Now = fixedNow

	result, err := cmd.Execute(testContext(), RefreshIdeaHotnessRequest{IdeaID: 1})
	require.NoError(t, err)
	assert.Equal(t, RefreshIdeaHotnessResult{}, result)

	idea, ok := store.Idea(1)
	require.True(t, ok)
	assert.Zero(t, idea.HotnessScore)
	require.NotNil(t, idea.LastHotnessUpdate)
	assert.Equal(t, testNow, *idea.LastHotnessUpdate)
}
