package command

import (
	"errors"
	"testing"

	cmdmocks "github.com/jbeshir/idea-feed/internal/command/mocks"
	"github.com/jbeshir/idea-feed/internal/datasources/mocks"
	"github.com/jbeshir/idea-feed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSetIdeaFavorite_Execute(t *testing.T) {
	errStore := errors.New("connection reset")
	publicIdea := domain.Idea{ID: 7, UserID: 1, IsPublic: true}
	privateIdea := domain.Idea{ID: 7, UserID: 1, IsPublic: false}

	cases := []struct {
		name        string
		userID      int64
		favorite    bool
		idea        domain.Idea
		getErr      error
		wantAdd     bool
		wantRemove  bool
		changed     bool
		setErr      error
		wantRefresh bool
		refreshErr  error
		wantErr     error
		wantChanged bool
	}{
		{
			name:        "favorite_triggers_refresh",
			userID:      2,
			favorite:    true,
			idea:        publicIdea,
			wantAdd:     true,
			changed:     true,
			wantRefresh: true,
			wantChanged: true,
		},
		{
			name:        "unfavorite_triggers_refresh",
			userID:      2,
			favorite:    false,
			idea:        publicIdea,
			wantRemove:  true,
			changed:     true,
			wantRefresh: true,
			wantChanged: true,
		},
		{
			name:     "repeat_favorite_skips_refresh",
			userID:   2,
			favorite: true,
			idea:     publicIdea,
			wantAdd:  true,
			changed:  false,
		},
		{
			name:        "refresh_failure_does_not_fail_favorite",
			userID:      2,
			favorite:    true,
			idea:        publicIdea,
			wantAdd:     true,
			changed:     true,
			wantRefresh: true,
			refreshErr:  errStore,
			wantChanged: true,
		},
		{
			name:        "owner_may_favorite_private_idea",
			userID:      1,
			favorite:    true,
			idea:        privateIdea,
			wantAdd:     true,
			changed:     true,
			wantRefresh: true,
			wantChanged: true,
		},
		{
			name:     "other_users_private_idea_not_found",
			userID:   2,
			favorite: true,
			idea:     privateIdea,
			wantErr:  domain.ErrNotFound,
		},
		{
			name:     "missing_idea",
			userID:   2,
			favorite: true,
			getErr:   domain.ErrNotFound,
			wantErr:  domain.ErrNotFound,
		},
		{
			name:     "store_failure",
			userID:   2,
			favorite: true,
			idea:     publicIdea,
			wantAdd:  true,
			setErr:   errStore,
			wantErr:  errStore,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			getter := mocks.NewMockIdeaGetter(t)
			setter := mocks.NewMockFavoriteSetter(t)
			refresher := cmdmocks.NewMockCommand[RefreshIdeaHotnessRequest, RefreshIdeaHotnessResult](t)

			getter.EXPECT().GetIdea(mock.Anything, int64(7)).Return(tc.idea, tc.getErr)
			if tc.wantAdd {
				setter.EXPECT().AddFavorite(mock.Anything, tc.userID, int64(7)).Return(tc.changed, tc.setErr)
			}
			if tc.wantRemove {
				setter.EXPECT().RemoveFavorite(mock.Anything, tc.userID, int64(7)).Return(tc.changed, tc.setErr)
			}
			if tc.wantRefresh {
				refresher.EXPECT().
					Execute(mock.Anything, RefreshIdeaHotnessRequest{IdeaID: 7}).
					Return(RefreshIdeaHotnessResult{}, tc.refreshErr)
			}

			cmd := NewSetIdeaFavorite(getter, setter, refresher)
			result, err := cmd.Execute(testContext(), SetIdeaFavoriteRequest{
				UserID:   tc.userID,
				IdeaID:   7,
				Favorite: tc.favorite,
			})
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantChanged, result.Changed)
		})
	}
}
