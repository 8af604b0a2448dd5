package command

import (
	"errors"
	"strings"
	"testing"

	cmdmocks "github.com/jbeshir/idea-feed/internal/command/mocks"
	"github.com/jbeshir/idea-feed/internal/datasources/mocks"
	"github.com/jbeshir/idea-feed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testShareLink = "3f2a9c1e-8d4b-4e6f-9a0b-1c2d3e4f5a6b"

func TestCreateIdea_Execute(t *testing.T) {
	errStore := errors.New("duplicate entry")

	cases := []struct {
		name        string
		req         CreateIdeaRequest
		wantCreate  *domain.NewIdea
		createErr   error
		wantRefresh bool
		refreshErr  error
		wantErr     error
		wantResult  CreateIdeaResult
	}{
		{
			name: "public_idea_seeded",
			req: CreateIdeaRequest{
				UserID:   3,
				Title:    "  Bike lights  ",
				Content:  "Charge while riding\n",
				IsPublic: true,
				Tags:     []string{"Hardware", " cycling ", "hardware", ""},
			},
			wantCreate: &domain.NewIdea{
				UserID:    3,
				Title:     "Bike lights",
				Content:   "Charge while riding",
				IsPublic:  true,
				ShareLink: testShareLink,
				Tags:      []string{"hardware", "cycling"},
				CreatedAt: testNow,
			},
			wantRefresh: true,
			wantResult:  CreateIdeaResult{IdeaID: 11, ShareLink: testShareLink},
		},
		{
			name: "refresh_failure_is_not_fatal",
			req:  CreateIdeaRequest{UserID: 3, Title: "Title", Content: "Content", IsPublic: true},
			wantCreate: &domain.NewIdea{
				UserID:    3,
				Title:     "Title",
				Content:   "Content",
				IsPublic:  true,
				ShareLink: testShareLink,
				Tags:      []string{},
				CreatedAt: testNow,
			},
			wantRefresh: true,
			refreshErr:  errStore,
			wantResult:  CreateIdeaResult{IdeaID: 11, ShareLink: testShareLink},
		},
		{
			name: "private_idea_not_refreshed",
			req:  CreateIdeaRequest{UserID: 3, Title: "Title", Content: "Content"},
			wantCreate: &domain.NewIdea{
				UserID:    3,
				Title:     "Title",
				Content:   "Content",
				Tags:      []string{},
				CreatedAt: testNow,
			},
			wantResult: CreateIdeaResult{IdeaID: 11},
		},
		{
			name:    "blank_title",
			req:     CreateIdeaRequest{UserID: 3, Title: "   ", Content: "Content"},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "blank_content",
			req:     CreateIdeaRequest{UserID: 3, Title: "Title", Content: "\n\t"},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "title_too_long",
			req:     CreateIdeaRequest{UserID: 3, Title: strings.Repeat("é", 256), Content: "Content"},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "too_many_tags",
			req:     CreateIdeaRequest{UserID: 3, Title: "Title", Content: "Content", Tags: strings.Split("a,b,c,d,e,f,g,h,i,j,k", ",")},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name: "store_failure",
			req:  CreateIdeaRequest{UserID: 3, Title: "Title", Content: "Content"},
			wantCreate: &domain.NewIdea{
				UserID:    3,
				Title:     "Title",
				Content:   "Content",
				Tags:      []string{},
				CreatedAt: testNow,
			},
			createErr: errStore,
			wantErr:   errStore,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			creator := mocks.NewMockIdeaCreator(t)
			refresher := cmdmocks.NewMockCommand[RefreshIdeaHotnessRequest, RefreshIdeaHotnessResult](t)

			if tc.wantCreate != nil {
				creator.EXPECT().CreateIdea(mock.Anything, *tc.wantCreate).Return(11, tc.createErr)
			}
			if tc.wantRefresh {
				refresher.EXPECT().
					Execute(mock.Anything, RefreshIdeaHotnessRequest{IdeaID: 11}).
					Return(RefreshIdeaHotnessResult{}, tc.refreshErr)
			}

			cmd := NewCreateIdea(creator, refresher)
			cmd.Now = fixedNow
			cmd.NewShareLink = func() string { return testShareLink }

			result, err := cmd.Execute(testContext(), tc.req)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantResult, result)
		})
	}
}

func TestCreateIdea_DefaultShareLinkIsUUID(t *testing.T) {
	creator := mocks.NewMockIdeaCreator(t)
	refresher := cmdmocks.NewMockCommand[RefreshIdeaHotnessRequest, RefreshIdeaHotnessResult](t)

	creator.EXPECT().CreateIdea(mock.Anything, mock.Anything).Return(1, nil)
	refresher.EXPECT().Execute(mock.Anything, mock.Anything).Return(RefreshIdeaHotnessResult{}, nil)

	result, err := NewCreateIdea(creator, refresher).Execute(testContext(), CreateIdeaRequest{
		UserID: 1, Title: "Title", Content: "Content", IsPublic: true,
	})
	require.NoError(t, err)
	assert.Regexp(t, `^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`, result.ShareLink)
}
