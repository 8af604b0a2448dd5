package mysql

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/jbeshir/idea-feed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

type testFixture struct {
	authorID int64
	viewerID int64
	hotIdea  int64
	coldIdea int64
	private  int64
	unscored int64
}

func setupTestDB(t *testing.T) (*sql.DB, testFixture) {
	if testing.Short() {
		t.Skip("skipping MySQL integration tests in short mode")
	}
	uri := os.Getenv("MYSQL_URI")
	if uri == "" {
		t.Skip("skipping MySQL integration tests, MYSQL_URI not set")
	}

	ctx := context.Background()
	db, err := Connect(ctx, uri)
	require.NoError(t, err)

	_, _, err = RunMigrations(db)
	require.NoError(t, err)

	var f testFixture
	f.authorID = insertTestUser(t, db, "auth0|author", "Ada")
	f.viewerID = insertTestUser(t, db, "auth0|viewer", "Grace")

	sut := New(db)
	f.hotIdea, err = sut.CreateIdea(ctx, domain.NewIdea{
		UserID:    f.authorID,
		Title:     "Solar-powered bike lights",
		Content:   "Lights that charge while you ride",
		IsPublic:  true,
		ShareLink: "8e0f4f8e-6c1f-4b87-a0a7-1f1b2d8c9a10",
		Tags:      []string{"hardware", "cycling"},
		CreatedAt: testNow.Add(-10 * 24 * time.Hour),
	})
	require.NoError(t, err)

	f.coldIdea, err = sut.CreateIdea(ctx, domain.NewIdea{
		UserID:    f.authorID,
		Title:     "Recipe swap",
		Content:   "Trade recipes with neighbours",
		IsPublic:  true,
		Tags:      []string{"food"},
		CreatedAt: testNow.Add(-3 * 24 * time.Hour),
	})
	require.NoError(t, err)

	f.private, err = sut.CreateIdea(ctx, domain.NewIdea{
		UserID:    f.authorID,
		Title:     "Secret plan",
		Content:   "Not for sharing",
		IsPublic:  false,
		CreatedAt: testNow.Add(-time.Hour),
	})
	require.NoError(t, err)

	f.unscored, err = sut.CreateIdea(ctx, domain.NewIdea{
		UserID:    f.viewerID,
		Title:     "Community garden map",
		Content:   "Where to find plots",
		IsPublic:  true,
		CreatedAt: testNow.Add(-2 * time.Hour),
	})
	require.NoError(t, err)

	require.NoError(t, sut.SetHotnessScore(ctx, f.hotIdea, 10.9056, testNow))
	require.NoError(t, sut.SetHotnessScore(ctx, f.coldIdea, 0.7376, testNow))

	return db, f
}

func insertTestUser(t *testing.T, db *sql.DB, subject, name string) int64 {
	res, err := db.ExecContext(context.Background(),
		"INSERT INTO users (auth_subject, name) VALUES (?, ?)", subject, name)
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)
	return id
}

func teardownTestDB(t *testing.T, db *sql.DB) {
	for _, table := range []string{"views", "favorites", "idea_tags", "tags", "ideas", "users"} {
		_, err := db.ExecContext(context.Background(), "DELETE FROM "+table)
		require.NoError(t, err)
	}

	err := db.Close()
	require.NoError(t, err)
}

func TestRepository_ListHotIdeas(t *testing.T) {
	db, f := setupTestDB(t)
	defer teardownTestDB(t, db)

	sut := New(db)
	ctx := context.Background()

	first, err := sut.ListHotIdeas(ctx, domain.IdeaFilters{}, nil, 2)
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, f.hotIdea, first[0].ID)
	assert.Equal(t, 10.91, first[0].HotnessScore)
	assert.Equal(t, []string{"cycling", "hardware"}, first[0].Tags)
	assert.Equal(t, "Ada", first[0].Author.Name)
	assert.Equal(t, f.coldIdea, first[1].ID)

	after := first[1].Position()
	rest, err := sut.ListHotIdeas(ctx, domain.IdeaFilters{}, &after, 2)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, f.unscored, rest[0].ID)
	assert.Equal(t, []string{}, rest[0].Tags)

	cases := []struct {
		name     string
		search   string
		expected []int64
	}{
		{name: "title", search: "bike", expected: []int64{f.hotIdea}},
		{name: "tag", search: "food", expected: []int64{f.coldIdea}},
		{name: "author", search: "Grace", expected: []int64{f.unscored}},
		{name: "private never matches", search: "Secret", expected: []int64{}},
		{name: "wildcards are literal", search: "%", expected: []int64{}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			results, err := sut.ListHotIdeas(ctx, domain.IdeaFilters{Search: c.search}, nil, 10)
			require.NoError(t, err)

			ids := make([]int64, 0, len(results))
			for _, r := range results {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, c.expected, ids)
		})
	}
}

func TestRepository_HotnessCandidates(t *testing.T) {
	db, f := setupTestDB(t)
	defer teardownTestDB(t, db)

	sut := New(db)
	ctx := context.Background()

	all, err := sut.ListHotnessCandidates(ctx, 0, nil, 10)
	require.NoError(t, err)
	ids := make([]int64, 0, len(all))
	for _, c := range all {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []int64{f.hotIdea, f.coldIdea, f.unscored}, ids)

	count, err := sut.CountHotnessCandidates(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	staleBefore := testNow.Add(-30 * time.Minute)
	stale, err := sut.ListHotnessCandidates(ctx, 0, &staleBefore, 10)
	require.NoError(t, err)
	require.Len(t, stale, 1)
	assert.Equal(t, f.unscored, stale[0].ID)

	paged, err := sut.ListHotnessCandidates(ctx, f.hotIdea, nil, 1)
	require.NoError(t, err)
	require.Len(t, paged, 1)
	assert.Equal(t, f.coldIdea, paged[0].ID)

	// A private idea carrying a leftover score stays a candidate until reset.
	require.NoError(t, sut.SetHotnessScore(ctx, f.private, 3, testNow.Add(-time.Hour)))
	stale, err = sut.ListHotnessCandidates(ctx, 0, &staleBefore, 10)
	require.NoError(t, err)
	assert.Len(t, stale, 2)
}

func TestRepository_FavoritesAndViews(t *testing.T) {
	db, f := setupTestDB(t)
	defer teardownTestDB(t, db)

	sut := New(db)
	ctx := context.Background()

	added, err := sut.AddFavorite(ctx, f.viewerID, f.hotIdea)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = sut.AddFavorite(ctx, f.viewerID, f.hotIdea)
	require.NoError(t, err)
	assert.False(t, added)

	recorded, err := sut.RecordView(ctx, f.viewerID, f.hotIdea, testNow, 24*time.Hour)
	require.NoError(t, err)
	assert.True(t, recorded)

	recorded, err = sut.RecordView(ctx, f.viewerID, f.hotIdea, testNow.Add(time.Hour), 24*time.Hour)
	require.NoError(t, err)
	assert.False(t, recorded)

	recorded, err = sut.RecordView(ctx, f.viewerID, f.hotIdea, testNow.Add(25*time.Hour), 24*time.Hour)
	require.NoError(t, err)
	assert.True(t, recorded)

	favorites, err := sut.CountFavorites(ctx, []int64{f.hotIdea, f.coldIdea})
	require.NoError(t, err)
	assert.Equal(t, map[int64]int64{f.hotIdea: 1}, favorites)

	views, err := sut.CountViews(ctx, []int64{f.hotIdea, f.coldIdea})
	require.NoError(t, err)
	assert.Equal(t, map[int64]int64{f.hotIdea: 2}, views)

	favorited, err := sut.ListFavoritedIdeaIDs(ctx, f.viewerID, []int64{f.hotIdea, f.coldIdea})
	require.NoError(t, err)
	assert.Equal(t, map[int64]bool{f.hotIdea: true}, favorited)

	removed, err := sut.RemoveFavorite(ctx, f.viewerID, f.hotIdea)
	require.NoError(t, err)
	assert.True(t, removed)

	stats, err := sut.GetAuthorStats(ctx, f.authorID)
	require.NoError(t, err)
	assert.Equal(t, domain.AuthorStats{TotalViews: 2, TotalFavorites: 0, IdeasCount: 2}, stats)

	top, err := sut.ListAuthorTopIdeas(ctx, f.authorID, 3)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, f.hotIdea, top[0].ID)
	assert.Equal(t, "8e0f4f8e-6c1f-4b87-a0a7-1f1b2d8c9a10", top[0].ShareLink)
}

func TestRepository_IdeaLifecycle(t *testing.T) {
	db, f := setupTestDB(t)
	defer teardownTestDB(t, db)

	sut := New(db)
	ctx := context.Background()

	_, err := sut.GetIdea(ctx, f.private+1000)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = sut.GetHotnessInput(ctx, f.private+1000)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, sut.SetIdeaVisibility(ctx, f.private, true, "5b2c1d7e-0000-4000-8000-000000000001"))
	idea, err := sut.GetIdea(ctx, f.private)
	require.NoError(t, err)
	assert.True(t, idea.IsPublic)
	assert.Equal(t, "5b2c1d7e-0000-4000-8000-000000000001", idea.ShareLink)

	// An existing share link is kept.
	require.NoError(t, sut.SetIdeaVisibility(ctx, f.private, true, "ffffffff-0000-4000-8000-000000000002"))
	idea, err = sut.GetIdea(ctx, f.private)
	require.NoError(t, err)
	assert.Equal(t, "5b2c1d7e-0000-4000-8000-000000000001", idea.ShareLink)

	input, err := sut.GetHotnessInput(ctx, f.hotIdea)
	require.NoError(t, err)
	assert.True(t, input.IsPublic)
	assert.True(t, input.CreatedAt.Equal(testNow.Add(-10*24*time.Hour)))

	id, err := sut.GetUserIDBySubject(ctx, "auth0|viewer")
	require.NoError(t, err)
	assert.Equal(t, f.viewerID, id)

	_, err = sut.GetUserIDBySubject(ctx, "auth0|nobody")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepository_UserIdeasAndViewHistory(t *testing.T) {
	db, f := setupTestDB(t)
	defer teardownTestDB(t, db)

	sut := New(db)
	ctx := context.Background()

	cases := []struct {
		name   string
		offset int
		limit  int
		want   []int64
	}{
		{name: "newest_first_including_private", limit: 10, want: []int64{f.private, f.coldIdea, f.hotIdea}},
		{name: "limit", limit: 1, want: []int64{f.private}},
		{name: "offset", offset: 1, limit: 10, want: []int64{f.coldIdea, f.hotIdea}},
		{name: "past_end", offset: 5, limit: 10, want: []int64{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ideas, err := sut.ListUserIdeas(ctx, f.authorID, tc.offset, tc.limit)
			require.NoError(t, err)
			ids := make([]int64, 0, len(ideas))
			for _, idea := range ideas {
				ids = append(ids, idea.ID)
			}
			assert.Equal(t, tc.want, ids)
		})
	}

	ideas, err := sut.ListUserIdeas(ctx, f.authorID, 2, 1)
	require.NoError(t, err)
	require.Len(t, ideas, 1)
	assert.Equal(t, []string{"cycling", "hardware"}, ideas[0].Tags)
	assert.Equal(t, 10.91, ideas[0].HotnessScore)

	_, err = sut.RecordView(ctx, f.viewerID, f.hotIdea, testNow.Add(-2*time.Hour), 24*time.Hour)
	require.NoError(t, err)
	_, err = sut.RecordView(ctx, f.viewerID, f.coldIdea, testNow.Add(-time.Hour), 24*time.Hour)
	require.NoError(t, err)

	history, err := sut.ListViewHistory(ctx, f.viewerID, 10)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, f.coldIdea, history[0].IdeaID)
	assert.Equal(t, "Recipe swap", history[0].Title)
	assert.True(t, history[0].ViewedAt.Equal(testNow.Add(-time.Hour)))
	assert.Equal(t, f.hotIdea, history[1].IdeaID)

	history, err = sut.ListViewHistory(ctx, f.authorID, 10)
	require.NoError(t, err)
	assert.Empty(t, history)
}
