package domain

import (
	"time"
)

type Idea struct {
	ID                int64
	UserID            int64
	Title             string
	Content           string
	IsPublic          bool
	ShareLink         string
	HotnessScore      float64
	LastHotnessUpdate *time.Time
	CreatedAt         time.Time
}

// NewIdea holds the author-owned fields of an idea being created.
type NewIdea struct {
	UserID    int64
	Title     string
	Content   string
	IsPublic  bool
	ShareLink string
	Tags      []string
	CreatedAt time.Time
}

type Author struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// FeedIdea is the read model of an idea as listed in the explore feed.
type FeedIdea struct {
	ID                  int64     `json:"id"`
	Title               string    `json:"title"`
	Content             string    `json:"content"`
	Author              Author    `json:"author"`
	Tags                []string  `json:"tags"`
	FavoriteCount       int64     `json:"favoriteCount"`
	ViewCount           int64     `json:"viewCount"`
	IsFavoritedByViewer bool      `json:"isFavoritedByViewer"`
	HotnessScore        float64   `json:"hotnessScore"`
	CreatedAt           time.Time `json:"createdAt"`
}

// Position returns the idea's place in the explore ordering.
func (f FeedIdea) Position() FeedCursor {
	return FeedCursor{HotnessScore: f.HotnessScore, CreatedAt: f.CreatedAt, ID: f.ID}
}

type IdeaFilters struct {
	// Search matches title, content, author name or tag name; empty disables it.
	Search string
}

// AuthorStats aggregates engagement across an author's public ideas.
type AuthorStats struct {
	TotalViews     int64 `json:"totalViews"`
	TotalFavorites int64 `json:"totalFavorites"`
	IdeasCount     int64 `json:"ideasCount"`
}

// TopIdea is a compact entry in an author's most popular ideas.
type TopIdea struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	ShareLink    string    `json:"shareLink,omitempty"`
	HotnessScore float64   `json:"hotnessScore"`
	CreatedAt    time.Time `json:"createdAt"`
}

// OwnIdea is an idea as listed to its author, private ones included.
type OwnIdea struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	IsPublic     bool      `json:"isPublic"`
	ShareLink    string    `json:"shareLink,omitempty"`
	Tags         []string  `json:"tags"`
	HotnessScore float64   `json:"hotnessScore"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ViewedIdea is one entry of a user's view history.
type ViewedIdea struct {
	IdeaID   int64     `json:"ideaId"`
	Title    string    `json:"title"`
	ViewedAt time.Time `json:"viewedAt"`
}
