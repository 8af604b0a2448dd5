// Package memory provides an in-process IdeaRepository for local development and tests.
package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/jbeshir/idea-feed/internal/datasources"
	"github.com/jbeshir/idea-feed/internal/domain"
)

var _ datasources.IdeaRepository = (*Store)(nil)

type user struct {
	id      int64
	subject string
	name    string
	avatar  string
}

type favoriteKey struct {
	userID, ideaID int64
}

type view struct {
	userID, ideaID int64
	at             time.Time
}

type Store struct {
	mu sync.RWMutex

	users          map[int64]user
	usersBySubject map[string]int64
	ideas          map[int64]domain.Idea
	ideaTags       map[int64][]string
	favorites      map[favoriteKey]time.Time
	views          []view

	nextUserID int64
	nextIdeaID int64
}

func New() *Store {
	return &Store{
		users:          map[int64]user{},
		usersBySubject: map[string]int64{},
		ideas:          map[int64]domain.Idea{},
		ideaTags:       map[int64][]string{},
		favorites:      map[favoriteKey]time.Time{},
		nextUserID:     1,
		nextIdeaID:     1,
	}
}

// AddUser registers a user and returns its id.
func (s *Store) AddUser(subject, name, avatar string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addUserLocked(subject, name, avatar)
}

func (s *Store) addUserLocked(subject, name, avatar string) int64 {
	id := s.nextUserID
	s.nextUserID++
	s.users[id] = user{id: id, subject: subject, name: name, avatar: avatar}
	if subject != "" {
		s.usersBySubject[subject] = id
	}
	return id
}

// PutIdea stores an idea as given, including its id and hotness columns. The score
// is rounded to two decimals, as the MySQL column stores it.
func (s *Store) PutIdea(idea domain.Idea, tags []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idea.HotnessScore = domain.RoundScore(idea.HotnessScore)
	s.ideas[idea.ID] = idea
	s.ideaTags[idea.ID] = slices.Clone(tags)
	if idea.ID >= s.nextIdeaID {
		s.nextIdeaID = idea.ID + 1
	}
}

// DeleteIdea removes an idea along with its favorites and views.
func (s *Store) DeleteIdea(ideaID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.ideas, ideaID)
	delete(s.ideaTags, ideaID)
	for k := range s.favorites {
		if k.ideaID == ideaID {
			delete(s.favorites, k)
		}
	}
	s.views = slices.DeleteFunc(s.views, func(v view) bool { return v.ideaID == ideaID })
}

// Idea returns the stored idea, for inspection.
func (s *Store) Idea(ideaID int64) (domain.Idea, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idea, ok := s.ideas[ideaID]
	return idea, ok
}

// GetUserIDBySubject provisions unknown subjects on first sight, since there is
// no separate account service in front of the memory store.
func (s *Store) GetUserIDBySubject(_ context.Context, subject string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.usersBySubject[subject]; ok {
		return id, nil
	}
	return s.addUserLocked(subject, subject, ""), nil
}

func (s *Store) GetHotnessInput(_ context.Context, ideaID int64) (domain.HotnessInput, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idea, ok := s.ideas[ideaID]
	if !ok {
		return domain.HotnessInput{}, fmt.Errorf("idea %d: %w", ideaID, domain.ErrNotFound)
	}
	return domain.HotnessInput{ID: idea.ID, CreatedAt: idea.CreatedAt, IsPublic: idea.IsPublic}, nil
}

func (s *Store) CountFavorites(_ context.Context, ideaIDs []int64) (map[int64]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[int64]int64, len(ideaIDs))
	for k := range s.favorites {
		if slices.Contains(ideaIDs, k.ideaID) {
			counts[k.ideaID]++
		}
	}
	return counts, nil
}

func (s *Store) CountViews(_ context.Context, ideaIDs []int64) (map[int64]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[int64]int64, len(ideaIDs))
	for _, v := range s.views {
		if slices.Contains(ideaIDs, v.ideaID) {
			counts[v.ideaID]++
		}
	}
	return counts, nil
}

func (s *Store) SetHotnessScore(_ context.Context, ideaID int64, score float64, updatedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idea, ok := s.ideas[ideaID]
	if !ok {
		return fmt.Errorf("idea %d: %w", ideaID, domain.ErrNotFound)
	}
	idea.HotnessScore = domain.RoundScore(score)
	idea.LastHotnessUpdate = &updatedAt
	s.ideas[ideaID] = idea
	return nil
}

func isHotnessCandidate(idea domain.Idea, staleBefore *time.Time) bool {
	if !idea.IsPublic && idea.HotnessScore == 0 {
		return false
	}
	if staleBefore == nil {
		return true
	}
	return idea.LastHotnessUpdate == nil || idea.LastHotnessUpdate.Before(*staleBefore)
}

func (s *Store) ListHotnessCandidates(
	_ context.Context, afterID int64, staleBefore *time.Time, limit int,
) ([]domain.HotnessInput, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var candidates []domain.HotnessInput
	for _, idea := range s.ideas {
		if idea.ID <= afterID || !isHotnessCandidate(idea, staleBefore) {
			continue
		}
		candidates = append(candidates, domain.HotnessInput{
			ID:        idea.ID,
			CreatedAt: idea.CreatedAt,
			IsPublic:  idea.IsPublic,
		})
	}

	slices.SortFunc(candidates, func(a, b domain.HotnessInput) int {
		return cmp.Compare(a.ID, b.ID)
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates, nil
}

func (s *Store) CountHotnessCandidates(_ context.Context, staleBefore *time.Time) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	for _, idea := range s.ideas {
		if isHotnessCandidate(idea, staleBefore) {
			count++
		}
	}
	return count, nil
}

func (s *Store) matchesSearch(idea domain.Idea, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	if strings.Contains(strings.ToLower(idea.Title), needle) ||
		strings.Contains(strings.ToLower(idea.Content), needle) ||
		strings.Contains(strings.ToLower(s.users[idea.UserID].name), needle) {
		return true
	}
	for _, tag := range s.ideaTags[idea.ID] {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

func (s *Store) ListHotIdeas(
	_ context.Context, filters domain.IdeaFilters, after *domain.FeedCursor, limit int,
) ([]domain.FeedIdea, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []domain.FeedIdea
	for _, idea := range s.ideas {
		if !idea.IsPublic || !s.matchesSearch(idea, filters.Search) {
			continue
		}

		u := s.users[idea.UserID]
		tags := slices.Clone(s.ideaTags[idea.ID])
		if tags == nil {
			tags = []string{}
		}
		slices.Sort(tags)

		item := domain.FeedIdea{
			ID:           idea.ID,
			Title:        idea.Title,
			Content:      idea.Content,
			Author:       domain.Author{ID: u.id, Name: u.name, Avatar: u.avatar},
			Tags:         tags,
			HotnessScore: idea.HotnessScore,
			CreatedAt:    idea.CreatedAt,
		}
		if after != nil && !item.Position().After(*after) {
			continue
		}
		result = append(result, item)
	}

	slices.SortFunc(result, func(a, b domain.FeedIdea) int {
		switch {
		case b.Position().After(a.Position()):
			return -1
		case a.Position().After(b.Position()):
			return 1
		default:
			return 0
		}
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (s *Store) ListFavoritedIdeaIDs(_ context.Context, userID int64, ideaIDs []int64) (map[int64]bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	favorited := make(map[int64]bool)
	for _, id := range ideaIDs {
		if _, ok := s.favorites[favoriteKey{userID: userID, ideaID: id}]; ok {
			favorited[id] = true
		}
	}
	return favorited, nil
}

func (s *Store) CreateIdea(_ context.Context, newIdea domain.NewIdea) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextIdeaID
	s.nextIdeaID++
	s.ideas[id] = domain.Idea{
		ID:        id,
		UserID:    newIdea.UserID,
		Title:     newIdea.Title,
		Content:   newIdea.Content,
		IsPublic:  newIdea.IsPublic,
		ShareLink: newIdea.ShareLink,
		CreatedAt: newIdea.CreatedAt,
	}
	s.ideaTags[id] = slices.Clone(newIdea.Tags)
	return id, nil
}

func (s *Store) GetIdea(_ context.Context, ideaID int64) (domain.Idea, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idea, ok := s.ideas[ideaID]
	if !ok {
		return domain.Idea{}, fmt.Errorf("idea %d: %w", ideaID, domain.ErrNotFound)
	}
	return idea, nil
}

func (s *Store) SetIdeaVisibility(_ context.Context, ideaID int64, isPublic bool, shareLink string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idea, ok := s.ideas[ideaID]
	if !ok {
		return fmt.Errorf("idea %d: %w", ideaID, domain.ErrNotFound)
	}
	idea.IsPublic = isPublic
	if idea.ShareLink == "" {
		idea.ShareLink = shareLink
	}
	s.ideas[ideaID] = idea
	return nil
}

func (s *Store) AddFavorite(_ context.Context, userID, ideaID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := favoriteKey{userID: userID, ideaID: ideaID}
	if _, ok := s.favorites[key]; ok {
		return false, nil
	}
	s.favorites[key] = time.Now()
	return true, nil
}

func (s *Store) RemoveFavorite(_ context.Context, userID, ideaID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := favoriteKey{userID: userID, ideaID: ideaID}
	if _, ok := s.favorites[key]; !ok {
		return false, nil
	}
	delete(s.favorites, key)
	return true, nil
}

func (s *Store) RecordView(_ context.Context, userID, ideaID int64, at time.Time, window time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	since := at.Add(-window)
	for _, v := range s.views {
		if v.userID == userID && v.ideaID == ideaID && !v.at.Before(since) {
			return false, nil
		}
	}
	s.views = append(s.views, view{userID: userID, ideaID: ideaID, at: at})
	return true, nil
}

func (s *Store) GetAuthorStats(_ context.Context, userID int64) (domain.AuthorStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var stats domain.AuthorStats
	public := map[int64]bool{}
	for _, idea := range s.ideas {
		if idea.UserID == userID && idea.IsPublic {
			public[idea.ID] = true
			stats.IdeasCount++
		}
	}
	for k := range s.favorites {
		if public[k.ideaID] {
			stats.TotalFavorites++
		}
	}
	for _, v := range s.views {
		if public[v.ideaID] {
			stats.TotalViews++
		}
	}
	return stats, nil
}

func (s *Store) ListAuthorTopIdeas(_ context.Context, userID int64, limit int) ([]domain.TopIdea, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var ideas []domain.Idea
	for _, idea := range s.ideas {
		if idea.UserID == userID && idea.IsPublic {
			ideas = append(ideas, idea)
		}
	}
	slices.SortFunc(ideas, func(a, b domain.Idea) int {
		if a.HotnessScore != b.HotnessScore {
			if a.HotnessScore > b.HotnessScore {
				return -1
			}
			return 1
		}
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if len(ideas) > limit {
		ideas = ideas[:limit]
	}

	top := make([]domain.TopIdea, 0, len(ideas))
	for _, idea := range ideas {
		top = append(top, domain.TopIdea{
			ID:           idea.ID,
			Title:        idea.Title,
			Content:      idea.Content,
			ShareLink:    idea.ShareLink,
			HotnessScore: idea.HotnessScore,
			CreatedAt:    idea.CreatedAt,
		})
	}
	return top, nil
}

func (s *Store) ListUserIdeas(_ context.Context, userID int64, offset, limit int) ([]domain.OwnIdea, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var ideas []domain.Idea
	for _, idea := range s.ideas {
		if idea.UserID == userID {
			ideas = append(ideas, idea)
		}
	}
	slices.SortFunc(ideas, func(a, b domain.Idea) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	ideas = ideas[min(offset, len(ideas)):]
	if len(ideas) > limit {
		ideas = ideas[:limit]
	}

	own := make([]domain.OwnIdea, 0, len(ideas))
	for _, idea := range ideas {
		tags := slices.Clone(s.ideaTags[idea.ID])
		if tags == nil {
			tags = []string{}
		}
		slices.Sort(tags)

		own = append(own, domain.OwnIdea{
			ID:           idea.ID,
			Title:        idea.Title,
			Content:      idea.Content,
			IsPublic:     idea.IsPublic,
			ShareLink:    idea.ShareLink,
			Tags:         tags,
			HotnessScore: idea.HotnessScore,
			CreatedAt:    idea.CreatedAt,
		})
	}
	return own, nil
}

func (s *Store) ListViewHistory(_ context.Context, userID int64, limit int) ([]domain.ViewedIdea, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var history []domain.ViewedIdea
	for _, v := range s.views {
		if v.userID != userID {
			continue
		}
		history = append(history, domain.ViewedIdea{
			IdeaID:   v.ideaID,
			Title:    s.ideas[v.ideaID].Title,
			ViewedAt: v.at,
		})
	}
	slices.SortStableFunc(history, func(a, b domain.ViewedIdea) int {
		return b.ViewedAt.Compare(a.ViewedAt)
	})
	if len(history) > limit {
		history = history[:limit]
	}
	return history, nil
}
