package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jbeshir/idea-feed/internal/domain"
)

func (r *Repository) ListHotIdeas(
	ctx context.Context, filters domain.IdeaFilters, after *domain.FeedCursor, limit int,
) ([]domain.FeedIdea, error) {
	sb := buildHotIdeasQuery(filters, after, limit)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying hot ideas: %w", err)
	}
	defer func() { _ = rows.Close() }()

	ideas := make([]domain.FeedIdea, 0, limit)
	for rows.Next() {
		var (
			idea   domain.FeedIdea
			avatar sql.NullString
		)
		if err := rows.Scan(
			&idea.ID,
			&idea.Title,
			&idea.Content,
			&idea.HotnessScore,
			&idea.CreatedAt,
			&idea.Author.ID,
			&idea.Author.Name,
			&avatar,
		); err != nil {
			return nil, fmt.Errorf("scanning hot idea: %w", err)
		}
		idea.Author.Avatar = avatar.String
		idea.Tags = []string{}
		ideas = append(ideas, idea)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	if err := r.attachFeedTags(ctx, ideas); err != nil {
		return nil, err
	}

	return ideas, nil
}

func buildHotIdeasQuery(filters domain.IdeaFilters, after *domain.FeedCursor, limit int) *sqlbuilder.SelectBuilder {
	sb := sqlbuilder.Select(
		"i.id", "i.title", "i.content", "i.hotness_score", "i.created_at",
		"u.id", "u.name", "u.avatar",
	)
	sb.From("ideas i")
	sb.Join("users u", "u.id = i.user_id")

	conds := []string{sb.Equal("i.is_public", true)}
	if filters.Search != "" {
		conds = append(conds, buildSearchCondition(sb, filters.Search))
	}
	if after != nil {
		conds = append(conds, buildKeysetCondition(sb, *after))
	}
	sb.Where(conds...)

	sb.OrderBy("i.hotness_score DESC", "i.created_at DESC", "i.id DESC")
	sb.Limit(limit)
	return sb
}

// buildKeysetCondition selects rows strictly after the cursor in
// (hotness_score DESC, created_at DESC, id DESC) order.
func buildKeysetCondition(sb *sqlbuilder.SelectBuilder, after domain.FeedCursor) string {
	score := formatScore(after.HotnessScore)
	createdAt := after.CreatedAt.UTC()

	return sb.Or(
		sb.LessThan("i.hotness_score", score),
		sb.And(
			sb.Equal("i.hotness_score", score),
			sb.LessThan("i.created_at", createdAt),
		),
		sb.And(
			sb.Equal("i.hotness_score", score),
			sb.Equal("i.created_at", createdAt),
			sb.LessThan("i.id", after.ID),
		),
	)
}

// buildSearchCondition matches the term as a substring of the title, content,
// author name, or any tag name.
func buildSearchCondition(sb *sqlbuilder.SelectBuilder, term string) string {
	pattern := "%" + escapeLike(term) + "%"

	tagMatch := fmt.Sprintf(
		"EXISTS (SELECT 1 FROM idea_tags it JOIN tags t ON t.id = it.tag_id "+
			"WHERE it.idea_id = i.id AND t.name LIKE %s)",
		sb.Args.Add(pattern),
	)

	return sb.Or(
		sb.Like("i.title", pattern),
		sb.Like("i.content", pattern),
		sb.Like("u.name", pattern),
		tagMatch,
	)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func (r *Repository) attachFeedTags(ctx context.Context, ideas []domain.FeedIdea) error {
	if len(ideas) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(ideas))
	for _, idea := range ideas {
		ids = append(ids, idea.ID)
	}

	tags, err := r.loadIdeaTags(ctx, ids)
	if err != nil {
		return err
	}
	for i := range ideas {
		if t, ok := tags[ideas[i].ID]; ok {
			ideas[i].Tags = t
		}
	}
	return nil
}

// loadIdeaTags returns the sorted tag names of each idea that has any.
func (r *Repository) loadIdeaTags(ctx context.Context, ideaIDs []int64) (map[int64][]string, error) {
	sb := sqlbuilder.Select("it.idea_id", "t.name")
	sb.From("idea_tags it")
	sb.Join("tags t", "t.id = it.tag_id")
	sb.Where(sb.In("it.idea_id", int64sToArgs(ideaIDs)...))

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying idea tags: %w", err)
	}
	defer func() { _ = rows.Close() }()

	tags := make(map[int64][]string, len(ideaIDs))
	for rows.Next() {
		var (
			ideaID int64
			name   string
		)
		if err := rows.Scan(&ideaID, &name); err != nil {
			return nil, fmt.Errorf("scanning idea tag: %w", err)
		}
		tags[ideaID] = append(tags[ideaID], name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	for _, t := range tags {
		sort.Strings(t)
	}
	return tags, nil
}
