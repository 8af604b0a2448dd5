package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jbeshir/idea-feed/internal/domain"
)

func (r *Repository) ListUserIdeas(ctx context.Context, userID int64, offset, limit int) ([]domain.OwnIdea, error) {
	sb := sqlbuilder.Select("id", "title", "content", "is_public", "share_link", "hotness_score", "created_at")
	sb.From("ideas")
	sb.Where(sb.Equal("user_id", userID))
	sb.OrderBy("created_at DESC", "id DESC")
	sb.Limit(limit)
	sb.Offset(offset)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying user ideas: %w", err)
	}
	defer func() { _ = rows.Close() }()

	ideas := make([]domain.OwnIdea, 0, limit)
	for rows.Next() {
		var (
			idea      domain.OwnIdea
			shareLink sql.NullString
		)
		if err := rows.Scan(
			&idea.ID, &idea.Title, &idea.Content, &idea.IsPublic, &shareLink, &idea.HotnessScore, &idea.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning user idea: %w", err)
		}
		idea.ShareLink = shareLink.String
		idea.Tags = []string{}
		ideas = append(ideas, idea)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	if len(ideas) == 0 {
		return ideas, nil
	}

	ids := make([]int64, 0, len(ideas))
	for _, idea := range ideas {
		ids = append(ids, idea.ID)
	}
	tags, err := r.loadIdeaTags(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range ideas {
		if t, ok := tags[ideas[i].ID]; ok {
			ideas[i].Tags = t
		}
	}

	return ideas, nil
}

func (r *Repository) ListViewHistory(ctx context.Context, userID int64, limit int) ([]domain.ViewedIdea, error) {
	sb := sqlbuilder.Select("v.idea_id", "i.title", "v.created_at")
	sb.From("views v")
	sb.Join("ideas i", "i.id = v.idea_id")
	sb.Where(sb.Equal("v.user_id", userID))
	sb.OrderBy("v.created_at DESC", "v.id DESC")
	sb.Limit(limit)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying view history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	history := make([]domain.ViewedIdea, 0, limit)
	for rows.Next() {
		var v domain.ViewedIdea
		if err := rows.Scan(&v.IdeaID, &v.Title, &v.ViewedAt); err != nil {
			return nil, fmt.Errorf("scanning view history: %w", err)
		}
		history = append(history, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return history, nil
}
