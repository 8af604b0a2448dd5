package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jbeshir/idea-feed/internal/domain"
)

func (r *Repository) GetAuthorStats(ctx context.Context, userID int64) (domain.AuthorStats, error) {
	const query = `SELECT
		(SELECT COUNT(*) FROM views v JOIN ideas i ON i.id = v.idea_id WHERE i.user_id = ? AND i.is_public = TRUE),
		(SELECT COUNT(*) FROM favorites f JOIN ideas i ON i.id = f.idea_id WHERE i.user_id = ? AND i.is_public = TRUE),
		(SELECT COUNT(*) FROM ideas i WHERE i.user_id = ? AND i.is_public = TRUE)`

	var stats domain.AuthorStats
	err := r.db.QueryRowContext(ctx, query, userID, userID, userID).Scan(
		&stats.TotalViews,
		&stats.TotalFavorites,
		&stats.IdeasCount,
	)
	if err != nil {
		return domain.AuthorStats{}, fmt.Errorf("fetching author stats: %w", err)
	}
	return stats, nil
}

func (r *Repository) ListAuthorTopIdeas(ctx context.Context, userID int64, limit int) ([]domain.TopIdea, error) {
	sb := sqlbuilder.Select("id", "title", "content", "share_link", "hotness_score", "created_at")
	sb.From("ideas")
	sb.Where(sb.Equal("user_id", userID), sb.Equal("is_public", true))
	sb.OrderBy("hotness_score DESC", "created_at DESC", "id DESC")
	sb.Limit(limit)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying author top ideas: %w", err)
	}
	defer func() { _ = rows.Close() }()

	ideas := make([]domain.TopIdea, 0, limit)
	for rows.Next() {
		var (
			idea      domain.TopIdea
			shareLink sql.NullString
		)
		if err := rows.Scan(
			&idea.ID, &idea.Title, &idea.Content, &shareLink, &idea.HotnessScore, &idea.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning author top idea: %w", err)
		}
		idea.ShareLink = shareLink.String
		ideas = append(ideas, idea)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return ideas, nil
}
