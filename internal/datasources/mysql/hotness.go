package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jbeshir/idea-feed/internal/domain"
)

// formatScore renders a score rounded to the two decimals of the DECIMAL(10,2)
// column. MySQL compares the column against this string argument as doubles, and
// both sides convert from the same two-decimal value, so keyset equality holds.
func formatScore(score float64) string {
	return strconv.FormatFloat(domain.RoundScore(score), 'f', 2, 64)
}

func (r *Repository) GetHotnessInput(ctx context.Context, ideaID int64) (domain.HotnessInput, error) {
	sb := sqlbuilder.Select("id", "created_at", "is_public")
	sb.From("ideas")
	sb.Where(sb.Equal("id", ideaID))

	query, args := sb.Build()

	var input domain.HotnessInput
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&input.ID, &input.CreatedAt, &input.IsPublic)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.HotnessInput{}, fmt.Errorf("idea %d: %w", ideaID, domain.ErrNotFound)
	}
	if err != nil {
		return domain.HotnessInput{}, fmt.Errorf("fetching idea hotness input: %w", err)
	}
	return input, nil
}

func (r *Repository) CountFavorites(ctx context.Context, ideaIDs []int64) (map[int64]int64, error) {
	counts, err := r.countPerIdea(ctx, "favorites", ideaIDs)
	if err != nil {
		return nil, fmt.Errorf("counting favorites: %w", err)
	}
	return counts, nil
}

func (r *Repository) CountViews(ctx context.Context, ideaIDs []int64) (map[int64]int64, error) {
	counts, err := r.countPerIdea(ctx, "views", ideaIDs)
	if err != nil {
		return nil, fmt.Errorf("counting views: %w", err)
	}
	return counts, nil
}

func (r *Repository) countPerIdea(ctx context.Context, table string, ideaIDs []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64, len(ideaIDs))
	if len(ideaIDs) == 0 {
		return counts, nil
	}

	sb := sqlbuilder.Select("idea_id", "COUNT(*)")
	sb.From(table)
	sb.Where(sb.In("idea_id", int64sToArgs(ideaIDs)...))
	sb.GroupBy("idea_id")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running grouped count: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var id, count int64
		if err := rows.Scan(&id, &count); err != nil {
			return nil, fmt.Errorf("scanning grouped count: %w", err)
		}
		counts[id] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return counts, nil
}

func (r *Repository) SetHotnessScore(ctx context.Context, ideaID int64, score float64, updatedAt time.Time) error {
	ub := sqlbuilder.Update("ideas")
	ub.Set(
		ub.Assign("hotness_score", formatScore(score)),
		ub.Assign("last_hotness_update", updatedAt.UTC()),
	)
	ub.Where(ub.Equal("id", ideaID))

	query, args := ub.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("updating hotness score for idea %d: %w", ideaID, err)
	}
	return nil
}

// hotnessCandidateConditions selects public ideas, plus private ideas still carrying a
// score so they get reset to zero. With staleBefore set, only ideas never scored or
// scored before it qualify.
func hotnessCandidateConditions(sb *sqlbuilder.SelectBuilder, staleBefore *time.Time) []string {
	conds := []string{
		sb.Or(
			sb.Equal("is_public", true),
			sb.NotEqual("hotness_score", "0.00"),
		),
	}
	if staleBefore != nil {
		conds = append(conds, sb.Or(
			sb.IsNull("last_hotness_update"),
			sb.LessThan("last_hotness_update", staleBefore.UTC()),
		))
	}
	return conds
}

func (r *Repository) ListHotnessCandidates(
	ctx context.Context, afterID int64, staleBefore *time.Time, limit int,
) ([]domain.HotnessInput, error) {
	sb := sqlbuilder.Select("id", "created_at", "is_public")
	sb.From("ideas")

	conds := hotnessCandidateConditions(sb, staleBefore)
	conds = append(conds, sb.GreaterThan("id", afterID))
	sb.Where(conds...)
	sb.OrderBy("id ASC")
	sb.Limit(limit)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying hotness candidates: %w", err)
	}
	defer func() { _ = rows.Close() }()

	candidates := make([]domain.HotnessInput, 0, limit)
	for rows.Next() {
		var c domain.HotnessInput
		if err := rows.Scan(&c.ID, &c.CreatedAt, &c.IsPublic); err != nil {
			return nil, fmt.Errorf("scanning hotness candidate: %w", err)
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return candidates, nil
}

func (r *Repository) CountHotnessCandidates(ctx context.Context, staleBefore *time.Time) (int64, error) {
	sb := sqlbuilder.Select("COUNT(*)")
	sb.From("ideas")
	sb.Where(hotnessCandidateConditions(sb, staleBefore)...)

	query, args := sb.Build()
	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting hotness candidates: %w", err)
	}
	return count, nil
}
