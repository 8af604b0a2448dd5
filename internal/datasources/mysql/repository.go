package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jbeshir/idea-feed/internal/datasources"
	"github.com/jbeshir/idea-feed/internal/domain"
)

var _ datasources.IdeaRepository = (*Repository)(nil)

type Repository struct {
	db *sql.DB
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetUserIDBySubject(ctx context.Context, subject string) (int64, error) {
	sb := sqlbuilder.Select("id")
	sb.From("users")
	sb.Where(sb.Equal("auth_subject", subject))

	query, args := sb.Build()
	var id int64
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("user with subject %q: %w", subject, domain.ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("fetching user by subject: %w", err)
	}
	return id, nil
}

func (r *Repository) CreateIdea(ctx context.Context, idea domain.NewIdea) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var shareLink sql.NullString
	if idea.ShareLink != "" {
		shareLink = sql.NullString{String: idea.ShareLink, Valid: true}
	}

	ib := sqlbuilder.InsertInto("ideas")
	ib.Cols("user_id", "title", "content", "is_public", "share_link", "created_at")
	ib.Values(idea.UserID, idea.Title, idea.Content, idea.IsPublic, shareLink, idea.CreatedAt)

	query, args := ib.Build()
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("inserting idea: %w", err)
	}
	ideaID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading inserted idea id: %w", err)
	}

	for _, tag := range idea.Tags {
		if err := attachTag(ctx, tx, ideaID, tag); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing transaction: %w", err)
	}

	return ideaID, nil
}

// attachTag upserts the tag by name and links it to the idea.
// LAST_INSERT_ID(id) makes the existing row's id available when the tag already exists.
func attachTag(ctx context.Context, tx *sql.Tx, ideaID int64, tag string) error {
	res, err := tx.ExecContext(ctx,
		"INSERT INTO tags (name) VALUES (?) ON DUPLICATE KEY UPDATE id = LAST_INSERT_ID(id)", tag)
	if err != nil {
		return fmt.Errorf("upserting tag %q: %w", tag, err)
	}
	tagID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading tag id for %q: %w", tag, err)
	}

	ib := sqlbuilder.InsertIgnoreInto("idea_tags")
	ib.Cols("idea_id", "tag_id")
	ib.Values(ideaID, tagID)

	query, args := ib.Build()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("linking tag %q: %w", tag, err)
	}
	return nil
}

func (r *Repository) GetIdea(ctx context.Context, ideaID int64) (domain.Idea, error) {
	sb := sqlbuilder.Select(
		"id", "user_id", "title", "content", "is_public", "share_link",
		"hotness_score", "last_hotness_update", "created_at",
	)
	sb.From("ideas")
	sb.Where(sb.Equal("id", ideaID))

	query, args := sb.Build()

	var (
		idea              domain.Idea
		shareLink         sql.NullString
		lastHotnessUpdate sql.NullTime
	)
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&idea.ID,
		&idea.UserID,
		&idea.Title,
		&idea.Content,
		&idea.IsPublic,
		&shareLink,
		&idea.HotnessScore,
		&lastHotnessUpdate,
		&idea.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Idea{}, fmt.Errorf("idea %d: %w", ideaID, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Idea{}, fmt.Errorf("fetching idea: %w", err)
	}

	idea.ShareLink = shareLink.String
	if lastHotnessUpdate.Valid {
		idea.LastHotnessUpdate = &lastHotnessUpdate.Time
	}
	return idea, nil
}

func (r *Repository) SetIdeaVisibility(ctx context.Context, ideaID int64, isPublic bool, shareLink string) error {
	var link sql.NullString
	if shareLink != "" {
		link = sql.NullString{String: shareLink, Valid: true}
	}

	ub := sqlbuilder.Update("ideas")
	ub.Set(
		ub.Assign("is_public", isPublic),
		"share_link = COALESCE(share_link, "+ub.Var(link)+")",
	)
	ub.Where(ub.Equal("id", ideaID))

	query, args := ub.Build()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating idea visibility: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		// No change or no row; distinguish with a lookup.
		if _, err := r.GetIdea(ctx, ideaID); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repository) AddFavorite(ctx context.Context, userID, ideaID int64) (bool, error) {
	ib := sqlbuilder.InsertIgnoreInto("favorites")
	ib.Cols("user_id", "idea_id", "created_at")
	ib.Values(userID, ideaID, time.Now().UTC())

	query, args := ib.Build()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("inserting favorite: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("reading affected rows: %w", err)
	}
	return n > 0, nil
}

func (r *Repository) RemoveFavorite(ctx context.Context, userID, ideaID int64) (bool, error) {
	del := sqlbuilder.DeleteFrom("favorites")
	del.Where(del.Equal("user_id", userID), del.Equal("idea_id", ideaID))

	query, args := del.Build()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("deleting favorite: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("reading affected rows: %w", err)
	}
	return n > 0, nil
}

func (r *Repository) ListFavoritedIdeaIDs(
	ctx context.Context, userID int64, ideaIDs []int64,
) (map[int64]bool, error) {
	favorited := make(map[int64]bool, len(ideaIDs))
	if len(ideaIDs) == 0 {
		return favorited, nil
	}

	sb := sqlbuilder.Select("idea_id")
	sb.From("favorites")
	sb.Where(sb.Equal("user_id", userID), sb.In("idea_id", int64sToArgs(ideaIDs)...))

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying favorited ideas: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning favorited idea: %w", err)
		}
		favorited[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return favorited, nil
}

func (r *Repository) RecordView(
	ctx context.Context, userID, ideaID int64, at time.Time, window time.Duration,
) (bool, error) {
	sb := sqlbuilder.Select("COUNT(*)")
	sb.From("views")
	sb.Where(
		sb.Equal("user_id", userID),
		sb.Equal("idea_id", ideaID),
		sb.GreaterEqualThan("created_at", at.Add(-window).UTC()),
	)

	query, args := sb.Build()
	var recent int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&recent); err != nil {
		return false, fmt.Errorf("checking recent views: %w", err)
	}
	if recent > 0 {
		return false, nil
	}

	ib := sqlbuilder.InsertInto("views")
	ib.Cols("user_id", "idea_id", "created_at")
	ib.Values(userID, ideaID, at.UTC())

	query, args = ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return false, fmt.Errorf("inserting view: %w", err)
	}
	return true, nil
}

func int64sToArgs(ids []int64) []interface{} {
	args := make([]interface{}, 0, len(ids))
	for _, id := range ids {
		args = append(args, id)
	}
	return args
}
