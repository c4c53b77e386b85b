package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/planlane/task_board_app/internal/apperrors"
	"github.com/planlane/task_board_app/internal/core/domain"
	portsrepo "github.com/planlane/task_board_app/internal/core/ports/repositories"
)

type PgxCommentRepository struct {
	BaseRepository
}

// newPgxCommentRepository creates a new repository for comment data.
func newPgxCommentRepository(pool *pgxpool.Pool) portsrepo.CommentRepositoryFacade {
	return &PgxCommentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CommentRepositoryFacade = (*PgxCommentRepository)(nil)

var FULL_COMMENT_SELECT_QUERY = `
SELECT
	c.comment_id, c.item_id, c.user_id, u.name AS user_name,
	c.content, c.created_at, c.updated_at
FROM comments c
JOIN users u ON u.user_id = c.user_id
`

func (r *PgxCommentRepository) getComments(ctx context.Context, filterQuery string, args ...any) ([]domain.Comment, error) {
	query := FULL_COMMENT_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query comments", err)
	}
	defer rows.Close()
	comments, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Comment])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Comment{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect comment rows", err)
	}
	return comments, nil
}

func (r *PgxCommentRepository) SaveComment(ctx context.Context, comment domain.Comment) error {
	query := `
		INSERT INTO comments (comment_id, item_id, user_id, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		comment.CommentID,
		comment.ItemID,
		comment.UserID,
		comment.Content,
		comment.CreatedAt,
		comment.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.NewConflictError("comment ID " + comment.CommentID + " already exists")
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewValidationFailedError("item or user does not exist")
			}
		}
		return apperrors.NewAppError(500, "failed to save comment "+comment.CommentID, err)
	}
	return nil
}

func (r *PgxCommentRepository) FindCommentByID(ctx context.Context, commentID string) (*domain.Comment, error) {
	comments, err := r.getComments(ctx, `WHERE c.comment_id = $1`, commentID)
	if err != nil {
		return nil, err
	}
	if len(comments) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &comments[0], nil
}

func (r *PgxCommentRepository) ListByItemID(ctx context.Context, itemID string) ([]domain.Comment, error) {
	return r.getComments(ctx, `WHERE c.item_id = $1 ORDER BY c.created_at ASC`, itemID)
}

func (r *PgxCommentRepository) UpdateComment(ctx context.Context, comment domain.Comment) error {
	query := `
		UPDATE comments
		SET content = $2, updated_at = $3
		WHERE comment_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		comment.CommentID,
		comment.Content,
		comment.UpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update comment "+comment.CommentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCommentRepository) DeleteComment(ctx context.Context, commentID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM comments WHERE comment_id = $1;`, commentID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete comment "+commentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCommentRepository) ItemIDOf(ctx context.Context, commentID string) (string, error) {
	var itemID string
	err := r.Pool.QueryRow(ctx, `SELECT item_id FROM comments WHERE comment_id = $1;`, commentID).Scan(&itemID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", apperrors.NewAppError(500, "failed to resolve item of comment "+commentID, err)
	}
	return itemID, nil
}
