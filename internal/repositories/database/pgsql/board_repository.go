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

type PgxBoardRepository struct {
	BaseRepository
}

// newPgxBoardRepository creates a new repository for board data.
func newPgxBoardRepository(pool *pgxpool.Pool) portsrepo.BoardRepositoryFacade {
	return &PgxBoardRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.BoardRepositoryFacade = (*PgxBoardRepository)(nil)

var FULL_BOARD_SELECT_QUERY = `
SELECT
	b.board_id, b.workspace_id, b.name, b.description, b.is_retainer,
	b.created_at, b.created_by, b.last_updated_at, b.last_updated_by
FROM boards b
`

func (r *PgxBoardRepository) getBoards(ctx context.Context, filterQuery string, args ...any) ([]domain.Board, error) {
	query := FULL_BOARD_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query boards", err)
	}
	defer rows.Close()
	boards, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Board])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Board{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect board rows", err)
	}
	return boards, nil
}

func (r *PgxBoardRepository) SaveBoard(ctx context.Context, board domain.Board) error {
	query := `
		INSERT INTO boards (
			board_id, workspace_id, name, description, is_retainer,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		board.BoardID,
		board.WorkspaceID,
		board.Name,
		board.Description,
		board.IsRetainer,
		board.CreatedAt,
		board.CreatedBy,
		board.LastUpdatedAt,
		board.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.NewConflictError("board ID " + board.BoardID + " already exists")
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewValidationFailedError("workspace does not exist")
			}
		}
		return apperrors.NewAppError(500, "failed to save board "+board.BoardID, err)
	}
	return nil
}

func (r *PgxBoardRepository) FindBoardByID(ctx context.Context, boardID string) (*domain.Board, error) {
	boards, err := r.getBoards(ctx, `WHERE b.board_id = $1`, boardID)
	if err != nil {
		return nil, err
	}
	if len(boards) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &boards[0], nil
}

func (r *PgxBoardRepository) ListBoardsByWorkspaceID(ctx context.Context, workspaceID string) ([]domain.Board, error) {
	return r.getBoards(ctx, `WHERE b.workspace_id = $1 ORDER BY b.created_at ASC`, workspaceID)
}

func (r *PgxBoardRepository) UpdateBoard(ctx context.Context, board domain.Board) error {
	query := `
		UPDATE boards
		SET name = $2, description = $3, is_retainer = $4, last_updated_at = $5, last_updated_by = $6
		WHERE board_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		board.BoardID,
		board.Name,
		board.Description,
		board.IsRetainer,
		board.LastUpdatedAt,
		board.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update board "+board.BoardID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteBoard removes the board row; groups and items cascade.
func (r *PgxBoardRepository) DeleteBoard(ctx context.Context, boardID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM boards WHERE board_id = $1;`, boardID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete board "+boardID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxBoardRepository) WorkspaceIDOf(ctx context.Context, boardID string) (string, error) {
	var workspaceID string
	err := r.Pool.QueryRow(ctx, `SELECT workspace_id FROM boards WHERE board_id = $1;`, boardID).Scan(&workspaceID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", apperrors.NewAppError(500, "failed to resolve workspace of board "+boardID, err)
	}
	return workspaceID, nil
}
