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

type PgxGroupRepository struct {
	BaseRepository
}

// newPgxGroupRepository creates a new repository for group data.
func newPgxGroupRepository(pool *pgxpool.Pool) portsrepo.GroupRepositoryFacade {
	return &PgxGroupRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.GroupRepositoryFacade = (*PgxGroupRepository)(nil)

var FULL_GROUP_SELECT_QUERY = `
SELECT
	g.group_id, g.board_id, g.name, g.color, g.position,
	g.created_at, g.created_by, g.last_updated_at, g.last_updated_by
FROM groups g
`

func (r *PgxGroupRepository) getGroups(ctx context.Context, filterQuery string, args ...any) ([]domain.Group, error) {
	query := FULL_GROUP_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query groups", err)
	}
	defer rows.Close()
	groups, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Group])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Group{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect group rows", err)
	}
	return groups, nil
}

func (r *PgxGroupRepository) SaveGroup(ctx context.Context, group domain.Group) error {
	query := `
		INSERT INTO groups (
			group_id, board_id, name, color, position,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		group.GroupID,
		group.BoardID,
		group.Name,
		group.Color,
		group.Position,
		group.CreatedAt,
		group.CreatedBy,
		group.LastUpdatedAt,
		group.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.NewConflictError("group ID " + group.GroupID + " already exists")
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewValidationFailedError("board does not exist")
			}
		}
		return apperrors.NewAppError(500, "failed to save group "+group.GroupID, err)
	}
	return nil
}

func (r *PgxGroupRepository) FindGroupByID(ctx context.Context, groupID string) (*domain.Group, error) {
	groups, err := r.getGroups(ctx, `WHERE g.group_id = $1`, groupID)
	if err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &groups[0], nil
}

func (r *PgxGroupRepository) ListGroupsByBoardID(ctx context.Context, boardID string) ([]domain.Group, error) {
	return r.getGroups(ctx, `WHERE g.board_id = $1 ORDER BY g.position ASC, g.created_at ASC, g.group_id ASC`, boardID)
}

func (r *PgxGroupRepository) UpdateGroup(ctx context.Context, group domain.Group) error {
	query := `
		UPDATE groups
		SET name = $2, color = $3, last_updated_at = $4, last_updated_by = $5
		WHERE group_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		group.GroupID,
		group.Name,
		group.Color,
		group.LastUpdatedAt,
		group.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update group "+group.GroupID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxGroupRepository) UpdateGroupPosition(ctx context.Context, groupID string, position int64) error {
	tag, err := r.Pool.Exec(ctx, `UPDATE groups SET position = $2 WHERE group_id = $1;`, groupID, position)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update position of group "+groupID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteGroup removes the group row; items cascade.
func (r *PgxGroupRepository) DeleteGroup(ctx context.Context, groupID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM groups WHERE group_id = $1;`, groupID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete group "+groupID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxGroupRepository) MaxPosition(ctx context.Context, boardID string) (int64, error) {
	var max int64
	err := r.Pool.QueryRow(ctx,
		`SELECT COALESCE(MAX(position), 0) FROM groups WHERE board_id = $1;`, boardID,
	).Scan(&max)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to read group positions for board "+boardID, err)
	}
	return max, nil
}

func (r *PgxGroupRepository) BoardIDOf(ctx context.Context, groupID string) (string, error) {
	var boardID string
	err := r.Pool.QueryRow(ctx, `SELECT board_id FROM groups WHERE group_id = $1;`, groupID).Scan(&boardID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", apperrors.NewAppError(500, "failed to resolve board of group "+groupID, err)
	}
	return boardID, nil
}
