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

type PgxWorkspaceRepository struct {
	BaseRepository
}

// newPgxWorkspaceRepository creates a new repository for workspace data.
func newPgxWorkspaceRepository(pool *pgxpool.Pool) portsrepo.WorkspaceRepositoryFacade {
	return &PgxWorkspaceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.WorkspaceRepositoryFacade = (*PgxWorkspaceRepository)(nil)

var FULL_WORKSPACE_SELECT_QUERY = `
SELECT
	w.workspace_id, w.name, w.description, w.owner_id,
	w.created_at, w.created_by, w.last_updated_at, w.last_updated_by
FROM workspaces w
`

func (r *PgxWorkspaceRepository) getWorkspaces(ctx context.Context, filterQuery string, args ...any) ([]domain.Workspace, error) {
	query := FULL_WORKSPACE_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query workspaces", err)
	}
	defer rows.Close()
	workspaces, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Workspace])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Workspace{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect workspace rows", err)
	}
	return workspaces, nil
}

func (r *PgxWorkspaceRepository) SaveWorkspace(ctx context.Context, workspace domain.Workspace) error {
	query := `
		INSERT INTO workspaces (
			workspace_id, name, description, owner_id,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		workspace.WorkspaceID,
		workspace.Name,
		workspace.Description,
		workspace.OwnerID,
		workspace.CreatedAt,
		workspace.CreatedBy,
		workspace.LastUpdatedAt,
		workspace.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.NewConflictError("workspace ID " + workspace.WorkspaceID + " already exists")
		}
		return apperrors.NewAppError(500, "failed to save workspace "+workspace.WorkspaceID, err)
	}
	return nil
}

func (r *PgxWorkspaceRepository) FindWorkspaceByID(ctx context.Context, workspaceID string) (*domain.Workspace, error) {
	workspaces, err := r.getWorkspaces(ctx, `WHERE w.workspace_id = $1`, workspaceID)
	if err != nil {
		return nil, err
	}
	if len(workspaces) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &workspaces[0], nil
}

func (r *PgxWorkspaceRepository) ListWorkspacesByUserID(ctx context.Context, userID string) ([]domain.Workspace, error) {
	filter := `
		WHERE w.owner_id = $1
		   OR EXISTS (
			SELECT 1 FROM workspace_members m
			WHERE m.workspace_id = w.workspace_id AND m.user_id = $1
		   )
		ORDER BY w.created_at DESC
	`
	return r.getWorkspaces(ctx, filter, userID)
}

func (r *PgxWorkspaceRepository) UpdateWorkspace(ctx context.Context, workspace domain.Workspace) error {
	query := `
		UPDATE workspaces
		SET name = $2, description = $3, last_updated_at = $4, last_updated_by = $5
		WHERE workspace_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		workspace.WorkspaceID,
		workspace.Name,
		workspace.Description,
		workspace.LastUpdatedAt,
		workspace.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update workspace "+workspace.WorkspaceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteWorkspace removes the workspace row; boards, groups, items,
// comments, checklists, members and activity go with it via ON DELETE
// CASCADE.
func (r *PgxWorkspaceRepository) DeleteWorkspace(ctx context.Context, workspaceID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM workspaces WHERE workspace_id = $1;`, workspaceID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete workspace "+workspaceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

var FULL_MEMBER_SELECT_QUERY = `
SELECT
	m.member_id, m.workspace_id, m.user_id, u.name AS user_name, u.email AS user_email,
	m.role, m.joined_at
FROM workspace_members m
JOIN users u ON u.user_id = m.user_id
`

func (r *PgxWorkspaceRepository) getMembers(ctx context.Context, filterQuery string, args ...any) ([]domain.WorkspaceMember, error) {
	query := FULL_MEMBER_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query workspace members", err)
	}
	defer rows.Close()
	members, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.WorkspaceMember])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.WorkspaceMember{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect member rows", err)
	}
	return members, nil
}

func (r *PgxWorkspaceRepository) AddMember(ctx context.Context, member domain.WorkspaceMember) error {
	query := `
		INSERT INTO workspace_members (member_id, workspace_id, user_id, role, joined_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query,
		member.MemberID,
		member.WorkspaceID,
		member.UserID,
		member.Role,
		member.JoinedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation on (workspace_id, user_id)
				return apperrors.ErrDuplicate
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewValidationFailedError("workspace or user does not exist")
			}
		}
		return apperrors.NewAppError(500, "failed to add member to workspace "+member.WorkspaceID, err)
	}
	return nil
}

func (r *PgxWorkspaceRepository) FindMember(ctx context.Context, workspaceID, userID string) (*domain.WorkspaceMember, error) {
	members, err := r.getMembers(ctx, `WHERE m.workspace_id = $1 AND m.user_id = $2`, workspaceID, userID)
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &members[0], nil
}

func (r *PgxWorkspaceRepository) ListMembers(ctx context.Context, workspaceID string) ([]domain.WorkspaceMember, error) {
	return r.getMembers(ctx, `WHERE m.workspace_id = $1 ORDER BY m.joined_at ASC`, workspaceID)
}

func (r *PgxWorkspaceRepository) RemoveMember(ctx context.Context, workspaceID, memberID string) error {
	tag, err := r.Pool.Exec(ctx,
		`DELETE FROM workspace_members WHERE workspace_id = $1 AND member_id = $2;`,
		workspaceID, memberID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to remove member "+memberID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
