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

type PgxActivityRepository struct {
	BaseRepository
}

// newPgxActivityRepository creates a new repository for activity data.
func newPgxActivityRepository(pool *pgxpool.Pool) portsrepo.ActivityRepositoryFacade {
	return &PgxActivityRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ActivityRepositoryFacade = (*PgxActivityRepository)(nil)

// SaveEntry appends one entry. The table is append-only; nothing updates
// or deletes rows except workspace cascade.
func (r *PgxActivityRepository) SaveEntry(ctx context.Context, entry domain.ActivityEntry) error {
	query := `
		INSERT INTO activity_log (
			activity_id, board_id, item_id, user_id, action,
			entity_type, entity_id, description, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		entry.ActivityID,
		entry.BoardID,
		entry.ItemID,
		entry.UserID,
		entry.Action,
		entry.EntityType,
		entry.EntityID,
		entry.Description,
		entry.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return apperrors.NewValidationFailedError("board does not exist")
		}
		return apperrors.NewAppError(500, "failed to save activity entry "+entry.ActivityID, err)
	}
	return nil
}

func (r *PgxActivityRepository) ListByBoardID(ctx context.Context, boardID string, limit int) ([]domain.ActivityEntry, error) {
	query := `
		SELECT
			a.activity_id, a.board_id, a.item_id, a.user_id, u.name AS user_name,
			a.action, a.entity_type, a.entity_id, a.description, a.created_at
		FROM activity_log a
		JOIN users u ON u.user_id = a.user_id
		WHERE a.board_id = $1
		ORDER BY a.created_at DESC
		LIMIT $2;
	`
	rows, err := r.Pool.Query(ctx, query, boardID, limit)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query activity entries", err)
	}
	defer rows.Close()
	entries, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.ActivityEntry])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.ActivityEntry{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect activity rows", err)
	}
	return entries, nil
}
