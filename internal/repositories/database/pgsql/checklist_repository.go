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

type PgxChecklistRepository struct {
	BaseRepository
}

// newPgxChecklistRepository creates a new repository for checklist data.
func newPgxChecklistRepository(pool *pgxpool.Pool) portsrepo.ChecklistRepositoryFacade {
	return &PgxChecklistRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ChecklistRepositoryFacade = (*PgxChecklistRepository)(nil)

var FULL_CHECKLIST_SELECT_QUERY = `
SELECT
	c.checklist_item_id, c.item_id, c.text, c.position, c.is_done, c.hours, c.created_at
FROM checklist_items c
`

func (r *PgxChecklistRepository) getEntries(ctx context.Context, filterQuery string, args ...any) ([]domain.ChecklistItem, error) {
	query := FULL_CHECKLIST_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query checklist items", err)
	}
	defer rows.Close()
	entries, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.ChecklistItem])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.ChecklistItem{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect checklist rows", err)
	}
	return entries, nil
}

func (r *PgxChecklistRepository) SaveChecklistItem(ctx context.Context, entry domain.ChecklistItem) error {
	query := `
		INSERT INTO checklist_items (checklist_item_id, item_id, text, position, is_done, hours, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		entry.ChecklistItemID,
		entry.ItemID,
		entry.Text,
		entry.Position,
		entry.IsDone,
		entry.Hours,
		entry.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.NewConflictError("checklist item ID " + entry.ChecklistItemID + " already exists")
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewValidationFailedError("item does not exist")
			}
		}
		return apperrors.NewAppError(500, "failed to save checklist item "+entry.ChecklistItemID, err)
	}
	return nil
}

func (r *PgxChecklistRepository) FindChecklistItemByID(ctx context.Context, checklistItemID string) (*domain.ChecklistItem, error) {
	entries, err := r.getEntries(ctx, `WHERE c.checklist_item_id = $1`, checklistItemID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &entries[0], nil
}

func (r *PgxChecklistRepository) ListByItemID(ctx context.Context, itemID string) ([]domain.ChecklistItem, error) {
	return r.getEntries(ctx, `WHERE c.item_id = $1 ORDER BY c.position ASC, c.created_at ASC, c.checklist_item_id ASC`, itemID)
}

func (r *PgxChecklistRepository) UpdateChecklistItem(ctx context.Context, entry domain.ChecklistItem) error {
	query := `
		UPDATE checklist_items
		SET text = $2, is_done = $3, hours = $4
		WHERE checklist_item_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		entry.ChecklistItemID,
		entry.Text,
		entry.IsDone,
		entry.Hours,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update checklist item "+entry.ChecklistItemID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxChecklistRepository) DeleteChecklistItem(ctx context.Context, checklistItemID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM checklist_items WHERE checklist_item_id = $1;`, checklistItemID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete checklist item "+checklistItemID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxChecklistRepository) MaxPosition(ctx context.Context, itemID string) (int64, error) {
	var max int64
	err := r.Pool.QueryRow(ctx,
		`SELECT COALESCE(MAX(position), 0) FROM checklist_items WHERE item_id = $1;`, itemID,
	).Scan(&max)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to read checklist positions for item "+itemID, err)
	}
	return max, nil
}

func (r *PgxChecklistRepository) ItemIDOf(ctx context.Context, checklistItemID string) (string, error) {
	var itemID string
	err := r.Pool.QueryRow(ctx, `SELECT item_id FROM checklist_items WHERE checklist_item_id = $1;`, checklistItemID).Scan(&itemID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", apperrors.NewAppError(500, "failed to resolve item of checklist item "+checklistItemID, err)
	}
	return itemID, nil
}
