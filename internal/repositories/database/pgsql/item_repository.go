package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/planlane/task_board_app/internal/apperrors"
	"github.com/planlane/task_board_app/internal/core/domain"
	portsrepo "github.com/planlane/task_board_app/internal/core/ports/repositories"
)

type PgxItemRepository struct {
	BaseRepository
}

// newPgxItemRepository creates a new repository for item data.
func newPgxItemRepository(pool *pgxpool.Pool) portsrepo.ItemRepositoryFacade {
	return &PgxItemRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ItemRepositoryFacade = (*PgxItemRepository)(nil)

var FULL_ITEM_SELECT_QUERY = `
SELECT
	i.item_id, i.group_id, i.title, i.position, i.status, i.priority,
	i.start_date, i.due_date, i.completed_at, i.assigned_to,
	i.description, i.notes, i.is_archived, i.retainer_hours,
	i.created_at, i.created_by, i.last_updated_at, i.last_updated_by
FROM items i
`

func (r *PgxItemRepository) getItems(ctx context.Context, filterQuery string, args ...any) ([]domain.Item, error) {
	query := FULL_ITEM_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query items", err)
	}
	defer rows.Close()
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Item])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Item{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect item rows", err)
	}
	return items, nil
}

func (r *PgxItemRepository) SaveItem(ctx context.Context, item domain.Item) error {
	query := `
		INSERT INTO items (
			item_id, group_id, title, position, status, priority,
			start_date, due_date, completed_at, assigned_to,
			description, notes, is_archived, retainer_hours,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err := r.Pool.Exec(ctx, query,
		item.ItemID,
		item.GroupID,
		item.Title,
		item.Position,
		item.Status,
		item.Priority,
		item.StartDate,
		item.DueDate,
		item.CompletedAt,
		item.AssignedTo,
		item.Description,
		item.Notes,
		item.IsArchived,
		item.RetainerHours,
		item.CreatedAt,
		item.CreatedBy,
		item.LastUpdatedAt,
		item.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.NewConflictError("item ID " + item.ItemID + " already exists")
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewValidationFailedError("group does not exist")
			}
		}
		return apperrors.NewAppError(500, "failed to save item "+item.ItemID, err)
	}
	return nil
}

func (r *PgxItemRepository) FindItemByID(ctx context.Context, itemID string) (*domain.Item, error) {
	items, err := r.getItems(ctx, `WHERE i.item_id = $1`, itemID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &items[0], nil
}

func (r *PgxItemRepository) ListItemsByGroupIDs(ctx context.Context, groupIDs []string, filter portsrepo.ArchiveFilter) ([]domain.Item, error) {
	if len(groupIDs) == 0 {
		return []domain.Item{}, nil
	}
	filterQuery := `WHERE i.group_id = ANY($1)`
	switch filter {
	case portsrepo.ActiveItems:
		filterQuery += ` AND i.is_archived = FALSE`
	case portsrepo.ArchivedItems:
		filterQuery += ` AND i.is_archived = TRUE`
	}
	filterQuery += ` ORDER BY i.position ASC, i.created_at ASC, i.item_id ASC`
	return r.getItems(ctx, filterQuery, groupIDs)
}

// UpdateItem writes the whole row in one UPDATE so that status, archival,
// completion timestamp and retainer hours change together. Concurrent
// updates resolve last-write-wins at the row level.
func (r *PgxItemRepository) UpdateItem(ctx context.Context, item domain.Item) error {
	query := `
		UPDATE items
		SET title = $2, status = $3, priority = $4,
			start_date = $5, due_date = $6, completed_at = $7, assigned_to = $8,
			description = $9, notes = $10, is_archived = $11, retainer_hours = $12,
			last_updated_at = $13, last_updated_by = $14
		WHERE item_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		item.ItemID,
		item.Title,
		item.Status,
		item.Priority,
		item.StartDate,
		item.DueDate,
		item.CompletedAt,
		item.AssignedTo,
		item.Description,
		item.Notes,
		item.IsArchived,
		item.RetainerHours,
		item.LastUpdatedAt,
		item.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update item "+item.ItemID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// MoveItem updates group and position in one UPDATE; nil leaves the
// respective column unchanged.
func (r *PgxItemRepository) MoveItem(ctx context.Context, itemID string, newGroupID *string, position *int64) error {
	query := `
		UPDATE items
		SET group_id = COALESCE($2, group_id), position = COALESCE($3, position)
		WHERE item_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, itemID, newGroupID, position)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return apperrors.NewValidationFailedError("target group does not exist")
		}
		return apperrors.NewAppError(500, "failed to move item "+itemID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteItem removes the item row; comments and checklist entries cascade.
func (r *PgxItemRepository) DeleteItem(ctx context.Context, itemID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM items WHERE item_id = $1;`, itemID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete item "+itemID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxItemRepository) MaxPosition(ctx context.Context, groupID string) (int64, error) {
	var max int64
	err := r.Pool.QueryRow(ctx,
		`SELECT COALESCE(MAX(position), 0) FROM items WHERE group_id = $1;`, groupID,
	).Scan(&max)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to read item positions for group "+groupID, err)
	}
	return max, nil
}

func (r *PgxItemRepository) GroupIDOf(ctx context.Context, itemID string) (string, error) {
	var groupID string
	err := r.Pool.QueryRow(ctx, `SELECT group_id FROM items WHERE item_id = $1;`, itemID).Scan(&groupID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", apperrors.NewAppError(500, "failed to resolve group of item "+itemID, err)
	}
	return groupID, nil
}

func (r *PgxItemRepository) ListItemsAssignedTo(ctx context.Context, userID string) ([]domain.Item, error) {
	filter := `
		WHERE i.assigned_to = $1 AND i.is_archived = FALSE
		ORDER BY i.due_date ASC NULLS LAST, i.created_at DESC
	`
	return r.getItems(ctx, filter, userID)
}

// ListItemsDueBetween returns assigned, non-completed items due in
// [from, to] with their owning board, for the reminder sweep.
func (r *PgxItemRepository) ListItemsDueBetween(ctx context.Context, from, to time.Time) ([]domain.DueItem, error) {
	query := `
		SELECT
			i.item_id, i.group_id, i.title, i.position, i.status, i.priority,
			i.start_date, i.due_date, i.completed_at, i.assigned_to,
			i.description, i.notes, i.is_archived, i.retainer_hours,
			i.created_at, i.created_by, i.last_updated_at, i.last_updated_by,
			g.board_id
		FROM items i
		JOIN groups g ON g.group_id = i.group_id
		WHERE i.assigned_to IS NOT NULL
		  AND i.is_archived = FALSE
		  AND i.due_date BETWEEN $1 AND $2
		ORDER BY i.due_date ASC;
	`
	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query due items", err)
	}
	defer rows.Close()

	var dueItems []domain.DueItem
	for rows.Next() {
		var d domain.DueItem
		i := &d.Item
		err := rows.Scan(
			&i.ItemID, &i.GroupID, &i.Title, &i.Position, &i.Status, &i.Priority,
			&i.StartDate, &i.DueDate, &i.CompletedAt, &i.AssignedTo,
			&i.Description, &i.Notes, &i.IsArchived, &i.RetainerHours,
			&i.CreatedAt, &i.CreatedBy, &i.LastUpdatedAt, &i.LastUpdatedBy,
			&d.BoardID,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan due item row", err)
		}
		dueItems = append(dueItems, d)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read due item rows", err)
	}
	return dueItems, nil
}

// ListItemDatesByBoard projects the three date columns of every item on
// the board for roadmap aggregation.
func (r *PgxItemRepository) ListItemDatesByBoard(ctx context.Context, boardID string) ([]domain.ItemDates, error) {
	query := `
		SELECT i.start_date, i.due_date, i.completed_at
		FROM items i
		JOIN groups g ON g.group_id = i.group_id
		WHERE g.board_id = $1;
	`
	rows, err := r.Pool.Query(ctx, query, boardID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query item dates", err)
	}
	defer rows.Close()
	dates, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.ItemDates])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.ItemDates{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect item date rows", err)
	}
	return dates, nil
}
