package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/planlane/task_board_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:         newPgxUserRepository(dbPool),
		WorkspaceRepo:    newPgxWorkspaceRepository(dbPool),
		BoardRepo:        newPgxBoardRepository(dbPool),
		GroupRepo:        newPgxGroupRepository(dbPool),
		ItemRepo:         newPgxItemRepository(dbPool),
		ChecklistRepo:    newPgxChecklistRepository(dbPool),
		CommentRepo:      newPgxCommentRepository(dbPool),
		ActivityRepo:     newPgxActivityRepository(dbPool),
		NotificationRepo: newPgxNotificationRepository(dbPool),
	}
}
