package services

import (
	"context"

	"github.com/planlane/task_board_app/internal/core/domain"
	"github.com/planlane/task_board_app/internal/dto"
)

// ItemSvcFacade is the item lifecycle engine: creation with appended
// position, partial updates with the completion/retainer transition rules,
// reorder/move, deletion and the cross-board "my items" view.
type ItemSvcFacade interface {
	CreateItem(ctx context.Context, actorID string, req dto.CreateItemRequest) (*domain.Item, error)
	GetItem(ctx context.Context, actorID, itemID string) (*domain.Item, error)
	// UpdateItem applies a partial update. Status changes run the lifecycle
	// transition (archival, completion timestamp, retainer-hours gate)
	// before anything is written; validation failures leave every field
	// untouched.
	UpdateItem(ctx context.Context, actorID, itemID string, req dto.UpdateItemRequest) (*domain.Item, error)
	DeleteItem(ctx context.Context, actorID, itemID string) error
	// ReorderItem overwrites position and optionally moves the item to a
	// new group in the same write.
	ReorderItem(ctx context.Context, actorID, itemID string, req dto.ReorderItemRequest) (*domain.Item, error)
	// ListMyItems returns the caller's unarchived assigned items across all
	// workspaces, due date ascending.
	ListMyItems(ctx context.Context, userID string) ([]domain.Item, error)
}

// ChecklistSvcFacade covers checklist entries under an item.
type ChecklistSvcFacade interface {
	ListChecklist(ctx context.Context, actorID, itemID string) ([]domain.ChecklistItem, error)
	CreateChecklistItem(ctx context.Context, actorID string, req dto.CreateChecklistItemRequest) (*domain.ChecklistItem, error)
	UpdateChecklistItem(ctx context.Context, actorID, checklistItemID string, req dto.UpdateChecklistItemRequest) (*domain.ChecklistItem, error)
	DeleteChecklistItem(ctx context.Context, actorID, checklistItemID string) error
}

// CommentSvcFacade covers comments. Reading and creating need workspace
// access; editing and deleting additionally require authorship.
type CommentSvcFacade interface {
	ListComments(ctx context.Context, actorID, itemID string) ([]domain.Comment, error)
	CreateComment(ctx context.Context, actorID string, req dto.CreateCommentRequest) (*domain.Comment, error)
	UpdateComment(ctx context.Context, actorID, commentID, content string) (*domain.Comment, error)
	DeleteComment(ctx context.Context, actorID, commentID string) error
}
