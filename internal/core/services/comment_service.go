package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/planlane/task_board_app/internal/apperrors"
	"github.com/planlane/task_board_app/internal/core/domain"
	portsrepo "github.com/planlane/task_board_app/internal/core/ports/repositories"
	portssvc "github.com/planlane/task_board_app/internal/core/ports/services"
	"github.com/planlane/task_board_app/internal/dto"
)

// CommentService handles comments. Reading and creating require workspace
// access; editing and deleting additionally require authorship.
type CommentService struct {
	BaseService
	commentRepo portsrepo.CommentRepositoryFacade
	itemRepo    portsrepo.ItemRepositoryFacade
	groupRepo   portsrepo.GroupRepositoryFacade
	userRepo    portsrepo.UserRepositoryFacade
	access      portssvc.AccessSvcFacade
	activity    portssvc.ActivitySvcFacade
}

// NewCommentService creates a new CommentService.
func NewCommentService(cr portsrepo.CommentRepositoryFacade, ir portsrepo.ItemRepositoryFacade, gr portsrepo.GroupRepositoryFacade, ur portsrepo.UserRepositoryFacade, access portssvc.AccessSvcFacade, activity portssvc.ActivitySvcFacade) portssvc.CommentSvcFacade {
	return &CommentService{
		commentRepo: cr,
		itemRepo:    ir,
		groupRepo:   gr,
		userRepo:    ur,
		access:      access,
		activity:    activity,
	}
}

var _ portssvc.CommentSvcFacade = (*CommentService)(nil)

// ListComments returns an item's comments oldest first.
func (s *CommentService) ListComments(ctx context.Context, actorID, itemID string) ([]domain.Comment, error) {
	if err := s.access.RequireAccess(ctx, actorID, domain.EntityRef{Kind: domain.KindItem, ID: itemID}); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByItemID(ctx, itemID)
}

// CreateComment adds a comment authored by the actor and records an
// activity entry on the owning board.
func (s *CommentService) CreateComment(ctx context.Context, actorID string, req dto.CreateCommentRequest) (*domain.Comment, error) {
	if err := s.access.RequireAccess(ctx, actorID, domain.EntityRef{Kind: domain.KindItem, ID: req.ItemID}); err != nil {
		return nil, err
	}

	author, err := s.userRepo.FindUserByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	comment := domain.Comment{
		CommentID: uuid.NewString(),
		ItemID:    req.ItemID,
		UserID:    actorID,
		UserName:  author.Name,
		Content:   req.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.commentRepo.SaveComment(ctx, comment); err != nil {
		s.LogError(ctx, err, "Failed to save comment", slog.String("item_id", req.ItemID))
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	if boardID, err := s.boardIDOfItem(ctx, req.ItemID); err == nil {
		item, itemErr := s.itemRepo.FindItemByID(ctx, req.ItemID)
		description := "commented on an item"
		if itemErr == nil {
			description = fmt.Sprintf("commented on %q", item.Title)
		}
		if err := s.activity.Record(ctx, actorID, domain.ActionCommented, domain.KindComment, comment.CommentID,
			description, boardID, &comment.ItemID); err != nil {
			s.LogWarn(ctx, "Failed to record comment activity", slog.String("comment_id", comment.CommentID), slog.String("error", err.Error()))
		}
	}

	return &comment, nil
}

// UpdateComment replaces a comment's content. Author only.
func (s *CommentService) UpdateComment(ctx context.Context, actorID, commentID, content string) (*domain.Comment, error) {
	if err := s.access.RequireAccess(ctx, actorID, domain.EntityRef{Kind: domain.KindComment, ID: commentID}); err != nil {
		return nil, err
	}

	comment, err := s.commentRepo.FindCommentByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.UserID != actorID {
		return nil, apperrors.NewForbiddenError("only the comment author may edit it")
	}

	comment.Content = content
	comment.UpdatedAt = time.Now()

	if err := s.commentRepo.UpdateComment(ctx, *comment); err != nil {
		s.LogError(ctx, err, "Failed to update comment", slog.String("comment_id", commentID))
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}
	return comment, nil
}

// DeleteComment removes a comment. Author only.
func (s *CommentService) DeleteComment(ctx context.Context, actorID, commentID string) error {
	if err := s.access.RequireAccess(ctx, actorID, domain.EntityRef{Kind: domain.KindComment, ID: commentID}); err != nil {
		return err
	}

	comment, err := s.commentRepo.FindCommentByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.UserID != actorID {
		return apperrors.NewForbiddenError("only the comment author may delete it")
	}

	if err := s.commentRepo.DeleteComment(ctx, commentID); err != nil {
		s.LogError(ctx, err, "Failed to delete comment", slog.String("comment_id", commentID))
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}

func (s *CommentService) boardIDOfItem(ctx context.Context, itemID string) (string, error) {
	groupID, err := s.itemRepo.GroupIDOf(ctx, itemID)
	if err != nil {
		return "", err
	}
	return s.groupRepo.BoardIDOf(ctx, groupID)
}
