package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/planlane/task_board_app/internal/core/domain"
	portsrepo "github.com/planlane/task_board_app/internal/core/ports/repositories"
	portssvc "github.com/planlane/task_board_app/internal/core/ports/services"
	"github.com/planlane/task_board_app/internal/dto"
)

// GroupService handles business logic related to groups within a board.
type GroupService struct {
	BaseService
	groupRepo portsrepo.GroupRepositoryFacade
	access    portssvc.AccessSvcFacade
}

// NewGroupService creates a new GroupService.
func NewGroupService(gr portsrepo.GroupRepositoryFacade, access portssvc.AccessSvcFacade) portssvc.GroupSvcFacade {
	return &GroupService{
		groupRepo: gr,
		access:    access,
	}
}

var _ portssvc.GroupSvcFacade = (*GroupService)(nil)

// CreateGroup appends a group to the end of the board's ordering.
func (s *GroupService) CreateGroup(ctx context.Context, actorID string, req dto.CreateGroupRequest) (*domain.Group, error) {
	if err := s.access.RequireAccess(ctx, actorID, domain.EntityRef{Kind: domain.KindBoard, ID: req.BoardID}); err != nil {
		return nil, err
	}

	position, err := nextPosition(ctx, req.BoardID, s.groupRepo.MaxPosition)
	if err != nil {
		return nil, fmt.Errorf("failed to compute group position: %w", err)
	}

	now := time.Now()
	group := domain.Group{
		GroupID:  uuid.NewString(),
		BoardID:  req.BoardID,
		Name:     req.Name,
		Color:    req.Color,
		Position: position,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.groupRepo.SaveGroup(ctx, group); err != nil {
		s.LogError(ctx, err, "Failed to save group", slog.String("board_id", req.BoardID))
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	s.LogInfo(ctx, "Group created", slog.String("group_id", group.GroupID), slog.String("board_id", req.BoardID))
	return &group, nil
}

// UpdateGroup applies partial updates to name and color.
func (s *GroupService) UpdateGroup(ctx context.Context, actorID, groupID string, req dto.UpdateGroupRequest) (*domain.Group, error) {
	if err := s.access.RequireAccess(ctx, actorID, domain.EntityRef{Kind: domain.KindGroup, ID: groupID}); err != nil {
		return nil, err
	}

	group, err := s.groupRepo.FindGroupByID(ctx, groupID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		group.Name = *req.Name
	}
	if req.Color != nil {
		group.Color = *req.Color
	}
	group.LastUpdatedAt = time.Now()
	group.LastUpdatedBy = actorID

	if err := s.groupRepo.UpdateGroup(ctx, *group); err != nil {
		s.LogError(ctx, err, "Failed to update group", slog.String("group_id", groupID))
		return nil, fmt.Errorf("failed to update group: %w", err)
	}
	return group, nil
}

// DeleteGroup removes a group and its items.
func (s *GroupService) DeleteGroup(ctx context.Context, actorID, groupID string) error {
	if err := s.access.RequireAccess(ctx, actorID, domain.EntityRef{Kind: domain.KindGroup, ID: groupID}); err != nil {
		return err
	}
	if err := s.groupRepo.DeleteGroup(ctx, groupID); err != nil {
		s.LogError(ctx, err, "Failed to delete group", slog.String("group_id", groupID))
		return fmt.Errorf("failed to delete group: %w", err)
	}
	s.LogInfo(ctx, "Group deleted", slog.String("group_id", groupID))
	return nil
}

// ReorderGroup overwrites the group's position. Sibling positions are not
// renumbered; render order tie-breaks on (created_at, id).
func (s *GroupService) ReorderGroup(ctx context.Context, actorID, groupID string, newPosition int64) (*domain.Group, error) {
	if err := s.access.RequireAccess(ctx, actorID, domain.EntityRef{Kind: domain.KindGroup, ID: groupID}); err != nil {
		return nil, err
	}

	if err := s.groupRepo.UpdateGroupPosition(ctx, groupID, newPosition); err != nil {
		s.LogError(ctx, err, "Failed to reorder group", slog.String("group_id", groupID))
		return nil, fmt.Errorf("failed to reorder group: %w", err)
	}
	return s.groupRepo.FindGroupByID(ctx, groupID)
}
