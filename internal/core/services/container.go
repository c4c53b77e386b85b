package services

import (
	"time"

	portsrepo "github.com/planlane/task_board_app/internal/core/ports/repositories"
	portssvc "github.com/planlane/task_board_app/internal/core/ports/services"
)

// NewServiceContainer wires every service with its dependencies. The
// access service is shared so each request walks one resolver; activity
// and notification are injected into the mutating services for their
// post-commit side effects.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, generator portssvc.BriefGenerator, reminderWindow time.Duration) *portssvc.ServiceContainer {
	access := NewAccessService(repos)
	activity := NewActivityService(repos.ActivityRepo, repos.UserRepo, access)
	notification := NewNotificationService(repos.NotificationRepo, repos.WorkspaceRepo, repos.BoardRepo, repos.ItemRepo, reminderWindow)

	return &portssvc.ServiceContainer{
		User:         NewUserService(repos.UserRepo),
		Access:       access,
		Workspace:    NewWorkspaceService(repos.WorkspaceRepo, repos.UserRepo, access),
		Board:        NewBoardService(repos.BoardRepo, repos.GroupRepo, repos.ItemRepo, access, activity),
		Group:        NewGroupService(repos.GroupRepo, access),
		Item:         NewItemService(repos.ItemRepo, repos.GroupRepo, repos.BoardRepo, access, activity, notification),
		Checklist:    NewChecklistService(repos.ChecklistRepo, access),
		Comment:      NewCommentService(repos.CommentRepo, repos.ItemRepo, repos.GroupRepo, repos.UserRepo, access, activity),
		Activity:     activity,
		Notification: notification,
		Roadmap:      NewRoadmapService(repos.BoardRepo, repos.ItemRepo, access),
		Brief:        NewBriefService(generator, repos.UserRepo, repos.ItemRepo, repos.ChecklistRepo, access),
	}
}
