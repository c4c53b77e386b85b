package services

// ServiceContainer bundles every service facade for route registration.
// Built once at startup by services.NewServiceContainer.
type ServiceContainer struct {
	User         UserSvcFacade
	Access       AccessSvcFacade
	Workspace    WorkspaceSvcFacade
	Board        BoardSvcFacade
	Group        GroupSvcFacade
	Item         ItemSvcFacade
	Checklist    ChecklistSvcFacade
	Comment      CommentSvcFacade
	Activity     ActivitySvcFacade
	Notification NotificationSvcFacade
	Roadmap      RoadmapSvcFacade
	Brief        BriefSvcFacade
}
