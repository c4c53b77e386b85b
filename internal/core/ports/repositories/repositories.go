package repositories

// RepositoryProvider bundles every repository implementation handed to the
// service container. Constructed once at startup from the shared pool.
type RepositoryProvider struct {
	UserRepo         UserRepositoryFacade
	WorkspaceRepo    WorkspaceRepositoryFacade
	BoardRepo        BoardRepositoryFacade
	GroupRepo        GroupRepositoryFacade
	ItemRepo         ItemRepositoryFacade
	ChecklistRepo    ChecklistRepositoryFacade
	CommentRepo      CommentRepositoryFacade
	ActivityRepo     ActivityRepositoryFacade
	NotificationRepo NotificationRepositoryFacade
}
