package domain

import "time"

// Workspace is the top-level tenancy unit and the root of the access chain.
// Every board, group, item, comment and checklist item resolves to exactly
// one workspace through its ownership chain.
type Workspace struct {
	WorkspaceID string `json:"workspaceID"`
	Name        string `json:"name"`
	Description string `json:"description"`
	OwnerID     string `json:"ownerID"` // exclusive owner, always has access
	AuditFields
}

// WorkspaceMember represents a user's membership in a workspace. The role is
// advisory free text; permissions only distinguish owner from member.
type WorkspaceMember struct {
	MemberID    string    `json:"memberID"`
	WorkspaceID string    `json:"workspaceID"`
	UserID      string    `json:"userID"`
	UserName    string    `json:"userName,omitempty"`
	UserEmail   string    `json:"userEmail,omitempty"`
	Role        string    `json:"role"`
	JoinedAt    time.Time `json:"joinedAt"`
}
