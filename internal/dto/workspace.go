package dto

import (
	"time"

	"github.com/planlane/task_board_app/internal/core/domain"
)

// --- Workspace DTOs ---

// CreateWorkspaceRequest defines data for creating a new workspace.
type CreateWorkspaceRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// UpdateWorkspaceRequest defines owner-only workspace updates.
type UpdateWorkspaceRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// AddMemberRequest adds a user to a workspace by email. Role is advisory
// free text; it grants no extra permissions.
type AddMemberRequest struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role"`
}

// WorkspaceResponse defines data returned for a workspace.
type WorkspaceResponse struct {
	WorkspaceID   string    `json:"workspaceID"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	OwnerID       string    `json:"ownerID"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ToWorkspaceResponse converts domain.Workspace to DTO.
func ToWorkspaceResponse(w *domain.Workspace) WorkspaceResponse {
	return WorkspaceResponse{
		WorkspaceID:   w.WorkspaceID,
		Name:          w.Name,
		Description:   w.Description,
		OwnerID:       w.OwnerID,
		CreatedAt:     w.CreatedAt,
		CreatedBy:     w.CreatedBy,
		LastUpdatedAt: w.LastUpdatedAt,
		LastUpdatedBy: w.LastUpdatedBy,
	}
}

// ListWorkspacesResponse wraps a list of workspaces.
type ListWorkspacesResponse struct {
	Workspaces []WorkspaceResponse `json:"workspaces"`
}

// ToListWorkspacesResponse converts a slice of domain.Workspace to DTO.
func ToListWorkspacesResponse(ws []domain.Workspace) ListWorkspacesResponse {
	list := make([]WorkspaceResponse, len(ws))
	for i := range ws {
		list[i] = ToWorkspaceResponse(&ws[i])
	}
	return ListWorkspacesResponse{Workspaces: list}
}

// MemberResponse defines data returned for a workspace member.
type MemberResponse struct {
	MemberID  string    `json:"memberID"`
	UserID    string    `json:"userID"`
	UserName  string    `json:"userName"`
	UserEmail string    `json:"userEmail"`
	Role      string    `json:"role"`
	JoinedAt  time.Time `json:"joinedAt"`
}

// ToMemberResponse converts domain.WorkspaceMember to DTO.
func ToMemberResponse(m *domain.WorkspaceMember) MemberResponse {
	return MemberResponse{
		MemberID:  m.MemberID,
		UserID:    m.UserID,
		UserName:  m.UserName,
		UserEmail: m.UserEmail,
		Role:      m.Role,
		JoinedAt:  m.JoinedAt,
	}
}

// MembersResponse is the member list alongside the workspace owner.
type MembersResponse struct {
	Owner   UserResponse     `json:"owner"`
	Members []MemberResponse `json:"members"`
}
