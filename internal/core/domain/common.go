package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID reference
}

// EntityKind names an entity type in the ownership chain. Access checks
// resolve any kind up to its owning workspace.
type EntityKind string

const (
	KindWorkspace     EntityKind = "workspace"
	KindBoard         EntityKind = "board"
	KindGroup         EntityKind = "group"
	KindItem          EntityKind = "item"
	KindComment       EntityKind = "comment"
	KindChecklistItem EntityKind = "checklist_item"
)

// EntityRef identifies a single entity for access resolution and activity
// recording.
type EntityRef struct {
	Kind EntityKind
	ID   string
}
