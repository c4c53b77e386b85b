package domain

import "time"

// ActivityAction is the verb recorded in an activity entry.
type ActivityAction string

const (
	ActionCreated   ActivityAction = "created"
	ActionUpdated   ActivityAction = "updated"
	ActionCommented ActivityAction = "commented"
)

// ActivityEntry is one immutable audit record, always scoped to the board
// nearest the mutated entity. Entries are derived records: nothing reads
// them back to enforce an invariant, and normal operations never mutate or
// delete them.
type ActivityEntry struct {
	ActivityID  string         `json:"activityID"`
	BoardID     string         `json:"boardID"`
	ItemID      *string        `json:"itemID,omitempty"`
	UserID      string         `json:"userID"`
	UserName    string         `json:"userName,omitempty"`
	Action      ActivityAction `json:"action"`
	EntityType  EntityKind     `json:"entityType"`
	EntityID    string         `json:"entityID"`
	Description string         `json:"description"`
	CreatedAt   time.Time      `json:"createdAt"`
}
