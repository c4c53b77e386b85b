package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemStatus is an open set of status literals. Two of them count as
// completion statuses; everything the lifecycle derives (archival,
// completion timestamp, retainer hours) keys off IsCompletion, not off a
// particular literal.
type ItemStatus string

const (
	StatusTodo       ItemStatus = "todo"
	StatusInProgress ItemStatus = "in_progress"
	StatusStuck      ItemStatus = "stuck"
	StatusDone       ItemStatus = "done"
	StatusComplete   ItemStatus = "complete" // legacy synonym of done, preserved verbatim
)

// IsCompletion reports whether the status archives the item.
func (s ItemStatus) IsCompletion() bool {
	return s == StatusDone || s == StatusComplete
}

// CompletionStatuses lists every literal treated as completed, for storage
// queries that must exclude finished items.
func CompletionStatuses() []string {
	return []string{string(StatusDone), string(StatusComplete)}
}

// ItemPriority is the closed priority scale.
type ItemPriority string

const (
	PriorityLow      ItemPriority = "low"
	PriorityMedium   ItemPriority = "medium"
	PriorityHigh     ItemPriority = "high"
	PriorityCritical ItemPriority = "critical"
)

// ValidPriority reports whether p is one of the known priority literals.
func ValidPriority(p ItemPriority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// Item is the atomic task unit.
//
// Lifecycle invariants: IsArchived and CompletedAt are derived from the
// status (set on completion, cleared on reopen). RetainerHours is set iff
// the owning board is a retainer board and the item is completed; it is
// cleared whenever the status moves away from completion.
type Item struct {
	ItemID        string           `json:"itemID"`
	GroupID       string           `json:"groupID"`
	Title         string           `json:"title"`
	Position      int64            `json:"position"`
	Status        ItemStatus       `json:"status"`
	Priority      ItemPriority     `json:"priority"`
	StartDate     *time.Time       `json:"startDate"`
	DueDate       *time.Time       `json:"dueDate"`
	CompletedAt   *time.Time       `json:"completedAt"`
	AssignedTo    *string          `json:"assignedTo"` // weak user reference, no ownership
	Description   string           `json:"description"`
	Notes         string           `json:"notes"`
	IsArchived    bool             `json:"isArchived"`
	RetainerHours *decimal.Decimal `json:"retainerHours"`
	AuditFields
}

// ChecklistItem is a single checklist entry under an item.
type ChecklistItem struct {
	ChecklistItemID string           `json:"checklistItemID"`
	ItemID          string           `json:"itemID"`
	Text            string           `json:"text"`
	Position        int64            `json:"position"`
	IsDone          bool             `json:"isDone"`
	Hours           *decimal.Decimal `json:"hours"`
	CreatedAt       time.Time        `json:"createdAt"`
}

// DueItem pairs an item with its board for the reminder sweep, which
// notifies outside of any board-scoped request.
type DueItem struct {
	Item    Item
	BoardID string
}

// Comment is authored by exactly one user; only the author may edit or
// delete it, even though every workspace member can read it.
type Comment struct {
	CommentID string    `json:"commentID"`
	ItemID    string    `json:"itemID"`
	UserID    string    `json:"userID"`
	UserName  string    `json:"userName,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
