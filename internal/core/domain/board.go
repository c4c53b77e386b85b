package domain

// Board groups ordered buckets of items inside a workspace. A retainer
// board requires billable hours to be recorded when an item completes;
// flipping the flag later does not touch hours already recorded.
type Board struct {
	BoardID     string `json:"boardID"`
	WorkspaceID string `json:"workspaceID"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsRetainer  bool   `json:"isRetainer"`
	AuditFields
}

// Group is an ordered bucket of items within a board. Position defines
// render order among siblings; gaps and duplicates are tolerated, with
// creation order as the tie-break.
type Group struct {
	GroupID  string `json:"groupID"`
	BoardID  string `json:"boardID"`
	Name     string `json:"name"`
	Color    string `json:"color"`
	Position int64  `json:"position"`
	AuditFields
}

// GroupItems is a group with its items in render order.
type GroupItems struct {
	Group Group  `json:"group"`
	Items []Item `json:"items"`
}

// BoardDetail is the fully expanded read model of a board.
type BoardDetail struct {
	Board  Board        `json:"board"`
	Groups []GroupItems `json:"groups"`
}
