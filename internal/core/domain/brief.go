package domain

// Brief is the structured output of the text-generation collaborator for a
// free-text requirement. Summary, FriendlyExplanation and Role are
// mandatory; a response missing any of them is rejected as malformed.
type Brief struct {
	Title               string   `json:"title,omitempty"`
	Summary             string   `json:"summary"`
	FriendlyExplanation string   `json:"friendlyExplanation"`
	ImplementationNotes string   `json:"implementationNotes"`
	TaskType            string   `json:"taskType"`
	Role                string   `json:"role"`
	RoleReason          string   `json:"roleReason"`
	Steps               []string `json:"steps"`
	AcceptanceCriteria  []string `json:"acceptanceCriteria"`
	Questions           []string `json:"questions"`
}
