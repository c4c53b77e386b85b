package domain

import "time"

// DateRange is an inclusive [Start, End] span derived from item dates.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// RoadmapEntry is one board's derived range on the workspace roadmap.
// Boards without any dated item contribute no entry.
type RoadmapEntry struct {
	BoardID   string    `json:"boardID"`
	Name      string    `json:"name"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// ItemDates is the projection the roadmap aggregator reads: nothing but
// the three candidate timestamps of an item.
type ItemDates struct {
	StartDate   *time.Time
	DueDate     *time.Time
	CompletedAt *time.Time
}
