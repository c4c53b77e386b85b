package dto

import (
	"time"

	"github.com/planlane/task_board_app/internal/core/domain"
)

// BoardRangeResponse is a board's derived [start, end] span.
type BoardRangeResponse struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// RoadmapEntryResponse is one board on the workspace roadmap.
type RoadmapEntryResponse struct {
	BoardID   string    `json:"boardID"`
	Name      string    `json:"name"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// ToRoadmapResponse converts roadmap entries to DTOs.
func ToRoadmapResponse(entries []domain.RoadmapEntry) []RoadmapEntryResponse {
	list := make([]RoadmapEntryResponse, len(entries))
	for i, e := range entries {
		list[i] = RoadmapEntryResponse{
			BoardID:   e.BoardID,
			Name:      e.Name,
			StartDate: e.StartDate,
			EndDate:   e.EndDate,
		}
	}
	return list
}
