package services

import "context"

// maxPositionFunc is the sibling-scoped max lookup every ordered repo
// exposes.
type maxPositionFunc func(ctx context.Context, parentID string) (int64, error)

// nextPosition computes the append position for a new sibling: one past
// the current maximum. Positions are never renumbered afterwards, so two
// concurrent appends may land on the same value; render order stays total
// because listings tie-break on (created_at, id).
func nextPosition(ctx context.Context, parentID string, max maxPositionFunc) (int64, error) {
	current, err := max(ctx, parentID)
	if err != nil {
		return 0, err
	}
	return current + 1, nil
}
