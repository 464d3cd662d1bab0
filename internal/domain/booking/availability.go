package booking

import (
	"rentmarket/internal/domain/shared/daterange"

	"github.com/google/uuid"
)

// Snapshot is the minimal view of an existing booking needed for a
// conflict check. Fetched under transactional protection by the caller.
type Snapshot struct {
	ID        uuid.UUID
	DateRange daterange.DateRange
	Status    Status
}

// HasConflict reports whether the candidate range overlaps any booking
// that still blocks its dates. Cancelled and completed bookings never
// block. Order of the existing slice does not matter.
func HasConflict(candidate daterange.DateRange, existing []Snapshot) bool {
	for _, snap := range existing {
		if !snap.Status.Blocks() {
			continue
		}
		if candidate.Overlaps(snap.DateRange) {
			return true
		}
	}
	return false
}
