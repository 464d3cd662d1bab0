package booking

type Status string

const (
	StatusRequested Status = "REQUESTED"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusRequested, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is possible.
// COMPLETED is reached outside this core; it is accepted from storage but
// never produced by a transition here.
func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// Blocks reports whether a booking in this status holds its date range.
// Only non-terminal bookings block other bookings.
func (s Status) Blocks() bool {
	return s == StatusRequested || s == StatusConfirmed
}

// CanTransition is total over all (from, to) pairs so an unlisted pair is a
// definite rejection rather than a silent no-op.
func (s Status) CanTransition(to Status) bool {
	switch s {
	case StatusRequested:
		return to == StatusConfirmed || to == StatusCancelled
	case StatusConfirmed:
		return to == StatusCancelled
	case StatusCancelled, StatusCompleted:
		return false
	default:
		return false
	}
}
