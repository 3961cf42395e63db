package assignmentdto

import "time"

// AssignZoneInput describes one assign call. ActingManagerID is empty
// for admin-scoped callers; when set, the scope guard is applied.
type AssignZoneInput struct {
	ZoneID          string
	AssigneeType    string
	AssigneeID      string
	StartDate       *time.Time
	DurationDays    *int
	ActorID         string
	ActorName       string
	ActingManagerID string
}

type StopAssignmentInput struct {
	AssignmentID    string
	ActorID         string
	ActingManagerID string
}
