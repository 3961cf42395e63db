package kafka

import "time"

const (
	EventAssignmentCreated = "assignment.created"
	EventAssignmentStopped = "assignment.stopped"
)

// AssignmentEvent feeds the statistics/reporting pipeline. The event
// carries the resolved commercial set so consumers do not have to
// re-walk the hierarchy.
type AssignmentEvent struct {
	EventType     string    `json:"event_type"`
	AssignmentID  string    `json:"assignment_id"`
	ZoneID        string    `json:"zone_id"`
	AssigneeType  string    `json:"assignee_type"`
	AssigneeID    string    `json:"assignee_id"`
	CommercialIDs []string  `json:"commercial_ids"`
	StartAt       time.Time `json:"start_at"`
	EndAt         time.Time `json:"end_at"`
}
