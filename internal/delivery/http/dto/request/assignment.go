package request

type AssignZoneRequest struct {
	AssigneeType string  `json:"assignee_type"`
	AssigneeID   string  `json:"assignee_id"`
	StartDate    *string `json:"start_date,omitempty"`
	DurationDays *int    `json:"duration_days,omitempty"`
	ActorID      string  `json:"actor_id"`
	ActorName    string  `json:"actor_name"`
}

type StopAssignmentRequest struct {
	ActorID string `json:"actor_id"`
}
