package domain

import "time"

type AssigneeType string

const (
	AssigneeCommercial AssigneeType = "COMMERCIAL"
	AssigneeTeam       AssigneeType = "TEAM"
	AssigneeManager    AssigneeType = "MANAGER"
)

func (t AssigneeType) Valid() bool {
	switch t {
	case AssigneeCommercial, AssigneeTeam, AssigneeManager:
		return true
	}
	return false
}

type AssignmentStatus string

const (
	AssignmentFuture  AssignmentStatus = "FUTURE"
	AssignmentActive  AssignmentStatus = "ACTIVE"
	AssignmentExpired AssignmentStatus = "EXPIRED"
)

// ZoneAssignment is an append-only history fact: a zone was assigned
// to an assignee for a time window. Records are never deleted; stopping
// an assignment moves EndAt to the stop instant, and StartAt too when
// the window had not opened yet.
type ZoneAssignment struct {
	ID             string
	ZoneID         string
	AssigneeType   AssigneeType
	AssigneeID     string
	AssignedByID   string
	AssignedByName string
	StartAt        time.Time
	EndAt          time.Time
	CreatedAt      time.Time
}

// StatusAt classifies the record against the given instant. The status
// is computed, never stored: [StartAt, EndAt) active, before the window
// future, otherwise expired.
func (a *ZoneAssignment) StatusAt(now time.Time) AssignmentStatus {
	if now.Before(a.StartAt) {
		return AssignmentFuture
	}
	if now.Before(a.EndAt) {
		return AssignmentActive
	}
	return AssignmentExpired
}

// AssignmentWrite bundles everything a single assign call must persist
// atomically: the history record, the zone↔commercial link rows and the
// zone projection update. ReplaceCommercialIDs lists commercials whose
// stale links are deleted before the new rows go in; ZoneScoped limits
// that cleanup to the record's zone.
type AssignmentWrite struct {
	Record               *ZoneAssignment
	Links                []*ZoneCommercial
	ReplaceCommercialIDs []string
	ZoneScoped           bool
	Projection           *ZoneProjection
}

type AssignmentRepository interface {
	CreateAssignment(write *AssignmentWrite) error
	GetAssignmentByID(assignmentID string) (*ZoneAssignment, error)
	GetAssignments() ([]*ZoneAssignment, error)
	GetAssignmentsByZoneID(zoneID string) ([]*ZoneAssignment, error)
	StopAssignment(assignmentID, zoneID string, endedAt time.Time, commercialIDs []string, clearTeamPointer bool) error
	FindStartedAssignments(now time.Time, assigneeTypes []AssigneeType) ([]*ZoneAssignment, error)
	FindExpiredAssignments(now time.Time) ([]*ZoneAssignment, error)
}
