package domain

import "time"

// Zone is a named prospecting area. The assignee pointer fields are
// denormalized projections of the latest assignment record and are
// mutated only through the assignment write path.
type Zone struct {
	ID             string
	Name           string
	AssignmentType AssigneeType
	ManagerID      *string
	TeamID         *string
	CommercialID   *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ZoneProjection carries the denormalized zone fields a new assignment
// imposes. Only the pointer matching the assignee type is set.
type ZoneProjection struct {
	AssignmentType AssigneeType
	ManagerID      *string
	TeamID         *string
	CommercialID   *string
}

func ZoneProjectionFor(assigneeType AssigneeType, assigneeID string) *ZoneProjection {
	projection := &ZoneProjection{AssignmentType: assigneeType}
	switch assigneeType {
	case AssigneeManager:
		projection.ManagerID = &assigneeID
	case AssigneeTeam:
		projection.TeamID = &assigneeID
	case AssigneeCommercial:
		projection.CommercialID = &assigneeID
	}
	return projection
}

type ZoneRepository interface {
	CreateZone(zone *Zone) error
	UpdateZoneName(zoneID, name string) error
	GetZoneByID(zoneID string) (*Zone, error)
	GetZones() ([]*Zone, error)
}
