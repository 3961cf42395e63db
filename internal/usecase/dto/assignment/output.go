package assignmentdto

import (
	"time"

	"github.com/prospectops/zone-assignment-service/internal/domain"
)

type AssignmentOutput struct {
	ID             string
	ZoneID         string
	AssigneeType   string
	AssigneeID     string
	AssignedByID   string
	AssignedByName string
	StartAt        time.Time
	EndAt          time.Time
	CreatedAt      time.Time
	Status         string
}

type AssignmentSummary struct {
	Total   int
	Active  int
	Future  int
	Expired int
}

type AssignmentListOutput struct {
	Active  []*AssignmentOutput
	Future  []*AssignmentOutput
	Expired []*AssignmentOutput
	Summary AssignmentSummary
}

func ToAssignmentOutput(record *domain.ZoneAssignment, now time.Time) *AssignmentOutput {
	return &AssignmentOutput{
		ID:             record.ID,
		ZoneID:         record.ZoneID,
		AssigneeType:   string(record.AssigneeType),
		AssigneeID:     record.AssigneeID,
		AssignedByID:   record.AssignedByID,
		AssignedByName: record.AssignedByName,
		StartAt:        record.StartAt,
		EndAt:          record.EndAt,
		CreatedAt:      record.CreatedAt,
		Status:         string(record.StatusAt(now)),
	}
}
