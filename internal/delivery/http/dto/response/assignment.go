package response

import (
	"time"

	assignmentdto "github.com/prospectops/zone-assignment-service/internal/usecase/dto/assignment"
)

type AssignmentResponse struct {
	ID             string    `json:"id"`
	ZoneID         string    `json:"zone_id"`
	AssigneeType   string    `json:"assignee_type"`
	AssigneeID     string    `json:"assignee_id"`
	AssignedByID   string    `json:"assigned_by_id"`
	AssignedByName string    `json:"assigned_by_name"`
	StartAt        time.Time `json:"start_at"`
	EndAt          time.Time `json:"end_at"`
	CreatedAt      time.Time `json:"created_at"`
	Status         string    `json:"status"`
}

type AssignmentSummaryResponse struct {
	Total   int `json:"total"`
	Active  int `json:"active"`
	Future  int `json:"future"`
	Expired int `json:"expired"`
}

type AssignmentListResponse struct {
	Active  []AssignmentResponse      `json:"active"`
	Future  []AssignmentResponse      `json:"future"`
	Expired []AssignmentResponse      `json:"expired"`
	Summary AssignmentSummaryResponse `json:"summary"`
}

func ToAssignmentResponse(output *assignmentdto.AssignmentOutput) AssignmentResponse {
	return AssignmentResponse{
		ID:             output.ID,
		ZoneID:         output.ZoneID,
		AssigneeType:   output.AssigneeType,
		AssigneeID:     output.AssigneeID,
		AssignedByID:   output.AssignedByID,
		AssignedByName: output.AssignedByName,
		StartAt:        output.StartAt,
		EndAt:          output.EndAt,
		CreatedAt:      output.CreatedAt,
		Status:         output.Status,
	}
}

func ToAssignmentResponses(outputs []*assignmentdto.AssignmentOutput) []AssignmentResponse {
	responses := make([]AssignmentResponse, len(outputs))
	for i, output := range outputs {
		responses[i] = ToAssignmentResponse(output)
	}
	return responses
}
