package response

import (
	"time"

	"github.com/prospectops/zone-assignment-service/internal/domain"
)

type ZoneResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	AssignmentType string    `json:"assignment_type,omitempty"`
	ManagerID      *string   `json:"manager_id,omitempty"`
	TeamID         *string   `json:"team_id,omitempty"`
	CommercialID   *string   `json:"commercial_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func ToZoneResponse(zone *domain.Zone) ZoneResponse {
	return ZoneResponse{
		ID:             zone.ID,
		Name:           zone.Name,
		AssignmentType: string(zone.AssignmentType),
		ManagerID:      zone.ManagerID,
		TeamID:         zone.TeamID,
		CommercialID:   zone.CommercialID,
		CreatedAt:      zone.CreatedAt,
		UpdatedAt:      zone.UpdatedAt,
	}
}
