package response

import "github.com/prospectops/zone-assignment-service/internal/domain"

type CommercialResponse struct {
	ID        string  `json:"id"`
	FullName  string  `json:"full_name"`
	ManagerID *string `json:"manager_id,omitempty"`
	TeamID    *string `json:"team_id,omitempty"`
}

type TeamResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	ManagerID   string               `json:"manager_id"`
	Commercials []CommercialResponse `json:"commercials"`
}

func ToCommercialResponse(commercial *domain.Commercial) CommercialResponse {
	return CommercialResponse{
		ID:        commercial.ID,
		FullName:  commercial.FullName,
		ManagerID: commercial.ManagerID,
		TeamID:    commercial.TeamID,
	}
}

func ToTeamResponse(team *domain.Team) TeamResponse {
	commercials := make([]CommercialResponse, len(team.Commercials))
	for i, commercial := range team.Commercials {
		commercials[i] = ToCommercialResponse(commercial)
	}
	return TeamResponse{
		ID:          team.ID,
		Name:        team.Name,
		ManagerID:   team.ManagerID,
		Commercials: commercials,
	}
}
