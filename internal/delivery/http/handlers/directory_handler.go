package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/prospectops/zone-assignment-service/internal/delivery/http/dto/response"
	"github.com/prospectops/zone-assignment-service/internal/usecase"
)

type DirectoryHandler struct {
	directoryUc usecase.DirectoryUsecase
}

func NewDirectoryHandler(directoryUc usecase.DirectoryUsecase) *DirectoryHandler {
	return &DirectoryHandler{directoryUc: directoryUc}
}

// ManagerTeams GET /managers/:id/teams.
func (h *DirectoryHandler) ManagerTeams(c *fiber.Ctx) error {
	teams, err := h.directoryUc.GetManagerTeams(c.Params("id"))
	if err != nil {
		return err
	}

	items := make([]response.TeamResponse, len(teams))
	for i, team := range teams {
		items[i] = response.ToTeamResponse(team)
	}
	return c.JSON(fiber.Map{"teams": items})
}

// GetTeam GET /teams/:id.
func (h *DirectoryHandler) GetTeam(c *fiber.Ctx) error {
	team, err := h.directoryUc.GetTeamByID(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(response.ToTeamResponse(team))
}

// GetCommercial GET /commercials/:id.
func (h *DirectoryHandler) GetCommercial(c *fiber.Ctx) error {
	commercial, err := h.directoryUc.GetCommercialByID(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(response.ToCommercialResponse(commercial))
}
