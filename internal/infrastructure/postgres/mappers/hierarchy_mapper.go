package mappers

import (
	"github.com/prospectops/zone-assignment-service/internal/domain"
	"github.com/prospectops/zone-assignment-service/internal/infrastructure/postgres/models"
)

func ToDomainManager(model *models.ManagerModel) *domain.Manager {
	return &domain.Manager{
		ID:       model.ID,
		FullName: model.FullName,
	}
}

func ToDomainTeam(model *models.TeamModel) *domain.Team {
	commercials := make([]*domain.Commercial, len(model.Commercials))
	for i := range model.Commercials {
		commercials[i] = ToDomainCommercial(&model.Commercials[i])
	}
	return &domain.Team{
		ID:          model.ID,
		Name:        model.Name,
		ManagerID:   model.ManagerID,
		Commercials: commercials,
	}
}

func ToDomainCommercial(model *models.CommercialModel) *domain.Commercial {
	return &domain.Commercial{
		ID:        model.ID,
		FullName:  model.FullName,
		ManagerID: model.ManagerID,
		TeamID:    model.TeamID,
	}
}
