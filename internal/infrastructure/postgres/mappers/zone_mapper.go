package mappers

import (
	"github.com/prospectops/zone-assignment-service/internal/domain"
	"github.com/prospectops/zone-assignment-service/internal/infrastructure/postgres/models"
)

func ToGORMZone(zone *domain.Zone) *models.ZoneModel {
	return &models.ZoneModel{
		ID:             zone.ID,
		Name:           zone.Name,
		AssignmentType: string(zone.AssignmentType),
		ManagerID:      zone.ManagerID,
		TeamID:         zone.TeamID,
		CommercialID:   zone.CommercialID,
	}
}

func ToDomainZone(model *models.ZoneModel) *domain.Zone {
	return &domain.Zone{
		ID:             model.ID,
		Name:           model.Name,
		AssignmentType: domain.AssigneeType(model.AssignmentType),
		ManagerID:      model.ManagerID,
		TeamID:         model.TeamID,
		CommercialID:   model.CommercialID,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	}
}
