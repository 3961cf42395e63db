package mappers

import (
	"github.com/prospectops/zone-assignment-service/internal/domain"
	"github.com/prospectops/zone-assignment-service/internal/infrastructure/postgres/models"
)

func ToGORMLink(link *domain.ZoneCommercial) *models.ZoneCommercialModel {
	return &models.ZoneCommercialModel{
		ID:           link.ID,
		ZoneID:       link.ZoneID,
		CommercialID: link.CommercialID,
		AssignedBy:   link.AssignedBy,
		IsActive:     link.IsActive,
		EndedAt:      link.EndedAt,
	}
}

func ToDomainLink(model *models.ZoneCommercialModel) *domain.ZoneCommercial {
	return &domain.ZoneCommercial{
		ID:           model.ID,
		ZoneID:       model.ZoneID,
		CommercialID: model.CommercialID,
		AssignedBy:   model.AssignedBy,
		IsActive:     model.IsActive,
		EndedAt:      model.EndedAt,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}
