package mappers

import (
	"github.com/prospectops/zone-assignment-service/internal/domain"
	"github.com/prospectops/zone-assignment-service/internal/infrastructure/postgres/models"
)

func ToGORMAssignment(assignment *domain.ZoneAssignment) *models.ZoneAssignmentModel {
	return &models.ZoneAssignmentModel{
		ID:             assignment.ID,
		ZoneID:         assignment.ZoneID,
		AssigneeType:   string(assignment.AssigneeType),
		AssigneeID:     assignment.AssigneeID,
		AssignedByID:   assignment.AssignedByID,
		AssignedByName: assignment.AssignedByName,
		StartAt:        assignment.StartAt,
		EndAt:          assignment.EndAt,
		CreatedAt:      assignment.CreatedAt,
	}
}

func ToDomainAssignment(model *models.ZoneAssignmentModel) *domain.ZoneAssignment {
	return &domain.ZoneAssignment{
		ID:             model.ID,
		ZoneID:         model.ZoneID,
		AssigneeType:   domain.AssigneeType(model.AssigneeType),
		AssigneeID:     model.AssigneeID,
		AssignedByID:   model.AssignedByID,
		AssignedByName: model.AssignedByName,
		StartAt:        model.StartAt,
		EndAt:          model.EndAt,
		CreatedAt:      model.CreatedAt,
	}
}
