package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/prospectops/zone-assignment-service/internal/domain"
	"github.com/prospectops/zone-assignment-service/internal/infrastructure/postgres/mappers"
	"github.com/prospectops/zone-assignment-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultAssignmentRepository struct {
	DB *gorm.DB
}

func NewDefaultAssignmentRepository(db *gorm.DB) *DefaultAssignmentRepository {
	return &DefaultAssignmentRepository{DB: db}
}

// CreateAssignment persists one assign call as a single transaction:
// stale link cleanup, link upserts, the zone projection and the history
// record either all land or none do.
func (r *DefaultAssignmentRepository) CreateAssignment(write *domain.AssignmentWrite) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if len(write.ReplaceCommercialIDs) > 0 {
			query := tx.Where("commercial_id IN ?", write.ReplaceCommercialIDs)
			if write.ZoneScoped {
				query = query.Where("zone_id = ?", write.Record.ZoneID)
			}
			if err := query.Delete(&models.ZoneCommercialModel{}).Error; err != nil {
				return err
			}
		}

		for _, link := range write.Links {
			model := mappers.ToGORMLink(link)
			if model.ID == "" {
				model.ID = uuid.New().String()
			}
			err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "zone_id"}, {Name: "commercial_id"}},
				DoUpdates: clause.Assignments(map[string]interface{}{
					"assigned_by": model.AssignedBy,
					"is_active":   model.IsActive,
					"ended_at":    nil,
					"updated_at":  time.Now(),
				}),
			}).Create(model).Error
			if err != nil {
				return err
			}
		}

		if write.Projection != nil {
			// the latest record owns the projection outright: pointers
			// for the other assignee kinds are cleared, not left behind
			err := tx.Model(&models.ZoneModel{}).
				Where("id = ?", write.Record.ZoneID).
				Updates(map[string]interface{}{
					"assignment_type": string(write.Projection.AssignmentType),
					"manager_id":      write.Projection.ManagerID,
					"team_id":         write.Projection.TeamID,
					"commercial_id":   write.Projection.CommercialID,
				}).Error
			if err != nil {
				return err
			}
		}

		return tx.Create(mappers.ToGORMAssignment(write.Record)).Error
	})
}

func (r *DefaultAssignmentRepository) GetAssignmentByID(assignmentID string) (*domain.ZoneAssignment, error) {
	var model models.ZoneAssignmentModel
	if err := r.DB.Where("id = ?", assignmentID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAssignmentNotFound
		}
		return nil, err
	}
	return mappers.ToDomainAssignment(&model), nil
}

func (r *DefaultAssignmentRepository) GetAssignments() ([]*domain.ZoneAssignment, error) {
	var assignmentModels []models.ZoneAssignmentModel
	if err := r.DB.Order("created_at DESC").Find(&assignmentModels).Error; err != nil {
		return nil, err
	}
	return toDomainAssignments(assignmentModels), nil
}

func (r *DefaultAssignmentRepository) GetAssignmentsByZoneID(zoneID string) ([]*domain.ZoneAssignment, error) {
	var assignmentModels []models.ZoneAssignmentModel
	if err := r.DB.
		Where("zone_id = ?", zoneID).
		Order("created_at DESC").
		Find(&assignmentModels).Error; err != nil {
		return nil, err
	}
	return toDomainAssignments(assignmentModels), nil
}

// StopAssignment moves the record's end to the stop instant and retires
// the zone's links for the resolved commercials in the same transaction.
// A record that has not started yet collapses to an empty window so
// start_at never overtakes end_at.
func (r *DefaultAssignmentRepository) StopAssignment(assignmentID, zoneID string, endedAt time.Time, commercialIDs []string, clearTeamPointer bool) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.ZoneAssignmentModel{}).
			Where("id = ?", assignmentID).
			Updates(map[string]interface{}{
				"end_at":   endedAt,
				"start_at": gorm.Expr("LEAST(start_at, ?)", endedAt),
			}).Error
		if err != nil {
			return err
		}

		if len(commercialIDs) > 0 {
			err = tx.Model(&models.ZoneCommercialModel{}).
				Where("zone_id = ? AND commercial_id IN ? AND is_active = ?", zoneID, commercialIDs, true).
				Updates(map[string]interface{}{
					"is_active": false,
					"ended_at":  endedAt,
				}).Error
			if err != nil {
				return err
			}
		}

		if clearTeamPointer {
			err = tx.Model(&models.ZoneModel{}).
				Where("id = ?", zoneID).
				Update("team_id", nil).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *DefaultAssignmentRepository) FindStartedAssignments(now time.Time, assigneeTypes []domain.AssigneeType) ([]*domain.ZoneAssignment, error) {
	query := r.DB.Where("start_at <= ? AND end_at > ?", now, now)
	if len(assigneeTypes) > 0 {
		query = query.Where("assignee_type IN ?", assigneeTypes)
	}

	var assignmentModels []models.ZoneAssignmentModel
	if err := query.Find(&assignmentModels).Error; err != nil {
		return nil, err
	}
	return toDomainAssignments(assignmentModels), nil
}

func (r *DefaultAssignmentRepository) FindExpiredAssignments(now time.Time) ([]*domain.ZoneAssignment, error) {
	var assignmentModels []models.ZoneAssignmentModel
	if err := r.DB.Where("end_at <= ?", now).Find(&assignmentModels).Error; err != nil {
		return nil, err
	}
	return toDomainAssignments(assignmentModels), nil
}

func toDomainAssignments(assignmentModels []models.ZoneAssignmentModel) []*domain.ZoneAssignment {
	assignments := make([]*domain.ZoneAssignment, len(assignmentModels))
	for i := range assignmentModels {
		assignments[i] = mappers.ToDomainAssignment(&assignmentModels[i])
	}
	return assignments
}
