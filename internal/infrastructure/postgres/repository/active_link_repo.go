package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/prospectops/zone-assignment-service/internal/domain"
	"github.com/prospectops/zone-assignment-service/internal/infrastructure/postgres/mappers"
	"github.com/prospectops/zone-assignment-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultActiveLinkRepository struct {
	DB *gorm.DB
}

func NewDefaultActiveLinkRepository(db *gorm.DB) *DefaultActiveLinkRepository {
	return &DefaultActiveLinkRepository{DB: db}
}

// ActivateLink flips the (zone, commercial) row to active. The update is
// guarded by is_active = false so concurrent passes cannot double-count;
// a missing row is created active to cover records written outside the
// assignment path.
func (r *DefaultActiveLinkRepository) ActivateLink(zoneID, commercialID, assignedBy string) (bool, error) {
	result := r.DB.Model(&models.ZoneCommercialModel{}).
		Where("zone_id = ? AND commercial_id = ? AND is_active = ?", zoneID, commercialID, false).
		Updates(map[string]interface{}{
			"is_active": true,
			"ended_at":  nil,
		})
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected > 0 {
		return true, nil
	}

	var count int64
	err := r.DB.Model(&models.ZoneCommercialModel{}).
		Where("zone_id = ? AND commercial_id = ?", zoneID, commercialID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	if count > 0 {
		// already active
		return false, nil
	}

	model := models.ZoneCommercialModel{
		ID:           uuid.New().String(),
		ZoneID:       zoneID,
		CommercialID: commercialID,
		AssignedBy:   assignedBy,
		IsActive:     true,
	}
	if err := r.DB.Create(&model).Error; err != nil {
		return false, err
	}
	return true, nil
}

// DeactivateLink retires an active row; a row that is already inactive
// is left untouched.
func (r *DefaultActiveLinkRepository) DeactivateLink(zoneID, commercialID string, endedAt time.Time) (bool, error) {
	result := r.DB.Model(&models.ZoneCommercialModel{}).
		Where("zone_id = ? AND commercial_id = ? AND is_active = ?", zoneID, commercialID, true).
		Updates(map[string]interface{}{
			"is_active": false,
			"ended_at":  endedAt,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *DefaultActiveLinkRepository) GetLinksByZoneID(zoneID string) ([]*domain.ZoneCommercial, error) {
	var linkModels []models.ZoneCommercialModel
	if err := r.DB.Where("zone_id = ?", zoneID).Find(&linkModels).Error; err != nil {
		return nil, err
	}
	return toDomainLinks(linkModels), nil
}

func (r *DefaultActiveLinkRepository) GetActiveLinksByCommercialID(commercialID string) ([]*domain.ZoneCommercial, error) {
	var linkModels []models.ZoneCommercialModel
	if err := r.DB.
		Where("commercial_id = ? AND is_active = ?", commercialID, true).
		Find(&linkModels).Error; err != nil {
		return nil, err
	}
	return toDomainLinks(linkModels), nil
}

func toDomainLinks(linkModels []models.ZoneCommercialModel) []*domain.ZoneCommercial {
	links := make([]*domain.ZoneCommercial, len(linkModels))
	for i := range linkModels {
		links[i] = mappers.ToDomainLink(&linkModels[i])
	}
	return links
}
