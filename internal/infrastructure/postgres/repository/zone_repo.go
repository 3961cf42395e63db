package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/prospectops/zone-assignment-service/internal/domain"
	"github.com/prospectops/zone-assignment-service/internal/infrastructure/postgres/mappers"
	"github.com/prospectops/zone-assignment-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultZoneRepository struct {
	DB *gorm.DB
}

func NewDefaultZoneRepository(db *gorm.DB) *DefaultZoneRepository {
	return &DefaultZoneRepository{DB: db}
}

func (r *DefaultZoneRepository) CreateZone(zone *domain.Zone) error {
	model := mappers.ToGORMZone(zone)
	if model.ID == "" {
		model.ID = uuid.New().String()
	}

	if err := r.DB.Create(model).Error; err != nil {
		return err
	}

	zone.ID = model.ID
	return nil
}

func (r *DefaultZoneRepository) UpdateZoneName(zoneID, name string) error {
	return r.DB.Model(&models.ZoneModel{}).
		Where("id = ?", zoneID).
		Updates(map[string]interface{}{
			"name":       name,
			"updated_at": time.Now(),
		}).Error
}

func (r *DefaultZoneRepository) GetZoneByID(zoneID string) (*domain.Zone, error) {
	var model models.ZoneModel
	if err := r.DB.Where("id = ?", zoneID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrZoneNotFound
		}
		return nil, err
	}
	return mappers.ToDomainZone(&model), nil
}

func (r *DefaultZoneRepository) GetZones() ([]*domain.Zone, error) {
	var zoneModels []models.ZoneModel
	if err := r.DB.Order("name ASC").Find(&zoneModels).Error; err != nil {
		return nil, err
	}

	zones := make([]*domain.Zone, len(zoneModels))
	for i := range zoneModels {
		zones[i] = mappers.ToDomainZone(&zoneModels[i])
	}
	return zones, nil
}
