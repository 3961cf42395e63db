package repository

import (
	"errors"

	"github.com/prospectops/zone-assignment-service/internal/domain"
	"github.com/prospectops/zone-assignment-service/internal/infrastructure/postgres/mappers"
	"github.com/prospectops/zone-assignment-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

// DefaultDirectoryRepository reads the manager/team/commercial tables
// owned by the organizational-management service. Strictly read-only.
type DefaultDirectoryRepository struct {
	DB *gorm.DB
}

func NewDefaultDirectoryRepository(db *gorm.DB) *DefaultDirectoryRepository {
	return &DefaultDirectoryRepository{DB: db}
}

func (r *DefaultDirectoryRepository) GetManagerByID(managerID string) (*domain.Manager, error) {
	var model models.ManagerModel
	if err := r.DB.Where("id = ?", managerID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrManagerNotFound
		}
		return nil, err
	}
	return mappers.ToDomainManager(&model), nil
}

func (r *DefaultDirectoryRepository) GetTeamByID(teamID string) (*domain.Team, error) {
	var model models.TeamModel
	if err := r.DB.Preload("Commercials").Where("id = ?", teamID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTeamNotFound
		}
		return nil, err
	}
	return mappers.ToDomainTeam(&model), nil
}

func (r *DefaultDirectoryRepository) GetCommercialByID(commercialID string) (*domain.Commercial, error) {
	var model models.CommercialModel
	if err := r.DB.Where("id = ?", commercialID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCommercialNotFound
		}
		return nil, err
	}
	return mappers.ToDomainCommercial(&model), nil
}

func (r *DefaultDirectoryRepository) GetTeamsByManagerID(managerID string) ([]*domain.Team, error) {
	var teamModels []models.TeamModel
	if err := r.DB.
		Preload("Commercials").
		Where("manager_id = ?", managerID).
		Find(&teamModels).Error; err != nil {
		return nil, err
	}

	teams := make([]*domain.Team, len(teamModels))
	for i := range teamModels {
		teams[i] = mappers.ToDomainTeam(&teamModels[i])
	}
	return teams, nil
}

func (r *DefaultDirectoryRepository) GetCommercialsByTeamID(teamID string) ([]*domain.Commercial, error) {
	var commercialModels []models.CommercialModel
	if err := r.DB.Where("team_id = ?", teamID).Find(&commercialModels).Error; err != nil {
		return nil, err
	}
	return toDomainCommercials(commercialModels), nil
}

func (r *DefaultDirectoryRepository) GetDirectCommercialsByManagerID(managerID string) ([]*domain.Commercial, error) {
	var commercialModels []models.CommercialModel
	if err := r.DB.
		Where("manager_id = ? AND team_id IS NULL", managerID).
		Find(&commercialModels).Error; err != nil {
		return nil, err
	}
	return toDomainCommercials(commercialModels), nil
}

func toDomainCommercials(commercialModels []models.CommercialModel) []*domain.Commercial {
	commercials := make([]*domain.Commercial, len(commercialModels))
	for i := range commercialModels {
		commercials[i] = mappers.ToDomainCommercial(&commercialModels[i])
	}
	return commercials
}
