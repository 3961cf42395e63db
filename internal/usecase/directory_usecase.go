package usecase

import (
	"errors"

	"github.com/prospectops/zone-assignment-service/internal/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// DirectoryUsecase exposes read-only hierarchy lookups so operators can
// inspect what a given scope expands to.
type DirectoryUsecase interface {
	GetManagerTeams(managerID string) ([]*domain.Team, error)
	GetTeamByID(teamID string) (*domain.Team, error)
	GetCommercialByID(commercialID string) (*domain.Commercial, error)
}

type DefaultDirectoryUsecase struct {
	directoryRepo domain.DirectoryRepository
}

func NewDefaultDirectoryUsecase(directoryRepo domain.DirectoryRepository) *DefaultDirectoryUsecase {
	return &DefaultDirectoryUsecase{directoryRepo: directoryRepo}
}

func (uc *DefaultDirectoryUsecase) GetManagerTeams(managerID string) ([]*domain.Team, error) {
	if _, err := uc.directoryRepo.GetManagerByID(managerID); err != nil {
		if errors.Is(err, domain.ErrManagerNotFound) {
			return nil, status.Error(codes.NotFound, "manager not found")
		}
		return nil, status.Error(codes.Internal, err.Error())
	}
	return uc.directoryRepo.GetTeamsByManagerID(managerID)
}

func (uc *DefaultDirectoryUsecase) GetTeamByID(teamID string) (*domain.Team, error) {
	team, err := uc.directoryRepo.GetTeamByID(teamID)
	if err != nil {
		if errors.Is(err, domain.ErrTeamNotFound) {
			return nil, status.Error(codes.NotFound, "team not found")
		}
		return nil, status.Error(codes.Internal, err.Error())
	}
	return team, nil
}

func (uc *DefaultDirectoryUsecase) GetCommercialByID(commercialID string) (*domain.Commercial, error) {
	commercial, err := uc.directoryRepo.GetCommercialByID(commercialID)
	if err != nil {
		if errors.Is(err, domain.ErrCommercialNotFound) {
			return nil, status.Error(codes.NotFound, "commercial not found")
		}
		return nil, status.Error(codes.Internal, err.Error())
	}
	return commercial, nil
}
