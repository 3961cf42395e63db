package usecase

import (
	"errors"

	"github.com/prospectops/zone-assignment-service/internal/domain"
)

// AccessUsecase decides whether a manager governs a zone, team,
// commercial or assignment record. Ownership is re-derived from the
// hierarchy on every call: team and manager reassignment can happen at
// any time, and stale authorization is a security defect.
type AccessUsecase interface {
	CanManagerAct(managerID string, record *domain.ZoneAssignment) (bool, error)
	OwnsZone(managerID, zoneID string) (bool, error)
	OwnsTeam(managerID, teamID string) (bool, error)
	OwnsCommercial(managerID, commercialID string) (bool, error)
}

type DefaultAccessUsecase struct {
	directoryRepo domain.DirectoryRepository
	zoneRepo      domain.ZoneRepository
}

func NewDefaultAccessUsecase(directoryRepo domain.DirectoryRepository, zoneRepo domain.ZoneRepository) *DefaultAccessUsecase {
	return &DefaultAccessUsecase{
		directoryRepo: directoryRepo,
		zoneRepo:      zoneRepo,
	}
}

func (uc *DefaultAccessUsecase) CanManagerAct(managerID string, record *domain.ZoneAssignment) (bool, error) {
	switch record.AssigneeType {
	case domain.AssigneeManager:
		return record.AssigneeID == managerID, nil
	case domain.AssigneeTeam:
		return uc.OwnsTeam(managerID, record.AssigneeID)
	case domain.AssigneeCommercial:
		return uc.OwnsCommercial(managerID, record.AssigneeID)
	}
	return false, nil
}

func (uc *DefaultAccessUsecase) OwnsZone(managerID, zoneID string) (bool, error) {
	zone, err := uc.zoneRepo.GetZoneByID(zoneID)
	if err != nil {
		return false, err
	}

	if zone.ManagerID != nil && *zone.ManagerID == managerID {
		return true, nil
	}
	if zone.TeamID != nil {
		owns, err := uc.OwnsTeam(managerID, *zone.TeamID)
		if err != nil || owns {
			return owns, err
		}
	}
	if zone.CommercialID != nil {
		return uc.OwnsCommercial(managerID, *zone.CommercialID)
	}
	return false, nil
}

func (uc *DefaultAccessUsecase) OwnsTeam(managerID, teamID string) (bool, error) {
	team, err := uc.directoryRepo.GetTeamByID(teamID)
	if err != nil {
		if errors.Is(err, domain.ErrTeamNotFound) {
			return false, nil
		}
		return false, err
	}
	return team.ManagerID == managerID, nil
}

func (uc *DefaultAccessUsecase) OwnsCommercial(managerID, commercialID string) (bool, error) {
	commercial, err := uc.directoryRepo.GetCommercialByID(commercialID)
	if err != nil {
		if errors.Is(err, domain.ErrCommercialNotFound) {
			return false, nil
		}
		return false, err
	}

	if commercial.ManagerID != nil && *commercial.ManagerID == managerID {
		return true, nil
	}
	if commercial.TeamID != nil {
		return uc.OwnsTeam(managerID, *commercial.TeamID)
	}
	return false, nil
}
