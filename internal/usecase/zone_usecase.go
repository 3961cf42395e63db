package usecase

import (
	"errors"
	"strings"

	"github.com/prospectops/zone-assignment-service/internal/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Zones are created and renamed by administrators only; the assignee
// projection fields are owned by the assignment write path.
type ZoneUsecase interface {
	CreateZone(name string) (*domain.Zone, error)
	RenameZone(zoneID, name string) (*domain.Zone, error)
	GetZoneByID(zoneID string) (*domain.Zone, error)
	GetZones() ([]*domain.Zone, error)
}

type DefaultZoneUsecase struct {
	zoneRepo domain.ZoneRepository
}

func NewDefaultZoneUsecase(zoneRepo domain.ZoneRepository) *DefaultZoneUsecase {
	return &DefaultZoneUsecase{zoneRepo: zoneRepo}
}

func (uc *DefaultZoneUsecase) CreateZone(name string) (*domain.Zone, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, status.Error(codes.InvalidArgument, "zone name required")
	}

	zone := &domain.Zone{Name: name}
	if err := uc.zoneRepo.CreateZone(zone); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return zone, nil
}

func (uc *DefaultZoneUsecase) RenameZone(zoneID, name string) (*domain.Zone, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, status.Error(codes.InvalidArgument, "zone name required")
	}

	if _, err := uc.zoneRepo.GetZoneByID(zoneID); err != nil {
		if errors.Is(err, domain.ErrZoneNotFound) {
			return nil, status.Error(codes.NotFound, "zone not found")
		}
		return nil, status.Error(codes.Internal, err.Error())
	}

	if err := uc.zoneRepo.UpdateZoneName(zoneID, name); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return uc.zoneRepo.GetZoneByID(zoneID)
}

func (uc *DefaultZoneUsecase) GetZoneByID(zoneID string) (*domain.Zone, error) {
	zone, err := uc.zoneRepo.GetZoneByID(zoneID)
	if err != nil {
		if errors.Is(err, domain.ErrZoneNotFound) {
			return nil, status.Error(codes.NotFound, "zone not found")
		}
		return nil, status.Error(codes.Internal, err.Error())
	}
	return zone, nil
}

func (uc *DefaultZoneUsecase) GetZones() ([]*domain.Zone, error) {
	return uc.zoneRepo.GetZones()
}
