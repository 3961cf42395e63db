package domain

import "time"

// ZoneCommercial is the derived activation flag consumed by the
// door-assignment subsystem: while IsActive is true the commercial may
// prospect the zone. Rows are retired (IsActive=false, EndedAt set),
// not deleted.
type ZoneCommercial struct {
	ID           string
	ZoneID       string
	CommercialID string
	AssignedBy   string
	IsActive     bool
	EndedAt      *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ActiveLinkRepository mutations are predicate-guarded at the store
// (is_active must hold the opposite value for the update to apply) so
// the writer and the reconciliation passes can run concurrently without
// in-process locks. The bool result reports whether a row changed.
type ActiveLinkRepository interface {
	ActivateLink(zoneID, commercialID, assignedBy string) (bool, error)
	DeactivateLink(zoneID, commercialID string, endedAt time.Time) (bool, error)
	GetLinksByZoneID(zoneID string) ([]*ZoneCommercial, error)
	GetActiveLinksByCommercialID(commercialID string) ([]*ZoneCommercial, error)
}
