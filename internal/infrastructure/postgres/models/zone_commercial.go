package models

import "time"

type ZoneCommercialModel struct {
	ID           string `gorm:"primaryKey;type:uuid"`
	ZoneID       string `gorm:"type:uuid;not null;uniqueIndex:idx_zone_commercials_pair"`
	CommercialID string `gorm:"type:uuid;not null;uniqueIndex:idx_zone_commercials_pair"`
	AssignedBy   string
	IsActive     bool `gorm:"default:false;index"`
	EndedAt      *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (ZoneCommercialModel) TableName() string {
	return "zone_commercials"
}
