package models

import "time"

type ZoneModel struct {
	ID             string  `gorm:"primaryKey;type:uuid"`
	Name           string  `gorm:"not null;uniqueIndex"`
	AssignmentType string  `gorm:"index"`
	ManagerID      *string `gorm:"type:uuid"`
	TeamID         *string `gorm:"type:uuid"`
	CommercialID   *string `gorm:"type:uuid"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (ZoneModel) TableName() string {
	return "zones"
}
