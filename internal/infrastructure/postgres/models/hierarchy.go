package models

import "time"

// Hierarchy tables are owned by the organizational-management service;
// this service reads them and never writes.

type ManagerModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	FullName  string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ManagerModel) TableName() string {
	return "managers"
}

type TeamModel struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	Name        string `gorm:"not null"`
	ManagerID   string `gorm:"type:uuid;not null;index"`
	Commercials []CommercialModel `gorm:"foreignKey:TeamID"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (TeamModel) TableName() string {
	return "teams"
}

type CommercialModel struct {
	ID        string  `gorm:"primaryKey;type:uuid"`
	FullName  string  `gorm:"not null"`
	ManagerID *string `gorm:"type:uuid;index"`
	TeamID    *string `gorm:"type:uuid;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CommercialModel) TableName() string {
	return "commercials"
}
