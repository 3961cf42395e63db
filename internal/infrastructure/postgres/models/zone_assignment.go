package models

import "time"

type ZoneAssignmentModel struct {
	ID             string `gorm:"primaryKey"`
	ZoneID         string `gorm:"type:uuid;not null;index:idx_zone_assignments_zone"`
	AssigneeType   string `gorm:"not null;index:idx_zone_assignments_type"`
	AssigneeID     string `gorm:"not null;index:idx_zone_assignments_assignee"`
	AssignedByID   string
	AssignedByName string
	StartAt        time.Time `gorm:"not null;index:idx_zone_assignments_window"`
	EndAt          time.Time `gorm:"not null;index:idx_zone_assignments_window"`
	CreatedAt      time.Time
}

func (ZoneAssignmentModel) TableName() string {
	return "zone_assignments"
}
