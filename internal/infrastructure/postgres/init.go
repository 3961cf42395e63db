package postgres

import (
	"log"

	"github.com/prospectops/zone-assignment-service/internal/config"
	"github.com/prospectops/zone-assignment-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.ZoneConfig) *gorm.DB {
	dsn := cfg.ZoneDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.ManagerModel{},
		&models.TeamModel{},
		&models.CommercialModel{},
		&models.ZoneModel{},
		&models.ZoneAssignmentModel{},
		&models.ZoneCommercialModel{},
	)

	return db
}
