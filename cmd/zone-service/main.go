package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/prospectops/zone-assignment-service/internal/config"
	httpdelivery "github.com/prospectops/zone-assignment-service/internal/delivery/http"
	"github.com/prospectops/zone-assignment-service/internal/delivery/http/handlers"
	"github.com/prospectops/zone-assignment-service/internal/domain"
	"github.com/prospectops/zone-assignment-service/internal/infrastructure/kafka"
	"github.com/prospectops/zone-assignment-service/internal/infrastructure/metrics"
	"github.com/prospectops/zone-assignment-service/internal/infrastructure/migrate"
	"github.com/prospectops/zone-assignment-service/internal/infrastructure/postgres"
	"github.com/prospectops/zone-assignment-service/internal/infrastructure/postgres/repository"
	"github.com/prospectops/zone-assignment-service/internal/reconciler"
	"github.com/prospectops/zone-assignment-service/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	// Init database
	db := postgres.MustInitDB(cfg)

	if cfg.ZoneDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.ZoneDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	clock := clockwork.NewRealClock()
	assignmentMetrics := metrics.NewAssignmentMetrics()

	// Init repositories
	zoneRepo := repository.NewDefaultZoneRepository(db)
	assignmentRepo := repository.NewDefaultAssignmentRepository(db)
	linkRepo := repository.NewDefaultActiveLinkRepository(db)
	directoryRepo := repository.NewDefaultDirectoryRepository(db)

	// Init event publisher
	var publisher domain.PublisherPort
	if cfg.KafkaService.Enabled {
		brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
		publisher = kafka.NewDefaultKafkaPublisher(brokers)
	}

	// Init usecases
	resolver := usecase.NewDefaultAssigneeResolver(directoryRepo)
	access := usecase.NewDefaultAccessUsecase(directoryRepo, zoneRepo)
	zoneUc := usecase.NewDefaultZoneUsecase(zoneRepo)
	directoryUc := usecase.NewDefaultDirectoryUsecase(directoryRepo)
	assignmentUc := usecase.NewDefaultAssignmentUsecase(
		assignmentRepo,
		zoneRepo,
		directoryRepo,
		resolver,
		access,
		publisher,
		assignmentMetrics,
		clock,
		usecase.AssignmentPolicy{
			ExclusiveLinks:      cfg.Assignment.ExclusiveLinks,
			DefaultDurationDays: cfg.Assignment.DefaultDurationDays,
		},
		cfg.KafkaService.Topic,
	)

	// Init reconciliation scheduler
	assigneeTypes := make([]domain.AssigneeType, 0, len(cfg.Reconciler.AssigneeTypes))
	for _, assigneeType := range cfg.Reconciler.AssigneeTypes {
		assigneeTypes = append(assigneeTypes, domain.AssigneeType(assigneeType))
	}
	scheduler := reconciler.NewScheduler(
		assignmentRepo,
		linkRepo,
		resolver,
		clock,
		assignmentMetrics,
		logger,
		reconciler.SchedulerConfig{
			ActivateInterval:   cfg.Reconciler.ActivateInterval,
			DeactivateInterval: cfg.Reconciler.DeactivateInterval,
			AssigneeTypes:      assigneeTypes,
		},
	)

	go scheduler.StartActivateLoop(context.Background())
	go scheduler.StartDeactivateLoop(context.Background())

	// HTTP server
	app := fiber.New(fiber.Config{
		ErrorHandler: httpdelivery.ErrorHandler,
	})
	httpdelivery.RegisterRoutes(app, httpdelivery.RouteConfig{
		Health:      handlers.NewHealthHandler(db),
		Zones:       handlers.NewZoneHandler(zoneUc),
		Assignments: handlers.NewAssignmentHandler(assignmentUc),
		Directory:   handlers.NewDirectoryHandler(directoryUc),
		Reconciler:  handlers.NewReconcilerHandler(scheduler),
	})

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("HTTP server started on %s\n", addr)
	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}
