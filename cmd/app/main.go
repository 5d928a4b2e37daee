package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"routesync/cmd"
	httpin "routesync/internal/adapters/in/http"
	"routesync/internal/adapters/out/postgres/auditrepo"
	"routesync/internal/adapters/out/postgres/deliveryrepo"
	"routesync/internal/adapters/out/postgres/routerepo"
	"routesync/internal/adapters/out/postgres/shiftrepo"
	"routesync/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	migrateDB(gormDB)

	logger := slog.Default()
	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := jobs.NewJobManager(
		app.CreatePurgeStaleShiftsCommandHandler(),
		configs.CleanupCronSpec,
		configs.ShiftRetentionHours,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:            goDotEnvVariable("HTTP_PORT"),
		DBHost:              goDotEnvVariable("DB_HOST"),
		DBPort:              goDotEnvVariable("DB_PORT"),
		DBUser:              goDotEnvVariable("DB_USER"),
		DBPassword:          goDotEnvVariable("DB_PASSWORD"),
		DBName:              goDotEnvVariable("DB_NAME"),
		DBSslMode:           goDotEnvVariable("DB_SSLMODE"),
		RoutingServiceURL:   goDotEnvVariable("ROUTING_SERVICE_URL"),
		ShiftRetentionHours: intEnvVariable("SHIFT_RETENTION_HOURS", 0),
		CleanupCronSpec:     stringEnvVariable("CLEANUP_CRON_SPEC", "0 0 * * * *"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func stringEnvVariable(key, fallback string) string {
	if value := goDotEnvVariable(key); value != "" {
		return value
	}
	return fallback
}

func intEnvVariable(key string, fallback int) int {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return value
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func migrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&shiftrepo.ShiftDTO{},
		&shiftrepo.AssignmentDTO{},
		&deliveryrepo.RequestDTO{},
		&routerepo.RecordDTO{},
		&auditrepo.SyncEntryDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpin.NewServer(
		app.CreateRouteSyncFacade(),
		app.CreateAssignRouteToDriverCommandHandler(),
		app.CreateSyncRouteWithSchedulingCommandHandler(),
		app.CreateConfirmAssignmentCommandHandler(),
		app.CreateUnassignShiftCommandHandler(),
		app.CreatePurgeStaleShiftsCommandHandler(),
		app.CreateGetPendingShiftsQueryHandler(),
		app.CreateGetRouteRecordsQueryHandler(),
		app.CreateGetRouteRecordQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
