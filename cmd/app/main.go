package main

import (
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"strings"

	"fulfillment/cmd"
	httpadapter "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustOpenDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := jobs.NewJobManager(
		app.CreateGetWarehouseQueuesQueryHandler(),
		parseWarehouseIDs(configs.SnapshotWarehouseIDs),
		configs.SnapshotSchedule,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:             goDotEnvVariable("HTTP_PORT"),
		DBHost:               goDotEnvVariable("DB_HOST"),
		DBPort:               goDotEnvVariable("DB_PORT"),
		DBUser:               goDotEnvVariable("DB_USER"),
		DBPassword:           goDotEnvVariable("DB_PASSWORD"),
		DBName:               goDotEnvVariable("DB_NAME"),
		DBSslMode:            goDotEnvVariable("DB_SSLMODE"),
		SnapshotWarehouseIDs: goDotEnvVariable("SNAPSHOT_WAREHOUSE_IDS"),
		SnapshotSchedule:     goDotEnvVariable("SNAPSHOT_SCHEDULE"),
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

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	return gormDB
}

// parseWarehouseIDs parses the comma-separated SNAPSHOT_WAREHOUSE_IDS value.
// Invalid entries are fatal: a mistyped warehouse id silently skipping
// snapshots would be worse than failing to boot.
func parseWarehouseIDs(raw string) []kernel.UUID {
	var ids []kernel.UUID
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		id, err := kernel.UUIDFromString(part)
		if err != nil {
			log.Fatalf("Invalid snapshot warehouse id %q: %v", part, err)
		}
		ids = append(ids, id)
	}
	return ids
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		app.CreateAcceptRequestCommandHandler(),
		app.CreateMarkShippedCommandHandler(),
		app.CreateAssignDeliveryEmployeeCommandHandler(),
		app.CreateMarkDeliveredCommandHandler(),
		app.CreateGetWarehouseQueuesQueryHandler(),
		app.CreateGetDeliveryEmployeesQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
