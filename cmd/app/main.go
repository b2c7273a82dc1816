package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"freightbid/cmd"
	httpin "freightbid/internal/adapters/in/http"
	"freightbid/internal/adapters/out/kafka"
	"freightbid/internal/adapters/out/postgres/auctionrepo"
	"freightbid/internal/adapters/out/postgres/counters"
	"freightbid/internal/adapters/out/postgres/principalrepo"
	"freightbid/internal/adapters/out/postgres/productrepo"
	"freightbid/internal/adapters/out/postgres/transportrepo"
	"freightbid/internal/core/ports"
	"freightbid/internal/generated/servers"
	"freightbid/internal/jobs"

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

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	publisher, err := kafka.NewPublisher(configs.KafkaHost, configs.KafkaEventTopic, logger)
	if err != nil {
		log.Fatalf("Failed to create event publisher: %v", err)
	}
	defer publisher.Close()

	app := cmd.NewCompositionRoot(configs, gormDB, ports.ClockFunc(time.Now), publisher)

	if configs.DeployerID != "" {
		if err := app.SeedDeployer(context.Background(), configs.DeployerID); err != nil {
			log.Fatalf("Failed to seed deployer principal: %v", err)
		}
	}

	settleHandler := must(app.CreateSettleExpiredAuctionsCommandHandler())
	jobManager := jobs.NewJobManager(settleHandler, logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:        goDotEnvVariable("HTTP_PORT"),
		DBHost:          goDotEnvVariable("DB_HOST"),
		DBPort:          goDotEnvVariable("DB_PORT"),
		DBUser:          goDotEnvVariable("DB_USER"),
		DBPassword:      goDotEnvVariable("DB_PASSWORD"),
		DBName:          goDotEnvVariable("DB_NAME"),
		DBSslMode:       goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:       goDotEnvVariable("KAFKA_HOST"),
		KafkaEventTopic: goDotEnvVariable("KAFKA_EVENT_TOPIC"),
		DeployerID:      goDotEnvVariable("DEPLOYER_ID"),
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func migrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&counters.CounterDTO{},
		&principalrepo.PrincipalDTO{},
		&principalrepo.PrincipalRoleDTO{},
		&productrepo.ProductDTO{},
		&auctionrepo.AuctionDTO{},
		&auctionrepo.BidDTO{},
		&transportrepo.TransportDTO{},
		&transportrepo.CheckpointDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := httpin.NewServer(
		must(app.CreateGrantRoleCommandHandler()),
		must(app.CreateRevokeRoleCommandHandler()),
		must(app.CreateRegisterProductCommandHandler()),
		must(app.CreateUpdateProductCommandHandler()),
		must(app.CreateChangeProductStatusCommandHandler()),
		must(app.CreateCreateAuctionCommandHandler()),
		must(app.CreatePlaceBidCommandHandler()),
		must(app.CreateUpdateBidCommandHandler()),
		must(app.CreateCancelBidCommandHandler()),
		must(app.CreateCompleteAuctionCommandHandler()),
		must(app.CreateCancelAuctionCommandHandler()),
		must(app.CreateCreateTransportCommandHandler()),
		must(app.CreateAddCheckpointCommandHandler()),
		must(app.CreateUpdateTransportStatusCommandHandler()),
		must(app.CreateCompleteDeliveryCommandHandler()),
		must(app.CreateConfirmDeliveryCommandHandler()),
		must(app.CreateRaiseDisputeCommandHandler()),
		app.CreateGetActiveAuctionsQueryHandler(),
		app.CreateGetAuctionQueryHandler(),
		app.CreateGetProductQueryHandler(),
		app.CreateGetProductsByProducerQueryHandler(),
		app.CreateGetProductsWithoutAuctionsQueryHandler(),
		app.CreateGetTransportQueryHandler(),
	)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	servers.RegisterHandlersWithBaseURL(e, server, "/api/v1")

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

func must[T any](v T, err error) T {
	if err != nil {
		log.Fatalf("Failed to build handler: %v", err)
	}
	return v
}
