package main

import (
	"fmt"
	"os"

	"fulfillment/cmd"
	fulfillmenthttp "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/postgres/assignmentrepo"
	"fulfillment/internal/adapters/out/postgres/hiringrepo"
	"fulfillment/internal/adapters/out/postgres/orderstore"
	"fulfillment/internal/adapters/out/postgres/orgrepo"
	"fulfillment/internal/adapters/out/postgres/paymentrepo"
	"fulfillment/internal/jobs"

	"log/slog"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db := openDatabase(configs)
	migrateDatabase(db)

	app, err := cmd.NewCompositionRoot(configs, db)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}

	jobManager := jobs.NewJobManager(app.CreateSweepPaymentsCommandHandler(), logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	// TranslateError turns unique index violations into
	// gorm.ErrDuplicatedKey, which the repositories map onto conflicts.
	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	return db
}

func migrateDatabase(db *gorm.DB) {
	err := db.AutoMigrate(
		&orgrepo.OrganizationDTO{},
		&orgrepo.MembershipDTO{},
		&hiringrepo.RequestDTO{},
		&orderstore.OrderDTO{},
		&orderstore.OrderLineDTO{},
		&assignmentrepo.AssignmentDTO{},
		&paymentrepo.PaymentDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := fulfillmenthttp.NewServer(
		app.CreateCreateOrganizationCommandHandler(),
		app.CreateRequestDeliveryCommandHandler(),
		app.CreateReviewRequestCommandHandler(),
		app.CreateAssignWorkerCommandHandler(),
		app.CreateAdvanceStatusCommandHandler(),
		app.CreateInviteWorkerCommandHandler(),
		app.CreateApplyToOrganizationCommandHandler(),
		app.CreateRespondHiringCommandHandler(),
		app.CreateGetMerchantAssignmentsQueryHandler(),
		app.CreateGetOrganizationAssignmentsQueryHandler(),
		app.CreateGetWorkerAssignmentsQueryHandler(),
		app.CreateGetWorkerPaymentsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
