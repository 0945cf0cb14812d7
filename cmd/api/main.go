package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/ndiwanjo/constructora-api/internal/application/analytics"
	"github.com/ndiwanjo/constructora-api/internal/application/auth"
	"github.com/ndiwanjo/constructora-api/internal/application/report"
	"github.com/ndiwanjo/constructora-api/internal/application/usecase"
	infraexcel "github.com/ndiwanjo/constructora-api/internal/infrastructure/excel"
	infrapdf "github.com/ndiwanjo/constructora-api/internal/infrastructure/pdf"
	"github.com/ndiwanjo/constructora-api/internal/infrastructure/postgres"
	httpRouter "github.com/ndiwanjo/constructora-api/internal/interfaces/http"
	"github.com/ndiwanjo/constructora-api/pkg/config"
	"github.com/ndiwanjo/constructora-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if err := postgres.Migrate(cfg.DB); err != nil {
		log.Fatal().Err(err).Msg("migraciones de base de datos")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	activityRepo := postgres.NewActivityRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	projectUC := usecase.NewProjectUseCase(projectRepo, txRunner)
	inventoryUC := usecase.NewInventoryUseCase(inventoryRepo, txRunner)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo, txRunner)
	activityUC := usecase.NewActivityUseCase(activityRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(
		employeeRepo, customerRepo, projectRepo, inventoryRepo, expenseRepo, activityRepo, log,
	)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	excelGenerator := infraexcel.NewExcelizeReportGenerator()
	reportUC := report.NewExportUseCase(
		employeeRepo, customerRepo, projectRepo, inventoryRepo, expenseRepo,
		pdfGenerator, excelGenerator, cfg.Company.Name,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // los reportes completos tardan más en serializar
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Constructora API",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Servidor de Constructora API en ejecución")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		EmployeeUC:  employeeUC,
		CustomerUC:  customerUC,
		ProjectUC:   projectUC,
		InventoryUC: inventoryUC,
		ExpenseUC:   expenseUC,
		ActivityUC:  activityUC,
		DashboardUC: dashboardUC,
		ReportUC:    reportUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
