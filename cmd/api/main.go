package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/lotolabs-arg/StoreFlow/internal/application/report"
	"github.com/lotolabs-arg/StoreFlow/internal/application/session"
	"github.com/lotolabs-arg/StoreFlow/internal/application/usecase"
	"github.com/lotolabs-arg/StoreFlow/internal/infrastructure/pdf"
	"github.com/lotolabs-arg/StoreFlow/internal/infrastructure/postgres"
	"github.com/lotolabs-arg/StoreFlow/internal/infrastructure/seed"
	httpRouter "github.com/lotolabs-arg/StoreFlow/internal/interfaces/http"
	"github.com/lotolabs-arg/StoreFlow/pkg/config"
	"github.com/lotolabs-arg/StoreFlow/pkg/logger"
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

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	configRepo := postgres.NewGlobalConfigRepository(pool)

	// Datos mínimos: usuario admin y margen por defecto
	if err := seed.New(userRepo, configRepo, log).Run(); err != nil {
		log.Fatal().Err(err).Msg("seed inicial")
	}

	sess := session.NewContext()
	loginUC := usecase.NewLoginUser(userRepo, sess)
	changePasswordUC := usecase.NewChangeUserPassword(userRepo)
	registerEntryUC := usecase.NewRegisterProductEntry(productRepo)
	updateProductUC := usecase.NewUpdateProductDetails(productRepo)
	adjustStockUC := usecase.NewAdjustProductStock(productRepo)
	listProductsUC := usecase.NewListProducts(productRepo)
	updateConfigUC := usecase.NewUpdateGlobalConfig(configRepo)
	inventoryReportUC := report.NewInventoryReportUseCase(productRepo, configRepo, pdf.NewMarotoReportGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "StoreFlow API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		LoginUC:          loginUC,
		ChangePasswordUC: changePasswordUC,
		RegisterEntryUC:  registerEntryUC,
		UpdateProductUC:  updateProductUC,
		AdjustStockUC:    adjustStockUC,
		ListProductsUC:   listProductsUC,
		UpdateConfigUC:   updateConfigUC,
		InventoryReport:  inventoryReportUC,
		UserRepo:         userRepo,
		ConfigRepo:       configRepo,
		JWT: httpRouter.JWTSettings{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
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
