package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lotolabs-arg/StoreFlow/internal/application/report"
	"github.com/lotolabs-arg/StoreFlow/internal/application/usecase"
	"github.com/lotolabs-arg/StoreFlow/internal/domain/entity"
	"github.com/lotolabs-arg/StoreFlow/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	LoginUC          *usecase.LoginUser
	ChangePasswordUC *usecase.ChangeUserPassword
	RegisterEntryUC  *usecase.RegisterProductEntry
	UpdateProductUC  *usecase.UpdateProductDetails
	AdjustStockUC    *usecase.AdjustProductStock
	ListProductsUC   *usecase.ListProducts
	UpdateConfigUC   *usecase.UpdateGlobalConfig
	InventoryReport  *report.InventoryReportUseCase
	UserRepo         repository.UserRepository
	ConfigRepo       repository.GlobalConfigRepository
	JWT              JWTSettings
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.LoginUC, deps.ChangePasswordUC, deps.UserRepo, deps.JWT)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWT.Secret))

	protected.Get("/auth/me", authHandler.Me)
	protected.Put("/auth/password", authHandler.ChangePassword)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.RegisterEntryUC, deps.UpdateProductUC, deps.AdjustStockUC, deps.ListProductsUC, deps.UserRepo)
	products.Get("/", productHandler.List)
	products.Post("/entries", productHandler.RegisterEntry)
	products.Put("/:id", productHandler.Update)
	products.Put("/:id/stock", productHandler.AdjustStock)

	// Configuración global (el caso de uso re-verifica el rol; el middleware
	// corta temprano a quien ni siquiera es ADMIN según su token)
	configHandler := NewConfigHandler(deps.UpdateConfigUC, deps.ConfigRepo, deps.UserRepo)
	protected.Get("/config", configHandler.Get)
	protected.Put("/config/margin", RequireRole(string(entity.RoleAdmin)), configHandler.UpdateMargin)

	// Reportes
	reportHandler := NewReportHandler(deps.InventoryReport, deps.UserRepo)
	protected.Get("/reports/inventory", reportHandler.DownloadInventory)
}
