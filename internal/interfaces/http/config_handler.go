package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lotolabs-arg/StoreFlow/internal/application/dto"
	"github.com/lotolabs-arg/StoreFlow/internal/application/usecase"
	"github.com/lotolabs-arg/StoreFlow/internal/domain/repository"
)

// ConfigHandler expone la configuración global del comercio.
type ConfigHandler struct {
	updateUC   *usecase.UpdateGlobalConfig
	configRepo repository.GlobalConfigRepository
	userRepo   repository.UserRepository
}

// NewConfigHandler construye el handler de configuración.
func NewConfigHandler(updateUC *usecase.UpdateGlobalConfig, configRepo repository.GlobalConfigRepository, userRepo repository.UserRepository) *ConfigHandler {
	return &ConfigHandler{updateUC: updateUC, configRepo: configRepo, userRepo: userRepo}
}

// Get devuelve la configuración actual (404 si todavía no fue creada).
func (h *ConfigHandler) Get(c *fiber.Ctx) error {
	config, err := h.configRepo.Find()
	if err != nil {
		return businessError(c, err)
	}
	if config == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "configuración no inicializada"})
	}
	return c.JSON(dto.ConfigResponse{
		ID:                  config.ID(),
		DefaultProfitMargin: config.DefaultProfitMargin(),
	})
}

// UpdateMargin actualiza el margen de ganancia global (solo ADMIN; la
// autorización la decide el caso de uso, no el middleware).
func (h *ConfigHandler) UpdateMargin(c *fiber.Ctx) error {
	var in dto.UpdateMarginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	actor, err := loadActor(c, h.userRepo)
	if err != nil {
		return businessError(c, err)
	}

	if err := h.updateUC.Execute(actor, in.NewMargin); err != nil {
		return businessError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
