package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lotolabs-arg/StoreFlow/internal/application/dto"
	"github.com/lotolabs-arg/StoreFlow/internal/application/usecase"
	"github.com/lotolabs-arg/StoreFlow/internal/domain/repository"
)

// ProductHandler expone las operaciones de inventario sobre productos.
type ProductHandler struct {
	registerEntryUC *usecase.RegisterProductEntry
	updateUC        *usecase.UpdateProductDetails
	adjustStockUC   *usecase.AdjustProductStock
	listUC          *usecase.ListProducts
	userRepo        repository.UserRepository
}

// NewProductHandler construye el handler de productos.
func NewProductHandler(
	registerEntryUC *usecase.RegisterProductEntry,
	updateUC *usecase.UpdateProductDetails,
	adjustStockUC *usecase.AdjustProductStock,
	listUC *usecase.ListProducts,
	userRepo repository.UserRepository,
) *ProductHandler {
	return &ProductHandler{
		registerEntryUC: registerEntryUC,
		updateUC:        updateUC,
		adjustStockUC:   adjustStockUC,
		listUC:          listUC,
		userRepo:        userRepo,
	}
}

// RegisterEntry registra una entrada de mercadería (upsert por barcode).
func (h *ProductHandler) RegisterEntry(c *fiber.Ctx) error {
	var in dto.ProductEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	actor, err := loadActor(c, h.userRepo)
	if err != nil {
		return businessError(c, err)
	}

	if err := h.registerEntryUC.Execute(actor, in); err != nil {
		return businessError(c, err)
	}
	return c.SendStatus(fiber.StatusCreated)
}

// Update actualiza los detalles de un producto.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	in.ID = c.Params("id")

	actor, err := loadActor(c, h.userRepo)
	if err != nil {
		return businessError(c, err)
	}

	if err := h.updateUC.Execute(actor, in); err != nil {
		return businessError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AdjustStock aplica una corrección manual de stock.
func (h *ProductHandler) AdjustStock(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	in.ProductID = c.Params("id")

	actor, err := loadActor(c, h.userRepo)
	if err != nil {
		return businessError(c, err)
	}

	if err := h.adjustStockUC.Execute(actor, in); err != nil {
		return businessError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List devuelve el inventario completo.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	items, err := h.listUC.Execute()
	if err != nil {
		return businessError(c, err)
	}
	return c.JSON(items)
}
