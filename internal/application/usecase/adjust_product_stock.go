package usecase

import (
	"github.com/lotolabs-arg/StoreFlow/internal/application/dto"
	"github.com/lotolabs-arg/StoreFlow/internal/domain"
	"github.com/lotolabs-arg/StoreFlow/internal/domain/entity"
	"github.com/lotolabs-arg/StoreFlow/internal/domain/repository"
)

// AdjustProductStock aplica una corrección manual de stock (pérdida, robo,
// reconteo) reemplazando la cantidad de forma directa.
type AdjustProductStock struct {
	productRepo repository.ProductRepository
}

// NewAdjustProductStock construye el caso de uso.
func NewAdjustProductStock(productRepo repository.ProductRepository) *AdjustProductStock {
	return &AdjustProductStock{productRepo: productRepo}
}

// Execute carga el producto y reemplaza el stock. El agregado re-valida
// no-negatividad y compatibilidad con la unidad actual.
func (uc *AdjustProductStock) Execute(actor *entity.User, request dto.AdjustStockRequest) error {
	product, err := uc.productRepo.FindByID(request.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.NewNotFound("Product not found.")
	}

	if err := product.AdjustStock(request.NewStock); err != nil {
		return err
	}

	return uc.productRepo.Save(product)
}
