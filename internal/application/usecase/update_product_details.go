package usecase

import (
	"github.com/lotolabs-arg/StoreFlow/internal/application/dto"
	"github.com/lotolabs-arg/StoreFlow/internal/domain"
	"github.com/lotolabs-arg/StoreFlow/internal/domain/entity"
	"github.com/lotolabs-arg/StoreFlow/internal/domain/repository"
)

// UpdateProductDetails actualiza los detalles de un producto existente,
// cuidando que el barcode nuevo no colisione con otro producto.
type UpdateProductDetails struct {
	productRepo repository.ProductRepository
}

// NewUpdateProductDetails construye el caso de uso.
func NewUpdateProductDetails(productRepo repository.ProductRepository) *UpdateProductDetails {
	return &UpdateProductDetails{productRepo: productRepo}
}

// Execute carga el producto por id y aplica UpdateDetails. El chequeo de
// colisión de barcode solo corre cuando el barcode realmente cambia: re-guardar
// el mismo barcode siempre está permitido.
func (uc *UpdateProductDetails) Execute(actor *entity.User, request dto.UpdateProductRequest) error {
	product, err := uc.productRepo.FindByID(request.ID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.NewNotFound("Product not found.")
	}

	newBarcode, err := entity.NewBarcode(request.Barcode)
	if err != nil {
		return err
	}

	if !product.Barcode().Equals(newBarcode) {
		collision, err := uc.productRepo.FindByBarcode(newBarcode)
		if err != nil {
			return err
		}
		if collision != nil {
			return domain.NewConflict("Barcode already exists in another product.")
		}
	}

	unitType, err := entity.ParseUnitType(request.UnitType)
	if err != nil {
		return err
	}

	if err := product.UpdateDetails(request.Name, request.Description, newBarcode, unitType, request.Cost); err != nil {
		return err
	}

	return uc.productRepo.Save(product)
}
