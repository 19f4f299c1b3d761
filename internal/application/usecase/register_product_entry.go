package usecase

import (
	"strings"

	"github.com/lotolabs-arg/StoreFlow/internal/application/dto"
	"github.com/lotolabs-arg/StoreFlow/internal/domain"
	"github.com/lotolabs-arg/StoreFlow/internal/domain/entity"
	"github.com/lotolabs-arg/StoreFlow/internal/domain/repository"
)

// RegisterProductEntry registra una entrada de mercadería con protocolo upsert:
// si el barcode ya existe en el inventario la entrada es un restock; si no
// existe es un alta, con su propio conjunto de campos obligatorios. La decisión
// depende únicamente de la presencia del barcode en el almacén.
type RegisterProductEntry struct {
	productRepo repository.ProductRepository
}

// NewRegisterProductEntry construye el caso de uso.
func NewRegisterProductEntry(productRepo repository.ProductRepository) *RegisterProductEntry {
	return &RegisterProductEntry{productRepo: productRepo}
}

// Execute ejecuta el upsert. En la rama restock se ignoran name, description y
// unitType del request: un restock nunca cambia campos de identidad. En la rama
// de alta todos los campos son obligatorios, verificados en orden fijo.
func (uc *RegisterProductEntry) Execute(actor *entity.User, request dto.ProductEntryRequest) error {
	if strings.TrimSpace(request.Barcode) == "" {
		return domain.NewValidation("Barcode is required.")
	}

	barcode, err := entity.NewBarcode(request.Barcode)
	if err != nil {
		return err
	}

	existing, err := uc.productRepo.FindByBarcode(barcode)
	if err != nil {
		return err
	}

	if existing != nil {
		if request.Quantity == nil {
			return domain.NewValidation("Quantity is required.")
		}
		if request.Cost == nil {
			return domain.NewValidation("Cost is required.")
		}
		if err := existing.Restock(*request.Quantity, *request.Cost); err != nil {
			return err
		}
		return uc.productRepo.Save(existing)
	}

	if err := validateNewProductData(request); err != nil {
		return err
	}

	unitType, err := entity.ParseUnitType(request.UnitType)
	if err != nil {
		return err
	}

	newProduct, err := entity.NewProduct(request.Name, barcode, unitType, *request.Quantity, *request.Cost)
	if err != nil {
		return err
	}
	newProduct.SetDescription(request.Description)

	return uc.productRepo.Save(newProduct)
}

// validateNewProductData exige los campos de un alta, en orden fijo:
// name, description, unit type, cost, quantity. Un valor de solo espacios
// cuenta como ausente, igual que la rama del barcode.
func validateNewProductData(request dto.ProductEntryRequest) error {
	if strings.TrimSpace(request.Name) == "" {
		return domain.NewValidation("Product name is required for new products.")
	}
	if strings.TrimSpace(request.Description) == "" {
		return domain.NewValidation("Product description is required for new products.")
	}
	if request.UnitType == "" {
		return domain.NewValidation("Unit type is required.")
	}
	if request.Cost == nil {
		return domain.NewValidation("Cost is required.")
	}
	if request.Quantity == nil {
		return domain.NewValidation("Initial stock is required.")
	}
	return nil
}
