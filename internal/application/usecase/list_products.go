package usecase

import (
	"github.com/lotolabs-arg/StoreFlow/internal/application/dto"
	"github.com/lotolabs-arg/StoreFlow/internal/domain/entity"
	"github.com/lotolabs-arg/StoreFlow/internal/domain/repository"
)

// ListProducts devuelve el inventario completo como vistas planas.
type ListProducts struct {
	productRepo repository.ProductRepository
}

// NewListProducts construye el caso de uso.
func NewListProducts(productRepo repository.ProductRepository) *ListProducts {
	return &ListProducts{productRepo: productRepo}
}

// Execute lista todos los productos.
func (uc *ListProducts) Execute() ([]dto.ProductResponse, error) {
	products, err := uc.productRepo.FindAll()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, ToProductResponse(p))
	}
	return items, nil
}

// ToProductResponse aplana un producto para la capa de presentación.
func ToProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:            p.ID(),
		Name:          p.Name(),
		Description:   p.Description(),
		Barcode:       p.Barcode().Value(),
		UnitType:      string(p.UnitType()),
		StockQuantity: p.StockQuantity(),
		Cost:          p.Cost(),
	}
}
