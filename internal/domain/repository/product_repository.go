package repository

import "github.com/lotolabs-arg/StoreFlow/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Save es upsert por identidad: re-guardar un id ya persistido actualiza.
// Las búsquedas devuelven (nil, nil) cuando no hay resultado.
type ProductRepository interface {
	Save(product *entity.Product) error
	FindByID(id string) (*entity.Product, error)
	FindByBarcode(barcode entity.Barcode) (*entity.Product, error)
	FindAll() ([]*entity.Product, error)
}
