// Package memory implementa los puertos de persistencia sobre mapas en
// memoria. El núcleo es completamente testeable contra estos adaptadores, sin
// levantar PostgreSQL.
package memory

import (
	"sync"

	"github.com/lotolabs-arg/StoreFlow/internal/domain/entity"
	"github.com/lotolabs-arg/StoreFlow/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo almacén de productos en memoria, seguro para uso concurrente.
type ProductRepo struct {
	mu       sync.RWMutex
	products map[string]*entity.Product // id -> agregado
}

// NewProductRepository construye el almacén vacío.
func NewProductRepository() *ProductRepo {
	return &ProductRepo{products: make(map[string]*entity.Product)}
}

// Save es upsert por identidad.
func (r *ProductRepo) Save(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[product.ID()] = product
	return nil
}

// FindByID devuelve (nil, nil) si no existe.
func (r *ProductRepo) FindByID(id string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.products[id], nil
}

// FindByBarcode devuelve (nil, nil) si ningún producto tiene ese barcode.
func (r *ProductRepo) FindByBarcode(barcode entity.Barcode) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.Barcode().Equals(barcode) {
			return p, nil
		}
	}
	return nil, nil
}

// FindAll lista todos los productos.
func (r *ProductRepo) FindAll() ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		list = append(list, p)
	}
	return list, nil
}
