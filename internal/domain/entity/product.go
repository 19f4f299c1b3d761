package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lotolabs-arg/StoreFlow/internal/domain"
	"github.com/lotolabs-arg/StoreFlow/internal/domain/guard"
)

// Product representa un ítem físico del inventario: maneja nivel de stock,
// identificación (barcode) y costo de reposición. Invariantes, válidos en todo
// momento y re-verificados en cada mutación:
//
//   - stockQuantity nunca es negativo
//   - si unitType no admite fracciones, stockQuantity es siempre entero
//   - cost nunca es negativo
type Product struct {
	base

	name          string
	description   string
	barcode       Barcode
	unitType      UnitType
	stockQuantity decimal.Decimal
	cost          decimal.Decimal
}

// NewProduct construye un producto validando nombre, unidad, stock inicial y
// costo. La descripción es opcional a nivel de tipo y se fija con SetDescription.
func NewProduct(name string, barcode Barcode, unitType UnitType, initialStock, cost decimal.Decimal) (*Product, error) {
	if err := guard.NotEmpty(name, "Product name"); err != nil {
		return nil, err
	}
	if err := guard.NotEmpty(barcode.Value(), "Barcode"); err != nil {
		return nil, err
	}
	if !unitType.IsValid() {
		return nil, domain.NewValidation("Unit Type cannot be null.")
	}
	if err := guard.NotNegative(initialStock, "Initial stock"); err != nil {
		return nil, err
	}
	if err := guard.NotNegative(cost, "Cost"); err != nil {
		return nil, err
	}
	if err := validateStockForUnitType(initialStock, unitType); err != nil {
		return nil, err
	}

	return &Product{
		base:          newBase(),
		name:          name,
		barcode:       barcode,
		unitType:      unitType,
		stockQuantity: initialStock,
		cost:          cost,
	}, nil
}

// RehydrateProduct reconstruye el agregado desde persistencia sin re-validar:
// un registro persistido en estado imposible es un fallo de infraestructura,
// no una regla de negocio.
func RehydrateProduct(id string, createdAt time.Time, name, description string, barcode Barcode, unitType UnitType, stockQuantity, cost decimal.Decimal) *Product {
	return &Product{
		base:          rehydratedBase(id, createdAt),
		name:          name,
		description:   description,
		barcode:       barcode,
		unitType:      unitType,
		stockQuantity: stockQuantity,
		cost:          cost,
	}
}

// Restock registra una entrada de mercadería: suma quantityIn al stock y
// reemplaza el costo por newEntryCost (gana el último costo de entrada, sin
// promedios ponderados). Ambos argumentos deben ser estrictamente positivos.
func (p *Product) Restock(quantityIn, newEntryCost decimal.Decimal) error {
	if err := guard.Positive(quantityIn, "Quantity to add"); err != nil {
		return err
	}
	if err := guard.Positive(newEntryCost, "New Entry Cost"); err != nil {
		return err
	}
	if err := validateStockForUnitType(quantityIn, p.unitType); err != nil {
		return err
	}

	p.cost = newEntryCost
	p.stockQuantity = p.stockQuantity.Add(quantityIn)
	return nil
}

// ReduceStock descuenta quantity del stock. Falla con conflicto de stock
// insuficiente antes de tocar el estado si no alcanza.
func (p *Product) ReduceStock(quantity decimal.Decimal) error {
	if err := guard.NotNegative(quantity, "Quantity to reduce"); err != nil {
		return err
	}
	if err := validateStockForUnitType(quantity, p.unitType); err != nil {
		return err
	}
	if p.stockQuantity.LessThan(quantity) {
		return domain.NewConflict("Insufficient stock for product: " + p.name)
	}
	p.stockQuantity = p.stockQuantity.Sub(quantity)
	return nil
}

// UpdateDetails reemplaza nombre, descripción, barcode, unidad y costo de forma
// atómica: ninguna asignación ocurre hasta que todas las validaciones pasan.
// El stock ACTUAL se re-valida contra la unidad NUEVA; sin esto, cambiar a UNIT
// un producto con stock 1.5 dejaría el agregado en estado inválido en silencio.
func (p *Product) UpdateDetails(name, description string, barcode Barcode, unitType UnitType, cost decimal.Decimal) error {
	if err := guard.NotEmpty(name, "Product name"); err != nil {
		return err
	}
	if err := guard.NotEmpty(barcode.Value(), "Barcode"); err != nil {
		return err
	}
	if !unitType.IsValid() {
		return domain.NewValidation("Unit Type cannot be null.")
	}
	if err := guard.NotNegative(cost, "Cost"); err != nil {
		return err
	}
	if err := validateStockForUnitType(p.stockQuantity, unitType); err != nil {
		return err
	}

	p.name = name
	p.description = description
	p.barcode = barcode
	p.unitType = unitType
	p.cost = cost
	return nil
}

// AdjustStock reemplaza el stock de forma directa. Para correcciones manuales
// (pérdida, robo, reconteo); no pasa por la semántica de Restock/ReduceStock.
func (p *Product) AdjustStock(newStock decimal.Decimal) error {
	if err := guard.NotNegative(newStock, "Stock"); err != nil {
		return err
	}
	if err := validateStockForUnitType(newStock, p.unitType); err != nil {
		return err
	}
	p.stockQuantity = newStock
	return nil
}

// SetDescription fija la descripción (opcional, sin validación).
func (p *Product) SetDescription(description string) {
	p.description = description
}

func (p *Product) Name() string                   { return p.name }
func (p *Product) Description() string            { return p.description }
func (p *Product) Barcode() Barcode               { return p.barcode }
func (p *Product) UnitType() UnitType             { return p.unitType }
func (p *Product) StockQuantity() decimal.Decimal { return p.stockQuantity }
func (p *Product) Cost() decimal.Decimal          { return p.cost }

// Equals compara por identidad.
func (p *Product) Equals(other *Product) bool {
	return other != nil && p.ID() == other.ID()
}

func validateStockForUnitType(quantity decimal.Decimal, unitType UnitType) error {
	if !unitType.AllowsFractions() {
		return guard.WholeNumber(quantity, "Stock for UNIT products")
	}
	return nil
}
