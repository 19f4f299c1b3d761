package dto

import "github.com/shopspring/decimal"

// ProductEntryRequest es la entrada del upsert de mercadería. Los decimales son
// punteros: nil significa "no enviado" y cada rama del upsert decide qué campos
// son obligatorios.
type ProductEntryRequest struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Barcode     string           `json:"barcode"`
	UnitType    string           `json:"unit_type"`
	Quantity    *decimal.Decimal `json:"quantity"`
	Cost        *decimal.Decimal `json:"cost"`
}

// UpdateProductRequest es la entrada de la actualización de detalles.
// Todos los campos reemplazan; no hay actualización parcial.
type UpdateProductRequest struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Barcode     string          `json:"barcode"`
	UnitType    string          `json:"unit_type"`
	Cost        decimal.Decimal `json:"cost"`
}

// AdjustStockRequest es la entrada de la corrección manual de stock.
type AdjustStockRequest struct {
	ProductID string          `json:"product_id"`
	NewStock  decimal.Decimal `json:"new_stock"`
}

// ProductResponse es la vista plana de un producto para la capa de presentación.
type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Barcode       string          `json:"barcode"`
	UnitType      string          `json:"unit_type"`
	StockQuantity decimal.Decimal `json:"stock_quantity"`
	Cost          decimal.Decimal `json:"cost"`
}
