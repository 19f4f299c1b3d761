package dto

import "github.com/shopspring/decimal"

// UpdateMarginRequest entrada de la actualización del margen global.
// Expresado como fracción: 0.50 = 50%.
type UpdateMarginRequest struct {
	NewMargin decimal.Decimal `json:"new_margin"`
}

// ConfigResponse vista plana de la configuración global.
type ConfigResponse struct {
	ID                  string          `json:"id"`
	DefaultProfitMargin decimal.Decimal `json:"default_profit_margin"`
}
