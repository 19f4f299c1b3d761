package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lotolabs-arg/StoreFlow/internal/domain/guard"
)

// GlobalConfig representa la configuración global del comercio. Singleton
// lógico: a lo sumo un registro por despliegue, garantizado por el contrato
// find/save del repositorio, no por este tipo.
type GlobalConfig struct {
	base

	defaultProfitMargin decimal.Decimal
}

// NewGlobalConfig construye la configuración validando el margen inicial.
func NewGlobalConfig(defaultProfitMargin decimal.Decimal) (*GlobalConfig, error) {
	cfg := &GlobalConfig{base: newBase()}
	if err := cfg.setProfitMargin(defaultProfitMargin); err != nil {
		return nil, err
	}
	return cfg, nil
}

// RehydrateGlobalConfig reconstruye el agregado desde persistencia.
func RehydrateGlobalConfig(id string, createdAt time.Time, defaultProfitMargin decimal.Decimal) *GlobalConfig {
	return &GlobalConfig{
		base:                rehydratedBase(id, createdAt),
		defaultProfitMargin: defaultProfitMargin,
	}
}

// UpdateProfitMargin reemplaza el margen. Única vía de mutación; pasa por el
// mismo setter privado que el constructor.
func (c *GlobalConfig) UpdateProfitMargin(newMargin decimal.Decimal) error {
	return c.setProfitMargin(newMargin)
}

// DefaultProfitMargin devuelve el margen de ganancia por defecto, expresado
// como fracción (0.50 = 50%).
func (c *GlobalConfig) DefaultProfitMargin() decimal.Decimal {
	return c.defaultProfitMargin
}

func (c *GlobalConfig) setProfitMargin(margin decimal.Decimal) error {
	if err := guard.NotNegative(margin, "Profit Margin"); err != nil {
		return err
	}
	if err := guard.RealisticProfitMargin(margin, "Profit Margin"); err != nil {
		return err
	}
	c.defaultProfitMargin = margin
	return nil
}
