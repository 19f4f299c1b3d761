package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/lotolabs-arg/StoreFlow/internal/domain"
	"github.com/lotolabs-arg/StoreFlow/internal/domain/entity"
	"github.com/lotolabs-arg/StoreFlow/internal/domain/repository"
)

// defaultProfitMargin es el margen con el que nace la configuración si nadie
// la creó todavía: 0.50 = 50%.
var defaultProfitMargin = decimal.NewFromFloat(0.50)

// UpdateGlobalConfig actualiza el margen de ganancia global. Solo ADMIN.
type UpdateGlobalConfig struct {
	configRepo repository.GlobalConfigRepository
}

// NewUpdateGlobalConfig construye el caso de uso.
func NewUpdateGlobalConfig(configRepo repository.GlobalConfigRepository) *UpdateGlobalConfig {
	return &UpdateGlobalConfig{configRepo: configRepo}
}

// Execute verifica el rol del actor ANTES de cualquier acceso a datos, carga la
// configuración (o la crea con el margen por defecto si aún no existe) y aplica
// el margen nuevo. La validez del margen la impone el agregado, sin importar
// quién llama.
func (uc *UpdateGlobalConfig) Execute(actor *entity.User, newMargin decimal.Decimal) error {
	if !actor.IsAdmin() {
		return domain.NewForbidden("Access Denied: Only ADMIN can modify global configuration.")
	}

	config, err := uc.configRepo.Find()
	if err != nil {
		return err
	}
	if config == nil {
		config, err = entity.NewGlobalConfig(defaultProfitMargin)
		if err != nil {
			return err
		}
	}

	if err := config.UpdateProfitMargin(newMargin); err != nil {
		return err
	}

	return uc.configRepo.Save(config)
}
