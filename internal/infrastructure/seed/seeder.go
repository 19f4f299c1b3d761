// Package seed crea los datos mínimos para que el sistema arranque: el usuario
// administrador y la configuración global con el margen por defecto.
package seed

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lotolabs-arg/StoreFlow/internal/domain/entity"
	"github.com/lotolabs-arg/StoreFlow/internal/domain/repository"
	"github.com/lotolabs-arg/StoreFlow/pkg/logger"
)

// Seeder puebla los repositorios con los registros iniciales. Idempotente:
// solo crea lo que falta.
type Seeder struct {
	userRepo   repository.UserRepository
	configRepo repository.GlobalConfigRepository
	log        *logger.Logger
}

// New construye el seeder.
func New(userRepo repository.UserRepository, configRepo repository.GlobalConfigRepository, log *logger.Logger) *Seeder {
	return &Seeder{userRepo: userRepo, configRepo: configRepo, log: log}
}

// Run crea el usuario admin (admin / 1234) y la configuración global (margen
// 0.50) si no existen todavía.
func (s *Seeder) Run() error {
	existing, err := s.userRepo.FindByUsername("admin")
	if err != nil {
		return fmt.Errorf("seed: buscar admin: %w", err)
	}
	if existing == nil {
		admin, err := entity.NewUser("admin", "1234", entity.RoleAdmin)
		if err != nil {
			return fmt.Errorf("seed: construir admin: %w", err)
		}
		if err := s.userRepo.Save(admin); err != nil {
			return fmt.Errorf("seed: guardar admin: %w", err)
		}
		s.log.Info().Str("username", "admin").Msg("SEED: usuario admin creado (admin / 1234)")
	}

	config, err := s.configRepo.Find()
	if err != nil {
		return fmt.Errorf("seed: buscar configuración: %w", err)
	}
	if config == nil {
		cfg, err := entity.NewGlobalConfig(decimal.NewFromFloat(0.50))
		if err != nil {
			return fmt.Errorf("seed: construir configuración: %w", err)
		}
		if err := s.configRepo.Save(cfg); err != nil {
			return fmt.Errorf("seed: guardar configuración: %w", err)
		}
		s.log.Info().Str("margin", "0.50").Msg("SEED: configuración global creada")
	}

	return nil
}
