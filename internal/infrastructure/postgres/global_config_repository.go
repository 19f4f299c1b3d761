package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/lotolabs-arg/StoreFlow/internal/domain/entity"
	"github.com/lotolabs-arg/StoreFlow/internal/domain/repository"
)

var _ repository.GlobalConfigRepository = (*GlobalConfigRepo)(nil)

// GlobalConfigRepo implementación del puerto GlobalConfigRepository sobre
// PostgreSQL. La tabla guarda a lo sumo una fila; Find toma la más antigua
// por si alguna migración dejó más de una.
type GlobalConfigRepo struct {
	q Querier
}

// NewGlobalConfigRepository construye el adaptador. Pasar pool o tx (Querier).
func NewGlobalConfigRepository(q Querier) *GlobalConfigRepo {
	return &GlobalConfigRepo{q: q}
}

// Save es upsert por identidad.
func (r *GlobalConfigRepo) Save(config *entity.GlobalConfig) error {
	query := `
		INSERT INTO global_configuration (id, default_profit_margin, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET
			default_profit_margin = EXCLUDED.default_profit_margin`
	_, err := r.q.Exec(context.Background(), query,
		config.ID(), config.DefaultProfitMargin(), config.CreatedAt(),
	)
	if err != nil {
		return fmt.Errorf("save global config: %w", err)
	}
	return nil
}

// Find devuelve el registro único de configuración, o (nil, nil) si aún no existe.
func (r *GlobalConfigRepo) Find() (*entity.GlobalConfig, error) {
	var (
		id        string
		margin    decimal.Decimal
		createdAt time.Time
	)
	err := r.q.QueryRow(context.Background(),
		`SELECT id, default_profit_margin, created_at
		FROM global_configuration ORDER BY created_at LIMIT 1`).
		Scan(&id, &margin, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get global config: %w", err)
	}
	return entity.RehydrateGlobalConfig(id, createdAt, margin), nil
}
