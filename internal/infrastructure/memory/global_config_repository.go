package memory

import (
	"sync"

	"github.com/lotolabs-arg/StoreFlow/internal/domain/entity"
	"github.com/lotolabs-arg/StoreFlow/internal/domain/repository"
)

var _ repository.GlobalConfigRepository = (*GlobalConfigRepo)(nil)

// GlobalConfigRepo almacén en memoria del registro único de configuración.
type GlobalConfigRepo struct {
	mu     sync.RWMutex
	config *entity.GlobalConfig
}

// NewGlobalConfigRepository construye el almacén vacío.
func NewGlobalConfigRepository() *GlobalConfigRepo {
	return &GlobalConfigRepo{}
}

// Save reemplaza el registro único.
func (r *GlobalConfigRepo) Save(config *entity.GlobalConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.config = config
	return nil
}

// Find devuelve (nil, nil) si la configuración aún no fue creada.
func (r *GlobalConfigRepo) Find() (*entity.GlobalConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.config, nil
}
