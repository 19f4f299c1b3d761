package repository

import "github.com/lotolabs-arg/StoreFlow/internal/domain/entity"

// GlobalConfigRepository define el puerto de persistencia para la configuración
// global. La semántica de singleton (un solo registro) la respeta el caso de
// uso que llama Find antes de Save; el puerto no la impone.
type GlobalConfigRepository interface {
	Save(config *entity.GlobalConfig) error
	Find() (*entity.GlobalConfig, error)
}
