package entity

import (
	"time"

	"github.com/google/uuid"
)

// base aporta identidad y timestamp de creación a todos los agregados.
// El id es un UUID opaco generado en la construcción e inmutable después;
// la igualdad entre agregados del mismo tipo es estrictamente por id.
type base struct {
	id        string
	createdAt time.Time
}

func newBase() base {
	return base{
		id:        uuid.New().String(),
		createdAt: time.Now(),
	}
}

// rehydratedBase reconstruye la identidad desde persistencia sin generar un id nuevo.
func rehydratedBase(id string, createdAt time.Time) base {
	return base{id: id, createdAt: createdAt}
}

// ID devuelve el identificador único del agregado.
func (b base) ID() string { return b.id }

// CreatedAt devuelve el momento de creación del agregado.
func (b base) CreatedAt() time.Time { return b.createdAt }
