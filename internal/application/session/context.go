// Package session mantiene al actor autenticado del proceso. No es un agregado:
// es estado de sesión puro, con ciclo de vida atado al proceso en ejecución.
package session

import (
	"sync"

	"github.com/lotolabs-arg/StoreFlow/internal/domain/entity"
)

// Context guarda a lo sumo una referencia al usuario autenticado actual.
// Se inyecta como colaborador explícito (nada de singleton global) y el mutex
// serializa get/set/clear: un login concurrente con una lectura de "usuario
// actual" jamás observa un estado a medio escribir.
type Context struct {
	mu          sync.RWMutex
	currentUser *entity.User
}

// NewContext construye un holder vacío.
func NewContext() *Context {
	return &Context{}
}

// SetCurrentUser registra al usuario autenticado.
func (c *Context) SetCurrentUser(user *entity.User) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentUser = user
}

// CurrentUser devuelve el usuario autenticado, o (nil, false) si no hay sesión.
func (c *Context) CurrentUser() (*entity.User, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.currentUser, c.currentUser != nil
}

// Logout limpia la sesión.
func (c *Context) Logout() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentUser = nil
}
