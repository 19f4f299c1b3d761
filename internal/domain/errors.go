package domain

import "errors"

// Kind clasifica una violación de regla de negocio. La capa de presentación
// mapea cada Kind a su status HTTP; el mensaje se muestra tal cual.
type Kind int

const (
	KindValidation   Kind = iota // entrada inválida (campo vacío, negativo, fraccional prohibido)
	KindNotFound                 // búsqueda por id/username/barcode sin resultado
	KindConflict                 // colisión de barcode, stock insuficiente, password repetido
	KindUnauthorized             // credenciales inválidas
	KindForbidden                // actor sin permiso para la operación
)

// Error representa una violación de regla de negocio con mensaje legible.
// Los fallos de infraestructura (conexión, SQL) NO usan este tipo: viajan como
// errores envueltos con %w y el caller los distingue con AsError.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// NewValidation construye un error de validación de entrada.
func NewValidation(msg string) *Error { return &Error{Kind: KindValidation, Message: msg} }

// NewNotFound construye un error de recurso no encontrado.
func NewNotFound(msg string) *Error { return &Error{Kind: KindNotFound, Message: msg} }

// NewConflict construye un error de conflicto con el estado actual.
func NewConflict(msg string) *Error { return &Error{Kind: KindConflict, Message: msg} }

// NewUnauthorized construye un error de autenticación.
func NewUnauthorized(msg string) *Error { return &Error{Kind: KindUnauthorized, Message: msg} }

// NewForbidden construye un error de autorización.
func NewForbidden(msg string) *Error { return &Error{Kind: KindForbidden, Message: msg} }

// AsError extrae el *Error de negocio si err lo es (directo o envuelto).
func AsError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// IsKind reporta si err es una violación de negocio del Kind dado.
func IsKind(err error, k Kind) bool {
	de, ok := AsError(err)
	return ok && de.Kind == k
}
