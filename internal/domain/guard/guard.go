// Package guard reúne las validaciones de precondición (guard clauses) que
// comparten las entidades del dominio. Cada función recibe el valor y el nombre
// del campo, y devuelve un *domain.Error de validación con mensaje construido
// a partir de ese nombre. Sin estado, sin efectos secundarios.
package guard

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/lotolabs-arg/StoreFlow/internal/domain"
)

// unrealisticMargin es el techo del margen de ganancia: 10.0 = 1000%.
// Más que eso casi siempre es un error de captura (50 en vez de 0.50).
var unrealisticMargin = decimal.NewFromInt(10)

// NotEmpty valida que un string no sea vacío ni solo espacios.
func NotEmpty(value, fieldName string) error {
	if isBlank(value) {
		return domain.NewValidation(fieldName + " cannot be null or empty.")
	}
	return nil
}

// NotNegative valida que un decimal no sea negativo.
func NotNegative(value decimal.Decimal, fieldName string) error {
	if value.IsNegative() {
		return domain.NewValidation(fieldName + " cannot be negative.")
	}
	return nil
}

// Positive valida que un decimal sea estrictamente mayor que cero.
func Positive(value decimal.Decimal, fieldName string) error {
	if !value.IsPositive() {
		return domain.NewValidation(fieldName + " must be greater than zero.")
	}
	return nil
}

// WholeNumber valida que un decimal sea un número entero exacto.
// Se usa para unidades que no admiten fracciones ("1.5 botellas" no existe).
func WholeNumber(value decimal.Decimal, fieldName string) error {
	if !value.IsInteger() {
		return domain.NewValidation(fieldName + " must be a whole number.")
	}
	return nil
}

// RealisticProfitMargin valida que un margen expresado como fracción no supere
// 10.0 (1000%). Un valor mayor delata confusión porcentaje/fracción, y el
// mensaje sugiere el valor probablemente deseado (dividir por 100).
func RealisticProfitMargin(value decimal.Decimal, fieldName string) error {
	if value.GreaterThan(unrealisticMargin) {
		suggested := value.Div(decimal.NewFromInt(100))
		return domain.NewValidation(fmt.Sprintf(
			"%s %s looks unrealistic. Did you mean %s?",
			fieldName, value.String(), suggested.String(),
		))
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
