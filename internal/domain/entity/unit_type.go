package entity

import "github.com/lotolabs-arg/StoreFlow/internal/domain"

// UnitType define la unidad de medida de un producto y su capacidad de
// fraccionamiento. Conjunto cerrado: no hay extensión dinámica.
type UnitType string

const (
	UnitTypeUnit     UnitType = "UNIT"     // unidades discretas, sin fracciones
	UnitTypeKilogram UnitType = "KILOGRAM" // peso
	UnitTypeMeter    UnitType = "METER"    // longitud
	UnitTypeLiters   UnitType = "LITERS"   // volumen
	UnitTypeFraction UnitType = "FRACTION" // genérico fraccionable
)

// AllowsFractions reporta si la unidad admite cantidades no enteras.
// Solo UNIT las prohíbe.
func (u UnitType) AllowsFractions() bool {
	return u != UnitTypeUnit
}

// IsValid reporta si el valor pertenece al conjunto cerrado de unidades.
func (u UnitType) IsValid() bool {
	switch u {
	case UnitTypeUnit, UnitTypeKilogram, UnitTypeMeter, UnitTypeLiters, UnitTypeFraction:
		return true
	}
	return false
}

// ParseUnitType convierte un string en UnitType, validando pertenencia al conjunto.
func ParseUnitType(s string) (UnitType, error) {
	u := UnitType(s)
	if !u.IsValid() {
		return "", domain.NewValidation("Unit type '" + s + "' is not valid.")
	}
	return u, nil
}
