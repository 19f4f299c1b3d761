package entity

import (
	"github.com/lotolabs-arg/StoreFlow/internal/domain/guard"
)

// Barcode es el value object que identifica un producto frente al mundo físico.
// Sin identidad propia: dos barcodes son iguales si su valor es igual.
type Barcode struct {
	value string
}

// NewBarcode construye un barcode validando que el valor no sea vacío.
func NewBarcode(value string) (Barcode, error) {
	if err := guard.NotEmpty(value, "Barcode value"); err != nil {
		return Barcode{}, err
	}
	return Barcode{value: value}, nil
}

// Value devuelve el valor crudo del barcode.
func (b Barcode) Value() string { return b.value }

// Equals compara por valor.
func (b Barcode) Equals(other Barcode) bool { return b.value == other.value }

func (b Barcode) String() string { return b.value }
