package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lotolabs-arg/StoreFlow/internal/domain/entity"
)

func TestUnitType_AllowsFractions(t *testing.T) {
	// Solo UNIT prohíbe fracciones; el resto las admite.
	assert.False(t, entity.UnitTypeUnit.AllowsFractions())
	for _, u := range []entity.UnitType{
		entity.UnitTypeKilogram,
		entity.UnitTypeMeter,
		entity.UnitTypeLiters,
		entity.UnitTypeFraction,
	} {
		assert.True(t, u.AllowsFractions(), "%s debe admitir fracciones", u)
	}
}

func TestParseUnitType_Valido(t *testing.T) {
	u, err := entity.ParseUnitType("KILOGRAM")
	require.NoError(t, err)
	assert.Equal(t, entity.UnitTypeKilogram, u)
}

func TestParseUnitType_InvalidoFalla(t *testing.T) {
	_, err := entity.ParseUnitType("GRAMOS")
	require.Error(t, err)
	assert.EqualError(t, err, "Unit type 'GRAMOS' is not valid.")

	_, err = entity.ParseUnitType("unit")
	require.Error(t, err, "el parseo es case-sensitive")
}

func TestBarcode_IgualdadPorValor(t *testing.T) {
	a := mustBarcode(t, "779123456")
	b := mustBarcode(t, "779123456")
	c := mustBarcode(t, "999")

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
	assert.Equal(t, "779123456", a.Value())
}

func TestBarcode_VacioFalla(t *testing.T) {
	_, err := entity.NewBarcode("  ")
	require.Error(t, err)
	assert.EqualError(t, err, "Barcode value cannot be null or empty.")
}
