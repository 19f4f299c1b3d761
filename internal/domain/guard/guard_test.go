package guard_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lotolabs-arg/StoreFlow/internal/domain"
	"github.com/lotolabs-arg/StoreFlow/internal/domain/guard"
)

// ──────────────────────────────────────────────────────────────────────────────
// NotEmpty
// ──────────────────────────────────────────────────────────────────────────────

func TestNotEmpty_ValorValido(t *testing.T) {
	assert.NoError(t, guard.NotEmpty("Coca Cola", "Product name"))
}

func TestNotEmpty_VacioYSoloEspacios(t *testing.T) {
	for _, s := range []string{"", "   ", "\t\n"} {
		err := guard.NotEmpty(s, "Product name")
		require.Error(t, err, "el valor %q debe rechazarse", s)
		assert.EqualError(t, err, "Product name cannot be null or empty.")
		assert.True(t, domain.IsKind(err, domain.KindValidation),
			"debe ser un error de validación")
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// NotNegative / Positive
// ──────────────────────────────────────────────────────────────────────────────

func TestNotNegative_CeroYPositivoPasan(t *testing.T) {
	assert.NoError(t, guard.NotNegative(decimal.Zero, "Cost"))
	assert.NoError(t, guard.NotNegative(decimal.NewFromInt(10), "Cost"))
}

func TestNotNegative_NegativoFalla(t *testing.T) {
	err := guard.NotNegative(decimal.NewFromInt(-1), "Cost")
	require.Error(t, err)
	assert.EqualError(t, err, "Cost cannot be negative.")
}

func TestPositive_CeroYNegativoFallan(t *testing.T) {
	for _, v := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
		err := guard.Positive(v, "Quantity to add")
		require.Error(t, err, "el valor %s debe rechazarse", v.String())
		assert.EqualError(t, err, "Quantity to add must be greater than zero.")
	}
	assert.NoError(t, guard.Positive(decimal.NewFromFloat(0.001), "Quantity to add"))
}

// ──────────────────────────────────────────────────────────────────────────────
// WholeNumber
// ──────────────────────────────────────────────────────────────────────────────

func TestWholeNumber_EnteroExactoPasa(t *testing.T) {
	assert.NoError(t, guard.WholeNumber(decimal.NewFromInt(15), "Stock for UNIT products"))
	// 5.0 es entero aunque tenga parte decimal escrita
	assert.NoError(t, guard.WholeNumber(decimal.RequireFromString("5.0"), "Stock for UNIT products"))
}

func TestWholeNumber_FraccionFalla(t *testing.T) {
	err := guard.WholeNumber(decimal.RequireFromString("1.5"), "Stock for UNIT products")
	require.Error(t, err)
	assert.EqualError(t, err, "Stock for UNIT products must be a whole number.")
}

// ──────────────────────────────────────────────────────────────────────────────
// RealisticProfitMargin
// ──────────────────────────────────────────────────────────────────────────────

func TestRealisticProfitMargin_HastaDiezPasa(t *testing.T) {
	assert.NoError(t, guard.RealisticProfitMargin(decimal.RequireFromString("0.50"), "Profit Margin"))
	assert.NoError(t, guard.RealisticProfitMargin(decimal.NewFromInt(2), "Profit Margin"))
	// 10.0 es el techo inclusivo: 1000% es absurdo pero permitido
	assert.NoError(t, guard.RealisticProfitMargin(decimal.NewFromInt(10), "Profit Margin"))
}

func TestRealisticProfitMargin_ConfusionPorcentajeFraccion(t *testing.T) {
	// El usuario tipeó 50 queriendo decir 0.50: el mensaje sugiere la corrección.
	err := guard.RealisticProfitMargin(decimal.NewFromInt(50), "Profit Margin")
	require.Error(t, err)
	assert.EqualError(t, err, "Profit Margin 50 looks unrealistic. Did you mean 0.5?")
	assert.True(t, domain.IsKind(err, domain.KindValidation))
}
