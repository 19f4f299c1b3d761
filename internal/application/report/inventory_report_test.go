package report_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lotolabs-arg/StoreFlow/internal/application/report"
	"github.com/lotolabs-arg/StoreFlow/internal/domain/entity"
	"github.com/lotolabs-arg/StoreFlow/internal/infrastructure/memory"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	return decimal.RequireFromString(s)
}

// fakeGenerator captura el documento y devuelve bytes fijos.
type fakeGenerator struct {
	captured *report.Document
}

func (g *fakeGenerator) GenerateInventoryReport(_ context.Context, doc *report.Document) ([]byte, error) {
	g.captured = doc
	return []byte("%PDF-fake"), nil
}

func seedRepos(t *testing.T, margin string) (*memory.ProductRepo, *memory.GlobalConfigRepo) {
	t.Helper()
	productRepo := memory.NewProductRepository()
	configRepo := memory.NewGlobalConfigRepository()

	if margin != "" {
		cfg, err := entity.NewGlobalConfig(dec(t, margin))
		require.NoError(t, err)
		require.NoError(t, configRepo.Save(cfg))
	}

	barcode, err := entity.NewBarcode("111")
	require.NoError(t, err)
	p, err := entity.NewProduct("Coca", barcode, entity.UnitTypeUnit, dec(t, "10"), dec(t, "100"))
	require.NoError(t, err)
	require.NoError(t, productRepo.Save(p))

	return productRepo, configRepo
}

func TestBuild_ValorizaConElMargenGlobal(t *testing.T) {
	productRepo, configRepo := seedRepos(t, "0.50")
	uc := report.NewInventoryReportUseCase(productRepo, configRepo, &fakeGenerator{})

	doc, err := uc.Build()
	require.NoError(t, err)
	require.Len(t, doc.Lines, 1)

	line := doc.Lines[0]
	assert.Equal(t, "Coca", line.Name)
	// precio sugerido = 100 × (1 + 0.50) = 150
	assert.True(t, dec(t, "150").Equal(line.SuggestedPrice),
		"precio sugerido = costo × (1 + margen)")
	// valor de stock = 100 × 10 = 1000
	assert.True(t, dec(t, "1000").Equal(line.StockValue))
	assert.True(t, dec(t, "1000").Equal(doc.TotalValue))
	assert.True(t, dec(t, "0.50").Equal(doc.ProfitMargin))
}

func TestBuild_SinConfigUsaMargenPorDefecto(t *testing.T) {
	productRepo, configRepo := seedRepos(t, "")
	uc := report.NewInventoryReportUseCase(productRepo, configRepo, &fakeGenerator{})

	doc, err := uc.Build()
	require.NoError(t, err)
	assert.True(t, dec(t, "0.50").Equal(doc.ProfitMargin),
		"sin configuración, el margen de respaldo es 0.50")
}

func TestDownload_RenderizaYNombraElArchivo(t *testing.T) {
	productRepo, configRepo := seedRepos(t, "0.50")
	gen := &fakeGenerator{}
	uc := report.NewInventoryReportUseCase(productRepo, configRepo, gen)

	actor, err := entity.NewUser("admin", "1234", entity.RoleAdmin)
	require.NoError(t, err)

	pdfBytes, filename, err := uc.Download(context.Background(), actor)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), pdfBytes)
	assert.Regexp(t, `^inventario_\d{8}_\d{6}\.pdf$`, filename)
	require.NotNil(t, gen.captured, "el generador debe recibir el documento armado")
	assert.Len(t, gen.captured.Lines, 1)
}
