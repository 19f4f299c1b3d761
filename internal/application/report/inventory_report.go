// Package report genera el reporte de valorización del inventario: el listado
// completo de productos con su precio sugerido de venta, calculado como
// costo × (1 + margen de ganancia global).
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lotolabs-arg/StoreFlow/internal/domain/entity"
	"github.com/lotolabs-arg/StoreFlow/internal/domain/repository"
)

// Line es una fila del reporte, ya valorizada.
type Line struct {
	Name           string
	Barcode        string
	UnitType       string
	StockQuantity  decimal.Decimal
	Cost           decimal.Decimal
	SuggestedPrice decimal.Decimal
	StockValue     decimal.Decimal
}

// Document es el reporte completo listo para renderizar.
type Document struct {
	GeneratedAt  time.Time
	ProfitMargin decimal.Decimal
	Lines        []Line
	TotalValue   decimal.Decimal
}

// Generator renderiza un Document a bytes (PDF). Implementado en infraestructura.
type Generator interface {
	GenerateInventoryReport(ctx context.Context, doc *Document) ([]byte, error)
}

// fallbackMargin se usa cuando la configuración global todavía no existe.
var fallbackMargin = decimal.NewFromFloat(0.50)

// InventoryReportUseCase arma y renderiza el reporte de valorización.
type InventoryReportUseCase struct {
	productRepo repository.ProductRepository
	configRepo  repository.GlobalConfigRepository
	generator   Generator
}

// NewInventoryReportUseCase construye el caso de uso.
func NewInventoryReportUseCase(
	productRepo repository.ProductRepository,
	configRepo repository.GlobalConfigRepository,
	generator Generator,
) *InventoryReportUseCase {
	return &InventoryReportUseCase{
		productRepo: productRepo,
		configRepo:  configRepo,
		generator:   generator,
	}
}

// Build arma el documento sin renderizarlo (lo usa también el CLI para salida
// de texto). El precio sugerido es cost × (1 + margen); el valor de stock es
// cost × stock, aritmética decimal exacta.
func (uc *InventoryReportUseCase) Build() (*Document, error) {
	margin := fallbackMargin
	config, err := uc.configRepo.Find()
	if err != nil {
		return nil, fmt.Errorf("report: obtener configuración: %w", err)
	}
	if config != nil {
		margin = config.DefaultProfitMargin()
	}

	products, err := uc.productRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("report: listar productos: %w", err)
	}

	one := decimal.NewFromInt(1)
	doc := &Document{
		GeneratedAt:  time.Now(),
		ProfitMargin: margin,
		Lines:        make([]Line, 0, len(products)),
		TotalValue:   decimal.Zero,
	}
	for _, p := range products {
		value := p.Cost().Mul(p.StockQuantity())
		doc.Lines = append(doc.Lines, Line{
			Name:           p.Name(),
			Barcode:        p.Barcode().Value(),
			UnitType:       string(p.UnitType()),
			StockQuantity:  p.StockQuantity(),
			Cost:           p.Cost(),
			SuggestedPrice: p.Cost().Mul(one.Add(margin)),
			StockValue:     value,
		})
		doc.TotalValue = doc.TotalValue.Add(value)
	}
	return doc, nil
}

// Download arma el documento y lo renderiza a PDF.
// Devuelve los bytes y el nombre de archivo sugerido.
func (uc *InventoryReportUseCase) Download(ctx context.Context, actor *entity.User) ([]byte, string, error) {
	doc, err := uc.Build()
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err := uc.generator.GenerateInventoryReport(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("report: generación fallida: %w", err)
	}
	filename := fmt.Sprintf("inventario_%s.pdf", doc.GeneratedAt.Format("20060102_150405"))
	return pdfBytes, filename, nil
}
