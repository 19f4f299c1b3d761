// storeflowctl es la herramienta de línea de comandos para operar StoreFlow
// sin pasar por la API HTTP: seed inicial, listado de inventario y reporte
// de valorización.
package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/lotolabs-arg/StoreFlow/internal/application/report"
	"github.com/lotolabs-arg/StoreFlow/internal/domain/repository"
	"github.com/lotolabs-arg/StoreFlow/internal/infrastructure/pdf"
	"github.com/lotolabs-arg/StoreFlow/internal/infrastructure/postgres"
	"github.com/lotolabs-arg/StoreFlow/internal/infrastructure/seed"
	"github.com/lotolabs-arg/StoreFlow/pkg/config"
	"github.com/lotolabs-arg/StoreFlow/pkg/logger"
)

// backend agrupa las dependencias que los subcomandos comparten.
type backend struct {
	pool        *pgxpool.Pool
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	configRepo  repository.GlobalConfigRepository
	log         *logger.Logger
}

func openBackend(ctx context.Context) (*backend, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("cargar configuración: %w", err)
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "warn"})

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
	}

	return &backend{
		pool:        pool,
		userRepo:    postgres.NewUserRepository(pool),
		productRepo: postgres.NewProductRepository(pool),
		configRepo:  postgres.NewGlobalConfigRepository(pool),
		log:         log,
	}, nil
}

func (b *backend) close() {
	b.pool.Close()
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Crea el usuario admin y la configuración global si no existen",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBackend(cmd.Context())
			if err != nil {
				return err
			}
			defer b.close()

			if err := seed.New(b.userRepo, b.configRepo, b.log).Run(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "seed completado")
			return nil
		},
	}
}

func newProductsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Operaciones sobre el inventario",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Lista el inventario completo",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBackend(cmd.Context())
			if err != nil {
				return err
			}
			defer b.close()

			products, err := b.productRepo.FindAll()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "BARCODE\tNOMBRE\tUNIDAD\tSTOCK\tCOSTO")
			for _, p := range products {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					p.Barcode().Value(), p.Name(), p.UnitType(),
					p.StockQuantity().String(), p.Cost().String())
			}
			return w.Flush()
		},
	})
	return cmd
}

func newReportCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Genera el reporte de valorización del inventario",
		Long: "Imprime el inventario valorizado (precio sugerido = costo × (1 + margen)).\n" +
			"Con --out escribe además el PDF en la ruta indicada.",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBackend(cmd.Context())
			if err != nil {
				return err
			}
			defer b.close()

			generator := pdf.NewMarotoReportGenerator()
			uc := report.NewInventoryReportUseCase(b.productRepo, b.configRepo, generator)

			doc, err := uc.Build()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NOMBRE\tBARCODE\tSTOCK\tCOSTO\tPRECIO SUG.\tVALOR")
			for _, line := range doc.Lines {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					line.Name, line.Barcode, line.StockQuantity.String(),
					line.Cost.String(), line.SuggestedPrice.String(), line.StockValue.String())
			}
			fmt.Fprintf(w, "\tTOTAL\t\t\t\t%s\n", doc.TotalValue.String())
			if err := w.Flush(); err != nil {
				return err
			}

			if outPath != "" {
				pdfBytes, err := generator.GenerateInventoryReport(cmd.Context(), doc)
				if err != nil {
					return err
				}
				if err := os.WriteFile(outPath, pdfBytes, 0o644); err != nil {
					return fmt.Errorf("escribir PDF: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "PDF escrito en %s\n", outPath)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "ruta del PDF de salida")
	return cmd
}

func main() {
	root := &cobra.Command{
		Use:           "storeflowctl",
		Short:         "Herramienta de administración de StoreFlow",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSeedCmd(), newProductsCmd(), newReportCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
