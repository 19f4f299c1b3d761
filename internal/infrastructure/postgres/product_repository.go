package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/lotolabs-arg/StoreFlow/internal/domain"
	"github.com/lotolabs-arg/StoreFlow/internal/domain/entity"
	"github.com/lotolabs-arg/StoreFlow/internal/domain/repository"
)

// isUniqueViolation reporta si err proviene de un índice único (SQLSTATE
// 23505). Los Save de este paquete lo traducen al conflicto de negocio que
// corresponda: barcode tomado aquí, username tomado en UserRepo.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Save es upsert por identidad: inserta o reemplaza todas las columnas del id.
// La unicidad de barcode la impone el índice único; una colisión se reporta
// como conflicto de negocio.
func (r *ProductRepo) Save(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, description, barcode, unit_type, stock_quantity, cost, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			barcode = EXCLUDED.barcode,
			unit_type = EXCLUDED.unit_type,
			stock_quantity = EXCLUDED.stock_quantity,
			cost = EXCLUDED.cost`
	_, err := r.q.Exec(context.Background(), query,
		product.ID(), product.Name(), product.Description(), product.Barcode().Value(),
		string(product.UnitType()), product.StockQuantity(), product.Cost(), product.CreatedAt(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewConflict("Barcode already exists in another product.")
		}
		return fmt.Errorf("save product: %w", err)
	}
	return nil
}

// FindByID busca por id. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) FindByID(id string) (*entity.Product, error) {
	return r.findOne(`SELECT id, name, description, barcode, unit_type, stock_quantity, cost, created_at
		FROM products WHERE id = $1`, id)
}

// FindByBarcode busca por barcode. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) FindByBarcode(barcode entity.Barcode) (*entity.Product, error) {
	return r.findOne(`SELECT id, name, description, barcode, unit_type, stock_quantity, cost, created_at
		FROM products WHERE barcode = $1`, barcode.Value())
}

// FindAll lista el inventario completo, ordenado por nombre.
func (r *ProductRepo) FindAll() ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, description, barcode, unit_type, stock_quantity, cost, created_at
		FROM products ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *ProductRepo) findOne(query string, arg any) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// scanProduct rehidrata el agregado desde una fila.
func scanProduct(row pgx.Row) (*entity.Product, error) {
	var (
		id, name, description, barcodeValue, unitType string
		stockQuantity, cost                           decimal.Decimal
		createdAt                                     time.Time
	)
	if err := row.Scan(&id, &name, &description, &barcodeValue, &unitType, &stockQuantity, &cost, &createdAt); err != nil {
		return nil, err
	}
	barcode, err := entity.NewBarcode(barcodeValue)
	if err != nil {
		return nil, fmt.Errorf("scan product %s: barcode corrupto: %w", id, err)
	}
	return entity.RehydrateProduct(id, createdAt, name, description, barcode,
		entity.UnitType(unitType), stockQuantity, cost), nil
}
