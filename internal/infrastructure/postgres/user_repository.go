package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/lotolabs-arg/StoreFlow/internal/domain"
	"github.com/lotolabs-arg/StoreFlow/internal/domain/entity"
	"github.com/lotolabs-arg/StoreFlow/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
// El índice único sobre username es quien garantiza la unicidad.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Save es upsert por identidad.
func (r *UserRepo) Save(user *entity.User) error {
	query := `
		INSERT INTO users (id, username, password, role, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			username = EXCLUDED.username,
			password = EXCLUDED.password,
			role = EXCLUDED.role`
	_, err := r.q.Exec(context.Background(), query,
		user.ID(), user.Username(), user.Password(), string(user.Role()), user.CreatedAt(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewConflict("Username already exists.")
		}
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}

// FindByID busca por id. Devuelve (nil, nil) si no existe.
func (r *UserRepo) FindByID(id string) (*entity.User, error) {
	return r.findOne(`SELECT id, username, password, role, created_at FROM users WHERE id = $1`, id)
}

// FindByUsername busca por username. Devuelve (nil, nil) si no existe.
func (r *UserRepo) FindByUsername(username string) (*entity.User, error) {
	return r.findOne(`SELECT id, username, password, role, created_at FROM users WHERE username = $1`, username)
}

func (r *UserRepo) findOne(query string, arg any) (*entity.User, error) {
	var (
		id, username, password, role string
		createdAt                    time.Time
	)
	err := r.q.QueryRow(context.Background(), query, arg).
		Scan(&id, &username, &password, &role, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return entity.RehydrateUser(id, createdAt, username, password, entity.UserRole(role)), nil
}
