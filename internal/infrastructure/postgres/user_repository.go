package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/hamster-api/internal/domain"
	"github.com/jhoicas/hamster-api/internal/domain/entity"
	"github.com/jhoicas/hamster-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, username, display_name, email, password_hash, avatar, preferences, created_at, updated_at`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un usuario (username único).
func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	query := `INSERT INTO users (` + userColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	prefs := u.Preferences
	if len(prefs) == 0 {
		prefs = []byte(`{}`)
	}
	_, err := r.q.Exec(ctx, query,
		u.ID, u.Username, u.DisplayName, u.Email, u.PasswordHash, u.Avatar, prefs, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID. Devuelve (nil, nil) si no existe.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	row := r.q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

// GetByUsername obtiene un usuario por username.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	row := r.q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
	return scanUser(row)
}

// Update actualiza un usuario existente (username no cambia por este camino).
func (r *UserRepo) Update(ctx context.Context, u *entity.User) error {
	query := `
		UPDATE users SET display_name = $2, email = $3, password_hash = $4, avatar = $5, preferences = $6, updated_at = $7
		WHERE id = $1`
	prefs := u.Preferences
	if len(prefs) == 0 {
		prefs = []byte(`{}`)
	}
	_, err := r.q.Exec(ctx, query,
		u.ID, u.DisplayName, u.Email, u.PasswordHash, u.Avatar, prefs, u.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// List lista todos los usuarios ordenados por username.
func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	rows, err := r.q.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY username, id`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Username, &u.DisplayName, &u.Email, &u.PasswordHash,
			&u.Avatar, &u.Preferences, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.Username, &u.DisplayName, &u.Email, &u.PasswordHash,
		&u.Avatar, &u.Preferences, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}
