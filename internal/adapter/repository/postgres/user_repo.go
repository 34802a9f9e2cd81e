package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/nexusbank/internal/domain"
)

const userSelect = `
	SELECT u.id, u.name, u.email, u.password_hash, u.active, u.created_at, u.updated_at,
		ARRAY(SELECT a.id FROM accounts a WHERE a.user_id = u.id ORDER BY a.id)
	FROM users u`

// UserRepository implements user persistence
type UserRepository struct {
	db DBTX
}

// NewUserRepository creates a new user repository
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return newUserRepository(pool)
}

func newUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// LoadUser retrieves a user by ID
func (r *UserRepository) LoadUser(ctx context.Context, id string) (*domain.User, error) {
	return r.getOne(ctx, userSelect+` WHERE u.id = $1`, id)
}

// FindUserByEmail retrieves a user by email, ignoring case
func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, userSelect+` WHERE LOWER(u.email) = LOWER($1)`, email)
}

// SaveUser inserts a user or updates the existing row with the same ID
func (r *UserRepository) SaveUser(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (id, name, email, password_hash, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
			email = EXCLUDED.email,
			password_hash = EXCLUDED.password_hash,
			active = EXCLUDED.active,
			updated_at = EXCLUDED.updated_at
	`

	_, err := conn(ctx, r.db).Exec(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Active,
		timeToPgTimestamptz(user.CreatedAt),
		timeToPgTimestamptz(user.UpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateEmail, user.Email)
		}
		return err
	}

	return nil
}

func (r *UserRepository) getOne(ctx context.Context, query string, arg string) (*domain.User, error) {
	var (
		user       domain.User
		accountIDs []string
	)

	err := conn(ctx, r.db).QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Active,
		&user.CreatedAt,
		&user.UpdatedAt,
		&accountIDs,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	user.RestoreAccounts(accountIDs)
	return &user, nil
}
