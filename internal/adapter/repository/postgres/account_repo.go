package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/nexusbank/internal/domain"
)

const accountColumns = `id, user_id, balance, currency, active, version, created_at, updated_at`

// AccountRepository implements usecase.LoadAccountPort and
// usecase.SaveAccountPort.
type AccountRepository struct {
	db DBTX
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return newAccountRepository(pool)
}

func newAccountRepository(db DBTX) *AccountRepository {
	return &AccountRepository{db: db}
}

// LoadAccount retrieves an account by ID. Inside a transaction the row is
// locked until commit.
func (r *AccountRepository) LoadAccount(ctx context.Context, id string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	if _, ok := txFromContext(ctx); ok {
		query += ` FOR UPDATE`
	}

	account, err := scanAccount(conn(ctx, r.db).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}

	return account, nil
}

// LoadAccountsByUserID lists a user's accounts, oldest first.
func (r *AccountRepository) LoadAccountsByUserID(ctx context.Context, userID string) ([]*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE user_id = $1 ORDER BY created_at, id`

	rows, err := conn(ctx, r.db).Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := make([]*domain.Account, 0)
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}

	return accounts, rows.Err()
}

// SaveAccount inserts a new account or updates an existing one. Updates only
// apply when the stored version still matches account.Version; otherwise
// domain.ErrConcurrentModification is returned.
func (r *AccountRepository) SaveAccount(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6::bigint + 1, $7, $8)
		ON CONFLICT (id) DO UPDATE
		SET balance = EXCLUDED.balance,
			active = EXCLUDED.active,
			version = accounts.version + 1,
			updated_at = EXCLUDED.updated_at
		WHERE accounts.version = $6
		RETURNING ` + accountColumns

	saved, err := scanAccount(conn(ctx, r.db).QueryRow(ctx, query,
		account.ID,
		account.UserID,
		decimalToNumeric(account.Balance.Amount()),
		account.Currency(),
		account.Active,
		account.Version,
		timeToPgTimestamptz(account.CreatedAt),
		timeToPgTimestamptz(account.UpdatedAt),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: account %s", domain.ErrConcurrentModification, account.ID)
		}
		return nil, err
	}

	return saved, nil
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var (
		account  domain.Account
		balance  pgtype.Numeric
		currency string
	)

	if err := row.Scan(
		&account.ID,
		&account.UserID,
		&balance,
		&currency,
		&account.Active,
		&account.Version,
		&account.CreatedAt,
		&account.UpdatedAt,
	); err != nil {
		return nil, err
	}

	money, err := domain.NewMoney(numericToDecimal(balance), currency)
	if err != nil {
		return nil, fmt.Errorf("account %s: %w", account.ID, err)
	}
	account.Balance = money

	return &account, nil
}
