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

const transactionColumns = `id, account_id, target_account_id, amount, currency, type, status, description, created_at, updated_at`

// TransactionRepository implements usecase.SaveTransactionPort and
// usecase.LoadTransactionPort.
type TransactionRepository struct {
	db DBTX
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return newTransactionRepository(pool)
}

func newTransactionRepository(db DBTX) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// SaveTransaction inserts a transaction record. Saving an existing ID updates
// its status and description.
func (r *TransactionRepository) SaveTransaction(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE
		SET status = EXCLUDED.status,
			description = EXCLUDED.description,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + transactionColumns

	saved, err := scanTransaction(conn(ctx, r.db).QueryRow(ctx, query,
		tx.ID,
		tx.AccountID,
		stringToPgText(tx.TargetAccountID),
		decimalToNumeric(tx.Amount.Amount()),
		tx.Amount.Currency(),
		string(tx.Type),
		string(tx.Status),
		tx.Description,
		timeToPgTimestamptz(tx.CreatedAt),
		timeToPgTimestamptz(tx.UpdatedAt),
	))
	if err != nil {
		return nil, fmt.Errorf("save transaction %s: %w", tx.ID, err)
	}

	return saved, nil
}

// LoadTransaction retrieves a transaction record by ID.
func (r *TransactionRepository) LoadTransaction(ctx context.Context, id string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`

	tx, err := scanTransaction(conn(ctx, r.db).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}

	return tx, nil
}

// LoadTransactionsByAccountID lists transactions whose source is accountID,
// newest first.
func (r *TransactionRepository) LoadTransactionsByAccountID(ctx context.Context, accountID string, limit, offset int) ([]*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE account_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`

	rows, err := conn(ctx, r.db).Query(ctx, query, accountID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	txs := make([]*domain.Transaction, 0)
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}

	return txs, rows.Err()
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var (
		tx       domain.Transaction
		target   pgtype.Text
		amount   pgtype.Numeric
		currency string
		txType   string
		status   string
	)

	if err := row.Scan(
		&tx.ID,
		&tx.AccountID,
		&target,
		&amount,
		&currency,
		&txType,
		&status,
		&tx.Description,
		&tx.CreatedAt,
		&tx.UpdatedAt,
	); err != nil {
		return nil, err
	}

	money, err := domain.NewMoney(numericToDecimal(amount), currency)
	if err != nil {
		return nil, fmt.Errorf("transaction %s: %w", tx.ID, err)
	}

	tx.TargetAccountID = target.String
	tx.Amount = money
	tx.Type = domain.TransactionType(txType)
	tx.Status = domain.TransactionStatus(status)

	return &tx, nil
}
