package usecase

import (
	"context"
	"time"

	"github.com/iho/nexusbank/internal/domain"
)

// LoadUserPort loads users. Both methods return domain.ErrUserNotFound when
// no user matches.
type LoadUserPort interface {
	LoadUser(ctx context.Context, id string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// SaveUserPort persists users.
type SaveUserPort interface {
	SaveUser(ctx context.Context, user *domain.User) error
}

// LoadAccountPort loads accounts. LoadAccount returns
// domain.ErrAccountNotFound when no account matches.
type LoadAccountPort interface {
	LoadAccount(ctx context.Context, id string) (*domain.Account, error)
	LoadAccountsByUserID(ctx context.Context, userID string) ([]*domain.Account, error)
}

// SaveAccountPort persists accounts and returns the stored state.
type SaveAccountPort interface {
	SaveAccount(ctx context.Context, account *domain.Account) (*domain.Account, error)
}

// SaveTransactionPort persists transaction records.
type SaveTransactionPort interface {
	SaveTransaction(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
	LoadTransactionsByAccountID(ctx context.Context, accountID string, limit, offset int) ([]*domain.Transaction, error)
}

// LoadTransactionPort loads a single transaction record. It returns
// domain.ErrTransactionNotFound when no record matches.
type LoadTransactionPort interface {
	LoadTransaction(ctx context.Context, id string) (*domain.Transaction, error)
}

// TransactionManager runs fn inside a database transaction. The context
// passed to fn carries the transaction; repositories pick it up from there.
type TransactionManager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// PasswordHasher turns a plaintext password into a storable hash.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
	// Release drops a key so a failed request can be retried with it.
	Release(ctx context.Context, key string) error
}

// MetricsRecorder receives business events from the use cases.
type MetricsRecorder interface {
	RecordUserCreated()
	RecordAccountCreated(currency string)
	RecordTransaction(txType domain.TransactionType, amount domain.Money)
	RecordTransactionFailure(txType domain.TransactionType, kind domain.ErrorKind)
}
