package usecase

import "time"

const (
	// DefaultCurrency is used for new accounts when no currency is configured.
	DefaultCurrency = "USD"

	// DefaultTransactionTimeout bounds a single database transaction.
	DefaultTransactionTimeout = 10 * time.Second

	// IdempotencyKeyTTL is how long idempotency keys are cached
	IdempotencyKeyTTL = 24 * time.Hour
)
