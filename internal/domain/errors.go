package domain

import "errors"

// Error kinds. Every error produced by the domain and use cases unwraps to
// exactly one of these.
var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrDuplicateEmail      = errors.New("user with this email already exists")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInactiveAccount     = errors.New("account is not active")
	ErrConflict            = errors.New("concurrent modification")
)

var (
	// Not found errors
	ErrUserNotFound        = newKindError(ErrNotFound, "user not found")
	ErrAccountNotFound     = newKindError(ErrNotFound, "account not found")
	ErrTransactionNotFound = newKindError(ErrNotFound, "transaction not found")

	// Money errors
	ErrCurrencyMismatch = newKindError(ErrInvalidArgument, "currency mismatch")
	ErrNegativeAmount   = newKindError(ErrInvalidArgument, "amount cannot be negative")
	ErrNegativeResult   = newKindError(ErrInvalidArgument, "operation would result in a negative amount")
	ErrInvalidAmount    = newKindError(ErrInvalidArgument, "amount must be positive")
	ErrInvalidCurrency  = newKindError(ErrInvalidArgument, "invalid currency code")

	// Transfer errors
	ErrSameAccount          = newKindError(ErrInvalidArgument, "cannot transfer to same account")
	ErrMissingTarget        = newKindError(ErrInvalidArgument, "target account id is required for transfers")
	ErrTransactionFinalized = newKindError(ErrInvalidArgument, "transaction is already finalized")

	// Entity errors
	ErrEmptyID              = newKindError(ErrInvalidArgument, "id cannot be empty")
	ErrEmptyName            = newKindError(ErrInvalidArgument, "name cannot be empty")
	ErrEmptyPassword        = newKindError(ErrInvalidArgument, "password cannot be empty")
	ErrEmptyPasswordHash    = newKindError(ErrInvalidArgument, "password hash cannot be empty")
	ErrInvalidEmail         = newKindError(ErrInvalidArgument, "invalid email format")
	ErrPasswordTooWeak      = newKindError(ErrInvalidArgument, "password does not meet requirements")
	ErrAccountAlreadyLinked = newKindError(ErrInvalidArgument, "account is already associated with this user")
	ErrAccountNotLinked     = newKindError(ErrInvalidArgument, "account is not associated with this user")

	// Persistence errors
	ErrConcurrentModification = newKindError(ErrConflict, "row was modified by another request")
)

// ErrorKind classifies an error into one of the kinds above.
type ErrorKind string

const (
	KindUnknown             ErrorKind = "unknown"
	KindNotFound            ErrorKind = "not_found"
	KindInvalidArgument     ErrorKind = "invalid_argument"
	KindDuplicateEmail      ErrorKind = "duplicate_email"
	KindInsufficientBalance ErrorKind = "insufficient_balance"
	KindInactiveAccount     ErrorKind = "inactive_account"
	KindConflict            ErrorKind = "conflict"
)

var kinds = []struct {
	sentinel error
	kind     ErrorKind
}{
	{ErrNotFound, KindNotFound},
	{ErrDuplicateEmail, KindDuplicateEmail},
	{ErrInsufficientBalance, KindInsufficientBalance},
	{ErrInactiveAccount, KindInactiveAccount},
	{ErrConflict, KindConflict},
	{ErrInvalidArgument, KindInvalidArgument},
}

// KindOf returns the kind of err, or KindUnknown for errors not produced by
// the domain (database failures and the like).
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindUnknown
	}
	for _, k := range kinds {
		if errors.Is(err, k.sentinel) {
			return k.kind
		}
	}
	return KindUnknown
}

// kindError is a specific error that unwraps to its kind sentinel.
type kindError struct {
	kind error
	msg  string
}

func newKindError(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }
