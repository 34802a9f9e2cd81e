package domain

import (
	"fmt"
	"strings"
	"time"
)

// TransactionType is the kind of money movement.
type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "DEPOSIT"
	TransactionTypeWithdrawal TransactionType = "WITHDRAWAL"
	TransactionTypeTransfer   TransactionType = "TRANSFER"
)

// IsValid reports whether t is a known type.
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTypeDeposit, TransactionTypeWithdrawal, TransactionTypeTransfer:
		return true
	}
	return false
}

// TransactionStatus is the lifecycle state of a transaction.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "PENDING"
	TransactionStatusCompleted TransactionStatus = "COMPLETED"
	TransactionStatusFailed    TransactionStatus = "FAILED"
)

// IsValid reports whether s is a known status.
func (s TransactionStatus) IsValid() bool {
	switch s {
	case TransactionStatusPending, TransactionStatusCompleted, TransactionStatusFailed:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is allowed from s.
func (s TransactionStatus) IsTerminal() bool {
	return s == TransactionStatusCompleted || s == TransactionStatusFailed
}

// Default descriptions for each factory.
const (
	DescriptionDeposit         = "Deposit to account"
	DescriptionWithdrawal      = "Withdrawal from account"
	DescriptionTransfer        = "Transfer between accounts"
	DescriptionPendingTransfer = "Pending transfer between accounts"
)

// Transaction records a deposit, withdrawal or transfer. TargetAccountID is
// set only for transfers.
type Transaction struct {
	ID              string
	AccountID       string
	TargetAccountID string
	Amount          Money
	Type            TransactionType
	Status          TransactionStatus
	Description     string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewDeposit creates a completed deposit record.
func NewDeposit(id, accountID string, amount Money) (*Transaction, error) {
	return newTransaction(id, accountID, "", amount, TransactionTypeDeposit, TransactionStatusCompleted, DescriptionDeposit)
}

// NewWithdrawal creates a completed withdrawal record.
func NewWithdrawal(id, accountID string, amount Money) (*Transaction, error) {
	return newTransaction(id, accountID, "", amount, TransactionTypeWithdrawal, TransactionStatusCompleted, DescriptionWithdrawal)
}

// NewTransfer creates a completed transfer record.
func NewTransfer(id, sourceAccountID, targetAccountID string, amount Money) (*Transaction, error) {
	if strings.TrimSpace(targetAccountID) == "" {
		return nil, ErrMissingTarget
	}
	return newTransaction(id, sourceAccountID, targetAccountID, amount, TransactionTypeTransfer, TransactionStatusCompleted, DescriptionTransfer)
}

// NewPendingTransfer creates a transfer record that still has to be completed
// or failed.
func NewPendingTransfer(id, sourceAccountID, targetAccountID string, amount Money) (*Transaction, error) {
	if strings.TrimSpace(targetAccountID) == "" {
		return nil, ErrMissingTarget
	}
	return newTransaction(id, sourceAccountID, targetAccountID, amount, TransactionTypeTransfer, TransactionStatusPending, DescriptionPendingTransfer)
}

func newTransaction(
	id, accountID, targetAccountID string,
	amount Money,
	txType TransactionType,
	status TransactionStatus,
	description string,
) (*Transaction, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: transaction id", ErrEmptyID)
	}
	if strings.TrimSpace(accountID) == "" {
		return nil, fmt.Errorf("%w: account id", ErrEmptyID)
	}
	if amount.Currency() == "" {
		return nil, fmt.Errorf("%w: amount is required", ErrInvalidAmount)
	}

	now := time.Now().UTC()
	return &Transaction{
		ID:              id,
		AccountID:       accountID,
		TargetAccountID: targetAccountID,
		Amount:          amount,
		Type:            txType,
		Status:          status,
		Description:     description,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// MarkCompleted moves a pending transaction to COMPLETED.
func (t *Transaction) MarkCompleted() error {
	return t.transition(TransactionStatusCompleted)
}

// MarkFailed moves a pending transaction to FAILED.
func (t *Transaction) MarkFailed() error {
	return t.transition(TransactionStatusFailed)
}

// UpdateDescription replaces the free-text description.
func (t *Transaction) UpdateDescription(description string) {
	t.Description = description
	t.UpdatedAt = time.Now().UTC()
}

// IsTransfer reports whether the transaction moves money between accounts.
func (t *Transaction) IsTransfer() bool {
	return t.Type == TransactionTypeTransfer
}

func (t *Transaction) transition(to TransactionStatus) error {
	if t.Status.IsTerminal() {
		return fmt.Errorf("%w: %s is %s", ErrTransactionFinalized, t.ID, t.Status)
	}
	t.Status = to
	t.UpdatedAt = time.Now().UTC()
	return nil
}
