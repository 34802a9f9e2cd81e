package domain

import (
	"fmt"
	"strings"
	"time"
)

// Account holds a balance in a single currency for one user. The balance
// changes only through Deposit and Withdraw.
type Account struct {
	ID        string
	UserID    string
	Balance   Money
	Active    bool
	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAccount creates an active account with a zero balance.
func NewAccount(id, userID, currency string) (*Account, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: account id", ErrEmptyID)
	}
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: user id", ErrEmptyID)
	}

	balance, err := ZeroMoney(currency)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Account{
		ID:        id,
		UserID:    userID,
		Balance:   balance,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Currency returns the fixed currency of the account.
func (a *Account) Currency() string {
	return a.Balance.Currency()
}

// Deposit adds amount to the balance.
func (a *Account) Deposit(amount Money) error {
	if err := a.validateMutation(amount); err != nil {
		return err
	}

	balance, err := a.Balance.Add(amount)
	if err != nil {
		return err
	}

	a.Balance = balance
	a.touch()
	return nil
}

// Withdraw removes amount from the balance. The balance never goes below zero.
func (a *Account) Withdraw(amount Money) error {
	if err := a.validateMutation(amount); err != nil {
		return err
	}

	insufficient, err := a.Balance.LessThan(amount)
	if err != nil {
		return err
	}
	if insufficient {
		return fmt.Errorf("%w: account %s has %s, requested %s", ErrInsufficientBalance, a.ID, a.Balance, amount)
	}

	balance, err := a.Balance.Subtract(amount)
	if err != nil {
		return err
	}

	a.Balance = balance
	a.touch()
	return nil
}

// Activate marks the account as active.
func (a *Account) Activate() {
	a.Active = true
	a.touch()
}

// Deactivate marks the account as inactive. Inactive accounts reject deposits
// and withdrawals.
func (a *Account) Deactivate() {
	a.Active = false
	a.touch()
}

func (a *Account) validateMutation(amount Money) error {
	if !a.Active {
		return fmt.Errorf("%w: %s", ErrInactiveAccount, a.ID)
	}
	if amount.Currency() != a.Currency() {
		return fmt.Errorf("%w: account is in %s but operation attempted with %s",
			ErrCurrencyMismatch, a.Currency(), amount.Currency())
	}
	return nil
}

func (a *Account) touch() {
	a.UpdatedAt = time.Now().UTC()
}
