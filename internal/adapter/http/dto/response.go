package dto

import (
	"time"

	"github.com/iho/nexusbank/internal/domain"
)

// MoneyResponse represents an amount with its currency.
type MoneyResponse struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// MoneyFromDomain converts domain money to response.
func MoneyFromDomain(m domain.Money) MoneyResponse {
	return MoneyResponse{
		Amount:   m.Amount().StringFixed(domain.MoneyScale),
		Currency: m.Currency(),
	}
}

// UserResponse represents a user in API responses.
type UserResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Active     bool      `json:"active"`
	AccountIDs []string  `json:"accountIds"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// UserFromDomain converts domain user to response.
func UserFromDomain(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Active:     u.Active,
		AccountIDs: u.AccountIDs(),
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

// CreateUserResponse is returned after registration.
type CreateUserResponse struct {
	UserID  string `json:"userId"`
	Message string `json:"message"`
}

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID        string        `json:"id"`
	UserID    string        `json:"userId"`
	Balance   MoneyResponse `json:"balance"`
	Active    bool          `json:"active"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// AccountFromDomain converts domain account to response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:        a.ID,
		UserID:    a.UserID,
		Balance:   MoneyFromDomain(a.Balance),
		Active:    a.Active,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID              string        `json:"id"`
	AccountID       string        `json:"accountId"`
	TargetAccountID string        `json:"targetAccountId,omitempty"`
	Amount          MoneyResponse `json:"amount"`
	Type            string        `json:"type"`
	Status          string        `json:"status"`
	Description     string        `json:"description"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

// TransactionFromDomain converts domain transaction to response.
func TransactionFromDomain(t *domain.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:              t.ID,
		AccountID:       t.AccountID,
		TargetAccountID: t.TargetAccountID,
		Amount:          MoneyFromDomain(t.Amount),
		Type:            string(t.Type),
		Status:          string(t.Status),
		Description:     t.Description,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

// TransactionsFromDomain converts domain transactions to responses.
func TransactionsFromDomain(txs []*domain.Transaction) []*TransactionResponse {
	result := make([]*TransactionResponse, len(txs))
	for i, t := range txs {
		result[i] = TransactionFromDomain(t)
	}
	return result
}

// ListTransactionsResponse is a page of an account's transactions.
type ListTransactionsResponse struct {
	Transactions []*TransactionResponse `json:"transactions"`
	Limit        int                    `json:"limit"`
	Offset       int                    `json:"offset"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}
