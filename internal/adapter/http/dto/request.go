package dto

import (
	"github.com/shopspring/decimal"

	"github.com/iho/nexusbank/internal/usecase"
)

// CreateUserRequest represents a request to register a user.
type CreateUserRequest struct {
	Name     string `json:"name"     validate:"required,min=2,max=100"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateUserRequest) ToUseCaseInput() usecase.CreateUserInput {
	return usecase.CreateUserInput{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
	}
}

// CreateAccountRequest represents a request to open an account.
type CreateAccountRequest struct {
	UserID         string           `json:"userId"                   validate:"required"`
	InitialDeposit *decimal.Decimal `json:"initialDeposit,omitempty" validate:"omitempty,gte=0"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateAccountRequest) ToUseCaseInput() usecase.CreateAccountInput {
	return usecase.CreateAccountInput{
		UserID:         r.UserID,
		InitialDeposit: r.InitialDeposit,
	}
}

// AmountRequest is the body of deposit and withdrawal requests.
type AmountRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"gt=0"`
}

// TransferRequest represents a request to move money to another account.
type TransferRequest struct {
	TargetAccountID string          `json:"targetAccountId" validate:"required"`
	Amount          decimal.Decimal `json:"amount"          validate:"gt=0"`
}

// ToUseCaseInput converts to use case input.
func (r *TransferRequest) ToUseCaseInput(sourceAccountID string) usecase.TransferMoneyInput {
	return usecase.TransferMoneyInput{
		SourceAccountID: sourceAccountID,
		TargetAccountID: r.TargetAccountID,
		Amount:          r.Amount,
	}
}
