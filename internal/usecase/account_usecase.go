package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/iho/nexusbank/internal/domain"
)

// AccountUseCase handles account business logic.
type AccountUseCase struct {
	userLoader    LoadUserPort
	accountLoader LoadAccountPort
	accountSaver  SaveAccountPort
	idGen         IDGenerator
	currency      string
	metrics       MetricsRecorder
}

// NewAccountUseCase creates a new AccountUseCase. New accounts are opened in
// currency, or DefaultCurrency when currency is empty.
func NewAccountUseCase(
	userLoader LoadUserPort,
	accountLoader LoadAccountPort,
	accountSaver SaveAccountPort,
	idGen IDGenerator,
	currency string,
	metrics MetricsRecorder,
) *AccountUseCase {
	if currency == "" {
		currency = DefaultCurrency
	}
	return &AccountUseCase{
		userLoader:    userLoader,
		accountLoader: accountLoader,
		accountSaver:  accountSaver,
		idGen:         idGen,
		currency:      currency,
		metrics:       recorderOrNop(metrics),
	}
}

// CreateAccountInput represents input for creating an account.
type CreateAccountInput struct {
	UserID         string
	InitialDeposit *decimal.Decimal
}

// CreateAccount opens an account for an existing user, optionally funding it.
func (uc *AccountUseCase) CreateAccount(ctx context.Context, input CreateAccountInput) (*domain.Account, error) {
	if input.InitialDeposit != nil && input.InitialDeposit.IsNegative() {
		return nil, fmt.Errorf("%w: initial deposit %s", domain.ErrNegativeAmount, input.InitialDeposit)
	}

	if _, err := uc.userLoader.LoadUser(ctx, input.UserID); err != nil {
		return nil, err
	}

	account, err := domain.NewAccount(uc.idGen.Generate(), input.UserID, uc.currency)
	if err != nil {
		return nil, err
	}

	// Sub-cent deposits round to zero and open an empty account.
	if input.InitialDeposit != nil {
		amount, err := domain.NewMoney(*input.InitialDeposit, account.Currency())
		if err != nil {
			return nil, err
		}
		if amount.IsPositive() {
			if err := domain.ValidateAmount(amount.Amount()); err != nil {
				return nil, err
			}
			if err := account.Deposit(amount); err != nil {
				return nil, err
			}
		}
	}

	saved, err := uc.accountSaver.SaveAccount(ctx, account)
	if err != nil {
		return nil, err
	}

	uc.metrics.RecordAccountCreated(saved.Currency())
	return saved, nil
}

// GetAccountByID retrieves an account by ID.
func (uc *AccountUseCase) GetAccountByID(ctx context.Context, id string) (*domain.Account, error) {
	return uc.accountLoader.LoadAccount(ctx, id)
}

// GetAccountsByUserID lists a user's accounts. An unknown user yields an
// empty list.
func (uc *AccountUseCase) GetAccountsByUserID(ctx context.Context, userID string) ([]*domain.Account, error) {
	accounts, err := uc.accountLoader.LoadAccountsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if accounts == nil {
		accounts = []*domain.Account{}
	}
	return accounts, nil
}

// ActivateAccount re-enables deposits and withdrawals on an account.
func (uc *AccountUseCase) ActivateAccount(ctx context.Context, id string) (*domain.Account, error) {
	return uc.update(ctx, id, (*domain.Account).Activate)
}

// DeactivateAccount blocks deposits and withdrawals on an account.
func (uc *AccountUseCase) DeactivateAccount(ctx context.Context, id string) (*domain.Account, error) {
	return uc.update(ctx, id, (*domain.Account).Deactivate)
}

func (uc *AccountUseCase) update(ctx context.Context, id string, mutate func(*domain.Account)) (*domain.Account, error) {
	account, err := uc.accountLoader.LoadAccount(ctx, id)
	if err != nil {
		return nil, err
	}

	mutate(account)

	return uc.accountSaver.SaveAccount(ctx, account)
}
