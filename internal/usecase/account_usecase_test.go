package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/iho/nexusbank/internal/domain"
	"github.com/iho/nexusbank/internal/usecase"
	"github.com/iho/nexusbank/internal/usecase/mocks"
)

type accountMocks struct {
	userLoader    *mocks.MockLoadUserPort
	accountLoader *mocks.MockLoadAccountPort
	accountSaver  *mocks.MockSaveAccountPort
	idGen         *mocks.MockIDGenerator
	metrics       *mocks.MockMetricsRecorder
}

func newAccountUseCase(t *testing.T, currency string) (*usecase.AccountUseCase, accountMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := accountMocks{
		userLoader:    mocks.NewMockLoadUserPort(ctrl),
		accountLoader: mocks.NewMockLoadAccountPort(ctrl),
		accountSaver:  mocks.NewMockSaveAccountPort(ctrl),
		idGen:         mocks.NewMockIDGenerator(ctrl),
		metrics:       mocks.NewMockMetricsRecorder(ctrl),
	}
	uc := usecase.NewAccountUseCase(m.userLoader, m.accountLoader, m.accountSaver, m.idGen, currency, m.metrics)
	return uc, m
}

func echoAccount(_ context.Context, a *domain.Account) (*domain.Account, error) {
	return a, nil
}

func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestAccountUseCase_CreateAccount(t *testing.T) {
	tests := []struct {
		name            string
		deposit         *decimal.Decimal
		expectedBalance string
	}{
		{name: "without initial deposit", deposit: nil, expectedBalance: "0"},
		{name: "zero initial deposit", deposit: decimalPtr("0"), expectedBalance: "0"},
		{name: "with initial deposit", deposit: decimalPtr("100.00"), expectedBalance: "100"},
		{name: "sub-cent initial deposit rounds to zero", deposit: decimalPtr("0.001"), expectedBalance: "0"},
		{name: "initial deposit rounds half-even", deposit: decimalPtr("10.125"), expectedBalance: "10.12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, m := newAccountUseCase(t, "")
			user, _ := domain.NewUser("user-1", "Jane", "jane@example.com", "hash")

			m.userLoader.EXPECT().LoadUser(gomock.Any(), "user-1").Return(user, nil)
			m.idGen.EXPECT().Generate().Return("acc-1")
			m.accountSaver.EXPECT().SaveAccount(gomock.Any(), gomock.Any()).DoAndReturn(echoAccount)
			m.metrics.EXPECT().RecordAccountCreated("USD")

			account, err := uc.CreateAccount(context.Background(), usecase.CreateAccountInput{
				UserID:         "user-1",
				InitialDeposit: tt.deposit,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if account.ID != "acc-1" || account.UserID != "user-1" {
				t.Errorf("unexpected account identity: %s / %s", account.ID, account.UserID)
			}
			if account.Currency() != "USD" {
				t.Errorf("expected USD, got %s", account.Currency())
			}
			if !account.Active {
				t.Error("expected account to be active")
			}
			if !account.Balance.Amount().Equal(decimal.RequireFromString(tt.expectedBalance)) {
				t.Errorf("expected balance %s, got %s", tt.expectedBalance, account.Balance)
			}
		})
	}
}

func TestAccountUseCase_CreateAccount_ConfiguredCurrency(t *testing.T) {
	uc, m := newAccountUseCase(t, "EUR")
	user, _ := domain.NewUser("user-1", "Jane", "jane@example.com", "hash")

	m.userLoader.EXPECT().LoadUser(gomock.Any(), "user-1").Return(user, nil)
	m.idGen.EXPECT().Generate().Return("acc-1")
	m.accountSaver.EXPECT().SaveAccount(gomock.Any(), gomock.Any()).DoAndReturn(echoAccount)
	m.metrics.EXPECT().RecordAccountCreated("EUR")

	account, err := uc.CreateAccount(context.Background(), usecase.CreateAccountInput{UserID: "user-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if account.Currency() != "EUR" {
		t.Errorf("expected EUR, got %s", account.Currency())
	}
}

func TestAccountUseCase_CreateAccount_Errors(t *testing.T) {
	t.Run("user not found", func(t *testing.T) {
		uc, m := newAccountUseCase(t, "")
		m.userLoader.EXPECT().LoadUser(gomock.Any(), "ghost").Return(nil, domain.ErrUserNotFound)

		_, err := uc.CreateAccount(context.Background(), usecase.CreateAccountInput{UserID: "ghost"})
		if !errors.Is(err, domain.ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("negative initial deposit", func(t *testing.T) {
		uc, _ := newAccountUseCase(t, "")

		_, err := uc.CreateAccount(context.Background(), usecase.CreateAccountInput{
			UserID:         "user-1",
			InitialDeposit: decimalPtr("-10"),
		})
		if !errors.Is(err, domain.ErrInvalidArgument) {
			t.Fatalf("expected invalid argument, got %v", err)
		}
	})

	t.Run("save failure", func(t *testing.T) {
		uc, m := newAccountUseCase(t, "")
		user, _ := domain.NewUser("user-1", "Jane", "jane@example.com", "hash")
		dbErr := errors.New("disk full")

		m.userLoader.EXPECT().LoadUser(gomock.Any(), "user-1").Return(user, nil)
		m.idGen.EXPECT().Generate().Return("acc-1")
		m.accountSaver.EXPECT().SaveAccount(gomock.Any(), gomock.Any()).Return(nil, dbErr)

		_, err := uc.CreateAccount(context.Background(), usecase.CreateAccountInput{UserID: "user-1"})
		if !errors.Is(err, dbErr) {
			t.Fatalf("expected save error, got %v", err)
		}
	})
}

func TestAccountUseCase_GetAccountByID(t *testing.T) {
	uc, m := newAccountUseCase(t, "")
	acc, _ := domain.NewAccount("acc-1", "user-1", "USD")

	m.accountLoader.EXPECT().LoadAccount(gomock.Any(), "acc-1").Return(acc, nil)
	m.accountLoader.EXPECT().LoadAccount(gomock.Any(), "missing").Return(nil, domain.ErrAccountNotFound)

	got, err := uc.GetAccountByID(context.Background(), "acc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "acc-1" {
		t.Errorf("expected acc-1, got %s", got.ID)
	}

	if _, err := uc.GetAccountByID(context.Background(), "missing"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Errorf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAccountUseCase_GetAccountsByUserID(t *testing.T) {
	uc, m := newAccountUseCase(t, "")
	acc1, _ := domain.NewAccount("acc-1", "user-1", "USD")
	acc2, _ := domain.NewAccount("acc-2", "user-1", "USD")

	m.accountLoader.EXPECT().LoadAccountsByUserID(gomock.Any(), "user-1").Return([]*domain.Account{acc1, acc2}, nil)
	m.accountLoader.EXPECT().LoadAccountsByUserID(gomock.Any(), "nobody").Return(nil, nil)

	accounts, err := uc.GetAccountsByUserID(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(accounts) != 2 {
		t.Errorf("expected 2 accounts, got %d", len(accounts))
	}

	accounts, err = uc.GetAccountsByUserID(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if accounts == nil || len(accounts) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", accounts)
	}
}

func TestAccountUseCase_ActivateDeactivate(t *testing.T) {
	uc, m := newAccountUseCase(t, "")
	acc, _ := domain.NewAccount("acc-1", "user-1", "USD")

	m.accountLoader.EXPECT().LoadAccount(gomock.Any(), "acc-1").Return(acc, nil).Times(2)
	m.accountSaver.EXPECT().SaveAccount(gomock.Any(), gomock.Any()).DoAndReturn(echoAccount).Times(2)

	got, err := uc.DeactivateAccount(context.Background(), "acc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Active {
		t.Error("expected account to be inactive")
	}

	got, err = uc.ActivateAccount(context.Background(), "acc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Active {
		t.Error("expected account to be active")
	}
}
