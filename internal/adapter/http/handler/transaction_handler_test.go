package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/nexusbank/internal/adapter/http/dto"
	"github.com/iho/nexusbank/internal/domain"
	"github.com/iho/nexusbank/internal/usecase"
)

type transactionServiceStub struct {
	depositFn  func(ctx context.Context, accountID string, amount decimal.Decimal) (*domain.Transaction, error)
	withdrawFn func(ctx context.Context, accountID string, amount decimal.Decimal) (*domain.Transaction, error)
	transferFn func(ctx context.Context, input usecase.TransferMoneyInput) (*domain.Transaction, error)
	getFn      func(ctx context.Context, id string) (*domain.Transaction, error)
	listFn     func(ctx context.Context, input usecase.ListTransactionsInput) ([]*domain.Transaction, error)
}

func (s *transactionServiceStub) DepositMoney(ctx context.Context, accountID string, amount decimal.Decimal) (*domain.Transaction, error) {
	return s.depositFn(ctx, accountID, amount)
}

func (s *transactionServiceStub) WithdrawMoney(ctx context.Context, accountID string, amount decimal.Decimal) (*domain.Transaction, error) {
	return s.withdrawFn(ctx, accountID, amount)
}

func (s *transactionServiceStub) TransferMoney(ctx context.Context, input usecase.TransferMoneyInput) (*domain.Transaction, error) {
	return s.transferFn(ctx, input)
}

func (s *transactionServiceStub) GetTransaction(ctx context.Context, id string) (*domain.Transaction, error) {
	return s.getFn(ctx, id)
}

func (s *transactionServiceStub) ListTransactionsByAccount(ctx context.Context, input usecase.ListTransactionsInput) ([]*domain.Transaction, error) {
	return s.listFn(ctx, input)
}

func usdAmount(t *testing.T, amount decimal.Decimal) domain.Money {
	t.Helper()
	m, err := domain.NewMoney(amount, "USD")
	if err != nil {
		t.Fatalf("failed to build money: %v", err)
	}
	return m
}

func TestTransactionHandler_Deposit(t *testing.T) {
	handler := NewTransactionHandler(&transactionServiceStub{
		depositFn: func(ctx context.Context, accountID string, amount decimal.Decimal) (*domain.Transaction, error) {
			return domain.NewDeposit("tx-1", accountID, usdAmount(t, amount))
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/transactions/accounts/acc-1/deposit", bytes.NewBufferString(`{"amount":"100.50"}`))
	req = setChiURLParam(req, "id", "acc-1")
	rec := httptest.NewRecorder()

	handler.Deposit(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.TransactionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Type != "DEPOSIT" || resp.AccountID != "acc-1" || resp.Amount.Amount != "100.50" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestTransactionHandler_Deposit_RejectsNonPositiveAmount(t *testing.T) {
	handler := NewTransactionHandler(&transactionServiceStub{
		depositFn: func(ctx context.Context, accountID string, amount decimal.Decimal) (*domain.Transaction, error) {
			t.Fatal("DepositMoney should not be called")
			return nil, nil
		},
	})

	for _, body := range []string{`{"amount":0}`, `{"amount":-10}`, `{}`} {
		req := setChiURLParam(httptest.NewRequest(http.MethodPost, "/deposit", bytes.NewBufferString(body)), "id", "acc-1")
		rec := httptest.NewRecorder()

		handler.Deposit(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, rec.Code)
		}
	}
}

func TestTransactionHandler_Withdraw_InsufficientBalance(t *testing.T) {
	handler := NewTransactionHandler(&transactionServiceStub{
		withdrawFn: func(ctx context.Context, accountID string, amount decimal.Decimal) (*domain.Transaction, error) {
			return nil, fmt.Errorf("%w: account %s", domain.ErrInsufficientBalance, accountID)
		},
	})

	req := setChiURLParam(httptest.NewRequest(http.MethodPost, "/withdraw", bytes.NewBufferString(`{"amount":500}`)), "id", "acc-1")
	rec := httptest.NewRecorder()

	handler.Withdraw(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTransactionHandler_Transfer(t *testing.T) {
	var captured usecase.TransferMoneyInput
	handler := NewTransactionHandler(&transactionServiceStub{
		transferFn: func(ctx context.Context, input usecase.TransferMoneyInput) (*domain.Transaction, error) {
			captured = input
			return domain.NewTransfer("tx-9", input.SourceAccountID, input.TargetAccountID, usdAmount(t, input.Amount))
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/transfer", bytes.NewBufferString(`{"targetAccountId":"acc-2","amount":50}`))
	req = setChiURLParam(req, "id", "acc-1")
	rec := httptest.NewRecorder()

	handler.Transfer(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if captured.SourceAccountID != "acc-1" || captured.TargetAccountID != "acc-2" || !captured.Amount.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("unexpected input: %+v", captured)
	}

	var resp dto.TransactionResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.TargetAccountID != "acc-2" || resp.Status != "COMPLETED" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestTransactionHandler_Transfer_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"same account", domain.ErrSameAccount, http.StatusBadRequest},
		{"missing target", fmt.Errorf("target account acc-2: %w", domain.ErrAccountNotFound), http.StatusNotFound},
		{"currency mismatch", domain.ErrCurrencyMismatch, http.StatusBadRequest},
		{"inactive", domain.ErrInactiveAccount, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewTransactionHandler(&transactionServiceStub{
				transferFn: func(ctx context.Context, input usecase.TransferMoneyInput) (*domain.Transaction, error) {
					return nil, tt.err
				},
			})

			req := httptest.NewRequest(http.MethodPost, "/transfer", bytes.NewBufferString(`{"targetAccountId":"acc-2","amount":50}`))
			req = setChiURLParam(req, "id", "acc-1")
			rec := httptest.NewRecorder()

			handler.Transfer(rec, req)

			if rec.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, rec.Code)
			}
		})
	}
}

func TestTransactionHandler_Get(t *testing.T) {
	handler := NewTransactionHandler(&transactionServiceStub{
		getFn: func(ctx context.Context, id string) (*domain.Transaction, error) {
			return nil, domain.ErrTransactionNotFound
		},
	})

	req := setChiURLParam(httptest.NewRequest(http.MethodGet, "/transactions/tx-1", nil), "id", "tx-1")
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestTransactionHandler_ListByAccount_Pagination(t *testing.T) {
	tests := []struct {
		query  string
		limit  int
		offset int
	}{
		{query: "", limit: 20, offset: 0},
		{query: "?limit=5&offset=10", limit: 5, offset: 10},
		{query: "?limit=1000&offset=-3", limit: 100, offset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			var captured usecase.ListTransactionsInput
			handler := NewTransactionHandler(&transactionServiceStub{
				listFn: func(ctx context.Context, input usecase.ListTransactionsInput) ([]*domain.Transaction, error) {
					captured = input
					return []*domain.Transaction{}, nil
				},
			})

			req := setChiURLParam(httptest.NewRequest(http.MethodGet, "/accounts/acc-1/transactions"+tt.query, nil), "id", "acc-1")
			rec := httptest.NewRecorder()

			handler.ListByAccount(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}
			if captured.AccountID != "acc-1" || captured.Limit != tt.limit || captured.Offset != tt.offset {
				t.Fatalf("unexpected input: %+v", captured)
			}

			var resp dto.ListTransactionsResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Transactions == nil || resp.Limit != tt.limit {
				t.Fatalf("unexpected response: %+v", resp)
			}
		})
	}
}
