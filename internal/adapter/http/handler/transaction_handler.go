package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/iho/nexusbank/internal/adapter/http/dto"
	"github.com/iho/nexusbank/internal/domain"
	"github.com/iho/nexusbank/internal/usecase"
)

// TransactionService defines the behavior needed by TransactionHandler.
type TransactionService interface {
	DepositMoney(ctx context.Context, accountID string, amount decimal.Decimal) (*domain.Transaction, error)
	WithdrawMoney(ctx context.Context, accountID string, amount decimal.Decimal) (*domain.Transaction, error)
	TransferMoney(ctx context.Context, input usecase.TransferMoneyInput) (*domain.Transaction, error)
	GetTransaction(ctx context.Context, id string) (*domain.Transaction, error)
	ListTransactionsByAccount(ctx context.Context, input usecase.ListTransactionsInput) ([]*domain.Transaction, error)
}

// TransactionHandler handles money movement HTTP requests.
type TransactionHandler struct {
	txUC TransactionService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(txUC TransactionService) *TransactionHandler {
	return &TransactionHandler{txUC: txUC}
}

// Deposit credits an account.
func (h *TransactionHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	h.move(w, r, "failed to deposit", h.txUC.DepositMoney)
}

// Withdraw debits an account.
func (h *TransactionHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	h.move(w, r, "failed to withdraw", h.txUC.WithdrawMoney)
}

func (h *TransactionHandler) move(
	w http.ResponseWriter,
	r *http.Request,
	message string,
	apply func(ctx context.Context, accountID string, amount decimal.Decimal) (*domain.Transaction, error),
) {
	accountID := chi.URLParam(r, "id")
	if accountID == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	var req dto.AmountRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	tx, err := apply(r.Context(), accountID, req.Amount)
	if err != nil {
		writeDomainError(w, r, message, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionFromDomain(tx))
}

// Transfer moves money from the account in the path to the target account.
func (h *TransactionHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	sourceID := chi.URLParam(r, "id")
	if sourceID == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	var req dto.TransferRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	tx, err := h.txUC.TransferMoney(r.Context(), req.ToUseCaseInput(sourceID))
	if err != nil {
		writeDomainError(w, r, "failed to transfer", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionFromDomain(tx))
}

// Get retrieves a transaction by ID.
func (h *TransactionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing transaction ID", "")
		return
	}

	tx, err := h.txUC.GetTransaction(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, "failed to get transaction", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionFromDomain(tx))
}

// ListByAccount lists the transactions of an account, newest first.
func (h *TransactionHandler) ListByAccount(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")
	if accountID == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	limit, offset := domain.ValidatePagination(
		parseIntQuery(r, "limit", 0),
		parseIntQuery(r, "offset", 0),
	)

	txs, err := h.txUC.ListTransactionsByAccount(r.Context(), usecase.ListTransactionsInput{
		AccountID: accountID,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		writeDomainError(w, r, "failed to list transactions", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ListTransactionsResponse{
		Transactions: dto.TransactionsFromDomain(txs),
		Limit:        limit,
		Offset:       offset,
	})
}
