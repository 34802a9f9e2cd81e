package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/iho/nexusbank/internal/domain"
)

// TransactionUseCase moves money: deposits, withdrawals and transfers.
type TransactionUseCase struct {
	txManager     TransactionManager
	accountLoader LoadAccountPort
	accountSaver  SaveAccountPort
	txSaver       SaveTransactionPort
	txLoader      LoadTransactionPort
	idGen         IDGenerator
	metrics       MetricsRecorder
}

// NewTransactionUseCase creates a new TransactionUseCase. With a nil
// txManager each save is committed on its own.
func NewTransactionUseCase(
	txManager TransactionManager,
	accountLoader LoadAccountPort,
	accountSaver SaveAccountPort,
	txSaver SaveTransactionPort,
	txLoader LoadTransactionPort,
	idGen IDGenerator,
	metrics MetricsRecorder,
) *TransactionUseCase {
	return &TransactionUseCase{
		txManager:     txManager,
		accountLoader: accountLoader,
		accountSaver:  accountSaver,
		txSaver:       txSaver,
		txLoader:      txLoader,
		idGen:         idGen,
		metrics:       recorderOrNop(metrics),
	}
}

// DepositMoney credits an account and records a DEPOSIT transaction.
func (uc *TransactionUseCase) DepositMoney(ctx context.Context, accountID string, amount decimal.Decimal) (*domain.Transaction, error) {
	tx, err := uc.singleAccount(ctx, accountID, amount, (*domain.Account).Deposit, domain.NewDeposit)
	uc.record(domain.TransactionTypeDeposit, tx, err)
	return tx, err
}

// WithdrawMoney debits an account and records a WITHDRAWAL transaction.
func (uc *TransactionUseCase) WithdrawMoney(ctx context.Context, accountID string, amount decimal.Decimal) (*domain.Transaction, error) {
	tx, err := uc.singleAccount(ctx, accountID, amount, (*domain.Account).Withdraw, domain.NewWithdrawal)
	uc.record(domain.TransactionTypeWithdrawal, tx, err)
	return tx, err
}

// TransferMoneyInput represents input for a transfer between two accounts.
type TransferMoneyInput struct {
	SourceAccountID string
	TargetAccountID string
	Amount          decimal.Decimal
}

// TransferMoney moves funds from the source to the target account. Checks run
// in a fixed order: account existence, currency, balance. No account is
// mutated before all of them pass.
func (uc *TransactionUseCase) TransferMoney(ctx context.Context, input TransferMoneyInput) (*domain.Transaction, error) {
	tx, err := uc.transfer(ctx, input)
	uc.record(domain.TransactionTypeTransfer, tx, err)
	return tx, err
}

func (uc *TransactionUseCase) transfer(ctx context.Context, input TransferMoneyInput) (*domain.Transaction, error) {
	if input.SourceAccountID == input.TargetAccountID {
		return nil, domain.ErrSameAccount
	}
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	var result *domain.Transaction
	err := uc.atomically(ctx, func(ctx context.Context) error {
		source, err := uc.accountLoader.LoadAccount(ctx, input.SourceAccountID)
		if err != nil {
			return fmt.Errorf("source account %s: %w", input.SourceAccountID, err)
		}

		target, err := uc.accountLoader.LoadAccount(ctx, input.TargetAccountID)
		if err != nil {
			return fmt.Errorf("target account %s: %w", input.TargetAccountID, err)
		}

		if source.Currency() != target.Currency() {
			return fmt.Errorf("%w: source account is in %s, target account is in %s",
				domain.ErrCurrencyMismatch, source.Currency(), target.Currency())
		}

		amount, err := domain.NewMoney(input.Amount, source.Currency())
		if err != nil {
			return err
		}

		sufficient, err := source.Balance.GreaterThanOrEqual(amount)
		if err != nil {
			return err
		}
		if !sufficient {
			return fmt.Errorf("%w: account %s has %s, requested %s",
				domain.ErrInsufficientBalance, source.ID, source.Balance, amount)
		}

		if err := source.Withdraw(amount); err != nil {
			return err
		}
		if err := target.Deposit(amount); err != nil {
			return err
		}

		if _, err := uc.accountSaver.SaveAccount(ctx, source); err != nil {
			return err
		}
		if _, err := uc.accountSaver.SaveAccount(ctx, target); err != nil {
			return err
		}

		record, err := domain.NewTransfer(uc.idGen.Generate(), source.ID, target.ID, amount)
		if err != nil {
			return err
		}

		result, err = uc.txSaver.SaveTransaction(ctx, record)
		return err
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// GetTransaction retrieves a transaction record by ID.
func (uc *TransactionUseCase) GetTransaction(ctx context.Context, id string) (*domain.Transaction, error) {
	return uc.txLoader.LoadTransaction(ctx, id)
}

// ListTransactionsInput represents input for listing an account's transactions.
type ListTransactionsInput struct {
	AccountID string
	Limit     int
	Offset    int
}

// ListTransactionsByAccount lists transactions where the account is the
// source, newest first.
func (uc *TransactionUseCase) ListTransactionsByAccount(ctx context.Context, input ListTransactionsInput) ([]*domain.Transaction, error) {
	if _, err := uc.accountLoader.LoadAccount(ctx, input.AccountID); err != nil {
		return nil, err
	}

	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	txs, err := uc.txSaver.LoadTransactionsByAccountID(ctx, input.AccountID, limit, offset)
	if err != nil {
		return nil, err
	}
	if txs == nil {
		txs = []*domain.Transaction{}
	}
	return txs, nil
}

type transactionFactory func(id, accountID string, amount domain.Money) (*domain.Transaction, error)

func (uc *TransactionUseCase) singleAccount(
	ctx context.Context,
	accountID string,
	amount decimal.Decimal,
	mutate func(*domain.Account, domain.Money) error,
	newRecord transactionFactory,
) (*domain.Transaction, error) {
	if err := domain.ValidateAmount(amount); err != nil {
		return nil, err
	}

	var result *domain.Transaction
	err := uc.atomically(ctx, func(ctx context.Context) error {
		account, err := uc.accountLoader.LoadAccount(ctx, accountID)
		if err != nil {
			return err
		}

		money, err := domain.NewMoney(amount, account.Currency())
		if err != nil {
			return err
		}

		if err := mutate(account, money); err != nil {
			return err
		}

		if _, err := uc.accountSaver.SaveAccount(ctx, account); err != nil {
			return err
		}

		record, err := newRecord(uc.idGen.Generate(), account.ID, money)
		if err != nil {
			return err
		}

		result, err = uc.txSaver.SaveTransaction(ctx, record)
		return err
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (uc *TransactionUseCase) atomically(ctx context.Context, fn func(ctx context.Context) error) error {
	if uc.txManager == nil {
		return fn(ctx)
	}
	return uc.txManager.WithinTransaction(ctx, fn)
}

func (uc *TransactionUseCase) record(txType domain.TransactionType, tx *domain.Transaction, err error) {
	if err != nil {
		uc.metrics.RecordTransactionFailure(txType, domain.KindOf(err))
		return
	}
	uc.metrics.RecordTransaction(txType, tx.Amount)
}
