package dto

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/nexusbank/internal/domain"
)

func TestAccountFromDomain(t *testing.T) {
	account, err := domain.NewAccount("acc-1", "user-1", "USD")
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	amount, _ := domain.NewMoney(decimal.RequireFromString("123.4"), "USD")
	if err := account.Deposit(amount); err != nil {
		t.Fatalf("deposit failed: %v", err)
	}

	resp := AccountFromDomain(account)
	if resp.ID != "acc-1" || resp.UserID != "user-1" || !resp.Active {
		t.Fatalf("unexpected account response: %+v", resp)
	}
	if resp.Balance.Amount != "123.40" || resp.Balance.Currency != "USD" {
		t.Fatalf("unexpected balance: %+v", resp.Balance)
	}

	list := AccountsFromDomain([]*domain.Account{account})
	if len(list) != 1 || list[0].ID != account.ID {
		t.Fatalf("AccountsFromDomain returned %+v", list)
	}
}

func TestAccountResponse_JSONShape(t *testing.T) {
	account, _ := domain.NewAccount("acc-1", "user-1", "USD")

	raw, err := json.Marshal(AccountFromDomain(account))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	for _, key := range []string{`"userId":"user-1"`, `"balance":{"amount":"0.00","currency":"USD"}`, `"createdAt"`} {
		if !strings.Contains(string(raw), key) {
			t.Errorf("expected %s in %s", key, raw)
		}
	}
}

func TestTransactionFromDomain(t *testing.T) {
	amount, _ := domain.NewMoney(decimal.NewFromInt(50), "USD")

	transfer, err := domain.NewTransfer("tx-1", "acc-1", "acc-2", amount)
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	resp := TransactionFromDomain(transfer)
	if resp.TargetAccountID != "acc-2" || resp.Type != "TRANSFER" || resp.Status != "COMPLETED" {
		t.Fatalf("unexpected transfer response: %+v", resp)
	}
	if resp.Amount.Amount != "50.00" {
		t.Fatalf("unexpected amount: %+v", resp.Amount)
	}

	deposit, _ := domain.NewDeposit("tx-2", "acc-1", amount)
	raw, _ := json.Marshal(TransactionFromDomain(deposit))
	if strings.Contains(string(raw), "targetAccountId") {
		t.Fatalf("expected deposit response to omit target account: %s", raw)
	}

	if got := TransactionsFromDomain([]*domain.Transaction{transfer, deposit}); len(got) != 2 {
		t.Fatalf("expected 2 responses, got %d", len(got))
	}
}

func TestUserFromDomain(t *testing.T) {
	user, err := domain.NewUser("user-1", "Jane", "jane@example.com", "hash")
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	_ = user.AddAccount("acc-2")
	_ = user.AddAccount("acc-1")

	resp := UserFromDomain(user)
	if resp.Email != "jane@example.com" || len(resp.AccountIDs) != 2 || resp.AccountIDs[0] != "acc-1" {
		t.Fatalf("unexpected user response: %+v", resp)
	}

	raw, _ := json.Marshal(resp)
	if strings.Contains(string(raw), "hash") {
		t.Fatalf("password hash leaked into response: %s", raw)
	}
}
