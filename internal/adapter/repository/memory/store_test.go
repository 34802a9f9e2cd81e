package memory

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/nexusbank/internal/domain"
)

func TestStore_Users(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	_, err := s.LoadUser(ctx, "user-1")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	u, err := domain.NewUser("user-1", "Jane", "jane@example.com", "hash")
	require.NoError(t, err)
	require.NoError(t, s.SaveUser(ctx, u))

	found, err := s.FindUserByEmail(ctx, "JANE@example.com")
	require.NoError(t, err)
	assert.Equal(t, "user-1", found.ID)

	other, err := domain.NewUser("user-2", "Janet", "jane@example.com", "hash")
	require.NoError(t, err)
	assert.ErrorIs(t, s.SaveUser(ctx, other), domain.ErrDuplicateEmail)

	found.Name = "mutated"
	reloaded, err := s.LoadUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Jane", reloaded.Name)
}

func TestStore_UserAccountsHydrated(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	u, _ := domain.NewUser("user-1", "Jane", "jane@example.com", "hash")
	require.NoError(t, s.SaveUser(ctx, u))

	for _, id := range []string{"acc-2", "acc-1"} {
		acc, _ := domain.NewAccount(id, "user-1", "USD")
		_, err := s.SaveAccount(ctx, acc)
		require.NoError(t, err)
	}

	loaded, err := s.LoadUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"acc-1", "acc-2"}, loaded.AccountIDs())

	accounts, err := s.LoadAccountsByUserID(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "acc-2", accounts[0].ID)

	none, err := s.LoadAccountsByUserID(ctx, "nobody")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestStore_SaveAccountVersioning(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	acc, _ := domain.NewAccount("acc-1", "user-1", "USD")
	saved, err := s.SaveAccount(ctx, acc)
	require.NoError(t, err)
	assert.Equal(t, int64(1), saved.Version)

	first, _ := s.LoadAccount(ctx, "acc-1")
	second, _ := s.LoadAccount(ctx, "acc-1")

	amount, _ := domain.NewMoney(decimal.NewFromInt(10), "USD")
	require.NoError(t, first.Deposit(amount))
	_, err = s.SaveAccount(ctx, first)
	require.NoError(t, err)

	require.NoError(t, second.Deposit(amount))
	_, err = s.SaveAccount(ctx, second)
	assert.ErrorIs(t, err, domain.ErrConcurrentModification)
	assert.Equal(t, domain.KindConflict, domain.KindOf(err))

	current, err := s.LoadAccount(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, "10.00 USD", current.Balance.String())
	assert.Equal(t, int64(2), current.Version)
}

func TestStore_Transactions(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	amount, _ := domain.NewMoney(decimal.NewFromInt(5), "USD")

	for i := 1; i <= 5; i++ {
		tx, err := domain.NewDeposit(fmt.Sprintf("tx-%d", i), "acc-1", amount)
		require.NoError(t, err)
		_, err = s.SaveTransaction(ctx, tx)
		require.NoError(t, err)
	}
	other, _ := domain.NewDeposit("tx-other", "acc-2", amount)
	_, err := s.SaveTransaction(ctx, other)
	require.NoError(t, err)

	page, err := s.LoadTransactionsByAccountID(ctx, "acc-1", 2, 1)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "tx-4", page[0].ID)
	assert.Equal(t, "tx-3", page[1].ID)

	empty, err := s.LoadTransactionsByAccountID(ctx, "acc-1", 10, 50)
	require.NoError(t, err)
	assert.Empty(t, empty)

	got, err := s.LoadTransaction(ctx, "tx-other")
	require.NoError(t, err)
	assert.Equal(t, "acc-2", got.AccountID)

	_, err = s.LoadTransaction(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrTransactionNotFound)

	_, err = s.LoadAccount(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}
