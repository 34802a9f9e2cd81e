// Package memory keeps users, accounts and transactions in process memory.
// It backs STORAGE_DRIVER=memory and the end-to-end use case tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/iho/nexusbank/internal/domain"
)

// Store implements every persistence port. Values are copied on the way in
// and out so callers never share state with the store.
type Store struct {
	mu           sync.RWMutex
	users        map[string]*domain.User
	emails       map[string]string
	accounts     map[string]*domain.Account
	transactions map[string]*domain.Transaction
	seq          map[string]int64
	next         int64
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		users:        make(map[string]*domain.User),
		emails:       make(map[string]string),
		accounts:     make(map[string]*domain.Account),
		transactions: make(map[string]*domain.Transaction),
		seq:          make(map[string]int64),
	}
}

// LoadUser returns the user with the given ID and its account IDs.
func (s *Store) LoadUser(_ context.Context, id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return s.hydrateUser(u), nil
}

// FindUserByEmail looks a user up by email, ignoring case.
func (s *Store) FindUserByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.emails[strings.ToLower(email)]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return s.hydrateUser(s.users[id]), nil
}

// SaveUser inserts or replaces a user. Email addresses are unique.
func (s *Store) SaveUser(_ context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(user.Email)
	if owner, ok := s.emails[key]; ok && owner != user.ID {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateEmail, user.Email)
	}

	if prev, ok := s.users[user.ID]; ok {
		delete(s.emails, strings.ToLower(prev.Email))
	}
	s.users[user.ID] = user.Clone()
	s.emails[key] = user.ID
	return nil
}

// LoadAccount returns the account with the given ID.
func (s *Store) LoadAccount(_ context.Context, id string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return copyAccount(a), nil
}

// LoadAccountsByUserID returns a user's accounts, oldest first.
func (s *Store) LoadAccountsByUserID(_ context.Context, userID string) ([]*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	accounts := make([]*domain.Account, 0)
	for _, a := range s.accounts {
		if a.UserID == userID {
			accounts = append(accounts, copyAccount(a))
		}
	}
	sort.Slice(accounts, func(i, j int) bool {
		return s.seq[accounts[i].ID] < s.seq[accounts[j].ID]
	})
	return accounts, nil
}

// SaveAccount inserts or updates an account. An update must carry the
// version that was loaded; a stale version yields
// domain.ErrConcurrentModification.
func (s *Store) SaveAccount(_ context.Context, account *domain.Account) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, exists := s.accounts[account.ID]
	if exists && stored.Version != account.Version {
		return nil, fmt.Errorf("%w: account %s", domain.ErrConcurrentModification, account.ID)
	}

	saved := copyAccount(account)
	saved.Version++
	if !exists {
		s.track(saved.ID)
	}
	s.accounts[saved.ID] = saved

	return copyAccount(saved), nil
}

// SaveTransaction inserts or replaces a transaction record.
func (s *Store) SaveTransaction(_ context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.transactions[tx.ID]; !exists {
		s.track(tx.ID)
	}
	saved := *tx
	s.transactions[tx.ID] = &saved

	out := saved
	return &out, nil
}

// LoadTransaction returns the transaction with the given ID.
func (s *Store) LoadTransaction(_ context.Context, id string) (*domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tx, ok := s.transactions[id]
	if !ok {
		return nil, domain.ErrTransactionNotFound
	}
	out := *tx
	return &out, nil
}

// LoadTransactionsByAccountID returns transactions whose source is accountID,
// newest first.
func (s *Store) LoadTransactionsByAccountID(_ context.Context, accountID string, limit, offset int) ([]*domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]*domain.Transaction, 0)
	for _, tx := range s.transactions {
		if tx.AccountID == accountID {
			out := *tx
			matched = append(matched, &out)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return s.seq[matched[i].ID] > s.seq[matched[j].ID]
	})

	if offset >= len(matched) {
		return []*domain.Transaction{}, nil
	}
	end := len(matched)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return matched[offset:end], nil
}

// Ping always succeeds.
func (s *Store) Ping(context.Context) error {
	return nil
}

func (s *Store) hydrateUser(u *domain.User) *domain.User {
	out := u.Clone()
	ids := make([]string, 0)
	for _, a := range s.accounts {
		if a.UserID == u.ID {
			ids = append(ids, a.ID)
		}
	}
	out.RestoreAccounts(ids)
	return out
}

func (s *Store) track(id string) {
	s.next++
	s.seq[id] = s.next
}

func copyAccount(a *domain.Account) *domain.Account {
	out := *a
	return &out
}
