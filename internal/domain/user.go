package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// User is a customer of the bank. The set of account IDs is informational;
// money movements never consult it.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	accounts map[string]struct{}
}

// NewUser creates an active user with no accounts.
func NewUser(id, name, email, passwordHash string) (*User, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: user id", ErrEmptyID)
	}
	if err := ValidateUserName(name); err != nil {
		return nil, err
	}
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	if strings.TrimSpace(passwordHash) == "" {
		return nil, ErrEmptyPasswordHash
	}

	now := time.Now().UTC()
	return &User{
		ID:           id,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
		accounts:     make(map[string]struct{}),
	}, nil
}

// AddAccount associates an account with the user.
func (u *User) AddAccount(accountID string) error {
	if strings.TrimSpace(accountID) == "" {
		return fmt.Errorf("%w: account id", ErrEmptyID)
	}
	if u.HasAccount(accountID) {
		return fmt.Errorf("%w: %s", ErrAccountAlreadyLinked, accountID)
	}
	if u.accounts == nil {
		u.accounts = make(map[string]struct{})
	}
	u.accounts[accountID] = struct{}{}
	u.touch()
	return nil
}

// RemoveAccount dissociates an account from the user.
func (u *User) RemoveAccount(accountID string) error {
	if !u.HasAccount(accountID) {
		return fmt.Errorf("%w: %s", ErrAccountNotLinked, accountID)
	}
	delete(u.accounts, accountID)
	u.touch()
	return nil
}

// HasAccount reports whether accountID belongs to the user.
func (u *User) HasAccount(accountID string) bool {
	_, ok := u.accounts[accountID]
	return ok
}

// AccountIDs returns the associated account IDs in ascending order.
func (u *User) AccountIDs() []string {
	ids := make([]string, 0, len(u.accounts))
	for id := range u.accounts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// RestoreAccounts replaces the account set without touching timestamps.
// Persistence adapters use it when loading a user.
func (u *User) RestoreAccounts(accountIDs []string) {
	u.accounts = make(map[string]struct{}, len(accountIDs))
	for _, id := range accountIDs {
		u.accounts[id] = struct{}{}
	}
}

// UpdateName changes the display name.
func (u *User) UpdateName(name string) error {
	if err := ValidateUserName(name); err != nil {
		return err
	}
	u.Name = name
	u.touch()
	return nil
}

// UpdateEmail changes the email address.
func (u *User) UpdateEmail(email string) error {
	if err := ValidateEmail(email); err != nil {
		return err
	}
	u.Email = email
	u.touch()
	return nil
}

// UpdatePasswordHash replaces the stored credential hash.
func (u *User) UpdatePasswordHash(passwordHash string) error {
	if strings.TrimSpace(passwordHash) == "" {
		return ErrEmptyPasswordHash
	}
	u.PasswordHash = passwordHash
	u.touch()
	return nil
}

// Activate marks the user as active.
func (u *User) Activate() {
	u.Active = true
	u.touch()
}

// Deactivate marks the user as inactive.
func (u *User) Deactivate() {
	u.Active = false
	u.touch()
}

// Clone returns a deep copy of the user.
func (u *User) Clone() *User {
	c := *u
	c.RestoreAccounts(u.AccountIDs())
	return &c
}

func (u *User) touch() {
	u.UpdatedAt = time.Now().UTC()
}
