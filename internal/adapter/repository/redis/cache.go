package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/iho/nexusbank/internal/domain"
	"github.com/iho/nexusbank/internal/usecase"
)

// DefaultAccountCacheTTL bounds how stale a cached account can get when an
// invalidation is lost.
const DefaultAccountCacheTTL = 30 * time.Second

// AccountCache is a read-through cache in front of an account store.
// Saves go to the store first and then evict the cached copy.
type AccountCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	loader usecase.LoadAccountPort
	saver  usecase.SaveAccountPort
}

// NewAccountCache creates a new AccountCache.
func NewAccountCache(client *redis.Client, loader usecase.LoadAccountPort, saver usecase.SaveAccountPort, ttl time.Duration) *AccountCache {
	if ttl <= 0 {
		ttl = DefaultAccountCacheTTL
	}

	return &AccountCache{
		client: client,
		prefix: "nexusbank:account:",
		ttl:    ttl,
		loader: loader,
		saver:  saver,
	}
}

type cachedAccount struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Balance   string    `json:"balance"`
	Currency  string    `json:"currency"`
	Active    bool      `json:"active"`
	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoadAccount returns the cached account or loads and caches it.
// Cache failures fall back to the underlying store.
func (c *AccountCache) LoadAccount(ctx context.Context, id string) (*domain.Account, error) {
	raw, err := c.client.Get(ctx, c.prefix+id).Bytes()
	switch {
	case err == nil:
		account, decodeErr := decodeAccount(raw)
		if decodeErr == nil {
			return account, nil
		}
		log.Warn().Err(decodeErr).Str("account_id", id).Msg("discarding undecodable cached account")
	case !errors.Is(err, redis.Nil):
		log.Warn().Err(err).Str("account_id", id).Msg("account cache read failed")
	}

	account, err := c.loader.LoadAccount(ctx, id)
	if err != nil {
		return nil, err
	}

	if raw, err := encodeAccount(account); err == nil {
		if err := c.client.Set(ctx, c.prefix+id, raw, c.ttl).Err(); err != nil {
			log.Warn().Err(err).Str("account_id", id).Msg("account cache write failed")
		}
	}

	return account, nil
}

// LoadAccountsByUserID is not cached.
func (c *AccountCache) LoadAccountsByUserID(ctx context.Context, userID string) ([]*domain.Account, error) {
	return c.loader.LoadAccountsByUserID(ctx, userID)
}

// SaveAccount persists the account and evicts its cached copy once the
// enclosing unit of work commits, so a concurrent read cannot refill the
// cache with the pre-commit row.
func (c *AccountCache) SaveAccount(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	saved, err := c.saver.SaveAccount(ctx, account)
	if err != nil {
		return nil, err
	}

	id := account.ID
	usecase.AfterCommit(ctx, func(ctx context.Context) {
		if err := c.Invalidate(ctx, id); err != nil {
			log.Warn().Err(err).Str("account_id", id).Msg("account cache eviction failed")
		}
	})

	return saved, nil
}

// Invalidate removes an account from the cache.
func (c *AccountCache) Invalidate(ctx context.Context, id string) error {
	return c.client.Del(ctx, c.prefix+id).Err()
}

func encodeAccount(a *domain.Account) ([]byte, error) {
	return json.Marshal(cachedAccount{
		ID:        a.ID,
		UserID:    a.UserID,
		Balance:   a.Balance.Amount().String(),
		Currency:  a.Currency(),
		Active:    a.Active,
		Version:   a.Version,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	})
}

func decodeAccount(raw []byte) (*domain.Account, error) {
	var c cachedAccount
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("failed to decode cached account: %w", err)
	}

	amount, err := decimal.NewFromString(c.Balance)
	if err != nil {
		return nil, fmt.Errorf("failed to decode cached balance: %w", err)
	}

	balance, err := domain.NewMoney(amount, c.Currency)
	if err != nil {
		return nil, err
	}

	return &domain.Account{
		ID:        c.ID,
		UserID:    c.UserID,
		Balance:   balance,
		Active:    c.Active,
		Version:   c.Version,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}, nil
}
