package repository

import (
	"context"

	"github.com/osse101/CoinBot_Go/internal/domain"
)

// Ledger defines the interface for account and inventory persistence.
// Reads of unknown users return zero values; only storage failures are errors.
type Ledger interface {
	GetAccount(ctx context.Context, userID string) (domain.Account, error)
	// PutAccount upserts every field of the account as one unit
	PutAccount(ctx context.Context, account domain.Account) error
	GetInventory(ctx context.Context, userID string) (domain.Inventory, error)
	IncrementItem(ctx context.Context, userID, item string) error
	// ResetBalances zeroes every balance and leaves claim timestamps untouched
	ResetBalances(ctx context.Context) error

	BeginTx(ctx context.Context) (LedgerTx, error)

	Ping(ctx context.Context) error
	Close() error
}

// LedgerTx defines the interface for ledger transactions
type LedgerTx interface {
	Tx
	// GetAccountForUpdate reads the account and serialises other writers of it
	// until the transaction ends, including when no row exists yet
	GetAccountForUpdate(ctx context.Context, userID string) (domain.Account, error)
	PutAccount(ctx context.Context, account domain.Account) error
	IncrementItem(ctx context.Context, userID, item string) error
	GetInventory(ctx context.Context, userID string) (domain.Inventory, error)
}
