// Package ledger implements the account operations: claims, transfers, bets,
// purchases and privileged credits. Each mutation holds the per-account
// locks of every account it touches and commits exactly one store transaction.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/osse101/CoinBot_Go/internal/concurrency"
	"github.com/osse101/CoinBot_Go/internal/cooldown"
	"github.com/osse101/CoinBot_Go/internal/domain"
	"github.com/osse101/CoinBot_Go/internal/event"
	"github.com/osse101/CoinBot_Go/internal/logger"
	"github.com/osse101/CoinBot_Go/internal/random"
	"github.com/osse101/CoinBot_Go/internal/repository"
)

// Service defines the interface for account operations
type Service interface {
	Balance(ctx context.Context, userID string) (int64, error)
	Inventory(ctx context.Context, userID string) (domain.Inventory, error)

	ClaimDaily(ctx context.Context, userID string, now time.Time) (domain.ClaimResult, error)
	ClaimWeekly(ctx context.Context, userID string, now time.Time) (domain.ClaimResult, error)
	Transfer(ctx context.Context, senderID, recipientID string, amount int64) (domain.TransferResult, error)
	Bet(ctx context.Context, userID string, amount int64, call string) (domain.BetResult, error)
	RollDice(ctx context.Context, userID string, amount int64, face int) (domain.DiceResult, error)
	Purchase(ctx context.Context, userID string, item domain.ShopItem) (domain.PurchaseResult, error)

	CreditAdmin(ctx context.Context, recipientID string, amount int64) (int64, error)
	ResetAllBalances(ctx context.Context) error
}

type service struct {
	repo      repository.Ledger
	locks     *concurrency.LockManager
	cooldowns *cooldown.Checker
	rng       random.Resolver
	bus       event.Bus
}

// NewService creates a new ledger service. bus may be nil.
func NewService(repo repository.Ledger, locks *concurrency.LockManager, cooldowns *cooldown.Checker, rng random.Resolver, bus event.Bus) Service {
	return &service{
		repo:      repo,
		locks:     locks,
		cooldowns: cooldowns,
		rng:       rng,
		bus:       bus,
	}
}

// withAccounts locks userIDs, runs fn in one transaction and commits it
func (s *service) withAccounts(ctx context.Context, op string, fn func(tx repository.LedgerTx) error, userIDs ...string) error {
	unlock := s.locks.LockAll(userIDs...)
	defer unlock()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return s.storageFailure(ctx, op, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := fn(tx); err != nil {
		return s.storageFailure(ctx, op, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return s.storageFailure(ctx, op, err)
	}
	return nil
}

func (s *service) storageFailure(ctx context.Context, op string, err error) error {
	logger.FromContext(ctx).Error(LogMsgStorageFailure, "op", op, "error", err)
	if !errors.Is(err, domain.ErrStorage) {
		err = fmt.Errorf("%w: %w", domain.ErrStorage, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	event.PublishBestEffort(ctx, s.bus, evt)
}

func (s *service) Balance(ctx context.Context, userID string) (int64, error) {
	acct, err := s.repo.GetAccount(ctx, userID)
	if err != nil {
		return 0, s.storageFailure(ctx, OpBalance, err)
	}
	return acct.Balance, nil
}

func (s *service) Inventory(ctx context.Context, userID string) (domain.Inventory, error) {
	inv, err := s.repo.GetInventory(ctx, userID)
	if err != nil {
		return domain.Inventory{}, s.storageFailure(ctx, OpInventory, err)
	}
	return inv, nil
}

// CreditAdmin credits recipientID without any cooldown interaction
func (s *service) CreditAdmin(ctx context.Context, recipientID string, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("%s: %w: amount must be positive", OpCredit, domain.ErrInvalidInput)
	}

	var balance int64
	var overflow bool
	err := s.withAccounts(ctx, OpCredit, func(tx repository.LedgerTx) error {
		acct, err := tx.GetAccountForUpdate(ctx, recipientID)
		if err != nil {
			return err
		}
		next, ok := addChecked(acct.Balance, amount)
		if !ok {
			overflow = true
			balance = acct.Balance
			return nil
		}
		acct.Balance = next
		balance = next
		return tx.PutAccount(ctx, acct)
	}, recipientID)
	if err != nil {
		return 0, err
	}
	if overflow {
		return balance, fmt.Errorf("%s: %w: balance would overflow", OpCredit, domain.ErrInvalidInput)
	}

	logger.FromContext(ctx).Info(LogMsgAdminCredit, "recipient", recipientID, "amount", amount, "balance", balance)
	s.publish(ctx, event.NewCoinsGrantedEvent(recipientID, domain.SourceAdmin, amount))
	return balance, nil
}

// ResetAllBalances zeroes every balance, leaving claim timestamps in place
func (s *service) ResetAllBalances(ctx context.Context) error {
	if err := s.repo.ResetBalances(ctx); err != nil {
		return s.storageFailure(ctx, OpReset, err)
	}
	logger.FromContext(ctx).Warn(LogMsgBalancesReset)
	return nil
}

// addChecked adds two non-negative-result amounts, reporting int64 overflow
func addChecked(a, b int64) (int64, bool) {
	if b > 0 && a > math.MaxInt64-b {
		return a, false
	}
	return a + b, true
}
