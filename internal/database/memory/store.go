// Package memory is a map-backed ledger used in tests and for ephemeral runs.
package memory

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/osse101/CoinBot_Go/internal/domain"
	"github.com/osse101/CoinBot_Go/internal/repository"
)

var errClosed = errors.New("memory store is closed")

// Store implements repository.Ledger. A transaction owns the store exclusively
// from BeginTx until Commit or Rollback.
type Store struct {
	sem       chan struct{}
	accounts  map[string]domain.Account
	inventory map[string]map[string]int
	closed    bool
}

var _ repository.Ledger = (*Store)(nil)

// New creates an empty store
func New() *Store {
	return &Store{
		sem:       make(chan struct{}, 1),
		accounts:  make(map[string]domain.Account),
		inventory: make(map[string]map[string]int),
	}
}

func (s *Store) acquire(ctx context.Context) error {
	select {
	case s.sem <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	if s.closed {
		<-s.sem
		return errClosed
	}
	return nil
}

func (s *Store) release() {
	<-s.sem
}

// run executes fn with exclusive access, wrapping failures as storage errors
func (s *Store) run(ctx context.Context, fn func()) error {
	if err := s.acquire(ctx); err != nil {
		return storageErr(err)
	}
	defer s.release()
	fn()
	return nil
}

// GetAccount returns the account or its zero value
func (s *Store) GetAccount(ctx context.Context, userID string) (domain.Account, error) {
	var acct domain.Account
	err := s.run(ctx, func() { acct = s.account(userID) })
	return acct, err
}

// PutAccount upserts the account
func (s *Store) PutAccount(ctx context.Context, account domain.Account) error {
	return s.run(ctx, func() { s.accounts[account.UserID] = cloneAccount(account) })
}

// GetInventory returns the user's items sorted by name
func (s *Store) GetInventory(ctx context.Context, userID string) (domain.Inventory, error) {
	var inv domain.Inventory
	err := s.run(ctx, func() { inv = s.snapshotInventory(userID) })
	return inv, err
}

// IncrementItem adds one of item to the user's inventory
func (s *Store) IncrementItem(ctx context.Context, userID, item string) error {
	return s.run(ctx, func() { s.increment(userID, item, 1) })
}

// ResetBalances zeroes every balance
func (s *Store) ResetBalances(ctx context.Context) error {
	return s.run(ctx, func() {
		for id, acct := range s.accounts {
			acct.Balance = 0
			s.accounts[id] = acct
		}
	})
}

// BeginTx blocks until no other transaction is open
func (s *Store) BeginTx(ctx context.Context) (repository.LedgerTx, error) {
	if err := s.acquire(ctx); err != nil {
		return nil, storageErr(err)
	}
	return &Tx{
		store:     s,
		accounts:  make(map[string]domain.Account),
		increment: make(map[string]map[string]int),
	}, nil
}

// Ping reports whether the store is open
func (s *Store) Ping(ctx context.Context) error {
	return s.run(ctx, func() {})
}

// Close marks the store closed; later calls fail with a storage error
func (s *Store) Close() error {
	s.sem <- struct{}{}
	s.closed = true
	<-s.sem
	return nil
}

func (s *Store) account(userID string) domain.Account {
	acct, ok := s.accounts[userID]
	if !ok {
		return domain.NewAccount(userID)
	}
	return cloneAccount(acct)
}

func (s *Store) increment(userID, item string, n int) {
	items, ok := s.inventory[userID]
	if !ok {
		items = make(map[string]int)
		s.inventory[userID] = items
	}
	items[item] += n
}

func (s *Store) snapshotInventory(userID string) domain.Inventory {
	return buildInventory(userID, s.inventory[userID], nil)
}

// Tx is a buffered transaction; writes become visible to others on Commit
type Tx struct {
	store     *Store
	accounts  map[string]domain.Account
	increment map[string]map[string]int
	done      bool
}

var _ repository.LedgerTx = (*Tx)(nil)

// GetAccountForUpdate reads through the transaction's pending writes
func (t *Tx) GetAccountForUpdate(_ context.Context, userID string) (domain.Account, error) {
	if t.done {
		return domain.Account{}, storageErr(repository.ErrTxClosed)
	}
	if acct, ok := t.accounts[userID]; ok {
		return cloneAccount(acct), nil
	}
	return t.store.account(userID), nil
}

// PutAccount stages an upsert
func (t *Tx) PutAccount(_ context.Context, account domain.Account) error {
	if t.done {
		return storageErr(repository.ErrTxClosed)
	}
	t.accounts[account.UserID] = cloneAccount(account)
	return nil
}

// IncrementItem stages a +1
func (t *Tx) IncrementItem(_ context.Context, userID, item string) error {
	if t.done {
		return storageErr(repository.ErrTxClosed)
	}
	items, ok := t.increment[userID]
	if !ok {
		items = make(map[string]int)
		t.increment[userID] = items
	}
	items[item]++
	return nil
}

// GetInventory reads committed rows plus staged increments
func (t *Tx) GetInventory(_ context.Context, userID string) (domain.Inventory, error) {
	if t.done {
		return domain.Inventory{}, storageErr(repository.ErrTxClosed)
	}
	return buildInventory(userID, t.store.inventory[userID], t.increment[userID]), nil
}

// Commit applies staged writes and releases the store
func (t *Tx) Commit(_ context.Context) error {
	if t.done {
		return repository.ErrTxClosed
	}
	for id, acct := range t.accounts {
		t.store.accounts[id] = acct
	}
	for userID, items := range t.increment {
		for item, n := range items {
			t.store.increment(userID, item, n)
		}
	}
	t.finish()
	return nil
}

// Rollback discards staged writes and releases the store
func (t *Tx) Rollback(_ context.Context) error {
	if t.done {
		return repository.ErrTxClosed
	}
	t.finish()
	return nil
}

func (t *Tx) finish() {
	t.done = true
	t.accounts = nil
	t.increment = nil
	t.store.release()
}

func buildInventory(userID string, committed, staged map[string]int) domain.Inventory {
	counts := make(map[string]int, len(committed)+len(staged))
	for item, n := range committed {
		counts[item] += n
	}
	for item, n := range staged {
		counts[item] += n
	}

	inv := domain.Inventory{UserID: userID, Entries: make([]domain.InventoryEntry, 0, len(counts))}
	for item, n := range counts {
		if n > 0 {
			inv.Entries = append(inv.Entries, domain.InventoryEntry{Item: item, Count: n})
		}
	}
	sort.Slice(inv.Entries, func(i, j int) bool { return inv.Entries[i].Item < inv.Entries[j].Item })
	return inv
}

func cloneAccount(a domain.Account) domain.Account {
	a.LastDailyClaim = cloneTime(a.LastDailyClaim)
	a.LastWeeklyClaim = cloneTime(a.LastWeeklyClaim)
	return a
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := t.UTC()
	return &c
}
