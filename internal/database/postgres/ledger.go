// Package postgres implements repository.Ledger on PostgreSQL via pgx.
package postgres

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/osse101/CoinBot_Go/internal/database"
	"github.com/osse101/CoinBot_Go/internal/domain"
	"github.com/osse101/CoinBot_Go/internal/logger"
	"github.com/osse101/CoinBot_Go/internal/repository"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// LedgerRepository implements repository.Ledger for PostgreSQL
type LedgerRepository struct {
	db *pgxpool.Pool
}

var _ repository.Ledger = (*LedgerRepository)(nil)

// NewLedgerRepository wraps an already migrated pool
func NewLedgerRepository(db *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// Open applies migrations on pool and returns a repository that owns it
func Open(ctx context.Context, pool *pgxpool.Pool) (*LedgerRepository, error) {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := database.Migrate(ctx, db, goose.DialectPostgres); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgMigrate, err)
	}
	return NewLedgerRepository(pool), nil
}

// GetAccount returns the account or its zero value
func (r *LedgerRepository) GetAccount(ctx context.Context, userID string) (domain.Account, error) {
	return getAccount(ctx, r.db, SQLGetAccount, userID)
}

// PutAccount upserts all three account fields
func (r *LedgerRepository) PutAccount(ctx context.Context, account domain.Account) error {
	return putAccount(ctx, r.db, account)
}

// GetInventory returns the user's items ordered by name
func (r *LedgerRepository) GetInventory(ctx context.Context, userID string) (domain.Inventory, error) {
	return getInventory(ctx, r.db, userID)
}

// IncrementItem adds one of item, creating the row when absent
func (r *LedgerRepository) IncrementItem(ctx context.Context, userID, item string) error {
	return incrementItem(ctx, r.db, userID, item)
}

// ResetBalances zeroes every balance
func (r *LedgerRepository) ResetBalances(ctx context.Context) error {
	tag, err := r.db.Exec(ctx, SQLResetBalances)
	if err != nil {
		return storageErr(ErrMsgResetBalances, err)
	}
	logger.FromContext(ctx).Info(LogMsgBalancesReset, "accounts", tag.RowsAffected())
	return nil
}

// BeginTx starts a new transaction
func (r *LedgerRepository) BeginTx(ctx context.Context) (repository.LedgerTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, storageErr(ErrMsgBeginTx, err)
	}
	return &LedgerTx{tx: tx}, nil
}

// Ping verifies connectivity
func (r *LedgerRepository) Ping(ctx context.Context) error {
	if err := r.db.Ping(ctx); err != nil {
		return storageErr(ErrMsgPing, err)
	}
	return nil
}

// Close closes the pool
func (r *LedgerRepository) Close() error {
	r.db.Close()
	return nil
}

// LedgerTx implements repository.LedgerTx
type LedgerTx struct {
	tx pgx.Tx
}

var _ repository.LedgerTx = (*LedgerTx)(nil)

// GetAccountForUpdate takes a transaction-scoped advisory lock on the user
// before reading. Advisory locks work even when no row exists (unlike SELECT FOR UPDATE).
func (t *LedgerTx) GetAccountForUpdate(ctx context.Context, userID string) (domain.Account, error) {
	if _, err := t.tx.Exec(ctx, SQLAdvisoryLock, hashUserID(userID)); err != nil {
		return domain.Account{}, storageErr(ErrMsgAcquireLock, err)
	}
	return getAccount(ctx, t.tx, SQLGetAccountForUpdate, userID)
}

func (t *LedgerTx) PutAccount(ctx context.Context, account domain.Account) error {
	return putAccount(ctx, t.tx, account)
}

func (t *LedgerTx) IncrementItem(ctx context.Context, userID, item string) error {
	return incrementItem(ctx, t.tx, userID, item)
}

func (t *LedgerTx) GetInventory(ctx context.Context, userID string) (domain.Inventory, error) {
	return getInventory(ctx, t.tx, userID)
}

// Commit commits the transaction (releases advisory locks automatically)
func (t *LedgerTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		if errors.Is(err, pgx.ErrTxClosed) {
			return repository.ErrTxClosed
		}
		return storageErr(ErrMsgCommitTx, err)
	}
	return nil
}

// Rollback rolls back the transaction
func (t *LedgerTx) Rollback(ctx context.Context) error {
	if err := t.tx.Rollback(ctx); err != nil {
		if errors.Is(err, pgx.ErrTxClosed) {
			return repository.ErrTxClosed
		}
		return err
	}
	return nil
}

func getAccount(ctx context.Context, q querier, query, userID string) (domain.Account, error) {
	acct := domain.NewAccount(userID)

	err := q.QueryRow(ctx, query, userID).Scan(&acct.Balance, &acct.LastDailyClaim, &acct.LastWeeklyClaim)
	if errors.Is(err, pgx.ErrNoRows) {
		return acct, nil
	}
	if err != nil {
		return domain.Account{}, storageErr(ErrMsgGetAccount, err)
	}

	acct.LastDailyClaim = utc(acct.LastDailyClaim)
	acct.LastWeeklyClaim = utc(acct.LastWeeklyClaim)
	return acct, nil
}

func putAccount(ctx context.Context, q querier, a domain.Account) error {
	_, err := q.Exec(ctx, SQLUpsertAccount, a.UserID, a.Balance, a.LastDailyClaim, a.LastWeeklyClaim)
	if err != nil {
		return storageErr(ErrMsgPutAccount, err)
	}
	return nil
}

func getInventory(ctx context.Context, q querier, userID string) (domain.Inventory, error) {
	rows, err := q.Query(ctx, SQLGetInventory, userID)
	if err != nil {
		return domain.Inventory{}, storageErr(ErrMsgGetInventory, err)
	}

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.InventoryEntry, error) {
		var e domain.InventoryEntry
		err := row.Scan(&e.Item, &e.Count)
		return e, err
	})
	if err != nil {
		return domain.Inventory{}, storageErr(ErrMsgGetInventory, err)
	}
	return domain.Inventory{UserID: userID, Entries: entries}, nil
}

func incrementItem(ctx context.Context, q querier, userID, item string) error {
	if _, err := q.Exec(ctx, SQLIncrementItem, userID, item); err != nil {
		return storageErr(ErrMsgIncrementItem, err)
	}
	return nil
}

// hashUserID creates a consistent int64 key from userID for advisory locking
func hashUserID(userID string) int64 {
	h := sha256.Sum256([]byte(AdvisoryLockNamespace + userID))
	return int64(binary.BigEndian.Uint64(h[:8]) & HashMaskPositiveInt64)
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

func storageErr(msg string, err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrStorage, msg, err)
}
