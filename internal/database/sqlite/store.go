// Package sqlite implements repository.Ledger on a single-file SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/osse101/CoinBot_Go/internal/database"
	"github.com/osse101/CoinBot_Go/internal/domain"
	"github.com/osse101/CoinBot_Go/internal/repository"
)

// querier is satisfied by both *sql.DB and *sql.Tx
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store implements repository.Ledger
type Store struct {
	db *sql.DB
}

var _ repository.Ledger = (*Store)(nil)

// Open opens (creating if needed) the database at path and applies migrations.
// The pool is capped at one connection so every transaction is serialised.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open(DriverName, dsn(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgOpen, err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgOpen, err)
	}

	if err := database.Migrate(ctx, db, goose.DialectSQLite3); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgMigrate, err)
	}

	slog.Default().Info(LogMsgOpened, "path", path)
	return &Store{db: db}, nil
}

func dsn(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	if !strings.HasPrefix(path, "file:") {
		path = "file:" + path
	}
	return path + sep + dsnPragmas
}

// GetAccount returns the account or its zero value
func (s *Store) GetAccount(ctx context.Context, userID string) (domain.Account, error) {
	return getAccount(ctx, s.db, userID)
}

// PutAccount upserts all three account fields
func (s *Store) PutAccount(ctx context.Context, account domain.Account) error {
	return putAccount(ctx, s.db, account)
}

// GetInventory returns the user's items ordered by name
func (s *Store) GetInventory(ctx context.Context, userID string) (domain.Inventory, error) {
	return getInventory(ctx, s.db, userID)
}

// IncrementItem adds one of item, creating the row when absent
func (s *Store) IncrementItem(ctx context.Context, userID, item string) error {
	return incrementItem(ctx, s.db, userID, item)
}

// ResetBalances zeroes every balance
func (s *Store) ResetBalances(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, SQLResetBalances); err != nil {
		return storageErr(ErrMsgResetBalances, err)
	}
	return nil
}

// BeginTx starts a transaction on the single connection
func (s *Store) BeginTx(ctx context.Context) (repository.LedgerTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, storageErr(ErrMsgBeginTx, err)
	}
	return &Tx{tx: tx}, nil
}

// Ping verifies the connection
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return storageErr(ErrMsgPing, err)
	}
	return nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

// Tx implements repository.LedgerTx
type Tx struct {
	tx *sql.Tx
}

var _ repository.LedgerTx = (*Tx)(nil)

// GetAccountForUpdate reads the account. With a single connection the
// transaction already excludes every other writer.
func (t *Tx) GetAccountForUpdate(ctx context.Context, userID string) (domain.Account, error) {
	return getAccount(ctx, t.tx, userID)
}

func (t *Tx) PutAccount(ctx context.Context, account domain.Account) error {
	return putAccount(ctx, t.tx, account)
}

func (t *Tx) IncrementItem(ctx context.Context, userID, item string) error {
	return incrementItem(ctx, t.tx, userID, item)
}

func (t *Tx) GetInventory(ctx context.Context, userID string) (domain.Inventory, error) {
	return getInventory(ctx, t.tx, userID)
}

// Commit commits the transaction
func (t *Tx) Commit(_ context.Context) error {
	if err := t.tx.Commit(); err != nil {
		if errors.Is(err, sql.ErrTxDone) {
			return repository.ErrTxClosed
		}
		return storageErr(ErrMsgCommitTx, err)
	}
	return nil
}

// Rollback rolls back the transaction
func (t *Tx) Rollback(_ context.Context) error {
	if err := t.tx.Rollback(); err != nil {
		if errors.Is(err, sql.ErrTxDone) {
			return repository.ErrTxClosed
		}
		return err
	}
	return nil
}

func getAccount(ctx context.Context, q querier, userID string) (domain.Account, error) {
	acct := domain.NewAccount(userID)
	var daily, weekly sql.NullString

	err := q.QueryRowContext(ctx, SQLGetAccount, userID).Scan(&acct.Balance, &daily, &weekly)
	if errors.Is(err, sql.ErrNoRows) {
		return acct, nil
	}
	if err != nil {
		return domain.Account{}, storageErr(ErrMsgGetAccount, err)
	}

	if acct.LastDailyClaim, err = parseTimestamp(daily); err != nil {
		return domain.Account{}, storageErr(ErrMsgGetAccount, err)
	}
	if acct.LastWeeklyClaim, err = parseTimestamp(weekly); err != nil {
		return domain.Account{}, storageErr(ErrMsgGetAccount, err)
	}
	return acct, nil
}

func putAccount(ctx context.Context, q querier, a domain.Account) error {
	_, err := q.ExecContext(ctx, SQLUpsertAccount,
		a.UserID, a.Balance, formatTimestamp(a.LastDailyClaim), formatTimestamp(a.LastWeeklyClaim))
	if err != nil {
		return storageErr(ErrMsgPutAccount, err)
	}
	return nil
}

func getInventory(ctx context.Context, q querier, userID string) (domain.Inventory, error) {
	rows, err := q.QueryContext(ctx, SQLGetInventory, userID)
	if err != nil {
		return domain.Inventory{}, storageErr(ErrMsgGetInventory, err)
	}
	defer rows.Close()

	inv := domain.Inventory{UserID: userID}
	for rows.Next() {
		var e domain.InventoryEntry
		if err := rows.Scan(&e.Item, &e.Count); err != nil {
			return domain.Inventory{}, storageErr(ErrMsgGetInventory, err)
		}
		inv.Entries = append(inv.Entries, e)
	}
	if err := rows.Err(); err != nil {
		return domain.Inventory{}, storageErr(ErrMsgGetInventory, err)
	}
	return inv, nil
}

func incrementItem(ctx context.Context, q querier, userID, item string) error {
	if _, err := q.ExecContext(ctx, SQLIncrementItem, userID, item); err != nil {
		return storageErr(ErrMsgIncrementItem, err)
	}
	return nil
}

func formatTimestamp(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: t.UTC().Format(time.RFC3339Nano), Valid: true}
}

func parseTimestamp(s sql.NullString) (*time.Time, error) {
	if !s.Valid || s.String == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s.String)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", ErrMsgParseTimestamp, s.String, err)
	}
	t = t.UTC()
	return &t, nil
}

func storageErr(msg string, err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrStorage, msg, err)
}
