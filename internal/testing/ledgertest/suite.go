// Package ledgertest holds the behaviour every repository.Ledger backend must share.
package ledgertest

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CoinBot_Go/internal/domain"
	"github.com/osse101/CoinBot_Go/internal/repository"
)

// Factory returns a fresh, empty ledger. The suite closes it.
type Factory func(t *testing.T) repository.Ledger

// Run executes the shared backend contract against newLedger
func Run(t *testing.T, newLedger Factory) {
	tests := []struct {
		name string
		fn   func(t *testing.T, l repository.Ledger)
	}{
		{"UnknownUserReadsZero", testUnknownUser},
		{"PutAccountRoundTrip", testPutAccountRoundTrip},
		{"PutAccountReplacesAllFields", testPutAccountReplaces},
		{"IncrementItem", testIncrementItem},
		{"ResetBalancesKeepsTimestamps", testResetBalances},
		{"TxCommitIsVisible", testTxCommit},
		{"TxRollbackDiscards", testTxRollback},
		{"TxEndsOnce", testTxEndsOnce},
		{"ConcurrentTxNoLostUpdate", testConcurrentTx},
		{"Ping", testPing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newLedger(t)
			t.Cleanup(func() { _ = l.Close() })
			tt.fn(t, l)
		})
	}
}

// ts returns a UTC instant at microsecond precision, which every backend stores exactly
func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t.UTC().Truncate(time.Microsecond)
}

func ptr(t time.Time) *time.Time { return &t }

func assertTimeEqual(t *testing.T, want, got *time.Time) {
	t.Helper()
	if want == nil {
		assert.Nil(t, got)
		return
	}
	require.NotNil(t, got)
	assert.True(t, want.Equal(*got), "want %s, got %s", want, got)
	assert.Equal(t, time.UTC, got.Location())
}

func testUnknownUser(t *testing.T, l repository.Ledger) {
	ctx := context.Background()

	acct, err := l.GetAccount(ctx, "nobody")
	require.NoError(t, err)
	assert.Equal(t, "nobody", acct.UserID)
	assert.Zero(t, acct.Balance)
	assert.Nil(t, acct.LastDailyClaim)
	assert.Nil(t, acct.LastWeeklyClaim)

	inv, err := l.GetInventory(ctx, "nobody")
	require.NoError(t, err)
	assert.True(t, inv.IsEmpty())
}

func testPutAccountRoundTrip(t *testing.T, l repository.Ledger) {
	ctx := context.Background()
	daily := ts("2024-03-01T10:00:00.123456Z")

	require.NoError(t, l.PutAccount(ctx, domain.Account{UserID: "u1", Balance: 1500, LastDailyClaim: ptr(daily)}))

	acct, err := l.GetAccount(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(1500), acct.Balance)
	assertTimeEqual(t, &daily, acct.LastDailyClaim)
	assert.Nil(t, acct.LastWeeklyClaim)
}

func testPutAccountReplaces(t *testing.T, l repository.Ledger) {
	ctx := context.Background()
	daily := ts("2024-03-01T10:00:00Z")
	weekly := ts("2024-02-27T08:30:00Z")

	require.NoError(t, l.PutAccount(ctx, domain.Account{UserID: "u1", Balance: 10, LastDailyClaim: ptr(daily), LastWeeklyClaim: ptr(weekly)}))
	require.NoError(t, l.PutAccount(ctx, domain.Account{UserID: "u1", Balance: 20, LastWeeklyClaim: ptr(weekly)}))

	acct, err := l.GetAccount(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(20), acct.Balance)
	assert.Nil(t, acct.LastDailyClaim, "upsert writes every field")
	assertTimeEqual(t, &weekly, acct.LastWeeklyClaim)
}

func testIncrementItem(t *testing.T, l repository.Ledger) {
	ctx := context.Background()

	require.NoError(t, l.IncrementItem(ctx, "u1", "house"))
	require.NoError(t, l.IncrementItem(ctx, "u1", "car"))
	require.NoError(t, l.IncrementItem(ctx, "u1", "car"))
	require.NoError(t, l.IncrementItem(ctx, "u2", "car"))

	inv, err := l.GetInventory(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []domain.InventoryEntry{{Item: "car", Count: 2}, {Item: "house", Count: 1}}, inv.Entries)

	inv, err = l.GetInventory(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, 1, inv.Count("car"))
}

func testResetBalances(t *testing.T, l repository.Ledger) {
	ctx := context.Background()
	daily := ts("2024-03-01T10:00:00Z")

	require.NoError(t, l.PutAccount(ctx, domain.Account{UserID: "a", Balance: 100, LastDailyClaim: ptr(daily)}))
	require.NoError(t, l.PutAccount(ctx, domain.Account{UserID: "b", Balance: 250}))

	require.NoError(t, l.ResetBalances(ctx))

	a, err := l.GetAccount(ctx, "a")
	require.NoError(t, err)
	assert.Zero(t, a.Balance)
	assertTimeEqual(t, &daily, a.LastDailyClaim)

	b, err := l.GetAccount(ctx, "b")
	require.NoError(t, err)
	assert.Zero(t, b.Balance)
}

func testTxCommit(t *testing.T, l repository.Ledger) {
	ctx := context.Background()

	tx, err := l.BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)

	acct, err := tx.GetAccountForUpdate(ctx, "buyer")
	require.NoError(t, err)
	acct.Balance = 300
	require.NoError(t, tx.PutAccount(ctx, acct))
	require.NoError(t, tx.IncrementItem(ctx, "buyer", "cake"))

	inv, err := tx.GetInventory(ctx, "buyer")
	require.NoError(t, err)
	assert.Equal(t, 1, inv.Count("cake"), "transaction sees its own increment")

	require.NoError(t, tx.Commit(ctx))

	got, err := l.GetAccount(ctx, "buyer")
	require.NoError(t, err)
	assert.Equal(t, int64(300), got.Balance)

	inv, err = l.GetInventory(ctx, "buyer")
	require.NoError(t, err)
	assert.Equal(t, 1, inv.Count("cake"))
}

func testTxRollback(t *testing.T, l repository.Ledger) {
	ctx := context.Background()
	require.NoError(t, l.PutAccount(ctx, domain.Account{UserID: "buyer", Balance: 50}))

	tx, err := l.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.PutAccount(ctx, domain.Account{UserID: "buyer", Balance: 0}))
	require.NoError(t, tx.IncrementItem(ctx, "buyer", "burger"))
	require.NoError(t, tx.Rollback(ctx))

	got, err := l.GetAccount(ctx, "buyer")
	require.NoError(t, err)
	assert.Equal(t, int64(50), got.Balance)

	inv, err := l.GetInventory(ctx, "buyer")
	require.NoError(t, err)
	assert.True(t, inv.IsEmpty())
}

func testTxEndsOnce(t *testing.T, l repository.Ledger) {
	ctx := context.Background()

	tx, err := l.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.Commit(ctx))

	assert.True(t, errors.Is(tx.Rollback(ctx), repository.ErrTxClosed))
	assert.True(t, errors.Is(tx.Commit(ctx), repository.ErrTxClosed))

	// The store is usable again after the transaction ends
	_, err = l.GetAccount(ctx, "x")
	assert.NoError(t, err)
}

func testConcurrentTx(t *testing.T, l repository.Ledger) {
	ctx := context.Background()
	const workers = 8

	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tx, err := l.BeginTx(ctx)
			if err != nil {
				errs <- err
				return
			}
			defer repository.SafeRollback(ctx, tx)

			acct, err := tx.GetAccountForUpdate(ctx, "hot")
			if err != nil {
				errs <- err
				return
			}
			acct.Balance++
			if err := tx.PutAccount(ctx, acct); err != nil {
				errs <- err
				return
			}
			errs <- tx.Commit(ctx)
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	acct, err := l.GetAccount(ctx, "hot")
	require.NoError(t, err)
	assert.Equal(t, int64(workers), acct.Balance)
}

func testPing(t *testing.T, l repository.Ledger) {
	assert.NoError(t, l.Ping(context.Background()))
}
