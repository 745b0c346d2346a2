package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CoinBot_Go/internal/domain"
	"github.com/osse101/CoinBot_Go/internal/repository"
	"github.com/osse101/CoinBot_Go/internal/testing/ledgertest"
)

func TestStore_Contract(t *testing.T) {
	ledgertest.Run(t, func(t *testing.T) repository.Ledger { return New() })
}

func TestStore_BeginTxHonoursContext(t *testing.T) {
	s := New()
	ctx := context.Background()

	tx, err := s.BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)

	waitCtx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()

	_, err = s.BeginTx(waitCtx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrStorage))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestStore_ClosedFails(t *testing.T) {
	s := New()
	require.NoError(t, s.Close())

	_, err := s.GetAccount(context.Background(), "u")
	assert.True(t, errors.Is(err, domain.ErrStorage))
	assert.Error(t, s.Ping(context.Background()))
}

func TestStore_ReturnedAccountIsACopy(t *testing.T) {
	s := New()
	ctx := context.Background()
	claimed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, s.PutAccount(ctx, domain.Account{UserID: "u", Balance: 5, LastDailyClaim: &claimed}))

	acct, err := s.GetAccount(ctx, "u")
	require.NoError(t, err)
	*acct.LastDailyClaim = claimed.Add(time.Hour)

	again, err := s.GetAccount(ctx, "u")
	require.NoError(t, err)
	assert.True(t, claimed.Equal(*again.LastDailyClaim))
}
