package shop

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CoinBot_Go/internal/concurrency"
	"github.com/osse101/CoinBot_Go/internal/cooldown"
	"github.com/osse101/CoinBot_Go/internal/database/memory"
	"github.com/osse101/CoinBot_Go/internal/domain"
	"github.com/osse101/CoinBot_Go/internal/event"
	"github.com/osse101/CoinBot_Go/internal/ledger"
	"github.com/osse101/CoinBot_Go/internal/random"
	"github.com/osse101/CoinBot_Go/internal/testing/leaktest"
)

const buyer = "buyer"

type fixture struct {
	flow  Flow
	store *memory.Store
	bus   *event.MemoryBus
}

func newFixture(t *testing.T, timeout time.Duration, catalog domain.Catalog) *fixture {
	t.Helper()
	store := memory.New()
	t.Cleanup(func() { _ = store.Close() })
	bus := event.NewMemoryBus()
	svc := ledger.NewService(store, concurrency.NewLockManager(), cooldown.NewChecker(cooldown.Config{}), random.NewScripted(), bus)
	return &fixture{
		flow:  NewFlow(Config{Timeout: timeout, MaxPending: 8, Catalog: catalog}, svc, bus),
		store: store,
		bus:   bus,
	}
}

func (f *fixture) seed(t *testing.T, balance int64) {
	t.Helper()
	acct := domain.NewAccount(buyer)
	acct.Balance = balance
	require.NoError(t, f.store.PutAccount(context.Background(), acct))
}

func (f *fixture) balance(t *testing.T) int64 {
	t.Helper()
	acct, err := f.store.GetAccount(context.Background(), buyer)
	require.NoError(t, err)
	return acct.Balance
}

func carCatalog() domain.Catalog {
	return domain.Catalog{{Name: domain.ItemCar, Label: "🚗 Car", Price: 5000}}
}

func TestFlow_InsufficientFundsCreatesNoRow(t *testing.T) {
	f := newFixture(t, time.Second, carCatalog())
	f.seed(t, 4000)
	ctx := context.Background()

	p, err := f.flow.Present(ctx, buyer)
	require.NoError(t, err)
	require.Len(t, p.Entries, 1)

	assert.Equal(t, domain.SelectionAccepted, f.flow.Select(domain.Selection{UserID: buyer, CatalogToken: p.Token, Index: 1}))

	res, err := f.flow.Await(ctx, p.Token)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeInsufficientFunds, res.Outcome)
	assert.Equal(t, int64(4000), f.balance(t))

	inv, err := f.store.GetInventory(ctx, buyer)
	require.NoError(t, err)
	assert.True(t, inv.IsEmpty())
}

func TestFlow_PickBuysItem(t *testing.T) {
	f := newFixture(t, time.Second, nil)
	f.seed(t, 2000)
	ctx := context.Background()

	res, err := f.flow.Run(ctx, buyer, func(_ context.Context, p domain.CatalogPresentation) error {
		assert.Len(t, p.Entries, len(domain.DefaultCatalog()))
		go f.flow.Select(domain.Selection{UserID: buyer, CatalogToken: p.Token, Index: 7})
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, domain.OutcomeOK, res.Outcome)
	assert.Equal(t, domain.ItemBurger, res.Item.Name)
	assert.Equal(t, int64(1850), res.Balance)
	assert.Equal(t, 1, res.Inventory.Count(domain.ItemBurger))
	assert.Equal(t, 0, f.flow.Pending())
}

func TestFlow_PresentAnnotatesOwned(t *testing.T) {
	f := newFixture(t, time.Second, nil)
	ctx := context.Background()
	require.NoError(t, f.store.IncrementItem(ctx, buyer, domain.ItemCar))
	require.NoError(t, f.store.IncrementItem(ctx, buyer, domain.ItemCar))

	p, err := f.flow.Present(ctx, buyer)
	require.NoError(t, err)

	assert.Equal(t, 2, p.Entries[0].Owned)
	assert.Equal(t, 0, p.Entries[1].Owned)
	assert.Equal(t, 1, p.Entries[0].Index)
	assert.True(t, p.Deadline.After(time.Now()))
}

func TestFlow_TimeoutHasNoSideEffects(t *testing.T) {
	f := newFixture(t, 50*time.Millisecond, nil)
	f.seed(t, 100000)
	ctx := context.Background()

	var mu sync.Mutex
	var outcomes []domain.Outcome
	f.bus.Subscribe(event.PurchaseResolved, func(_ context.Context, evt event.Event) error {
		mu.Lock()
		defer mu.Unlock()
		outcomes = append(outcomes, evt.Payload.(event.PurchasePayloadV1).Outcome)
		return nil
	})

	p, err := f.flow.Present(ctx, buyer)
	require.NoError(t, err)

	res, err := f.flow.Await(ctx, p.Token)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeTimeout, res.Outcome)
	assert.Equal(t, int64(100000), f.balance(t))

	// the token is dead once the flow has resolved
	assert.Equal(t, domain.SelectionRejected, f.flow.Select(domain.Selection{UserID: buyer, CatalogToken: p.Token, Index: 1}))
	assert.Equal(t, int64(100000), f.balance(t))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []domain.Outcome{domain.OutcomeTimeout}, outcomes)
}

func TestFlow_SelectStatuses(t *testing.T) {
	f := newFixture(t, time.Second, nil)
	ctx := context.Background()

	p, err := f.flow.Present(ctx, buyer)
	require.NoError(t, err)

	assert.Equal(t, domain.SelectionRejected, f.flow.Select(domain.Selection{UserID: buyer, CatalogToken: "nope", Index: 1}))
	assert.Equal(t, domain.SelectionIgnored, f.flow.Select(domain.Selection{UserID: "someone-else", CatalogToken: p.Token, Index: 1}))
	assert.Equal(t, domain.SelectionIgnored, f.flow.Select(domain.Selection{UserID: buyer, CatalogToken: p.Token, Index: 0}))
	assert.Equal(t, domain.SelectionIgnored, f.flow.Select(domain.Selection{UserID: buyer, CatalogToken: p.Token, Index: 10}))
	assert.Equal(t, domain.SelectionAccepted, f.flow.Select(domain.Selection{UserID: buyer, CatalogToken: p.Token, Index: 2}))
	assert.Equal(t, domain.SelectionIgnored, f.flow.Select(domain.Selection{UserID: buyer, CatalogToken: p.Token, Index: 3}))
}

func TestFlow_FirstPickWins(t *testing.T) {
	f := newFixture(t, time.Second, nil)
	f.seed(t, 100000)
	ctx := context.Background()

	p, err := f.flow.Present(ctx, buyer)
	require.NoError(t, err)
	require.Equal(t, domain.SelectionAccepted, f.flow.Select(domain.Selection{UserID: buyer, CatalogToken: p.Token, Index: 4}))
	f.flow.Select(domain.Selection{UserID: buyer, CatalogToken: p.Token, Index: 9})

	res, err := f.flow.Await(ctx, p.Token)
	require.NoError(t, err)
	assert.Equal(t, domain.ItemCake, res.Item.Name)
	assert.Equal(t, int64(98000), res.Balance)
}

func TestFlow_AwaitErrors(t *testing.T) {
	f := newFixture(t, 100*time.Millisecond, nil)
	ctx := context.Background()

	_, err := f.flow.Await(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrUnknownCatalog)

	p, err := f.flow.Present(ctx, buyer)
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = f.flow.Await(ctx, p.Token)
	}()

	require.Eventually(t, func() bool {
		_, err := f.flow.Await(ctx, p.Token)
		return errors.Is(err, domain.ErrSelectionInProgress) || errors.Is(err, domain.ErrUnknownCatalog)
	}, time.Second, 5*time.Millisecond)
	<-done
}

func TestFlow_CancelAbandons(t *testing.T) {
	f := newFixture(t, 5*time.Second, nil)
	f.seed(t, 100000)

	p, err := f.flow.Present(context.Background(), buyer)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = f.flow.Await(ctx, p.Token)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, domain.SelectionRejected, f.flow.Select(domain.Selection{UserID: buyer, CatalogToken: p.Token, Index: 1}))
	assert.Equal(t, int64(100000), f.balance(t))
	assert.Equal(t, 0, f.flow.Pending())
}

func TestFlow_RenderFailureDropsSession(t *testing.T) {
	f := newFixture(t, time.Second, nil)
	boom := errors.New("channel gone")

	_, err := f.flow.Run(context.Background(), buyer, func(context.Context, domain.CatalogPresentation) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, f.flow.Pending())
}

func TestFlow_PendingBounded(t *testing.T) {
	f := newFixture(t, time.Second, nil)
	ctx := context.Background()

	var first string
	for i := 0; i < 10; i++ {
		p, err := f.flow.Present(ctx, buyer)
		require.NoError(t, err)
		if i == 0 {
			first = p.Token
		}
	}

	assert.Equal(t, 8, f.flow.Pending())
	assert.Equal(t, domain.SelectionRejected, f.flow.Select(domain.Selection{UserID: buyer, CatalogToken: first, Index: 1}))
}

func TestFlow_NoGoroutineLeak(t *testing.T) {
	f := newFixture(t, 30*time.Millisecond, nil)
	f.seed(t, 100000)

	leaktest.CheckNoGoroutineLeak(t, func() {
		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, err := f.flow.Run(context.Background(), buyer, func(_ context.Context, p domain.CatalogPresentation) error {
					if i%2 == 0 {
						f.flow.Select(domain.Selection{UserID: buyer, CatalogToken: p.Token, Index: 7})
					}
					return nil
				})
				assert.NoError(t, err)
			}(i)
		}
		wg.Wait()
	})
}
