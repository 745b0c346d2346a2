// Package shop runs the interactive purchase: present a catalog, wait a
// bounded time for the invoking user to pick an entry, then commit the
// purchase through the ledger.
package shop

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/CoinBot_Go/internal/domain"
	"github.com/osse101/CoinBot_Go/internal/event"
	"github.com/osse101/CoinBot_Go/internal/ledger"
	"github.com/osse101/CoinBot_Go/internal/logger"
	"github.com/osse101/CoinBot_Go/internal/metrics"
)

// Flow defines the interface for the interactive purchase flow
type Flow interface {
	// Present registers a pending selection and returns what to render
	Present(ctx context.Context, userID string) (domain.CatalogPresentation, error)
	// Select delivers a pick from the rendering layer. It never blocks.
	Select(sel domain.Selection) domain.SelectionStatus
	// Await waits for a pick or the deadline, whichever comes first
	Await(ctx context.Context, token string) (domain.PurchaseResult, error)
	// Run is Present, render, Await
	Run(ctx context.Context, userID string, render RenderFunc) (domain.PurchaseResult, error)
	// Pending returns the number of live sessions
	Pending() int
}

// RenderFunc shows a presentation to the user
type RenderFunc func(ctx context.Context, p domain.CatalogPresentation) error

// Config holds purchase flow settings
type Config struct {
	Timeout    time.Duration
	MaxPending int
	Catalog    domain.Catalog
}

type flow struct {
	ledger   ledger.Service
	bus      event.Bus
	catalog  domain.Catalog
	timeout  time.Duration
	sessions *expirable.LRU[string, *session]
}

// session is one pending selection. closed flips exactly once, under mu, so a
// pick is either queued before the session resolves or rejected after it.
type session struct {
	userID   string
	deadline time.Time

	mu     sync.Mutex
	closed bool
	picks  chan int

	awaiting atomic.Bool
}

// NewFlow creates a purchase flow. Zero config values fall back to defaults.
func NewFlow(cfg Config, ledgerSvc ledger.Service, bus event.Bus) Flow {
	if cfg.Timeout <= 0 {
		cfg.Timeout = domain.DefaultPurchaseTimeout
	}
	if cfg.MaxPending <= 0 {
		cfg.MaxPending = domain.DefaultMaxPendingSelections
	}
	if len(cfg.Catalog) == 0 {
		cfg.Catalog = domain.DefaultCatalog()
	}

	onEvict := func(_ string, s *session) {
		s.close()
		metrics.PendingSelections.Dec()
	}

	return &flow{
		ledger:   ledgerSvc,
		bus:      bus,
		catalog:  cfg.Catalog,
		timeout:  cfg.Timeout,
		sessions: expirable.NewLRU[string, *session](cfg.MaxPending, onEvict, cfg.Timeout+expiryGrace),
	}
}

func (f *flow) Present(ctx context.Context, userID string) (domain.CatalogPresentation, error) {
	inv, err := f.ledger.Inventory(ctx, userID)
	if err != nil {
		return domain.CatalogPresentation{}, err
	}

	entries := make([]domain.CatalogEntry, len(f.catalog))
	for i, item := range f.catalog {
		entries[i] = domain.CatalogEntry{
			Index: i + 1,
			Name:  item.Name,
			Label: item.Label,
			Price: item.Price,
			Owned: inv.Count(item.Name),
		}
	}

	s := &session{
		userID:   userID,
		deadline: time.Now().Add(f.timeout),
		picks:    make(chan int, 1),
	}
	token := uuid.NewString()
	f.sessions.Add(token, s)
	metrics.PendingSelections.Inc()

	logger.FromContext(ctx).Debug(LogMsgCatalogPresented, "user", userID, "token", token, "deadline", s.deadline)

	return domain.CatalogPresentation{
		Token:    token,
		UserID:   userID,
		Entries:  entries,
		Deadline: s.deadline,
	}, nil
}

func (f *flow) Select(sel domain.Selection) domain.SelectionStatus {
	s, ok := f.sessions.Peek(sel.CatalogToken)
	if !ok {
		return domain.SelectionRejected
	}
	if sel.UserID != s.userID {
		return domain.SelectionIgnored
	}
	if _, ok := f.catalog.At(sel.Index); !ok {
		return domain.SelectionIgnored
	}
	return s.offer(sel.Index)
}

func (f *flow) Await(ctx context.Context, token string) (domain.PurchaseResult, error) {
	s, ok := f.sessions.Peek(token)
	if !ok {
		return domain.PurchaseResult{}, fmt.Errorf("%w: %s", domain.ErrUnknownCatalog, token)
	}
	if !s.awaiting.CompareAndSwap(false, true) {
		return domain.PurchaseResult{}, fmt.Errorf("%w: %s", domain.ErrSelectionInProgress, token)
	}
	defer f.sessions.Remove(token)

	log := logger.FromContext(ctx)
	timer := time.NewTimer(time.Until(s.deadline))
	defer timer.Stop()

	select {
	case index := <-s.picks:
		s.close()
		return f.resolve(ctx, s, index)

	case <-timer.C:
		// a pick queued in the same instant as the deadline still wins
		if index, ok := s.close(); ok {
			return f.resolve(ctx, s, index)
		}
		log.Info(LogMsgSelectionTimeout, "user", s.userID, "token", token)
		event.PublishBestEffort(ctx, f.bus, event.NewPurchaseEvent(s.userID, domain.ShopItem{}, domain.OutcomeTimeout))
		return domain.PurchaseResult{Outcome: domain.OutcomeTimeout}, nil

	case <-ctx.Done():
		s.close()
		log.Info(LogMsgSelectionAborted, "user", s.userID, "token", token, "error", ctx.Err())
		return domain.PurchaseResult{}, ctx.Err()
	}
}

func (f *flow) Run(ctx context.Context, userID string, render RenderFunc) (domain.PurchaseResult, error) {
	p, err := f.Present(ctx, userID)
	if err != nil {
		return domain.PurchaseResult{}, err
	}
	if err := render(ctx, p); err != nil {
		f.sessions.Remove(p.Token)
		return domain.PurchaseResult{}, fmt.Errorf("%s: %w", ErrMsgRenderFailed, err)
	}
	return f.Await(ctx, p.Token)
}

func (f *flow) Pending() int {
	return f.sessions.Len()
}

func (f *flow) resolve(ctx context.Context, s *session, index int) (domain.PurchaseResult, error) {
	item, _ := f.catalog.At(index)
	logger.FromContext(ctx).Debug(LogMsgSelectionPicked, "user", s.userID, "item", item.Name)
	return f.ledger.Purchase(ctx, s.userID, item)
}

// offer queues a pick unless the session is resolved, past its deadline, or
// already holding one
func (s *session) offer(index int) domain.SelectionStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || !time.Now().Before(s.deadline) {
		return domain.SelectionRejected
	}
	select {
	case s.picks <- index:
		return domain.SelectionAccepted
	default:
		return domain.SelectionIgnored
	}
}

// close stops further picks and returns any pick still queued
func (s *session) close() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	select {
	case index := <-s.picks:
		return index, true
	default:
		return 0, false
	}
}
