// Package engine turns resolved user intents into ledger, shop and admin
// calls and formats the replies the chat layer renders.
package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/CoinBot_Go/internal/admin"
	"github.com/osse101/CoinBot_Go/internal/cooldown"
	"github.com/osse101/CoinBot_Go/internal/domain"
	"github.com/osse101/CoinBot_Go/internal/ledger"
	"github.com/osse101/CoinBot_Go/internal/logger"
	"github.com/osse101/CoinBot_Go/internal/random"
	"github.com/osse101/CoinBot_Go/internal/shop"
)

// Engine defines the interface the chat layer talks to
type Engine interface {
	// Handle runs one intent. The error is non-nil only for storage failures.
	Handle(ctx context.Context, intent domain.Intent) (domain.Reply, error)
	// AwaitPurchase waits for the selection of a catalog returned by Handle
	AwaitPurchase(ctx context.Context, token string) (domain.Reply, error)
	// Select forwards a pick from the chat layer
	Select(sel domain.Selection) domain.SelectionStatus
}

type engine struct {
	ledger    ledger.Service
	shop      shop.Flow
	admin     admin.Service
	rng       random.Resolver
	catalog   domain.Catalog
	validator *Validator
	printer   *message.Printer
	title     cases.Caser
	now       func() time.Time
}

// Option configures an engine
type Option func(*engine)

// WithClock overrides the wall clock used for claims
func WithClock(now func() time.Time) Option {
	return func(e *engine) { e.now = now }
}

// WithCatalog sets the catalog used to label inventory items
func WithCatalog(catalog domain.Catalog) Option {
	return func(e *engine) { e.catalog = catalog }
}

// New creates an engine
func New(ledgerSvc ledger.Service, shopFlow shop.Flow, adminSvc admin.Service, rng random.Resolver, opts ...Option) Engine {
	e := &engine{
		ledger:    ledgerSvc,
		shop:      shopFlow,
		admin:     adminSvc,
		rng:       rng,
		catalog:   domain.DefaultCatalog(),
		validator: NewValidator(),
		printer:   message.NewPrinter(language.English),
		title:     cases.Title(language.English),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *engine) Handle(ctx context.Context, intent domain.Intent) (domain.Reply, error) {
	if intent == nil {
		return domain.Reply{Outcome: domain.OutcomeInvalidInput, Text: fmt.Sprintf(MsgInvalidIntent, "empty")}, nil
	}
	ctx = logger.EnsureRequestID(ctx)
	log := logger.FromContext(ctx)
	log.Debug(LogMsgIntentReceived, "intent", intent.Name(), "actor", intent.Actor())

	if err := e.validator.ValidateStruct(intent); err != nil {
		log.Debug(LogMsgIntentRejected, "intent", intent.Name(), "error", err)
		return e.invalid(intent, err), nil
	}

	reply, err := e.dispatch(ctx, intent)
	if err != nil {
		log.Error(LogMsgIntentFailed, "intent", intent.Name(), "actor", intent.Actor(), "error", err)
		return domain.Reply{}, err
	}
	return reply, nil
}

func (e *engine) dispatch(ctx context.Context, intent domain.Intent) (domain.Reply, error) {
	switch in := intent.(type) {
	case domain.BalanceIntent:
		return e.balance(ctx, in)
	case domain.DailyClaimIntent:
		return e.claim(ctx, in.UserID, domain.ClaimDaily)
	case domain.WeeklyClaimIntent:
		return e.claim(ctx, in.UserID, domain.ClaimWeekly)
	case domain.TransferIntent:
		return e.transfer(ctx, in)
	case domain.CoinFlipBetIntent:
		return e.bet(ctx, in)
	case domain.CoinFlipIntent:
		return e.text(domain.OutcomeOK, MsgCoinLanded, e.title.String(string(e.rng.CoinFlip()))), nil
	case domain.DiceBetIntent:
		return e.dice(ctx, in)
	case domain.RandomNumberIntent:
		return e.text(domain.OutcomeOK, MsgRandomNumber, e.rng.UniformInt(in.Low, in.High)), nil
	case domain.ShopIntent:
		return e.presentShop(ctx, in)
	case domain.InventoryIntent:
		return e.inventory(ctx, in)
	case domain.GrantCoinsIntent:
		return e.grant(ctx, in)
	case domain.WipeEconomyIntent:
		return e.wipe(ctx, in)
	case domain.HelpIntent:
		return domain.Reply{Outcome: domain.OutcomeOK, Text: MsgHelp}, nil
	default:
		logger.FromContext(ctx).Warn(LogMsgUnknownIntent, "type", fmt.Sprintf("%T", intent))
		return domain.Reply{Outcome: domain.OutcomeInvalidInput, Text: fmt.Sprintf(MsgInvalidIntent, intent.Name())}, nil
	}
}

func (e *engine) AwaitPurchase(ctx context.Context, token string) (domain.Reply, error) {
	ctx = logger.EnsureRequestID(ctx)

	res, err := e.shop.Await(ctx, token)
	if err != nil {
		return domain.Reply{}, err
	}
	logger.FromContext(ctx).Debug(LogMsgPurchaseAwaited, "token", token, "outcome", res.Outcome)

	switch res.Outcome {
	case domain.OutcomeOK:
		return domain.Reply{Outcome: res.Outcome, Text: e.formatInventory(res.Inventory)}, nil
	case domain.OutcomeInsufficientFunds:
		return domain.Reply{Outcome: res.Outcome, Text: MsgPurchaseInsufficient}, nil
	case domain.OutcomeTimeout:
		return domain.Reply{Outcome: res.Outcome, Text: MsgPurchaseTimeout}, nil
	default:
		return domain.Reply{Outcome: res.Outcome, Text: MsgPurchaseInvalid}, nil
	}
}

func (e *engine) Select(sel domain.Selection) domain.SelectionStatus {
	return e.shop.Select(sel)
}

// text formats a reply with thousands separators on every number
func (e *engine) text(outcome domain.Outcome, format string, args ...interface{}) domain.Reply {
	return domain.Reply{Outcome: outcome, Text: e.printer.Sprintf(format, args...)}
}

func (e *engine) invalid(intent domain.Intent, err error) domain.Reply {
	reply := domain.Reply{Outcome: domain.OutcomeInvalidInput}
	switch intent.(type) {
	case domain.TransferIntent:
		reply.Text = MsgTransferInvalid
	case domain.CoinFlipBetIntent:
		reply.Text = MsgBetInvalid
	case domain.DiceBetIntent:
		reply.Text = MsgDiceInvalid
	case domain.RandomNumberIntent:
		reply.Text = MsgRandomInvalid
	case domain.GrantCoinsIntent:
		reply.Text = MsgGrantInvalid
	default:
		reply.Text = fmt.Sprintf(MsgInvalidIntent, FormatValidationError(err))
	}
	return reply
}

func mention(userID string) string {
	return fmt.Sprintf(MentionFormat, userID)
}

func (e *engine) formatInventory(inv domain.Inventory) string {
	if inv.IsEmpty() {
		return fmt.Sprintf(MsgInventoryEmpty, mention(inv.UserID))
	}
	lines := make([]string, 0, len(inv.Entries))
	for _, entry := range inv.Entries {
		lines = append(lines, fmt.Sprintf(MsgInventoryLine, e.label(entry.Item), entry.Count))
	}
	return fmt.Sprintf(MsgInventory, mention(inv.UserID), strings.Join(lines, "\n"))
}

func (e *engine) label(item string) string {
	if shopItem, ok := e.catalog.Lookup(item); ok && shopItem.Label != "" {
		return shopItem.Label
	}
	return item
}

func remaining(d time.Duration) string {
	return cooldown.FormatRemaining(d)
}
