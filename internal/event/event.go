package event

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/CoinBot_Go/internal/domain"
	"github.com/osse101/CoinBot_Go/internal/logger"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Ledger event types
const (
	ClaimCompleted    Type = "claim.completed"
	BetResolved       Type = "bet.resolved"
	TransferCompleted Type = "transfer.completed"
	PurchaseResolved  Type = "purchase.resolved"
	CoinsGranted      Type = "coins.granted"
	EconomyWiped      Type = "economy.wiped"
	AdminDenied       Type = "admin.denied"
)

// Typed event payloads for type safety

// ClaimPayloadV1 is published for every daily or weekly claim attempt
type ClaimPayloadV1 struct {
	UserID  string           `json:"user_id"`
	Kind    domain.ClaimKind `json:"kind"`
	Outcome domain.Outcome   `json:"outcome"`
	Granted int64            `json:"granted"`
}

// BetPayloadV1 is published for every resolved or rejected bet
type BetPayloadV1 struct {
	UserID  string         `json:"user_id"`
	Game    string         `json:"game"`
	Outcome domain.Outcome `json:"outcome"`
	Amount  int64          `json:"amount"`
	Payout  int64          `json:"payout"`
}

// TransferPayloadV1 is published for every transfer attempt
type TransferPayloadV1 struct {
	SenderID    string         `json:"sender_id"`
	RecipientID string         `json:"recipient_id"`
	Amount      int64          `json:"amount"`
	Outcome     domain.Outcome `json:"outcome"`
}

// PurchasePayloadV1 is published when a shop selection resolves or expires
type PurchasePayloadV1 struct {
	UserID  string         `json:"user_id"`
	Item    string         `json:"item,omitempty"`
	Price   int64          `json:"price,omitempty"`
	Outcome domain.Outcome `json:"outcome"`
}

// CoinsGrantedPayloadV1 is published whenever coins enter the economy
type CoinsGrantedPayloadV1 struct {
	UserID string `json:"user_id"`
	Source string `json:"source"`
	Amount int64  `json:"amount"`
}

// EconomyWipedPayloadV1 is published after a global balance reset
type EconomyWipedPayloadV1 struct {
	ActorID string `json:"actor_id,omitempty"`
}

// AdminDeniedPayloadV1 is published when a non-allow-listed user tries a privileged command
type AdminDeniedPayloadV1 struct {
	ActorID   string `json:"actor_id"`
	Operation string `json:"operation"`
}

func newEvent(t Type, payload interface{}) Event {
	return Event{Version: SchemaVersion, Type: t, Payload: payload}
}

// NewClaimEvent creates a claim.completed event
func NewClaimEvent(userID string, res domain.ClaimResult) Event {
	return newEvent(ClaimCompleted, ClaimPayloadV1{UserID: userID, Kind: res.Kind, Outcome: res.Outcome, Granted: res.Granted})
}

// NewBetEvent creates a bet.resolved event
func NewBetEvent(userID, game string, outcome domain.Outcome, amount, payout int64) Event {
	return newEvent(BetResolved, BetPayloadV1{UserID: userID, Game: game, Outcome: outcome, Amount: amount, Payout: payout})
}

// NewTransferEvent creates a transfer.completed event
func NewTransferEvent(senderID, recipientID string, amount int64, outcome domain.Outcome) Event {
	return newEvent(TransferCompleted, TransferPayloadV1{SenderID: senderID, RecipientID: recipientID, Amount: amount, Outcome: outcome})
}

// NewPurchaseEvent creates a purchase.resolved event
func NewPurchaseEvent(userID string, item domain.ShopItem, outcome domain.Outcome) Event {
	return newEvent(PurchaseResolved, PurchasePayloadV1{UserID: userID, Item: item.Name, Price: item.Price, Outcome: outcome})
}

// NewCoinsGrantedEvent creates a coins.granted event
func NewCoinsGrantedEvent(userID, source string, amount int64) Event {
	return newEvent(CoinsGranted, CoinsGrantedPayloadV1{UserID: userID, Source: source, Amount: amount})
}

// NewEconomyWipedEvent creates an economy.wiped event
func NewEconomyWipedEvent(actorID string) Event {
	return newEvent(EconomyWiped, EconomyWipedPayloadV1{ActorID: actorID})
}

// NewAdminDeniedEvent creates an admin.denied event
func NewAdminDeniedEvent(actorID, operation string) Event {
	return newEvent(AdminDenied, AdminDeniedPayloadV1{ActorID: actorID, Operation: operation})
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Handlers run synchronously.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(ErrMsgHandlersFailed, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// PublishBestEffort publishes on bus when it is non-nil and logs instead of
// returning handler failures; ledger state is already committed by then.
func PublishBestEffort(ctx context.Context, bus Bus, evt Event) {
	if bus == nil {
		return
	}
	if err := bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}
