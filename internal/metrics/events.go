package metrics

import (
	"context"

	"github.com/osse101/CoinBot_Go/internal/domain"
	"github.com/osse101/CoinBot_Go/internal/event"
	"github.com/osse101/CoinBot_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.ClaimCompleted,
		event.BetResolved,
		event.TransferCompleted,
		event.PurchaseResolved,
		event.CoinsGranted,
		event.EconomyWiped,
		event.AdminDenied,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics. Undecodable payloads are
// counted and skipped rather than failing the publisher.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	if err := e.record(evt); err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func (e *EventMetricsCollector) record(evt event.Event) error {
	switch evt.Type {
	case event.ClaimCompleted:
		p, err := event.DecodePayload[event.ClaimPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		Claims.WithLabelValues(string(p.Kind), p.Outcome.String()).Inc()

	case event.BetResolved:
		p, err := event.DecodePayload[event.BetPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		Bets.WithLabelValues(p.Game, p.Outcome.String()).Inc()
		if p.Outcome.Succeeded() {
			CoinsWagered.WithLabelValues(p.Game).Add(float64(p.Amount))
		}

	case event.TransferCompleted:
		p, err := event.DecodePayload[event.TransferPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		Transfers.WithLabelValues(p.Outcome.String()).Inc()
		if p.Outcome == domain.OutcomeOK && p.SenderID != p.RecipientID {
			CoinsTransferred.Add(float64(p.Amount))
		}

	case event.PurchaseResolved:
		p, err := event.DecodePayload[event.PurchasePayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		Purchases.WithLabelValues(p.Item, p.Outcome.String()).Inc()
		if p.Outcome == domain.OutcomeOK {
			CoinsSpent.Add(float64(p.Price))
		}

	case event.CoinsGranted:
		p, err := event.DecodePayload[event.CoinsGrantedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		CoinsGranted.WithLabelValues(p.Source).Add(float64(p.Amount))

	case event.EconomyWiped:
		EconomyWipes.Inc()

	case event.AdminDenied:
		p, err := event.DecodePayload[event.AdminDeniedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		AdminDenied.WithLabelValues(p.Operation).Inc()
	}
	return nil
}
