// Package admin gates the privileged economy operations behind an allow-list
// of user ids.
package admin

import (
	"context"
	"strings"

	"github.com/osse101/CoinBot_Go/internal/domain"
	"github.com/osse101/CoinBot_Go/internal/event"
	"github.com/osse101/CoinBot_Go/internal/ledger"
	"github.com/osse101/CoinBot_Go/internal/logger"
)

// Service defines the interface for privileged operations
type Service interface {
	GrantCoins(ctx context.Context, actorID, recipientID string, amount int64) (domain.AdminResult, error)
	WipeEconomy(ctx context.Context, actorID string) (domain.AdminResult, error)
	IsAdmin(userID string) bool
}

type service struct {
	ledger  ledger.Service
	bus     event.Bus
	allowed map[string]struct{}
}

// NewService creates an admin service. Blank ids in allowList are ignored.
func NewService(ledgerSvc ledger.Service, bus event.Bus, allowList []string) Service {
	allowed := make(map[string]struct{}, len(allowList))
	for _, id := range allowList {
		if id = strings.TrimSpace(id); id != "" {
			allowed[id] = struct{}{}
		}
	}
	return &service{
		ledger:  ledgerSvc,
		bus:     bus,
		allowed: allowed,
	}
}

func (s *service) IsAdmin(userID string) bool {
	_, ok := s.allowed[userID]
	return ok
}

// GrantCoins credits recipientID on behalf of an allow-listed actor
func (s *service) GrantCoins(ctx context.Context, actorID, recipientID string, amount int64) (domain.AdminResult, error) {
	log := logger.FromContext(ctx)

	if !s.IsAdmin(actorID) {
		return s.deny(ctx, actorID, OpGrantCoins), nil
	}
	if amount <= 0 || recipientID == "" {
		log.Debug(LogMsgInvalidAmount, "actor", actorID, "amount", amount)
		return domain.AdminResult{Outcome: domain.OutcomeInvalidInput}, nil
	}

	balance, err := s.ledger.CreditAdmin(ctx, recipientID, amount)
	if err != nil {
		return domain.AdminResult{}, err
	}

	log.Info(LogMsgCoinsGranted, "actor", actorID, "recipient", recipientID, "amount", amount)
	return domain.AdminResult{Outcome: domain.OutcomeOK, Balance: balance}, nil
}

// WipeEconomy zeroes every balance on behalf of an allow-listed actor
func (s *service) WipeEconomy(ctx context.Context, actorID string) (domain.AdminResult, error) {
	if !s.IsAdmin(actorID) {
		return s.deny(ctx, actorID, OpWipeEconomy), nil
	}

	if err := s.ledger.ResetAllBalances(ctx); err != nil {
		return domain.AdminResult{}, err
	}

	logger.FromContext(ctx).Warn(LogMsgEconomyWiped, "actor", actorID)
	event.PublishBestEffort(ctx, s.bus, event.NewEconomyWipedEvent(actorID))
	return domain.AdminResult{Outcome: domain.OutcomeOK}, nil
}

func (s *service) deny(ctx context.Context, actorID, op string) domain.AdminResult {
	logger.FromContext(ctx).Warn(LogMsgForbidden, "actor", actorID, "operation", op)
	event.PublishBestEffort(ctx, s.bus, event.NewAdminDeniedEvent(actorID, op))
	return domain.AdminResult{Outcome: domain.OutcomeForbidden}
}
