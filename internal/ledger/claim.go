package ledger

import (
	"context"
	"time"

	"github.com/osse101/CoinBot_Go/internal/domain"
	"github.com/osse101/CoinBot_Go/internal/event"
	"github.com/osse101/CoinBot_Go/internal/logger"
	"github.com/osse101/CoinBot_Go/internal/repository"
)

func (s *service) ClaimDaily(ctx context.Context, userID string, now time.Time) (domain.ClaimResult, error) {
	return s.claim(ctx, userID, domain.ClaimDaily, now)
}

func (s *service) ClaimWeekly(ctx context.Context, userID string, now time.Time) (domain.ClaimResult, error) {
	return s.claim(ctx, userID, domain.ClaimWeekly, now)
}

// grantRange returns the inclusive reward bounds of a claim kind
func grantRange(kind domain.ClaimKind) (int64, int64) {
	if kind == domain.ClaimWeekly {
		return domain.WeeklyGrantMin, domain.WeeklyGrantMax
	}
	return domain.DailyGrantMin, domain.DailyGrantMax
}

// claim grants a random reward when the kind's window has elapsed. Only the
// timestamp of kind is written; the other claim field is carried through.
func (s *service) claim(ctx context.Context, userID string, kind domain.ClaimKind, now time.Time) (domain.ClaimResult, error) {
	log := logger.FromContext(ctx)
	res := domain.ClaimResult{Kind: kind}

	err := s.withAccounts(ctx, OpClaim, func(tx repository.LedgerTx) error {
		acct, err := tx.GetAccountForUpdate(ctx, userID)
		if err != nil {
			return err
		}

		if onCooldown, remaining := s.cooldowns.Check(kind, acct.LastClaim(kind), now); onCooldown {
			res.Outcome = domain.OutcomeAlreadyClaimed
			res.Balance = acct.Balance
			res.Remaining = remaining
			return nil
		}

		low, high := grantRange(kind)
		granted := s.rng.UniformInt(low, high)
		next, ok := addChecked(acct.Balance, granted)
		if !ok {
			res.Outcome = domain.OutcomeInvalidInput
			res.Balance = acct.Balance
			return nil
		}

		acct.Balance = next
		acct = acct.WithClaim(kind, now)
		if err := tx.PutAccount(ctx, acct); err != nil {
			return err
		}

		res.Outcome = domain.OutcomeOK
		res.Granted = granted
		res.Balance = acct.Balance
		return nil
	}, userID)
	if err != nil {
		return domain.ClaimResult{}, err
	}

	if res.Outcome == domain.OutcomeOK {
		log.Info(LogMsgClaimGranted, "user", userID, "kind", kind, "granted", res.Granted, "balance", res.Balance)
		s.publish(ctx, event.NewCoinsGrantedEvent(userID, string(kind), res.Granted))
	} else {
		log.Debug(LogMsgClaimOnCooldown, "user", userID, "kind", kind, "remaining", res.Remaining)
	}
	s.publish(ctx, event.NewClaimEvent(userID, res))
	return res, nil
}
