package ledger

import (
	"context"

	"github.com/osse101/CoinBot_Go/internal/domain"
	"github.com/osse101/CoinBot_Go/internal/event"
	"github.com/osse101/CoinBot_Go/internal/logger"
	"github.com/osse101/CoinBot_Go/internal/random"
	"github.com/osse101/CoinBot_Go/internal/repository"
)

// Bet wagers amount on a coin flip. The call is checked before the amount;
// a rejected bet draws no randomness and writes nothing.
func (s *service) Bet(ctx context.Context, userID string, amount int64, call string) (domain.BetResult, error) {
	log := logger.FromContext(ctx)

	face, ok := domain.ParseCoinFace(call)
	if !ok {
		res := domain.BetResult{Outcome: domain.OutcomeInvalidCall}
		s.publish(ctx, event.NewBetEvent(userID, domain.GameCoinFlip, res.Outcome, amount, 0))
		return res, nil
	}
	res := domain.BetResult{Call: face}
	if amount <= 0 {
		res.Outcome = domain.OutcomeInvalidInput
		s.publish(ctx, event.NewBetEvent(userID, domain.GameCoinFlip, res.Outcome, amount, 0))
		return res, nil
	}

	err := s.withAccounts(ctx, OpBet, func(tx repository.LedgerTx) error {
		acct, err := tx.GetAccountForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if acct.Balance < amount {
			res.Outcome = domain.OutcomeInsufficientFunds
			res.Balance = acct.Balance
			return nil
		}

		res.Flip = s.rng.CoinFlip()
		res.Payout = random.CoinPayout(amount, face, res.Flip)
		next, ok := addChecked(acct.Balance, res.Payout)
		if !ok {
			res.Outcome = domain.OutcomeInvalidInput
			res.Payout = 0
			res.Balance = acct.Balance
			return nil
		}
		acct.Balance = next
		if err := tx.PutAccount(ctx, acct); err != nil {
			return err
		}

		res.Balance = acct.Balance
		res.Outcome = domain.OutcomeLost
		if res.Payout > 0 {
			res.Outcome = domain.OutcomeWon
		}
		return nil
	}, userID)
	if err != nil {
		return domain.BetResult{}, err
	}

	if res.Outcome.Succeeded() {
		log.Info(LogMsgBetResolved, "user", userID, "game", domain.GameCoinFlip, "amount", amount, "payout", res.Payout)
	}
	s.publish(ctx, event.NewBetEvent(userID, domain.GameCoinFlip, res.Outcome, amount, res.Payout))
	return res, nil
}

// RollDice wagers amount on a die face. A match pays five times the wager;
// a miss forfeits it.
func (s *service) RollDice(ctx context.Context, userID string, amount int64, face int) (domain.DiceResult, error) {
	log := logger.FromContext(ctx)
	res := domain.DiceResult{Face: face}

	if amount <= 0 || face < 1 || face > domain.DiceFaces {
		res.Outcome = domain.OutcomeInvalidInput
		s.publish(ctx, event.NewBetEvent(userID, domain.GameDice, res.Outcome, amount, 0))
		return res, nil
	}

	err := s.withAccounts(ctx, OpDice, func(tx repository.LedgerTx) error {
		acct, err := tx.GetAccountForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if acct.Balance < amount {
			res.Outcome = domain.OutcomeInsufficientFunds
			res.Balance = acct.Balance
			return nil
		}

		res.Rolled = s.rng.DiceRoll()
		res.Payout = random.DicePayout(amount, face, res.Rolled)
		next, ok := addChecked(acct.Balance, res.Payout)
		if !ok || (res.Payout > 0 && res.Payout/domain.DicePayoutMultiplier != amount) {
			res.Outcome = domain.OutcomeInvalidInput
			res.Payout = 0
			res.Balance = acct.Balance
			return nil
		}
		acct.Balance = next
		if err := tx.PutAccount(ctx, acct); err != nil {
			return err
		}

		res.Balance = acct.Balance
		res.Outcome = domain.OutcomeLost
		if res.Payout > 0 {
			res.Outcome = domain.OutcomeWon
		}
		return nil
	}, userID)
	if err != nil {
		return domain.DiceResult{}, err
	}

	if res.Outcome.Succeeded() {
		log.Info(LogMsgBetResolved, "user", userID, "game", domain.GameDice, "amount", amount, "payout", res.Payout)
	}
	s.publish(ctx, event.NewBetEvent(userID, domain.GameDice, res.Outcome, amount, res.Payout))
	return res, nil
}
