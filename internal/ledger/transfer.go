package ledger

import (
	"context"

	"github.com/osse101/CoinBot_Go/internal/domain"
	"github.com/osse101/CoinBot_Go/internal/event"
	"github.com/osse101/CoinBot_Go/internal/logger"
	"github.com/osse101/CoinBot_Go/internal/repository"
)

// Transfer moves amount from sender to recipient atomically. Claim
// timestamps are never touched. A self-transfer passes the same funds check
// and leaves the balance unchanged.
func (s *service) Transfer(ctx context.Context, senderID, recipientID string, amount int64) (domain.TransferResult, error) {
	log := logger.FromContext(ctx)
	res := domain.TransferResult{Amount: amount}

	if amount <= 0 {
		res.Outcome = domain.OutcomeInvalidInput
		log.Debug(LogMsgRejected, "op", OpTransfer, "reason", "non-positive amount", "amount", amount)
		s.publish(ctx, event.NewTransferEvent(senderID, recipientID, amount, res.Outcome))
		return res, nil
	}

	err := s.withAccounts(ctx, OpTransfer, func(tx repository.LedgerTx) error {
		accounts, err := lockAccounts(ctx, tx, senderID, recipientID)
		if err != nil {
			return err
		}
		sender, recipient := accounts[senderID], accounts[recipientID]

		if sender.Balance < amount {
			res.Outcome = domain.OutcomeInsufficientFunds
			res.SenderBalance = sender.Balance
			res.RecipientBalance = recipient.Balance
			return nil
		}

		if senderID == recipientID {
			res.Outcome = domain.OutcomeOK
			res.SenderBalance = sender.Balance
			res.RecipientBalance = sender.Balance
			return nil
		}

		credited, ok := addChecked(recipient.Balance, amount)
		if !ok {
			res.Outcome = domain.OutcomeInvalidInput
			res.SenderBalance = sender.Balance
			res.RecipientBalance = recipient.Balance
			return nil
		}

		sender.Balance -= amount
		recipient.Balance = credited
		if err := tx.PutAccount(ctx, sender); err != nil {
			return err
		}
		if err := tx.PutAccount(ctx, recipient); err != nil {
			return err
		}

		res.Outcome = domain.OutcomeOK
		res.SenderBalance = sender.Balance
		res.RecipientBalance = recipient.Balance
		return nil
	}, senderID, recipientID)
	if err != nil {
		return domain.TransferResult{}, err
	}

	if res.Outcome == domain.OutcomeOK {
		log.Info(LogMsgTransferCompleted, "sender", senderID, "recipient", recipientID, "amount", amount)
	}
	s.publish(ctx, event.NewTransferEvent(senderID, recipientID, amount, res.Outcome))
	return res, nil
}

// lockAccounts reads every distinct account for update in sorted id order,
// matching the order LockAll takes the in-process locks
func lockAccounts(ctx context.Context, tx repository.LedgerTx, userIDs ...string) (map[string]domain.Account, error) {
	accounts := make(map[string]domain.Account, len(userIDs))
	for _, id := range sortedUnique(userIDs) {
		acct, err := tx.GetAccountForUpdate(ctx, id)
		if err != nil {
			return nil, err
		}
		accounts[id] = acct
	}
	return accounts, nil
}
