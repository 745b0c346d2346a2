package ledger

import (
	"context"

	"github.com/osse101/CoinBot_Go/internal/domain"
	"github.com/osse101/CoinBot_Go/internal/event"
	"github.com/osse101/CoinBot_Go/internal/logger"
	"github.com/osse101/CoinBot_Go/internal/repository"
)

// Purchase debits the item price and adds one unit to the inventory in the
// same transaction. Insufficient funds leave balance and inventory untouched.
func (s *service) Purchase(ctx context.Context, userID string, item domain.ShopItem) (domain.PurchaseResult, error) {
	res := domain.PurchaseResult{Item: item}

	if item.Name == "" || item.Price <= 0 {
		res.Outcome = domain.OutcomeInvalidInput
		return res, nil
	}

	err := s.withAccounts(ctx, OpPurchase, func(tx repository.LedgerTx) error {
		acct, err := tx.GetAccountForUpdate(ctx, userID)
		if err != nil {
			return err
		}

		if acct.Balance < item.Price {
			res.Outcome = domain.OutcomeInsufficientFunds
			res.Balance = acct.Balance
		} else {
			acct.Balance -= item.Price
			if err := tx.PutAccount(ctx, acct); err != nil {
				return err
			}
			if err := tx.IncrementItem(ctx, userID, item.Name); err != nil {
				return err
			}
			res.Outcome = domain.OutcomeOK
			res.Balance = acct.Balance
		}

		inv, err := tx.GetInventory(ctx, userID)
		if err != nil {
			return err
		}
		res.Inventory = inv
		return nil
	}, userID)
	if err != nil {
		return domain.PurchaseResult{}, err
	}

	if res.Outcome == domain.OutcomeOK {
		logger.FromContext(ctx).Info(LogMsgPurchaseCommitted, "user", userID, "item", item.Name, "price", item.Price, "balance", res.Balance)
	}
	s.publish(ctx, event.NewPurchaseEvent(userID, item, res.Outcome))
	return res, nil
}
