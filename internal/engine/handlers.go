package engine

import (
	"context"
	"fmt"

	"github.com/osse101/CoinBot_Go/internal/domain"
)

func (e *engine) balance(ctx context.Context, in domain.BalanceIntent) (domain.Reply, error) {
	balance, err := e.ledger.Balance(ctx, in.UserID)
	if err != nil {
		return domain.Reply{}, err
	}
	return e.text(domain.OutcomeOK, MsgBalance, balance), nil
}

func (e *engine) claim(ctx context.Context, userID string, kind domain.ClaimKind) (domain.Reply, error) {
	claim := e.ledger.ClaimDaily
	claimed, already := MsgDailyClaimed, MsgDailyAlreadyClaimed
	if kind == domain.ClaimWeekly {
		claim = e.ledger.ClaimWeekly
		claimed, already = MsgWeeklyClaimed, MsgWeeklyAlreadyClaimed
	}

	res, err := claim(ctx, userID, e.now())
	if err != nil {
		return domain.Reply{}, err
	}

	switch res.Outcome {
	case domain.OutcomeOK:
		return e.text(res.Outcome, claimed, res.Balance), nil
	case domain.OutcomeAlreadyClaimed:
		return e.text(res.Outcome, already, remaining(res.Remaining)), nil
	default:
		return domain.Reply{Outcome: res.Outcome, Text: MsgClaimTooLarge}, nil
	}
}

func (e *engine) transfer(ctx context.Context, in domain.TransferIntent) (domain.Reply, error) {
	res, err := e.ledger.Transfer(ctx, in.UserID, in.Recipient, in.Amount)
	if err != nil {
		return domain.Reply{}, err
	}

	switch res.Outcome {
	case domain.OutcomeOK:
		return e.text(res.Outcome, MsgTransferred, mention(in.UserID), in.Amount, mention(in.Recipient)), nil
	case domain.OutcomeInsufficientFunds:
		return domain.Reply{Outcome: res.Outcome, Text: MsgTransferInsufficient}, nil
	default:
		return domain.Reply{Outcome: res.Outcome, Text: MsgTransferInvalid}, nil
	}
}

func (e *engine) bet(ctx context.Context, in domain.CoinFlipBetIntent) (domain.Reply, error) {
	res, err := e.ledger.Bet(ctx, in.UserID, in.Amount, in.Call)
	if err != nil {
		return domain.Reply{}, err
	}

	switch res.Outcome {
	case domain.OutcomeWon:
		return e.text(res.Outcome, MsgBetWon, in.Amount, res.Balance), nil
	case domain.OutcomeLost:
		return e.text(res.Outcome, MsgBetLost, in.Amount, res.Balance), nil
	case domain.OutcomeInsufficientFunds:
		return domain.Reply{Outcome: res.Outcome, Text: MsgBetInsufficient}, nil
	case domain.OutcomeInvalidCall:
		return domain.Reply{Outcome: res.Outcome, Text: MsgBetInvalidCall}, nil
	default:
		return domain.Reply{Outcome: res.Outcome, Text: MsgBetInvalid}, nil
	}
}

func (e *engine) dice(ctx context.Context, in domain.DiceBetIntent) (domain.Reply, error) {
	res, err := e.ledger.RollDice(ctx, in.UserID, in.Amount, in.Face)
	if err != nil {
		return domain.Reply{}, err
	}

	switch res.Outcome {
	case domain.OutcomeWon:
		return e.text(res.Outcome, MsgDiceWon, res.Rolled, res.Payout), nil
	case domain.OutcomeLost:
		return e.text(res.Outcome, MsgDiceLost, res.Rolled, in.Amount), nil
	case domain.OutcomeInsufficientFunds:
		return domain.Reply{Outcome: res.Outcome, Text: MsgBetInsufficient}, nil
	default:
		return domain.Reply{Outcome: res.Outcome, Text: MsgDiceInvalid}, nil
	}
}

// presentShop registers a pending selection; the caller renders the catalog
// and then calls AwaitPurchase with its token
func (e *engine) presentShop(ctx context.Context, in domain.ShopIntent) (domain.Reply, error) {
	p, err := e.shop.Present(ctx, in.UserID)
	if err != nil {
		return domain.Reply{}, err
	}
	for i, entry := range p.Entries {
		if entry.Owned > 0 {
			p.Entries[i].Label = fmt.Sprintf(MsgShopOwned, entry.Label, entry.Owned)
		}
	}
	return domain.Reply{
		Outcome: domain.OutcomeOK,
		Text:    MsgShopTitle + "\n" + MsgShopDescription,
		Catalog: &p,
	}, nil
}

func (e *engine) inventory(ctx context.Context, in domain.InventoryIntent) (domain.Reply, error) {
	target := in.Target
	if target == "" {
		target = in.UserID
	}
	inv, err := e.ledger.Inventory(ctx, target)
	if err != nil {
		return domain.Reply{}, err
	}
	inv.UserID = target
	return domain.Reply{Outcome: domain.OutcomeOK, Text: e.formatInventory(inv)}, nil
}

func (e *engine) grant(ctx context.Context, in domain.GrantCoinsIntent) (domain.Reply, error) {
	res, err := e.admin.GrantCoins(ctx, in.UserID, in.Recipient, in.Amount)
	if err != nil {
		return domain.Reply{}, err
	}

	switch res.Outcome {
	case domain.OutcomeOK:
		return e.text(res.Outcome, MsgCoinsGranted, mention(in.Recipient), in.Amount), nil
	case domain.OutcomeForbidden:
		return domain.Reply{Outcome: res.Outcome, Text: MsgForbidden}, nil
	default:
		return domain.Reply{Outcome: res.Outcome, Text: MsgGrantInvalid}, nil
	}
}

func (e *engine) wipe(ctx context.Context, in domain.WipeEconomyIntent) (domain.Reply, error) {
	res, err := e.admin.WipeEconomy(ctx, in.UserID)
	if err != nil {
		return domain.Reply{}, err
	}
	if res.Outcome == domain.OutcomeForbidden {
		return domain.Reply{Outcome: res.Outcome, Text: MsgForbidden}, nil
	}
	return domain.Reply{Outcome: res.Outcome, Text: MsgEconomyWiped}, nil
}
