package discord

import (
	"errors"
	"strconv"
	"strings"

	"github.com/osse101/CoinBot_Go/internal/domain"
)

// ErrNotCommand is returned for chat messages that carry no command
var ErrNotCommand = errors.New(ErrMsgNotACommand)

// UsageError reports a recognised command with malformed arguments. Usage is
// sent back to the user as is.
type UsageError struct {
	Usage string
}

func (e *UsageError) Error() string {
	return e.Usage
}

func usage(text string) error {
	return &UsageError{Usage: text}
}

// ParseCommand maps a chat message to an intent. Unrecognised messages
// return ErrNotCommand; recognised commands with bad arguments return a
// *UsageError. Range and sign checks are left to the engine.
func ParseCommand(authorID, content string) (domain.Intent, error) {
	lowered := strings.ToLower(strings.TrimSpace(content))
	fields := strings.Fields(lowered)
	if len(fields) == 0 {
		return nil, ErrNotCommand
	}
	who := domain.Invoker{UserID: authorID}

	switch fields[0] {
	case CmdBalance:
		if len(fields) == 1 {
			return domain.BalanceIntent{Invoker: who}, nil
		}
		return nil, ErrNotCommand

	case CmdEgPrefix:
		return parseEg(who, fields[1:])

	case CmdBet:
		if len(fields) != 3 {
			return nil, usage(UsageBet)
		}
		amount, err := parseAmount(fields[1])
		if err != nil {
			return nil, usage(UsageBet)
		}
		return domain.CoinFlipBetIntent{Invoker: who, Amount: amount, Call: fields[2]}, nil

	case CmdTransfer:
		recipient, amount, err := parseTargetAmount(fields)
		if err != nil {
			return nil, usage(UsageTransfer)
		}
		return domain.TransferIntent{Invoker: who, Recipient: recipient, Amount: amount}, nil

	case CmdRollDice:
		if len(fields) != 3 {
			return nil, usage(UsageRollDice)
		}
		amount, err := parseAmount(fields[1])
		if err != nil {
			return nil, usage(UsageRollDice)
		}
		face, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, usage(UsageRollDice)
		}
		return domain.DiceBetIntent{Invoker: who, Amount: amount, Face: face}, nil

	case CmdSpawnCoins:
		recipient, amount, err := parseTargetAmount(fields)
		if err != nil {
			return nil, usage(UsageSpawnCoins)
		}
		return domain.GrantCoinsIntent{Invoker: who, Recipient: recipient, Amount: amount}, nil

	case CmdWipeAll:
		return domain.WipeEconomyIntent{Invoker: who}, nil

	case CmdRandomNum:
		return domain.RandomNumberIntent{Invoker: who, Low: 1, High: domain.RandomNumberMax}, nil
	}

	if strings.Join(fields, " ") == CmdFlipCoin {
		return domain.CoinFlipIntent{Invoker: who}, nil
	}
	if len(fields) >= 2 && fields[1] == CmdRandom {
		return parseRange(who, fields[0])
	}
	return nil, ErrNotCommand
}

// parseEg handles the "eg <word> ..." family
func parseEg(who domain.Invoker, args []string) (domain.Intent, error) {
	if len(args) == 0 {
		return nil, ErrNotCommand
	}

	switch args[0] {
	case CmdDaily:
		return domain.DailyClaimIntent{Invoker: who}, nil
	case CmdWeekly:
		return domain.WeeklyClaimIntent{Invoker: who}, nil
	case CmdShop:
		return domain.ShopIntent{Invoker: who}, nil
	case CmdHelp:
		return domain.HelpIntent{Invoker: who}, nil
	case CmdInventory:
		switch len(args) {
		case 1:
			return domain.InventoryIntent{Invoker: who}, nil
		case 2:
			target, ok := parseMention(args[1])
			if !ok {
				return nil, usage(UsageInventory)
			}
			return domain.InventoryIntent{Invoker: who, Target: target}, nil
		default:
			return nil, usage(UsageInventory)
		}
	case CmdCoinFlipBet:
		if len(args) != 3 {
			return nil, usage(UsageCoinFlipBet)
		}
		amount, err := parseAmount(args[1])
		if err != nil {
			return nil, usage(UsageCoinFlipBet)
		}
		return domain.CoinFlipBetIntent{Invoker: who, Amount: amount, Call: args[2]}, nil
	default:
		return nil, ErrNotCommand
	}
}

// parseTargetAmount reads "<cmd> <@user> <amount>"
func parseTargetAmount(fields []string) (string, int64, error) {
	if len(fields) != 3 {
		return "", 0, ErrNotCommand
	}
	target, ok := parseMention(fields[1])
	if !ok {
		return "", 0, ErrNotCommand
	}
	amount, err := parseAmount(fields[2])
	if err != nil {
		return "", 0, err
	}
	return target, amount, nil
}

// parseRange reads "<low>-<high>". The first '-' after position 0 splits the
// bounds so a negative low bound still parses.
func parseRange(who domain.Invoker, token string) (domain.Intent, error) {
	idx := strings.Index(token[1:], "-")
	if idx < 0 {
		return nil, usage(UsageRandom)
	}
	idx++
	low, errLow := strconv.ParseInt(token[:idx], 10, 64)
	high, errHigh := strconv.ParseInt(token[idx+1:], 10, 64)
	if errLow != nil || errHigh != nil {
		return nil, usage(UsageRandom)
	}
	return domain.RandomNumberIntent{Invoker: who, Low: low, High: high}, nil
}

func parseAmount(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

// parseMention accepts <@id>, <@!id> or a bare numeric id
func parseMention(s string) (string, bool) {
	id := strings.TrimSuffix(strings.TrimPrefix(s, "<@"), ">")
	id = strings.TrimPrefix(id, "!")
	if id == "" {
		return "", false
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	return id, true
}
