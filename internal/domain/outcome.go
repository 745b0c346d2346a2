package domain

import "time"

// Outcome is the result class of an engine operation. Every non-fatal
// failure is an Outcome value; only storage failures surface as errors.
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeWon
	OutcomeLost
	OutcomeAlreadyClaimed
	OutcomeInsufficientFunds
	OutcomeInvalidInput
	OutcomeInvalidCall
	OutcomeForbidden
	OutcomeTimeout
)

var outcomeNames = map[Outcome]string{
	OutcomeOK:                "ok",
	OutcomeWon:               "won",
	OutcomeLost:              "lost",
	OutcomeAlreadyClaimed:    "already_claimed",
	OutcomeInsufficientFunds: "insufficient_funds",
	OutcomeInvalidInput:      "invalid_input",
	OutcomeInvalidCall:       "invalid_call",
	OutcomeForbidden:         "forbidden",
	OutcomeTimeout:           "timeout",
}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return "unknown"
}

// Succeeded reports whether the operation mutated (or may have mutated) state
func (o Outcome) Succeeded() bool {
	return o == OutcomeOK || o == OutcomeWon || o == OutcomeLost
}

// ClaimResult is returned by daily and weekly claims
type ClaimResult struct {
	Outcome   Outcome       `json:"outcome"`
	Kind      ClaimKind     `json:"kind"`
	Granted   int64         `json:"granted"`
	Balance   int64         `json:"balance"`
	Remaining time.Duration `json:"remaining,omitempty"` // wait left when AlreadyClaimed
}

// TransferResult is returned by Transfer
type TransferResult struct {
	Outcome          Outcome `json:"outcome"`
	Amount           int64   `json:"amount"`
	SenderBalance    int64   `json:"sender_balance"`
	RecipientBalance int64   `json:"recipient_balance"`
}

// BetResult is returned by coin flip bets
type BetResult struct {
	Outcome Outcome  `json:"outcome"`
	Call    CoinFace `json:"call,omitempty"`
	Flip    CoinFace `json:"flip,omitempty"`
	Payout  int64    `json:"payout"` // signed balance delta actually applied
	Balance int64    `json:"balance"`
}

// DiceResult is returned by dice bets
type DiceResult struct {
	Outcome Outcome `json:"outcome"`
	Face    int     `json:"face"`
	Rolled  int     `json:"rolled"`
	Payout  int64   `json:"payout"` // signed balance delta actually applied
	Balance int64   `json:"balance"`
}

// PurchaseResult is returned when a shop selection resolves or expires
type PurchaseResult struct {
	Outcome   Outcome   `json:"outcome"`
	Item      ShopItem  `json:"item"`
	Balance   int64     `json:"balance"`
	Inventory Inventory `json:"inventory"`
}

// AdminResult is returned by privileged operations
type AdminResult struct {
	Outcome Outcome `json:"outcome"`
	Balance int64   `json:"balance,omitempty"` // recipient balance after a grant
}
