package domain

// Intent names, used for logging and metric labels
const (
	IntentBalance      = "balance"
	IntentDailyClaim   = "daily_claim"
	IntentWeeklyClaim  = "weekly_claim"
	IntentTransfer     = "transfer"
	IntentCoinFlipBet  = "coinflip_bet"
	IntentCoinFlip     = "coinflip"
	IntentDiceBet      = "dice_bet"
	IntentRandomNumber = "random_number"
	IntentShop         = "shop"
	IntentInventory    = "inventory"
	IntentGrantCoins   = "grant_coins"
	IntentWipeEconomy  = "wipe_economy"
	IntentHelp         = "help"
)

// Intent is a resolved user command. The set of implementations is closed;
// the engine dispatches on the concrete type.
type Intent interface {
	Name() string
	Actor() string
	isIntent()
}

// Invoker carries the identity of the user issuing an intent
type Invoker struct {
	UserID string `json:"user_id" validate:"required"`
}

func (i Invoker) Actor() string { return i.UserID }
func (Invoker) isIntent()       {}

// BalanceIntent shows the invoker's balance
type BalanceIntent struct {
	Invoker
}

// DailyClaimIntent claims the daily reward
type DailyClaimIntent struct {
	Invoker
}

// WeeklyClaimIntent claims the weekly reward
type WeeklyClaimIntent struct {
	Invoker
}

// TransferIntent moves coins from the invoker to Recipient
type TransferIntent struct {
	Invoker
	Recipient string `json:"recipient" validate:"required"`
	Amount    int64  `json:"amount" validate:"gt=0"`
}

// CoinFlipBetIntent bets Amount on Call. Call is checked by the ledger so an
// unknown face reports InvalidCall rather than InvalidInput.
type CoinFlipBetIntent struct {
	Invoker
	Amount int64  `json:"amount" validate:"gt=0"`
	Call   string `json:"call"`
}

// CoinFlipIntent flips a coin with nothing at stake
type CoinFlipIntent struct {
	Invoker
}

// DiceBetIntent bets Amount that the die lands on Face
type DiceBetIntent struct {
	Invoker
	Amount int64 `json:"amount" validate:"gt=0"`
	Face   int   `json:"face" validate:"min=1,max=6"`
}

// RandomNumberIntent draws a uniform integer in [Low, High]
type RandomNumberIntent struct {
	Invoker
	Low  int64 `json:"low" validate:"ltefield=High"`
	High int64 `json:"high"`
}

// ShopIntent presents the catalog for an interactive purchase
type ShopIntent struct {
	Invoker
}

// InventoryIntent shows the inventory of Target, or of the invoker when empty
type InventoryIntent struct {
	Invoker
	Target string `json:"target,omitempty"`
}

// GrantCoinsIntent is the privileged credit
type GrantCoinsIntent struct {
	Invoker
	Recipient string `json:"recipient" validate:"required"`
	Amount    int64  `json:"amount" validate:"gt=0"`
}

// WipeEconomyIntent is the privileged global balance reset
type WipeEconomyIntent struct {
	Invoker
}

// HelpIntent lists the available commands
type HelpIntent struct {
	Invoker
}

func (BalanceIntent) Name() string      { return IntentBalance }
func (DailyClaimIntent) Name() string   { return IntentDailyClaim }
func (WeeklyClaimIntent) Name() string  { return IntentWeeklyClaim }
func (TransferIntent) Name() string     { return IntentTransfer }
func (CoinFlipBetIntent) Name() string  { return IntentCoinFlipBet }
func (CoinFlipIntent) Name() string     { return IntentCoinFlip }
func (DiceBetIntent) Name() string      { return IntentDiceBet }
func (RandomNumberIntent) Name() string { return IntentRandomNumber }
func (ShopIntent) Name() string         { return IntentShop }
func (InventoryIntent) Name() string    { return IntentInventory }
func (GrantCoinsIntent) Name() string   { return IntentGrantCoins }
func (WipeEconomyIntent) Name() string  { return IntentWipeEconomy }
func (HelpIntent) Name() string         { return IntentHelp }
