package domain

import "time"

// Item internal name constants - stable code identifiers
const (
	ItemCar        = "car"
	ItemHouse      = "house"
	ItemHelicopter = "helicopter"
	ItemCake       = "cake"
	ItemCoconut    = "coconut"
	ItemIsland     = "island"
	ItemBurger     = "burger"
	ItemIphone     = "iphone"
	ItemImac       = "imac"
)

// ClaimKind identifies a time-gated reward
type ClaimKind string

const (
	ClaimDaily  ClaimKind = "daily"
	ClaimWeekly ClaimKind = "weekly"
)

// Claim windows and grant ranges (inclusive)
const (
	DailyClaimWindow  = 24 * time.Hour
	WeeklyClaimWindow = 7 * 24 * time.Hour

	DailyGrantMin  int64 = 200
	DailyGrantMax  int64 = 5000
	WeeklyGrantMin int64 = 5000
	WeeklyGrantMax int64 = 10000
)

// Games and payouts
const (
	GameCoinFlip = "coinflip"
	GameDice     = "dice"

	DiceFaces            = 6
	DicePayoutMultiplier = 5

	// RandomNumberMax is the upper bound of the unparameterised random number command
	RandomNumberMax = 100000000
)

// Purchase flow defaults
const (
	DefaultPurchaseTimeout      = 30 * time.Second
	DefaultMaxPendingSelections = 1024
)

// Grant sources, used as metric labels
const (
	SourceDaily  = "daily"
	SourceWeekly = "weekly"
	SourceAdmin  = "admin"
	SourceBet    = "bet"
	SourceDice   = "dice"
)
