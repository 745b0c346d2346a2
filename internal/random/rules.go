package random

import "github.com/osse101/CoinBot_Go/internal/domain"

// CoinPayout is the signed balance delta of a coin flip bet
func CoinPayout(amount int64, call, flip domain.CoinFace) int64 {
	if call == flip {
		return amount
	}
	return -amount
}

// DicePayout is the signed balance delta of a dice bet: a matching face pays
// five times the wager, a miss forfeits it
func DicePayout(amount int64, face, rolled int) int64 {
	if face == rolled {
		return amount * domain.DicePayoutMultiplier
	}
	return -amount
}
