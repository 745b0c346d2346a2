package domain

import "strings"

// CoinFace is one side of a coin
type CoinFace string

const (
	Heads CoinFace = "heads"
	Tails CoinFace = "tails"
)

// ParseCoinFace accepts "heads" or "tails" in any case
func ParseCoinFace(s string) (CoinFace, bool) {
	switch CoinFace(strings.ToLower(strings.TrimSpace(s))) {
	case Heads:
		return Heads, true
	case Tails:
		return Tails, true
	default:
		return "", false
	}
}
