package cooldown

import (
	"time"

	"github.com/osse101/CoinBot_Go/internal/domain"
)

// Config holds cooldown configuration
type Config struct {
	// Cooldowns maps claim kinds to their windows
	// If not specified, defaults from domain package are used
	Cooldowns map[domain.ClaimKind]time.Duration
}

// GetCooldownDuration returns the window for a claim kind
func (c *Config) GetCooldownDuration(kind domain.ClaimKind) time.Duration {
	// Check custom overrides first
	if c.Cooldowns != nil {
		if duration, ok := c.Cooldowns[kind]; ok {
			return duration
		}
	}

	switch kind {
	case domain.ClaimDaily:
		return domain.DailyClaimWindow
	case domain.ClaimWeekly:
		return domain.WeeklyClaimWindow
	default:
		return DefaultCooldownDuration
	}
}
