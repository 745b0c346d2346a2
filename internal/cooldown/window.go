package cooldown

import (
	"fmt"
	"time"

	"github.com/osse101/CoinBot_Go/internal/domain"
)

// Checker decides claim eligibility from the stored timestamp alone
type Checker struct {
	config Config
}

// NewChecker creates a Checker
func NewChecker(config Config) *Checker {
	return &Checker{config: config}
}

// Check reports whether kind is still on cooldown at now given the last
// successful claim, and how long remains. A claim exactly one window after
// the last one is eligible.
func (c *Checker) Check(kind domain.ClaimKind, lastUsed *time.Time, now time.Time) (onCooldown bool, remaining time.Duration) {
	if lastUsed == nil {
		return false, 0
	}
	return checkWindow(*lastUsed, c.config.GetCooldownDuration(kind), now)
}

func checkWindow(lastUsed time.Time, window time.Duration, now time.Time) (bool, time.Duration) {
	elapsed := now.Sub(lastUsed)
	if elapsed >= window {
		return false, 0
	}
	return true, window - elapsed
}

// FormatRemaining renders a wait for users, e.g. "3h 12m" or "45s"
func FormatRemaining(d time.Duration) string {
	if d < time.Second {
		d = time.Second
	}
	d = d.Round(time.Second)

	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	switch {
	case hours > 0:
		return fmt.Sprintf(FormatHoursMinutes, hours, minutes)
	case minutes > 0:
		return fmt.Sprintf(FormatMinutesSeconds, minutes, seconds)
	default:
		return fmt.Sprintf(FormatSeconds, seconds)
	}
}
