package cooldown

import "time"

// Default cooldown windows
const (
	// DefaultCooldownDuration applies to claim kinds with no configured window
	DefaultCooldownDuration = 24 * time.Hour
)

// Remaining-time formats
const (
	FormatHoursMinutes   = "%dh %dm"
	FormatMinutesSeconds = "%dm %ds"
	FormatSeconds        = "%ds"
)
