package admin

// Operation names reported when a caller is refused
const (
	OpGrantCoins  = "grant_coins"
	OpWipeEconomy = "wipe_economy"
)

// Log messages
const (
	LogMsgForbidden     = "Privileged command refused"
	LogMsgCoinsGranted  = "Coins granted by admin"
	LogMsgEconomyWiped  = "Economy wiped by admin"
	LogMsgInvalidAmount = "Admin grant rejected: amount must be positive"
)
