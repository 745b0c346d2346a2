package discord

// Command words, matched case-insensitively
const (
	CmdBalance     = "coins"
	CmdEgPrefix    = "eg"
	CmdDaily       = "daily"
	CmdWeekly      = "weekly"
	CmdCoinFlipBet = "cf"
	CmdShop        = "shop"
	CmdInventory   = "inv"
	CmdHelp        = "help"
	CmdBet         = "!bet"
	CmdTransfer    = "!transfer"
	CmdRollDice    = "!roll_dice"
	CmdSpawnCoins  = "!spawn_coins"
	CmdWipeAll     = "!wipe_all_coins"
	CmdFlipCoin    = "flip coin"
	CmdRandom      = "random"
	CmdRandomNum   = "randomnum"
)

// Usage replies for malformed commands
const (
	UsageCoinFlipBet = "Invalid bet command. Please use the format eg cf <amount> <heads|tails>."
	UsageBet         = "Invalid bet command. Please use the format !bet <amount> <heads|tails>."
	UsageTransfer    = "Invalid transfer command. Please use the format !transfer <@recipient> <amount>."
	UsageRollDice    = "Invalid roll dice command. Please use the format !roll_dice <bet_amount> <user_choice>."
	UsageSpawnCoins  = "Invalid command format. Please use the format !spawn_coins <@recipient> <amount>."
	UsageRandom      = "Invalid range. Please use the format lower-upper random."
	UsageInventory   = "Invalid inventory command. Please use the format eg inv [@user]."
)

// Shop rendering
const (
	ShopEmbedColor    = 0xFFD700 // Gold
	ShopFooter        = "CoinBot"
	ShopFieldName     = "%d. %s"
	ShopFieldValue    = "Price: %d :coin:"
	keycapSuffix      = "\uFE0F\u20E3"
	maxKeycapSelector = 9
)

// Log messages
const (
	LogMsgBotReady          = "Discord bot is ready"
	LogMsgBotRunning        = "Discord bot is now running"
	LogMsgHandleFailed      = "Failed to handle command"
	LogMsgSendFailed        = "Failed to send reply"
	LogMsgReactionFailed    = "Failed to add selection reaction"
	LogMsgSelectionReceived = "Selection reaction received"
)

// Error messages
const (
	ErrMsgCreateSession = "error creating Discord session"
	ErrMsgOpenSession   = "error opening connection"
	ErrMsgNotACommand   = "not a command"
	MsgGenericError     = "❌ Something went wrong."
)
