package engine

// MentionFormat renders a user id as a chat mention
const MentionFormat = "<@%s>"

// Reply texts
const (
	MsgBalance = "You have %d :coin:"

	MsgDailyClaimed         = "You got your daily coins! You now have %d coins."
	MsgDailyAlreadyClaimed  = "You have already claimed your daily coins today. Try again in %s."
	MsgWeeklyClaimed        = "You got your weekly coins! You now have %d coins."
	MsgWeeklyAlreadyClaimed = "You have already claimed your weekly coins this week. Try again in %s."
	MsgClaimTooLarge        = "Your balance cannot hold any more coins."

	MsgTransferred          = "%s has transferred %d coins to %s."
	MsgTransferInsufficient = "You don't have enough coins to transfer."
	MsgTransferInvalid      = "Invalid transfer amount. Please use a positive whole number."

	MsgBetWon          = "You won! You gained %d :coin:. Your new balance is %d :coin:"
	MsgBetLost         = "You lost! You lost %d :coin:. Your new balance is %d :coin:"
	MsgBetInsufficient = "Insufficient balance to place the bet."
	MsgBetInvalidCall  = "Invalid choice. Please choose 'heads' or 'tails'."
	MsgBetInvalid      = "Invalid bet amount. Please use a positive whole number."

	MsgCoinLanded = "The coin landed on: %s"

	MsgDiceWon     = "You rolled %d and won %d coins!"
	MsgDiceLost    = "You rolled %d and lost your bet of %d coins."
	MsgDiceInvalid = "Invalid bet amount or choice. Please use valid integers."

	MsgRandomNumber  = "Your number is... %d"
	MsgRandomInvalid = "Invalid range. Please use the format lower-upper random."

	MsgShopTitle       = "Shop Items"
	MsgShopDescription = "React with the corresponding emoji to buy the item"
	MsgShopOwned       = "%s x%d"

	MsgPurchaseInsufficient = "Sorry, you don't have enough :coin: to purchase this item."
	MsgPurchaseTimeout      = "You took too long to respond."
	MsgPurchaseInvalid      = "That item is not for sale."

	MsgInventory      = "%s, Your inventory:\n%s"
	MsgInventoryLine  = "%s: %d"
	MsgInventoryEmpty = "%s, Your inventory is empty."

	MsgCoinsGranted  = "%s has been awarded %d coins."
	MsgGrantInvalid  = "Invalid coin amount. Please use a positive whole number."
	MsgForbidden     = "You are not allowed to use this command."
	MsgEconomyWiped  = "All users' coins have been wiped."
	MsgInvalidIntent = "Invalid command: %s."

	MsgHelp = "Need help? Here's a list of available commands: " +
		"coins = check your coins balance, " +
		"eg daily = claim your daily coins, " +
		"eg weekly = claim your weekly coins, " +
		"!bet <amount> <heads or tails> or eg cf <amount> <heads or tails> = bet your coins on a coin flip, " +
		"!roll_dice <amount> <1-6> = bet on a dice roll, " +
		"!transfer <@user> <amount> = send coins to another user, " +
		"eg shop = get a list of shop items that are buyable with coins, " +
		"eg inv = check your inventory of items, " +
		"flip coin = flip a coin, " +
		"<lower>-<upper> random or randomnum = draw a random number, " +
		"!spawn_coins <@user> <amount> = spawn coins (admins only)"
)

// Validation messages, keyed by validator tag
const (
	ValMsgRequired = "%s is required"
	ValMsgPositive = "%s must be greater than 0"
	ValMsgRange    = "%s must be between 1 and 6"
	ValMsgOrder    = "%s must not exceed %s"
	ValMsgInvalid  = "%s is invalid"
)

// Log messages
const (
	LogMsgIntentReceived  = "Intent received"
	LogMsgIntentRejected  = "Intent failed validation"
	LogMsgIntentFailed    = "Intent failed"
	LogMsgUnknownIntent   = "Unknown intent type"
	LogMsgPurchaseAwaited = "Purchase resolved"
)
