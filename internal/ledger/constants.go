package ledger

// Log messages
const (
	LogMsgClaimGranted      = "Claim granted"
	LogMsgClaimOnCooldown   = "Claim still on cooldown"
	LogMsgTransferCompleted = "Transfer completed"
	LogMsgBetResolved       = "Bet resolved"
	LogMsgPurchaseCommitted = "Purchase committed"
	LogMsgAdminCredit       = "Admin credit applied"
	LogMsgBalancesReset     = "All balances reset"
	LogMsgStorageFailure    = "Ledger storage failure"
	LogMsgRejected          = "Ledger operation rejected"
)

// Operation names used in errors and logs
const (
	OpClaim     = "claim"
	OpTransfer  = "transfer"
	OpBet       = "bet"
	OpDice      = "dice"
	OpPurchase  = "purchase"
	OpCredit    = "credit"
	OpReset     = "reset"
	OpBalance   = "balance"
	OpInventory = "inventory"
)
