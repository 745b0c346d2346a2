package postgres

// Advisory lock hashing
const (
	// AdvisoryLockNamespace prefixes user ids so ledger locks never collide with other lock users
	AdvisoryLockNamespace = "ledger:"

	// HashMaskPositiveInt64 keeps advisory lock keys positive
	HashMaskPositiveInt64 = 0x7FFFFFFFFFFFFFFF
)

// SQL statements
const (
	SQLAdvisoryLock = "SELECT pg_advisory_xact_lock($1)"

	SQLGetAccount = `SELECT balance, last_daily_claim, last_weekly_claim FROM accounts WHERE user_id = $1`

	SQLGetAccountForUpdate = SQLGetAccount + ` FOR UPDATE`

	SQLUpsertAccount = `
INSERT INTO accounts (user_id, balance, last_daily_claim, last_weekly_claim)
VALUES ($1, $2, $3, $4)
ON CONFLICT (user_id) DO UPDATE SET
    balance = EXCLUDED.balance,
    last_daily_claim = EXCLUDED.last_daily_claim,
    last_weekly_claim = EXCLUDED.last_weekly_claim`

	SQLGetInventory = `SELECT item, count FROM inventory WHERE user_id = $1 ORDER BY item`

	SQLIncrementItem = `
INSERT INTO inventory (user_id, item, count) VALUES ($1, $2, 1)
ON CONFLICT (user_id, item) DO UPDATE SET count = inventory.count + 1`

	SQLResetBalances = `UPDATE accounts SET balance = 0`
)

// Error Messages
const (
	ErrMsgMigrate       = "failed to migrate postgres database"
	ErrMsgGetAccount    = "failed to get account"
	ErrMsgPutAccount    = "failed to put account"
	ErrMsgGetInventory  = "failed to get inventory"
	ErrMsgIncrementItem = "failed to increment item"
	ErrMsgResetBalances = "failed to reset balances"
	ErrMsgBeginTx       = "failed to begin transaction"
	ErrMsgCommitTx      = "failed to commit transaction"
	ErrMsgAcquireLock   = "failed to acquire account lock"
	ErrMsgPing          = "failed to ping database"
)

// Log Messages
const (
	LogMsgBalancesReset = "All balances reset"
)
