package sqlite

// DriverName is the database/sql driver registered by modernc.org/sqlite
const DriverName = "sqlite"

// Connection pragmas: WAL for reader concurrency, FULL sync so a committed
// write survives a crash, and a busy timeout for external readers of the file
const dsnPragmas = "_pragma=journal_mode(WAL)&_pragma=synchronous(FULL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)"

// SQL statements
const (
	SQLGetAccount = `SELECT balance, last_daily_claim, last_weekly_claim FROM accounts WHERE user_id = ?`

	SQLUpsertAccount = `
INSERT INTO accounts (user_id, balance, last_daily_claim, last_weekly_claim)
VALUES (?, ?, ?, ?)
ON CONFLICT(user_id) DO UPDATE SET
    balance = excluded.balance,
    last_daily_claim = excluded.last_daily_claim,
    last_weekly_claim = excluded.last_weekly_claim`

	SQLGetInventory = `SELECT item, count FROM inventory WHERE user_id = ? ORDER BY item`

	SQLIncrementItem = `
INSERT INTO inventory (user_id, item, count) VALUES (?, ?, 1)
ON CONFLICT(user_id, item) DO UPDATE SET count = inventory.count + 1`

	SQLResetBalances = `UPDATE accounts SET balance = 0`
)

// Error Messages
const (
	ErrMsgOpen           = "failed to open sqlite database"
	ErrMsgMigrate        = "failed to migrate sqlite database"
	ErrMsgGetAccount     = "failed to get account"
	ErrMsgPutAccount     = "failed to put account"
	ErrMsgGetInventory   = "failed to get inventory"
	ErrMsgIncrementItem  = "failed to increment item"
	ErrMsgResetBalances  = "failed to reset balances"
	ErrMsgBeginTx        = "failed to begin transaction"
	ErrMsgCommitTx       = "failed to commit transaction"
	ErrMsgParseTimestamp = "failed to parse claim timestamp"
	ErrMsgPing           = "failed to ping database"
)

// Log Messages
const (
	LogMsgOpened = "SQLite ledger opened"
)
