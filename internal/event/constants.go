package event

// SchemaVersion is stamped on every ledger event; bump it when a payload
// changes shape.
const SchemaVersion = "1.0"

const (
	ErrMsgHandlersFailed = "%d handler(s) failed for %s: %v"
	ErrMsgDecodePayload  = "decode %T payload"

	LogMsgPublishFailed = "Ledger event dropped by subscriber"
)
