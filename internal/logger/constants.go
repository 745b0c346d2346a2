package logger

// Accepted LOG_LEVEL and LOG_FORMAT values; anything else falls back to
// info and text.
const (
	levelDebug   = "debug"
	levelWarn    = "warn"
	levelWarning = "warning"
	levelError   = "error"

	formatJSON = "json"
)

// Fallbacks applied by NewConfig when a field is left empty.
const (
	DefaultServiceName = "coinbot"
	DefaultVersion     = "dev"
	DefaultEnvironment = "dev"
)

// Attribute keys stamped on every record.
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
)
