package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Security alert message templates
const (
	SecurityAlertHighRate = "⚠️ SECURITY ALERT: Blocking high request rate"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgReadinessFailed  = "Readiness check failed"
)

// HTTP header names
const (
	HeaderAPIKey         = "X-API-Key"
	HeaderAuthorization  = "Authorization"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// Health responses
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
	MsgStorageDown    = "ledger storage unreachable"
)

const (
	// requestBodyLimit caps request bodies; the ops routes take none
	requestBodyLimit = 1 << 20
	// rateLimitPerWindow is the request budget per client IP per rateWindow
	rateLimitPerWindow = 1000
	rateWindow         = 5 * time.Minute
	readinessTimeout   = 2 * time.Second
	redacted           = "[REDACTED]"
)

// quietPaths skip request logging; probes and scrapes would flood the log
var quietPaths = []string{
	"/healthz",
	"/readyz",
	"/metrics",
}
