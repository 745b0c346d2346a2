package shop

import "time"

// expiryGrace keeps a session in the registry a little past its deadline so
// Await always observes its own timeout before the entry disappears
const expiryGrace = 5 * time.Second

// Log messages
const (
	LogMsgCatalogPresented = "Shop catalog presented"
	LogMsgSelectionTimeout = "Shop selection timed out"
	LogMsgSelectionAborted = "Shop selection abandoned"
	LogMsgSelectionPicked  = "Shop selection received"
)

// Error messages
const (
	ErrMsgRenderFailed = "failed to render catalog"
)
