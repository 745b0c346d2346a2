package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Storage errors
	ErrMsgStorage = "storage failure"

	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Purchase flow errors
	ErrMsgUnknownCatalog      = "unknown or expired catalog"
	ErrMsgSelectionInProgress = "catalog is already being awaited"
	ErrMsgUnknownItem         = "item is not in the catalog"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
// Business outcomes (insufficient funds, cooldowns, forbidden) are not errors; see Outcome.
var (
	// ErrStorage marks a durable read or write failure. It is the only fatal class.
	ErrStorage = errors.New(ErrMsgStorage)

	// ErrInvalidInput is returned when an intent cannot be dispatched at all
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	ErrUnknownCatalog      = errors.New(ErrMsgUnknownCatalog)
	ErrSelectionInProgress = errors.New(ErrMsgSelectionInProgress)
	ErrUnknownItem         = errors.New(ErrMsgUnknownItem)
)
