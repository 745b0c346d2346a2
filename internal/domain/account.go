package domain

import "time"

// Account is the persisted per-user ledger row
type Account struct {
	UserID          string     `json:"user_id"`
	Balance         int64      `json:"balance"`
	LastDailyClaim  *time.Time `json:"last_daily_claim,omitempty"`
	LastWeeklyClaim *time.Time `json:"last_weekly_claim,omitempty"`
}

// NewAccount returns the zero-value account used for users with no row yet
func NewAccount(userID string) Account {
	return Account{UserID: userID}
}

// LastClaim returns the timestamp tied to the given claim kind
func (a Account) LastClaim(kind ClaimKind) *time.Time {
	switch kind {
	case ClaimDaily:
		return a.LastDailyClaim
	case ClaimWeekly:
		return a.LastWeeklyClaim
	default:
		return nil
	}
}

// WithClaim returns a copy of the account with only the field for kind set to at.
// The other cooldown field is carried over unchanged.
func (a Account) WithClaim(kind ClaimKind, at time.Time) Account {
	t := at.UTC()
	switch kind {
	case ClaimDaily:
		a.LastDailyClaim = &t
	case ClaimWeekly:
		a.LastWeeklyClaim = &t
	}
	return a
}
