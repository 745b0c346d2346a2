package repository

import (
	"context"
	"errors"
)

// ErrTxClosed is returned by Commit or Rollback on a transaction that already ended.
// Backends translate their driver-specific equivalents to it.
var ErrTxClosed = errors.New("transaction already closed")

// Tx defines the interface for transactional operations
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
