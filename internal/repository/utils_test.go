package repository

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockTx struct {
	mock.Mock
}

func (m *MockTx) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestSafeRollback(t *testing.T) {
	ctx := context.Background()

	t.Run("closed transaction is silent", func(t *testing.T) {
		logs := captureLogs(t)
		tx := new(MockTx)
		tx.On("Rollback", ctx).Return(ErrTxClosed)

		SafeRollback(ctx, tx)

		tx.AssertExpectations(t)
		assert.Empty(t, logs.String())
	})

	t.Run("other errors are logged", func(t *testing.T) {
		logs := captureLogs(t)
		tx := new(MockTx)
		tx.On("Rollback", ctx).Return(errors.New("connection reset"))

		SafeRollback(ctx, tx)

		tx.AssertExpectations(t)
		assert.Contains(t, logs.String(), "connection reset")
	})
}
