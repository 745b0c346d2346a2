package ledger

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/CoinBot_Go/internal/domain"
	"github.com/osse101/CoinBot_Go/internal/repository"
)

// MockRepository implements repository.Ledger for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetAccount(ctx context.Context, userID string) (domain.Account, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.Account), args.Error(1)
}

func (m *MockRepository) PutAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockRepository) GetInventory(ctx context.Context, userID string) (domain.Inventory, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.Inventory), args.Error(1)
}

func (m *MockRepository) IncrementItem(ctx context.Context, userID, item string) error {
	args := m.Called(ctx, userID, item)
	return args.Error(0)
}

func (m *MockRepository) ResetBalances(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.LedgerTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.LedgerTx), args.Error(1)
}

func (m *MockRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRepository) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockTx implements repository.LedgerTx for testing
type MockTx struct {
	mock.Mock
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) GetAccountForUpdate(ctx context.Context, userID string) (domain.Account, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.Account), args.Error(1)
}

func (m *MockTx) PutAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockTx) IncrementItem(ctx context.Context, userID, item string) error {
	args := m.Called(ctx, userID, item)
	return args.Error(0)
}

func (m *MockTx) GetInventory(ctx context.Context, userID string) (domain.Inventory, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.Inventory), args.Error(1)
}
