package service

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/taskvault/taskvault/internal/domain"
	"github.com/taskvault/taskvault/internal/result"
	"github.com/taskvault/taskvault/internal/store"
)

// MockTaskStore mocks the store.TaskStore interface
type MockTaskStore struct {
	mock.Mock
}

func (m *MockTaskStore) Create(ctx context.Context, task domain.TaskItem) result.Result[domain.TaskItem] {
	args := m.Called(ctx, task)
	return args.Get(0).(result.Result[domain.TaskItem])
}

func (m *MockTaskStore) GetByID(ctx context.Context, id uuid.UUID) result.Result[domain.TaskItem] {
	args := m.Called(ctx, id)
	return args.Get(0).(result.Result[domain.TaskItem])
}

func (m *MockTaskStore) GetAll(ctx context.Context) result.Result[[]domain.TaskItem] {
	args := m.Called(ctx)
	return args.Get(0).(result.Result[[]domain.TaskItem])
}

func (m *MockTaskStore) GetDeleted(ctx context.Context) result.Result[[]domain.TaskItem] {
	args := m.Called(ctx)
	return args.Get(0).(result.Result[[]domain.TaskItem])
}

func (m *MockTaskStore) Update(ctx context.Context, task domain.TaskItem) result.Result[domain.TaskItem] {
	args := m.Called(ctx, task)
	return args.Get(0).(result.Result[domain.TaskItem])
}

func (m *MockTaskStore) Delete(ctx context.Context, id uuid.UUID) result.Result[bool] {
	args := m.Called(ctx, id)
	return args.Get(0).(result.Result[bool])
}

func (m *MockTaskStore) Restore(ctx context.Context, id uuid.UUID) result.Result[bool] {
	args := m.Called(ctx, id)
	return args.Get(0).(result.Result[bool])
}

func (m *MockTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	args := m.Called(tx)
	return args.Get(0).(store.TaskStore)
}
