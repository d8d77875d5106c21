package locker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

func (m *MockRedisRepository) Expire(ctx context.Context, key string, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, exp)
	return args.Bool(0), args.Error(1)
}

const lockKey = "lock:payments:expiry-sweep"

func TestLockService_TryLock(t *testing.T) {
	t.Run("Acquired", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("TrySetNX", mock.Anything, lockKey, mock.AnythingOfType("string"), time.Minute).Return(true, nil)

		acquired, lockValue, err := newLockService(repo, zap.NewNop()).TryLock(context.Background(), lockKey, time.Minute)

		require.NoError(t, err)
		assert.True(t, acquired)
		assert.NotEmpty(t, lockValue)
	})

	t.Run("Held Elsewhere", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("TrySetNX", mock.Anything, lockKey, mock.Anything, time.Minute).Return(false, nil)

		acquired, lockValue, err := newLockService(repo, zap.NewNop()).TryLock(context.Background(), lockKey, time.Minute)

		require.NoError(t, err)
		assert.False(t, acquired)
		assert.Empty(t, lockValue)
	})

	t.Run("Redis Failure", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("TrySetNX", mock.Anything, lockKey, mock.Anything, time.Minute).Return(false, errors.New("dial tcp: refused"))

		acquired, _, err := newLockService(repo, zap.NewNop()).TryLock(context.Background(), lockKey, time.Minute)

		assert.Error(t, err)
		assert.False(t, acquired)
	})
}

func TestLockService_Unlock(t *testing.T) {
	t.Run("Owner Deletes Key", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("Get", mock.Anything, lockKey).Return(`"token-1"`, nil)
		repo.On("Delete", mock.Anything, lockKey).Return(nil)

		err := newLockService(repo, zap.NewNop()).Unlock(context.Background(), lockKey, "token-1")

		assert.NoError(t, err)
		repo.AssertCalled(t, "Delete", mock.Anything, lockKey)
	})

	t.Run("Other Owner Keeps Key", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("Get", mock.Anything, lockKey).Return(`"token-2"`, nil)

		err := newLockService(repo, zap.NewNop()).Unlock(context.Background(), lockKey, "token-1")

		assert.NoError(t, err)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Expired Lock", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("Get", mock.Anything, lockKey).Return("", nil)

		err := newLockService(repo, zap.NewNop()).Unlock(context.Background(), lockKey, "token-1")

		assert.NoError(t, err)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestLockService_Refresh(t *testing.T) {
	t.Run("Owner Extends TTL", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("Get", mock.Anything, lockKey).Return(`"token-1"`, nil)
		repo.On("Expire", mock.Anything, lockKey, 2*time.Minute).Return(true, nil)

		err := newLockService(repo, zap.NewNop()).Refresh(context.Background(), lockKey, "token-1", 2*time.Minute)

		assert.NoError(t, err)
	})

	t.Run("Not Owner", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("Get", mock.Anything, lockKey).Return(`"token-2"`, nil)

		err := newLockService(repo, zap.NewNop()).Refresh(context.Background(), lockKey, "token-1", 2*time.Minute)

		assert.ErrorIs(t, err, errLockNotOwned)
		repo.AssertNotCalled(t, "Expire", mock.Anything, mock.Anything, mock.Anything)
	})
}
