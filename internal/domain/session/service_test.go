package session

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, userID int, tokenHash string, expiresAt time.Time) error {
	args := m.Called(ctx, userID, tokenHash, expiresAt)
	return args.Error(0)
}

func (m *MockRepository) Validate(ctx context.Context, tokenHash string) (int, error) {
	args := m.Called(ctx, tokenHash)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) DeleteExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestCreateStoresHashedToken(t *testing.T) {
	repo := new(MockRepository)

	var storedHash string
	repo.On("Create", mock.Anything, 7, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) {
			storedHash = args.String(2)
		}).
		Return(nil)

	svc := NewService(repo, slog.Default())

	token, err := svc.Create(context.Background(), 7)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// В базу уходит hex(sha256(token)), не сам токен.
	sum := sha256.Sum256([]byte(token))
	assert.Equal(t, hex.EncodeToString(sum[:]), storedHash)
	assert.NotEqual(t, token, storedHash)
}

func TestValidate(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, slog.Default())

	token := "some-opaque-token"
	sum := sha256.Sum256([]byte(token))
	repo.On("Validate", mock.Anything, hex.EncodeToString(sum[:])).Return(42, nil)

	userID, err := svc.Validate(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, 42, userID)
}

func TestValidateRejected(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Validate", mock.Anything, mock.Anything).Return(0, ErrInvalidSession)

	svc := NewService(repo, slog.Default())

	_, err := svc.Validate(context.Background(), "stale-token")
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestPruneExpired(t *testing.T) {
	repo := new(MockRepository)
	repo.On("DeleteExpired", mock.Anything).Return(int64(3), nil)

	svc := NewService(repo, slog.Default())
	svc.PruneExpired(context.Background())

	repo.AssertExpectations(t)
}

func TestPruneExpiredFailureIsSwallowed(t *testing.T) {
	repo := new(MockRepository)
	repo.On("DeleteExpired", mock.Anything).Return(int64(0), errors.New("connection refused"))

	svc := NewService(repo, slog.Default())
	svc.PruneExpired(context.Background())

	repo.AssertExpectations(t)
}
