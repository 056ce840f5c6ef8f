package session

import (
	"context"
	"errors"
	"time"
)

// ErrInvalidSession - токен неизвестен либо истек.
var ErrInvalidSession = errors.New("invalid or expired session")

type Repository interface {
	Create(ctx context.Context, userID int, tokenHash string, expiresAt time.Time) error
	Validate(ctx context.Context, tokenHash string) (int, error)
	// DeleteExpired удаляет истекшие сессии и возвращает их число.
	DeleteExpired(ctx context.Context) (int64, error)
}
