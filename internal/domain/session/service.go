package session

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"time"

	"golang.org/x/exp/slog"
)

const sessionTTL = 24 * time.Hour

type Servicer interface {
	Create(ctx context.Context, userID int) (string, error)
	Validate(ctx context.Context, token string) (int, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "session_service"),
	}
}

// Create выдает непрозрачный токен; в базе хранится только его sha256.
func (s *Service) Create(ctx context.Context, userID int) (string, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	token := base64.URLEncoding.EncodeToString(tokenBytes)

	expiresAt := time.Now().Add(sessionTTL)
	if err := s.repo.Create(ctx, userID, hashToken(token), expiresAt); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}

	s.log.Debug("session created", "user_id", userID, "expires_at", expiresAt)
	return token, nil
}

// Validate возвращает владельца живой сессии.
func (s *Service) Validate(ctx context.Context, token string) (int, error) {
	return s.repo.Validate(ctx, hashToken(token))
}

// PruneExpired чистит истекшие сессии. Вызывается периодически сервером.
func (s *Service) PruneExpired(ctx context.Context) {
	removed, err := s.repo.DeleteExpired(ctx)
	if err != nil {
		s.log.Warn("prune expired sessions failed", "error", err)
		return
	}
	if removed > 0 {
		s.log.Info("expired sessions pruned", "count", removed)
	}
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
