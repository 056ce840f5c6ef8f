package document

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"

	"notekeeper/internal/domain/note"
)

type Servicer interface {
	Read(ctx context.Context, userID int) (Document, error)
	Replace(ctx context.Context, userID int, doc Document) (Document, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "document_service"),
	}
}

// Read отдает документ пользователя, заметки - свежие первыми.
func (s *Service) Read(ctx context.Context, userID int) (Document, error) {
	doc, err := s.repo.Get(ctx, userID)
	if err != nil {
		return Document{}, fmt.Errorf("get document: %w", err)
	}

	note.SortByUpdated(doc.Notes, false)
	return doc, nil
}

// Replace валидирует и сохраняет полный документ, возвращая эхо
// сохраненного состояния.
func (s *Service) Replace(ctx context.Context, userID int, doc Document) (Document, error) {
	if err := doc.Validate(); err != nil {
		s.log.Debug("document rejected", "user_id", userID, "error", err)
		return Document{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	stored, err := s.repo.Replace(ctx, userID, doc)
	if err != nil {
		return Document{}, fmt.Errorf("replace document: %w", err)
	}

	s.log.Info("document replaced", "user_id", userID, "notes", len(stored.Notes))

	note.SortByUpdated(stored.Notes, false)
	return stored, nil
}
