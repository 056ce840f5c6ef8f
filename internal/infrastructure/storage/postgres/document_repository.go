package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"notekeeper/internal/domain/document"
	"notekeeper/internal/domain/folder"
	"notekeeper/internal/domain/note"
)

// DocumentRepository хранит документ пользователя одной jsonb-строкой.
// Частичных обновлений нет: Replace перезаписывает строку целиком, это
// и есть контракт хранилища.
type DocumentRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewDocumentRepository(pool *pgxpool.Pool, log *slog.Logger) *DocumentRepository {
	return &DocumentRepository{
		pool: pool,
		log:  log.With("component", "document_repository"),
	}
}

func (r *DocumentRepository) Get(ctx context.Context, userID int) (document.Document, error) {
	var body []byte
	err := r.pool.QueryRow(ctx,
		`SELECT body FROM documents WHERE user_id = $1`, userID).Scan(&body)
	if errors.Is(err, pgx.ErrNoRows) {
		// Нет строки - новый пользователь с пустым документом.
		return emptyDocument(), nil
	}
	if err != nil {
		r.log.Error("failed to get document", "user_id", userID, "error", err)
		return document.Document{}, fmt.Errorf("get document: %w", err)
	}

	var doc document.Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return document.Document{}, fmt.Errorf("decode document: %w", err)
	}
	return doc, nil
}

func (r *DocumentRepository) Replace(ctx context.Context, userID int, doc document.Document) (document.Document, error) {
	body, err := json.Marshal(doc)
	if err != nil {
		return document.Document{}, fmt.Errorf("encode document: %w", err)
	}

	var stored []byte
	err = r.pool.QueryRow(ctx, `
		INSERT INTO documents (user_id, body, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id) DO UPDATE SET body = EXCLUDED.body, updated_at = NOW()
		RETURNING body`,
		userID, body).Scan(&stored)
	if err != nil {
		r.log.Error("failed to replace document", "user_id", userID, "error", err)
		return document.Document{}, fmt.Errorf("replace document: %w", err)
	}

	var out document.Document
	if err := json.Unmarshal(stored, &out); err != nil {
		return document.Document{}, fmt.Errorf("decode stored document: %w", err)
	}
	return out, nil
}

func emptyDocument() document.Document {
	return document.Document{
		Notes:   []note.Note{},
		Folders: []folder.Folder{},
	}
}
