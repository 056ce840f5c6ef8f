package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"notekeeper/internal/domain/document"
)

// ErrNoSnapshot - в кэше еще нет ни одного снимка документа.
var ErrNoSnapshot = errors.New("no cached snapshot")

// SnapshotCache хранит последний успешно синхронизированный документ в
// локальном SQLite. Используется только как офлайн-резерв на чтение;
// источником истины всегда остается сервер.
type SnapshotCache struct {
	db *sql.DB
}

func NewSnapshotCache(path string) (*SnapshotCache, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия базы данных: %w", err)
	}

	cache := &SnapshotCache{db: db}
	if err := cache.initTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ошибка инициализации таблиц: %w", err)
	}
	return cache, nil
}

func (c *SnapshotCache) initTables() error {
	_, err := c.db.Exec(`
		CREATE TABLE IF NOT EXISTS snapshots (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			body TEXT NOT NULL,
			saved_at DATETIME NOT NULL
		);
	`)
	return err
}

// Save перезаписывает единственный снимок.
func (c *SnapshotCache) Save(doc document.Document) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("ошибка сериализации документа: %w", err)
	}

	_, err = c.db.Exec(`
		INSERT INTO snapshots (id, body, saved_at) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET body = excluded.body, saved_at = excluded.saved_at
	`, string(body), time.Now())
	if err != nil {
		return fmt.Errorf("ошибка записи снимка: %w", err)
	}
	return nil
}

// Load возвращает последний снимок и время его сохранения.
func (c *SnapshotCache) Load() (document.Document, time.Time, error) {
	var body string
	var savedAt time.Time

	err := c.db.QueryRow(`SELECT body, saved_at FROM snapshots WHERE id = 1`).Scan(&body, &savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return document.Document{}, time.Time{}, ErrNoSnapshot
	}
	if err != nil {
		return document.Document{}, time.Time{}, fmt.Errorf("ошибка чтения снимка: %w", err)
	}

	var doc document.Document
	if err := json.Unmarshal([]byte(body), &doc); err != nil {
		return document.Document{}, time.Time{}, fmt.Errorf("ошибка разбора снимка: %w", err)
	}
	return doc, savedAt, nil
}

func (c *SnapshotCache) Close() error {
	return c.db.Close()
}
