package store

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"

	"notekeeper/internal/domain/document"
)

// ErrStoreUnavailable - запись в удаленное хранилище не прошла. Ошибка
// восстановимая: состояние в памяти не тронуто, пользователь может
// повторить действие. Автоматических ретраев нет.
var ErrStoreUnavailable = errors.New("document store unavailable")

// RemoteStore - удаленное пер-пользовательское хранилище документа.
// Частичных обновлений нет: каждая запись - полный снимок.
type RemoteStore interface {
	Read(ctx context.Context) (document.Document, error)
	Write(ctx context.Context, doc document.Document) (document.Document, error)
}

// Bridge связывает коллекции в памяти с удаленным хранилищем и ведет
// офлайн-кэш последнего удачного состояния.
type Bridge struct {
	remote RemoteStore
	cache  *SnapshotCache
	log    *slog.Logger
}

// NewBridge создает мост; cache может быть nil, тогда офлайн-резерва нет.
func NewBridge(remote RemoteStore, cache *SnapshotCache, log *slog.Logger) *Bridge {
	return &Bridge{
		remote: remote,
		cache:  cache,
		log:    log.With("component", "store_bridge"),
	}
}

// Load читает документ с сервера; при недоступности сервера отдает
// последний локальный снимок.
func (b *Bridge) Load(ctx context.Context) (document.Document, error) {
	doc, err := b.remote.Read(ctx)
	if err == nil {
		b.saveSnapshot(doc)
		return doc, nil
	}

	b.log.Warn("сервер недоступен, пробуем локальный снимок", "error", err)

	if b.cache != nil {
		cached, savedAt, cerr := b.cache.Load()
		if cerr == nil {
			b.log.Info("документ загружен из кэша", "saved_at", savedAt)
			return cached, nil
		}
	}

	return document.Document{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}

// Persist пишет полный документ и возвращает серверное эхо. Вызывающий
// заменяет им свое состояние только при успехе.
func (b *Bridge) Persist(ctx context.Context, doc document.Document) (document.Document, error) {
	stored, err := b.remote.Write(ctx, doc)
	if err != nil {
		b.log.Error("persist failed", "error", err)
		return document.Document{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	b.saveSnapshot(stored)
	return stored, nil
}

func (b *Bridge) saveSnapshot(doc document.Document) {
	if b.cache == nil {
		return
	}
	if err := b.cache.Save(doc); err != nil {
		// Кэш не критичен, ошибка не мешает основному пути.
		b.log.Warn("не удалось сохранить снимок", "error", err)
	}
}
