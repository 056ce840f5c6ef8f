package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/exp/slog"

	"notekeeper/internal/domain/document"
	"notekeeper/internal/domain/folder"
	"notekeeper/internal/domain/note"
)

// Bridge - мост к удаленному хранилищу документа.
type Bridge interface {
	Load(ctx context.Context) (document.Document, error)
	Persist(ctx context.Context, doc document.Document) (document.Document, error)
}

// Workspace владеет коллекциями заметок и папок в памяти. Все мутации
// идут через его методы: изменение строится на копии, уходит в хранилище
// целиком и принимается только вместе с серверным эхом. При отказе
// записи прежнее состояние остается нетронутым.
type Workspace struct {
	mu      sync.Mutex
	notes   []note.Note
	folders []folder.Folder

	// Выбранная папка ограничивает видимость и назначается новым заметкам.
	folderScoped bool
	folderID     string

	bridge Bridge
	log    *slog.Logger
}

func NewWorkspace(bridge Bridge, log *slog.Logger) *Workspace {
	return &Workspace{
		bridge: bridge,
		log:    log.With("component", "workspace"),
	}
}

// Load забирает документ из хранилища и делает его источником истины.
func (w *Workspace) Load(ctx context.Context) error {
	doc, err := w.bridge.Load(ctx)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.adopt(doc)
	return nil
}

// adopt заменяет состояние; заметки держим отсортированными latest-first.
func (w *Workspace) adopt(doc document.Document) {
	note.SortByUpdated(doc.Notes, false)
	w.notes = doc.Notes
	w.folders = doc.Folders
}

// persist пишет полный снимок и при успехе принимает эхо.
// Вызывается с уже взятым w.mu.
func (w *Workspace) persist(ctx context.Context, doc document.Document) error {
	stored, err := w.bridge.Persist(ctx, doc)
	if err != nil {
		return err
	}
	w.adopt(stored)
	return nil
}

// snapshot возвращает глубокую копию текущего состояния для мутации.
func (w *Workspace) snapshot() document.Document {
	return document.Document{Notes: w.notes, Folders: w.folders}.Clone()
}

// Notes returns a copy of the collection in its current order.
func (w *Workspace) Notes() []note.Note {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]note.Note(nil), w.notes...)
}

func (w *Workspace) Folders() []folder.Folder {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]folder.Folder(nil), w.folders...)
}

// Note ищет заметку по id.
func (w *Workspace) Note(id string) (note.Note, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.findNote(id)
}

func (w *Workspace) findNote(id string) (note.Note, bool) {
	for i := range w.notes {
		if w.notes[i].ID == id {
			return w.notes[i], true
		}
	}
	return note.Note{}, false
}

// Visible applies the folder scope and the query over the collection.
func (w *Workspace) Visible(q note.ListQuery) []note.Note {
	w.mu.Lock()
	defer w.mu.Unlock()
	return note.Visible(w.notes, q)
}

// SelectFolder устанавливает область видимости: scoped=false - все
// заметки, scoped=true с пустым id - только "unfiled".
func (w *Workspace) SelectFolder(scoped bool, folderID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.folderScoped = scoped
	w.folderID = folderID
}

func (w *Workspace) SelectedFolder() (bool, string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.folderScoped, w.folderID
}

// CreateNote вставляет новую пустую заметку в голову списка и сохраняет.
// Заметка попадает в выбранную папку, либо остается unfiled.
func (w *Workspace) CreateNote(ctx context.Context) (note.Note, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	folderID := ""
	if w.folderScoped {
		folderID = w.folderID
	}

	n := note.New(folderID)
	doc := w.snapshot()
	doc.Notes = append([]note.Note{n}, doc.Notes...)

	if err := w.persist(ctx, doc); err != nil {
		return note.Note{}, err
	}

	w.log.Info("note created", "note_id", n.ID)
	return n, nil
}

// SaveNote заменяет заметку с тем же id и сохраняет документ.
// Отсутствующий id - no-op.
func (w *Workspace) SaveNote(ctx context.Context, updated note.Note) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	doc := w.snapshot()
	found := false
	for i := range doc.Notes {
		if doc.Notes[i].ID == updated.ID {
			doc.Notes[i] = updated
			found = true
			break
		}
	}
	if !found {
		return nil
	}

	return w.persist(ctx, doc)
}

// DeleteNote удаляет заметку. Проверка пароля для заблокированных - зона
// ответственности контроллера, сюда приходят уже подтвержденные удаления.
func (w *Workspace) DeleteNote(ctx context.Context, id string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	doc := w.snapshot()
	notes := doc.Notes[:0]
	for _, n := range doc.Notes {
		if n.ID != id {
			notes = append(notes, n)
		}
	}
	if len(notes) == len(doc.Notes) {
		return nil
	}
	doc.Notes = notes

	if err := w.persist(ctx, doc); err != nil {
		return err
	}

	w.log.Info("note deleted", "note_id", id)
	return nil
}

// ToggleFavorite переключает флаг избранного независимо от блокировки.
func (w *Workspace) ToggleFavorite(ctx context.Context, id string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	doc := w.snapshot()
	for i := range doc.Notes {
		if doc.Notes[i].ID == id {
			doc.Notes[i].IsFavorite = !doc.Notes[i].IsFavorite
			doc.Notes[i].Touch()
			return w.persist(ctx, doc)
		}
	}
	return nil
}

// AddTag добавляет тег заметке. Ошибки валидации не трогают состояние.
func (w *Workspace) AddTag(ctx context.Context, id, tag string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	doc := w.snapshot()
	for i := range doc.Notes {
		if doc.Notes[i].ID == id {
			if err := doc.Notes[i].AddTag(tag); err != nil {
				return err
			}
			return w.persist(ctx, doc)
		}
	}
	return nil
}

// RemoveTag убирает тег по точному совпадению.
func (w *Workspace) RemoveTag(ctx context.Context, id, tag string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	doc := w.snapshot()
	for i := range doc.Notes {
		if doc.Notes[i].ID == id {
			doc.Notes[i].RemoveTag(tag)
			return w.persist(ctx, doc)
		}
	}
	return nil
}

// Reorder переписывает updatedAt видимого набора так, чтобы сортировка
// latest-first воспроизводила заданный порядок: первая заметка получает
// самую свежую метку, смещения в миллисекундах разрывают связки.
func (w *Workspace) Reorder(ctx context.Context, orderedIDs []string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	doc := w.snapshot()
	base := time.Now()

	byID := make(map[string]int, len(doc.Notes))
	for i := range doc.Notes {
		byID[doc.Notes[i].ID] = i
	}

	for pos, id := range orderedIDs {
		i, ok := byID[id]
		if !ok {
			continue
		}
		offset := time.Duration(len(orderedIDs)-1-pos) * time.Millisecond
		doc.Notes[i].UpdatedAt = base.Add(offset)
	}

	return w.persist(ctx, doc)
}

// CreateFolder создает папку с уникальным (без учета регистра) именем.
func (w *Workspace) CreateFolder(ctx context.Context, name, color string) (folder.Folder, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if folder.NameTaken(w.folders, name, "") {
		return folder.Folder{}, folder.ErrDuplicateName
	}

	f, err := folder.New(name, color)
	if err != nil {
		return folder.Folder{}, err
	}

	doc := w.snapshot()
	doc.Folders = append(doc.Folders, f)

	if err := w.persist(ctx, doc); err != nil {
		return folder.Folder{}, err
	}
	return f, nil
}

// RenameFolder требует новое непустое имя.
func (w *Workspace) RenameFolder(ctx context.Context, id, name string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if folder.NameTaken(w.folders, name, id) {
		return folder.ErrDuplicateName
	}

	doc := w.snapshot()
	for i := range doc.Folders {
		if doc.Folders[i].ID == id {
			if err := doc.Folders[i].Rename(name); err != nil {
				return err
			}
			return w.persist(ctx, doc)
		}
	}
	return folder.ErrNotFound
}

// DeleteFolder удаляет папку без каскада: заметки остаются и теряют
// только folderId. Если удалили выбранную папку, выбор сбрасывается.
func (w *Workspace) DeleteFolder(ctx context.Context, id string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	doc := w.snapshot()
	folders := doc.Folders[:0]
	for _, f := range doc.Folders {
		if f.ID != id {
			folders = append(folders, f)
		}
	}
	if len(folders) == len(doc.Folders) {
		return nil
	}
	doc.Folders = folders

	for i := range doc.Notes {
		if doc.Notes[i].FolderID == id {
			doc.Notes[i].FolderID = ""
		}
	}

	if err := w.persist(ctx, doc); err != nil {
		return err
	}

	if w.folderScoped && w.folderID == id {
		w.folderScoped = false
		w.folderID = ""
	}

	w.log.Info("folder deleted", "folder_id", id)
	return nil
}

// Stats - простая сводка для CLI.
func (w *Workspace) Stats() string {
	w.mu.Lock()
	defer w.mu.Unlock()

	locked := 0
	for i := range w.notes {
		if w.notes[i].IsLocked {
			locked++
		}
	}
	return fmt.Sprintf("%d notes (%d locked), %d folders", len(w.notes), locked, len(w.folders))
}
