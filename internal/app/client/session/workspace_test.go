package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"notekeeper/internal/domain/document"
	"notekeeper/internal/domain/folder"
	"notekeeper/internal/domain/note"
)

var errBridgeDown = errors.New("bridge down")

// fakeBridge подменяет удаленное хранилище в тестах.
type fakeBridge struct {
	doc      document.Document
	failNext bool
	persists int
}

func (f *fakeBridge) Load(_ context.Context) (document.Document, error) {
	return f.doc.Clone(), nil
}

func (f *fakeBridge) Persist(_ context.Context, doc document.Document) (document.Document, error) {
	if f.failNext {
		f.failNext = false
		return document.Document{}, errBridgeDown
	}
	f.persists++
	f.doc = doc.Clone()
	return f.doc.Clone(), nil
}

func newTestWorkspace(t *testing.T, doc document.Document) (*Workspace, *fakeBridge) {
	t.Helper()
	bridge := &fakeBridge{doc: doc}
	ws := NewWorkspace(bridge, slog.Default())
	require.NoError(t, ws.Load(context.Background()))
	return ws, bridge
}

func seedNote(title string, updated time.Time) note.Note {
	n := note.New("")
	n.Title = title
	n.UpdatedAt = updated
	return n
}

func TestWorkspaceCreateNote(t *testing.T) {
	base := time.Now()
	existing := seedNote("Старая", base)
	ws, bridge := newTestWorkspace(t, document.Document{Notes: []note.Note{existing}})

	n, err := ws.CreateNote(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Untitled Note", n.Title)
	assert.Empty(t, n.FolderID)

	notes := ws.Notes()
	require.Len(t, notes, 2)
	// Новая заметка встает в голову списка.
	assert.Equal(t, n.ID, notes[0].ID)
	assert.Equal(t, 1, bridge.persists)
}

func TestWorkspaceCreateNoteInSelectedFolder(t *testing.T) {
	f, err := folder.New("Работа", "")
	require.NoError(t, err)
	ws, _ := newTestWorkspace(t, document.Document{Folders: []folder.Folder{f}})

	ws.SelectFolder(true, f.ID)

	n, err := ws.CreateNote(context.Background())
	require.NoError(t, err)
	assert.Equal(t, f.ID, n.FolderID)
}

func TestWorkspacePersistFailureKeepsState(t *testing.T) {
	existing := seedNote("Единственная", time.Now())
	ws, bridge := newTestWorkspace(t, document.Document{Notes: []note.Note{existing}})

	before := ws.Notes()
	bridge.failNext = true

	_, err := ws.CreateNote(context.Background())
	require.Error(t, err)

	// Отказ записи не трогает состояние в памяти.
	assert.Equal(t, before, ws.Notes())
	assert.Equal(t, 0, bridge.persists)
}

func TestWorkspaceDeleteNote(t *testing.T) {
	n := seedNote("Лишняя", time.Now())
	ws, bridge := newTestWorkspace(t, document.Document{Notes: []note.Note{n}})

	require.NoError(t, ws.DeleteNote(context.Background(), n.ID))
	assert.Empty(t, ws.Notes())

	// Повторное удаление - no-op без похода в хранилище.
	require.NoError(t, ws.DeleteNote(context.Background(), n.ID))
	assert.Equal(t, 1, bridge.persists)
}

func TestWorkspaceReorder(t *testing.T) {
	base := time.Now()
	n1 := seedNote("N1", base.Add(-3*time.Minute))
	n2 := seedNote("N2", base.Add(-2*time.Minute))
	n3 := seedNote("N3", base.Add(-1*time.Minute))
	ws, _ := newTestWorkspace(t, document.Document{Notes: []note.Note{n1, n2, n3}})

	require.NoError(t, ws.Reorder(context.Background(), []string{n3.ID, n1.ID, n2.ID}))

	// Сортировка latest-first воспроизводит заданный порядок.
	notes := ws.Visible(note.ListQuery{})
	require.Len(t, notes, 3)
	assert.Equal(t, n3.ID, notes[0].ID)
	assert.Equal(t, n1.ID, notes[1].ID)
	assert.Equal(t, n2.ID, notes[2].ID)
}

func TestWorkspaceReorderSkipsUnknownIDs(t *testing.T) {
	n1 := seedNote("N1", time.Now())
	ws, _ := newTestWorkspace(t, document.Document{Notes: []note.Note{n1}})

	require.NoError(t, ws.Reorder(context.Background(), []string{"missing", n1.ID}))
	assert.Len(t, ws.Notes(), 1)
}

func TestWorkspaceTags(t *testing.T) {
	n := seedNote("С тегами", time.Now())
	ws, bridge := newTestWorkspace(t, document.Document{Notes: []note.Note{n}})
	ctx := context.Background()

	require.NoError(t, ws.AddTag(ctx, n.ID, "work"))

	// Дубликат без учета регистра отклоняется до записи.
	err := ws.AddTag(ctx, n.ID, "WORK")
	assert.ErrorIs(t, err, note.ErrDuplicateTag)
	assert.Equal(t, 1, bridge.persists)

	got, ok := ws.Note(n.ID)
	require.True(t, ok)
	assert.Equal(t, []string{"work"}, got.Tags)

	require.NoError(t, ws.RemoveTag(ctx, n.ID, "work"))
	got, _ = ws.Note(n.ID)
	assert.Empty(t, got.Tags)
}

func TestWorkspaceFolders(t *testing.T) {
	ws, _ := newTestWorkspace(t, document.Document{})
	ctx := context.Background()

	f, err := ws.CreateFolder(ctx, "Работа", "#ff0000")
	require.NoError(t, err)

	_, err = ws.CreateFolder(ctx, "  работа ", "")
	assert.ErrorIs(t, err, folder.ErrDuplicateName)

	require.NoError(t, ws.RenameFolder(ctx, f.ID, "Личное"))
	folders := ws.Folders()
	require.Len(t, folders, 1)
	assert.Equal(t, "Личное", folders[0].Name)

	err = ws.RenameFolder(ctx, "missing", "Другое")
	assert.ErrorIs(t, err, folder.ErrNotFound)
}

func TestWorkspaceDeleteFolderKeepsNotes(t *testing.T) {
	f, err := folder.New("Работа", "")
	require.NoError(t, err)

	n := note.New(f.ID)
	n.Title = "Внутри папки"

	ws, _ := newTestWorkspace(t, document.Document{
		Notes:   []note.Note{n},
		Folders: []folder.Folder{f},
	})
	ws.SelectFolder(true, f.ID)

	require.NoError(t, ws.DeleteFolder(context.Background(), f.ID))

	// Заметка жива, но отвязана от папки; выбор папки сброшен.
	got, ok := ws.Note(n.ID)
	require.True(t, ok)
	assert.Empty(t, got.FolderID)
	assert.Empty(t, ws.Folders())

	scoped, _ := ws.SelectedFolder()
	assert.False(t, scoped)
}

func TestWorkspaceVisibleSearch(t *testing.T) {
	base := time.Now()
	groceries := seedNote("Groceries", base.Add(-time.Minute))
	meeting := seedNote("Meeting notes", base)
	ws, _ := newTestWorkspace(t, document.Document{Notes: []note.Note{groceries, meeting}})

	found := ws.Visible(note.ListQuery{Search: "groc"})
	require.Len(t, found, 1)
	assert.Equal(t, groceries.ID, found[0].ID)

	// Поиск действует только при фильтре all.
	favs := ws.Visible(note.ListQuery{Filter: note.FilterFavorites, Search: "groc"})
	assert.Empty(t, favs)
}
