package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"notekeeper/internal/app/client/lock"
	"notekeeper/internal/domain/document"
	"notekeeper/internal/domain/note"
)

type testEnv struct {
	ws      *Workspace
	bridge  *fakeBridge
	engine  *lock.Engine
	ctl     *Controller
	notices []string
}

// newTestEnv поднимает контроллер с выключенным автосохранением
// (дебаунс в час) поверх fakeBridge.
func newTestEnv(t *testing.T, doc document.Document) *testEnv {
	t.Helper()
	env := &testEnv{engine: lock.NewEngine(slog.Default())}
	env.ws, env.bridge = newTestWorkspace(t, doc)
	env.ctl = NewController(env.ws, env.engine, time.Hour, func(msg string) {
		env.notices = append(env.notices, msg)
	}, slog.Default())
	t.Cleanup(env.ctl.Close)
	return env
}

func (e *testEnv) lockedNote(t *testing.T, title, content, password string) note.Note {
	t.Helper()
	n := note.New("")
	n.Title = title
	require.NoError(t, e.engine.Lock(&n, content, password, ""))
	return n
}

func TestControllerSelectLockedNote(t *testing.T) {
	env := newTestEnv(t, document.Document{})
	locked := env.lockedNote(t, "Секрет", "Hello", "secret1")
	env.bridge.doc.Notes = append(env.bridge.doc.Notes, locked)
	require.NoError(t, env.ws.Load(context.Background()))

	err := env.ctl.Select(locked.ID)
	assert.ErrorIs(t, err, ErrPasswordRequired)

	_, ok := env.ctl.CurrentNote()
	assert.False(t, ok)
}

func TestControllerTempUnlockRevokedOnSwitch(t *testing.T) {
	other := note.New("")
	other.Title = "Обычная"
	other.Content = "открытый текст"

	env := newTestEnv(t, document.Document{Notes: []note.Note{other}})
	locked := env.lockedNote(t, "Секрет", "Hello", "secret1")
	env.bridge.doc.Notes = append(env.bridge.doc.Notes, locked)
	require.NoError(t, env.ws.Load(context.Background()))

	require.NoError(t, env.ctl.UnlockView(locked.ID, "secret1"))
	assert.Equal(t, "Hello", env.ctl.ActiveContent())

	state, err := env.ctl.State(locked.ID)
	require.NoError(t, err)
	assert.Equal(t, lock.StateTemporarilyUnlocked, state)

	// Переключение гасит временную сессию и уведомляет пользователя.
	require.NoError(t, env.ctl.Select(other.ID))
	require.NotEmpty(t, env.notices)

	state, err = env.ctl.State(locked.ID)
	require.NoError(t, err)
	assert.Equal(t, lock.StateLocked, state)

	// Возврат к заметке снова требует пароль.
	err = env.ctl.Select(locked.ID)
	assert.ErrorIs(t, err, ErrPasswordRequired)
}

func TestControllerSaveNoop(t *testing.T) {
	n := note.New("")
	n.Title = "Без изменений"
	n.Content = "текст"

	env := newTestEnv(t, document.Document{Notes: []note.Note{n}})
	require.NoError(t, env.ctl.Select(n.ID))

	// Совпадающее состояние не ходит в хранилище.
	require.NoError(t, env.ctl.Save(context.Background()))
	assert.Equal(t, 0, env.bridge.persists)

	require.NoError(t, env.ctl.SetContent("новый текст"))
	require.NoError(t, env.ctl.Flush(context.Background()))
	assert.Equal(t, 1, env.bridge.persists)

	got, ok := env.ws.Note(n.ID)
	require.True(t, ok)
	assert.Equal(t, "новый текст", got.Content)
}

func TestControllerTempSessionSavesOnlyTitle(t *testing.T) {
	env := newTestEnv(t, document.Document{})
	locked := env.lockedNote(t, "Секрет", "Hello", "secret1")
	envelope := locked.EncryptedContent
	env.bridge.doc.Notes = append(env.bridge.doc.Notes, locked)
	require.NoError(t, env.ws.Load(context.Background()))

	require.NoError(t, env.ctl.UnlockView(locked.ID, "secret1"))
	require.NoError(t, env.ctl.SetContent("правка в сессии"))
	require.NoError(t, env.ctl.SetTitle("Новый заголовок"))
	require.NoError(t, env.ctl.Flush(context.Background()))

	got, ok := env.ws.Note(locked.ID)
	require.True(t, ok)

	// Заголовок ушел, открытый текст из сессии - нет.
	assert.Equal(t, "Новый заголовок", got.Title)
	assert.True(t, got.IsLocked)
	assert.Empty(t, got.Content)
	assert.Equal(t, envelope, got.EncryptedContent)

	// Правка видна внутри сессии.
	assert.Equal(t, "правка в сессии", env.ctl.ActiveContent())
}

func TestControllerAutosaveDebounce(t *testing.T) {
	n := note.New("")
	n.Title = "Автосохранение"
	n.Content = "старое"

	ws, bridge := newTestWorkspace(t, document.Document{Notes: []note.Note{n}})
	engine := lock.NewEngine(slog.Default())
	ctl := NewController(ws, engine, 30*time.Millisecond, nil, slog.Default())
	t.Cleanup(ctl.Close)

	require.NoError(t, ctl.Select(n.ID))
	require.NoError(t, ctl.SetContent("первая правка"))
	require.NoError(t, ctl.SetContent("вторая правка"))

	// Дебаунс: две правки подряд дают одну запись.
	assert.Eventually(t, func() bool {
		return bridge.persists == 1
	}, time.Second, 10*time.Millisecond)

	got, ok := ws.Note(n.ID)
	require.True(t, ok)
	assert.Equal(t, "вторая правка", got.Content)
}

func TestControllerLockCurrent(t *testing.T) {
	n := note.New("")
	n.Title = "Открытая"
	n.Content = "приватный текст"

	env := newTestEnv(t, document.Document{Notes: []note.Note{n}})
	require.NoError(t, env.ctl.Select(n.ID))

	require.NoError(t, env.ctl.LockCurrent(context.Background(), "secret1", "подсказка"))

	got, ok := env.ws.Note(n.ID)
	require.True(t, ok)
	assert.True(t, got.IsLocked)
	assert.Empty(t, got.Content)
	assert.NotEmpty(t, got.EncryptedContent)
	assert.Equal(t, "подсказка", got.PasswordHint)
}

func TestControllerUnlockPermanentPersists(t *testing.T) {
	env := newTestEnv(t, document.Document{})
	locked := env.lockedNote(t, "Секрет", "Hello", "secret1")
	env.bridge.doc.Notes = append(env.bridge.doc.Notes, locked)
	require.NoError(t, env.ws.Load(context.Background()))

	require.NoError(t, env.ctl.UnlockPermanent(context.Background(), locked.ID, "secret1"))

	got, ok := env.ws.Note(locked.ID)
	require.True(t, ok)
	assert.False(t, got.IsLocked)
	assert.Equal(t, "Hello", got.Content)
	assert.Empty(t, got.EncryptedContent)
	assert.Equal(t, 1, env.bridge.persists)
}

func TestControllerDeleteLockedNote(t *testing.T) {
	env := newTestEnv(t, document.Document{})
	locked := env.lockedNote(t, "Секрет", "Hello", "secret1")
	env.bridge.doc.Notes = append(env.bridge.doc.Notes, locked)
	require.NoError(t, env.ws.Load(context.Background()))
	ctx := context.Background()

	err := env.ctl.DeleteNote(ctx, locked.ID, "")
	assert.ErrorIs(t, err, ErrPasswordRequired)

	err = env.ctl.DeleteNote(ctx, locked.ID, "wrong")
	assert.ErrorIs(t, err, lock.ErrIncorrectPassword)

	require.NoError(t, env.ctl.DeleteNote(ctx, locked.ID, "secret1"))
	_, ok := env.ws.Note(locked.ID)
	assert.False(t, ok)

	// Удаление несуществующей - no-op.
	require.NoError(t, env.ctl.DeleteNote(ctx, locked.ID, ""))
}

func TestControllerEditLockedWithoutSession(t *testing.T) {
	env := newTestEnv(t, document.Document{})
	locked := env.lockedNote(t, "Секрет", "Hello", "secret1")
	env.bridge.doc.Notes = append(env.bridge.doc.Notes, locked)
	require.NoError(t, env.ws.Load(context.Background()))

	// Без активной заметки и без сессии правок нет.
	err := env.ctl.SetContent("x")
	assert.ErrorIs(t, err, ErrPasswordRequired)
}
