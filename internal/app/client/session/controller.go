package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/exp/slog"

	"notekeeper/internal/app/client/lock"
	"notekeeper/internal/domain/note"
)

// ErrPasswordRequired - операция уперлась в заблокированную заметку,
// вызывающий должен пройти через разблокировку.
var ErrPasswordRequired = errors.New("note is locked, password required")

const autoSaveTimeout = 10 * time.Second

// Notifier доставляет пользователю служебные уведомления.
type Notifier func(message string)

// tempSession - временная разблокировка одной заметки. Держит открытый
// текст только в памяти; запись заметки остается зашифрованной.
type tempSession struct {
	noteID  string
	content string
}

// Controller ведет активную заметку: теневые копии заголовка и
// содержимого редактора, временную сессию разблокировки и дебаунс
// автосохранения. Переключение заметок снимает временную сессию до
// того, как новое содержимое станет видно.
type Controller struct {
	ws     *Workspace
	engine *lock.Engine
	log    *slog.Logger
	notify Notifier

	saveDelay time.Duration

	mu            sync.Mutex
	currentNoteID string
	title         string
	editorContent string
	temp          *tempSession
	timer         *time.Timer
}

func NewController(ws *Workspace, engine *lock.Engine, saveDelay time.Duration, notify Notifier, log *slog.Logger) *Controller {
	if notify == nil {
		notify = func(string) {}
	}
	return &Controller{
		ws:        ws,
		engine:    engine,
		saveDelay: saveDelay,
		notify:    notify,
		log:       log.With("component", "session_controller"),
	}
}

// CurrentNote возвращает активную заметку, если она есть.
func (c *Controller) CurrentNote() (note.Note, bool) {
	c.mu.Lock()
	id := c.currentNoteID
	c.mu.Unlock()

	if id == "" {
		return note.Note{}, false
	}
	return c.ws.Note(id)
}

// State сообщает состояние заметки в протоколе блокировки.
func (c *Controller) State(id string) (lock.State, error) {
	n, ok := c.ws.Note(id)
	if !ok {
		return "", note.ErrNotFound
	}

	c.mu.Lock()
	hasSession := c.temp != nil && c.temp.noteID == id
	c.mu.Unlock()

	return lock.StateOf(&n, hasSession), nil
}

// Select делает заметку активной. Заблокированная заметка не
// активируется - вызывающий получает ErrPasswordRequired и идет через
// UnlockView. Смена активной заметки гасит чужую временную сессию
// строго до загрузки нового содержимого.
func (c *Controller) Select(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if id == c.currentNoteID {
		return nil
	}

	n, ok := c.ws.Note(id)
	if !ok {
		return note.ErrNotFound
	}
	if n.IsLocked {
		return ErrPasswordRequired
	}

	c.activate(n, n.Content)
	return nil
}

// activate переключает активную заметку. Вызывается с взятым c.mu.
// Сброс временной сессии идет первым: открытый текст предыдущей
// заметки исчезает до того, как новая станет видимой.
func (c *Controller) activate(n note.Note, content string) {
	if c.temp != nil && c.temp.noteID != n.ID {
		revoked := c.temp.noteID
		c.temp = nil
		c.notify("Note was re-locked for security. Enter password to unlock again.")
		c.log.Info("temporary unlock revoked", "note_id", revoked)
	}

	c.stopTimer()
	c.currentNoteID = n.ID
	c.title = n.Title
	c.editorContent = content
}

// UnlockView открывает временную сессию просмотра и активирует заметку.
func (c *Controller) UnlockView(id, password string) error {
	n, ok := c.ws.Note(id)
	if !ok {
		return note.ErrNotFound
	}

	plaintext, err := c.engine.Unlock(&n, password, lock.ModeView)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.activate(n, plaintext)
	c.temp = &tempSession{noteID: id, content: plaintext}
	return nil
}

// UnlockPermanent расшифровывает заметку насовсем и сразу сохраняет.
func (c *Controller) UnlockPermanent(ctx context.Context, id, password string) error {
	n, ok := c.ws.Note(id)
	if !ok {
		return note.ErrNotFound
	}

	if _, err := c.engine.Unlock(&n, password, lock.ModePermanent); err != nil {
		return err
	}

	if err := c.ws.SaveNote(ctx, n); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.temp != nil && c.temp.noteID == id {
		c.temp = nil
	}
	if c.currentNoteID == id {
		c.editorContent = n.Content
		c.title = n.Title
	}
	return nil
}

// LockCurrent шифрует активную заметку ее текущим содержимым.
func (c *Controller) LockCurrent(ctx context.Context, password, hint string) error {
	c.mu.Lock()
	id := c.currentNoteID
	content := c.editorContent
	title := c.title
	if c.temp != nil && c.temp.noteID == id {
		content = c.temp.content
	}
	c.mu.Unlock()

	if id == "" {
		return note.ErrNotFound
	}
	n, ok := c.ws.Note(id)
	if !ok {
		return note.ErrNotFound
	}

	n.Title = title
	if err := c.engine.Lock(&n, content, password, hint); err != nil {
		return err
	}

	if err := c.ws.SaveNote(ctx, n); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopTimer()
	if c.temp != nil && c.temp.noteID == id {
		c.temp = nil
	}
	c.editorContent = ""
	return nil
}

// CreateNote создает заметку и сразу делает ее активной.
func (c *Controller) CreateNote(ctx context.Context) (note.Note, error) {
	n, err := c.ws.CreateNote(ctx)
	if err != nil {
		return note.Note{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.activate(n, n.Content)
	return n, nil
}

// DeleteNote удаляет заметку; для заблокированной пароль обязателен.
// Отсутствующий id - no-op.
func (c *Controller) DeleteNote(ctx context.Context, id, password string) error {
	n, ok := c.ws.Note(id)
	if !ok {
		return nil
	}

	if n.IsLocked {
		if password == "" {
			return ErrPasswordRequired
		}
		if _, err := c.engine.Unlock(&n, password, lock.ModeDelete); err != nil {
			return err
		}
	}

	if err := c.ws.DeleteNote(ctx, id); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.temp != nil && c.temp.noteID == id {
		c.temp = nil
	}
	if c.currentNoteID == id {
		c.stopTimer()
		c.currentNoteID = ""
		c.title = ""
		c.editorContent = ""
	}
	return nil
}

// SetTitle меняет теневой заголовок и взводит автосохранение.
func (c *Controller) SetTitle(title string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.editableLocked() {
		return ErrPasswordRequired
	}
	c.title = title
	c.schedule()
	return nil
}

// SetContent меняет содержимое редактора и взводит автосохранение.
// При временной сессии открытый текст живет только в ней.
func (c *Controller) SetContent(html string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.editableLocked() {
		return ErrPasswordRequired
	}
	c.editorContent = html
	if c.temp != nil && c.temp.noteID == c.currentNoteID {
		c.temp.content = html
	}
	c.schedule()
	return nil
}

// editableLocked - можно ли редактировать активную заметку.
// Вызывается с взятым c.mu.
func (c *Controller) editableLocked() bool {
	if c.currentNoteID == "" {
		return false
	}
	n, ok := c.ws.Note(c.currentNoteID)
	if !ok {
		return false
	}
	if !n.IsLocked {
		return true
	}
	return c.temp != nil && c.temp.noteID == c.currentNoteID
}

// Save сохраняет активную заметку, если она изменилась. Совпадение
// заголовка и содержимого с сохраненным состоянием - no-op без похода
// в хранилище. Во временной сессии открытый текст не сохраняется:
// запись остается зашифрованной, уходит только заголовок.
func (c *Controller) Save(ctx context.Context) error {
	c.mu.Lock()
	id := c.currentNoteID
	title := c.title
	content := c.editorContent
	inTemp := c.temp != nil && c.temp.noteID == id
	c.mu.Unlock()

	if id == "" {
		return nil
	}
	n, ok := c.ws.Note(id)
	if !ok {
		return nil
	}

	titleChanged := title != n.Title
	contentChanged := !inTemp && !n.IsLocked && content != n.Content
	if !titleChanged && !contentChanged {
		return nil
	}

	n.Title = title
	if contentChanged {
		n.Content = content
	}
	n.Touch()

	return c.ws.SaveNote(ctx, n)
}

// schedule перевзводит таймер дебаунса. Вызывается с взятым c.mu.
func (c *Controller) schedule() {
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.saveDelay, c.autoSave)
}

func (c *Controller) stopTimer() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Controller) autoSave() {
	ctx, cancel := context.WithTimeout(context.Background(), autoSaveTimeout)
	defer cancel()

	if err := c.Save(ctx); err != nil {
		c.log.Error("autosave failed", "error", err)
		c.notify("Autosave failed. Your latest changes are not synced.")
	}
}

// Flush немедленно сохраняет отложенные изменения и снимает таймер.
func (c *Controller) Flush(ctx context.Context) error {
	c.mu.Lock()
	c.stopTimer()
	c.mu.Unlock()

	return c.Save(ctx)
}

// ActiveContent - текст активной заметки, доступный для чтения.
// Для заблокированной заметки без сессии возвращает пусто.
func (c *Controller) ActiveContent() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.temp != nil && c.temp.noteID == c.currentNoteID {
		return c.temp.content
	}
	if c.editableLocked() {
		return c.editorContent
	}
	return ""
}

// WordCount считает слова в видимом содержимом активной заметки.
func (c *Controller) WordCount() int {
	return note.WordCount(c.ActiveContent())
}

// CharCount считает символы в видимом содержимом активной заметки.
func (c *Controller) CharCount() int {
	return note.CharCount(c.ActiveContent())
}

// Close гасит таймер автосохранения.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopTimer()
}
