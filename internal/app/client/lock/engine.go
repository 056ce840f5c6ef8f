// internal/app/client/lock/engine.go
package lock

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/exp/slog"

	"notekeeper/internal/app/client/crypto"
	"notekeeper/internal/domain/note"
)

// MaxAttempts - порог отказов до блокировки дальнейших попыток.
// Счетчик живет только в памяти процесса и сбрасывается рестартом.
const MaxAttempts = 5

var (
	ErrEmptyPassword      = errors.New("password is empty")
	ErrHintEqualsPassword = errors.New("hint must not match the password")
	ErrIncorrectPassword  = errors.New("incorrect password")
	ErrTooManyAttempts    = errors.New("too many incorrect attempts")
	ErrNotLocked          = errors.New("note is not locked")
	ErrAlreadyLocked      = errors.New("note is already locked")
)

// Mode определяет, что происходит с заметкой после успешной расшифровки.
type Mode string

const (
	// ModeView - временная сессия просмотра, запись не меняется.
	ModeView Mode = "view"
	// ModePermanent - заметка переписывается открытым текстом.
	ModePermanent Mode = "permanent"
	// ModeDelete - подтверждение пароля перед удалением.
	ModeDelete Mode = "delete"
)

// State - состояние заметки с точки зрения протокола блокировки.
type State string

const (
	StateUnlocked            State = "unlocked"
	StateLocked              State = "locked"
	StateTemporarilyUnlocked State = "temporarily_unlocked"
)

// StateOf вычисляет состояние; hasSession - есть ли у заметки живая
// временная сессия просмотра.
func StateOf(n *note.Note, hasSession bool) State {
	switch {
	case !n.IsLocked:
		return StateUnlocked
	case hasSession:
		return StateTemporarilyUnlocked
	default:
		return StateLocked
	}
}

// Engine централизует протокол lock/unlock и учет неудачных попыток,
// чтобы ни один вызывающий не мог обойти троттлинг.
type Engine struct {
	attempts map[string]int
	log      *slog.Logger
	mu       sync.Mutex
}

func NewEngine(log *slog.Logger) *Engine {
	return &Engine{
		attempts: make(map[string]int),
		log:      log.With("component", "lock_engine"),
	}
}

// Lock шифрует содержимое и переводит заметку в Locked. Подсказка не
// должна совпадать с паролем (без учета регистра и пробелов по краям).
func (e *Engine) Lock(n *note.Note, content, password, hint string) error {
	if n.IsLocked {
		return ErrAlreadyLocked
	}
	if password == "" {
		return ErrEmptyPassword
	}

	hint = strings.TrimSpace(hint)
	if hint != "" && strings.EqualFold(hint, strings.TrimSpace(password)) {
		return ErrHintEqualsPassword
	}

	envelope, err := crypto.Encrypt(content, password)
	if err != nil {
		return fmt.Errorf("encrypt note: %w", err)
	}

	n.EncryptedContent = envelope
	n.Content = ""
	n.IsLocked = true
	n.PasswordHint = hint
	n.Touch()

	e.log.Info("note locked", "note_id", n.ID)
	return nil
}

// Unlock расшифровывает заметку и возвращает открытый текст. Достигнутый
// порог попыток отклоняет запрос до обращения к crypto. Каждый отказ
// увеличивает счетчик; успех его не сбрасывает.
func (e *Engine) Unlock(n *note.Note, password string, mode Mode) (string, error) {
	if !n.IsLocked {
		return "", ErrNotLocked
	}

	e.mu.Lock()
	blocked := e.attempts[n.ID] >= MaxAttempts
	e.mu.Unlock()
	if blocked {
		e.log.Warn("unlock rejected, attempt limit reached", "note_id", n.ID)
		return "", ErrTooManyAttempts
	}

	plaintext, err := crypto.Decrypt(n.EncryptedContent, password)
	if err != nil {
		e.mu.Lock()
		e.attempts[n.ID]++
		count := e.attempts[n.ID]
		e.mu.Unlock()

		e.log.Info("unlock failed", "note_id", n.ID, "attempts", count)
		return "", ErrIncorrectPassword
	}

	if mode == ModePermanent {
		n.Content = plaintext
		n.IsLocked = false
		n.EncryptedContent = ""
		n.PasswordHint = ""
		n.Touch()
		e.log.Info("note permanently unlocked", "note_id", n.ID)
	}

	return plaintext, nil
}

// Attempts возвращает число неудачных попыток для заметки.
func (e *Engine) Attempts(noteID string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.attempts[noteID]
}
