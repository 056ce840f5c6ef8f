package note

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxTagLength - предел длины тега в символах.
const MaxTagLength = 24

// Note - единица контента. Ровно одно из полей Content и
// EncryptedContent занято: открытый текст у свободной заметки,
// конверт - у заблокированной.
type Note struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Content          string    `json:"content,omitempty"`
	IsLocked         bool      `json:"isLocked"`
	EncryptedContent string    `json:"encryptedContent,omitempty"`
	PasswordHint     string    `json:"passwordHint,omitempty"`
	Tags             []string  `json:"tags"`
	FolderID         string    `json:"folderId,omitempty"`
	IsFavorite       bool      `json:"isFavorite"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// New создает пустую незаблокированную заметку в указанной папке.
// Пустой folderID означает "unfiled".
func New(folderID string) Note {
	now := time.Now()
	return Note{
		ID:        uuid.New().String(),
		Title:     "Untitled Note",
		Tags:      []string{},
		FolderID:  folderID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch обновляет метку последнего изменения.
func (n *Note) Touch() {
	n.UpdatedAt = time.Now()
}

// Validate проверяет инвариант блокировки.
func (n *Note) Validate() error {
	if n.ID == "" {
		return ErrInvalidNote
	}
	if n.IsLocked && n.Content != "" {
		return ErrInvalidNote
	}
	if !n.IsLocked && n.EncryptedContent != "" {
		return ErrInvalidNote
	}
	return nil
}

// AddTag добавляет тег. Сравнение на дубликат без учета регистра.
func (n *Note) AddTag(tag string) error {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return ErrEmptyTag
	}
	if len([]rune(tag)) > MaxTagLength {
		return ErrTagTooLong
	}
	for _, t := range n.Tags {
		if strings.EqualFold(t, tag) {
			return ErrDuplicateTag
		}
	}
	n.Tags = append(n.Tags, tag)
	n.Touch()
	return nil
}

// RemoveTag убирает тег по точному совпадению. Отсутствующий тег - no-op.
func (n *Note) RemoveTag(tag string) {
	for i, t := range n.Tags {
		if t == tag {
			n.Tags = append(n.Tags[:i], n.Tags[i+1:]...)
			n.Touch()
			return
		}
	}
}

// Filter ограничивает список по статусу.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterLocked    Filter = "locked"
	FilterUnlocked  Filter = "unlocked"
	FilterFavorites Filter = "favorites"
)

// ListQuery описывает видимый срез коллекции.
type ListQuery struct {
	// Scoped=true ограничивает папкой FolderID; пустой FolderID при
	// Scoped=true - только заметки вне папок.
	Scoped   bool
	FolderID string
	Filter   Filter
	// Search ищет подстроку заголовка без учета регистра. Действует
	// только при FilterAll.
	Search    string
	Ascending bool
}

// Visible отбирает и сортирует заметки по запросу.
func Visible(notes []Note, q ListQuery) []Note {
	if q.Filter == "" {
		q.Filter = FilterAll
	}
	search := strings.ToLower(strings.TrimSpace(q.Search))

	out := make([]Note, 0, len(notes))
	for _, n := range notes {
		if q.Scoped && n.FolderID != q.FolderID {
			continue
		}
		switch q.Filter {
		case FilterLocked:
			if !n.IsLocked {
				continue
			}
		case FilterUnlocked:
			if n.IsLocked {
				continue
			}
		case FilterFavorites:
			if !n.IsFavorite {
				continue
			}
		default:
			if search != "" && !strings.Contains(strings.ToLower(n.Title), search) {
				continue
			}
		}
		out = append(out, n)
	}

	SortByUpdated(out, q.Ascending)
	return out
}

// SortByUpdated сортирует по UpdatedAt; по умолчанию свежие первыми.
func SortByUpdated(notes []Note, ascending bool) {
	sort.SliceStable(notes, func(i, j int) bool {
		if ascending {
			return notes[i].UpdatedAt.Before(notes[j].UpdatedAt)
		}
		return notes[i].UpdatedAt.After(notes[j].UpdatedAt)
	})
}
