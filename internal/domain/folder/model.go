package folder

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("folder not found")
	ErrEmptyName     = errors.New("folder name is empty")
	ErrDuplicateName = errors.New("folder name already in use")
)

// Folder группирует заметки. Вложенности нет.
type Folder struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func New(name, color string) (Folder, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Folder{}, ErrEmptyName
	}
	now := time.Now()
	return Folder{
		ID:        uuid.New().String(),
		Name:      name,
		Color:     color,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (f *Folder) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	f.Name = name
	f.UpdatedAt = time.Now()
	return nil
}

// NameTaken проверяет занятость имени без учета регистра; excludeID
// позволяет папке сохранить собственное имя при переименовании.
func NameTaken(folders []Folder, name, excludeID string) bool {
	name = strings.TrimSpace(name)
	for _, f := range folders {
		if f.ID != excludeID && strings.EqualFold(f.Name, name) {
			return true
		}
	}
	return false
}
