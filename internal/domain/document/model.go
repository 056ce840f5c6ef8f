package document

import (
	"fmt"
	"time"

	"notekeeper/internal/domain/folder"
	"notekeeper/internal/domain/note"
)

// Document - полное пер-пользовательское состояние. Хранилище оперирует
// только им целиком, частичных обновлений нет.
type Document struct {
	Notes   []note.Note     `json:"notes"`
	Folders []folder.Folder `json:"folders"`
}

// Clone возвращает глубокую копию: мутации копии не видны оригиналу.
func (d Document) Clone() Document {
	out := Document{
		Notes:   make([]note.Note, len(d.Notes)),
		Folders: make([]folder.Folder, len(d.Folders)),
	}
	copy(out.Notes, d.Notes)
	copy(out.Folders, d.Folders)
	for i := range out.Notes {
		out.Notes[i].Tags = append([]string(nil), d.Notes[i].Tags...)
	}
	return out
}

// Validate проверяет каждую заметку и уникальность идентификаторов.
func (d Document) Validate() error {
	noteIDs := make(map[string]struct{}, len(d.Notes))
	for i := range d.Notes {
		if err := d.Notes[i].Validate(); err != nil {
			return fmt.Errorf("note %q: %w", d.Notes[i].ID, err)
		}
		if _, ok := noteIDs[d.Notes[i].ID]; ok {
			return fmt.Errorf("note %q: %w", d.Notes[i].ID, ErrDuplicateID)
		}
		noteIDs[d.Notes[i].ID] = struct{}{}
	}

	folderIDs := make(map[string]struct{}, len(d.Folders))
	for i := range d.Folders {
		if d.Folders[i].ID == "" {
			return fmt.Errorf("folder without id: %w", ErrInvalidDocument)
		}
		if _, ok := folderIDs[d.Folders[i].ID]; ok {
			return fmt.Errorf("folder %q: %w", d.Folders[i].ID, ErrDuplicateID)
		}
		folderIDs[d.Folders[i].ID] = struct{}{}
	}
	return nil
}

// LastModified возвращает самый свежий UpdatedAt среди заметок.
func (d Document) LastModified() time.Time {
	var last time.Time
	for i := range d.Notes {
		if d.Notes[i].UpdatedAt.After(last) {
			last = d.Notes[i].UpdatedAt
		}
	}
	return last
}
