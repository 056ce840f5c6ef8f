package note

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"notekeeper/cmd/client/cmd/types"
	"notekeeper/internal/app/client"
)

// NoteCmd - родительская команда для всех операций с заметками
var NoteCmd = &cobra.Command{
	Use:   "note",
	Short: "Управление заметками",
	Long:  `Создание, просмотр, редактирование, блокировка и удаление заметок.`,
}

// sessionApp достает приложение из контекста и загружает документ.
func sessionApp(cmd *cobra.Command) (*client.App, error) {
	app, _ := cmd.Context().Value(types.ClientAppKey).(*client.App)
	if app == nil {
		return nil, fmt.Errorf("приложение не инициализировано")
	}
	if err := app.OpenSession(cmd.Context()); err != nil {
		return nil, err
	}
	return app, nil
}

func promptPassword(label string) (string, error) {
	fmt.Print(label)
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return "", fmt.Errorf("ошибка чтения пароля: %w", err)
	}
	fmt.Println()
	return string(password), nil
}

func truncate(s string, length int) string {
	runes := []rune(s)
	if len(runes) <= length {
		return s
	}
	return string(runes[:length-1]) + "…"
}
