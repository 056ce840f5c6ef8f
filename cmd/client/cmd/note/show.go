package note

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"notekeeper/internal/app/client/session"
	"notekeeper/internal/domain/note"
)

var ShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Показать заметку",
	Long: `Выводит заметку целиком.

Для заблокированной заметки запрашивается пароль: открывается временная
сессия просмотра, сама запись остается зашифрованной. Сессия живет до
переключения на другую заметку.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := sessionApp(cmd)
		if err != nil {
			return err
		}

		id := args[0]
		ctl := app.Controller()

		err = ctl.Select(id)
		if errors.Is(err, session.ErrPasswordRequired) {
			n, _ := app.Workspace().Note(id)
			if n.PasswordHint != "" {
				fmt.Printf("Подсказка: %s\n", n.PasswordHint)
			}

			password, perr := promptPassword("Пароль заметки: ")
			if perr != nil {
				return perr
			}
			err = ctl.UnlockView(id, password)
		}
		if err != nil {
			return err
		}

		n, ok := ctl.CurrentNote()
		if !ok {
			return note.ErrNotFound
		}

		color.Cyan("=== %s ===", n.Title)
		if n.IsLocked {
			color.Yellow("🔒 Временная сессия: заметка снова запросит пароль после переключения")
		}
		if len(n.Tags) > 0 {
			fmt.Printf("Теги: %s\n", strings.Join(n.Tags, ", "))
		}
		fmt.Printf("Обновлено: %s\n", n.UpdatedAt.Format("2006-01-02 15:04"))
		fmt.Println()
		fmt.Println(note.PlainText(ctl.ActiveContent()))
		fmt.Println()
		fmt.Printf("Слов: %d | Символов: %d\n", ctl.WordCount(), ctl.CharCount())
		return nil
	},
}
