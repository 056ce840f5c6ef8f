package note

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var DeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Удалить заметку",
	Long: `Удаляет заметку без корзины.

Для заблокированной заметки удаление требует подтверждения паролем.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := sessionApp(cmd)
		if err != nil {
			return err
		}

		id := args[0]
		password := ""
		if n, ok := app.Workspace().Note(id); ok && n.IsLocked {
			if n.PasswordHint != "" {
				fmt.Printf("Подсказка: %s\n", n.PasswordHint)
			}
			password, err = promptPassword("Пароль заметки: ")
			if err != nil {
				return err
			}
		}

		if err := app.Controller().DeleteNote(cmd.Context(), id, password); err != nil {
			return fmt.Errorf("ошибка удаления: %w", err)
		}

		color.Green("✅ Заметка удалена")
		return nil
	},
}
