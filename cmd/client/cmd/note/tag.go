package note

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var TagCmd = &cobra.Command{
	Use:   "tag <id> <add|remove> <tag>",
	Short: "Управление тегами заметки",
	Long: `Добавляет или убирает тег заметки.

Тег не длиннее 24 символов; дубликаты (без учета регистра) отклоняются.
Удаление работает по точному совпадению.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := sessionApp(cmd)
		if err != nil {
			return err
		}

		id, action, tag := args[0], args[1], args[2]

		switch action {
		case "add":
			if err := app.Workspace().AddTag(cmd.Context(), id, tag); err != nil {
				return fmt.Errorf("ошибка добавления тега: %w", err)
			}
			color.Green("✅ Тег добавлен")
		case "remove":
			if err := app.Workspace().RemoveTag(cmd.Context(), id, tag); err != nil {
				return fmt.Errorf("ошибка удаления тега: %w", err)
			}
			color.Green("✅ Тег удален")
		default:
			return fmt.Errorf("неизвестное действие: %s (ожидается add или remove)", action)
		}
		return nil
	},
}
