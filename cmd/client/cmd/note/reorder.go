package note

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var ReorderCmd = &cobra.Command{
	Use:   "reorder <id> [id...]",
	Short: "Переупорядочить заметки",
	Long: `Закрепляет заданный порядок заметок.

Перечисленные заметки получат свежие метки изменения так, что список
latest-first воспроизведет указанный порядок. Неизвестные id
пропускаются.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := sessionApp(cmd)
		if err != nil {
			return err
		}

		if err := app.Workspace().Reorder(cmd.Context(), args); err != nil {
			return fmt.Errorf("ошибка переупорядочивания: %w", err)
		}

		color.Green("✅ Порядок сохранен")
		return nil
	},
}
