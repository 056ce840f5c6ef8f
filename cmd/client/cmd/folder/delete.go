package folder

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var DeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Удалить папку",
	Long: `Удаляет папку. Заметки не удаляются: они остаются в общем списке
без папки.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := sessionApp(cmd)
		if err != nil {
			return err
		}

		if err := app.Workspace().DeleteFolder(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("ошибка удаления: %w", err)
		}

		color.Green("✅ Папка удалена, заметки сохранены")
		return nil
	},
}
