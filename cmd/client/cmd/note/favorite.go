package note

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var FavoriteCmd = &cobra.Command{
	Use:   "favorite <id>",
	Short: "Переключить избранное",
	Long:  `Переключает флаг избранного. Работает и для заблокированных заметок.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := sessionApp(cmd)
		if err != nil {
			return err
		}

		if err := app.Workspace().ToggleFavorite(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("ошибка переключения: %w", err)
		}

		if n, ok := app.Workspace().Note(args[0]); ok && n.IsFavorite {
			color.Cyan("★ Добавлено в избранное")
		} else {
			fmt.Println("Убрано из избранного")
		}
		return nil
	},
}
