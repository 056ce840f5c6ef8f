package folder

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var RenameCmd = &cobra.Command{
	Use:   "rename <id> <name>",
	Short: "Переименовать папку",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := sessionApp(cmd)
		if err != nil {
			return err
		}

		if err := app.Workspace().RenameFolder(cmd.Context(), args[0], args[1]); err != nil {
			return fmt.Errorf("ошибка переименования: %w", err)
		}

		color.Green("✅ Папка переименована")
		return nil
	},
}
