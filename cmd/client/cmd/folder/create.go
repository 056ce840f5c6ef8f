package folder

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var createColor string

var CreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Создать папку",
	Long:  `Создает папку. Имя уникально без учета регистра.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := sessionApp(cmd)
		if err != nil {
			return err
		}

		f, err := app.Workspace().CreateFolder(cmd.Context(), args[0], createColor)
		if err != nil {
			return fmt.Errorf("ошибка создания папки: %w", err)
		}

		color.Green("✅ Папка создана")
		fmt.Printf("ID: %s\n", f.ID)
		return nil
	},
}

func init() {
	CreateCmd.Flags().StringVar(&createColor, "color", "", "цвет папки")
}
