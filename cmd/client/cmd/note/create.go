package note

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	createTitle   string
	createContent string
	createFolder  string
)

var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Создать заметку",
	Long: `Создает новую заметку и делает ее активной.

Без флагов появляется пустая заметка "Untitled Note" в начале списка.
Флаг --folder помещает заметку в указанную папку.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := sessionApp(cmd)
		if err != nil {
			return err
		}

		if createFolder != "" {
			app.Workspace().SelectFolder(true, createFolder)
		}

		n, err := app.Controller().CreateNote(cmd.Context())
		if err != nil {
			return fmt.Errorf("ошибка создания заметки: %w", err)
		}

		if createTitle != "" {
			if err := app.Controller().SetTitle(createTitle); err != nil {
				return err
			}
		}
		if createContent != "" {
			if err := app.Controller().SetContent(createContent); err != nil {
				return err
			}
		}
		if createTitle != "" || createContent != "" {
			if err := app.Controller().Flush(cmd.Context()); err != nil {
				return err
			}
		}

		color.Green("✅ Заметка создана")
		fmt.Printf("ID: %s\n", n.ID)
		return nil
	},
}

func init() {
	CreateCmd.Flags().StringVarP(&createTitle, "title", "t", "", "заголовок заметки")
	CreateCmd.Flags().StringVarP(&createContent, "content", "c", "", "содержимое заметки")
	CreateCmd.Flags().StringVarP(&createFolder, "folder", "f", "", "идентификатор папки")
}
