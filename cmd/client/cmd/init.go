// cmd/client/cmd/init.go
package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"notekeeper/cmd/client/cmd/auth"
	"notekeeper/cmd/client/cmd/folder"
	"notekeeper/cmd/client/cmd/note"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Состояние клиента и соединения",
	RunE: func(cmd *cobra.Command, _ []string) error {
		fmt.Println("=== Notekeeper ===")
		fmt.Println()

		if app.IsAuthenticated() {
			color.Green("✓ Токен найден, вход выполнен")
		} else {
			color.Yellow("⚠ Вход не выполнен: notekeeper auth login")
		}

		fmt.Println("Проверка соединения с сервером...")
		if err := app.CheckConnection(); err != nil {
			color.Yellow("⚠ Сервер недоступен: %v", err)
			fmt.Println("Чтение возможно из локального снимка, запись недоступна.")
			return nil
		}
		color.Green("✓ Соединение с сервером установлено")

		if app.IsAuthenticated() {
			if err := app.OpenSession(cmd.Context()); err != nil {
				return err
			}
			fmt.Println(app.Workspace().Stats())
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)

	// Команды аутентификации
	rootCmd.AddCommand(auth.AuthCmd)
	auth.AuthCmd.AddCommand(auth.RegisterCmd)
	auth.AuthCmd.AddCommand(auth.LoginCmd)
	auth.AuthCmd.AddCommand(auth.LogoutCmd)

	// Команды работы с заметками
	rootCmd.AddCommand(note.NoteCmd)
	note.NoteCmd.AddCommand(note.CreateCmd)
	note.NoteCmd.AddCommand(note.ListCmd)
	note.NoteCmd.AddCommand(note.ShowCmd)
	note.NoteCmd.AddCommand(note.WriteCmd)
	note.NoteCmd.AddCommand(note.LockCmd)
	note.NoteCmd.AddCommand(note.UnlockCmd)
	note.NoteCmd.AddCommand(note.DeleteCmd)
	note.NoteCmd.AddCommand(note.TagCmd)
	note.NoteCmd.AddCommand(note.FavoriteCmd)
	note.NoteCmd.AddCommand(note.ReorderCmd)

	// Команды работы с папками
	rootCmd.AddCommand(folder.FolderCmd)
	folder.FolderCmd.AddCommand(folder.CreateCmd)
	folder.FolderCmd.AddCommand(folder.ListCmd)
	folder.FolderCmd.AddCommand(folder.RenameCmd)
	folder.FolderCmd.AddCommand(folder.DeleteCmd)

	rootCmd.AddCommand(activityCmd)
}
