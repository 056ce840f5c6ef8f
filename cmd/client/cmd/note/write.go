package note

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"notekeeper/internal/app/client/session"
)

var (
	writeTitle string
	writeFile  string
)

var WriteCmd = &cobra.Command{
	Use:   "write <id>",
	Short: "Записать содержимое заметки",
	Long: `Заменяет содержимое заметки текстом из файла (--file) или stdin.

Для заблокированной заметки запрашивается пароль. Во временной сессии
новое содержимое не сохраняется на сервере - только заголовок; чтобы
редактировать содержимое насовсем, снимите блокировку: note unlock --permanent.`,
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
			password, perr := promptPassword("Пароль заметки: ")
			if perr != nil {
				return perr
			}
			err = ctl.UnlockView(id, password)
		}
		if err != nil {
			return err
		}

		if writeTitle != "" {
			if err := ctl.SetTitle(writeTitle); err != nil {
				return err
			}
		}

		if writeFile != "" || writeTitle == "" {
			content, err := readContent()
			if err != nil {
				return err
			}
			if err := ctl.SetContent(content); err != nil {
				return err
			}
		}

		if err := ctl.Flush(cmd.Context()); err != nil {
			return fmt.Errorf("ошибка сохранения: %w", err)
		}

		color.Green("✅ Сохранено")
		return nil
	},
}

func readContent() (string, error) {
	if writeFile != "" {
		data, err := os.ReadFile(writeFile)
		if err != nil {
			return "", fmt.Errorf("ошибка чтения файла: %w", err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("ошибка чтения stdin: %w", err)
	}
	return string(data), nil
}

func init() {
	WriteCmd.Flags().StringVarP(&writeTitle, "title", "t", "", "новый заголовок")
	WriteCmd.Flags().StringVarP(&writeFile, "file", "f", "", "файл с содержимым")
}
