package note

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"notekeeper/internal/domain/note"
)

var unlockPermanent bool

var UnlockCmd = &cobra.Command{
	Use:   "unlock <id>",
	Short: "Отпереть заметку",
	Long: `Расшифровывает заметку введенным паролем.

По умолчанию открывается временная сессия просмотра: запись остается
зашифрованной и снова запросит пароль после переключения. Флаг
--permanent снимает блокировку насовсем и сразу сохраняет заметку
открытым текстом.

После пяти неверных попыток дальнейшие запросы отклоняются до
перезапуска клиента, даже с верным паролем.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := sessionApp(cmd)
		if err != nil {
			return err
		}

		id := args[0]
		if n, ok := app.Workspace().Note(id); ok && n.PasswordHint != "" {
			fmt.Printf("Подсказка: %s\n", n.PasswordHint)
		}

		password, err := promptPassword("Пароль заметки: ")
		if err != nil {
			return err
		}

		ctl := app.Controller()
		if unlockPermanent {
			if err := ctl.UnlockPermanent(cmd.Context(), id, password); err != nil {
				return err
			}
			color.Green("✅ Блокировка снята, заметка сохранена открытым текстом")
			return nil
		}

		if err := ctl.UnlockView(id, password); err != nil {
			return err
		}

		color.Green("✅ Заметка отперта для просмотра")
		fmt.Println()
		fmt.Println(note.PlainText(ctl.ActiveContent()))
		return nil
	},
}

func init() {
	UnlockCmd.Flags().BoolVar(&unlockPermanent, "permanent", false, "снять блокировку насовсем")
}
