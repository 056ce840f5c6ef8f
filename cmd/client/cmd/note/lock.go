package note

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var lockHint string

var LockCmd = &cobra.Command{
	Use:   "lock <id>",
	Short: "Запереть заметку паролем",
	Long: `Шифрует содержимое заметки паролем на стороне клиента.

Сервер хранит только зашифрованный конверт. Подсказка (--hint) хранится
открыто и не должна совпадать с паролем. Пароль восстановить нельзя.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := sessionApp(cmd)
		if err != nil {
			return err
		}

		ctl := app.Controller()
		if err := ctl.Select(args[0]); err != nil {
			return err
		}

		password, err := promptPassword("Пароль заметки: ")
		if err != nil {
			return err
		}
		confirm, err := promptPassword("Повторите пароль: ")
		if err != nil {
			return err
		}
		if password != confirm {
			return fmt.Errorf("пароли не совпадают")
		}

		if err := ctl.LockCurrent(cmd.Context(), password, lockHint); err != nil {
			return fmt.Errorf("ошибка блокировки: %w", err)
		}

		color.Green("🔒 Заметка заперта")
		color.Yellow("Пароль не восстанавливается. Запомните его.")
		return nil
	},
}

func init() {
	LockCmd.Flags().StringVar(&lockHint, "hint", "", "подсказка к паролю (хранится открыто)")
}
