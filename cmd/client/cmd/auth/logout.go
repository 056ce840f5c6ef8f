// cmd/client/cmd/auth/logout.go
package auth

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"notekeeper/cmd/client/cmd/types"
	"notekeeper/internal/app/client"
)

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Выйти из аккаунта",
	Long:  `Стирает локальный токен. Данные на сервере не трогаются.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, _ := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		if err := app.Logout(); err != nil {
			return fmt.Errorf("ошибка выхода: %w", err)
		}

		color.Green("✅ Выход выполнен")
		return nil
	},
}
