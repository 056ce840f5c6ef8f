// cmd/client/cmd/root.go
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"notekeeper/cmd/client/cmd/types"
	"notekeeper/internal/app/client"
	"notekeeper/internal/app/client/config"
	"notekeeper/internal/utils/logger"
)

var (
	cfg        *config.Config
	log        *slog.Logger
	app        *client.App
	serverAddr string
)

var rootCmd = &cobra.Command{
	Use:   "notekeeper",
	Short: "Notekeeper - заметки с шифрованием и синхронизацией",
	Long: `Notekeeper - это клиент персональной системы заметок.

Заметки организуются по папкам, помечаются тегами и избранным.
Отдельные заметки можно запереть паролем: содержимое шифруется
на стороне клиента, сервер видит только конверт. Все изменения
сохраняются на сервере и доступны с любого устройства владельца.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}

	if app != nil {
		app.Close()
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	cfg = config.MustLoad()

	// Переопределяем настройки из флагов командной строки
	if serverAddr != "" {
		cfg.ServerAddress = serverAddr
	}

	log = logger.New(cfg.Env)

	var err error
	app, err = client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("ошибка инициализации приложения: %w", err)
	}

	cmd.SetContext(context.WithValue(cmd.Context(), types.ClientAppKey, app))
	return nil
}

func init() {
	cobra.OnInitialize()

	rootCmd.PersistentFlags().StringVar(&serverAddr, "server", "", "адрес сервера Notekeeper")
}
