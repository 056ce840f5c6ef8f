package folder

import (
	"fmt"

	"github.com/spf13/cobra"

	"notekeeper/cmd/client/cmd/types"
	"notekeeper/internal/app/client"
)

// FolderCmd - родительская команда для всех операций с папками
var FolderCmd = &cobra.Command{
	Use:   "folder",
	Short: "Управление папками",
	Long:  `Создание, переименование и удаление папок.`,
}

func sessionApp(cmd *cobra.Command) (*client.App, error) {
	app, _ := cmd.Context().Value(types.ClientAppKey).(*client.App)
	if app == nil {
		return nil, fmt.Errorf("приложение не инициализировано")
	}
	if err := app.OpenSession(cmd.Context()); err != nil {
		return nil, err
	}
	return app, nil
}
