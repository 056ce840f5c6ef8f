// cmd/client/cmd/activity.go
package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Сводка активности посетителей",
	Long:  `Показывает счетчик активных посетителей и последние записи журнала.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		active, latest, err := app.ActivitySnapshot(cmd.Context())
		if err != nil {
			return fmt.Errorf("ошибка получения сводки: %w", err)
		}

		color.Green("Активных посетителей: %d", active)
		if len(latest) == 0 {
			fmt.Println("Журнал пуст")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "Имя\tУстройство\tОС\tБраузер\tПоследняя активность\t\n")
		for _, e := range latest {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t\n",
				e.Username, e.Device, e.OS, e.Browser,
				e.LastActive.Format("2006-01-02 15:04"))
		}
		return w.Flush()
	},
}
