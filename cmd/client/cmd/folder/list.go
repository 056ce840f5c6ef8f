package folder

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"notekeeper/internal/domain/note"
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список папок",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := sessionApp(cmd)
		if err != nil {
			return err
		}

		folders := app.Workspace().Folders()
		if len(folders) == 0 {
			fmt.Println("Папок нет")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "ID\tИмя\tЗаметок\t\n")
		for _, f := range folders {
			count := len(app.Workspace().Visible(note.ListQuery{Scoped: true, FolderID: f.ID}))
			fmt.Fprintf(w, "%s\t%s\t%d\t\n", f.ID, f.Name, count)
		}
		return w.Flush()
	},
}
