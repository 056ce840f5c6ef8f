package note

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"notekeeper/internal/domain/note"
)

var (
	listFolder    string
	listUnfiled   bool
	listFilter    string
	listSearch    string
	listFormat    string
	listAscending bool
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список заметок",
	Long: `Просмотр заметок с фильтрацией по папке, статусу и поиском по заголовку.

Поиск работает только при фильтре all. По умолчанию свежие заметки первыми.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := sessionApp(cmd)
		if err != nil {
			return err
		}

		q := note.ListQuery{
			Filter:    note.Filter(listFilter),
			Search:    listSearch,
			Ascending: listAscending,
		}
		if listUnfiled {
			q.Scoped = true
		} else if listFolder != "" {
			q.Scoped = true
			q.FolderID = listFolder
		}

		notes := app.Workspace().Visible(q)

		switch listFormat {
		case "json":
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(notes)
		default:
			return printNotesTable(notes)
		}
	},
}

func printNotesTable(notes []note.Note) error {
	if len(notes) == 0 {
		fmt.Println("Заметки не найдены")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tЗаголовок\tТеги\tОбновлено\t\n")

	for _, n := range notes {
		marks := ""
		if n.IsLocked {
			marks += color.YellowString("🔒")
		}
		if n.IsFavorite {
			marks += color.CyanString("★")
		}

		fmt.Fprintf(w, "%s\t%s %s\t%s\t%s\t\n",
			n.ID,
			truncate(n.Title, 30),
			marks,
			truncate(strings.Join(n.Tags, ","), 24),
			n.UpdatedAt.Format("2006-01-02 15:04"),
		)
	}

	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\nВсего заметок: %d\n", len(notes))
	return nil
}

func init() {
	ListCmd.Flags().StringVarP(&listFolder, "folder", "f", "", "только заметки указанной папки")
	ListCmd.Flags().BoolVar(&listUnfiled, "unfiled", false, "только заметки вне папок")
	ListCmd.Flags().StringVar(&listFilter, "filter", "all", "фильтр (all, locked, unlocked, favorites)")
	ListCmd.Flags().StringVarP(&listSearch, "search", "s", "", "поиск по заголовку")
	ListCmd.Flags().StringVar(&listFormat, "format", "table", "формат вывода (table, json)")
	ListCmd.Flags().BoolVar(&listAscending, "oldest-first", false, "старые заметки первыми")
}
