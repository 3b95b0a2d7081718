package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bnema/domaingate/internal/adapters/in/cli/ui/styles"
)

var cliWriteLine = func(w io.Writer, msg string) error {
	_, err := fmt.Fprintln(w, msg)
	return err
}

func cliRenderTitle(msg string) string {
	return styles.Theme.Title.Render(msg)
}

func cliRenderMuted(msg string) string {
	return styles.Theme.Muted.Render(msg)
}

func cliRenderSuccess(msg string) string {
	return styles.RenderSuccess(msg)
}

func cliRenderWarning(msg string) string {
	return styles.RenderWarning(msg)
}

// cliRenderFields renders label/value pairs as a two-column table.
func cliRenderFields(fields [][2]string) string {
	rows := make([][]string, 0, len(fields))
	for _, f := range fields {
		value := f[1]
		if value == "" {
			value = cliRenderMuted("-")
		}
		rows = append(rows, []string{f[0], value})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styles.Theme.TableBorder).
		StyleFunc(func(_, col int) lipgloss.Style {
			if col == 0 {
				return styles.Theme.TableHeader
			}
			return styles.Theme.TableCell
		}).
		Rows(rows...).
		String()
}
