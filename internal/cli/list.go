package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mdtask/mdtask/internal/app"
	"github.com/mdtask/mdtask/internal/domain"
)

// Styles for the list view.
var (
	styleDone      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	styleDoing     = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	styleWaiting   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	stylePending   = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	styleCancelled = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Strikethrough(true)
	stylePlain     = lipgloss.NewStyle()
	styleMeta      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func statusStyle(s domain.Status) lipgloss.Style {
	switch s.Canonical() {
	case domain.StatusDone:
		return styleDone
	case domain.StatusDoing:
		return styleDoing
	case domain.StatusWaiting:
		return styleWaiting
	case domain.StatusPending:
		return stylePending
	case domain.StatusCancelled:
		return styleCancelled
	default:
		return stylePlain
	}
}

// newListCommand creates the list command, a read-only tree view of
// the stored collection.
func newListCommand(c *app.Container) *cobra.Command {
	var storePath string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the stored task tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListTasksUseCase(storePath).Execute(cmd.Context())
			if err != nil {
				return err
			}

			var b strings.Builder
			for i := range out.Tasks {
				renderTree(&b, &out.Tasks[i], 0, c.Indent())
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), b.String())
			return err
		},
	}

	cmd.Flags().StringVar(&storePath, "store", "", "Store file path (defaults to the configured store.path)")
	return cmd
}

func renderTree(b *strings.Builder, t *domain.Task, level, indent int) {
	line := fmt.Sprintf("[%c] %s", t.Status.Marker(), t.Name)
	meta := fmt.Sprintf(" id:%d", t.ID)
	if t.Due != nil {
		meta += " due:" + t.Due.String()
	}
	if t.Project != nil {
		meta += " +" + *t.Project
	}

	b.WriteString(strings.Repeat(" ", level*indent))
	b.WriteString(statusStyle(t.Status).Render(line))
	b.WriteString(styleMeta.Render(meta))
	b.WriteString("\n")

	for i := range t.Subtasks {
		renderTree(b, &t.Subtasks[i], level+1, indent)
	}
}
