package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mdtask/mdtask/internal/app"
	"github.com/mdtask/mdtask/internal/domain"
	"github.com/mdtask/mdtask/internal/usecase"
)

// newApplyCommand creates the apply command for folding markdown edits
// back into the stored collection.
func newApplyCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Store  string
		DryRun bool
	}

	cmd := &cobra.Command{
		Use:   "apply [input-file]",
		Short: "Apply a markdown edit to the stored collection",
		Long: `Reconcile an edited markdown task list against the stored
collection: matched ids are updated, new lines are added, missing ids
are deleted, and every record's display order follows the document.
The store is fully replaced in one pass and the merged list is printed
back as markdown.

Examples:
  # Fold edits into the store
  mdtask apply --store tasks.jsonl < tasks.md

  # See what would be added, without writing
  mdtask apply --store tasks.jsonl --dry-run < tasks.md`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// The conversion-mode --from flag is accepted here for
			// compatibility but the input must be markdown.
			if from, _ := cmd.Flags().GetString("from"); from != "" && !strings.EqualFold(from, usecase.FormatMarkdown) {
				return domain.ErrApplyInputFormat
			}

			source, err := readInput(cmd, argOrEmpty(args))
			if err != nil {
				return err
			}

			out, err := c.ApplyDocumentUseCase(opts.Store).Execute(cmd.Context(), usecase.ApplyDocumentInput{
				Source: source,
				DryRun: opts.DryRun,
			})
			if err != nil {
				return err
			}

			if opts.DryRun {
				stdout := cmd.OutOrStdout()
				fmt.Fprintln(stdout, "Dry run: nothing written.")
				if len(out.Added) == 0 {
					fmt.Fprintln(stdout, "No tasks would be added.")
					return nil
				}
				fmt.Fprintln(stdout, "Tasks that would be added:")
				for _, t := range out.Added {
					fmt.Fprintf(stdout, "  %s (id:%d)\n", t.Name, t.ID)
				}
				return nil
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), out.Rendered)
			return err
		},
	}

	cmd.Flags().StringVar(&opts.Store, "store", "", "Store file path (defaults to the configured store.path)")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Report additions without writing")
	return cmd
}
