package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mdtask/mdtask/internal/app"
	"github.com/mdtask/mdtask/internal/domain"
	"github.com/mdtask/mdtask/internal/usecase"
)

// newFmtCommand creates the fmt command for reformatting markdown task
// files.
func newFmtCommand(c *app.Container) *cobra.Command {
	var inPlace bool

	cmd := &cobra.Command{
		Use:   "fmt [input-file]",
		Short: "Reformat a markdown task file",
		Long: `Parse a markdown task file, allocate ids for unlabeled tasks, and
render it back in canonical form.

Examples:
  # Format stdin to stdout
  mdtask fmt < tasks.md

  # Rewrite a file in place
  mdtask fmt -i tasks.md`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")
			path := argOrEmpty(args)

			if inPlace {
				if output != "" {
					return domain.ErrInPlaceOutput
				}
				if path == "" || path == "-" {
					return domain.ErrInPlaceStdin
				}
			}

			source, err := readInput(cmd, path)
			if err != nil {
				return err
			}

			out, err := c.FormatDocumentUseCase().Execute(cmd.Context(), usecase.FormatDocumentInput{
				Source: source,
			})
			if err != nil {
				return err
			}

			if inPlace {
				if err := os.WriteFile(path, []byte(out.Formatted), 0o644); err != nil { //nolint:gosec // Rewrites the user's own document
					return fmt.Errorf("write %s: %w", path, err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Formatted %s (%d tasks)\n", path, out.TaskCount)
				return nil
			}
			return writeOutput(cmd, output, out.Formatted)
		},
	}

	cmd.Flags().BoolVarP(&inPlace, "in-place", "i", false, "Rewrite the input file in place")
	return cmd
}
