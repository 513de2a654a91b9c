// Package cli provides the command-line interface for mdtask.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mdtask/mdtask/internal/app"
	"github.com/mdtask/mdtask/internal/usecase"
)

// NewRootCommand creates the root command for mdtask.
// It receives the container for dependency injection and version for
// display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var opts struct {
		From   string
		To     string
		Output string
	}

	root := &cobra.Command{
		Use:   "mdtask [input-file]",
		Short: "Sync a markdown task list with a structured task store",
		Long: `mdtask keeps a hand-edited markdown task list in sync with a
structured task store (JSON Lines by default).

Without a subcommand it runs in conversion mode and needs both --from
and --to. Input is read from the positional file, or stdin when the
file is omitted or '-'.

Examples:
  # Convert a markdown list to JSON Lines
  mdtask --from markdown --to json tasks.md

  # Render a store back to markdown
  mdtask --from json --to markdown tasks.jsonl -o tasks.md

  # Reformat a list in place
  mdtask fmt -i tasks.md

  # Fold edits back into the store
  mdtask apply --store tasks.jsonl < tasks.md`,
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.From == "" || opts.To == "" {
				return errors.New("--from and --to are required for conversion mode")
			}

			source, err := readInput(cmd, argOrEmpty(args))
			if err != nil {
				return err
			}

			out, err := c.ConvertDocumentUseCase().Execute(cmd.Context(), usecase.ConvertDocumentInput{
				Source: source,
				From:   strings.ToLower(opts.From),
				To:     strings.ToLower(opts.To),
			})
			if err != nil {
				return err
			}
			return writeOutput(cmd, opts.Output, out.Result)
		},
	}

	root.PersistentFlags().StringVarP(&opts.From, "from", "f", "", "Input format (markdown or json)")
	root.PersistentFlags().StringVarP(&opts.To, "to", "t", "", "Output format (markdown or json)")
	root.PersistentFlags().StringVarP(&opts.Output, "output", "o", "", "Output file path (stdout if not set)")

	root.AddCommand(
		newFmtCommand(c),
		newApplyCommand(c),
		newListCommand(c),
	)

	return root
}

// argOrEmpty returns the single positional argument, or "".
func argOrEmpty(args []string) string {
	if len(args) == 1 {
		return args[0]
	}
	return ""
}

// readInput reads the named file, or stdin when path is empty or "-".
func readInput(cmd *cobra.Command, path string) (string, error) {
	if path != "" && path != "-" {
		content, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read input file %s: %w", path, err)
		}
		return string(content), nil
	}
	content, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(content), nil
}

// writeOutput writes content to the named file, or the command's
// stdout when path is empty.
func writeOutput(cmd *cobra.Command, path, content string) error {
	if path != "" {
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil { //nolint:gosec // User-visible document output
			return fmt.Errorf("write output file %s: %w", path, err)
		}
		return nil
	}
	_, err := fmt.Fprint(cmd.OutOrStdout(), content)
	return err
}
