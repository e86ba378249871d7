// ABOUTME: CLI command to export profiles, diaries, and chat for backup or clinicians
// ABOUTME: Writes YAML, JSON, or Markdown to stdout or a file
package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/harper/carenotes/internal/storage"
)

var (
	exportOutput string
	exportAs     string
)

// NewExportCmd creates the export command
func NewExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all data as YAML, JSON, or Markdown",
		Long: `Export every profile with its diary, the chat history, and the theme.

The format follows --as, or the output file extension, or YAML.

Examples:
  carenotes export
  carenotes export --as markdown
  carenotes export -o backup.json`,
		RunE: runExport,
	}

	cmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to this file instead of stdout")
	cmd.Flags().StringVar(&exportAs, "as", "", "Format: yaml, json, or markdown")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	format := exportAs
	if format == "" {
		format = storage.FormatYAML
		if exportOutput != "" {
			format = storage.FormatFromPath(exportOutput)
		}
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	snapshot := a.store.LoadSnapshot()

	if exportOutput == "" {
		return storage.Export(cmd.OutOrStdout(), snapshot, format, time.Now())
	}
	if err := storage.ExportToFile(exportOutput, snapshot, format); err != nil {
		return fmt.Errorf("exporting: %w", err)
	}
	if !quiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d profile(s) to %s\n", len(snapshot.Profiles), exportOutput)
	}
	return nil
}
