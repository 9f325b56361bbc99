package cli

import (
	"github.com/spf13/cobra"

	fio "github.com/matzehuels/fontroute/pkg/io"
)

// exportCommand creates the export command that rewrites a fallback file.
func (c *CLI) exportCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Write the accepted fonts and routes of a fallback file",
		Long: `Load a fallback file and write back only what the graph accepted.

The output format follows the extension of --output (.json or .toml).
Without --output the result is printed to stdout as JSON.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, _, err := c.loadCatalog(cmd.Context(), args[0], false)
			if err != nil {
				return err
			}
			if output == "" {
				return fio.WriteJSON(cat, cmd.OutOrStdout())
			}
			if err := fio.ExportFile(cat, output); err != nil {
				return err
			}
			printSuccess("Exported %d fonts", cat.Len())
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.json or .toml)")

	return cmd
}
