package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/fontroute/pkg/catalog"
)

// queryOpts holds the command-line flags for the query command.
type queryOpts struct {
	limit int  // maximum number of fallbacks printed
	chain bool // follow fallbacks transitively
}

// queryCommand creates the query command that prints the fallbacks of a font.
func (c *CLI) queryCommand() *cobra.Command {
	var opts queryOpts

	cmd := &cobra.Command{
		Use:   "query [file] [font] [tag]",
		Short: "Print the fallbacks of a font for a script or language",
		Example: `  fontroute query fallbacks.toml "Noto Sans" Arab
  fontroute query fallbacks.toml "Noto Sans" arab --chain --limit 3`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("limit") {
				opts.limit = c.Config.DefaultLimit
			}
			cat, _, err := c.loadCatalog(cmd.Context(), args[0], false)
			if err != nil {
				return err
			}
			return runQuery(cmd.OutOrStdout(), cat, args[1], args[2], opts)
		},
	}

	cmd.Flags().IntVarP(&opts.limit, "limit", "n", 16, "maximum number of fallbacks (0 for all)")
	cmd.Flags().BoolVar(&opts.chain, "chain", false, "follow fallbacks of fallbacks")

	return cmd
}

// runQuery writes one fallback name per line to w.
func runQuery(w io.Writer, cat *catalog.Catalog, font, tag string, opts queryOpts) error {
	names, err := resolveFallbacks(cat, font, tag, opts)
	if err != nil {
		return err
	}
	for _, name := range names {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return nil
}

func resolveFallbacks(cat *catalog.Catalog, font, tag string, opts queryOpts) ([]string, error) {
	if !opts.chain {
		return cat.Fallbacks(font, tag, opts.limit)
	}
	names, err := cat.Chain(font, tag)
	if err != nil {
		return nil, err
	}
	if opts.limit > 0 && len(names) > opts.limit {
		names = names[:opts.limit]
	}
	return names, nil
}
