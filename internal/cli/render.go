package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/fontroute/pkg/errors"
	"github.com/matzehuels/fontroute/pkg/render/nodelink"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string // output file path, "-" for stdout
	format   string // output format: "dot", "svg", "png"
	tag      string // draw only the routes of this tag
	detailed bool   // show ids and declared tags in node labels
	noCache  bool   // bypass the render cache
}

// renderCommand creates the render command for generating node-link diagrams.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: nodelink.FormatSVG}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render the fallback graph as a node-link diagram",
		Long: `Render the fonts and routes of a fallback file with Graphviz.

Edges are labelled with their tag and their rank in the source font's
fallback list. --tag restricts the diagram to one script or language.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input name with the format extension, - for stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), png, dot")
	cmd.Flags().StringVarP(&opts.tag, "tag", "t", "", "only draw routes of this tag")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show font ids and declared tags")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the render cache")

	return cmd
}

// validateFormat checks that format is one nodelink can produce.
func validateFormat(format string) error {
	if !slices.Contains(nodelink.Formats, format) {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be one of %s)", format, strings.Join(nodelink.Formats, ", "))
	}
	return nil
}

// basePath strips the extension from input to derive the default output path.
func basePath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input))
}

// runRender loads the catalog from input and writes the rendered diagram.
func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	cat, _, err := c.loadCatalog(ctx, input, false)
	if err != nil {
		return err
	}

	dot, err := nodelink.ToDOT(cat, nodelink.Options{Tag: opts.tag, Detailed: opts.detailed})
	if err != nil {
		return err
	}

	ch := c.openCache(ctx, opts.noCache)
	defer ch.Close()

	prog := newProgress(logger)
	data, err := nodelink.Render(ctx, ch, dot, opts.format)
	if err != nil {
		return err
	}

	if opts.output == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}

	outputPath := opts.output
	if outputPath == "" {
		outputPath = basePath(input) + "." + opts.format
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}

	prog.done(fmt.Sprintf("Rendered %s", opts.format))
	printFile(outputPath)
	return nil
}
