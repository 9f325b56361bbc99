package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/fontroute/pkg/server"
)

// serveCommand creates the serve command that answers fallback queries over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve [file]",
		Short: "Serve fallback queries over HTTP",
		Long: `Load a fallback file and serve it over HTTP until interrupted.

Endpoints:
  GET  /healthz
  GET  /fonts
  GET  /fonts/{font}
  GET  /fonts/{font}/fallbacks?tag=Arab&limit=4&chain=true
  POST /routes   {"from": "...", "to": "...", "tag": "..."}
  GET  /render?tag=Arab&format=svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if addr == "" {
				addr = c.Config.ListenAddr
			}

			cat, _, err := c.loadCatalog(ctx, args[0], false)
			if err != nil {
				return err
			}

			ch := c.openCache(ctx, noCache)
			defer ch.Close()

			svc := server.New(cat, server.Options{
				Cache:        ch,
				Logger:       loggerFromContext(ctx),
				DefaultLimit: c.Config.DefaultLimit,
			})
			return svc.Run(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, "+defaultListenAddr+")")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the render cache")

	return cmd
}
