package cli

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/fontroute/pkg/buildinfo"
	"github.com/matzehuels/fontroute/pkg/services"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// Logging:
//   - Default: the config's log_level, info if unset (logs to stderr)
//   - With --verbose (-v): debug level, plus load, route and cache events
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:               appName,
		Short:             "fontroute resolves per-script font fallbacks",
		Long:              `fontroute loads font fallback tables, rejects routes that would let a font fall back to itself, and answers fallback queries from the command line or over HTTP.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/fontroute/config.toml)")

	root.AddCommand(c.checkCommand())
	root.AddCommand(c.queryCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())
	root.AddCommand(c.versionCommand())

	return root
}

// setup loads the configuration and prepares logging before any command runs.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := LoadConfig(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg
	services.Provide(c.services, configService, &c.Config)

	level, _ := cfg.level()
	if c.verbose {
		level = log.DebugLevel
		installLoggingHooks(c.Logger)
	}
	c.SetLogLevel(level)

	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

// versionCommand prints the build information.
func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
			return err
		},
	}
}
