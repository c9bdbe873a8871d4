package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/nba-highlights-service/internal/config"
	"github.com/preston-bernstein/nba-highlights-service/internal/logging"
	"github.com/preston-bernstein/nba-highlights-service/internal/metrics"
	"github.com/preston-bernstein/nba-highlights-service/internal/server"
)

// commandContext lazily loads configuration and builds the shared components.
type commandContext struct {
	jsonOutput bool
	verbose    bool

	cfg        config.Config
	components server.Components
	logger     *slog.Logger
	loaded     bool
}

func (c *commandContext) ensureComponents(stderr io.Writer) error {
	if c.loaded {
		return nil
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	level := "warn"
	if c.verbose {
		level = cfg.LogLevel
	}
	c.logger = logging.NewLogger(logging.Config{
		Level:   level,
		Format:  "text",
		Service: cfg.Metrics.ServiceName,
		Output:  stderr,
	})
	c.cfg = cfg
	c.components = server.BuildComponents(cfg, c.logger, metrics.NewRecorder())
	c.loaded = true
	return nil
}

func newRootCommand() *cobra.Command {
	ctx := &commandContext{}

	rootCmd := &cobra.Command{
		Use:           "highlights",
		Short:         "Clutch highlight aggregation from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd == cmd.Root() {
				return nil
			}
			return ctx.ensureComponents(cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().BoolVar(&ctx.jsonOutput, "json", false, "Emit JSON instead of tables")
	rootCmd.PersistentFlags().BoolVarP(&ctx.verbose, "verbose", "v", false, "Log at the configured level instead of warnings only")

	rootCmd.AddCommand(newGamesCommand(ctx))
	rootCmd.AddCommand(newAggregateCommand(ctx))

	return rootCmd
}
