package main

import (
	"context"
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/wesen/linkgraph/internal/config"
	"github.com/wesen/linkgraph/internal/linkui"
	"github.com/wesen/linkgraph/internal/logging"
	"github.com/wesen/linkgraph/internal/watch"
	"go.uber.org/zap"
)

var version = "0.1.0"

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "linkgraph",
		Short: "Build a node-link graph with the mouse",
		Long: "linkgraph opens an interactive canvas in the terminal.\n\n" +
			"  left click       add a node, or drag an existing one\n" +
			"  right click      delete a node and its edges\n" +
			"  middle click     select; two selected nodes toggle an edge",
		Version:      version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE:         runTUI,
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default ./"+config.DefaultFile+" if present)")
	pf.String("log-file", "", "write logs to this file")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.Bool("dev-log", false, "human-readable development logs")
	pf.Float64("radius", 12, "node radius in world units")
	pf.Bool("no-physics", false, "disable the collision solver")
	pf.Float64("wobble", 0, "strength of the noise force on resting nodes")
	pf.Int64("physics-seed", 0, "seed of the wobble noise")

	f := root.Flags()
	f.Int("tick-rate", 60, "simulation ticks per second")
	f.Bool("watch", false, "reload styles when the config file changes")

	root.AddCommand(runScriptCmd(), configCmd())
	return root
}

// loadConfig resolves and validates the configuration for cmd.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(path, cmd.Flags())
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func runTUI(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	p := tea.NewProgram(linkui.New(cfg, logger), tea.WithContext(ctx))

	if cfg.Watch {
		if err := startWatcher(ctx, p, cfg.File, cmd.Flags(), logger); err != nil {
			return err
		}
	}

	if _, err := p.Run(); err != nil {
		logger.Error("program exited", zap.Error(err))
		return err
	}
	return nil
}

// startWatcher reloads the configuration whenever its file changes and
// hands the result to the running program.
func startWatcher(ctx context.Context, p *tea.Program, path string, flags *pflag.FlagSet, logger *zap.Logger) error {
	if path == "" {
		return errors.New("--watch needs a config file")
	}
	fw, err := watch.New(path, logger)
	if err != nil {
		return err
	}
	go func() {
		err := fw.Run(ctx, func() {
			cfg, err := config.Load(path, flags)
			if err == nil {
				err = cfg.Validate()
			}
			if err != nil {
				p.Send(linkui.ConfigErrorMsg{Err: err})
				return
			}
			p.Send(linkui.ConfigReloadedMsg{Config: cfg})
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Warn("config watcher stopped", zap.Error(err))
		}
	}()
	return nil
}
