package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"
	"github.com/wesen/linkgraph/internal/linkui"
	"github.com/wesen/linkgraph/internal/logging"
	"github.com/wesen/linkgraph/internal/physics"
	"github.com/wesen/linkgraph/internal/script"
	"github.com/wesen/linkgraph/internal/sim"
)

func runScriptCmd() *cobra.Command {
	var render bool
	cmd := &cobra.Command{
		Use:   "run <script.toml>...",
		Short: "Replay gesture scripts headlessly and check their expectations",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.Log)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			settings := sim.Settings{Radius: cfg.Node.Radius}
			out := cmd.OutOrStdout()
			failed := 0
			for _, path := range args {
				sc, err := script.Load(path)
				if err != nil {
					return err
				}
				opts := []sim.Option{sim.WithLogger(logger)}
				if sc.Physics && cfg.Physics.Enabled {
					opts = append(opts, sim.WithPhysics(physics.New(physics.FromConfig(cfg.Physics))))
				}
				res, err := script.Run(sc, settings, opts...)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				res.Print(out)
				if render {
					cols := int(math.Ceil(sc.Width / cfg.View.CellWidth))
					rows := int(math.Ceil(sc.Height / cfg.View.CellHeight))
					fmt.Fprintln(out, linkui.Snapshot(cfg, res.Sim, cols, rows))
				}
				if !res.Passed() {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d scripts failed", failed, len(args))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&render, "render", false, "print the final canvas of each script")
	return cmd
}

func configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			s, err := cfg.TOML()
			if err != nil {
				return err
			}
			if cfg.File != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "# resolved from %s\n", cfg.File)
			}
			fmt.Fprint(cmd.OutOrStdout(), s)
			return nil
		},
	}
}
