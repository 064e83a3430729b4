package main

import (
	"context"
	"fmt"
	"os"

	"eridian-chronometer/internal/app"
	"eridian-chronometer/internal/config"
	"eridian-chronometer/internal/logger"

	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	headless   bool
	inline     bool
	logLevel   string
	width      int
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "eridian-chronometer",
		Short:         "Show Earth time alongside base-6 Eridian time",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}

			log := logger.New(logger.ParseLevel(cfg.Logging.Level), cfg.Logging.JSON)

			if opts.headless {
				return app.RunHeadless(cmd.Context(), cfg, log, cmd.OutOrStdout(), opts.inline)
			}

			application, err := app.NewApplication(cfg, log)
			if err != nil {
				return fmt.Errorf("application initialization failed: %w", err)
			}
			return application.Run()
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	f.BoolVar(&opts.headless, "headless", false, "print the clocks to stdout instead of opening a window")
	f.BoolVar(&opts.inline, "inline", false, "with --headless, redraw a single line in place")
	f.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error")
	f.IntVar(&opts.width, "width", 0, "glyphs per Eridian group, 2 or 3")

	cmd.AddCommand(newVersionCmd())
	cmd.SetContext(context.Background())
	return cmd
}

// loadConfig layers the config file, the environment and explicit flags.
func loadConfig(cmd *cobra.Command, opts *options) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, err
	}
	cfg.ApplyEnv(os.Getenv)

	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = opts.logLevel
	}
	if cmd.Flags().Changed("width") {
		cfg.Eridian.Width = opts.width
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", app.AppName, app.AppVersion)
		},
	}
}
