package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kilianp07/superheroes/app"
	"github.com/kilianp07/superheroes/config"
	"github.com/kilianp07/superheroes/infra/logger"
	"github.com/kilianp07/superheroes/scenario"
)

var (
	cfgPath      string
	scenarioPath string
	reportFormat string
)

var rootCmd = &cobra.Command{
	Use:           "superheroes",
	Short:         "Run a superhero scenario",
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (built-in roster when empty)")
	rootCmd.Flags().StringVarP(&scenarioPath, "scenario", "s", "", "scenario file (overrides scenario.path)")
	rootCmd.Flags().StringVarP(&reportFormat, "report", "r", "", "print final energies as json or csv (overrides scenario.report)")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func run(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if reportFormat != "" {
		cfg.Scenario.Report = reportFormat
		if err := cfg.Scenario.Validate(); err != nil {
			return err
		}
	}
	sc, err := loadScenario(cfg)
	if err != nil {
		return err
	}
	svc, err := app.New(cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("main").Errorf("service close: %v", err)
		}
	}()
	return svc.Run(ctx, sc)
}

func loadScenario(cfg *config.Config) (*scenario.Scenario, error) {
	path := cfg.Scenario.Path
	if scenarioPath != "" {
		path = scenarioPath
	}
	if path == "" {
		return scenario.Default(), nil
	}
	sc, err := scenario.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load scenario: %w", err)
	}
	return sc, nil
}
