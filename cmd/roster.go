package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/superheroes/app"
	"github.com/kilianp07/superheroes/config"
)

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "Describe the configured heroes",
	RunE:  runRoster,
}

func init() {
	rootCmd.AddCommand(rosterCmd)
}

func runRoster(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer func() { _ = svc.Close() }()
	svc.Describe()
	return nil
}
