// Command onboardctl administers the onboarding tracker outside the HTTP API:
// schema migration, seeding clients from YAML, catalog inspection, spreadsheet
// setup and issuing API tokens.
package main

import (
	"context"
	"os"

	"capi-onboarding-backend/internal/config"
	"capi-onboarding-backend/internal/logger"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var cfg *config.Config

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "onboardctl",
		Short:         "Administer the CAPI onboarding tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			loaded, err := config.Load()
			if err != nil {
				return err
			}
			cfg = loaded
			logger.Setup(cfg.LogLevel, logger.FileOptions{})
			return nil
		},
	}

	root.AddCommand(
		newMigrateCmd(),
		newSeedCmd(),
		newStepsCmd(),
		newSheetsCmd(),
		newTokenCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
