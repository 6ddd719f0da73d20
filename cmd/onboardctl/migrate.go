package main

import (
	"fmt"

	"capi-onboarding-backend/internal/bootstrap"
	"capi-onboarding-backend/internal/config"
	"capi-onboarding-backend/internal/database"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gorm.io/gorm/logger"
)

func newMigrateCmd() *cobra.Command {
	var attempts int

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the postgres schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			if driver := cfg.ResolvedStoreDriver(); driver != config.StoreDriverPostgres {
				return fmt.Errorf("migrate needs STORE_DRIVER=postgres, got %q", driver)
			}

			// Opening the gorm store runs the migration
			_, err := bootstrap.OpenStore(cmd.Context(), cfg, &bootstrap.StoreOptions{
				Database:        &database.Options{LogLevel: logger.Silent},
				ConnectAttempts: attempts,
			})
			if err != nil {
				return err
			}

			for _, m := range database.Models() {
				if t, ok := m.(interface{ TableName() string }); ok {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s %s\n", color.New(color.FgGreen).Sprint("OK"), t.TableName())
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&attempts, "attempts", 30, "connection attempts, one second apart")
	return cmd
}
