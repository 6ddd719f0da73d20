package main

import (
	"fmt"

	"capi-onboarding-backend/internal/bootstrap"
	"capi-onboarding-backend/internal/repository/sheets"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newSheetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sheets",
		Short: "Manage the Google Sheets store",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create missing tabs and header rows in the configured spreadsheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := bootstrap.OpenSheetsClient(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			if err := client.Ping(cmd.Context()); err != nil {
				return fmt.Errorf("spreadsheet not reachable: %w", err)
			}

			written, err := sheets.EnsureHeaders(cmd.Context(), client)
			if err != nil {
				return err
			}
			if len(written) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "All tabs already initialised")
				return nil
			}
			for _, tab := range written {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s %s\n", color.New(color.FgGreen).Sprint("CREATE"), tab)
			}
			return nil
		},
	})

	return cmd
}
