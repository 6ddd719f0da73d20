package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"capi-onboarding-backend/internal/bootstrap"
	"capi-onboarding-backend/internal/catalog"
	"capi-onboarding-backend/internal/service"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const seedActor = "onboardctl"

// SeedFile is the YAML document accepted by the seed command
type SeedFile struct {
	Clients []ClientData `yaml:"clients"`
}

// ClientData describes one client with the platforms and progress to record
type ClientData struct {
	Name      string          `yaml:"name"`
	Email     string          `yaml:"email"`
	Notes     string          `yaml:"notes,omitempty"`
	Platforms []string        `yaml:"platforms,omitempty"`
	Completed []CompletedStep `yaml:"completed,omitempty"`
}

// CompletedStep marks a step, or only some of its checklist items when Items is set.
// Platform may be left empty for core steps.
type CompletedStep struct {
	Step     string `yaml:"step"`
	Platform string `yaml:"platform,omitempty"`
	Items    []int  `yaml:"items,omitempty"`
}

type seedServices struct {
	catalog  *catalog.Catalog
	clients  service.ClientServiceInterface
	progress service.ProgressServiceInterface
}

type seedResult struct {
	Created int
	Skipped int
	Steps   int
	Items   int
}

func newSeedCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create clients and their progress from a YAML file",
		Long: `Creates the clients listed in the file, attaches their platforms and
records completed steps. Clients whose email already exists are skipped, so
the command can be re-run safely.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := loadSeedFile(file)
			if err != nil {
				return err
			}

			cat, err := bootstrap.LoadCatalog(cfg)
			if err != nil {
				return err
			}
			store, err := bootstrap.OpenStore(cmd.Context(), cfg, &bootstrap.StoreOptions{ConnectAttempts: 30})
			if err != nil {
				return err
			}

			validator := service.NewValidator()
			svc := seedServices{
				catalog:  cat,
				clients:  service.NewClientService(store, cat, validator),
				progress: service.NewProgressService(store, cat, validator),
			}

			result, err := seed(cmd.Context(), svc, data, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Clients: %d created, %d skipped. Steps: %d. Checklist items: %d.\n",
				result.Created, result.Skipped, result.Steps, result.Items)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "scripts/data/clients.yaml", "seed file")
	return cmd
}

func loadSeedFile(path string) (*SeedFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var data SeedFile
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return &data, nil
}

func seed(ctx context.Context, svc seedServices, data *SeedFile, out io.Writer) (seedResult, error) {
	var result seedResult

	existing, err := svc.clients.ListClients(ctx)
	if err != nil {
		return result, err
	}
	known := make(map[string]bool, len(existing))
	for _, c := range existing {
		known[strings.ToLower(c.Email)] = true
	}

	skip := color.New(color.FgYellow).Sprint("SKIP  ")
	create := color.New(color.FgGreen).Sprint("CREATE")

	for _, cd := range data.Clients {
		if known[strings.ToLower(strings.TrimSpace(cd.Email))] {
			fmt.Fprintf(out, "  %s %s <%s>\n", skip, cd.Name, cd.Email)
			result.Skipped++
			continue
		}

		client, err := svc.clients.CreateClient(ctx, &service.CreateClientRequest{
			Name:  cd.Name,
			Email: cd.Email,
			Notes: cd.Notes,
		})
		if err != nil {
			return result, fmt.Errorf("create client %s: %w", cd.Name, err)
		}
		known[strings.ToLower(client.Email)] = true
		result.Created++
		fmt.Fprintf(out, "  %s %s <%s>\n", create, client.Name, client.Email)

		for _, platform := range cd.Platforms {
			if _, err := svc.clients.AddPlatform(ctx, client.ID, platform); err != nil {
				return result, fmt.Errorf("client %s: add platform %s: %w", cd.Name, platform, err)
			}
		}

		for _, done := range cd.Completed {
			step, ok := svc.catalog.Step(done.Step)
			if !ok {
				return result, fmt.Errorf("client %s: unknown step %s", cd.Name, done.Step)
			}
			platform := catalog.RecordingPlatform(step, done.Platform)

			if len(done.Items) == 0 {
				if _, err := svc.progress.MarkStepComplete(ctx, client.ID, platform, step.ID, seedActor); err != nil {
					return result, fmt.Errorf("client %s: complete %s: %w", cd.Name, step.ID, err)
				}
				result.Steps++
				continue
			}
			for _, idx := range done.Items {
				if _, err := svc.progress.MarkChecklistItemComplete(ctx, client.ID, platform, step.ID, idx, seedActor); err != nil {
					return result, fmt.Errorf("client %s: complete %s item %d: %w", cd.Name, step.ID, idx, err)
				}
				result.Items++
			}
		}
	}

	return result, nil
}
