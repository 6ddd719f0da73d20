package main

import (
	"fmt"
	"io"

	"capi-onboarding-backend/internal/bootstrap"
	"capi-onboarding-backend/internal/catalog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newStepsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "steps [platform]",
		Short: "Print the wizard steps, optionally for one platform",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := bootstrap.LoadCatalog(cfg)
			if err != nil {
				return err
			}

			steps := cat.Steps()
			if len(args) == 1 {
				if _, ok := cat.Platform(args[0]); !ok {
					return fmt.Errorf("unknown platform %q", args[0])
				}
				steps = cat.WizardSteps(args[0])
			}
			printSteps(cmd.OutOrStdout(), cat.Phases(), steps)
			return nil
		},
	}
}

func printSteps(out io.Writer, phases []catalog.Phase, steps []catalog.Step) {
	header := color.New(color.FgCyan, color.Bold)
	scope := color.New(color.FgHiBlack)

	for _, phase := range phases {
		var inPhase []catalog.Step
		for _, s := range steps {
			if s.Phase == phase.ID {
				inPhase = append(inPhase, s)
			}
		}
		if len(inPhase) == 0 {
			continue
		}

		header.Fprintf(out, "Phase %d: %s\n", phase.ID, phase.Name)
		for _, s := range inPhase {
			label := string(s.Scope)
			if s.Scope == catalog.ScopePlatform {
				label = s.Platform
			}
			fmt.Fprintf(out, "  %-28s %s %s\n", s.ID, s.Title, scope.Sprintf("[%s, %d items]", label, len(s.Checklist)))
		}
	}
}
