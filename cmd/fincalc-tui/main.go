package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/fincalc/internal/calculation"
	"github.com/rgehrsitz/fincalc/internal/config"
	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/rgehrsitz/fincalc/internal/logging"
	"github.com/rgehrsitz/fincalc/internal/tui"
)

func main() {
	var configFile string

	root := &cobra.Command{
		Use:          "fincalc-tui [calculator]",
		Short:        "Interactive financial calculators",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadSettings(configFile)
			if err != nil {
				return err
			}

			engine := calculation.NewEngineWithPolicy(settings.EnginePolicy())

			// The terminal belongs to the UI, so logs only go to a file
			if settings.Logging.OutputFile != "" {
				logger, err := logging.New(settings.Logging, "", "")
				if err != nil {
					return err
				}
				defer func() { _ = logger.Sync() }()
				engine.SetLogger(logger.Sugar())
			}

			model := tui.NewModel(engine)
			if len(args) == 1 {
				kind, err := domain.ParseKind(args[0])
				if err != nil {
					return err
				}
				model = model.WithCalculator(kind)
			}

			p := tea.NewProgram(
				model,
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
			)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("error running TUI: %w", err)
			}
			return nil
		},
	}
	root.Flags().StringVar(&configFile, "config", "", "Settings file (YAML)")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
