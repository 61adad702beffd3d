package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rgehrsitz/fincalc/internal/calculation"
	"github.com/rgehrsitz/fincalc/internal/config"
	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/rgehrsitz/fincalc/internal/logging"
	"github.com/rgehrsitz/fincalc/internal/output"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// globalFlags are shared by every subcommand
type globalFlags struct {
	configFile string
	logLevel   string
	logFormat  string
	outputFile string
	format     string
}

// app bundles what a command needs after settings and logging are resolved
type app struct {
	settings *config.Settings
	logger   *zap.Logger
	engine   *calculation.Engine
}

func newApp(flags *globalFlags) (*app, error) {
	settings, err := config.LoadSettings(flags.configFile)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(settings.Logging, flags.logLevel, flags.logFormat)
	if err != nil {
		return nil, err
	}

	engine := calculation.NewEngineWithPolicy(settings.EnginePolicy())
	engine.SetLogger(logger.Sugar())

	return &app{settings: settings, logger: logger, engine: engine}, nil
}

func (a *app) close() {
	_ = a.logger.Sync()
}

// reportFormat returns the --format flag, falling back to the settings file
func (a *app) reportFormat(flags *globalFlags) string {
	if flags.format != "" {
		return flags.format
	}
	return a.settings.Output.Format
}

// writeReport renders the report and sends it to --output or stdout.
// PDF output without --output goes to a timestamped file.
func writeReport(cmd *cobra.Command, report *domain.Report, formatName, outputFile string) error {
	f := output.GetFormatterByName(formatName)
	if f == nil {
		return fmt.Errorf("unknown format %q (available: %s)", formatName, strings.Join(output.FormatterNames(), ", "))
	}

	if outputFile == "" && f.Name() == "pdf" {
		filename, err := output.WriteFormatted(f, report, "pdf")
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", filename)
		return nil
	}

	data, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("failed to format report: %w", err)
	}

	if outputFile != "" {
		if err := os.WriteFile(outputFile, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", outputFile, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", outputFile)
		return nil
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "fincalc %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.Main.Path + " " + bi.GoVersion
	}
	return ""
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "fincalc",
		Short: "Personal finance calculators",
		Long: `Loan EMI, fixed deposit, GST, HRA exemption, simple and compound interest,
PPF, ROI/CAGR, SIP/lumpsum and NPS calculators.

Examples:
  fincalc calc emi principal=500000 annual_rate_pct=8.5 tenure_years=5
  fincalc calc sip mode=lumpsum principal=100000 --format json
  fincalc batch plans.yaml --format html --output report.html
  fincalc compare fd principal=100000 --vary annual_rate_pct=6,7,8
  fincalc list`,
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configFile, "config", "", "Settings file (YAML)")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	pf.StringVar(&flags.logFormat, "log-format", "", "Log format (console, json)")
	pf.StringVarP(&flags.outputFile, "output", "o", "", "Write the report to a file instead of stdout")
	pf.StringVarP(&flags.format, "format", "f", "", "Output format ("+strings.Join(output.FormatterNames(), ", ")+")")

	root.AddCommand(calcCmd(flags))
	root.AddCommand(batchCmd(flags))
	root.AddCommand(compareCmd(flags))
	root.AddCommand(validateCmd())
	root.AddCommand(listCmd(flags))
	root.AddCommand(versionCmd())

	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
