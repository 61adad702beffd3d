package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/fincalc/internal/catalog"
	"github.com/rgehrsitz/fincalc/internal/compare"
	"github.com/rgehrsitz/fincalc/internal/config"
	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/rgehrsitz/fincalc/internal/params"
)

func calcCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "calc <calculator> [key=value ...]",
		Short: "Run one calculator",
		Long: `Run one calculator. Parameters not given take the calculator's defaults;
see "fincalc list" for names and ranges.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(flags)
			if err != nil {
				return err
			}
			defer a.close()

			req, err := params.NewRegistry().ParseSpec(args[0], args[1:])
			if err != nil {
				return err
			}

			report := a.engine.CalculateAll(cmd.Context(), []domain.Request{req})
			report.Title = req.Name
			return writeReport(cmd, &report, a.reportFormat(flags), flags.outputFile)
		},
	}
}

func batchCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "batch <file.yaml>",
		Short: "Run every calculation in a batch file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(flags)
			if err != nil {
				return err
			}
			defer a.close()

			parser := config.NewInputParser()
			batch, err := parser.LoadFromFile(args[0])
			if err != nil {
				return err
			}
			reqs, err := parser.Requests(batch)
			if err != nil {
				return err
			}

			a.logger.Sugar().Debugf("loaded %d calculations from %s", len(reqs), args[0])
			report := a.engine.CalculateAll(cmd.Context(), reqs)
			report.Title = batch.Title
			if report.Title == "" {
				report.Title = a.settings.Report.Title
			}
			return writeReport(cmd, &report, a.reportFormat(flags), flags.outputFile)
		},
	}
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file.yaml>",
		Short: "Validate a batch file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			batch, err := parser.LoadFromFile(args[0])
			if err != nil {
				return err
			}
			reqs, err := parser.Requests(batch)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Batch file %s is valid (%d calculations)\n", args[0], len(reqs))
			for _, r := range reqs {
				if len(r.Invalid) > 0 {
					fmt.Fprintf(out, "  warning: %s has unreadable values for %s\n", r.Name, strings.Join(r.Invalid, ", "))
				}
			}
			return nil
		},
	}
}

func listCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List calculators with their parameters and ranges",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := catalog.All()
			if strings.EqualFold(flags.format, "json") {
				data, err := json.MarshalIndent(entries, "", "  ")
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return err
			}

			out := cmd.OutOrStdout()
			for _, e := range entries {
				fmt.Fprintf(out, "%s (%s)  %s\n", e.Name, e.Kind, e.Route)
				fmt.Fprintf(out, "  %s\n", e.Description)
				for _, p := range e.Params {
					fmt.Fprintf(out, "  %-20s %-32s default %-8s %s\n", p.Key, p.Label, p.Default, describeRange(p))
				}
				var similar []string
				for _, s := range catalog.Similar(e.Kind) {
					similar = append(similar, string(s.Kind))
				}
				fmt.Fprintf(out, "  similar: %s\n\n", strings.Join(similar, ", "))
			}
			return nil
		},
	}
}

func describeRange(p catalog.Param) string {
	var s string
	switch {
	case p.Numeric():
		s = fmt.Sprintf("%g..%g step %g", p.Bounds.Min, p.Bounds.Max, p.Bounds.Step)
	case len(p.Options) > 0:
		s = strings.Join(p.Options, "|")
	}
	if p.OnlyFor != "" {
		s += " (" + p.OnlyFor + " only)"
	}
	return s
}

func compareCmd(flags *globalFlags) *cobra.Command {
	var vary []string

	cmd := &cobra.Command{
		Use:   "compare <calculator> [key=value ...] --vary key=v1,v2",
		Short: "Compare a calculation against variations of its parameters",
		Long: `Run a calculator once with the given parameters, then once per varied value,
and show every result next to its change from the base run.

Examples:
  fincalc compare emi principal=500000 --vary annual_rate_pct=8,9,10
  fincalc compare sip --vary tenure_years=10,20 --vary annual_rate_pct=10 --format csv`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(flags)
			if err != nil {
				return err
			}
			defer a.close()

			var variations []compare.Variation
			for _, spec := range vary {
				v, err := compare.ParseVariation(spec)
				if err != nil {
					return err
				}
				variations = append(variations, v)
			}

			ce := compare.NewCompareEngine(a.engine, params.NewRegistry())
			set, err := ce.Compare(cmd.Context(), args[0], args[1:], variations)
			if err != nil {
				return err
			}

			var text string
			switch strings.ToLower(flags.format) {
			case "", "console", "table":
				text = (&compare.TableFormatter{}).Format(set)
			case "csv":
				text, err = (&compare.CSVFormatter{}).Format(set)
			case "json":
				var data []byte
				data, err = compare.JSONFormatter{Pretty: true}.Format(set)
				text = string(data)
			default:
				return fmt.Errorf("unknown comparison format %q (available: table, csv, json)", flags.format)
			}
			if err != nil {
				return err
			}

			if flags.outputFile != "" {
				if err := os.WriteFile(flags.outputFile, []byte(text), 0644); err != nil {
					return fmt.Errorf("failed to write %s: %w", flags.outputFile, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Comparison written to %s\n", flags.outputFile)
				return nil
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), text)
			return err
		},
	}
	cmd.Flags().StringArrayVar(&vary, "vary", nil, "Parameter values to compare, as key=v1,v2 (repeatable)")
	return cmd
}
