package config

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/fincalc/internal/calculation"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. FINCALC_LOGGING_LEVEL
const EnvPrefix = "FINCALC"

// Settings holds application settings
type Settings struct {
	Logging LoggingSettings `mapstructure:"logging"`
	Output  OutputSettings  `mapstructure:"output"`
	Policy  PolicySettings  `mapstructure:"policy"`
	Report  ReportSettings  `mapstructure:"report"`
}

// LoggingSettings holds logging configuration options
type LoggingSettings struct {
	Level      string `mapstructure:"level"`       // debug, info, warn, error
	Format     string `mapstructure:"format"`      // json, console
	OutputFile string `mapstructure:"output_file"` // optional file output
}

// OutputSettings selects the default report format
type OutputSettings struct {
	Format string `mapstructure:"format"`
}

// PolicySettings adjusts calculator behavior
type PolicySettings struct {
	ClampNegativeHRA bool    `mapstructure:"clamp_negative_hra"`
	PPFRatePct       float64 `mapstructure:"ppf_rate_pct"`
}

// ReportSettings configures batch reports
type ReportSettings struct {
	Title string `mapstructure:"title"`
}

// DefaultSettings returns the settings used when nothing is configured
func DefaultSettings() Settings {
	return Settings{
		Logging: LoggingSettings{Level: "warn", Format: "console"},
		Output:  OutputSettings{Format: "console"},
		Policy:  PolicySettings{PPFRatePct: calculation.DefaultPPFRatePct.InexactFloat64()},
		Report:  ReportSettings{Title: "Financial Calculations"},
	}
}

// LoadSettings reads settings from an optional YAML file, applying defaults
// and FINCALC_* environment overrides
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()

	defaults := DefaultSettings()
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)
	v.SetDefault("logging.output_file", defaults.Logging.OutputFile)
	v.SetDefault("output.format", defaults.Output.Format)
	v.SetDefault("policy.clamp_negative_hra", defaults.Policy.ClampNegativeHRA)
	v.SetDefault("policy.ppf_rate_pct", defaults.Policy.PPFRatePct)
	v.SetDefault("report.title", defaults.Report.Title)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading settings file: %w", err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("unable to decode settings: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &settings, nil
}

// Validate checks the settings values
func (s *Settings) Validate() error {
	switch strings.ToLower(s.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level: %s", s.Logging.Level)
	}
	switch strings.ToLower(s.Logging.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format: %s", s.Logging.Format)
	}
	if s.Policy.PPFRatePct <= 0 {
		return fmt.Errorf("policy.ppf_rate_pct must be positive, got %v", s.Policy.PPFRatePct)
	}
	return nil
}

// EnginePolicy converts the policy settings for the calculation engine
func (s *Settings) EnginePolicy() calculation.Policy {
	return calculation.Policy{
		ClampNegativeHRA: s.Policy.ClampNegativeHRA,
		PPFRatePct:       decimal.NewFromFloat(s.Policy.PPFRatePct),
	}
}
