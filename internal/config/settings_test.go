package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_Defaults(t *testing.T) {
	settings, err := LoadSettings("")
	require.NoError(t, err)

	assert.Equal(t, DefaultSettings(), *settings)
	assert.Equal(t, "console", settings.Output.Format)
	assert.False(t, settings.Policy.ClampNegativeHRA)
	assert.InDelta(t, 7.1, settings.Policy.PPFRatePct, 1e-9)
}

func TestLoadSettings_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fincalc.yaml")
	content := `
logging:
  level: debug
  format: json
output:
  format: html
policy:
  clamp_negative_hra: true
  ppf_rate_pct: 7.5
report:
  title: "Q3 review"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	settings, err := LoadSettings(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", settings.Logging.Level)
	assert.Equal(t, "json", settings.Logging.Format)
	assert.Equal(t, "html", settings.Output.Format)
	assert.True(t, settings.Policy.ClampNegativeHRA)
	assert.Equal(t, "Q3 review", settings.Report.Title)

	policy := settings.EnginePolicy()
	assert.True(t, policy.ClampNegativeHRA)
	assert.True(t, policy.PPFRatePct.Equal(decimal.NewFromFloat(7.5)))
}

func TestLoadSettings_EnvOverride(t *testing.T) {
	t.Setenv("FINCALC_LOGGING_LEVEL", "error")
	t.Setenv("FINCALC_REPORT_TITLE", "From env")

	settings, err := LoadSettings("")
	require.NoError(t, err)
	assert.Equal(t, "error", settings.Logging.Level)
	assert.Equal(t, "From env", settings.Report.Title)
}

func TestLoadSettings_Errors(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "error reading settings file")

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: loud\n"), 0644))
	_, err = LoadSettings(path)
	assert.ErrorContains(t, err, "invalid log level")
}

func TestSettings_Validate(t *testing.T) {
	s := DefaultSettings()
	require.NoError(t, s.Validate())

	s.Logging.Format = "xml"
	assert.ErrorContains(t, s.Validate(), "invalid log format")

	s = DefaultSettings()
	s.Policy.PPFRatePct = 0
	assert.ErrorContains(t, s.Validate(), "ppf_rate_pct")
}
