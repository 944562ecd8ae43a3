package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rxcalc/pharmacy-calculator/internal/domain"
	"github.com/rxcalc/pharmacy-calculator/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes a fresh command tree and returns stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	stdout, _, err := runCLIStreams(t, args...)
	return stdout, err
}

// runCLIStreams executes a fresh command tree and returns stdout and stderr.
func runCLIStreams(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestBMICommand(t *testing.T) {
	out, err := runCLI(t, "bmi", "--height", "180", "--weight", "81", "-f", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "bmi,25.00")
	assert.Contains(t, out, "category,Fazla kilolu")
}

func TestBMICommand_InvalidInput(t *testing.T) {
	_, err := runCLI(t, "bmi", "--height", "0", "--weight", "81")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBMICommand_MissingFlag(t *testing.T) {
	_, err := runCLI(t, "bmi", "--height", "180")
	assert.Error(t, err)
}

func TestClinicalCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bsa", []string{"bsa", "--height", "180", "--weight", "80"}, "bsa,2.000"},
		{"calcium", []string{"calcium", "--calcium", "8", "--albumin", "3"}, "corrected,8.80"},
		{"alcohol default source", []string{"alcohol", "--target", "70", "--volume", "1000"}, "strong_volume,729.17"},
		{"alcohol custom source", []string{"alcohol", "--target", "45", "--volume", "100", "--source", "90"}, "diluent_volume,50.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCLI(t, append(tt.args, "-f", "csv")...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestZScoreCommand(t *testing.T) {
	out, err := runCLI(t, "zscore", "--birth", "2024-01-10", "--date", "11.05.2025", "--sex", "erkek", "--weight", "10.5228", "-f", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "age_months,16.0")
	assert.Contains(t, out, "metric,Kilo/Yaş")
	assert.Contains(t, out, "z_score,0.00")
}

func TestZScoreCommand_Errors(t *testing.T) {
	_, err := runCLI(t, "zscore", "--birth", "2015-03-15", "--date", "2020-05-01", "--sex", "female", "--weight", "18")
	assert.ErrorIs(t, err, domain.ErrMissingHeight)

	_, err = runCLI(t, "zscore", "--birth", "2000-01-01", "--date", "2025-01-01", "--sex", "female", "--weight", "60", "--height", "165")
	assert.ErrorIs(t, err, domain.ErrAgeOutOfRange)

	_, err = runCLI(t, "zscore", "--birth", "yesterday", "--sex", "female", "--weight", "10")
	assert.Error(t, err)

	_, err = runCLI(t, "zscore", "--birth", "2024-01-10", "--sex", "other", "--weight", "10")
	assert.Error(t, err)
}

func TestStockCommand_Defaults(t *testing.T) {
	out, err := runCLI(t, "stock", "-f", "csv")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[1], "1,10,1,11,"))
	assert.True(t, strings.HasPrefix(lines[4], "4,100,30,130,"))
	assert.Equal(t, 1, strings.Count(out, ",true"))
}

func TestStockCommand_FlagsOverride(t *testing.T) {
	out, err := runCLI(t, "stock",
		"--current-stock", "0", "--inflation", "0", "--cash-ratio", "0.2",
		"--purchase-date", "2025-01-15", "--option", "10+0", "--option", "20",
		"-f", "csv")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "1,10,0,10,1000.00,100.00,1,"))
	assert.True(t, strings.HasPrefix(lines[2], "2,20,0,20,2000.00,100.00,1,"))
}

func TestStockCommand_TraceFormat(t *testing.T) {
	out, err := runCLI(t, "stock", "--option", "10+1", "-f", "detailed-csv")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Option,Month,Date,"))
	assert.Contains(t, out, "10+1,1,")
}

func TestStockCommand_HTML(t *testing.T) {
	out, err := runCLI(t, "stock", "-f", "html")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "100 + 30 Teklifi")
	assert.Contains(t, out, "Nakit Satış Payı")
}

func TestStockCommand_InvalidOption(t *testing.T) {
	_, err := runCLI(t, "stock", "--option", "ten+one")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = runCLI(t, "stock", "--cash-ratio", "1.5")
	assert.ErrorIs(t, err, domain.ErrInvalidRatio)
}

func TestUnknownFormat(t *testing.T) {
	_, err := runCLI(t, "bsa", "--height", "170", "--weight", "70", "-f", "pdf")
	require.Error(t, err)
	assert.True(t, errors.Is(err, output.ErrUnsupportedFormat))
}

func TestExampleConfigRoundTrip(t *testing.T) {
	out, err := runCLI(t, "example-config")
	require.NoError(t, err)
	assert.Contains(t, out, "purchase_price:")

	out, err = runCLI(t, "example-config", "--config-format", "toml")
	require.NoError(t, err)
	assert.Contains(t, out, "[stock]")

	for _, name := range []string{"scenario.yaml", "scenario.toml"} {
		path := filepath.Join(t.TempDir(), name)
		_, err := runCLI(t, "example-config", "--output", path)
		require.NoError(t, err)
		_, err = os.Stat(path)
		require.NoError(t, err)

		out, err := runCLI(t, "--config", path, "stock", "-f", "csv")
		require.NoError(t, err, name)
		assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 5, name)
	}
}

func TestStockCommand_ZeroDefaultCashRatio(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("settings:\n  default_cash_ratio: 0\n"), 0o644))

	args := []string{"stock", "--current-stock", "0", "--inflation", "0", "--option", "10+0", "-f", "csv"}
	out, err := runCLI(t, append([]string{"--config", path}, args...)...)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], "1,10,0,10,1000.00,100.00,1,0.00,1100.00,"), lines[1])

	out, err = runCLI(t, args...)
	require.NoError(t, err)
	assert.Contains(t, out, "1,10,0,10,1000.00,100.00,1,260.00,880.00,")
}

func TestVerboseLogsGoToStderr(t *testing.T) {
	stdout, stderr, err := runCLIStreams(t, "-v", "bsa", "--height", "170", "--weight", "70", "-f", "csv")
	require.NoError(t, err)
	assert.NotContains(t, stdout, "engine ready")
	assert.Contains(t, stderr, "engine ready")
	assert.Contains(t, stderr, "growth_tables=4")
	assert.Contains(t, stderr, "command=bsa")

	_, stderr, err = runCLIStreams(t, "bsa", "--height", "170", "--weight", "70", "-f", "csv")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestConfigFileErrors(t *testing.T) {
	_, err := runCLI(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "version")
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "rxcalc v"+Version)
	assert.Contains(t, out, "Go Version:")
}

func TestParseStockOption(t *testing.T) {
	opt, err := parseStockOption(" 50 + 10 ")
	require.NoError(t, err)
	assert.Equal(t, domain.StockOption{Main: 50, Bonus: 10}, opt)

	opt, err = parseStockOption("30")
	require.NoError(t, err)
	assert.Equal(t, domain.StockOption{Main: 30}, opt)

	_, err = parseStockOption("5+x")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	printError(&buf, fail("bmi", domain.ErrInvalidInput))
	assert.Equal(t, "Hata [InvalidInput]: bmi: invalid input\n", buf.String())

	buf.Reset()
	printError(&buf, errors.New("boom"))
	assert.Equal(t, "Hata: boom\n", buf.String())
}
