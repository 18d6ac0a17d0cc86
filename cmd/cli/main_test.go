package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"solar-quote/internal/config"
	"solar-quote/internal/model"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCalculate_FlagOverrides(t *testing.T) {
	out, err := run(t, "calculate", "--loan-pct", "50")
	require.NoError(t, err)

	require.Contains(t, out, "Loan=313008")
	require.Contains(t, out, "Annual payment=29121")
	require.Contains(t, out, "IRR=8.6%")
	require.Contains(t, out, "NPV=126479")
	require.Contains(t, out, "Payback=8.5")
}

func TestCalculate_ConfigAndCSV(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "quote.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
customer:
  name: Kibbutz Test
params:
  manufacturer: solaredge
  period: 22
`), 0o644))

	outPath := filepath.Join(dir, "results", "cashflows.csv")
	out, err := run(t, "calculate", "--config", cfgPath, "--period", "10", "--out", outPath)
	require.NoError(t, err)
	require.Contains(t, out, "Quote for Kibbutz Test")
	require.Contains(t, out, "Wrote 10 rows")

	raw, err := os.ReadFile(outPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 11)
}

func TestCalculate_UnknownManufacturer(t *testing.T) {
	_, err := run(t, "calculate", "--manufacturer", "ACME")
	require.Error(t, err)
}

func TestDefaults_RoundTripsThroughConfig(t *testing.T) {
	out, err := run(t, "defaults")
	require.NoError(t, err)

	cfg, err := config.Parse([]byte(out))
	require.NoError(t, err)
	require.Equal(t, model.DefaultParameters(), cfg.Params.Resolve())
}

func TestManufacturers(t *testing.T) {
	out, err := run(t, "manufacturers")
	require.NoError(t, err)
	for _, name := range []string{"FFD", "JINKO", "SOLAREDGE"} {
		require.Contains(t, out, name)
	}
}
