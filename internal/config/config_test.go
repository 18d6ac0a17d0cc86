package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"solar-quote/internal/catalog"
	"solar-quote/internal/model"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "quote.yaml", `
customer:
  name: Test Customer
  company: Test Ltd
  phone: "0501234567"
rep: admin
params:
  manufacturer: jinko
  storage_kwh: 800
  loan_pct: 0
  period: 25
`)

	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "Test Customer", c.Customer.Name)
	require.Equal(t, "0501234567", c.Customer.Phone)
	require.Equal(t, "admin", c.Rep)

	p := c.Parameters()
	require.Equal(t, "JINKO", p.Manufacturer)
	require.Equal(t, 800.0, p.StorageKWh)
	require.Equal(t, 25, p.PeriodYears)
	require.Equal(t, 0.0, p.LoanPct)
	// untouched fields fall back to defaults
	require.Equal(t, 70.0, p.PVDC)
	require.Equal(t, 0.42, p.PVTariff)
}

func TestLoad_ParamsFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "site.yaml", `
params:
  pv_dc: 100
  pv_ac: 80
  storage_kwh: 1000
`)
	path := writeFile(t, dir, "quote.yaml", `
params_file: site.yaml
customer:
  name: Site Owner
  email: owner@site.example
params:
  storage_kwh: 600
`)

	c, err := Load(path)
	require.NoError(t, err)
	p := c.Parameters()
	require.Equal(t, 100.0, p.PVDC)
	require.Equal(t, 80.0, p.PVAC)
	require.Equal(t, 600.0, p.StorageKWh)
	require.Equal(t, "owner@site.example", c.Customer.Email)
}

func TestLoad_UnknownManufacturer(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "quote.yaml", `
params:
  manufacturer: ACME
`)

	_, err := Load(path)
	require.Error(t, err)
	require.True(t, errors.Is(err, catalog.ErrUnknownManufacturer))

	// LoadUnchecked still returns the raw config
	c, err := LoadUnchecked(path)
	require.NoError(t, err)
	require.Equal(t, "ACME", *c.Params.Manufacturer)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.True(t, errors.Is(err, os.ErrNotExist))
}

func TestMergeInput(t *testing.T) {
	base := model.QuoteInput{
		PVDC:       model.Float(100),
		StorageKWh: model.Float(1000),
		LoanPct:    model.Float(50),
	}
	override := model.QuoteInput{
		StorageKWh: model.Float(400),
		LoanPct:    model.Float(0),
	}

	out := MergeInput(base, override)
	require.Equal(t, 100.0, *out.PVDC)
	require.Equal(t, 400.0, *out.StorageKWh)
	// an explicit zero overrides
	require.Equal(t, 0.0, *out.LoanPct)
	require.Nil(t, out.PVAC)
}

func TestValidate_Nil(t *testing.T) {
	var c *Config
	require.Error(t, c.Validate())
}
