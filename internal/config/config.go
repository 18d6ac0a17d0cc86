package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"solar-quote/internal/catalog"
	"solar-quote/internal/model"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk quote shape (YAML).
type Config struct {
	// Optional: load base parameters from a separate YAML (e.g. a site template).
	// Fields set in Params override the ones loaded from ParamsFile.
	ParamsFile string           `yaml:"params_file"`
	Customer   model.Customer   `yaml:"customer"`
	Rep        string           `yaml:"rep"`
	Params     model.QuoteInput `yaml:"params"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if c.ParamsFile != "" {
		paramsPath := c.ParamsFile
		if !filepath.IsAbs(paramsPath) {
			// Relative to the config file first, then to the working directory.
			cand := filepath.Join(filepath.Dir(path), paramsPath)
			if _, err := os.Stat(cand); err == nil {
				paramsPath = cand
			}
		}
		base, err := loadParamsFile(paramsPath)
		if err != nil {
			return nil, err
		}
		c.Params = MergeInput(base, c.Params)
	}
	return c, nil
}

// Parse decodes a quote config from YAML bytes.
func Parse(raw []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	p := c.Params.Resolve()
	if _, err := catalog.LookupManufacturer(p.Manufacturer); err != nil {
		return fmt.Errorf("params invalid: %w", err)
	}
	return nil
}

// Parameters returns the resolved parameters with defaults applied.
func (c *Config) Parameters() model.QuoteParameters {
	return c.Params.Resolve()
}

type paramsFileWrapper struct {
	Params model.QuoteInput `yaml:"params"`
}

func loadParamsFile(path string) (model.QuoteInput, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return model.QuoteInput{}, err
	}
	var w paramsFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return model.QuoteInput{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return w.Params, nil
}

// MergeInput overlays the fields set in override onto base.
func MergeInput(base, override model.QuoteInput) model.QuoteInput {
	out := base
	if override.PVDC != nil {
		out.PVDC = override.PVDC
	}
	if override.PVAC != nil {
		out.PVAC = override.PVAC
	}
	if override.PVAdditional != nil {
		out.PVAdditional = override.PVAdditional
	}
	if override.PVYield != nil {
		out.PVYield = override.PVYield
	}
	if override.Manufacturer != nil {
		out.Manufacturer = override.Manufacturer
	}
	if override.StorageKWh != nil {
		out.StorageKWh = override.StorageKWh
	}
	if override.PVTariff != nil {
		out.PVTariff = override.PVTariff
	}
	if override.PVInstallCostPerKWp != nil {
		out.PVInstallCostPerKWp = override.PVInstallCostPerKWp
	}
	if override.PVMaintenancePerKWp != nil {
		out.PVMaintenancePerKWp = override.PVMaintenancePerKWp
	}
	if override.StorageMaintenancePerKWh != nil {
		out.StorageMaintenancePerKWh = override.StorageMaintenancePerKWh
	}
	if override.PeriodYears != nil {
		out.PeriodYears = override.PeriodYears
	}
	if override.LoanPct != nil {
		out.LoanPct = override.LoanPct
	}
	if override.InterestRatePct != nil {
		out.InterestRatePct = override.InterestRatePct
	}
	if override.LoanPeriodYears != nil {
		out.LoanPeriodYears = override.LoanPeriodYears
	}
	return out
}
