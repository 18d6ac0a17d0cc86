package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"solar-quote/internal/config"
	"solar-quote/internal/model"
	"solar-quote/internal/projection"
	"solar-quote/internal/quote"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type calculateOpts struct {
	configPath string
	outPath    string
	overrides  model.QuoteParameters
}

func newCalculateCmd() *cobra.Command {
	opts := &calculateOpts{overrides: model.DefaultParameters()}

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Project yearly cash flows and headline metrics for one quote",
		Example: "  quote calculate --config examples/quote.yaml --out results/cashflows.csv\n" +
			"  quote calculate --storage-kwh 800 --loan-pct 50",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCalculate(cmd.OutOrStdout(), cmd.Flags(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "Path to YAML quote config")
	f.StringVar(&opts.outPath, "out", "", "Optional: write the yearly ledger as CSV")

	o := &opts.overrides
	f.Float64Var(&o.PVDC, "pv-dc", o.PVDC, "Existing PV DC capacity (kWp)")
	f.Float64Var(&o.PVAC, "pv-ac", o.PVAC, "Existing PV AC capacity (kW)")
	f.Float64Var(&o.PVAdditional, "pv-additional", o.PVAdditional, "Additional PV to install (kWp)")
	f.Float64Var(&o.PVYield, "pv-yield", o.PVYield, "Annual yield (kWh/kWp)")
	f.StringVar(&o.Manufacturer, "manufacturer", o.Manufacturer, "Storage manufacturer")
	f.Float64Var(&o.StorageKWh, "storage-kwh", o.StorageKWh, "Requested storage capacity (kWh)")
	f.Float64Var(&o.PVTariff, "pv-tariff", o.PVTariff, "Feed-in tariff (NIS/kWh)")
	f.Float64Var(&o.PVInstallCostPerKWp, "pv-install-cost", o.PVInstallCostPerKWp, "PV install cost (NIS/kWp)")
	f.Float64Var(&o.PVMaintenancePerKWp, "pv-maintenance", o.PVMaintenancePerKWp, "PV maintenance (NIS/kWp/year)")
	f.Float64Var(&o.StorageMaintenancePerKWh, "storage-maintenance", o.StorageMaintenancePerKWh, "Storage maintenance (NIS/kWh/year)")
	f.IntVar(&o.PeriodYears, "period", o.PeriodYears, "Projection period in years (capped at 25)")
	f.Float64Var(&o.LoanPct, "loan-pct", o.LoanPct, "Financed share of the install cost (%)")
	f.Float64Var(&o.InterestRatePct, "interest-rate", o.InterestRatePct, "Annual loan interest (%)")
	f.IntVar(&o.LoanPeriodYears, "loan-period", o.LoanPeriodYears, "Loan term in years")

	return cmd
}

func runCalculate(w io.Writer, flags *pflag.FlagSet, opts *calculateOpts) error {
	var base model.QuoteInput
	if opts.configPath != "" {
		cfg, err := config.Load(opts.configPath)
		if err != nil {
			return err
		}
		base = cfg.Params
		if cfg.Customer.Name != "" {
			fmt.Fprintf(w, "Quote for %s\n", cfg.Customer.Name)
		}
	}

	in := config.MergeInput(base, flagOverrides(flags, opts.overrides))
	res, err := quote.Calculate(in)
	if err != nil {
		return err
	}

	printSummary(w, res)
	printLedger(w, res.CashFlows)

	if opts.outPath != "" {
		if err := os.MkdirAll(filepath.Dir(opts.outPath), 0o755); err != nil {
			return err
		}
		if err := projection.WriteLedgerCSVFile(opts.outPath, res.CashFlows); err != nil {
			return err
		}
		fmt.Fprintf(w, "Wrote %d rows to %s\n", len(res.CashFlows), opts.outPath)
	}
	return nil
}

// flagOverrides keeps only the parameters the user set explicitly.
func flagOverrides(flags *pflag.FlagSet, p model.QuoteParameters) model.QuoteInput {
	all := p.Input()
	var in model.QuoteInput
	pick := map[string]func(){
		"pv-dc":               func() { in.PVDC = all.PVDC },
		"pv-ac":               func() { in.PVAC = all.PVAC },
		"pv-additional":       func() { in.PVAdditional = all.PVAdditional },
		"pv-yield":            func() { in.PVYield = all.PVYield },
		"manufacturer":        func() { in.Manufacturer = all.Manufacturer },
		"storage-kwh":         func() { in.StorageKWh = all.StorageKWh },
		"pv-tariff":           func() { in.PVTariff = all.PVTariff },
		"pv-install-cost":     func() { in.PVInstallCostPerKWp = all.PVInstallCostPerKWp },
		"pv-maintenance":      func() { in.PVMaintenancePerKWp = all.PVMaintenancePerKWp },
		"storage-maintenance": func() { in.StorageMaintenancePerKWh = all.StorageMaintenancePerKWh },
		"period":              func() { in.PeriodYears = all.PeriodYears },
		"loan-pct":            func() { in.LoanPct = all.LoanPct },
		"interest-rate":       func() { in.InterestRatePct = all.InterestRatePct },
		"loan-period":         func() { in.LoanPeriodYears = all.LoanPeriodYears },
	}
	for name, set := range pick {
		if flags.Changed(name) {
			set()
		}
	}
	return in
}

func printSummary(w io.Writer, res *model.Result) {
	fmt.Fprintf(w, "Storage: %d x %s = %.0f kWh\n", res.NumUnits, res.Manufacturer, res.ActualStorageKWh)
	fmt.Fprintf(w, "Install cost=%.0f (storage %.0f, PV %.0f)\n", res.TotalInstallCost, res.StorageCost, res.PVAdditionalCost)
	if res.LoanAmount > 0 {
		fmt.Fprintf(w, "Loan=%.0f Equity=%.0f Annual payment=%.0f\n", res.LoanAmount, res.EquityAmount, res.AnnualLoanPayment)
	}
	fmt.Fprintf(w, "IRR=%s%% NPV=%.0f Payback=%s Total profit=%.0f\n", res.IRR, res.NPV, res.PaybackYear, res.TotalProfit)
}

func printLedger(w io.Writer, ledger []model.YearRecord) {
	if len(ledger) == 0 {
		return
	}
	fmt.Fprintf(w, "%-5s %-12s %-12s %-12s %-12s %-12s\n", "year", "revenue", "costs", "loan", "net", "cumulative")
	for _, r := range ledger {
		fmt.Fprintf(w, "%-5d %-12.0f %-12.0f %-12.0f %-12.0f %-12.0f\n", r.Year, r.Revenue, r.Costs, r.LoanPayment, r.NetCashFlow, r.Cumulative)
	}
}
