package main

import (
	"fmt"
	"io"
	"os"

	"solar-quote/internal/catalog"
	"solar-quote/internal/model"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "quote",
		Short:        "Price solar-plus-storage quotes from the command line",
		SilenceUsage: true,
	}
	root.AddCommand(newCalculateCmd(), newManufacturersCmd(), newDefaultsCmd())
	return root
}

func newManufacturersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "manufacturers",
		Short: "List storage manufacturers and unit prices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printManufacturers(cmd.OutOrStdout())
			return nil
		},
	}
}

func printManufacturers(w io.Writer) {
	fmt.Fprintf(w, "%-10s %-10s %-12s %-12s\n", "name", "unit kWh", "USD/kWh", "NIS/kWh")
	for _, m := range catalog.Manufacturers() {
		fmt.Fprintf(w, "%-10s %-10.0f %-12.2f %-12.2f\n", m.Name, m.UnitKWh, m.UnitCostUSDPerKWh, m.UnitCostUSDPerKWh*catalog.USDToNIS)
	}
}

func newDefaultsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Print the default quote parameters as a YAML params block",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := yaml.Marshal(map[string]model.QuoteParameters{"params": model.DefaultParameters()})
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
