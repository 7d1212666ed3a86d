package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rrspmax/bracketgen/internal/config"
	"github.com/rrspmax/bracketgen/internal/taxrate"
)

var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "List the jurisdictions in the active dataset",
	Long: "Rates prints the tax year and per-jurisdiction band counts of the active\n" +
		"dataset (built-in tables, or the rates file when one is configured).",
	Args: cobra.NoArgs,
	RunE: runRates,
}

func runRates(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if rf, _ := cmd.Flags().GetString("rates-file"); rf != "" {
		cfg.RatesFile = rf
	}

	ds, err := openDataset(cfg.RatesFile)
	if err != nil {
		return err
	}

	fmt.Printf("tax year: %d\n\n", ds.Year())
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tNAME\tBANDS")

	fed, err := ds.Federal()
	if err != nil {
		return fmt.Errorf("federal schedule: %w", err)
	}
	fmt.Fprintf(w, "%s\tFederal\t%d\n", taxrate.FederalCode, len(fed))

	for _, code := range taxrate.ProvincialCodes {
		name, _ := taxrate.Name(code)
		sched, err := ds.Provincial(code)
		if err != nil {
			fmt.Fprintf(w, "%s\t%s\t(unavailable)\n", code, name)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%d\n", code, name, len(sched))
	}
	return w.Flush()
}
