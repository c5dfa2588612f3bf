package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/fiscalia-dev/spedparse/internal/config"
	"github.com/fiscalia-dev/spedparse/internal/extract"
	"github.com/fiscalia-dev/spedparse/internal/model"
	"github.com/fiscalia-dev/spedparse/internal/sped"
)

const periodFormat = "2006-01-02"

func newParseCommand() *cobra.Command {
	var family string
	var configPath string

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse one SPED file and print a summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd.OutOrStdout(), family, configPath, args[0])
		},
	}

	cmd.Flags().StringVar(&family, "family", "", "file family: contributions, fiscal, or ledger (required)")
	_ = cmd.MarkFlagRequired("family")
	cmd.Flags().StringVar(&configPath, "config", "", "path to spedparse.yaml")

	return cmd
}

func runParse(w io.Writer, family, configPath, path string) error {
	ext, opts, err := resolve(family, configPath)
	if err != nil {
		return err
	}

	res, err := sped.ParseFile(ext, path, opts)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s  %s (%s)\n", res.Header.CNPJ, res.Header.CompanyName, res.Header.UF)
	fmt.Fprintf(w, "period: %s to %s\n",
		res.Header.PeriodStart.Format(periodFormat),
		res.Header.PeriodEnd.Format(periodFormat))
	fmt.Fprintf(w, "strategy: %s\n", res.Strategy)

	if len(res.SalesItems) > 0 {
		fmt.Fprintf(w, "sales: %d items, total %s\n", len(res.SalesItems), itemTotal(res.SalesItems).StringFixed(2))
	}
	if len(res.PurchaseItems) > 0 {
		fmt.Fprintf(w, "purchases: %d items, total %s\n", len(res.PurchaseItems), itemTotal(res.PurchaseItems).StringFixed(2))
	}
	if len(res.Expenses) > 0 {
		debits, credits := expenseTotals(res.Expenses)
		fmt.Fprintf(w, "expenses: %d accounts, debits %s, credits %s\n",
			len(res.Expenses), debits.StringFixed(2), credits.StringFixed(2))
	}
	return nil
}

// resolve picks the family extractor and builds options from config.
func resolve(family, configPath string) (sped.Extractor, sped.Options, error) {
	reg := extract.DefaultRegistry()
	ext := reg.Get(family)
	if ext == nil {
		return nil, sped.Options{}, fmt.Errorf("unknown family %q (have: %s)",
			family, strings.Join(reg.Families(), ", "))
	}

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, sped.Options{}, err
		}
		cfg = loaded
	}
	opts, err := cfg.Options()
	if err != nil {
		return nil, sped.Options{}, err
	}
	return ext, opts, nil
}

func itemTotal(items []model.Item) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.TotalValue)
	}
	return total
}

func expenseTotals(expenses []model.Expense) (debits, credits decimal.Decimal) {
	debits, credits = decimal.Zero, decimal.Zero
	for _, e := range expenses {
		if e.IsDebit {
			debits = debits.Add(e.Value)
		} else {
			credits = credits.Add(e.Value)
		}
	}
	return debits, credits
}
