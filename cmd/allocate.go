package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/goalsplit/backend/internal/allocation"
	"github.com/goalsplit/backend/internal/plan"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	flagPlan   string
	flagIncome string
	flagJSON   bool
)

var allocateCmd = &cobra.Command{
	Use:   "allocate",
	Short: "Split an income across the goals of a TOML plan",
	Long:  "Reads goals from a TOML plan file and prints how the income is split across them. Nothing is stored.",
	RunE:  runAllocate,
}

func init() {
	allocateCmd.Flags().StringVarP(&flagPlan, "plan", "p", "", "Path to the TOML plan file")
	allocateCmd.Flags().StringVarP(&flagIncome, "income", "i", "", "Income to allocate, overrides the income of the plan")
	allocateCmd.Flags().BoolVar(&flagJSON, "json", false, "Print the result as JSON")
	_ = allocateCmd.MarkFlagRequired("plan")

	rootCmd.AddCommand(allocateCmd)
}

type allocateOutput struct {
	Currency string `json:"currency"`
	allocation.Result
}

func runAllocate(cmd *cobra.Command, _ []string) error {
	p, err := plan.Load(flagPlan)
	if err != nil {
		return err
	}

	var income decimal.NullDecimal
	if flagIncome != "" {
		d, err := decimal.NewFromString(flagIncome)
		if err != nil {
			return fmt.Errorf("--income must be a number: %w", err)
		}
		income = decimal.NewNullDecimal(d)
	}

	result, err := p.Allocate(income)
	if err != nil {
		return err
	}

	currency := p.Currency
	if currency == "" {
		currency = cfg.DefaultCurrency
	}

	out := allocateOutput{Currency: currency, Result: result}
	if flagJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	return printTable(cmd.OutOrStdout(), out)
}

func printTable(w io.Writer, out allocateOutput) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintf(tw, "GOAL\tAMOUNT\tSHARE\t\n")
	for _, a := range out.Allocations {
		fmt.Fprintf(tw, "%s\t%s %s\t%s%%\t\n", a.GoalName, a.Amount, out.Currency, a.Percentage.StringFixed(2))
	}
	fmt.Fprintf(tw, "Leftover\t%s %s\t\t\n", out.Leftover, out.Currency)
	fmt.Fprintf(tw, "Income\t%s %s\t\t\n", out.Income, out.Currency)

	return tw.Flush()
}
