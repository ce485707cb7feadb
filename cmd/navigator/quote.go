package main

import (
	"fmt"

	"github.com/hacktx/financial-navigator/internal/calculation"
	"github.com/hacktx/financial-navigator/internal/domain"
	"github.com/hacktx/financial-navigator/pkg/money"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func quoteCmd() *cobra.Command {
	var (
		principal string
		rate      string
		down      string
		term      int
		schedule  bool
	)

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price a loan with explicit terms",
		Example: `  navigator quote --principal 20000 --rate 6.5 --term 72
  navigator quote --principal 25000 --rate 5.5 --term 60 --down 5000 --schedule`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := parseAmount("principal", principal)
			if err != nil {
				return err
			}
			r, err := parseAmount("rate", rate)
			if err != nil {
				return err
			}
			d, err := parseAmount("down", down)
			if err != nil {
				return err
			}

			q, err := newEngine().Quote(p, r, term, d)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Principal:       %s\n", money.Currency(q.Principal))
			fmt.Fprintf(out, "Interest rate:   %s\n", money.Percent(q.InterestRate, 2))
			fmt.Fprintf(out, "Term:            %d months\n", q.Term)
			fmt.Fprintf(out, "Down payment:    %s\n", money.Currency(q.DownPayment))
			fmt.Fprintf(out, "Monthly payment: %s\n", money.Currency(q.MonthlyPayment))
			fmt.Fprintf(out, "Total cost:      %s\n", money.Currency(q.TotalCost))
			fmt.Fprintf(out, "Total interest:  %s\n", money.Currency(q.TotalInterest))

			if schedule {
				fmt.Fprintln(out)
				fmt.Fprintf(out, "%-6s %-6s %14s %14s %14s\n", "Year", "Month", "Balance", "Interest", "Principal")
				rows := calculation.AmortizationSchedule(q.Principal, domain.FinancingOption{
					Type:           domain.FinancingLoan,
					InterestRate:   q.InterestRate,
					Term:           q.Term,
					MonthlyPayment: q.MonthlyPayment,
				})
				for _, row := range rows {
					fmt.Fprintf(out, "%-6d %-6d %14s %14s %14s\n", row.Year, row.Month,
						money.Currency(row.Balance), money.Currency(row.Interest), money.Currency(row.Principal))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&principal, "principal", "", "amount financed")
	cmd.Flags().StringVar(&rate, "rate", "0", "annual interest rate in percent")
	cmd.Flags().IntVar(&term, "term", 60, "loan term in months")
	cmd.Flags().StringVar(&down, "down", "0", "down payment added to the total cost")
	cmd.Flags().BoolVar(&schedule, "schedule", false, "print the yearly amortization schedule")
	_ = cmd.MarkFlagRequired("principal")
	return cmd
}

func parseAmount(flag, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: --%s %q is not a number", domain.ErrInvalidInput, flag, value)
	}
	return d, nil
}
