package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vitwit/agentcommerce/calculator"
	"github.com/vitwit/agentcommerce/types"
)

func newCalcCmd(a *app) *cobra.Command {
	var (
		platforms int64
		merchants int64
		clamp     bool
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compare integration counts with and without a shared standard",
		Long: `Without a standard every AI platform integrates with every merchant
(platforms x merchants). With one, each party implements it once
(platforms + merchants).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if platforms < 0 || merchants < 0 {
				return types.Errorf(types.ErrInvalidInput, "counts must not be negative")
			}
			if !calculator.InRange(platforms) || !calculator.InRange(merchants) {
				return types.Errorf(types.ErrInvalidInput, "counts must not exceed %d", calculator.MaxCount)
			}
			if clamp {
				platforms, merchants = calculator.ClampToSliders(platforms, merchants)
			}

			cost := a.ac.Calculate(platforms, merchants)
			w := cmd.OutOrStdout()
			if asJSON {
				return printJSON(w, struct {
					calculator.Cost
					Display string `json:"display"`
				}{cost, cost.FormatPercent()})
			}

			fmt.Fprintf(w, "AI platforms:      %d\n", cost.Platforms)
			fmt.Fprintf(w, "Merchants:         %d\n\n", cost.Merchants)
			fmt.Fprintf(w, "Without standard:  %d integrations (N×N)\n", cost.WithoutStandard)
			fmt.Fprintf(w, "With standard:     %d integrations (N+N)\n", cost.WithStandard)
			fmt.Fprintf(w, "Reduction:         %s\n", cost.FormatPercent())
			return nil
		},
	}

	cmd.Flags().Int64VarP(&platforms, "platforms", "p", calculator.DefaultPlatforms, "number of AI platforms")
	cmd.Flags().Int64VarP(&merchants, "merchants", "m", calculator.DefaultMerchants, "number of merchants")
	cmd.Flags().BoolVar(&clamp, "clamp", false, fmt.Sprintf("bound counts to %d-%d platforms and %d-%d merchants",
		calculator.MinPlatforms, calculator.MaxPlatforms, calculator.MinMerchants, calculator.MaxMerchants))
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}
