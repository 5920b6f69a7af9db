package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chainsafe/party-search/pkg/fee"
)

func newFeesCmd() *cobra.Command {
	var (
		price string
		fees  []string
	)

	cmd := &cobra.Command{
		Use:   "fees",
		Short: "Compute marketplace fee amounts for a price",
		Example: `  partyctl fees --price 1000000 \
    --fee 0x1111111111111111111111111111111111111111:250 \
    --fee 0x2222222222222222222222222222222222222222:100`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := fee.ParsePrice(price)
			if err != nil {
				return err
			}

			parsed := make([]fee.Fee, 0, len(fees))
			for _, raw := range fees {
				f, err := fee.ParseFee(raw)
				if err != nil {
					return err
				}
				parsed = append(parsed, f)
			}

			q, err := fee.Compute(p, parsed)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "price:          %s\n", q.Price.String())
			for _, a := range q.Fees {
				fmt.Fprintf(out, "fee:            %s %s (%d bps)\n", a.Recipient, a.Amount.String(), a.BasisPoints)
			}
			fmt.Fprintf(out, "adjusted price: %s\n", q.AdjustedPrice.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&price, "price", "", "Sale price in the smallest unit")
	cmd.Flags().StringArrayVar(&fees, "fee", nil, "Fee as recipient:basis_points (repeatable)")
	_ = cmd.MarkFlagRequired("price")
	return cmd
}
