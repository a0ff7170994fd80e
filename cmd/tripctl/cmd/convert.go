package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/mmynk/tripmate/internal/calculator"
)

var convertRate string

// convertCmd represents the convert command.
var convertCmd = &cobra.Command{
	Use:   "convert AMOUNT",
	Short: "Convert an amount to the display currency",
	Long: `Convert an amount in the trip's base currency to its display currency.

Example:
  tripctl convert 30000
  tripctl convert 30,000 --rate 0.025`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&convertRate, "rate", "", "exchange rate to the display currency (default from the trip)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	amount, err := parseAmount(args[0])
	if err != nil {
		return err
	}

	trip, err := loadTrip()
	if err != nil {
		return err
	}

	rate := trip.ExchangeRate
	if convertRate != "" {
		if rate, err = calculator.ParseRate(convertRate); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s = %s %s (rate %s)\n",
		humanize.Comma(amount), trip.BaseCurrency,
		humanize.Comma(calculator.Convert(amount, rate)), trip.DisplayCurrency,
		rate.String())
	return nil
}

// parseAmount accepts whole base-currency units, with optional thousands separators.
func parseAmount(s string) (int64, error) {
	amount, err := strconv.ParseInt(strings.ReplaceAll(strings.TrimSpace(s), ",", ""), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: must be a whole number", s)
	}
	return amount, nil
}
