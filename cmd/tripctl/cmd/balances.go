package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"connectrpc.com/connect"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mmynk/tripmate/internal/config"
	"github.com/mmynk/tripmate/internal/service"
	"github.com/mmynk/tripmate/internal/storage"
	"github.com/mmynk/tripmate/internal/storage/sqlite"
	"github.com/mmynk/tripmate/pkg/api"
)

const (
	defaultColumns = 80
	amountWidth    = 12
)

var balancesRate string

// balancesCmd represents the balances command.
var balancesCmd = &cobra.Command{
	Use:   "balances",
	Short: "Print balances and the settlement plan",
	Long: `Print every traveler's balance and the transfers that settle the trip.

Example:
  tripctl balances
  tripctl balances --rate 0.025`,
	Args: cobra.NoArgs,
	RunE: runBalances,
}

func init() {
	balancesCmd.Flags().StringVar(&balancesRate, "rate", "", "exchange rate to the display currency (default from the trip)")
}

func runBalances(cmd *cobra.Command, args []string) error {
	trip, err := loadTrip()
	if err != nil {
		return err
	}

	store, err := sqlite.New(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer store.Close()

	snapshot, err := fetchBalances(context.Background(), store, trip, balancesRate)
	if err != nil {
		return err
	}

	printBalances(cmd.OutOrStdout(), trip, snapshot, terminalColumns())
	return nil
}

// fetchBalances runs the same computation the server answers GetBalances with.
func fetchBalances(ctx context.Context, store storage.Store, trip *config.Trip, rate string) (*api.GetBalancesResponse, error) {
	resp, err := service.NewExpenseService(store, trip).GetBalances(ctx, connect.NewRequest(&api.GetBalancesRequest{ExchangeRate: rate}))
	if err != nil {
		return nil, fmt.Errorf("failed to compute balances: %w", err)
	}
	return resp.Msg, nil
}

// printBalances renders a snapshot as a table followed by the transfers.
// columns caps the width of the horizontal rules.
func printBalances(w io.Writer, trip *config.Trip, b *api.GetBalancesResponse, columns int) {
	nameWidth := len("Traveler")
	for _, m := range b.Balances {
		if len(m.Name) > nameWidth {
			nameWidth = len(m.Name)
		}
	}
	tableWidth := nameWidth + 4*(amountWidth+1)
	rule := strings.Repeat("-", min(tableWidth, max(columns, 12)))

	fmt.Fprintf(w, "%s in %s (1 %s = %s %s)\n", trip.Name, trip.City, b.BaseCurrency, b.ExchangeRate, b.DisplayCurrency)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "%-*s %*s %*s %*s %*s\n",
		nameWidth, "Traveler",
		amountWidth, "Paid",
		amountWidth, "Owed",
		amountWidth, "Net",
		amountWidth, "Net "+b.DisplayCurrency,
	)
	for _, m := range b.Balances {
		fmt.Fprintf(w, "%-*s %*s %*s %*s %*s\n",
			nameWidth, m.Name,
			amountWidth, humanize.Comma(m.Paid),
			amountWidth, humanize.Comma(m.Owed),
			amountWidth, humanize.Comma(m.Net),
			amountWidth, humanize.Comma(m.NetConverted),
		)
	}
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Total spent: %s %s (%s %s)\n\n",
		humanize.Comma(b.TotalSpent), b.BaseCurrency,
		humanize.Comma(b.TotalSpentConverted), b.DisplayCurrency)

	if len(b.Settlements) == 0 {
		fmt.Fprintln(w, "Everyone is settled up.")
		return
	}
	fmt.Fprintln(w, "Settlements:")
	for _, t := range b.Settlements {
		fmt.Fprintf(w, "  %s pays %s %s %s (%s %s)\n",
			trip.TravelerName(t.FromID), trip.TravelerName(t.ToID),
			humanize.Comma(t.Amount), b.BaseCurrency,
			humanize.Comma(t.ConvertedAmount), b.DisplayCurrency)
	}
}

// terminalColumns returns the width of stdout, or 80 when it is not a terminal.
func terminalColumns() int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if width, _, err := term.GetSize(fd); err == nil && width > 0 {
			return width
		}
	}
	return defaultColumns
}
