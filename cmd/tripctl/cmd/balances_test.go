package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mmynk/tripmate/internal/config"
	"github.com/mmynk/tripmate/internal/models"
	"github.com/mmynk/tripmate/internal/storage/sqlite"
)

func testTrip() *config.Trip {
	trip := config.DefaultTrip()
	trip.Travelers = []models.Traveler{
		{ID: "A", Name: "Alice"},
		{ID: "B", Name: "Bob"},
		{ID: "C", Name: "Carol"},
	}
	return trip
}

func TestFetchAndPrintBalances(t *testing.T) {
	store, err := sqlite.New(filepath.Join(t.TempDir(), "trip.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	for _, e := range []*models.Expense{
		{PayerID: "A", Amount: 30000, Description: "Hotel", SharedWith: []string{"A", "B", "C"}},
		{PayerID: "B", Amount: 9000, Description: "Dinner", SharedWith: []string{"B", "C"}},
	} {
		if err := store.CreateExpense(ctx, e); err != nil {
			t.Fatalf("CreateExpense failed: %v", err)
		}
	}

	trip := testTrip()
	snapshot, err := fetchBalances(ctx, store, trip, "")
	if err != nil {
		t.Fatalf("fetchBalances() error = %v", err)
	}

	var buf bytes.Buffer
	printBalances(&buf, trip, snapshot, 40)
	out := buf.String()

	for _, want := range []string{
		"Seoul Trip in Seoul (1 KRW = 0.024 TWD)",
		"Alice",
		"30,000",
		"-14,500",
		"Total spent: 39,000 KRW (936 TWD)",
		"Carol pays Alice 14,500 KRW (348 TWD)",
		"Bob pays Alice 5,500 KRW (132 TWD)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	// Rules are capped at the given column count.
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "---") && len(line) != 40 {
			t.Errorf("rule is %d columns wide, want 40", len(line))
		}
	}

	if _, err := fetchBalances(ctx, store, trip, "nope"); err == nil {
		t.Error("expected an error for an invalid rate")
	}
}

func TestPrintBalances_SettledUp(t *testing.T) {
	store, err := sqlite.New(filepath.Join(t.TempDir(), "trip.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	defer store.Close()

	trip := testTrip()
	snapshot, err := fetchBalances(context.Background(), store, trip, "")
	if err != nil {
		t.Fatalf("fetchBalances() error = %v", err)
	}

	var buf bytes.Buffer
	printBalances(&buf, trip, snapshot, 80)
	if !strings.Contains(buf.String(), "Everyone is settled up.") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input   string
		want    int64
		wantErr bool
	}{
		{input: "30000", want: 30000},
		{input: "30,000", want: 30000},
		{input: " 1,234,567 ", want: 1234567},
		{input: "-500", want: -500},
		{input: "12.5", wantErr: true},
		{input: "abc", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseAmount(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseAmount(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseAmount(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}
