package calculator

import (
	"math/rand"
	"testing"
)

func TestComputeBalances(t *testing.T) {
	tests := []struct {
		name         string
		participants []string
		expenses     []Expense
		want         map[string]int64
	}{
		{
			name:         "three travelers, two expenses",
			participants: []string{"A", "B", "C"},
			expenses: []Expense{
				{PayerID: "A", Amount: 30000, SharedWith: []string{"A", "B", "C"}},
				{PayerID: "B", Amount: 9000, SharedWith: []string{"B", "C"}},
			},
			want: map[string]int64{"A": 20000, "B": -5500, "C": -14500},
		},
		{
			name:         "no expenses",
			participants: []string{"A", "B"},
			expenses:     nil,
			want:         map[string]int64{"A": 0, "B": 0},
		},
		{
			name:         "empty shared-with is skipped",
			participants: []string{"A", "B"},
			expenses: []Expense{
				{PayerID: "A", Amount: 50000, SharedWith: []string{}},
				{PayerID: "B", Amount: 1000, SharedWith: nil},
			},
			want: map[string]int64{"A": 0, "B": 0},
		},
		{
			name:         "payer owes own share",
			participants: []string{"A", "B", "C", "D"},
			expenses: []Expense{
				{PayerID: "A", Amount: 40000, SharedWith: []string{"A", "B", "C", "D"}},
			},
			want: map[string]int64{"A": 30000, "B": -10000, "C": -10000, "D": -10000},
		},
		{
			name:         "payer not a beneficiary",
			participants: []string{"A", "B"},
			expenses: []Expense{
				{PayerID: "A", Amount: 7000, SharedWith: []string{"B"}},
			},
			want: map[string]int64{"A": 7000, "B": -7000},
		},
		{
			name:         "single participant",
			participants: []string{"A"},
			expenses: []Expense{
				{PayerID: "A", Amount: 12345, SharedWith: []string{"A"}},
			},
			want: map[string]int64{"A": 0},
		},
		{
			name:         "indivisible amount",
			participants: []string{"A", "B", "C"},
			expenses: []Expense{
				{PayerID: "C", Amount: 10000, SharedWith: []string{"A", "B", "C"}},
			},
			want: map[string]int64{"A": -3334, "B": -3333, "C": 6667},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeBalances(tt.participants, tt.expenses)
			for id, want := range tt.want {
				if got[id] != want {
					t.Errorf("balance[%s] = %d, want %d", id, got[id], want)
				}
			}
			if len(got) != len(tt.want) {
				t.Errorf("got %d balances, want %d: %v", len(got), len(tt.want), got)
			}
		})
	}
}

func TestComputeBalances_UnknownIDsDoNotPanic(t *testing.T) {
	got := ComputeBalances([]string{"A"}, []Expense{
		{PayerID: "ghost", Amount: 100, SharedWith: []string{"A", "phantom"}},
	})
	if got["ghost"] != 100 || got["A"] != -50 || got["phantom"] != -50 {
		t.Errorf("unexpected balances: %v", got)
	}
}

func TestComputeBalances_Conservation(t *testing.T) {
	participants := []string{"ana", "ben", "cho", "dae", "eun"}
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 200; round++ {
		expenses := randomExpenses(rng, participants, 1+rng.Intn(12))

		var sum int64
		for _, b := range ComputeBalances(participants, expenses) {
			sum += b
		}
		if sum != 0 {
			t.Fatalf("round %d: balances sum to %d, want 0", round, sum)
		}
	}
}

func TestSummarize(t *testing.T) {
	participants := []string{"A", "B", "C"}
	expenses := []Expense{
		{PayerID: "A", Amount: 30000, SharedWith: []string{"A", "B", "C"}},
		{PayerID: "B", Amount: 9000, SharedWith: []string{"B", "C"}},
	}

	summary := Summarize(participants, expenses)
	want := []MemberBalance{
		{MemberID: "A", NetBalance: 20000, TotalPaid: 30000, TotalOwed: 10000},
		{MemberID: "B", NetBalance: -5500, TotalPaid: 9000, TotalOwed: 14500},
		{MemberID: "C", NetBalance: -14500, TotalPaid: 0, TotalOwed: 14500},
	}

	if len(summary) != len(want) {
		t.Fatalf("got %d members, want %d", len(summary), len(want))
	}
	for i := range want {
		if summary[i] != want[i] {
			t.Errorf("summary[%d] = %+v, want %+v", i, summary[i], want[i])
		}
	}

	balances := ComputeBalances(participants, expenses)
	for _, m := range summary {
		if balances[m.MemberID] != m.NetBalance {
			t.Errorf("%s: Summarize net %d != ComputeBalances %d", m.MemberID, m.NetBalance, balances[m.MemberID])
		}
	}
}

func TestSummarize_MatchesComputeBalances(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	participants := []string{"A", "B", "C", "D"}

	for round := 0; round < 50; round++ {
		expenses := randomExpenses(rng, participants, 1+rng.Intn(20))
		balances := ComputeBalances(participants, expenses)

		var sum int64
		for _, m := range Summarize(participants, expenses) {
			if m.NetBalance != balances[m.MemberID] {
				t.Fatalf("round %d, %s: net %d, ComputeBalances %d", round, m.MemberID, m.NetBalance, balances[m.MemberID])
			}
			if m.TotalPaid-m.TotalOwed != m.NetBalance {
				t.Fatalf("round %d, %s: paid %d - owed %d != net %d", round, m.MemberID, m.TotalPaid, m.TotalOwed, m.NetBalance)
			}
			sum += m.NetBalance
		}
		if sum != 0 {
			t.Fatalf("round %d: sum of nets = %d", round, sum)
		}
	}
}

func TestParticipants(t *testing.T) {
	tests := []struct {
		name     string
		known    []string
		expenses []Expense
		want     []string
	}{
		{
			name:     "no expenses",
			known:    []string{"B", "A"},
			expenses: nil,
			want:     []string{"B", "A"},
		},
		{
			name:  "unknown payer and beneficiaries appended sorted",
			known: []string{"B", "A"},
			expenses: []Expense{
				{PayerID: "Z", Amount: 900, SharedWith: []string{"A", "Y"}},
				{PayerID: "A", Amount: 300, SharedWith: []string{"X", "B"}},
			},
			want: []string{"B", "A", "X", "Y", "Z"},
		},
		{
			name:  "skipped expense contributes nothing",
			known: []string{"A"},
			expenses: []Expense{
				{PayerID: "Q", Amount: 500},
			},
			want: []string{"A"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Participants(tt.known, tt.expenses)
			if len(got) != len(tt.want) {
				t.Fatalf("Participants() = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("Participants() = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

// randomExpenses builds n expenses with random payers, amounts and non-empty beneficiary sets.
func randomExpenses(rng *rand.Rand, participants []string, n int) []Expense {
	expenses := make([]Expense, n)
	for i := range expenses {
		var shared []string
		for _, p := range participants {
			if rng.Intn(2) == 0 {
				shared = append(shared, p)
			}
		}
		if len(shared) == 0 {
			shared = []string{participants[rng.Intn(len(participants))]}
		}
		expenses[i] = Expense{
			PayerID:    participants[rng.Intn(len(participants))],
			Amount:     int64(1 + rng.Intn(200000)),
			SharedWith: shared,
		}
	}
	return expenses
}
