package calculator

import "sort"

// Expense represents an expense with the minimal information needed for balance calculations.
type Expense struct {
	PayerID    string
	Amount     int64    // base-currency units
	SharedWith []string // beneficiaries owing an equal split
}

// MemberBalance represents the balance information for one traveler.
type MemberBalance struct {
	MemberID   string
	NetBalance int64 // Positive = owed money, Negative = owes money
	TotalPaid  int64 // Total amount paid across all expenses
	TotalOwed  int64 // Total share this person owes
}

// ComputeBalances returns each participant's net balance: everything they
// paid minus their share of every expense they benefit from.
//
// Expenses with an empty SharedWith are skipped. A payer listed in their own
// SharedWith still owes their share. Ids not in participants are not
// validated; they simply get an entry of their own.
//
// The sum of all balances is exactly zero.
func ComputeBalances(participants []string, expenses []Expense) map[string]int64 {
	balances := make(map[string]int64, len(participants))
	for _, p := range participants {
		balances[p] = 0
	}

	for _, exp := range expenses {
		if len(exp.SharedWith) == 0 {
			continue
		}

		balances[exp.PayerID] += exp.Amount
		for id, share := range SplitEvenly(exp.Amount, exp.SharedWith) {
			balances[id] -= share
		}
	}

	return balances
}

// Summarize computes per-participant paid, owed and net totals, returned in
// participant order. NetBalance is taken from ComputeBalances.
func Summarize(participants []string, expenses []Expense) []MemberBalance {
	net := ComputeBalances(participants, expenses)
	paid := make(map[string]int64, len(participants))
	owed := make(map[string]int64, len(participants))

	for _, exp := range expenses {
		if len(exp.SharedWith) == 0 {
			continue
		}
		paid[exp.PayerID] += exp.Amount
		for id, share := range SplitEvenly(exp.Amount, exp.SharedWith) {
			owed[id] += share
		}
	}

	summary := make([]MemberBalance, len(participants))
	for i, p := range participants {
		summary[i] = MemberBalance{
			MemberID:   p,
			NetBalance: net[p],
			TotalPaid:  paid[p],
			TotalOwed:  owed[p],
		}
	}
	return summary
}

// Participants returns known followed by every payer or beneficiary id in
// expenses that known does not list, sorted.
func Participants(known []string, expenses []Expense) []string {
	seen := make(map[string]bool, len(known))
	for _, id := range known {
		seen[id] = true
	}

	var extra []string
	add := func(id string) {
		if !seen[id] {
			seen[id] = true
			extra = append(extra, id)
		}
	}
	for _, exp := range expenses {
		if len(exp.SharedWith) == 0 {
			continue
		}
		add(exp.PayerID)
		for _, id := range exp.SharedWith {
			add(id)
		}
	}
	sort.Strings(extra)

	out := make([]string, 0, len(known)+len(extra))
	out = append(out, known...)
	return append(out, extra...)
}
