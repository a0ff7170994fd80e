package calculator

import (
	"fmt"
	"sort"
)

// SettledTolerance is the largest absolute balance treated as settled.
// Balances are integers, so anything non-zero still needs a transfer.
const SettledTolerance int64 = 0

// Transfer represents a suggested payment from a debtor to a creditor.
type Transfer struct {
	From   string // Person who owes
	To     string // Person who is owed
	Amount int64
}

type position struct {
	id        string
	remaining int64 // magnitude still to settle
}

// PlanSettlements turns a balance vector into an ordered list of transfers
// that brings every balance to zero.
//
// Greedy matching: debtors sorted by largest debt first, creditors by largest
// credit first, ties kept in participant order. The result holds at most
// debtors+creditors-1 transfers and is identical for identical input.
func PlanSettlements(participants []string, balances map[string]int64) []Transfer {
	var debtors, creditors []position
	for _, p := range participants {
		b := balances[p]
		switch {
		case b < -SettledTolerance:
			debtors = append(debtors, position{id: p, remaining: -b})
		case b > SettledTolerance:
			creditors = append(creditors, position{id: p, remaining: b})
		}
	}

	// Most negative balance first == largest remaining debt first.
	sort.SliceStable(debtors, func(i, j int) bool { return debtors[i].remaining > debtors[j].remaining })
	sort.SliceStable(creditors, func(i, j int) bool { return creditors[i].remaining > creditors[j].remaining })

	var transfers []Transfer
	i, j := 0, 0

	// Every step zeroes at least one side, so this bound is never reached.
	maxSteps := len(debtors) + len(creditors)
	for step := 0; i < len(debtors) && j < len(creditors); step++ {
		if step >= maxSteps {
			panic(fmt.Sprintf("calculator: settlement did not converge after %d steps", step))
		}

		debtor := &debtors[i]
		creditor := &creditors[j]

		amount := min(debtor.remaining, creditor.remaining)
		if amount > SettledTolerance {
			transfers = append(transfers, Transfer{
				From:   debtor.id,
				To:     creditor.id,
				Amount: amount,
			})
		}

		debtor.remaining -= amount
		creditor.remaining -= amount

		if debtor.remaining <= SettledTolerance {
			i++
		}
		if creditor.remaining <= SettledTolerance {
			j++
		}
	}

	return transfers
}
