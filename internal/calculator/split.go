package calculator

import "sort"

// SplitEvenly divides amount among the beneficiaries in sharedWith.
//
// Each beneficiary owes amount / n. The amount % n leftover units are handed
// out one at a time in ascending id order, so the shares always sum to
// amount exactly. Duplicate ids count once. An empty sharedWith yields an
// empty map.
func SplitEvenly(amount int64, sharedWith []string) map[string]int64 {
	ids := uniqueSorted(sharedWith)
	shares := make(map[string]int64, len(ids))
	if len(ids) == 0 {
		return shares
	}

	n := int64(len(ids))
	base := amount / n
	remainder := amount % n

	for i, id := range ids {
		share := base
		if int64(i) < remainder {
			share++
		}
		shares[id] = share
	}

	return shares
}

// uniqueSorted returns the distinct ids in ascending order.
func uniqueSorted(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
