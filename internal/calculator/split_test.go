package calculator

import "testing"

func TestSplitEvenly(t *testing.T) {
	tests := []struct {
		name       string
		amount     int64
		sharedWith []string
		want       map[string]int64
	}{
		{
			name:       "divides exactly",
			amount:     30000,
			sharedWith: []string{"A", "B", "C"},
			want:       map[string]int64{"A": 10000, "B": 10000, "C": 10000},
		},
		{
			name:       "remainder goes to lowest ids first",
			amount:     10000,
			sharedWith: []string{"carol", "alice", "bob"},
			want:       map[string]int64{"alice": 3334, "bob": 3333, "carol": 3333},
		},
		{
			name:       "two leftover units",
			amount:     11,
			sharedWith: []string{"b", "c", "a"},
			want:       map[string]int64{"a": 4, "b": 4, "c": 3},
		},
		{
			name:       "duplicates count once",
			amount:     9000,
			sharedWith: []string{"B", "C", "B"},
			want:       map[string]int64{"B": 4500, "C": 4500},
		},
		{
			name:       "amount smaller than share count",
			amount:     2,
			sharedWith: []string{"x", "y", "z"},
			want:       map[string]int64{"x": 1, "y": 1, "z": 0},
		},
		{
			name:       "no beneficiaries",
			amount:     5000,
			sharedWith: nil,
			want:       map[string]int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitEvenly(tt.amount, tt.sharedWith)
			if len(got) != len(tt.want) {
				t.Fatalf("SplitEvenly() returned %d shares, want %d: %v", len(got), len(tt.want), got)
			}

			var sum int64
			for id, want := range tt.want {
				if got[id] != want {
					t.Errorf("share[%s] = %d, want %d", id, got[id], want)
				}
				sum += got[id]
			}
			if len(tt.want) > 0 && sum != tt.amount {
				t.Errorf("shares sum to %d, want %d", sum, tt.amount)
			}
		})
	}
}
