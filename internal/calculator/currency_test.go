package calculator

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		rate   string
		want   int64
	}{
		{name: "default KRW to TWD rate", amount: 30000, rate: "0.024", want: 720},
		{name: "rounds down below half", amount: 1010, rate: "0.024", want: 24},    // 24.24
		{name: "rounds half away from zero", amount: 1000, rate: "0.0245", want: 25}, // 24.5
		{name: "negative balance", amount: -5500, rate: "0.024", want: -132},
		{name: "negative half", amount: -1000, rate: "0.0245", want: -25},
		{name: "zero", amount: 0, rate: "0.024", want: 0},
		{name: "identity rate", amount: 14500, rate: "1", want: 14500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Convert(tt.amount, decimal.RequireFromString(tt.rate))
			if got != tt.want {
				t.Errorf("Convert(%d, %s) = %d, want %d", tt.amount, tt.rate, got, tt.want)
			}
		})
	}
}

func TestConvert_Symmetric(t *testing.T) {
	rates := []string{"0.024", "0.0245", "0.5", "1.5", "0.0067"}
	for _, r := range rates {
		rate := decimal.RequireFromString(r)
		for amount := int64(1); amount <= 5000; amount += 7 {
			if pos, neg := Convert(amount, rate), Convert(-amount, rate); neg != -pos {
				t.Fatalf("Convert(-%d, %s) = %d, want %d", amount, r, neg, -pos)
			}
		}
	}
}

func TestParseRate(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{input: "0.024"},
		{input: " 1.5 "},
		{input: "0", wantErr: true},
		{input: "-0.1", wantErr: true},
		{input: "abc", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseRate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidRate) {
				t.Errorf("ParseRate(%q) error = %v, want ErrInvalidRate", tt.input, err)
			}
		})
	}
}
