package format

import "testing"

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"Simple amount", 1234.56, "$1,234.56"},
		{"Negative amount", -1234.56, "-$1,234.56"},
		{"Zero", 0, "$0.00"},
		{"Large amount", 350000, "$350,000.00"},
		{"Sub-dollar", 0.5, "$0.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Currency(tt.amount); result != tt.expected {
				t.Errorf("Currency(%v) = %q, expected %q", tt.amount, result, tt.expected)
			}
		})
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{"Positive margin", 31.818181, "31.8%"},
		{"Negative margin", -1.7272, "-1.7%"},
		{"Zero", 0, "0.0%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Percent(tt.value); result != tt.expected {
				t.Errorf("Percent(%v) = %q, expected %q", tt.value, result, tt.expected)
			}
		})
	}
}

func TestPayment(t *testing.T) {
	tests := []struct {
		name      string
		payment   float64
		principal float64
		expected  string
	}{
		{"Normal payment", 3798.75, 350000, "$3,798.75"},
		{"Degenerate payment with nonzero principal", 0, 350000, NotApplicable},
		{"Zero payment for zero principal", 0, 0, "$0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Payment(tt.payment, tt.principal); result != tt.expected {
				t.Errorf("Payment(%v, %v) = %q, expected %q", tt.payment, tt.principal, result, tt.expected)
			}
		})
	}
}
