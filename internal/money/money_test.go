package money

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestValid(t *testing.T) {
	valid := []string{"0.00", "0.01", "187.50", "4500.00", "1234567.89"}
	for _, s := range valid {
		if !Valid(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}

	invalid := []string{
		"", "187", "187.5", "187.500", ".50", "187.",
		"-1.00", "+1.00", "1,50", "abc", "1.0a", "a.00", " 1.00",
	}
	for _, s := range invalid {
		if Valid(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestParse(t *testing.T) {
	t.Run("valid_amount", func(t *testing.T) {
		d, err := Parse("187.50")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !d.Equal(decimal.RequireFromString("187.5")) {
			t.Errorf("expected 187.5, got %s", d)
		}
	})

	t.Run("invalid_amount", func(t *testing.T) {
		if _, err := Parse("-1.00"); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("expected ErrInvalidAmount, got %v", err)
		}
	})
}

func TestSum(t *testing.T) {
	t.Run("exact_decimal_addition", func(t *testing.T) {
		// 0.1 + 0.2 is the classic binary-float trap; decimals stay exact.
		total := Sum([]string{"0.10", "0.20"})
		if !total.Equal(decimal.RequireFromString("0.3")) {
			t.Errorf("expected 0.3, got %s", total)
		}
	})

	t.Run("empty_is_zero", func(t *testing.T) {
		if total := Sum(nil); !total.IsZero() {
			t.Errorf("expected zero, got %s", total)
		}
	})
}
