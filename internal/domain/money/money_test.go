package money

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseValid(t *testing.T) {
	got, err := Parse("basic", " 1234.567 ")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if got.String() != "1234.567" {
		t.Fatalf("expected 1234.567, got %s", got)
	}
}

func TestParseEmptyIsZero(t *testing.T) {
	got, err := Parse("hra", "")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !got.IsZero() {
		t.Fatalf("expected zero, got %s", got)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse("basic", "12,000")
	if !errors.Is(err, ErrInvalidNumericInput) {
		t.Fatalf("expected ErrInvalidNumericInput, got %v", err)
	}
	_, err = Parse("basic", "NaN-ish")
	if !errors.Is(err, ErrInvalidNumericInput) {
		t.Fatalf("expected ErrInvalidNumericInput, got %v", err)
	}
}

func TestParseMapNamesOffendingField(t *testing.T) {
	_, err := ParseMap("allowances", map[string]string{"travel": "abc"})
	if !errors.Is(err, ErrInvalidNumericInput) {
		t.Fatalf("expected ErrInvalidNumericInput, got %v", err)
	}
}

func TestRound2HalfAwayFromZero(t *testing.T) {
	cases := map[string]string{
		"1307.6923": "1307.69",
		"2615.385":  "2615.39",
		"-1.005":    "-1.01",
	}
	for in, want := range cases {
		value, err := decimal.NewFromString(in)
		if err != nil {
			t.Fatalf("bad case %s: %v", in, err)
		}
		if got := Round2(value).StringFixed(2); got != want {
			t.Fatalf("Round2(%s): expected %s, got %s", in, want, got)
		}
	}
}

func TestSum(t *testing.T) {
	total := Sum(map[string]decimal.Decimal{
		"a": decimal.NewFromInt(10),
		"b": decimal.NewFromFloat(2.5),
	})
	if total.StringFixed(2) != "12.50" {
		t.Fatalf("expected 12.50, got %s", total.StringFixed(2))
	}
}
