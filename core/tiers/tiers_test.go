package tiers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"cloudspend/internal/errors"
)

func mustRate(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad rate literal %q: %v", s, err)
	}
	return d
}

func validTiers(t *testing.T) []Tier {
	return []Tier{
		{Lower: 0, Upper: 100, Rate: mustRate(t, "0.05")},
		{Lower: 101, Upper: 200, Rate: mustRate(t, "0.04")},
		{Lower: 201, Upper: 300, Rate: mustRate(t, "0.03")},
	}
}

// TestNewAcceptsValidTable verifies a well-formed table constructs.
func TestNewAcceptsValidTable(t *testing.T) {
	tb, err := New(validTiers(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tb.Len() != 3 {
		t.Errorf("expected 3 tiers, got %d", tb.Len())
	}
	if tb.MaxUpper() != 300 {
		t.Errorf("expected max upper 300, got %d", tb.MaxUpper())
	}
}

// TestNewRejectsEmptyTable verifies an empty table is a configuration error.
func TestNewRejectsEmptyTable(t *testing.T) {
	_, err := New(nil)
	if err == nil {
		t.Fatal("expected error for empty table")
	}
	if !errors.IsType(err, errors.TypeConfig) {
		t.Errorf("expected CONFIG_ERROR, got %v", err)
	}
}

// TestNewRejectsNonZeroStart verifies the first tier must start at 0.
func TestNewRejectsNonZeroStart(t *testing.T) {
	ts := validTiers(t)
	ts[0].Lower = 1
	if _, err := New(ts); err == nil {
		t.Fatal("expected error for non-zero first lower bound")
	}
}

// TestNewRejectsGap verifies a gap between adjacent tiers is rejected.
func TestNewRejectsGap(t *testing.T) {
	ts := validTiers(t)
	ts[1].Lower = 102 // gap: previous upper is 100
	if _, err := New(ts); err == nil {
		t.Fatal("expected error for gapped tiers")
	}
}

// TestNewRejectsOverlap verifies overlapping tiers are rejected.
func TestNewRejectsOverlap(t *testing.T) {
	ts := validTiers(t)
	ts[1].Lower = 100 // overlaps previous upper
	if _, err := New(ts); err == nil {
		t.Fatal("expected error for overlapping tiers")
	}
}

// TestNewRejectsInvertedBounds verifies upper must exceed lower.
func TestNewRejectsInvertedBounds(t *testing.T) {
	ts := validTiers(t)
	ts[2].Upper = ts[2].Lower
	if _, err := New(ts); err == nil {
		t.Fatal("expected error for inverted bounds")
	}
}

// TestNewRejectsNonPositiveRate verifies rates must be positive.
func TestNewRejectsNonPositiveRate(t *testing.T) {
	ts := validTiers(t)
	ts[1].Rate = decimal.Zero
	if _, err := New(ts); err == nil {
		t.Fatal("expected error for zero rate")
	}
}

// TestDefaultTableShape verifies the shipped rate card: 26 tiers spanning
// $0 to $250,000,000 with strictly decreasing rates.
func TestDefaultTableShape(t *testing.T) {
	tb := Default()

	if tb.Len() != 26 {
		t.Fatalf("expected 26 tiers, got %d", tb.Len())
	}
	if tb.At(0).Lower != 0 {
		t.Errorf("expected first lower bound 0, got %d", tb.At(0).Lower)
	}
	if tb.MaxUpper() != 250_000_000 {
		t.Errorf("expected max upper 250000000, got %d", tb.MaxUpper())
	}

	// Volume discount property: rates strictly decrease with tier index.
	for i := 1; i < tb.Len(); i++ {
		prev, cur := tb.At(i-1), tb.At(i)
		if !cur.Rate.LessThan(prev.Rate) {
			t.Errorf("tier %d rate %s is not below tier %d rate %s",
				i, cur.Rate, i-1, prev.Rate)
		}
	}
}

// TestIndexFor verifies bracket selection at and around boundaries.
func TestIndexFor(t *testing.T) {
	tb := Default()

	cases := []struct {
		amount string
		want   int
	}{
		{"0", 0},
		{"50000", 0},
		{"125000", 0},       // at the first upper bound
		{"125000.50", 1},    // fractional spend between integer bounds
		{"125001", 1},
		{"250000", 1},
		{"250001", 2},
		{"250000000", 25},
		{"300000000", 25}, // beyond the table maximum falls back to the last tier
	}

	for _, tc := range cases {
		amount := decimal.RequireFromString(tc.amount)
		if got := tb.IndexFor(amount); got != tc.want {
			t.Errorf("IndexFor(%s) = %d, want %d", tc.amount, got, tc.want)
		}
	}
}

// TestListReturnsCopy verifies display listings cannot mutate the table.
func TestListReturnsCopy(t *testing.T) {
	tb, err := New(validTiers(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	list := tb.List()
	list[0].Upper = 9999

	if tb.At(0).Upper != 100 {
		t.Error("mutating List() result changed the table")
	}
}

// TestLoadFile verifies loading and validating a YAML tier table.
func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiers.yml")
	content := `
- lower: 0
  upper: 1000
  rate: "0.02"
- lower: 1001
  upper: 2000
  rate: "0.01"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write temp tier file: %v", err)
	}

	tb, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tb.Len() != 2 {
		t.Fatalf("expected 2 tiers, got %d", tb.Len())
	}
	if !tb.At(1).Rate.Equal(decimal.RequireFromString("0.01")) {
		t.Errorf("expected rate 0.01, got %s", tb.At(1).Rate)
	}
}

// TestLoadFileRejectsBadRate verifies unparseable rates surface as
// configuration errors.
func TestLoadFileRejectsBadRate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiers.yml")
	content := `
- lower: 0
  upper: 1000
  rate: "cheap"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write temp tier file: %v", err)
	}

	_, err := LoadFile(path)
	if err == nil {
		t.Fatal("expected error for invalid rate")
	}
	if !errors.IsType(err, errors.TypeConfig) {
		t.Errorf("expected CONFIG_ERROR, got %v", err)
	}
}

// TestLoadFileMissing verifies a missing file surfaces as a configuration
// error.
func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.IsType(err, errors.TypeConfig) {
		t.Errorf("expected CONFIG_ERROR, got %v", err)
	}
}
