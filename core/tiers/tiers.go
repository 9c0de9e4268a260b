// Package tiers defines the rate-tier table that drives all pricing.
// A Table is validated once at construction and immutable afterwards,
// so it can be shared by any number of concurrent callers.
package tiers

import (
	"sort"

	"github.com/shopspring/decimal"

	"cloudspend/internal/errors"
)

// Tier is one pricing bracket. Lower and Upper are inclusive monthly-spend
// bounds in whole dollars; Rate is the per-dollar price charged for spend
// falling inside the bracket.
type Tier struct {
	Lower int64           `json:"lower"`
	Upper int64           `json:"upper"`
	Rate  decimal.Decimal `json:"rate"`
}

// Capacity returns the dollar width of the bracket. The first bracket's
// lower bound is 0, so its capacity equals its upper bound.
func (t Tier) Capacity() decimal.Decimal {
	return decimal.NewFromInt(t.Upper - t.Lower)
}

// Table is an ordered, immutable sequence of tiers.
type Table struct {
	tiers []Tier
}

// New validates the tier sequence and returns an immutable Table.
// The first invariant violation is reported as a configuration error.
func New(tiers []Tier) (*Table, error) {
	if len(tiers) == 0 {
		return nil, errors.Config("tier table is empty")
	}
	if tiers[0].Lower != 0 {
		return nil, errors.Configf("first tier must start at 0, got %d", tiers[0].Lower)
	}
	for i, t := range tiers {
		if t.Upper <= t.Lower {
			return nil, errors.Configf("tier %d: upper bound %d is not above lower bound %d", i, t.Upper, t.Lower)
		}
		if !t.Rate.IsPositive() {
			return nil, errors.Configf("tier %d: rate must be positive, got %s", i, t.Rate)
		}
		if i > 0 {
			prev := tiers[i-1]
			if t.Lower < prev.Upper+1 {
				return nil, errors.Configf("tier %d: bracket [%d, %d] overlaps previous upper bound %d", i, t.Lower, t.Upper, prev.Upper)
			}
			if t.Lower > prev.Upper+1 {
				return nil, errors.Configf("tier %d: gap between previous upper bound %d and lower bound %d", i, prev.Upper, t.Lower)
			}
		}
	}

	cp := make([]Tier, len(tiers))
	copy(cp, tiers)
	return &Table{tiers: cp}, nil
}

// Len returns the number of tiers.
func (tb *Table) Len() int {
	return len(tb.tiers)
}

// At returns the tier at index i.
func (tb *Table) At(i int) Tier {
	return tb.tiers[i]
}

// MaxUpper returns the upper bound of the last tier, the highest spend
// level the table covers.
func (tb *Table) MaxUpper() int64 {
	return tb.tiers[len(tb.tiers)-1].Upper
}

// IndexFor returns the index of the first tier whose upper bound is at or
// above amount, falling back to the last tier when amount exceeds the table
// maximum. The table is sorted, so a binary search suffices.
func (tb *Table) IndexFor(amount decimal.Decimal) int {
	i := sort.Search(len(tb.tiers), func(i int) bool {
		return decimal.NewFromInt(tb.tiers[i].Upper).GreaterThanOrEqual(amount)
	})
	if i >= len(tb.tiers) {
		return len(tb.tiers) - 1
	}
	return i
}

// TierFor returns the tier selected by IndexFor.
func (tb *Table) TierFor(amount decimal.Decimal) Tier {
	return tb.tiers[tb.IndexFor(amount)]
}

// List returns a copy of the tiers for read-only display.
func (tb *Table) List() []Tier {
	cp := make([]Tier, len(tb.tiers))
	copy(cp, tb.tiers)
	return cp
}
