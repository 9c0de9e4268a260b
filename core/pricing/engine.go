// Package pricing implements the flex and commit pricing algorithms and the
// commitment-tier recommendation heuristic.
//
// All operations are pure functions of their inputs and the tier table the
// engine was constructed with. The table is immutable, so an Engine is safe
// for concurrent use without coordination.
package pricing

import (
	"github.com/shopspring/decimal"

	"cloudspend/core/tiers"
	"cloudspend/internal/errors"
)

var (
	// minimumInvoice is the commercial minimum monthly invoice.
	minimumInvoice = decimal.NewFromInt(2_500)

	// minimumInvoiceCeiling is the spend level at or below which the
	// minimum invoice applies.
	minimumInvoiceCeiling = decimal.NewFromInt(125_000)

	// recommendThreshold is the fraction of the current bracket's upper
	// bound above which the next bracket is recommended.
	recommendThreshold = decimal.RequireFromString("0.8")
)

// Engine computes prices against a fixed tier table.
type Engine struct {
	table *tiers.Table
}

// NewEngine returns an engine bound to the given table.
func NewEngine(table *tiers.Table) *Engine {
	return &Engine{table: table}
}

// Table returns the tier table the engine prices against.
func (e *Engine) Table() *tiers.Table {
	return e.table
}

// FlexPrice computes the pay-as-you-go cost of a monthly spend by walking
// the tier table in ascending order and billing each bracket's share of the
// spend at that bracket's rate. Spend above the table maximum is not billed
// further. Spends at or below the minimum-invoice ceiling are clipped up to
// the minimum invoice.
func (e *Engine) FlexPrice(spend decimal.Decimal) (decimal.Decimal, error) {
	if spend.IsNegative() {
		return decimal.Zero, errors.Inputf("spend must be non-negative, got %s", spend)
	}

	total := decimal.Zero
	remaining := spend
	for i := 0; i < e.table.Len(); i++ {
		if !remaining.IsPositive() {
			break
		}
		t := e.table.At(i)
		billed := decimal.Min(remaining, t.Capacity())
		total = total.Add(billed.Mul(t.Rate))
		remaining = remaining.Sub(billed)
	}

	if spend.LessThanOrEqual(minimumInvoiceCeiling) {
		return decimal.Max(total, minimumInvoice), nil
	}
	return total, nil
}

// CommitPrice computes the cost of a monthly spend under a pre-committed
// spend level. The committed block is billed at the rate of the first tier
// whose upper bound covers the commitment (the last tier when the commitment
// exceeds the table), capped at actual usage. Spend beyond the commitment is
// billed as a fresh flex purchase: the overflow re-enters the tier table
// from zero rather than continuing from the brackets the commitment
// consumed. No minimum invoice applies at this level; the floor inside
// FlexPrice only ever sees the overflow sub-amount.
//
// A zero commitment degenerates exactly to FlexPrice.
func (e *Engine) CommitPrice(spend, commit decimal.Decimal) (decimal.Decimal, error) {
	if spend.IsNegative() {
		return decimal.Zero, errors.Inputf("spend must be non-negative, got %s", spend)
	}
	if commit.IsNegative() {
		return decimal.Zero, errors.Inputf("commit amount must be non-negative, got %s", commit)
	}
	if commit.IsZero() {
		return e.FlexPrice(spend)
	}

	rate := e.table.TierFor(commit).Rate
	committed := decimal.Min(spend, commit).Mul(rate)
	if spend.LessThanOrEqual(commit) {
		return committed, nil
	}

	overflow, err := e.FlexPrice(spend.Sub(commit))
	if err != nil {
		return decimal.Zero, err
	}
	return committed.Add(overflow), nil
}

// RecommendCommitTier suggests a commitment level for an observed monthly
// spend. It returns the upper bound of the bracket containing the spend,
// except when the spend sits in the top 20% of its bracket and a higher
// bracket exists, in which case the next bracket's upper bound is suggested
// pre-emptively.
func (e *Engine) RecommendCommitTier(spend decimal.Decimal) (decimal.Decimal, error) {
	if spend.IsNegative() {
		return decimal.Zero, errors.Inputf("spend must be non-negative, got %s", spend)
	}

	idx := e.table.IndexFor(spend)
	current := e.table.At(idx)
	if idx+1 < e.table.Len() {
		threshold := decimal.NewFromInt(current.Upper).Mul(recommendThreshold)
		if spend.GreaterThan(threshold) {
			return decimal.NewFromInt(e.table.At(idx + 1).Upper), nil
		}
	}
	return decimal.NewFromInt(current.Upper), nil
}
