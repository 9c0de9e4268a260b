// Package pricing - quote composition
package pricing

import "github.com/shopspring/decimal"

// Quote bundles the engine's three operations for one spend/commit pair.
type Quote struct {
	// Spend is the monthly spend the quote was computed for
	Spend decimal.Decimal `json:"spend"`

	// Commit is the commitment level the quote was computed for
	Commit decimal.Decimal `json:"commit"`

	// FlexCost is the pay-as-you-go cost
	FlexCost decimal.Decimal `json:"flex_cost"`

	// CommitCost is the cost under the commitment
	CommitCost decimal.Decimal `json:"commit_cost"`

	// Savings is FlexCost minus CommitCost. Negative when the chosen
	// commitment costs more than flex.
	Savings decimal.Decimal `json:"savings"`

	// RecommendedTier is the suggested commitment level for the spend
	RecommendedTier decimal.Decimal `json:"recommended_tier"`
}

// Quote runs all three engine operations for the given spend and commitment.
// It is pure composition; all pricing logic lives in the individual
// operations.
func (e *Engine) Quote(spend, commit decimal.Decimal) (*Quote, error) {
	flex, err := e.FlexPrice(spend)
	if err != nil {
		return nil, err
	}
	committed, err := e.CommitPrice(spend, commit)
	if err != nil {
		return nil, err
	}
	recommended, err := e.RecommendCommitTier(spend)
	if err != nil {
		return nil, err
	}

	return &Quote{
		Spend:           spend,
		Commit:          commit,
		FlexCost:        flex,
		CommitCost:      committed,
		Savings:         flex.Sub(committed),
		RecommendedTier: recommended,
	}, nil
}
