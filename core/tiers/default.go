// Package tiers - shipped rate card
package tiers

import "github.com/shopspring/decimal"

func row(lower, upper int64, rate string) Tier {
	return Tier{Lower: lower, Upper: upper, Rate: decimal.RequireFromString(rate)}
}

// defaultTiers is the shipped 26-tier rate card, covering monthly spend from
// $0 to $250,000,000. Rates decrease with volume.
func defaultTiers() []Tier {
	return []Tier{
		row(0, 125_000, "0.0330"),
		row(125_001, 250_000, "0.0315"),
		row(250_001, 416_667, "0.0297"),
		row(416_668, 833_333, "0.0264"),
		row(833_334, 1_666_667, "0.0231"),
		row(1_666_668, 2_500_000, "0.0215"),
		row(2_500_001, 3_333_333, "0.0198"),
		row(3_333_334, 4_166_667, "0.0182"),
		row(4_166_668, 6_250_000, "0.0165"),
		row(6_250_001, 8_333_333, "0.0132"),
		row(8_333_334, 12_500_000, "0.0116"),
		row(12_500_001, 16_666_667, "0.0107"),
		row(16_666_668, 20_833_333, "0.0100"),
		row(20_833_334, 25_000_000, "0.0095"),
		row(25_000_001, 29_166_667, "0.0091"),
		row(29_166_668, 33_333_333, "0.0088"),
		row(33_333_334, 41_666_667, "0.0084"),
		row(41_666_668, 62_500_000, "0.0069"),
		row(62_500_001, 83_333_333, "0.0062"),
		row(83_333_334, 104_166_667, "0.0054"),
		row(104_166_668, 125_000_000, "0.0050"),
		row(125_000_001, 145_833_333, "0.0046"),
		row(145_833_334, 166_666_667, "0.0043"),
		row(166_666_668, 187_500_000, "0.0040"),
		row(187_500_001, 208_333_333, "0.0038"),
		row(208_333_334, 250_000_000, "0.0034"),
	}
}

// Default returns the shipped rate card as a validated Table.
func Default() *Table {
	tb, err := New(defaultTiers())
	if err != nil {
		// The shipped rate card is a compile-time constant; failing
		// validation is a programming error.
		panic("tiers: shipped rate card is invalid: " + err.Error())
	}
	return tb
}
