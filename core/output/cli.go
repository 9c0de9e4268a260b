// Package output - human-readable CLI rendering
package output

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"cloudspend/core/tiers"
)

// CLIFormatter renders quotes as a terminal table.
type CLIFormatter struct{}

// Format returns the format type
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// Render writes the quote summary table.
func (f *CLIFormatter) Render(w io.Writer, result *QuoteResult) error {
	q := result.Quote

	fmt.Fprintln(w, "┌─────────────────────────────────────────────────────────────────────────┐")
	fmt.Fprintln(w, "│                          PRICING COMPARISON                             │")
	fmt.Fprintln(w, "├─────────────────────────────────────────────────────────────────────────┤")
	row(w, "Monthly spend", money(q.Spend))
	row(w, "Commitment level", money(q.Commit))
	fmt.Fprintln(w, "├─────────────────────────────────────────────────────────────────────────┤")
	row(w, "Flex pricing", money(q.FlexCost))
	row(w, "Commit pricing", money(q.CommitCost))
	if q.Savings.IsPositive() {
		row(w, "Monthly savings", money(q.Savings))
	} else if q.Savings.IsNegative() {
		row(w, "Monthly savings", "-"+money(q.Savings.Neg()))
	}
	fmt.Fprintln(w, "├─────────────────────────────────────────────────────────────────────────┤")
	row(w, "Recommended commitment", money(q.RecommendedTier))
	fmt.Fprintln(w, "└─────────────────────────────────────────────────────────────────────────┘")

	if len(result.Tiers) > 0 {
		fmt.Fprintln(w, "")
		RenderTierTable(w, result.Tiers)
	}

	fmt.Fprintf(w, "\nQuote %s computed in %s\n", result.Metadata.ID, result.Metadata.Duration)
	return nil
}

// RenderTierTable writes the rate card as a terminal table.
func RenderTierTable(w io.Writer, ts []tiers.Tier) {
	fmt.Fprintln(w, "┌───────────────────────────────────────────────┬─────────┐")
	fmt.Fprintln(w, "│ SPEND RANGE                                   │  RATE   │")
	fmt.Fprintln(w, "├───────────────────────────────────────────────┼─────────┤")
	for _, t := range ts {
		spendRange := fmt.Sprintf("$%s - $%s", group(t.Lower), group(t.Upper))
		percent := t.Rate.Mul(decimal.NewFromInt(100))
		fmt.Fprintf(w, "│ %-45s │ %6.2f%% │\n", spendRange, percent.InexactFloat64())
	}
	fmt.Fprintln(w, "└───────────────────────────────────────────────┴─────────┘")
}

func row(w io.Writer, label, value string) {
	fmt.Fprintf(w, "│ %-50s %20s │\n", label, value)
}

func money(d decimal.Decimal) string {
	return "$" + groupString(d.StringFixed(2))
}

// group formats an integer with thousands separators.
func group(n int64) string {
	return groupString(fmt.Sprintf("%d", n))
}

// groupString inserts thousands separators into the integer part of a
// decimal string.
func groupString(s string) string {
	intPart := s
	fracPart := ""
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			intPart = s[:i]
			fracPart = s[i:]
			break
		}
	}

	var out []byte
	for i, c := range []byte(intPart) {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return string(out) + fracPart
}
