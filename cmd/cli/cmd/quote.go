// Package cmd - quote command
package cmd

import (
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cloudspend/core/output"
	"cloudspend/core/pricing"
	"cloudspend/internal/config"
	"cloudspend/internal/errors"
	"cloudspend/internal/logging"
)

var (
	quoteSpend  string
	quoteCommit string
	quoteFormat string
	quoteTiers  bool
)

// quoteCmd represents the quote command
var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Price a monthly spend under flex and commit models",
	Long: `Compute flex and commit pricing for a monthly spend, the savings
between them, and the recommended commitment level.

Examples:
  cloudspend quote --spend 500000
  cloudspend quote --spend 500000 --commit 250000
  cloudspend quote --spend 500000 --format json --show-tiers`,
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().StringVarP(&quoteSpend, "spend", "s", "", "monthly cloud spend in dollars [REQUIRED]")
	quoteCmd.Flags().StringVarP(&quoteCommit, "commit", "c", "0", "monthly commitment level in dollars")
	quoteCmd.Flags().StringVarP(&quoteFormat, "format", "f", "", "output format (cli, json)")
	quoteCmd.Flags().BoolVar(&quoteTiers, "show-tiers", false, "include the rate card in the output")
	quoteCmd.MarkFlagRequired("spend")
}

func runQuote(cmd *cobra.Command, args []string) error {
	start := time.Now()

	spend, err := parseAmount(quoteSpend, "spend")
	if err != nil {
		return err
	}
	commit, err := parseAmount(quoteCommit, "commit")
	if err != nil {
		return err
	}

	table, err := loadTable()
	if err != nil {
		return err
	}

	engine := pricing.NewEngine(table)
	quote, err := engine.Quote(spend, commit)
	if err != nil {
		return err
	}

	logging.Debug("quote computed",
		zap.String("spend", spend.String()),
		zap.String("commit", commit.String()),
		zap.String("flex_cost", quote.FlexCost.String()),
		zap.String("commit_cost", quote.CommitCost.String()))

	result := &output.QuoteResult{
		Quote:    quote,
		Metadata: output.NewMetadata(start, version),
	}
	if quoteTiers || config.Get().Output.ShowTiers {
		result.Tiers = table.List()
	}

	return render(result, quoteFormat)
}

// render writes a quote result in the requested format, falling back to the
// configured default format.
func render(result *output.QuoteResult, format string) error {
	if format == "" {
		format = config.Get().Output.DefaultFormat
	}
	formatter, ok := output.For(output.Format(format))
	if !ok {
		return errors.Inputf("unknown output format: %s", format)
	}
	return formatter.Render(os.Stdout, result)
}

// parseAmount parses a dollar amount flag into a decimal.
func parseAmount(s, name string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errors.Inputf("invalid %s amount: %q", name, s)
	}
	if d.IsNegative() {
		return decimal.Zero, errors.Inputf("%s must be non-negative, got %s", name, s)
	}
	return d, nil
}
