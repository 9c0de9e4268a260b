// Package cmd - recommend command
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"cloudspend/core/pricing"
	"cloudspend/core/ui"
)

var recommendSpend string

// recommendCmd represents the recommend command
var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend a commitment level for a monthly spend",
	Long: `Suggest a commitment level based on an observed monthly spend.

The suggestion is the upper bound of the spend's current bracket, or the next
bracket's upper bound when the spend sits in the top 20% of its bracket.

Examples:
  cloudspend recommend --spend 110000`,
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().StringVarP(&recommendSpend, "spend", "s", "", "monthly cloud spend in dollars [REQUIRED]")
	recommendCmd.MarkFlagRequired("spend")
}

func runRecommend(cmd *cobra.Command, args []string) error {
	spend, err := parseAmount(recommendSpend, "spend")
	if err != nil {
		return err
	}

	table, err := loadTable()
	if err != nil {
		return err
	}

	engine := pricing.NewEngine(table)
	recommended, err := engine.RecommendCommitTier(spend)
	if err != nil {
		return err
	}

	w := ui.NewWriter(os.Stdout, noColor)
	w.Info("Monthly spend: $%s", spend.StringFixed(2))
	w.Success("Recommended commitment level: $%s", recommended.StringFixed(2))
	return nil
}
