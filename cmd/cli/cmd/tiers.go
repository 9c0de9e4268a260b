// Package cmd - tiers command
package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"cloudspend/core/output"
	"cloudspend/core/ui"
	"cloudspend/internal/config"
	"cloudspend/internal/errors"
)

var tiersFormat string

// tiersCmd represents the tiers command
var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "Display the rate-tier table",
	Long: `Display the rate card used for pricing.

Examples:
  cloudspend tiers
  cloudspend tiers --format json
  cloudspend tiers --tiers-file custom.yml`,
	RunE: runTiers,
}

func init() {
	tiersCmd.Flags().StringVarP(&tiersFormat, "format", "f", "", "output format (cli, json)")
}

func runTiers(cmd *cobra.Command, args []string) error {
	table, err := loadTable()
	if err != nil {
		return err
	}

	format := tiersFormat
	if format == "" {
		format = config.Get().Output.DefaultFormat
	}

	switch output.Format(format) {
	case output.FormatJSON:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(table.List())
	case output.FormatCLI:
		w := ui.NewWriter(os.Stdout, noColor)
		w.Header("Pricing Tiers")
		output.RenderTierTable(os.Stdout, table.List())
		return nil
	default:
		return errors.Inputf("unknown output format: %s", format)
	}
}
