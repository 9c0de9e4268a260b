// Package cmd provides the CLI commands for cloudspend.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cloudspend/core/tiers"
	"cloudspend/internal/config"
	"cloudspend/internal/logging"
)

const version = "0.1.0"

var (
	cfgFile   string
	tiersFile string
	verbose   bool
	noColor   bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "cloudspend",
	Short: "Price cloud spend under flex and commit models",
	Long: `cloudspend is a tiered cloud-spend pricing calculator.

It prices a monthly spend under the flex model (pay per dollar at
volume-discounted tier rates) and the commit model (a discounted rate on a
pre-committed spend level, overflow billed at flex rates), and recommends a
commitment level for an observed spend.

Examples:
  cloudspend quote --spend 500000
  cloudspend quote --spend 500000 --commit 250000 --format json
  cloudspend recommend --spend 110000
  cloudspend tiers`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.cloudspend.json)")
	rootCmd.PersistentFlags().StringVar(&tiersFile, "tiers-file", "", "alternative tier table (YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(tiersCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// loadTable returns the tier table to price against: the --tiers-file flag
// wins, then the configured tiers file, then the shipped rate card.
func loadTable() (*tiers.Table, error) {
	path := tiersFile
	if path == "" {
		path = config.Get().Pricing.TiersFile
	}
	if path == "" {
		return tiers.Default(), nil
	}
	return tiers.LoadFile(path)
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("cloudspend version " + version)
	},
}

// configCmd manages configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// configShowCmd prints the effective configuration
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := json.MarshalIndent(config.Get(), "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}
