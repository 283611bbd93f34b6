// Package cli implements the nutrical command line calculator.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var unitFlag string

var rootCmd = &cobra.Command{
	Use:           "nutrical",
	Short:         "nutrical computes calorie targets, macros and BMI",
	Long:          "nutrical runs the nutritrack calculation engine from your terminal: daily calorie targets, macro split, BMI and unit conversion.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&unitFlag, "unit", "metric", "Unit system for inputs and output: metric or imperial")
}
