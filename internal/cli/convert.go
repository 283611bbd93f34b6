package cli

import (
	"fmt"
	"strconv"

	"nutritrack/internal/domain"

	"github.com/spf13/cobra"
)

var (
	convertFrom string
	convertTo   string
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert weights and lengths between metric and imperial",
}

var convertWeightCmd = &cobra.Command{
	Use:   "weight <value>",
	Short: "Convert a weight (kg <-> lb)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(cmd, args[0], domain.ConvertWeight, domain.UnitSystem.WeightLabel)
	},
}

var convertLengthCmd = &cobra.Command{
	Use:   "length <value>",
	Short: "Convert a length (cm <-> in)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(cmd, args[0], domain.ConvertLength, domain.UnitSystem.LengthLabel)
	},
}

func runConvert(cmd *cobra.Command, raw string, conv func(float64, domain.UnitSystem, domain.UnitSystem) float64, label func(domain.UnitSystem) string) error {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid value %q", raw)
	}
	from, err := domain.ParseUnitSystem(convertFrom)
	if err != nil {
		return fmt.Errorf("--from: %w", err)
	}
	var to domain.UnitSystem
	if convertTo == "" {
		to = domain.Imperial
		if from == domain.Imperial {
			to = domain.Metric
		}
	} else if to, err = domain.ParseUnitSystem(convertTo); err != nil {
		return fmt.Errorf("--to: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%.1f %s\n", conv(v, from, to), label(to))
	return nil
}

func init() {
	convertCmd.PersistentFlags().StringVar(&convertFrom, "from", "metric", "Source unit (metric, imperial, kg, lb, cm, in)")
	convertCmd.PersistentFlags().StringVar(&convertTo, "to", "", "Target unit (defaults to the other system)")
	convertCmd.AddCommand(convertWeightCmd, convertLengthCmd)
	rootCmd.AddCommand(convertCmd)
}
