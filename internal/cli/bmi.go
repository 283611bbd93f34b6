package cli

import (
	"fmt"

	"nutritrack/internal/domain"

	"github.com/spf13/cobra"
)

var (
	bmiWeight float64
	bmiHeight float64
	bmiSex    string
)

var bmiCmd = &cobra.Command{
	Use:   "bmi",
	Short: "Compute BMI and the healthy weight range",
	RunE: func(cmd *cobra.Command, args []string) error {
		unit, err := domain.ParseUnitSystem(unitFlag)
		if err != nil {
			return err
		}
		if err := domain.CheckWeight("weight", bmiWeight, unit); err != nil {
			return err
		}
		if err := domain.CheckHeight("height", bmiHeight, unit); err != nil {
			return err
		}

		cm := domain.LengthToCm(bmiHeight, unit)
		bmi := domain.ComputeBMI(domain.WeightToKg(bmiWeight, unit), cm)
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "BMI:      %.1f (%s)\n", bmi, domain.BMICategoryFor(bmi).Label)

		if bmiSex != "" {
			sex, err := domain.ParseSex(bmiSex)
			if err != nil {
				return err
			}
			r := domain.HealthyWeightRange(cm, sex).In(unit)
			fmt.Fprintf(out, "Healthy:  %.1f-%.1f %s\n", r.Min, r.Max, unit.WeightLabel())
		}
		return nil
	},
}

func init() {
	bmiCmd.Flags().Float64Var(&bmiWeight, "weight", 0, "Body weight")
	bmiCmd.Flags().Float64Var(&bmiHeight, "height", 0, "Height")
	bmiCmd.Flags().StringVar(&bmiSex, "sex", "", "male or female, enables the healthy range")
	_ = bmiCmd.MarkFlagRequired("weight")
	_ = bmiCmd.MarkFlagRequired("height")
	rootCmd.AddCommand(bmiCmd)
}
