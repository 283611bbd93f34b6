package cli

import (
	"fmt"
	"strconv"

	"nutritrack/internal/app"
	"nutritrack/internal/domain"

	"github.com/spf13/cobra"
)

var (
	weightFlag       float64
	heightFlag       float64
	ageFlag          int
	sexFlag          string
	activityFlag     string
	goalFlag         string
	targetWeightFlag float64
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "Compute daily calorie target and macros",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := domain.ProfileInput{
			Sex:          sexFlag,
			AgeYears:     ageFlag,
			Height:       heightFlag,
			Weight:       weightFlag,
			TargetWeight: targetWeightFlag,
			Goal:         goalFlag,
			UnitSystem:   unitFlag,
		}
		if in.TargetWeight == 0 {
			in.TargetWeight = in.Weight
		}
		if f, err := strconv.ParseFloat(activityFlag, 64); err == nil {
			in.ActivityFactor = f
		} else {
			in.ActivityLevel = activityFlag
		}

		p, err := in.Normalize()
		if err != nil {
			return err
		}
		p.StartWeightKg = p.WeightKg
		plan := app.PlanFor(&p, "")

		out := cmd.OutOrStdout()
		unit := plan.Unit.WeightLabel()
		fmt.Fprintf(out, "BMR:          %.0f kcal\n", plan.BasalRate)
		fmt.Fprintf(out, "Maintenance:  %.0f kcal\n", plan.MaintenanceRate)
		if plan.GoalReached && p.Goal != domain.Maintain {
			fmt.Fprintf(out, "Target:       %d kcal (%s, target weight reached)\n", plan.CalorieTarget, p.Goal)
		} else {
			fmt.Fprintf(out, "Target:       %d kcal (%s)\n", plan.CalorieTarget, p.Goal)
		}
		fmt.Fprintf(out, "Protein:      %d g\n", plan.Macros.ProteinGrams)
		fmt.Fprintf(out, "Fat:          %d g\n", plan.Macros.FatGrams)
		fmt.Fprintf(out, "Carbs:        %d g\n", plan.Macros.CarbGrams)
		fmt.Fprintf(out, "BMI:          %.1f (%s)\n", plan.BMI, plan.BMICategory.Label)
		fmt.Fprintf(out, "Healthy:      %.1f-%.1f %s\n", plan.HealthyRange.Min, plan.HealthyRange.Max, unit)
		return nil
	},
}

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List activity levels accepted by --activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), "NAME\tFACTOR\tDESCRIPTION")
		for _, l := range domain.ActivityLevels {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%g\t%s\n", l.Name, l.Factor, l.Description)
		}
		return nil
	},
}

func init() {
	f := targetsCmd.Flags()
	f.Float64Var(&weightFlag, "weight", 0, "Current body weight")
	f.Float64Var(&heightFlag, "height", 0, "Height")
	f.IntVar(&ageFlag, "age", 0, "Age in years")
	f.StringVar(&sexFlag, "sex", "", "male or female")
	f.StringVar(&activityFlag, "activity", "sedentary", "Activity factor (1.2-1.9) or level name")
	f.StringVar(&goalFlag, "goal", "maintain", "lose, gain or maintain")
	f.Float64Var(&targetWeightFlag, "target-weight", 0, "Target body weight (defaults to current)")
	_ = targetsCmd.MarkFlagRequired("weight")
	_ = targetsCmd.MarkFlagRequired("height")
	_ = targetsCmd.MarkFlagRequired("age")
	_ = targetsCmd.MarkFlagRequired("sex")

	rootCmd.AddCommand(targetsCmd, levelsCmd)
}
