package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	recommendComposition string
	recommendCategory    string
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Suggest material substitutions for a composition",
	RunE: func(cmd *cobra.Command, args []string) error {
		comp, err := parseComposition(recommendComposition)
		if err != nil {
			return err
		}

		env, err := initEnv(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer env.Close()

		result := env.service.Score(cmd.Context(), comp, recommendCategory, 0)
		if len(result.Recommendations) == 0 {
			fmt.Println("no substitutions apply to this composition")
			return nil
		}

		fmt.Printf("current: %s, %.1f months\n", formatComposition(result.Composition), result.LifespanMonths)
		for i, rec := range result.Recommendations {
			fmt.Printf("[%d] %s\n", i+1, rec.Label)
			fmt.Printf("    %s\n", formatComposition(rec.Composition))
			fmt.Printf("    lifespan %+.1f months, CO2 %+.2f kg, water %+.0f L\n",
				rec.DeltaLifespanMonths, rec.DeltaCO2, rec.DeltaWater)
		}
		return nil
	},
}

func init() {
	f := recommendCmd.Flags()
	f.StringVar(&recommendComposition, "composition", "", "fiber composition as name=fraction pairs (required)")
	f.StringVar(&recommendCategory, "category", "", "garment category")
	recommendCmd.MarkFlagRequired("composition") //nolint:errcheck
	rootCmd.AddCommand(recommendCmd)
}
