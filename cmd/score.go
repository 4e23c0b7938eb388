package main

import (
	"github.com/spf13/cobra"
)

var (
	scoreComposition string
	scoreCategory    string
	scoreMassKg      float64
	scoreSave        bool
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Predict lifespan and impact for a fiber composition",
	Long: `Scores a garment from its fiber composition.

Examples:
  # Even cotton/polyester blend t-shirt
  wearwise score --composition cotton=0.5,polyester=0.5 --category tshirt

  # Percent values work too
  wearwise score --composition "cotton=98,elastane=2" --category jeans

  # Heavier garment
  wearwise score --composition wool=1 --category sweater --mass-kg 0.6`,
	RunE: func(cmd *cobra.Command, args []string) error {
		comp, err := parseComposition(scoreComposition)
		if err != nil {
			return err
		}

		env, err := initEnv(cmd.Context(), scoreSave)
		if err != nil {
			return err
		}
		defer env.Close()

		result := env.service.Score(cmd.Context(), comp, scoreCategory, scoreMassKg)
		printResult(result)
		return nil
	},
}

func init() {
	f := scoreCmd.Flags()
	f.StringVar(&scoreComposition, "composition", "", "fiber composition as name=fraction pairs (required)")
	f.StringVar(&scoreCategory, "category", "", "garment category (tshirt, sweater, jacket, dress, trousers, jeans)")
	f.Float64Var(&scoreMassKg, "mass-kg", 0, "garment mass in kg (default from config)")
	f.BoolVar(&scoreSave, "save", false, "record the result in lookup history")
	scoreCmd.MarkFlagRequired("composition") //nolint:errcheck
	rootCmd.AddCommand(scoreCmd)
}
