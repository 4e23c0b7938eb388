package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wearwise/wearwise/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "wearwise",
	Short: "Garment material impact and recommendation engine",
	Long:  "Predicts garment lifespan from fiber composition, estimates CO2 and water footprints, and suggests material substitutions that extend wear or cut impact.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
