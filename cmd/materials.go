package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wearwise/wearwise/internal/material"
)

var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "Inspect and manage the material coefficient table",
}

var materialsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List material coefficients",
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := cfg.MaterialTable()
		if err != nil {
			return err
		}

		fmt.Printf("%-22s %10s %12s %12s %8s\n", "MATERIAL", "CO2/KG", "WATER L/KG", "DURABILITY", "COST")
		for _, name := range table.Names() {
			c, _ := table.Coefficients(name)
			fmt.Printf("%-22s %10.1f %12.0f %12.2f %8s\n",
				material.Label(name), c.CO2PerKg, c.WaterPerKg, c.Durability, c.CostTier)
		}
		return nil
	},
}

var (
	importSheetName string
	importSheetIdx  int
	importSkipRows  int
	importOut       string
)

var materialsImportCmd = &cobra.Command{
	Use:   "import <file.xlsx>",
	Short: "Import material coefficients from a spreadsheet",
	Long: `Reads an xlsx sheet with columns: material name, CO2 kg per kg,
water liters per kg, durability, and optional cost tier. The result is
written as a YAML overrides file usable via materials.path in config.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := material.ReadXLSX(args[0], material.XLSXOptions{
			SheetName:  importSheetName,
			SheetIndex: importSheetIdx,
			SkipRows:   importSkipRows,
		})
		if err != nil {
			return err
		}

		table := material.NewTable(entries)
		if err := material.WriteYAML(importOut, table); err != nil {
			return err
		}

		fmt.Printf("imported %d materials to %s\n", table.Len(), importOut)
		return nil
	},
}

func init() {
	f := materialsImportCmd.Flags()
	f.StringVar(&importSheetName, "sheet", "", "sheet name (default first sheet)")
	f.IntVar(&importSheetIdx, "sheet-index", 0, "sheet index when no name is given")
	f.IntVar(&importSkipRows, "skip-rows", 1, "header rows to skip")
	f.StringVar(&importOut, "out", "materials.yaml", "output overrides file")

	materialsCmd.AddCommand(materialsListCmd)
	materialsCmd.AddCommand(materialsImportCmd)
	rootCmd.AddCommand(materialsCmd)
}
