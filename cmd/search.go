package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var searchSave bool

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the catalog and score every match",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")

		env, err := initEnv(cmd.Context(), searchSave)
		if err != nil {
			return err
		}
		defer env.Close()

		results, err := env.service.Search(cmd.Context(), query)
		if err != nil {
			return err
		}

		if len(results) == 0 {
			fmt.Println("no products found")
			return nil
		}

		for _, r := range results {
			printResult(r)
			fmt.Println()
		}
		fmt.Printf("%d products scored\n", len(results))
		return nil
	},
}

func init() {
	searchCmd.Flags().BoolVar(&searchSave, "save", false, "record results in lookup history")
	rootCmd.AddCommand(searchCmd)
}
