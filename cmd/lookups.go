package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wearwise/wearwise/internal/store"
)

var (
	lookupsQuery    string
	lookupsCategory string
	lookupsLimit    int
	lookupsOffset   int
)

var lookupsCmd = &cobra.Command{
	Use:   "lookups",
	Short: "List past scored lookups",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := newStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck
		if err := st.Migrate(ctx); err != nil {
			return err
		}

		lookups, err := st.ListLookups(ctx, store.Filter{
			Query:    lookupsQuery,
			Category: lookupsCategory,
			Limit:    lookupsLimit,
			Offset:   lookupsOffset,
		})
		if err != nil {
			return err
		}

		if len(lookups) == 0 {
			fmt.Println("no lookups recorded")
			return nil
		}

		for _, l := range lookups {
			title := l.Title
			if title == "" {
				title = "(manual score)"
			}
			fmt.Printf("%s  %s\n", l.CreatedAt.Format("2006-01-02 15:04"), title)
			fmt.Printf("  id: %s  category: %s  lifespan: %.1f months  CO2: %.2f kg  recommendations: %d\n",
				l.ID, l.Category, l.LifespanMonths, l.Impact.CO2, l.Recommendations)
		}
		return nil
	},
}

func init() {
	f := lookupsCmd.Flags()
	f.StringVar(&lookupsQuery, "query", "", "filter by original search query")
	f.StringVar(&lookupsCategory, "category", "", "filter by garment category")
	f.IntVar(&lookupsLimit, "limit", 20, "maximum rows to show")
	f.IntVar(&lookupsOffset, "offset", 0, "rows to skip")
	rootCmd.AddCommand(lookupsCmd)
}
