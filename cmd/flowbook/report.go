package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"flowbook/internal/cli"
	"flowbook/internal/common"
)

func reportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Show daily and category summaries",
		Long: `Show the last 7 days of spending (days without expenses are skipped)
and the percentage breakdown by category.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			repo, store, err := initRepository(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			daily, err := repo.Last7DaysSummaries(ctx)
			if err != nil {
				return common.NewUserError("failed to load daily summaries", err)
			}
			categories, err := repo.CategorySummary(ctx)
			if err != nil {
				return common.NewUserError("failed to load category summary", err)
			}

			fmt.Println(cli.FormatTitle("Last 7 days"))
			if len(daily) == 0 {
				fmt.Println(cli.InfoStyle.Render("No expenses in the last 7 days."))
			} else {
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				var total float64
				count := 0
				for _, summary := range daily {
					total += summary.TotalAmount
					count += summary.ExpenseCount
					fmt.Fprintf(w, "%s\t₹%.2f\t%s\n",
						summary.Date,
						summary.TotalAmount,
						cli.SubtleStyle.Render(fmt.Sprintf("%d expenses", summary.ExpenseCount)))
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n",
					cli.HeaderStyle.Render("Total"),
					cli.HeaderStyle.Render(fmt.Sprintf("₹%.2f", total)),
					cli.SubtleStyle.Render(fmt.Sprintf("%d expenses", count)))
				_ = w.Flush()
			}

			fmt.Println()
			fmt.Println(cli.TitleStyle.Render(cli.ChartIcon + " By category"))
			if len(categories) == 0 {
				fmt.Println(cli.InfoStyle.Render("No expenses recorded yet."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			for _, summary := range categories {
				fmt.Fprintf(w, "%s %s\t₹%.2f\t%s\t%s\n",
					summary.Category.Icon(),
					summary.Category.DisplayName(),
					summary.TotalAmount,
					percentBar(summary.Percentage),
					cli.SubtleStyle.Render(fmt.Sprintf("%.1f%%", summary.Percentage)))
			}
			_ = w.Flush()

			return nil
		},
	}
}

// percentBar renders a 20-cell bar for a 0-100 percentage.
func percentBar(percentage float64) string {
	filled := int(percentage / 5)
	if filled > 20 {
		filled = 20
	}
	return cli.InfoStyle.Render(strings.Repeat("█", filled) + strings.Repeat("░", 20-filled))
}
