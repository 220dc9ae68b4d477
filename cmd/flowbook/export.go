package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"flowbook/internal/cli"
	"flowbook/internal/common"
	"flowbook/internal/export"
)

func exportCmd() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export expenses as CSV or a plain-text report",
		Long: `Export the full expense history. The csv format writes one quoted row
per expense; the text format writes the daily summary, category summary, and
detailed expense sections.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			repo, store, err := initRepository(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			expenses, err := repo.All(ctx)
			if err != nil {
				return common.NewUserError("failed to load expenses", err)
			}

			var payload string
			switch format {
			case "csv":
				payload, err = export.CSV(expenses)
			case "text":
				daily, dailyErr := repo.Last7DaysSummaries(ctx)
				if dailyErr != nil {
					return common.NewUserError("failed to load daily summaries", dailyErr)
				}
				categories, catErr := repo.CategorySummary(ctx)
				if catErr != nil {
					return common.NewUserError("failed to load category summary", catErr)
				}
				payload, err = export.PlainText(export.Snapshot{
					GeneratedAt:       time.Now(),
					Expenses:          expenses,
					DailySummaries:    daily,
					CategorySummaries: categories,
				})
			default:
				return fmt.Errorf("invalid format %q (want csv or text)", format)
			}
			if err != nil {
				return common.NewUserError("export failed", err)
			}

			if output == "" {
				fmt.Print(payload)
				return nil
			}

			if err := os.WriteFile(output, []byte(payload), 0600); err != nil {
				return common.NewUserError(fmt.Sprintf("failed to write %s", output), err)
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Exported %d expenses to %s", len(expenses), output)))
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "csv", "export format (csv, text)")
	cmd.Flags().StringVar(&output, "output", "", "output file (default: stdout)")

	return cmd
}
