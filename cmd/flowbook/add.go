package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"flowbook/internal/cli"
	"flowbook/internal/common"
	"flowbook/internal/entry"
)

func addCmd() *cobra.Command {
	var candidate entry.Candidate

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new expense",
		Long: `Record a new expense. The title, amount, and category are required;
notes are optional and limited to 100 characters.

Categories: Staff, Travel, Food, Utility (enum names STAFF, TRAVEL, FOOD,
UTILITY are accepted too).`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			// Validation runs before the store is touched; a rejected
			// candidate never opens the database.
			expense, err := candidate.Expense()
			if err != nil {
				return err
			}

			repo, store, err := initRepository(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			id, err := repo.Insert(ctx, &expense)
			if err != nil {
				return common.NewUserError("failed to save expense", err)
			}

			total, err := repo.TodayTotal(ctx)
			if err != nil {
				return common.NewUserError("failed to load today's total", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded %q (id %d)", expense.Title, id)))
			fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("  Today: ₹%.2f", total)))
			return nil
		},
	}

	cmd.Flags().StringVar(&candidate.Title, "title", "", "expense title (required)")
	cmd.Flags().StringVar(&candidate.Amount, "amount", "", "expense amount (required)")
	cmd.Flags().StringVar(&candidate.Category, "category", "", "expense category (required)")
	cmd.Flags().StringVar(&candidate.Notes, "notes", "", "optional notes (max 100 characters)")

	return cmd
}
