package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"flowbook/internal/cli"
	"flowbook/internal/common"
	"flowbook/internal/entry"
)

func editCmd() *cobra.Command {
	var candidate entry.Candidate

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update an expense",
		Long: `Replace an expense's title, amount, category, and notes. Fields left
unset keep their stored value; the creation time never changes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid expense id %q", args[0])
			}

			repo, store, err := initRepository(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			existing, err := repo.GetByID(ctx, id)
			if err != nil {
				return common.NewUserError(fmt.Sprintf("expense %d not found", id), err)
			}

			// Unset flags fall back to the stored values so a partial edit
			// still validates as a full record. An explicitly passed empty
			// value is kept and validated, not treated as unset.
			if !cmd.Flags().Changed("title") {
				candidate.Title = existing.Title
			}
			if !cmd.Flags().Changed("amount") {
				candidate.Amount = strconv.FormatFloat(existing.Amount, 'f', -1, 64)
			}
			if !cmd.Flags().Changed("category") {
				candidate.Category = string(existing.Category)
			}
			if !cmd.Flags().Changed("notes") {
				candidate.Notes = existing.Notes
			}

			updated, err := candidate.Expense()
			if err != nil {
				return err
			}
			updated.ID = existing.ID
			updated.CreatedAt = existing.CreatedAt

			if err := repo.Update(ctx, updated); err != nil {
				return common.NewUserError("failed to update expense", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated expense %d", id)))
			return nil
		},
	}

	cmd.Flags().StringVar(&candidate.Title, "title", "", "new title")
	cmd.Flags().StringVar(&candidate.Amount, "amount", "", "new amount")
	cmd.Flags().StringVar(&candidate.Category, "category", "", "new category")
	cmd.Flags().StringVar(&candidate.Notes, "notes", "", "new notes (empty clears them)")

	return cmd
}
