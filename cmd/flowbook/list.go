package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"flowbook/internal/cli"
	"flowbook/internal/common"
	"flowbook/internal/model"
)

func listCmd() *cobra.Command {
	var (
		dateFlag     string
		categoryFlag string
		allFlag      bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List expenses",
		Long: `List expenses for a calendar day or a category, newest first.
Defaults to today when no filter is given.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			repo, store, err := initRepository(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			var expenses []model.Expense
			switch {
			case allFlag:
				expenses, err = repo.All(ctx)
			case categoryFlag != "":
				category, parseErr := model.ParseCategory(categoryFlag)
				if parseErr != nil {
					return parseErr
				}
				expenses, err = repo.ByCategory(ctx, category)
			case dateFlag != "":
				expenses, err = repo.ByDate(ctx, dateFlag)
			default:
				expenses, err = repo.ByDate(ctx, model.DayKey(time.Now()))
			}
			if err != nil {
				return common.NewUserError("failed to load expenses", err)
			}

			if len(expenses) == 0 {
				fmt.Println(cli.InfoStyle.Render("No expenses found."))
				return nil
			}

			printExpenseTable(expenses)
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "calendar day to list (yyyy-MM-dd)")
	cmd.Flags().StringVar(&categoryFlag, "category", "", "category to list")
	cmd.Flags().BoolVar(&allFlag, "all", false, "list every expense")

	return cmd
}

func printExpenseTable(expenses []model.Expense) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer func() { _ = w.Flush() }()

	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		cli.HeaderStyle.Render("ID"),
		cli.HeaderStyle.Render("Title"),
		cli.HeaderStyle.Render("Category"),
		cli.HeaderStyle.Render("Amount"),
		cli.HeaderStyle.Render("Created"))
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		strings.Repeat("-", 4),
		strings.Repeat("-", 20),
		strings.Repeat("-", 10),
		strings.Repeat("-", 10),
		strings.Repeat("-", 16))

	var total float64
	for _, e := range expenses {
		total += e.Amount
		title := e.Title
		if e.HasNotes() {
			title += cli.SubtleStyle.Render(" *")
		}
		fmt.Fprintf(w, "%d\t%s\t%s %s\t₹%.2f\t%s\n",
			e.ID,
			title,
			e.Category.Icon(),
			e.Category.DisplayName(),
			e.Amount,
			e.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Fprintf(w, "\t\t\t%s\t%s\n",
		cli.HeaderStyle.Render(fmt.Sprintf("₹%.2f", total)),
		cli.SubtleStyle.Render(fmt.Sprintf("%d expenses", len(expenses))))
}
