package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Ashwini-108/expense-tracker-aws/internal/entity/expense"
	"github.com/Ashwini-108/expense-tracker-aws/internal/model/ledger"
)

const tableRule = 80

func newViewCmd(l *ledger.Ledger) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "view",
		Short: "View all expenses or filter by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if l.Len() == 0 {
				fmt.Println("📝 No expenses found. Add your first expense!")
				return nil
			}

			expenses := l.List(cmd.Context(), category)
			if category != "" {
				if len(expenses) == 0 {
					fmt.Printf("📝 No expenses found in category '%s'\n", category)
					return nil
				}
				fmt.Printf("\n💰 Expenses in category '%s':\n", category)
			} else {
				fmt.Printf("\n💰 All Expenses (%d total):\n", len(expenses))
			}

			printTable(expenses)
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Filter by category")
	return cmd
}

func printTable(expenses []expense.Expense) {
	rule := strings.Repeat("-", tableRule)

	fmt.Println(rule)
	fmt.Printf("%-4s %-12s %-10s %-15s %s\n", "ID", "Date", "Amount", "Category", "Description")
	fmt.Println(rule)

	var total float64
	for _, e := range expenses {
		fmt.Printf("%-4d %-12s $%-9.2f %-15s %s\n",
			e.ID, day(e.Date), e.Amount, e.Category, e.Description)
		total += e.Amount
	}

	fmt.Println(rule)
	fmt.Printf("%-31s $%.2f\n", "Total:", total)
}

func day(date string) string {
	if len(date) > 10 {
		return date[:10]
	}
	return date
}
