package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Ashwini-108/expense-tracker-aws/internal/entity/expense"
	"github.com/Ashwini-108/expense-tracker-aws/internal/model/ledger"
)

func newAddCmd(l *ledger.Ledger) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:     "add <description> <amount>",
		Short:   "Add a new expense",
		Example: `  tracker add "Coffee" 4.50 --category Food`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			description := args[0]
			amount, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				fmt.Println("❌ Amount must be a number")
				return nil
			}

			if err := expense.Validate(description, amount); err != nil {
				switch {
				case errors.Is(err, expense.ErrNonPositiveAmount):
					fmt.Println("❌ Amount must be greater than 0")
				case errors.Is(err, expense.ErrEmptyDescription):
					fmt.Println("❌ Description cannot be empty")
				default:
					fmt.Printf("❌ %v\n", err)
				}
				return nil
			}

			if !l.Add(cmd.Context(), description, amount, category) {
				fmt.Println("❌ Failed to save expense to cloud storage")
				return nil
			}

			shown := category
			if strings.TrimSpace(shown) == "" {
				shown = expense.DefaultCategory
			}
			fmt.Println("✅ Expense added successfully!")
			fmt.Printf("   💰 $%.2f for '%s' in category '%s'\n",
				amount, strings.TrimSpace(description), strings.TrimSpace(shown))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", expense.DefaultCategory, "Expense category")
	return cmd
}
