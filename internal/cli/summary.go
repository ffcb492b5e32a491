package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Ashwini-108/expense-tracker-aws/internal/model/ledger"
)

func newSummaryCmd(l *ledger.Ledger) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show expense summary and statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			summary := l.Summarize(cmd.Context())

			fmt.Println("\n📊 Expense Summary:")
			fmt.Println(strings.Repeat("-", 50))
			fmt.Printf("Total Expenses: %d\n", summary.TotalExpenses)
			fmt.Printf("Total Amount: $%.2f\n", summary.TotalAmount)

			if len(summary.Categories) > 0 {
				fmt.Println("\n📂 By Category:")
				for category, data := range summary.Categories {
					fmt.Printf("  • %s: %d expenses, $%.2f\n", category, data.Count, data.Amount)
				}
			}

			if len(summary.MostRecent) > 0 {
				fmt.Println("\n🕒 Recent Expenses:")
				for _, e := range summary.MostRecent {
					fmt.Printf("  • %s - %s ($%.2f)\n", day(e.Date), e.Description, e.Amount)
				}
			}
			return nil
		},
	}
}
