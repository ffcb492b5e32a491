package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Ashwini-108/expense-tracker-aws/internal/model/ledger"
)

func newDeleteCmd(l *ledger.Ledger) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an expense by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				fmt.Println("❌ Expense ID must be a number")
				return nil
			}

			removed, ok := l.Find(id)
			if !ok {
				fmt.Printf("❌ No expense found with ID %d\n", id)
				return nil
			}

			if !l.Delete(cmd.Context(), id) {
				fmt.Println("❌ Failed to delete expense from cloud storage")
				return nil
			}

			fmt.Println("✅ Expense deleted successfully!")
			fmt.Printf("   🗑️ Removed: %s - $%.2f\n", removed.Description, removed.Amount)
			return nil
		},
	}
}
