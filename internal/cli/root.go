package cli

import (
	"github.com/spf13/cobra"

	"github.com/Ashwini-108/expense-tracker-aws/internal/model/gateway"
	"github.com/Ashwini-108/expense-tracker-aws/internal/model/ledger"
)

// New assembles the tracker command tree around an already-loaded
// ledger.
func New(l *ledger.Ledger, gw *gateway.Gateway) *cobra.Command {
	root := &cobra.Command{
		Use:           "tracker",
		Short:         "💰 Expense Tracker - Manage your expenses in the cloud!",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newAddCmd(l),
		newViewCmd(l),
		newDeleteCmd(l),
		newSummaryCmd(l),
		newTestCmd(gw),
	)
	return root
}
