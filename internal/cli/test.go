package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Ashwini-108/expense-tracker-aws/internal/model/gateway"
)

func newTestCmd(gw *gateway.Gateway) *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "Test AWS connections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			status := gw.CheckConnectivity(cmd.Context())

			fmt.Println("\n🔍 AWS Connection Test:")
			fmt.Println(strings.Repeat("-", 30))
			fmt.Printf("S3 Connection: %s\n", mark(status.StoreOK))
			fmt.Printf("CloudWatch Connection: %s\n", mark(status.LogOK))

			if len(status.Errors) > 0 {
				fmt.Println("\nErrors:")
				for _, e := range status.Errors {
					fmt.Printf("  • %s\n", e)
				}
			}
			return nil
		},
	}
}

func mark(ok bool) string {
	if ok {
		return "✅"
	}
	return "❌"
}
