package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Ashwini-108/expense-tracker-aws/internal/model/costs"
)

const defaultDaysBack = 30

func newReportCmd(fetcher *costs.Fetcher) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Fetch and analyze AWS costs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := fetcher.FetchCosts(cmd.Context(), days)
			if err != nil {
				return err
			}
			printReport(report, costs.Analyze(report), days)
			return nil
		},
	}

	cmd.Flags().IntVarP(&days, "days", "d", defaultDaysBack, "Days back to query")
	return cmd
}

func newExportCmd(fetcher *costs.Fetcher) *cobra.Command {
	var (
		days   int
		format string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export AWS costs to a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := fetcher.FetchCosts(cmd.Context(), days)
			if err != nil {
				return err
			}
			path, err := costs.Export(report, format, out)
			if err != nil {
				return err
			}
			fmt.Printf("✅ Cost report written to %s\n", path)
			return nil
		},
	}

	cmd.Flags().IntVarP(&days, "days", "d", defaultDaysBack, "Days back to query")
	cmd.Flags().StringVarP(&format, "format", "f", costs.FormatJSON, "Export format: json or csv")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output path (defaults per format)")
	return cmd
}

func printReport(report *costs.CostReport, analysis costs.Analysis, days int) {
	fmt.Printf("\n💸 AWS Cost Report (last %d days)\n", days)
	fmt.Println(strings.Repeat("-", 50))
	fmt.Printf("Total: $%.2f\n", analysis.Total)
	fmt.Printf("Average daily: $%.2f\n", analysis.AverageDaily)
	if analysis.PeakDay.Date != "" {
		fmt.Printf("Peak day: %s ($%.2f)\n", analysis.PeakDay.Date, analysis.PeakDay.Amount)
	}
	fmt.Printf("Trend: %s\n", analysis.Trend)

	if len(report.ServiceCosts) == 0 {
		return
	}

	type serviceCost struct {
		name   string
		amount float64
	}
	services := make([]serviceCost, 0, len(report.ServiceCosts))
	for name, amount := range report.ServiceCosts {
		services = append(services, serviceCost{name, amount})
	}
	sort.Slice(services, func(i, j int) bool {
		return services[i].amount > services[j].amount
	})

	fmt.Println("\n📂 By Service:")
	for _, svc := range services {
		fmt.Printf("  • %s: $%.2f\n", svc.name, svc.amount)
	}
}
