package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show business overview metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		metrics, err := appInstance.ReportService.GetDashboardMetrics(ctx)
		if err != nil {
			return fmt.Errorf("failed to load metrics: %w", err)
		}

		fmt.Println("Business Overview")
		fmt.Println("-----------------")
		fmt.Printf("Advance received:    %12.0f\n", metrics.TotalAdvance)
		fmt.Printf("Outstanding balance: %12.0f\n", metrics.TotalRemaining)
		fmt.Printf("Total invoiced:      %12.0f\n", metrics.TotalInvoiced)
		fmt.Printf("Fully paid:          %12d\n", metrics.PaidCount)
		fmt.Printf("Outstanding:         %12d\n", metrics.OutstandingCount)

		if len(metrics.RecentFive) > 0 {
			fmt.Println()
			fmt.Println("Recent orders")
			printReceiptTable(metrics.RecentFive)
		}

		return nil
	},
}
