package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zeshan/pressbook/internal/domain"
	"github.com/zeshan/pressbook/internal/render"
)

var receiptsCmd = &cobra.Command{
	Use:   "receipts",
	Short: "Manage receipts",
	Long:  `List, show, search, export, and delete receipts.`,
}

var receiptsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List receipts (newest first)",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		query, _ := cmd.Flags().GetString("search")
		receipts, err := appInstance.ReceiptService.Search(ctx, query)
		if err != nil {
			return fmt.Errorf("failed to list receipts: %w", err)
		}

		if len(receipts) == 0 {
			fmt.Println("No receipts found")
			return nil
		}

		printReceiptTable(receipts)
		fmt.Printf("\nTotal: %d receipt(s)\n", len(receipts))
		return nil
	},
}

var receiptsSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search receipts by customer name or receipt number",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		receipts, err := appInstance.ReceiptService.Search(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to search receipts: %w", err)
		}

		if len(receipts) == 0 {
			fmt.Println("No receipts match")
			return nil
		}

		printReceiptTable(receipts)
		fmt.Printf("\nMatched: %d receipt(s)\n", len(receipts))
		return nil
	},
}

var receiptsShowCmd = &cobra.Command{
	Use:   "show [id_or_number]",
	Short: "Show the printable receipt",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		receipt, err := resolveReceipt(ctx, args[0])
		if err != nil {
			return err
		}

		settings, err := appInstance.SettingsRepo.Get(ctx)
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}

		fmt.Print(render.Receipt(receipt, settings))
		return nil
	},
}

var receiptsExportCmd = &cobra.Command{
	Use:   "export [id_or_number]",
	Short: "Write the printable receipt to the output directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		receipt, err := resolveReceipt(ctx, args[0])
		if err != nil {
			return err
		}

		settings, err := appInstance.SettingsRepo.Get(ctx)
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}

		path, err := render.Export(receipt, settings, appInstance.Config.Receipt.OutputDir)
		if err != nil {
			return fmt.Errorf("failed to export receipt: %w", err)
		}

		fmt.Printf("✓ Receipt written to %s\n", path)
		return nil
	},
}

var receiptsDeleteCmd = &cobra.Command{
	Use:   "delete [id_or_number]",
	Short: "Delete a receipt",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		if len(args) != 1 {
			return fmt.Errorf("expected a receipt id or number")
		}

		receipt, err := resolveReceipt(ctx, args[0])
		if err != nil {
			return err
		}

		if !confirmPrompt(fmt.Sprintf("Delete receipt %s for %s?", receipt.ReceiptNumber, receipt.Customer.Name)) {
			fmt.Println("Cancelled.")
			return nil
		}

		if err := appInstance.ReceiptService.Delete(ctx, receipt.ID); err != nil {
			return fmt.Errorf("failed to delete receipt: %w", err)
		}

		fmt.Printf("✓ Receipt %s deleted\n", receipt.ReceiptNumber)
		return nil
	},
}

// resolveReceipt looks a receipt up by id first, then by receipt number
func resolveReceipt(ctx context.Context, ref string) (*domain.Receipt, error) {
	receipt, err := appInstance.ReceiptService.Get(ctx, ref)
	if err == nil {
		return receipt, nil
	}
	if !errors.Is(err, domain.ErrReceiptNotFound) {
		return nil, fmt.Errorf("failed to get receipt: %w", err)
	}

	// Fall back to a number match over the collection
	receipts, err := appInstance.ReceiptService.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list receipts: %w", err)
	}
	for _, r := range receipts {
		if r.ReceiptNumber == ref {
			return r, nil
		}
	}

	return nil, fmt.Errorf("receipt %q: %w", ref, domain.ErrReceiptNotFound)
}

func printReceiptTable(receipts []*domain.Receipt) {
	fmt.Printf("%-12s %-24s %-12s %10s %10s %-8s\n", "Number", "Customer", "Date", "Total", "Balance", "Status")
	fmt.Println("----------------------------------------------------------------------------------")
	for _, r := range receipts {
		fmt.Printf("%-12s %-24s %-12s %10.0f %10.0f %-8s\n",
			r.ReceiptNumber,
			truncate(r.Customer.Name, 24),
			r.Date.Format("2006-01-02"),
			r.Total,
			r.RemainingBalance,
			r.Status,
		)
	}
}

func init() {
	receiptsCmd.AddCommand(receiptsListCmd)
	receiptsCmd.AddCommand(receiptsSearchCmd)
	receiptsCmd.AddCommand(receiptsShowCmd)
	receiptsCmd.AddCommand(receiptsExportCmd)
	receiptsCmd.AddCommand(receiptsDeleteCmd)

	// List flags
	receiptsListCmd.Flags().String("search", "", "Filter by customer name or receipt number")
}
