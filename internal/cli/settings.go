package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "View or edit the press identity",
	Long: `View or edit the press identity printed on every receipt.

Edits only affect receipts created afterwards; existing receipts keep the
settings snapshot taken when they were created.`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current press identity",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		settings, err := appInstance.SettingsRepo.Get(ctx)
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}

		fmt.Printf("Name:    %s\n", settings.Name)
		fmt.Printf("Tagline: %s\n", settings.Tagline)
		fmt.Printf("Address: %s\n", settings.Address)
		fmt.Printf("Contact: %s\n", settings.Contact)
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update press identity fields",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		settings, err := appInstance.SettingsRepo.Get(ctx)
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}

		changed := false
		if cmd.Flags().Changed("name") {
			settings.Name, _ = cmd.Flags().GetString("name")
			changed = true
		}
		if cmd.Flags().Changed("tagline") {
			settings.Tagline, _ = cmd.Flags().GetString("tagline")
			changed = true
		}
		if cmd.Flags().Changed("address") {
			settings.Address, _ = cmd.Flags().GetString("address")
			changed = true
		}
		if cmd.Flags().Changed("contact") {
			settings.Contact, _ = cmd.Flags().GetString("contact")
			changed = true
		}

		if !changed {
			return fmt.Errorf("nothing to update: pass --name, --tagline, --address or --contact")
		}

		if settings.Name == "" {
			return fmt.Errorf("press name cannot be empty")
		}

		if err := appInstance.SettingsRepo.Save(ctx, settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}

		fmt.Println("✓ Settings saved")
		return nil
	},
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)

	settingsSetCmd.Flags().String("name", "", "Press name")
	settingsSetCmd.Flags().String("tagline", "", "Tagline")
	settingsSetCmd.Flags().String("address", "", "Address")
	settingsSetCmd.Flags().String("contact", "", "Contact number")
}
