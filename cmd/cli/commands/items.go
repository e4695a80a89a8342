package commands

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"foodkeeper/internal/client"
	"foodkeeper/internal/expiry"
	"foodkeeper/internal/model"
)

var (
	listLocationID string

	addExpiry       string
	addRegistration string
	addLocationID   string
	addNoExpiry     bool
)

// listCmd prints all tracked items with their expiry status
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List food items with their expiry status",
	Long: `List all tracked food items, or only those in one storage location.

Examples:
  foodkeeper list                # All items
  foodkeeper list --location 1   # Items in location 1`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd)
	},
}

// addCmd registers a new food item
var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Register a food item",
	Long: `Register a food item with an expiry date and optional storage location.

Examples:
  foodkeeper add 牛乳 --expiry 2025-01-10 --location 1
  foodkeeper add 塩 --no-expiry`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAdd(cmd, args[0])
	},
}

// rmCmd deletes a food item
var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a food item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return newClient().DeleteFoodItem(cmd.Context(), args[0])
	},
}

func init() {
	listCmd.Flags().StringVar(&listLocationID, "location", "", "Only items in this storage location")

	addCmd.Flags().StringVar(&addExpiry, "expiry", "", "Expiry date (YYYY-MM-DD)")
	addCmd.Flags().StringVar(&addRegistration, "registered", "", "Registration date (YYYY-MM-DD, defaults to today)")
	addCmd.Flags().StringVar(&addLocationID, "location", "", "Storage location ID")
	addCmd.Flags().BoolVar(&addNoExpiry, "no-expiry", false, "Item has no expiry date")

	rootCmd.AddCommand(listCmd, addCmd, rmCmd)
}

func runList(cmd *cobra.Command) error {
	c := newClient()

	items, err := c.ListFoodItems(cmd.Context(), listLocationID)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tLOCATION\tSTATUS")
	now := time.Now()
	for _, item := range items {
		id := item.ID
		if item.PendingSync {
			id += "*"
		}
		location := "-"
		if item.LocationID != nil {
			location = *item.LocationID
		}
		status := expiry.Evaluate(now, item.FoodItem)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", id, item.Name, location, status.Label)
	}
	return w.Flush()
}

func runAdd(cmd *cobra.Command, name string) error {
	req := client.FoodItemRequest{Name: name, HasNoExpiry: addNoExpiry}

	if addExpiry != "" {
		d, err := model.ParseDate(addExpiry)
		if err != nil {
			return fmt.Errorf("invalid expiry date: %w", err)
		}
		req.ExpiryDate = &d
	}
	if addRegistration != "" {
		d, err := model.ParseDate(addRegistration)
		if err != nil {
			return fmt.Errorf("invalid registration date: %w", err)
		}
		req.RegistrationDate = &d
	}
	if addLocationID != "" {
		req.LocationID = &addLocationID
	}

	item, err := newClient().CreateFoodItem(cmd.Context(), req)
	if err != nil {
		return err
	}

	if item.PendingSync {
		fmt.Printf("added %s (id %s, pending sync)\n", item.Name, item.ID)
	} else {
		fmt.Printf("added %s (id %s)\n", item.Name, item.ID)
	}
	return nil
}
