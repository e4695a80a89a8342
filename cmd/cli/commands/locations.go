package commands

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"foodkeeper/internal/client"
)

var forceDelete bool

// locationsCmd groups the storage-location subcommands
var locationsCmd = &cobra.Command{
	Use:   "locations",
	Short: "Manage storage locations",
}

var locationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List storage locations with item counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLocationsList(cmd)
	},
}

var locationsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Register a storage location",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		loc, err := newClient().CreateLocation(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("added %s (id %s)\n", loc.Name, loc.ID)
		return nil
	},
}

var locationsRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a storage location",
	Long: `Delete a storage location.

A location still referenced by food items is refused unless --force is given,
in which case the referencing items are kept but unassigned.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLocationsRm(cmd, args[0])
	},
}

func init() {
	locationsRmCmd.Flags().BoolVar(&forceDelete, "force", false, "Unassign referencing items and delete anyway")

	locationsCmd.AddCommand(locationsListCmd, locationsAddCmd, locationsRmCmd)
	rootCmd.AddCommand(locationsCmd)
}

func runLocationsList(cmd *cobra.Command) error {
	c := newClient()

	locations, err := c.ListLocations(cmd.Context())
	if err != nil {
		return err
	}

	// Counts are best effort; offline the listing still works without them.
	stats, err := c.LocationStats(cmd.Context())
	if err != nil {
		stats = nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tITEMS")
	for _, loc := range locations {
		if stats != nil {
			fmt.Fprintf(w, "%s\t%s\t%d\n", loc.ID, loc.Name, stats[loc.ID])
		} else {
			fmt.Fprintf(w, "%s\t%s\t-\n", loc.ID, loc.Name)
		}
	}
	return w.Flush()
}

func runLocationsRm(cmd *cobra.Command, id string) error {
	err := newClient().DeleteLocation(cmd.Context(), id, forceDelete)
	if err == nil {
		return nil
	}

	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.ItemsCount > 0 {
		return fmt.Errorf("%s (%d items, retry with --force)", apiErr.Message, apiErr.ItemsCount)
	}
	return err
}
