package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"foodkeeper/internal/model"
)

var exportOut string

// exportCmd downloads the full dataset as JSON
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Download the full dataset as JSON",
	Long: `Download all food items and storage locations as a JSON snapshot.

Examples:
  foodkeeper export                      # Print to stdout
  foodkeeper export --out backup.json    # Write to a file`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(cmd)
	},
}

// importCmd replaces the full dataset from a JSON file
var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the full dataset from a JSON snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runImport(cmd, args[0])
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Write the snapshot to this file instead of stdout")

	rootCmd.AddCommand(exportCmd, importCmd)
}

func runExport(cmd *cobra.Command) error {
	snap, err := newClient().Export(cmd.Context())
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}

	if exportOut == "" {
		fmt.Println(string(data))
		return nil
	}
	return os.WriteFile(exportOut, data, 0o644)
}

func runImport(cmd *cobra.Command, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var snap model.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("invalid snapshot file: %w", err)
	}

	if err := newClient().Import(cmd.Context(), &snap); err != nil {
		return err
	}
	fmt.Printf("imported %d items and %d locations\n", len(snap.FoodItems), len(snap.StorageLocations))
	return nil
}
