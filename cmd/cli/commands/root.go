package commands

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"

	"foodkeeper/internal/client"
	"foodkeeper/internal/config"
)

var apiURL string

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "foodkeeper",
	Short: "FoodKeeper - track food items and their expiry dates",
	Long: `FoodKeeper tracks food items, their expiry dates, and where they are stored.

The CLI talks to a FoodKeeper server and keeps a local snapshot cache, so
listing keeps working while the server is unreachable. Items added or edited
offline are flagged with a * until the server has them.`,
	Version: "1.0.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "", "Base URL of the FoodKeeper server (default from FOODKEEPER_API_URL)")
}

func newClient() *client.Client {
	cfg := config.Load()
	if apiURL != "" {
		cfg.Client.APIBaseURL = apiURL
	}
	return client.New(cfg.Client)
}
