package main

import (
	"fmt"
	"os"

	"github.com/risehub-org/risehub/internal/cli"
	"github.com/risehub-org/risehub/internal/cli/client"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "risehub",
		Short: "RiseHub CLI - Content discovery for youth development programs",
		Long: `RiseHub CLI provides commands to search the content catalog and record interactions.

Environment variables:
  RISEHUB_API_URL   API base URL (default: http://localhost:8080)
  RISEHUB_USER_ID   User identity sent with requests (enables history and interactions)`,
		Version: version,
	}

	rootCmd.PersistentFlags().Bool("output", false, "Output as JSON")
	rootCmd.PersistentFlags().String("api-url", "", "API base URL (overrides env)")
	rootCmd.PersistentFlags().String("user", "", "User identity (overrides env)")
	cli.AddHelpJSONFlag(rootCmd)

	rootCmd.AddCommand(client.SearchCmd())
	rootCmd.AddCommand(client.InteractCmd())

	cli.CheckHelpJSON(rootCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
