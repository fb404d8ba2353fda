package main

import (
	"fmt"
	"os"

	"github.com/risehub-org/risehub/internal/cli"
	"github.com/risehub-org/risehub/internal/cli/admin"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "risehubd",
		Short: "RiseHub daemon and CLI",
		Long:  "RiseHub daemon for running the discovery API server and seeding the content catalog",
	}

	cli.AddHelpJSONFlag(rootCmd)
	rootCmd.AddCommand(admin.ServeCmd())
	rootCmd.AddCommand(admin.SeedCmd())

	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	cli.CheckHelpJSON(rootCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
