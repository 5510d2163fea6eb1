package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/syndicate/internal/cli"
	"github.com/example/syndicate/internal/version"
	"github.com/example/syndicate/internal/wire"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "syndicate",
		Short:   "Syndicate - crew mission engine",
		Version: version.String(),
		Long: `Syndicate runs a crime crew through contracts in a city under escalating heat.
Each invocation plays a fresh session; resolved missions are kept in the mission log.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.ContractsCmd())
	rootCmd.AddCommand(cli.PreviewCmd())
	rootCmd.AddCommand(cli.RunCmd())
	rootCmd.AddCommand(cli.CampaignCmd())
	rootCmd.AddCommand(cli.GarageCmd())
	rootCmd.AddCommand(cli.LogCmd())

	err := rootCmd.Execute()
	if cerr := wire.Close(); cerr != nil {
		fmt.Fprintln(os.Stderr, cerr)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
