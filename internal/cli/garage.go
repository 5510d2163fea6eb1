package cli

import (
	"github.com/spf13/cobra"
)

// GarageCmd manages the session's vehicles.
func GarageCmd() *cobra.Command {
	garageCmd := &cobra.Command{
		Use:   "garage",
		Short: "Maintain vehicles",
		Long:  "List, repair, upgrade, sell and scrap the crew's vehicles",
	}

	garageCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List vehicles",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGame()
			if err != nil {
				return err
			}
			g.GarageAdapter(cmd.OutOrStdout()).List(NewContext(g))
			return nil
		},
	})

	garageCmd.AddCommand(&cobra.Command{
		Use:   "mods",
		Short: "List the mod catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGame()
			if err != nil {
				return err
			}
			g.GarageAdapter(cmd.OutOrStdout()).Mods()
			return nil
		},
	})

	garageCmd.AddCommand(&cobra.Command{
		Use:   "repair [vehicle-id]",
		Short: "Repair a vehicle to full condition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGame()
			if err != nil {
				return err
			}
			return g.GarageAdapter(cmd.OutOrStdout()).Repair(NewContext(g), args[0])
		},
	})

	garageCmd.AddCommand(&cobra.Command{
		Use:   "install [vehicle-id] [mod-id]",
		Short: "Install a mod",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGame()
			if err != nil {
				return err
			}
			return g.GarageAdapter(cmd.OutOrStdout()).InstallMod(NewContext(g), args[0], args[1])
		},
	})

	garageCmd.AddCommand(&cobra.Command{
		Use:   "sell [vehicle-id]",
		Short: "Sell a vehicle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGame()
			if err != nil {
				return err
			}
			return g.GarageAdapter(cmd.OutOrStdout()).Sell(NewContext(g), args[0])
		},
	})

	garageCmd.AddCommand(&cobra.Command{
		Use:   "scrap [vehicle-id]",
		Short: "Scrap a vehicle for salvage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGame()
			if err != nil {
				return err
			}
			return g.GarageAdapter(cmd.OutOrStdout()).Scrap(NewContext(g), args[0])
		},
	})

	return garageCmd
}
