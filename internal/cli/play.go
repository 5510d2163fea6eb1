package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	cliadapter "github.com/example/syndicate/internal/adapters/cli"
	"github.com/example/syndicate/internal/ports/primary"
	"github.com/example/syndicate/internal/wire"
)

// ContractsCmd lists the contract board and the crew.
func ContractsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contracts",
		Short: "Show the contract board",
		Long:  "Generate the contract board for a fresh session and list it with the crew roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGame()
			if err != nil {
				return err
			}
			ctx := NewContext(g)
			adapter := g.EngineAdapter(cmd.OutOrStdout())

			if err := adapter.Contracts(ctx); err != nil {
				return err
			}
			adapter.Crew(ctx)
			return nil
		},
	}
}

// PreviewCmd projects a crew assignment without starting the mission.
func PreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview [mission-id]",
		Short: "Preview a crew assignment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGame()
			if err != nil {
				return err
			}
			ctx := NewContext(g)
			crewIDs, _ := cmd.Flags().GetStringSlice("crew")
			vehicleID, _ := cmd.Flags().GetString("vehicle")

			if _, err := g.Engine.GenerateInitialContracts(ctx); err != nil {
				return fmt.Errorf("failed to generate contracts: %w", err)
			}
			return g.EngineAdapter(cmd.OutOrStdout()).Preview(ctx, primary.PreviewRequest{
				MissionID: args[0],
				CrewIDs:   crewIDs,
				VehicleID: vehicleID,
			})
		},
	}
	cmd.Flags().StringSliceP("crew", "c", nil, "Crew member IDs (comma separated)")
	cmd.Flags().StringP("vehicle", "v", "", "Vehicle ID (default: first idle operational vehicle)")
	return cmd
}

// RunCmd plays a single mission to resolution.
func RunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [mission-id]",
		Short: "Run a mission",
		Long: `Start a mission from a fresh contract board and tick it to resolution.
Events are answered by the choice policy (first, cautious or greedy).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGame()
			if err != nil {
				return err
			}
			ctx := NewContext(g)
			crewIDs, _ := cmd.Flags().GetStringSlice("crew")
			vehicleID, _ := cmd.Flags().GetString("vehicle")

			runner, err := newRunner(cmd, g)
			if err != nil {
				return err
			}
			if _, err := g.Engine.GenerateInitialContracts(ctx); err != nil {
				return fmt.Errorf("failed to generate contracts: %w", err)
			}
			_, err = runner.Run(ctx, primary.StartMissionRequest{
				MissionID: args[0],
				CrewIDs:   crewIDs,
				VehicleID: vehicleID,
			})
			return err
		},
	}
	cmd.Flags().StringSliceP("crew", "c", nil, "Crew member IDs (comma separated)")
	cmd.Flags().StringP("vehicle", "v", "", "Vehicle ID (default: first idle operational vehicle)")
	addRunnerFlags(cmd)
	return cmd
}

// CampaignCmd autoplays a run of missions.
func CampaignCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "campaign",
		Short: "Autoplay a campaign",
		Long: `Play missions back to back: recovery contracts first, then the best odds.
Worn vehicles are repaired and heat cools between missions.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGame()
			if err != nil {
				return err
			}
			ctx := NewContext(g)
			missions, _ := cmd.Flags().GetInt("missions")

			runner, err := newRunner(cmd, g)
			if err != nil {
				return err
			}
			if _, err := runner.Campaign(ctx, missions); err != nil {
				return err
			}

			snap := g.City.CampaignSnapshot()
			fmt.Fprintf(cmd.OutOrStdout(), "Districts controlled: %d/%d\n", snap.DistrictsControlled, snap.DistrictsTotal)
			if len(snap.Milestones) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Milestones: %s\n", strings.Join(snap.Milestones, "; "))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Funds: %s   Heat: %.1f   Seed: %d\n", cliadapter.Money(g.Economy.Funds()), g.Heat.Value(), g.Seed)
			return nil
		},
	}
	cmd.Flags().IntP("missions", "n", 10, "Number of missions to play")
	cmd.Flags().Float64("repair-below", 0.5, "Repair vehicles below this condition between missions")
	cmd.Flags().Float64("cooldown", 2, "Heat shed between missions")
	cmd.Flags().Int("crew-size", 2, "Crew members assigned per mission")
	addRunnerFlags(cmd)
	return cmd
}

func addRunnerFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("policy", "p", "first", "Event choice policy (first, cautious, greedy)")
	cmd.Flags().Float64("tick", 0, "Simulated seconds per update (default: config tick)")
}

func newRunner(cmd *cobra.Command, g *wire.Game) (*cliadapter.Runner, error) {
	policyName, _ := cmd.Flags().GetString("policy")
	policy, err := cliadapter.PolicyByName(policyName)
	if err != nil {
		return nil, err
	}
	tick, _ := cmd.Flags().GetFloat64("tick")
	if tick <= 0 {
		tick = g.Config.Tick
	}
	opts := cliadapter.RunnerOptions{Tick: tick, Policy: policy}
	if f := cmd.Flags().Lookup("repair-below"); f != nil {
		opts.RepairBelow, _ = cmd.Flags().GetFloat64("repair-below")
		opts.Cooldown, _ = cmd.Flags().GetFloat64("cooldown")
		opts.CrewSize, _ = cmd.Flags().GetInt("crew-size")
	}
	return cliadapter.NewRunner(g.EngineAdapter(cmd.OutOrStdout()), g.Garage, g.Heat, opts), nil
}
