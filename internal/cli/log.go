package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/syndicate/internal/ports/primary"
)

// LogCmd views and prunes the mission log.
func LogCmd() *cobra.Command {
	logCmd := &cobra.Command{
		Use:   "log",
		Short: "View the mission log",
		Long:  "View and prune the record of resolved missions",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List resolved missions",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGame()
			if err != nil {
				return err
			}
			limit, _ := cmd.Flags().GetInt("limit")
			outcome, _ := cmd.Flags().GetString("outcome")
			missionID, _ := cmd.Flags().GetString("mission")
			sessionID, _ := cmd.Flags().GetString("session")

			return g.LogAdapter(cmd.OutOrStdout()).List(NewContext(g), primary.MissionLogFilters{
				MissionID: missionID,
				Outcome:   outcome,
				SessionID: sessionID,
				Limit:     limit,
			})
		},
	}
	listCmd.Flags().IntP("limit", "n", 20, "Number of entries to show")
	listCmd.Flags().String("outcome", "", "Filter by outcome (success, failure)")
	listCmd.Flags().String("mission", "", "Filter by mission ID")
	listCmd.Flags().String("session", "", "Filter by session ID")

	showCmd := &cobra.Command{
		Use:   "show [log-id]",
		Short: "Show a log entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGame()
			if err != nil {
				return err
			}
			return g.LogAdapter(cmd.OutOrStdout()).Show(NewContext(g), args[0])
		},
	}

	pruneCmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete old log entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGame()
			if err != nil {
				return err
			}
			days, _ := cmd.Flags().GetInt("days")
			return g.LogAdapter(cmd.OutOrStdout()).Prune(NewContext(g), days)
		},
	}
	pruneCmd.Flags().Int("days", 30, "Delete entries older than N days")

	logCmd.AddCommand(listCmd)
	logCmd.AddCommand(showCmd)
	logCmd.AddCommand(pruneCmd)
	return logCmd
}
