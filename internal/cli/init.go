package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/example/syndicate/internal/config"
)

// InitCmd writes a default .syndicate/config.json into the working directory.
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config",
		Long:  "Create .syndicate/config.json with the default settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			force, _ := cmd.Flags().GetBool("force")
			seed, _ := cmd.Flags().GetInt64("seed")
			if dir == "" {
				wd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("failed to get working directory: %w", err)
				}
				dir = wd
			}

			path := filepath.Join(dir, config.DirName, "config.json")
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("failed to check config: %w", err)
			}

			cfg := config.Default()
			cfg.Seed = seed
			if err := config.SaveConfig(dir, cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().String("dir", "", "Directory to initialise (default: working directory)")
	cmd.Flags().BoolP("force", "f", false, "Overwrite an existing config")
	cmd.Flags().Int64("seed", 0, "Fixed city and dice seed (0 draws one per session)")
	return cmd
}
