package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/brickbooks-dev/brickbooks/internal/config"
)

func newInitCommand() *cobra.Command {
	var stateDir string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a brickbooks configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runInit(absDir, stateDir)
		},
	}

	cmd.Flags().StringVar(&stateDir, "state-dir", "", "directory for credentials and logs (default ~/.brickbooks)")

	return cmd
}

func runInit(dir, stateDir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	cfg := config.Default()
	if stateDir != "" {
		abs, err := filepath.Abs(stateDir)
		if err != nil {
			return fmt.Errorf("resolving state dir: %w", err)
		}
		cfg.StateDir = abs
	}

	for _, d := range []string{cfg.StateDir, filepath.Join(cfg.StateDir, "logs")} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return fmt.Errorf("creating state directory %s: %w", d, err)
		}
	}

	path := filepath.Join(dir, configFile)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := config.Save(path, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Printf("Initialized brickbooks at %s\n", path)
	return nil
}
