// Package commands wires the brickbooks CLI.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/brickbooks-dev/brickbooks/internal/api"
	"github.com/brickbooks-dev/brickbooks/internal/buildinfo"
	"github.com/brickbooks-dev/brickbooks/internal/config"
	"github.com/brickbooks-dev/brickbooks/internal/credstore"
)

// configFile is the per-project configuration file name.
const configFile = "brickbooks.yaml"

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:     "brickbooks",
		Short:   "Bookkeeping for a small real estate LLC",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", configFile, "path to brickbooks.yaml")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newLinkCommand(&configPath))
	rootCmd.AddCommand(newDisconnectCommand(&configPath))
	rootCmd.AddCommand(newBalancesCommand(&configPath))
	rootCmd.AddCommand(newTransactionsCommand(&configPath))
	rootCmd.AddCommand(newAccountsCommand(&configPath))
	rootCmd.AddCommand(newTxCommand(&configPath))
	rootCmd.AddCommand(newRentCommand(&configPath))
	rootCmd.AddCommand(newSummaryCommand(&configPath))
	rootCmd.AddCommand(newAskCommand(&configPath))
	rootCmd.AddCommand(newPayCommand(&configPath))

	return rootCmd
}

// loadConfig reads the config file, falling back to defaults when it
// does not exist so read-only commands work before init.
func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config.Default(), nil
	}
	return config.Load(path)
}

// stack bundles the collaborators most commands need.
type stack struct {
	cfg    *config.Config
	store  *credstore.Store
	client *api.Client
}

func newStack(configPath string) (*stack, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}
	store := credstore.New(cfg.StateDir)
	return &stack{
		cfg:    cfg,
		store:  store,
		client: api.NewClient(cfg.API.BaseURL, store),
	}, nil
}
