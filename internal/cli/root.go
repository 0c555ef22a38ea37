package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "pool",
		Short: "CLI tool for the pool tournament API",
		Long: `pool is a CLI tool for the pool tournament JSON API.

It covers the player operations (enroll, join, promo, status) and the
admin operations (tables, winner, balances). The acting principal is
set with --player-id, --username and --name.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			client = NewClient(cfg.ServerURL, cfg.PlayerID, cfg.Username, cfg.DisplayName)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: POOL_SERVER)")
	rootCmd.PersistentFlags().Int64Var(&cfg.PlayerID, "player-id", cfg.PlayerID, "Acting player id")
	rootCmd.PersistentFlags().StringVar(&cfg.Username, "username", cfg.Username, "Acting username (env: POOL_USERNAME)")
	rootCmd.PersistentFlags().StringVar(&cfg.DisplayName, "name", cfg.DisplayName, "Acting display name (env: POOL_NAME)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")

	// Add subcommands
	rootCmd.AddCommand(newEnrollCmd())
	rootCmd.AddCommand(newJoinCmd())
	rootCmd.AddCommand(newPromoCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newTablesCmd())
	rootCmd.AddCommand(newWinnerCmd())
	rootCmd.AddCommand(newBalancesCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
