package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newTablesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "List all tables (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result TableList

			if err := client.Get("/api/v1/tables", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newWinnerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "winner <table_id> <selector>",
		Short: "Declare a table's winner (admin)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tableID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid table id: %s", args[0])
			}

			req := map[string]string{"winner": args[1]}
			var result WinnerResult

			path := fmt.Sprintf("/api/v1/tables/%d/winner", tableID)
			if err := client.Post(path, req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newBalancesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balances",
		Short: "Show promoter balances (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result BalanceList

			if err := client.Get("/api/v1/promoters/balances", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
